// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vector/math32"
)

// Scanner iterates over the segments of a [Path].
//
//	for s := p.Scanner(); s.Scan(); {
//		switch s.Cmd() { ... }
//	}
type Scanner struct {
	p Path

	// end is the index just past the current segment.
	end int
}

// Scanner returns a scanner positioned before the first segment of p.
func (p Path) Scanner() *Scanner {
	return &Scanner{p: p}
}

// Scan advances to the next segment, returning false at the end of the path.
func (s *Scanner) Scan() bool {
	if s.end >= len(s.p) {
		return false
	}
	s.end += CmdLen(s.p[s.end])
	return true
}

// segment returns the values of the current segment, with the command
// at both ends.
func (s *Scanner) segment() Path {
	return s.p[s.end-CmdLen(s.p[s.end-1]) : s.end]
}

// Cmd returns the command of the current segment.
func (s *Scanner) Cmd() float32 {
	return s.p[s.end-1]
}

// Start returns the point the current segment starts from, which is
// the end of the previous segment.
func (s *Scanner) Start() math32.Vector2 {
	i := s.end - CmdLen(s.p[s.end-1])
	if i == 0 {
		return math32.Vector2{}
	}
	return math32.Vec2(s.p[i-3], s.p[i-2])
}

// End returns the end point of the current segment.
func (s *Scanner) End() math32.Vector2 {
	return math32.Vec2(s.p[s.end-3], s.p[s.end-2])
}

// CP1 returns the first control point of a quadratic or cubic segment.
func (s *Scanner) CP1() math32.Vector2 {
	seg := s.segment()
	if seg[0] != QuadTo && seg[0] != CubeTo {
		panic("ppath.Scanner: CP1 of a segment without control points")
	}
	return math32.Vec2(seg[1], seg[2])
}

// CP2 returns the second control point of a cubic segment.
func (s *Scanner) CP2() math32.Vector2 {
	seg := s.segment()
	if seg[0] != CubeTo {
		panic("ppath.Scanner: CP2 of a non-cubic segment")
	}
	return math32.Vec2(seg[3], seg[4])
}
