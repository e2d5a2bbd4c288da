// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

// Package ppath provides the path geometry used for shape outlines,
// border strokes and boolean compositions.
package ppath

import (
	"slices"

	"cogentcore.org/vector/math32"
)

// Path is a collection of MoveTo, LineTo, QuadTo, CubeTo and Close
// commands, each followed the float32 coordinate data for it.
// To enable support bidirectional processing, the command verb is also added
// to the end of the coordinate data as well.
// The last two coordinate values are the end point position of the pen after
// the action (x,y).
// QuadTo defines one control point (x,y) in between.
// CubeTo defines two control points.
type Path []float32

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	CubeTo float32 = 3
	Close  float32 = 4
)

var cmdLens = [5]int{4, 4, 6, 8, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Empty returns true if p is an empty path or consists of only MoveTos and Closes.
func (p Path) Empty() bool {
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if p[i] != MoveTo && p[i] != Close {
			return false
		}
	}
	return true
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p Path) Equals(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !Equal(p[i], q[i]) {
			return false
		}
	}
	return true
}

// Closed returns true if the last subpath of p is a closed path.
func (p Path) Closed() bool {
	return 0 < len(p) && p[len(p)-1] == Close
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	n := 0
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		n++
	}
	return n
}

// Append appends paths qs to p and returns the extended path p.
func (p Path) Append(qs ...Path) Path {
	if p.Empty() {
		p = Path{}
	}
	for _, q := range qs {
		if !q.Empty() {
			p = append(p, q...)
		}
	}
	return p
}

// Pos returns the current position of the path,
// which is the end point of the last command.
func (p Path) Pos() math32.Vector2 {
	if 0 < len(p) {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath,
// i.e. it returns the position of the last MoveTo command.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// Coords returns all the coordinates of the segment
// start/end points. It omits zero-length Closes.
func (p Path) Coords() []math32.Vector2 {
	coords := []math32.Vector2{}
	for i := 0; i < len(p); {
		cmd := p[i]
		i += CmdLen(cmd)
		if len(coords) == 0 || cmd != Close || !EqualPoint(coords[len(coords)-1], math32.Vec2(p[i-3], p[i-2])) {
			coords = append(coords, math32.Vec2(p[i-3], p[i-2]))
		}
	}
	return coords
}

/////// Constructors

// MoveTo moves the path to (x,y) without connecting the path.
// It starts a new independent subpath.
func (p *Path) MoveTo(x, y float32) {
	if 0 < len(*p) && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a linear path to (x,y).
// Zero-length lines are not added.
func (p *Path) LineTo(x, y float32) {
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	}
	if EqualPoint(p.Pos(), math32.Vec2(x, y)) {
		return
	}
	*p = append(*p, LineTo, x, y, LineTo)
}

// QuadTo adds a quadratic Bézier path with control point (cpx,cpy) and end point (x,y).
// It is reduced to a LineTo when the control point coincides with an end point.
func (p *Path) QuadTo(cpx, cpy, x, y float32) {
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	}
	start := p.Pos()
	cp := math32.Vec2(cpx, cpy)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp) {
		return
	} else if EqualPoint(start, cp) || EqualPoint(cp, end) {
		p.LineTo(x, y)
		return
	}
	*p = append(*p, QuadTo, cpx, cpy, x, y, QuadTo)
}

// CubeTo adds a cubic Bézier path with control points
// (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	}
	start := p.Pos()
	cp1 := math32.Vec2(cpx1, cpy1)
	cp2 := math32.Vec2(cpx2, cpy2)
	end := math32.Vec2(x, y)
	if EqualPoint(start, end) && EqualPoint(start, cp1) && EqualPoint(start, cp2) {
		return
	} else if EqualPoint(start, cp1) && EqualPoint(cp2, end) {
		p.LineTo(x, y)
		return
	}
	*p = append(*p, CubeTo, cpx1, cpy1, cpx2, cpy2, x, y, CubeTo)
}

// Close closes a (sub)path with a LineTo to the start of the path
// (the most recent MoveTo command).
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close || (*p)[len(*p)-1] == MoveTo {
		return
	}
	start := p.StartPos()
	if (*p)[len(*p)-1] == LineTo && EqualPoint(p.Pos(), start) {
		// replace a final line back to the start with the close itself
		(*p)[len(*p)-4] = Close
		(*p)[len(*p)-1] = Close
		return
	}
	*p = append(*p, Close, start.X, start.Y, Close)
}
