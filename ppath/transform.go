// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/vector/math32"
)

// Transform returns a copy of p with every point mapped by m.
func (p Path) Transform(m math32.Matrix2) Path {
	q := p.Clone()
	if m.IsIdentity() {
		return q
	}
	for i := 0; i < len(q); i += CmdLen(q[i]) {
		// coordinates sit between the leading and trailing command
		last := i + CmdLen(q[i]) - 1
		for j := i + 1; j < last; j += 2 {
			pt := m.MulVector2AsPoint(math32.Vec2(q[j], q[j+1]))
			q[j], q[j+1] = pt.X, pt.Y
		}
	}
	return q
}

// Translate returns a copy of p moved by (x, y).
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale returns a copy of p scaled by (x, y) about the origin.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}

// Split returns the subpaths of p, each starting at a MoveTo.
// A trailing lone MoveTo is dropped. The subpaths share memory with p.
func (p Path) Split() []Path {
	var ps []Path
	start := 0
	for i := 0; i < len(p); i += CmdLen(p[i]) {
		if p[i] == MoveTo && i > start {
			ps = append(ps, p[start:i:i])
			start = i
		}
	}
	if len(p)-start > CmdLen(MoveTo) {
		ps = append(ps, p[start:len(p):len(p)])
	}
	return ps
}

// Reverse returns p traversed backwards, keeping each subpath closed
// if it was closed.
func (p Path) Reverse() Path {
	if len(p) == 0 {
		return p
	}

	end := math32.Vector2{X: p[len(p)-3], Y: p[len(p)-2]}
	q := make(Path, 0, len(p))
	q = append(q, MoveTo, end.X, end.Y, MoveTo)

	closed := false
	first, start := end, end
	for i := len(p); 0 < i; {
		cmd := p[i-1]
		i -= CmdLen(cmd)

		end = math32.Vector2{}
		if 0 < i {
			end = math32.Vector2{X: p[i-3], Y: p[i-2]}
		}

		switch cmd {
		case MoveTo:
			if closed {
				q = append(q, Close, first.X, first.Y, Close)
				closed = false
			}
			if i != 0 {
				q = append(q, MoveTo, end.X, end.Y, MoveTo)
				first = end
			}
		case Close:
			if !EqualPoint(start, end) {
				q = append(q, LineTo, end.X, end.Y, LineTo)
			}
			closed = true
		case LineTo:
			if closed && (i == 0 || p[i-1] == MoveTo) {
				q = append(q, Close, first.X, first.Y, Close)
				closed = false
			} else {
				q = append(q, LineTo, end.X, end.Y, LineTo)
			}
		case QuadTo:
			cx, cy := p[i+1], p[i+2]
			q = append(q, QuadTo, cx, cy, end.X, end.Y, QuadTo)
		case CubeTo:
			cx1, cy1 := p[i+1], p[i+2]
			cx2, cy2 := p[i+3], p[i+4]
			q = append(q, CubeTo, cx2, cy2, cx1, cy1, end.X, end.Y, CubeTo)
		}
		start = end
	}
	if closed {
		q = append(q, Close, first.X, first.Y, Close)
	}
	return q
}

// Flatten returns the subpaths of p as polygons, subdividing
// each Bézier curve into the given number of line segments.
func (p Path) Flatten(segments int) [][]math32.Vector2 {
	if segments < 1 {
		segments = 1
	}
	var polys [][]math32.Vector2
	var cur []math32.Vector2
	s := p.Scanner()
	for s.Scan() {
		switch s.Cmd() {
		case MoveTo:
			if len(cur) > 1 {
				polys = append(polys, cur)
			}
			cur = []math32.Vector2{s.End()}
		case LineTo, Close:
			cur = append(cur, s.End())
		case QuadTo:
			st, cp := s.Start(), s.CP1()
			for k := 1; k <= segments; k++ {
				cur = append(cur, quadAt(st, cp, s.End(), float32(k)/float32(segments)))
			}
		case CubeTo:
			st, cp1, cp2 := s.Start(), s.CP1(), s.CP2()
			for k := 1; k <= segments; k++ {
				cur = append(cur, cubeAt(st, cp1, cp2, s.End(), float32(k)/float32(segments)))
			}
		}
	}
	if len(cur) > 1 {
		polys = append(polys, cur)
	}
	return polys
}
