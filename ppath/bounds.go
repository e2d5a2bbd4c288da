// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vector/math32"
)

// Bounds returns the exact bounding box of the path, including
// the extrema of Bézier curves. It returns an empty box for an
// empty path.
func (p Path) Bounds() math32.Box2 {
	if len(p) == 0 {
		return math32.B2Empty()
	}
	bb := math32.B2Empty()
	s := p.Scanner()
	for s.Scan() {
		end := s.End()
		switch s.Cmd() {
		case MoveTo, LineTo, Close:
			bb.ExpandByPoint(end)
		case QuadTo:
			st, cp := s.Start(), s.CP1()
			bb.ExpandByPoint(end)
			for _, d := range []math32.Dims{math32.X, math32.Y} {
				den := st.Dim(d) - 2*cp.Dim(d) + end.Dim(d)
				if Equal(den, 0) {
					continue
				}
				if t := (st.Dim(d) - cp.Dim(d)) / den; 0 < t && t < 1 {
					bb.ExpandByPoint(quadAt(st, cp, end, t))
				}
			}
		case CubeTo:
			st, cp1, cp2 := s.Start(), s.CP1(), s.CP2()
			bb.ExpandByPoint(end)
			for _, d := range []math32.Dims{math32.X, math32.Y} {
				p0, p1, p2, p3 := st.Dim(d), cp1.Dim(d), cp2.Dim(d), end.Dim(d)
				a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
				b := 6 * (p0 - 2*p1 + p2)
				c := 3 * (p1 - p0)
				for _, t := range solveQuadratic(a, b, c) {
					if 0 < t && t < 1 {
						bb.ExpandByPoint(cubeAt(st, cp1, cp2, end, t))
					}
				}
			}
		}
	}
	return bb
}

// FastBounds returns the bounding box of all the points of the path,
// including Bézier control points, which contains [Path.Bounds].
func (p Path) FastBounds() math32.Box2 {
	bb := math32.B2Empty()
	for i := 0; i < len(p); {
		n := CmdLen(p[i])
		for j := i + 1; j < i+n-1; j += 2 {
			bb.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return bb
}
