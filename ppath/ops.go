// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/vector/math32"
)

// BoolOp is a path boolean operation.
type BoolOp int32

const (
	// Union combines both paths.
	Union BoolOp = iota

	// Subtract removes the second path from the first.
	Subtract

	// Intersect keeps only the area covered by both paths.
	Intersect

	// Exclude keeps the area covered by exactly one of the paths.
	Exclude
)

var boolOpNames = [...]string{"union", "subtract", "intersect", "exclude"}

// String returns the lower-case name of the operation.
func (op BoolOp) String() string {
	if op < 0 || int(op) >= len(boolOpNames) {
		return "BoolOp(?)"
	}
	return boolOpNames[op]
}

// ParseBoolOp returns the operation with the given name,
// and false if there is none.
func ParseBoolOp(s string) (BoolOp, bool) {
	for i, n := range boolOpNames {
		if n == s {
			return BoolOp(i), true
		}
	}
	return Union, false
}

// FillRule is the rule used to fill a path with overlapping subpaths.
type FillRule int32

const (
	NonZero FillRule = iota
	EvenOdd
)

func (fr FillRule) String() string {
	if fr == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Ops is the set of path boolean operations used to compose the
// outline of boolean groups. The result of an operation is rendered
// with the returned fill rule.
type Ops interface {
	Op(op BoolOp, a, b Path) (Path, FillRule)
}

// FillRuleOps is a reference [Ops] implementation that composes paths
// by subpath concatenation and relies on the fill rule for the visual
// result: union keeps both paths with matched winding, subtract reverses
// the second path, exclude uses the even-odd rule, and intersect clips
// the flattened first path against each subpath of the second. Concave
// subpaths of the second path are split into triangles by ear clipping
// first, as clipping is only exact against convex polygons. Subpaths
// that cross themselves are clipped as a whole.
type FillRuleOps struct {

	// Segments is the number of line segments each curve is
	// flattened into for intersection.
	Segments int
}

func (o FillRuleOps) Op(op BoolOp, a, b Path) (Path, FillRule) {
	switch op {
	case Union:
		return orient(a, true).Append(orient(b, true)), NonZero
	case Subtract:
		return orient(a, true).Append(orient(b, false)), NonZero
	case Exclude:
		return a.Append(b), EvenOdd
	}
	segs := o.Segments
	if segs <= 0 {
		segs = 8
	}
	if !a.Bounds().IntersectsBox(b.Bounds()) {
		return Path{}, NonZero
	}
	res := Path{}
	for _, pa := range a.Flatten(segs) {
		for _, pb := range b.Flatten(segs) {
			for _, cb := range convexParts(pb) {
				res = res.Append(Path{}.polygon(clipPolygon(pa, cb)))
			}
		}
	}
	return res, NonZero
}

func (p Path) polygon(pts []math32.Vector2) Path {
	p.Polygon(pts...)
	return p
}

// orient returns p with every closed subpath oriented clockwise
// (in y-down coordinates) when cw is true, and counter-clockwise otherwise.
func orient(p Path, cw bool) Path {
	res := Path{}
	for _, sp := range p.Split() {
		area := signedArea(sp.Coords())
		if (area < 0) == cw {
			sp = sp.Reverse()
		}
		res = append(res, sp...)
	}
	return res
}

// signedArea returns the shoelace area of the polygon, positive when
// clockwise in y-down coordinates.
func signedArea(pts []math32.Vector2) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// openPolygon returns pts without a closing point equal to the first.
func openPolygon(pts []math32.Vector2) []math32.Vector2 {
	if len(pts) > 1 && EqualPoint(pts[0], pts[len(pts)-1]) {
		return pts[:len(pts)-1]
	}
	return pts
}

// isConvex returns whether the polygon turns the same way at every
// corner. Collinear corners are ignored.
func isConvex(pts []math32.Vector2) bool {
	var pos, neg bool
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%len(pts)], pts[(i+2)%len(pts)]
		cr := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cr > Epsilon:
			pos = true
		case cr < -Epsilon:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// convexParts returns the polygon itself if it is convex, and its
// triangulation by ear clipping otherwise. If no ear can be found, as
// for a self-intersecting polygon, the rest is returned as one part.
func convexParts(pts []math32.Vector2) [][]math32.Vector2 {
	pts = openPolygon(pts)
	if len(pts) < 3 {
		return nil
	}
	if isConvex(pts) {
		return [][]math32.Vector2{pts}
	}
	sign := float32(1)
	if signedArea(pts) < 0 {
		sign = -1
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	var parts [][]math32.Vector2
	for len(idx) > 3 {
		ear := -1
		for i := range idx {
			a, b, c := pts[idx[(i+len(idx)-1)%len(idx)]], pts[idx[i]], pts[idx[(i+1)%len(idx)]]
			if sign*b.Sub(a).Cross(c.Sub(b)) <= 0 {
				continue
			}
			if !anyInTriangle(pts, idx, a, b, c, sign) {
				ear = i
				break
			}
		}
		if ear < 0 {
			rest := make([]math32.Vector2, len(idx))
			for i, j := range idx {
				rest[i] = pts[j]
			}
			return append(parts, rest)
		}
		n := len(idx)
		parts = append(parts, []math32.Vector2{pts[idx[(ear+n-1)%n]], pts[idx[ear]], pts[idx[(ear+1)%n]]})
		idx = append(idx[:ear], idx[ear+1:]...)
	}
	return append(parts, []math32.Vector2{pts[idx[0]], pts[idx[1]], pts[idx[2]]})
}

// anyInTriangle returns whether any of the remaining points other than
// the corners lies in the triangle abc, whose winding is given by sign.
func anyInTriangle(pts []math32.Vector2, idx []int, a, b, c math32.Vector2, sign float32) bool {
	for _, j := range idx {
		p := pts[j]
		if EqualPoint(p, a) || EqualPoint(p, b) || EqualPoint(p, c) {
			continue
		}
		if sign*b.Sub(a).Cross(p.Sub(a)) >= 0 && sign*c.Sub(b).Cross(p.Sub(b)) >= 0 && sign*a.Sub(c).Cross(p.Sub(c)) >= 0 {
			return true
		}
	}
	return false
}

// clipPolygon clips subject against the convex clip polygon
// using the Sutherland-Hodgman algorithm.
func clipPolygon(subject, clip []math32.Vector2) []math32.Vector2 {
	clip = openPolygon(clip)
	if len(clip) < 3 {
		return nil
	}
	sign := float32(1)
	if signedArea(clip) < 0 {
		sign = -1
	}
	inside := func(p, a, b math32.Vector2) bool {
		return sign*b.Sub(a).Cross(p.Sub(a)) >= 0
	}
	out := subject
	for i := range clip {
		a, b := clip[i], clip[(i+1)%len(clip)]
		in := out
		out = nil
		if len(in) == 0 {
			break
		}
		prev := in[len(in)-1]
		for _, cur := range in {
			if inside(cur, a, b) {
				if !inside(prev, a, b) {
					out = append(out, lineIntersect(prev, cur, a, b))
				}
				out = append(out, cur)
			} else if inside(prev, a, b) {
				out = append(out, lineIntersect(prev, cur, a, b))
			}
			prev = cur
		}
	}
	return out
}

func lineIntersect(p1, p2, a, b math32.Vector2) math32.Vector2 {
	d1 := p2.Sub(p1)
	d2 := b.Sub(a)
	den := d1.Cross(d2)
	if Equal(den, 0) {
		return p1
	}
	t := a.Sub(p1).Cross(d2) / den
	return p1.Add(d1.MulScalar(t))
}
