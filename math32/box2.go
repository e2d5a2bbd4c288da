// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Box2 is an axis-aligned box given by its minimum and maximum corners.
// A box whose Max is below its Min on either axis is empty.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box spanning (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns an empty box that any point expands to a point box.
func B2Empty() Box2 {
	return Box2{Vector2Scalar(Infinity), Vector2Scalar(-Infinity)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

func (b Box2) Size() Vector2   { return b.Max.Sub(b.Min) }
func (b Box2) Center() Vector2 { return b.Min.Add(b.Max).MulScalar(0.5) }

// ExpandByPoint grows b to contain p.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByBox grows b to contain o. Empty boxes are ignored.
func (b *Box2) ExpandByBox(o Box2) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// MulMatrix2 returns the bounding box of the four corners of b
// transformed by m.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	if b.IsEmpty() {
		return b
	}
	nb := B2Empty()
	for _, c := range [4]Vector2{b.Min, {b.Min.X, b.Max.Y}, {b.Max.X, b.Min.Y}, b.Max} {
		nb.ExpandByPoint(m.MulVector2AsPoint(c))
	}
	return nb
}

// IntersectsBox returns whether b and o overlap or touch.
func (b Box2) IntersectsBox(o Box2) bool {
	return o.Max.X >= b.Min.X && o.Min.X <= b.Max.X && o.Max.Y >= b.Min.Y && o.Min.Y <= b.Max.Y
}

// Intersect returns the overlap of b and o, which is empty if they
// do not overlap.
func (b Box2) Intersect(o Box2) Box2 {
	return Box2{b.Min.Max(o.Min), b.Max.Min(o.Max)}
}

// Union returns the smallest box containing b and o.
// An empty box does not contribute.
func (b Box2) Union(o Box2) Box2 {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	return Box2{b.Min.Min(o.Min), b.Max.Max(o.Max)}
}

// Translate returns b moved by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// IsEqualApprox returns whether both corners are within [Epsilon].
func (b Box2) IsEqualApprox(o Box2) bool {
	return b.Min.IsEqualApprox(o.Min) && b.Max.IsEqualApprox(o.Max)
}
