// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D point or extent in document units.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2].
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a [Vector2] with both components set to s.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// FromFixed26 converts a font measurement in 26.6 fixed point to a float32.
func FromFixed26(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Dim returns the component along dim.
func (v Vector2) Dim(dim Dims) float32 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the component along dim.
func (v *Vector2) SetDim(dim Dims, value float32) {
	if dim == X {
		v.X = value
		return
	}
	v.Y = value
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{Min(v.X, o.X), Min(v.Y, o.Y)} }
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{Max(v.X, o.X), Max(v.Y, o.Y)} }

// MulScalar scales both components by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Cross returns the z component of the 3D cross product, which is
// positive when o turns clockwise from v in y-down coordinates.
func (v Vector2) Cross(o Vector2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// IsEqualApprox returns whether both components are within [Epsilon].
func (v Vector2) IsEqualApprox(o Vector2) bool {
	return ApproxEqual(v.X, o.X) && ApproxEqual(v.Y, o.Y)
}

// Dims names the two axes of a [Vector2].
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the cross axis of d.
func (d Dims) Other() Dims {
	return 1 - d
}

func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}
