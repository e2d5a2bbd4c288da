// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import "cogentcore.org/vector/math32"

// Epsilon is the smallest number below which we assume the value to be zero.
// This is to avoid numerical floating point issues.
var Epsilon = float32(1e-4)

// Precision is the number of significant digits at which floating point
// value will be printed to output formats.
var Precision = 6

// Equal returns true if a and b are equal within an absolute tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if a and b are equal within an absolute tolerance of Epsilon.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// quadAt returns the point on the quadratic Bézier at t.
func quadAt(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	return p0.MulScalar(mt * mt).Add(p1.MulScalar(2 * mt * t)).Add(p2.MulScalar(t * t))
}

// cubeAt returns the point on the cubic Bézier at t.
func cubeAt(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.MulScalar(a).Add(p1.MulScalar(b)).Add(p2.MulScalar(c)).Add(p3.MulScalar(d))
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c = 0.
func solveQuadratic(a, b, c float32) []float32 {
	if Equal(a, 0) {
		if Equal(b, 0) {
			return nil
		}
		return []float32{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math32.Sqrt(disc)
	return []float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
