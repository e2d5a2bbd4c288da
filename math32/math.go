// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, box, and affine matrix
// package for the 2D geometry of the view tree.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Infinity is positive infinity, the starting extent of an empty box.
var Infinity = float32(math.Inf(1))

// Epsilon is the tolerance of [ApproxEqual] and the IsEqualApprox methods.
const Epsilon = 1e-4

// ApproxEqual returns whether a and b are within [Epsilon] of each other.
func ApproxEqual(a, b float32) bool {
	return Abs(a-b) <= Epsilon
}

// DegToRad converts an angle in degrees, as used by rotations in
// document transforms, to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

// Clamp limits x to the closed interval [lo, hi]. It is used for
// both coordinates and child indexes.
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Scalar functions, forwarded to chewxy/math32.

func Abs(x float32) float32          { return math32.Abs(x) }
func Atan2(y, x float32) float32     { return math32.Atan2(y, x) }
func Ceil(x float32) float32         { return math32.Ceil(x) }
func Cos(x float32) float32          { return math32.Cos(x) }
func Floor(x float32) float32        { return math32.Floor(x) }
func Hypot(p, q float32) float32     { return math32.Hypot(p, q) }
func Inf(sign int) float32           { return math32.Inf(sign) }
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }
func IsNaN(x float32) bool           { return math32.IsNaN(x) }
func Round(x float32) float32        { return math32.Round(x) }
func Signbit(x float32) bool         { return math32.Signbit(x) }
func Sin(x float32) float32          { return math32.Sin(x) }
func Sqrt(x float32) float32         { return math32.Sqrt(x) }
func Max(x, y float32) float32       { return math32.Max(x, y) }
func Min(x, y float32) float32       { return math32.Min(x, y) }
