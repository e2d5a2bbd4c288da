// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"

	"cogentcore.org/vector/math32"
)

// DefaultTol is the default tolerance used by [Equal].
const DefaultTol = 1.0e-4

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.0001.
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol(t assert.TestingT, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if math32.IsNaN(expected) {
		return assert.True(t, math32.IsNaN(actual), msgAndArgs...)
	}
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualVector asserts that two vectors are about equal.
func EqualVector(t assert.TestingT, expected, actual math32.Vector2, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected.X, actual.X, DefaultTol, msgAndArgs...) &&
		EqualTol(t, expected.Y, actual.Y, DefaultTol, msgAndArgs...)
}
