// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides holds per-side or per-corner values of a box, set with
// the CSS shorthand of one to four values.
package sides

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Sides holds one value per side of a box. When used for corners,
// Top is the top-left corner and the others follow clockwise:
// Right is top-right, Bottom is bottom-right and Left is bottom-left.
type Sides[T any] struct {
	Top    T `yaml:"top,omitempty"`
	Right  T `yaml:"right,omitempty"`
	Bottom T `yaml:"bottom,omitempty"`
	Left   T `yaml:"left,omitempty"`
}

// Floats is a [Sides] of float32 values, used for padding and corner radii.
type Floats = Sides[float32]

// NewSides returns sides set from the CSS shorthand values; see [Sides.Set].
func NewSides[T any](vals ...T) Sides[T] {
	var s Sides[T]
	s.Set(vals...)
	return s
}

// Set assigns the sides from 0 to 4 values the way CSS padding and
// border-radius do: one value sets all sides, two set vertical then
// horizontal, three set top, horizontal, bottom, and four are given
// clockwise from the top. Extra values are logged and ignored.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	if len(vals) > 4 {
		slog.Error("sides.Set: expected 0 to 4 values", "numValues", len(vals))
		vals = vals[:4]
	}
	var top, right, bottom, left T
	switch len(vals) {
	case 1:
		top, right, bottom, left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		top, right, bottom, left = vals[0], vals[1], vals[0], vals[1]
	case 3:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[1]
	case 4:
		top, right, bottom, left = vals[0], vals[1], vals[2], vals[3]
	}
	*s = Sides[T]{top, right, bottom, left}
	return s
}

// Values returns the values clockwise from the top.
func (s Sides[T]) Values() [4]T {
	return [4]T{s.Top, s.Right, s.Bottom, s.Left}
}

func (s Sides[T]) String() string {
	return fmt.Sprintf("%v %v %v %v", s.Top, s.Right, s.Bottom, s.Left)
}

// ParseFloats parses 1 to 4 numbers separated by spaces or commas,
// each with an optional px unit.
func ParseFloats(str string) (Floats, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool { return r == ' ' || r == ',' })
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 32)
		if err != nil {
			return Floats{}, fmt.Errorf("sides.ParseFloats: invalid value %q: %w", f, err)
		}
		vals[i] = float32(v)
	}
	return NewSides(vals...), nil
}

// IsZero returns whether all four values are zero.
func IsZero(s Floats) bool {
	return s == Floats{}
}
