// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides the layout math used by shape views:
// constraint pinning, flow (auto) layout, table grids, and a
// spatial grid for overlap queries. It has no knowledge of views
// or documents.
package layout

import (
	"strings"

	"cogentcore.org/vector/math32"
)

// Pins is a 6-bit mask of how a shape is constrained to its parent
// when the parent is resized.
type Pins uint8

const (
	PinLeft Pins = 1 << iota
	PinRight
	PinTop
	PinBottom
	PinWidth
	PinHeight
)

var pinNames = [...]string{"left", "right", "top", "bottom", "width", "height"}

// String returns the pin names joined by +, or "none".
func (p Pins) String() string {
	var names []string
	for i, n := range pinNames {
		if p&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// ParsePins parses a list of pin names.
func ParsePins(names ...string) (Pins, bool) {
	var p Pins
	for _, nm := range names {
		found := false
		for i, n := range pinNames {
			if n == nm {
				p |= 1 << i
				found = true
			}
		}
		if !found {
			return p, false
		}
	}
	return p, true
}

// Has returns whether all of the given pins are set.
func (p Pins) Has(flags Pins) bool {
	return p&flags == flags
}

// Behaviors are how one axis of a shape follows a parent resize.
type Behaviors int32

const (
	// Start keeps the position relative to the left or top edge and the size.
	Start Behaviors = iota

	// End keeps the distance to the right or bottom edge and the size.
	End

	// Both keeps the distances to both edges, stretching the size.
	Both

	// Center keeps the offset from the center and the size.
	Center

	// Scale scales position and size with the parent.
	Scale
)

var behaviorNames = [...]string{"start", "end", "both", "center", "scale"}

func (b Behaviors) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "start"
	}
	return behaviorNames[b]
}

// behavior decomposes the edge and fixed-size bits of one axis.
func behavior(lo, hi, fixed bool) Behaviors {
	switch {
	case lo && hi:
		if fixed {
			return Start
		}
		return Both
	case lo:
		return Start
	case hi:
		return End
	case fixed:
		return Center
	}
	return Scale
}

// Horizontal returns the behavior of the x axis.
func (p Pins) Horizontal() Behaviors {
	return behavior(p.Has(PinLeft), p.Has(PinRight), p.Has(PinWidth))
}

// Vertical returns the behavior of the y axis.
func (p Pins) Vertical() Behaviors {
	return behavior(p.Has(PinTop), p.Has(PinBottom), p.Has(PinHeight))
}

// Behavior returns the behavior along the given dimension.
func (p Pins) Behavior(dim math32.Dims) Behaviors {
	if dim == math32.X {
		return p.Horizontal()
	}
	return p.Vertical()
}

// Resolve returns the new position and size along one axis for the given
// behavior, when the parent size along that axis changes from orig to cur.
func (b Behaviors) Resolve(pos, size, orig, cur float32) (float32, float32) {
	d := cur - orig
	switch b {
	case End:
		return pos + d, size
	case Both:
		return pos, math32.Max(size+d, 0)
	case Center:
		return pos + d/2, size
	case Scale:
		if orig == 0 {
			return pos, size
		}
		s := cur / orig
		return pos * s, size * s
	}
	return pos, size
}

// Constrain resolves both axes of a child box at pos with the given size,
// for a parent whose size changes from orig to cur. Axes are independent.
func Constrain(p Pins, pos, size, orig, cur math32.Vector2) (math32.Vector2, math32.Vector2) {
	var npos, nsize math32.Vector2
	npos.X, nsize.X = p.Horizontal().Resolve(pos.X, size.X, orig.X, cur.X)
	npos.Y, nsize.Y = p.Vertical().Resolve(pos.Y, size.Y, orig.Y, cur.Y)
	return npos, nsize
}
