// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the visual style values of shapes (fills,
// borders, shadows, blur and corner radii), the shared style resources
// they may reference, and resolution of resource ids.
package styles

import (
	"image/color"

	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/styles/sides"
)

// Fill is one paint layer of a shape interior.
type Fill struct {
	Color  color.RGBA
	Hidden bool
}

// BorderPositions are the placements of a border stroke relative
// to the outline of the shape.
type BorderPositions int32

const (
	// BorderCenter centers the stroke on the outline.
	BorderCenter BorderPositions = iota

	// BorderInside places the stroke entirely inside the outline.
	BorderInside

	// BorderOutside places the stroke entirely outside the outline.
	BorderOutside
)

var borderPositionNames = [...]string{"center", "inside", "outside"}

func (bp BorderPositions) String() string {
	if bp < 0 || int(bp) >= len(borderPositionNames) {
		return "center"
	}
	return borderPositionNames[bp]
}

// ParseBorderPosition returns the border position with the given name.
func ParseBorderPosition(s string) (BorderPositions, bool) {
	for i, n := range borderPositionNames {
		if n == s {
			return BorderPositions(i), true
		}
	}
	return BorderCenter, false
}

// Border is one stroke layer along the outline of a shape.
type Border struct {
	Color    color.RGBA
	Width    float32
	Position BorderPositions
	Hidden   bool
}

// Outset returns how far the border extends outside of the outline.
func (b Border) Outset() float32 {
	switch b.Position {
	case BorderInside:
		return 0
	case BorderOutside:
		return b.Width
	}
	return b.Width / 2
}

// Inset returns how far the border extends inside of the outline.
func (b Border) Inset() float32 {
	return b.Width - b.Outset()
}

// Shadow is a drop or inner shadow.
type Shadow struct {
	Color   color.RGBA
	OffsetX float32
	OffsetY float32
	Blur    float32
	Spread  float32
	Inner   bool
	Hidden  bool
}

// Blur is a gaussian blur applied to the whole shape.
type Blur struct {
	Radius float32
	Hidden bool
}

// Radius contains the corner radii of a shape, in the corner
// order of [sides.Sides].
type Radius = sides.Floats

// Style is the local style of a document shape. Each property may instead
// reference a shared style [Resource] by id, in which case the resource
// value takes precedence while it resolves.
type Style struct {
	Fills   []Fill
	Borders []Border
	Shadows []Shadow
	Radius  Radius
	Blur    Blur

	FillsRef   string
	BordersRef string
	ShadowsRef string
	RadiusRef  string
	BlurRef    string
}

// BordersOutset returns the largest outward extent of the visible borders.
func BordersOutset(borders []Border) float32 {
	var out float32
	for _, b := range borders {
		if !b.Hidden {
			out = math32.Max(out, b.Outset())
		}
	}
	return out
}

// BordersInset returns the largest inward extent of the visible borders.
func BordersInset(borders []Border) float32 {
	var in float32
	for _, b := range borders {
		if !b.Hidden {
			in = math32.Max(in, b.Inset())
		}
	}
	return in
}

// ShadowsOutset returns how far the visible outer shadows extend
// beyond each side of the box.
func ShadowsOutset(shadows []Shadow) sides.Floats {
	out := sides.Floats{}
	for _, s := range shadows {
		if s.Hidden || s.Inner {
			continue
		}
		ext := s.Blur + s.Spread
		out.Top = math32.Max(out.Top, ext-s.OffsetY)
		out.Bottom = math32.Max(out.Bottom, ext+s.OffsetY)
		out.Left = math32.Max(out.Left, ext-s.OffsetX)
		out.Right = math32.Max(out.Right, ext+s.OffsetX)
	}
	return out
}

// VisibleFills returns the fills that are not hidden.
func VisibleFills(fills []Fill) []Fill {
	var res []Fill
	for _, f := range fills {
		if !f.Hidden {
			res = append(res, f)
		}
	}
	return res
}
