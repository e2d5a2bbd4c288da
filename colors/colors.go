// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing and formatting of the solid colors
// used in fills, borders and shadows.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/vector/base/errors"
)

// Standard colors used by defaults and tests.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Red         = color.RGBA{255, 0, 0, 255}
	Green       = color.RGBA{0, 128, 0, 255}
	Blue        = color.RGBA{0, 0, 255, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
)

// Map contains the named colors that [FromName] knows about.
var Map = map[string]color.RGBA{
	"black":  Black,
	"white":  White,
	"red":    Red,
	"green":  Green,
	"lime":   {0, 255, 0, 255},
	"blue":   Blue,
	"gray":   Gray,
	"grey":   Gray,
	"yellow": {255, 255, 0, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"cyan":   {0, 255, 255, 255},
	"navy":   {0, 0, 128, 255},
	"teal":   {0, 128, 128, 255},
}

// IsNil returns whether the color is the nil initial default color.
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified by the given
// standard color name. It returns an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string,
// which can be a hex color (#rgb, #rrggbb, #rrggbbaa), an
// rgb(r,g,b) or rgba(r,g,b,a) function with an alpha in 0-1,
// "none", "transparent", or a name in [Map].
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		val := strings.TrimSuffix(lstr[5:], ")")
		var r, g, b int
		var a float32
		if _, err := fmt.Sscanf(strings.ReplaceAll(val, " ", ""), "%d,%d,%d,%g", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not process %q: %w", str, err)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a*255 + 0.5)}, nil
	case strings.HasPrefix(lstr, "rgb("):
		val := strings.TrimSuffix(lstr[4:], ")")
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ReplaceAll(val, " ", ""), "%d,%d,%d", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: could not process %q: %w", str, err)
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
	}
	switch lstr {
	case "none", "transparent":
		return Transparent, nil
	}
	return FromName(lstr)
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString].
func MustFromString(str string) color.RGBA {
	return errors.Must1(FromString(str))
}

// FromHex parses the given hex color string and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, omitting the alpha component when it is fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "none"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}
