// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/vector/math32"
)

// kappa is the control point distance factor for approximating
// a quarter circle with a cubic Bézier.
const kappa = 0.5522847498

// Line adds a line segment of from (x1,y1) to (x2,y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	if Equal(x1, x2) && Equal(y1, y2) {
		return p
	}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < sz; i++ {
		p.LineTo(points[i].X, points[i].Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	if len(points) < 2 {
		return p
	}
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangleSides adds a rectangle of width w and height h with the
// given corner radii, in the order top-left, top-right, bottom-right,
// bottom-left. Radii are clamped to half of the smaller dimension.
func (p *Path) RoundedRectangleSides(x, y, w, h float32, tl, tr, br, bl float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	lim := math32.Min(w/2, h/2)
	tl = math32.Clamp(tl, 0, lim)
	tr = math32.Clamp(tr, 0, lim)
	br = math32.Clamp(br, 0, lim)
	bl = math32.Clamp(bl, 0, lim)
	if tl == 0 && tr == 0 && br == 0 && bl == 0 {
		return p.Rectangle(x, y, w, h)
	}

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr != 0 {
		p.CubeTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	p.LineTo(x+w, y+h-br)
	if br != 0 {
		p.CubeTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	p.LineTo(x+bl, y+h)
	if bl != 0 {
		p.CubeTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	p.LineTo(x, y+tl)
	if tl != 0 {
		p.CubeTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	p.Close()
	return p
}

// Ellipse adds an ellipse at the given center with radii rx and ry,
// approximated by four cubic Béziers.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return p
	}
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}
