// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/styles/sides"
)

// Directions are the main axes of a flow layout.
type Directions int32

const (
	Row Directions = iota
	Column
)

func (d Directions) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Dim returns the main dimension of the direction.
func (d Directions) Dim() math32.Dims {
	if d == Column {
		return math32.Y
	}
	return math32.X
}

// Aligns are alignments of items along an axis.
type Aligns int32

const (
	AlignStart Aligns = iota
	AlignCenter
	AlignEnd

	// AlignSpaceBetween distributes the free space between items.
	// Along the cross axis it is the same as AlignStart.
	AlignSpaceBetween
)

var alignNames = [...]string{"start", "center", "end", "space-between"}

func (a Aligns) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "start"
	}
	return alignNames[a]
}

// ParseAlign returns the alignment with the given name.
func ParseAlign(s string) (Aligns, bool) {
	for i, n := range alignNames {
		if n == s {
			return Aligns(i), true
		}
	}
	return AlignStart, false
}

// Sizing is how a flow container sizes itself along an axis.
type Sizing int32

const (
	// Fixed keeps the container size.
	Fixed Sizing = iota

	// Hug sizes the container to its content plus padding.
	Hug
)

// Flow is the auto-layout configuration of a container, which positions
// its visible children sequentially along the main axis.
type Flow struct {

	// Direction is the main axis along which items are placed.
	Direction Directions

	// Gap is the space between consecutive items along the main axis.
	Gap float32

	// CrossGap is the space between lines when wrapping.
	CrossGap float32

	// Padding is the space inside the container edges.
	Padding sides.Floats

	// Justify is the distribution of items along the main axis.
	Justify Aligns

	// Align is the alignment of items along the cross axis.
	Align Aligns

	// MainSizing and CrossSizing are how the container sizes itself.
	MainSizing  Sizing
	CrossSizing Sizing

	// Wrap starts a new line when the next item would overflow
	// a fixed main size.
	Wrap bool

	// BorderSpace reserves the inward thickness of the container
	// borders in addition to the padding.
	BorderSpace bool
}

// Item is one child of a flow layout.
type Item struct {
	Pos     math32.Vector2
	Size    math32.Vector2
	Visible bool
}

// Result is the outcome of [Flow.Arrange]. Invisible items keep their position.
type Result struct {
	Positions []math32.Vector2
	Size      math32.Vector2
}

type line struct {
	items []int
	main  float32
	cross float32
}

// Arrange positions the given items inside a container of the given size,
// where border is the inward border thickness used when BorderSpace is set.
func (f *Flow) Arrange(items []Item, size math32.Vector2, border float32) Result {
	md := f.Direction.Dim()
	cd := md.Other()
	pad := f.Padding
	if f.BorderSpace {
		pad.Top += border
		pad.Right += border
		pad.Bottom += border
		pad.Left += border
	}
	padStart := math32.Vec2(pad.Left, pad.Top)
	padEnd := math32.Vec2(pad.Right, pad.Bottom)
	avail := size.Sub(padStart).Sub(padEnd)

	res := Result{Positions: make([]math32.Vector2, len(items)), Size: size}
	var lines []line
	cur := line{}
	for i, it := range items {
		res.Positions[i] = it.Pos
		if !it.Visible {
			continue
		}
		im := it.Size.Dim(md)
		if f.Wrap && f.MainSizing == Fixed && len(cur.items) > 0 && cur.main+f.Gap+im > avail.Dim(md) {
			lines = append(lines, cur)
			cur = line{}
		}
		if len(cur.items) > 0 {
			cur.main += f.Gap
		}
		cur.items = append(cur.items, i)
		cur.main += im
		cur.cross = math32.Max(cur.cross, it.Size.Dim(cd))
	}
	if len(cur.items) > 0 {
		lines = append(lines, cur)
	}

	var contentMain, contentCross float32
	for li, ln := range lines {
		contentMain = math32.Max(contentMain, ln.main)
		if li > 0 {
			contentCross += f.CrossGap
		}
		contentCross += ln.cross
	}
	if f.MainSizing == Hug {
		res.Size.SetDim(md, contentMain+padStart.Dim(md)+padEnd.Dim(md))
		avail.SetDim(md, contentMain)
	}
	if f.CrossSizing == Hug {
		res.Size.SetDim(cd, contentCross+padStart.Dim(cd)+padEnd.Dim(cd))
		avail.SetDim(cd, contentCross)
	}

	crossPos := padStart.Dim(cd)
	for _, ln := range lines {
		free := avail.Dim(md) - ln.main
		mainPos := padStart.Dim(md)
		gap := f.Gap
		switch f.Justify {
		case AlignCenter:
			mainPos += free / 2
		case AlignEnd:
			mainPos += free
		case AlignSpaceBetween:
			if len(ln.items) > 1 && free > 0 {
				gap += free / float32(len(ln.items)-1)
			}
		}
		lineCross := ln.cross
		if len(lines) == 1 {
			lineCross = avail.Dim(cd)
		}
		for _, i := range ln.items {
			it := items[i]
			var p math32.Vector2
			p.SetDim(md, mainPos)
			cp := crossPos
			switch f.Align {
			case AlignCenter:
				cp += (lineCross - it.Size.Dim(cd)) / 2
			case AlignEnd:
				cp += lineCross - it.Size.Dim(cd)
			}
			p.SetDim(cd, cp)
			res.Positions[i] = p
			mainPos += it.Size.Dim(md) + gap
		}
		crossPos += ln.cross + f.CrossGap
	}
	return res
}
