// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/vector/math32"
)

// Track is one row or column of a table. A track with a zero Weight
// has the fixed Size; the remaining space is shared among weighted
// tracks in proportion to their weights.
type Track struct {
	Size   float32
	Weight float32
}

// Table is the row and column structure of a table shape.
type Table struct {
	Rows []Track
	Cols []Track
}

// Cell is the placement of a table cell, with spans of at least 1.
type Cell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// span returns the span clamped to at least 1.
func span(s int) int {
	return max(s, 1)
}

// Sizes returns the resolved sizes of the given tracks for a total size.
func Sizes(tracks []Track, total float32) []float32 {
	res := make([]float32, len(tracks))
	var fixed, weights float32
	for _, t := range tracks {
		if t.Weight > 0 {
			weights += t.Weight
		} else {
			fixed += t.Size
		}
	}
	free := math32.Max(total-fixed, 0)
	for i, t := range tracks {
		if t.Weight > 0 {
			res[i] = free * t.Weight / weights
		} else {
			res[i] = t.Size
		}
	}
	return res
}

// offsets returns the starting offset of each track plus the total.
func offsets(sizes []float32) []float32 {
	res := make([]float32, len(sizes)+1)
	for i, s := range sizes {
		res[i+1] = res[i] + s
	}
	return res
}

// CellBox returns the box of the given cell in a table of the given size.
// Cells are clamped to the table; a cell outside of it gets an empty box.
func (t *Table) CellBox(c Cell, size math32.Vector2) math32.Box2 {
	if c.Row < 0 || c.Col < 0 || c.Row >= len(t.Rows) || c.Col >= len(t.Cols) {
		return math32.B2Empty()
	}
	rows := offsets(Sizes(t.Rows, size.Y))
	cols := offsets(Sizes(t.Cols, size.X))
	r1 := min(c.Row+span(c.RowSpan), len(t.Rows))
	c1 := min(c.Col+span(c.ColSpan), len(t.Cols))
	return math32.B2(cols[c.Col], rows[c.Row], cols[c1], rows[r1])
}

// ContentSize returns the natural size of the table, which is the sum
// of the fixed track sizes.
func (t *Table) ContentSize() math32.Vector2 {
	var s math32.Vector2
	for _, r := range t.Rows {
		s.Y += r.Size
	}
	for _, c := range t.Cols {
		s.X += c.Size
	}
	return s
}
