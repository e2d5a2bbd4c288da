// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"slices"

	"cogentcore.org/vector/math32"
)

type cellKey struct{ x, y int }

// SpatialGrid is a uniform grid of buckets for finding boxes that may
// overlap a given box, without testing every pair.
type SpatialGrid struct {
	cell  float32
	cells map[cellKey][]int
	boxes map[int]math32.Box2
}

// NewSpatialGrid returns a new grid with the given cell size.
func NewSpatialGrid(cell float32) *SpatialGrid {
	if cell <= 0 {
		cell = 64
	}
	return &SpatialGrid{cell: cell, cells: map[cellKey][]int{}, boxes: map[int]math32.Box2{}}
}

func (g *SpatialGrid) span(b math32.Box2) (x0, y0, x1, y1 int) {
	x0 = int(math32.Floor(b.Min.X / g.cell))
	y0 = int(math32.Floor(b.Min.Y / g.cell))
	x1 = int(math32.Floor(b.Max.X / g.cell))
	y1 = int(math32.Floor(b.Max.Y / g.cell))
	return
}

// Insert adds the box with the given index. Empty boxes are ignored.
func (g *SpatialGrid) Insert(idx int, b math32.Box2) {
	if b.IsEmpty() {
		return
	}
	g.boxes[idx] = b
	x0, y0, x1, y1 := g.span(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k := cellKey{x, y}
			g.cells[k] = append(g.cells[k], idx)
		}
	}
}

// Query returns the sorted indexes of the boxes that intersect b.
func (g *SpatialGrid) Query(b math32.Box2) []int {
	if b.IsEmpty() {
		return nil
	}
	seen := map[int]bool{}
	var res []int
	x0, y0, x1, y1 := g.span(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, idx := range g.cells[cellKey{x, y}] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				if g.boxes[idx].IntersectsBox(b) {
					res = append(res, idx)
				}
			}
		}
	}
	slices.Sort(res)
	return res
}
