// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
)

// Table is the view of a table, which places its cell children in
// the boxes of their rows and columns.
type Table struct {
	NodeBase
}

func (t *Table) Effects() *Effects {
	return tableEffects
}

// Measure grows the table to fit its fixed rows and columns.
func (t *Table) Measure() {
	tb := t.Raw.Table()
	if tb == nil {
		return
	}
	cs := tb.ContentSize()
	t.Size = t.Size.Max(cs)
}

// Place places cells in their grid box, and other children by
// their constraints.
func (t *Table) Place(i int, c *NodeBase) (pos, size math32.Vector2) {
	tb := t.Raw.Table()
	if tb == nil || c.Raw.Kind() != doc.Cell {
		return t.NodeBase.Place(i, c)
	}
	box := tb.CellBox(c.Raw.Cell(), t.Size)
	if box.IsEmpty() {
		return math32.Vector2{}, math32.Vector2{}
	}
	return box.Min, box.Size()
}

func (t *Table) Outline() ppath.Path {
	return t.rectOutline()
}

func (t *Table) RenderNode() *render.Node {
	tb := t.Raw.Table()
	n := t.baseNode("g")
	if tb != nil {
		n.SetAttr("data-grid", fmt.Sprintf("%dx%d", len(tb.Rows), len(tb.Cols)))
	}
	return n.AddChild(t.backgroundNode())
}
