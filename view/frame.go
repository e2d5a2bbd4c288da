// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
	"cogentcore.org/vector/styles"
)

// Group is the view of a group or symbol: a container without its
// own box, whose size is the union of its children.
type Group struct {
	NodeBase
}

// Arrange computes the bounds from the children.
func (g *Group) Arrange() {
	g.computeBounds(false)
}

// Frame is the view of a frame or table cell: a container with its
// own box and style, that arranges its children with its auto-layout
// when it has one.
type Frame struct {
	NodeBase
}

// Arrange positions the children by the auto-layout, which may also
// resize the frame to hug them, and computes the bounds.
func (fr *Frame) Arrange() {
	if f := fr.Raw.AutoLayout(); f != nil {
		fr.arrangeFlow(f)
	}
	fr.computeBounds(true)
}

func (fr *Frame) arrangeFlow(f *layout.Flow) {
	items := make([]layout.Item, len(fr.Children))
	for i, k := range fr.Children {
		c := AsView(k)
		items[i] = layout.Item{Pos: c.Pos, Size: c.Size, Visible: c.State == Measured && c.Doc.Visible()}
	}
	res := f.Arrange(items, fr.Size, styles.BordersInset(fr.Borders()))
	for i, k := range fr.Children {
		AsView(k).setPos(res.Positions[i])
	}
	if res.Size != fr.Size {
		fr.Size = res.Size
		fr.clearKeys(KeyOutlinePath)
	}
}

func (fr *Frame) Outline() ppath.Path {
	return fr.rectOutline()
}

func (fr *Frame) RenderNode() *render.Node {
	return fr.baseNode("g").AddChild(fr.backgroundNode())
}

// setPos moves the view to the given position, moving its bounds
// along with it.
func (nb *NodeBase) setPos(pos math32.Vector2) {
	d := pos.Sub(nb.Pos)
	if d == (math32.Vector2{}) {
		return
	}
	nb.Pos = pos
	nb.Bounds.Content = nb.Bounds.Content.Translate(d)
	nb.Bounds.Visible = nb.Bounds.Visible.Translate(d)
	nb.Bounds.Outer = nb.Bounds.Outer.Translate(d)
	nb.NeedsRender()
}
