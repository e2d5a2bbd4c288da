// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
)

// Shape is the view of a rectangle, ellipse or path.
type Shape struct {
	NodeBase
}

func (sh *Shape) Effects() *Effects {
	return shapeEffects
}

// Outline returns the outline of the shape kind in the box of the view.
// Path points are normalized to the box.
func (sh *Shape) Outline() ppath.Path {
	sz := sh.Size
	p := ppath.Path{}
	switch sh.Raw.Kind() {
	case doc.Rect:
		return sh.rectOutline()
	case doc.Ellipse:
		p.Ellipse(sz.X/2, sz.Y/2, sz.X/2, sz.Y/2)
	case doc.Path:
		pts := sh.Raw.Points()
		if len(pts) < 2 {
			return p
		}
		scaled := make([]math32.Vector2, len(pts))
		for i, pt := range pts {
			scaled[i] = pt.Mul(sz)
		}
		if sh.Raw.Closed() {
			p.Polygon(scaled...)
		} else {
			p.Polyline(scaled...)
		}
	}
	return p
}

func (sh *Shape) RenderNode() *render.Node {
	return sh.styledNode("path")
}

// Bool is the view of a boolean group, which draws the composition
// of the outlines of its children with the boolean operation of the group.
type Bool struct {
	NodeBase
}

func (b *Bool) Effects() *Effects {
	return boolEffects
}

// Arrange computes the bounds from the children, whose outlines may
// have changed, so the composed path is computed again.
func (b *Bool) Arrange() {
	b.clearKeys(KeyBoolPath)
	b.computeBounds(false)
}

func (b *Bool) Outline() ppath.Path {
	p, _ := b.BoolPath()
	return p
}

// BoolPath returns the composed outline of the children in the
// coordinates of the group, and the fill rule to draw it with.
func (b *Bool) BoolPath() (ppath.Path, ppath.FillRule) {
	c := &b.Cache
	if c.begin(KeyBoolPath) {
		c.boolPath, c.boolRule = b.compose()
	}
	return c.boolPath, c.boolRule
}

// compose applies the operation pairwise in z-order. A spatial grid
// over the boxes of the operands finds the pairs that cannot overlap,
// for which the result is known without running the operation.
func (b *Bool) compose() (ppath.Path, ppath.FillRule) {
	ctx := b.Ctx
	op := b.Raw.BoolOp()
	grid := layout.NewSpatialGrid(ctx.Settings.GridCell)
	var acc ppath.Path
	rule := ppath.NonZero
	started := false
	for i, k := range b.Children {
		c := AsView(k)
		if c.State != Measured || !c.Doc.Visible() {
			continue
		}
		p := c.OutlinePath()
		if p.Empty() {
			continue
		}
		p = p.Transform(c.Transform())
		box := p.FastBounds()
		if !started {
			acc, started = p, true
			grid.Insert(i, box)
			continue
		}
		overlaps := grid.Query(box)
		grid.Insert(i, box)
		if len(overlaps) > 0 {
			ctx.Stats.OpsRun++
			acc, rule = ctx.Ops.Op(op, acc, p)
			continue
		}
		ctx.Stats.OpsSkipped++
		switch op {
		case ppath.Union, ppath.Exclude:
			acc = acc.Append(p)
		case ppath.Intersect:
			acc = ppath.Path{}
		}
	}
	return acc, rule
}

func (b *Bool) RenderNode() *render.Node {
	n := b.styledNode("path")
	_, rule := b.BoolPath()
	n.SetAttr("fill-rule", rule.String())
	n.SetAttr("data-op", b.Raw.BoolOp().String())
	return n
}
