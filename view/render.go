// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
	"cogentcore.org/vector/styles"
)

// render rebuilds the render node of the view in place, so that the
// render node of the parent keeps pointing at it, and returns it.
func (nb *NodeBase) render() *render.Node {
	v := nb.This.(Viewer)
	delete(nb.Ctx.dirty, nb)
	nb.Renders++
	nb.Ctx.Stats.Renders++
	if nb.Ctx.Settings.RenderTrace {
		slog.Info("view.Render", "view", nb.Path())
	}
	n := v.RenderNode()
	inner := n
	if nb.Doc.IsMask() {
		n = render.NewNode("mask").SetAttr("id", maskID(nb.Name)).AddChild(inner)
	}
	dst := inner
	if nb.Raw.Kind() == doc.BoolGroup && len(nb.Children) > 0 {
		dst = render.NewNode("defs")
		inner.AddChild(dst)
	}
	for _, k := range nb.Children {
		c := AsView(k)
		cn := c.rendered
		if cn == nil {
			cn = c.render()
		}
		dst.AddChild(cn)
	}
	if nb.rendered == nil {
		nb.rendered = n
	} else {
		*nb.rendered = *n
	}
	return nb.rendered
}

// maskID returns the id of the mask element of the view with the given identity.
func maskID(identity string) string {
	return "mask-" + identity
}

// baseNode returns a render node with the given tag and the attributes
// shared by all views: identity, kind, transform, visibility and mask.
func (nb *NodeBase) baseNode(tag string) *render.Node {
	n := render.NewNode(tag)
	n.SetAttr("id", nb.Name)
	n.SetAttr("data-kind", nb.Raw.Kind().String())
	if tr := transformAttr(nb.Transform()); tr != "" {
		n.SetAttr("transform", tr)
	}
	if !nb.Doc.Visible() {
		n.SetAttr("display", "none")
	}
	if nb.Doc.Locked() {
		n.SetAttr("data-locked", "true")
	}
	if p := nb.parentView(); p != nil {
		if m, ok := p.Masks[nb.Raw.ID()]; ok {
			n.SetAttr("mask", "url(#"+maskID(Identity(m, nb.Stack))+")")
		}
	}
	nb.filterAttr(n)
	return n
}

// styledNode returns a render node with the given tag, the base
// attributes, and the resolved fill and border attributes.
func (nb *NodeBase) styledNode(tag string) *render.Node {
	n := nb.baseNode(tag)
	nb.styleAttrs(n)
	return n
}

// backgroundNode returns a path node that draws the style of a
// container under its children.
func (nb *NodeBase) backgroundNode() *render.Node {
	n := render.NewNode("path").SetAttr("class", "background")
	nb.styleAttrs(n)
	return n
}

// styleAttrs sets the fill, outline and border attributes of n.
func (nb *NodeBase) styleAttrs(n *render.Node) {
	fills := styles.VisibleFills(nb.Fills())
	if len(fills) == 0 {
		n.SetAttr("fill", "none")
	} else {
		top := fills[len(fills)-1]
		n.SetAttr("fill", colors.AsHex(top.Color))
		if len(fills) > 1 {
			under := make([]string, len(fills)-1)
			for i, f := range fills[:len(fills)-1] {
				under[i] = colors.AsHex(f.Color)
			}
			n.SetAttr("data-fills", strings.Join(under, " "))
		}
	}
	if p := nb.OutlinePath(); !p.Empty() {
		n.SetAttr("d", p.ToSVG())
	}
	if bp := nb.BorderPath(); !bp.Empty() {
		var widest styles.Border
		for _, b := range nb.Borders() {
			if !b.Hidden && b.Width > widest.Width {
				widest = b
			}
		}
		stroke := render.NewNode("path").SetAttr("d", bp.ToSVG()).SetAttr("fill", "none")
		stroke.SetAttr("stroke", colors.AsHex(widest.Color)).SetFloat("stroke-width", widest.Width)
		stroke.SetAttr("data-position", widest.Position.String())
		n.AddChild(stroke)
	}
}

// filterAttr sets the filter attribute from the shadows and the blur.
func (nb *NodeBase) filterAttr(n *render.Node) {
	var fs []string
	for _, s := range nb.Shadows() {
		if s.Hidden {
			continue
		}
		kind := "drop-shadow"
		if s.Inner {
			kind = "inner-shadow"
		}
		fs = append(fs, fmt.Sprintf("%s(%g %g %g %g %s)", kind, s.OffsetX, s.OffsetY, s.Blur, s.Spread, colors.AsHex(s.Color)))
	}
	if b := nb.Blur(); !b.Hidden && b.Radius > 0 {
		fs = append(fs, fmt.Sprintf("blur(%g)", b.Radius))
	}
	if len(fs) > 0 {
		n.SetAttr("filter", strings.Join(fs, " "))
	}
}

// transformAttr returns the markup of the given transform, or ""
// for the identity.
func transformAttr(m math32.Matrix2) string {
	if m.IsIdentity() {
		return ""
	}
	if m.XX == 1 && m.YX == 0 && m.XY == 0 && m.YY == 1 {
		return fmt.Sprintf("translate(%g,%g)", m.X0, m.Y0)
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

// RenderNode implements [Viewer] with a plain group.
func (nb *NodeBase) RenderNode() *render.Node {
	return nb.baseNode("g")
}

// rectOutline returns the rounded rectangle outline of the view box.
func (nb *NodeBase) rectOutline() ppath.Path {
	r := nb.Radius()
	p := ppath.Path{}
	p.RoundedRectangleSides(0, 0, nb.Size.X, nb.Size.Y, r.Top, r.Right, r.Bottom, r.Left)
	return p
}
