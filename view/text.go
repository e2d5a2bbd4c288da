// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/render"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/text"
)

// Text is the view of a text shape, whose box follows its content
// according to its [text.Behaviors].
type Text struct {
	NodeBase
	metrics text.Metrics
}

func (t *Text) Effects() *Effects {
	return textEffects
}

// Measure lays out the text in the placed box and grows the box to
// the content where the behavior allows it. A box that grows keeps
// its alignment: a centered box grows equally on both sides, and an
// end aligned box grows toward the start.
func (t *Text) Measure() {
	b := t.Raw.TextBehavior()
	st := t.Raw.TextStyle()
	m := t.TextLayout(b.Wraps())
	t.metrics = m
	switch b {
	case text.Fixed:
		if d := m.ContentHeight - t.Size.Y; d > 0 {
			t.Size.Y = m.ContentHeight
			t.Pos.Y -= alignShift(st.VAlign, d)
		}
	case text.Flexible:
		if d := m.ContentWidth - t.Size.X; d > 0 {
			t.Size.X = m.ContentWidth
			t.Pos.X -= alignShift(st.Align, d)
		}
		if d := m.ContentHeight - t.Size.Y; d > 0 {
			t.Size.Y = m.ContentHeight
			t.Pos.Y -= alignShift(st.VAlign, d)
		}
	}
}

// alignShift returns the part of a growth d that goes toward the start.
func alignShift(a text.Aligns, d float32) float32 {
	switch a {
	case text.Center:
		return d / 2
	case text.End:
		return d
	}
	return 0
}

func (t *Text) RenderNode() *render.Node {
	n := t.baseNode("text")
	st := t.Raw.TextStyle()
	col := st.Color
	if fills := styles.VisibleFills(t.Fills()); len(fills) > 0 {
		col = colors.AsRGBA(fills[len(fills)-1].Color)
	} else if col.A == 0 {
		col = colors.Black
	}
	size := st.FontSize()
	n.SetAttr("fill", colors.AsHex(col))
	n.SetFloat("font-size", size)
	n.SetAttr("data-behavior", t.Raw.TextBehavior().String())
	dy := alignShift(st.VAlign, t.Size.Y-t.metrics.ContentHeight)
	for _, ln := range t.metrics.Lines {
		span := render.NewNode("tspan")
		span.SetFloat("x", ln.Pos.X+alignShift(st.Align, t.Size.X-ln.Width))
		span.SetFloat("y", ln.Pos.Y+dy+size)
		span.Text = ln.Text
		n.AddChild(span)
	}
	return n
}
