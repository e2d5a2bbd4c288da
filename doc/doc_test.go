// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"testing"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNotify(t *testing.T) {
	s := NewShape(Rect, "r")
	var got [][]Field
	unwatch := s.Watch(func(fields []Field) { got = append(got, fields) })
	s.SetSize(10, 20)
	s.SetFills(styles.Fill{Color: colors.Red})
	assert.Equal(t, [][]Field{{FieldSize}, {FieldFills}}, got)
	assert.Equal(t, math32.Vec2(10, 20), s.Size())

	got = nil
	s.Update(func() {
		s.SetSize(5, 5)
		s.SetPos(1, 2)
		s.SetSize(6, 6)
	})
	assert.Equal(t, [][]Field{{FieldSize, FieldTransform}}, got)
	assert.Equal(t, math32.Vec2(1, 2), s.Transform().Pos())

	unwatch()
	s.SetVisible(false)
	assert.Len(t, got, 1)
	assert.Equal(t, 0, s.NumWatchers())
	assert.False(t, s.Visible())
}

func TestShapeChildren(t *testing.T) {
	g := NewShape(Group, "g")
	a, b, c := NewShape(Rect, "a"), NewShape(Rect, "b"), NewShape(Rect, "c")
	n := 0
	g.Watch(func(fields []Field) {
		assert.Equal(t, []Field{FieldChildren}, fields)
		n++
	})
	g.AddChild(a, b)
	g.InsertChild(c, 0)
	assert.Equal(t, []*Shape{c, a, b}, g.ShapeChildren())
	assert.Equal(t, Node(g), a.Parent())

	g.MoveChild(0, 2)
	assert.Equal(t, []*Shape{a, b, c}, g.ShapeChildren())
	assert.True(t, g.RemoveChild(b))
	assert.False(t, g.RemoveChild(b))
	assert.Nil(t, b.Parent())
	assert.Equal(t, 4, n)

	h := NewShape(Group, "h")
	h.AddChild(a)
	assert.Equal(t, []*Shape{c}, g.ShapeChildren())
	assert.Equal(t, a, h.Find("a"))
	assert.Nil(t, h.Find("c"))
}

func TestShapeOverrides(t *testing.T) {
	s := NewShape(Instance, "i")
	n := 0
	s.Watch(func(fields []Field) { n++ })
	v := s.SetOverride("t", OverrideText, "hi")
	assert.Equal(t, 1, n)
	vn := 0
	v.Watch(func(v *Variable) { vn++ })
	assert.Same(t, v, s.SetOverride("t", OverrideText, "ho"))
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, vn)
	assert.Equal(t, "ho", v.Value())

	s.SetOverride("a", OverrideVisible, false)
	assert.Equal(t, []OverrideKey{{"a", OverrideVisible}, {"t", OverrideText}}, s.Overrides())
	assert.True(t, s.RemoveOverride("a", OverrideVisible))
	_, ok := s.Override("a", OverrideVisible)
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	s := NewShape(Symbol, "s")
	r := NewShape(Rect, "r")
	r.SetFills(styles.Fill{Color: colors.Blue})
	s.AddChild(r)
	c := s.Clone()
	require.Len(t, c.ShapeChildren(), 1)
	cr := c.ShapeChildren()[0]
	assert.Equal(t, "r", cr.ID())
	assert.Equal(t, Node(c), cr.Parent())
	cr.style.Fills[0].Color = colors.Red
	assert.Equal(t, colors.Blue, r.Style().Fills[0].Color)
}

const testDoc = `
resources: |
  #brand { fill: #ff0000; }
symbols:
  - id: button
    kind: symbol
    size: [100, 40]
    children:
      - id: label
        kind: text
        text: OK
        size: [100, 40]
        pins: [left, right]
root:
  id: page
  kind: frame
  size: [400, 300]
  layout: {direction: row, gap: 5, padding: "10"}
  children:
    - id: r1
      kind: rect
      size: [10, 10]
      refs: {fills: brand}
    - id: b1
      kind: instance
      symbol: button
      size: [100, 40]
      overrides:
        - {target: label, category: text, value: Cancel}
        - {target: label, category: fills, value: ["#00f"]}
`

func TestRead(t *testing.T) {
	d, err := ReadString(testDoc)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Resources.Len())
	sym, ok := d.Symbol("button")
	require.True(t, ok)
	assert.Equal(t, layout.PinLeft|layout.PinRight, sym.ShapeChildren()[0].Pins())

	root := d.Root
	assert.Equal(t, Frame, root.Kind())
	require.NotNil(t, root.AutoLayout())
	assert.Equal(t, float32(5), root.AutoLayout().Gap)
	assert.Equal(t, float32(10), root.AutoLayout().Padding.Left)
	assert.Equal(t, "brand", root.Find("r1").Style().FillsRef)

	b1 := root.Find("b1")
	v, ok := b1.Override("label", OverrideText)
	require.True(t, ok)
	assert.Equal(t, "Cancel", v.Value())
	v, ok = b1.Override("label", OverrideFills)
	require.True(t, ok)
	assert.Equal(t, []styles.Fill{{Color: colors.Blue}}, v.Value())
}

func TestReadErrors(t *testing.T) {
	_, err := ReadString("root: {id: x, kind: blob}")
	assert.Error(t, err)
	_, err = ReadString("symbols: [{id: s, kind: rect}]\nroot: {id: x, kind: group}")
	assert.Error(t, err)
	_, err = ReadString("symbols: []")
	assert.Error(t, err)
	_, err = ReadString("root: {id: x, kind: text, textStyle: {align: middle}}")
	assert.ErrorContains(t, err, `invalid text align "middle"`)
	_, err = ReadString("root: {id: x, kind: text, textStyle: {valign: top}}")
	assert.ErrorContains(t, err, `invalid text align "top"`)

	d, err := ReadString("root: {id: x, kind: text, textStyle: {align: center}}")
	require.NoError(t, err)
	assert.Equal(t, text.Center, d.Root.TextStyle().Align)
	assert.Equal(t, text.Start, d.Root.TextStyle().VAlign)
}
