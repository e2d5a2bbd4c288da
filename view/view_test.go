// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"context"
	"testing"
	"time"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/symbol"
	"cogentcore.org/vector/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(id string, x, y, w, h float32) *doc.Shape {
	r := doc.NewShape(doc.Rect, id)
	r.SetPos(x, y)
	r.SetSize(w, h)
	return r
}

func frame(id string, w, h float32, kids ...*doc.Shape) *doc.Shape {
	f := doc.NewShape(doc.Frame, id)
	f.SetSize(w, h)
	f.AddChild(kids...)
	return f
}

func drain(t *testing.T, c *Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Drain(ctx))
}

// newTestContext returns a drained context with the given root and
// symbol definitions.
func newTestContext(t *testing.T, root *doc.Shape, defs ...doc.Node) *Context {
	t.Helper()
	c := NewContext()
	c.Symbols = symbol.NewLibrary(defs...)
	c.SetRoot(root)
	t.Cleanup(c.Close)
	drain(t, c)
	return c
}

const fullDoc = `
resources: |
  #brand { fill: #ff0000; }
  #edge { border: 2px solid #000000; }
symbols:
  - id: button
    kind: symbol
    size: [100, 40]
    children:
      - id: bg
        kind: rect
        size: [100, 40]
        pins: [left, right, top, bottom]
        refs: {borders: edge}
      - id: label
        kind: text
        text: OK
        size: [100, 20]
        pos: [0, 10]
        pins: [left, right]
        textStyle: {align: center}
root:
  id: page
  kind: frame
  size: [400, 300]
  fills: ["#ffffff"]
  children:
    - id: row
      kind: frame
      size: [300, 50]
      layout: {direction: row, gap: 5, padding: "5", crossSizing: hug}
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
        - id: r2
          kind: rect
          size: [20, 20]
          radius: "4"
    - id: m
      kind: ellipse
      mask: true
      pos: [0, 100]
      size: [50, 50]
    - id: masked
      kind: rect
      pos: [10, 110]
      size: [30, 30]
      fills: ["#00ff00"]
    - id: note
      kind: text
      pos: [200, 100]
      size: [40, 10]
      text: a long note that wraps
    - id: u
      kind: bool
      boolOp: union
      children:
        - {id: u1, kind: rect, pos: [0, 200], size: [20, 20]}
        - {id: u2, kind: ellipse, pos: [10, 200], size: [20, 20]}
        - {id: u3, kind: rect, pos: [300, 200], size: [20, 20]}
`

func TestFromScratch(t *testing.T) {
	d, err := doc.ReadString(fullDoc)
	require.NoError(t, err)
	c := NewDocumentContext(d)
	t.Cleanup(c.Close)
	drain(t, c)

	root := d.Root
	row := root.Find("row")
	row.Find("r1").SetSize(15, 15)
	drain(t, c)
	b1 := row.Find("b1")
	b1.SetOverride("label", doc.OverrideText, "Go")
	b1.SetSize(120, 40)
	drain(t, c)
	d.Resources.Update("brand", func(v *styles.Values) {
		v.Fills = []styles.Fill{{Color: colors.Blue}}
	})
	row.AutoLayout().Gap = 8
	row.SetAutoLayout(row.AutoLayout())
	row.AddChild(rect("r3", 0, 0, 5, 5))
	drain(t, c)
	root.Find("m").SetVisible(false)
	root.Find("u2").SetPos(100, 200)
	root.Find("note").SetText("short")
	row.RemoveChild(row.Find("r2"))
	drain(t, c)

	fresh := NewDocumentContext(d)
	t.Cleanup(fresh.Close)
	drain(t, fresh)
	assert.Equal(t, fresh.Render().Markup(), c.Render().Markup())
	assert.Equal(t, fresh.NumViews(), c.NumViews())
}

func TestFillsDoNotClearBorders(t *testing.T) {
	for _, e := range []*Effects{groupEffects, shapeEffects, textEffects, instanceEffects, tableEffects, boolEffects} {
		assert.NotContains(t, e.Keys[doc.FieldFills], KeyBorders)
		assert.NotContains(t, e.Keys[doc.FieldFills], KeyBorderPath)
		assert.NotContains(t, e.Keys[doc.FieldFillsRef], KeyBorders)
	}
	assert.ElementsMatch(t, []CacheKey{KeyOutlinePath, KeyBorderPath}, shapeEffects.Keys[doc.FieldPoints])
	assert.ElementsMatch(t, []CacheKey{KeyBorders, KeyBorderPath}, shapeEffects.Keys[doc.FieldBorders])

	p := doc.NewShape(doc.Path, "p")
	p.SetSize(10, 10)
	p.SetPoints(true, math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(1, 1))
	p.SetFills(styles.Fill{Color: colors.Red})
	p.SetBorders(styles.Border{Color: colors.Black, Width: 2, Position: styles.BorderOutside})
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(p)
	c := newTestContext(t, g)
	v := c.FindView("p")
	require.NotNil(t, v)
	for _, k := range []CacheKey{KeyFills, KeyBorders, KeyOutlinePath, KeyBorderPath} {
		assert.True(t, v.Cache.Valid(k), k.String())
	}

	p.SetFills(styles.Fill{Color: colors.Blue})
	assert.False(t, v.Cache.Valid(KeyFills))
	assert.True(t, v.Cache.Valid(KeyBorders))
	assert.True(t, v.Cache.Valid(KeyBorderPath))

	p.SetPoints(true, math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec2(0, 1))
	assert.False(t, v.Cache.Valid(KeyOutlinePath))
	assert.False(t, v.Cache.Valid(KeyBorderPath))
	assert.True(t, v.Cache.Valid(KeyBorders))

	drain(t, c)
	assert.Equal(t, []styles.Fill{{Color: colors.Blue}}, v.Fills())
	assert.Equal(t, 1, v.Cache.Computes[KeyBorders])
	assert.Equal(t, 2, v.Cache.Computes[KeyFills])
}

func TestMaskMap(t *testing.T) {
	a, b, cm, d := rect("A", 0, 0, 1, 1), rect("B", 0, 0, 1, 1), rect("C", 0, 0, 1, 1), rect("D", 0, 0, 1, 1)
	a.SetMask(true)
	cm.SetMask(true)
	assert.Equal(t, map[string]string{"B": "A", "D": "C"}, MaskMap([]doc.Node{a, b, cm, d}))

	g := doc.NewShape(doc.Group, "g")
	g.AddChild(a, b, cm, d)
	c := newTestContext(t, g)
	root := c.Root.AsView()
	assert.Equal(t, map[string]string{"B": "A", "D": "C"}, root.Masks)
	bn := c.Render().Find("B")
	require.NotNil(t, bn)
	m, _ := bn.Attr("mask")
	assert.Equal(t, "url(#mask-A)", m)

	cm.SetVisible(false)
	drain(t, c)
	assert.Equal(t, map[string]string{"B": "A", "D": "A"}, root.Masks)

	a.SetMask(false)
	drain(t, c)
	assert.Equal(t, map[string]string{}, root.Masks)
	_, has := c.Render().Find("B").Attr("mask")
	assert.False(t, has)
}

func TestMaskedBounds(t *testing.T) {
	m := rect("m", 0, 0, 10, 10)
	m.SetMask(true)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(m, rect("r", 50, 50, 10, 10))
	c := newTestContext(t, g)
	b := c.Root.AsView().Bounds
	assert.Equal(t, math32.B2(0, 0, 10, 10), b.Content)
	assert.Equal(t, math32.B2(0, 0, 60, 60), b.Outer)
}

func TestConstraints(t *testing.T) {
	right := rect("right", 10, 0, 20, 10)
	right.SetPins(layout.PinRight | layout.PinTop)
	both := rect("both", 10, 20, 80, 10)
	both.SetPins(layout.PinLeft | layout.PinRight | layout.PinTop)
	center := rect("center", 40, 30, 20, 10)
	center.SetPins(layout.PinWidth | layout.PinTop)
	scale := rect("scale", 10, 40, 20, 10)
	scale.SetPins(layout.PinTop)
	def := doc.NewShape(doc.Symbol, "card")
	def.SetSize(100, 50)
	def.AddChild(right, both, center, scale)

	in := doc.NewShape(doc.Instance, "in")
	in.SetSymbolRef("card")
	in.SetSize(200, 50)
	in.SetCustomSize(true)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(in)
	c := newTestContext(t, g, def)

	v := c.FindView("in/right")
	require.NotNil(t, v)
	assert.Equal(t, float32(110), v.Pos.X)
	assert.Equal(t, float32(20), v.Size.X)
	bv := c.FindView("in/both")
	assert.Equal(t, float32(10), bv.Pos.X)
	assert.Equal(t, float32(180), bv.Size.X)
	assert.Equal(t, float32(90), c.FindView("in/center").Pos.X)
	sv := c.FindView("in/scale")
	assert.Equal(t, math32.Vec2(20, 40), sv.Pos)
	assert.Equal(t, math32.Vec2(40, 10), sv.Size)

	in.SetSize(300, 50)
	drain(t, c)
	assert.Equal(t, float32(210), v.Pos.X)
	assert.Equal(t, float32(20), v.Size.X)
}

func TestInstanceScale(t *testing.T) {
	r := rect("r", 10, 10, 20, 20)
	r.SetPins(layout.PinRight | layout.PinBottom)
	sub := doc.NewShape(doc.Group, "sub")
	sub.AddChild(rect("s", 50, 0, 10, 10))
	def := doc.NewShape(doc.Symbol, "def")
	def.SetSize(100, 40)
	def.AddChild(r, sub)
	in := doc.NewShape(doc.Instance, "in")
	in.SetSymbolRef("def")
	in.SetSize(200, 80)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(in)
	c := newTestContext(t, g, def)

	v := c.FindView("in/r")
	require.NotNil(t, v)
	assert.Equal(t, math32.Vec2(20, 20), v.Pos)
	assert.Equal(t, math32.Vec2(40, 40), v.Size)
	sv := c.FindView("in/s")
	assert.Equal(t, math32.Vec2(100, 0), sv.Pos)
	assert.Equal(t, math32.Vec2(20, 20), sv.Size)

	in.SetCustomSize(true)
	drain(t, c)
	assert.Equal(t, math32.Vec2(110, 50), v.Pos)
	assert.Equal(t, math32.Vec2(20, 20), v.Size)
}

func TestAutoLayout(t *testing.T) {
	f := frame("f", 100, 20, rect("a", 0, 0, 10, 10), rect("b", 0, 0, 10, 10), rect("c", 0, 0, 10, 10))
	f.SetAutoLayout(&layout.Flow{Direction: layout.Row, Gap: 5})
	c := newTestContext(t, f)
	xs := []float32{}
	for _, id := range []string{"a", "b", "c"} {
		xs = append(xs, c.FindView(id).Pos.X)
	}
	assert.Equal(t, []float32{0, 15, 30}, xs)

	f.Find("a").SetSize(20, 10)
	drain(t, c)
	assert.Equal(t, float32(25), c.FindView("b").Pos.X)
	assert.Equal(t, float32(40), c.FindView("c").Pos.X)

	f.Find("b").SetVisible(false)
	drain(t, c)
	assert.Equal(t, float32(25), c.FindView("c").Pos.X)
}

func TestAutoLayoutHug(t *testing.T) {
	f := frame("f", 100, 100, rect("a", 0, 0, 10, 10), rect("b", 0, 0, 30, 20))
	f.SetAutoLayout(&layout.Flow{Direction: layout.Column, Gap: 2, MainSizing: layout.Hug, CrossSizing: layout.Hug})
	f.SetBorders(styles.Border{Color: colors.Black, Width: 4, Position: styles.BorderInside})
	c := newTestContext(t, f)
	assert.Equal(t, math32.Vec2(30, 32), c.Root.AsView().Size)

	fl := *f.AutoLayout()
	fl.BorderSpace = true
	f.SetAutoLayout(&fl)
	drain(t, c)
	assert.Equal(t, math32.Vec2(38, 40), c.Root.AsView().Size)
	assert.Equal(t, math32.Vec2(4, 4), c.FindView("a").Pos)
}

func TestLayoutOncePerTick(t *testing.T) {
	r := rect("r", 0, 0, 10, 10)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(r, rect("s", 20, 0, 10, 10))
	c := newTestContext(t, g)
	v := c.FindView("r")
	n := v.Layouts
	v.NeedsLayout()
	v.NeedsLayout()
	r.SetFills(styles.Fill{Color: colors.Red})
	r.SetPos(1, 1)
	c.Tick()
	assert.Equal(t, n+1, v.Layouts)
	assert.Equal(t, 1, c.FindView("s").Layouts)
	assert.True(t, c.Idle())
}

func TestFocusBudget(t *testing.T) {
	leaf := rect("leaf", 0, 0, 10, 10)
	f := frame("f", 50, 50, leaf)
	other := rect("other", 60, 0, 10, 10)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(f, other)
	c := newTestContext(t, g)
	lv, ov := c.FindView("leaf"), c.FindView("other")
	ln, on := lv.Layouts, ov.Layouts

	now := time.Now()
	c.now = func() time.Time {
		now = now.Add(50 * time.Millisecond)
		return now
	}
	c.Focus = lv
	lv.NeedsLayout()
	ov.NeedsLayout()
	c.Tick()
	assert.Equal(t, 1, c.Stats.BudgetExits)
	assert.Equal(t, ln+1, lv.Layouts)
	assert.Equal(t, on, ov.Layouts)
	assert.True(t, c.isQueued(ov))

	c.Tick()
	assert.Equal(t, 1, c.Stats.BudgetExits)
	assert.Equal(t, on+1, ov.Layouts)
}

func TestTextBehaviors(t *testing.T) {
	mk := func(id string, b text.Behaviors, st text.Style) *doc.Shape {
		tx := doc.NewShape(doc.Text, id)
		tx.SetPos(100, 100)
		tx.SetSize(40, 10)
		tx.SetText("one two three four")
		tx.SetTextBehavior(b)
		tx.SetTextStyle(st)
		return tx
	}
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(
		mk("fixed", text.Fixed, text.Style{}),
		mk("fixedc", text.Fixed, text.Style{VAlign: text.Center}),
		mk("flex", text.Flexible, text.Style{Align: text.End}),
		mk("both", text.FixedBoth, text.Style{}),
	)
	c := newTestContext(t, g)

	fixed := c.FindView("fixed")
	assert.Equal(t, float32(40), fixed.Size.X)
	assert.Greater(t, fixed.Size.Y, float32(10))
	assert.Equal(t, math32.Vec2(100, 100), fixed.Pos)

	fixedc := c.FindView("fixedc")
	d := fixedc.Size.Y - 10
	assert.Equal(t, 100-d/2, fixedc.Pos.Y)

	flex := c.FindView("flex")
	assert.Greater(t, flex.Size.X, float32(40))
	assert.Equal(t, 100-(flex.Size.X-40), flex.Pos.X)
	assert.Len(t, flex.This.(*Text).metrics.Lines, 1)

	both := c.FindView("both")
	assert.Equal(t, math32.Vec2(40, 10), both.Size)
	assert.Equal(t, math32.Vec2(100, 100), both.Pos)

	computes := fixed.Cache.Computes[KeyTextLayout]
	g.Find("fixed").SetText("one")
	drain(t, c)
	assert.Equal(t, computes+1, fixed.Cache.Computes[KeyTextLayout])
	assert.InDelta(t, 15.6, fixed.Size.Y, 0.01)
}

func TestStylePrecedence(t *testing.T) {
	r := rect("r", 0, 0, 10, 10)
	r.SetFills(styles.Fill{Color: colors.Green})
	r.SetStyleRef(doc.FieldFillsRef, "brand")
	def := doc.NewShape(doc.Symbol, "def")
	def.SetSize(10, 10)
	def.AddChild(r)
	in := doc.NewShape(doc.Instance, "in")
	in.SetSymbolRef("def")
	in.SetSize(10, 10)
	in.SetOverride("r", doc.OverrideFills, []styles.Fill{{Color: colors.Blue}})
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(in)

	lib := styles.NewLibrary(&styles.Resource{ID: "brand", Kind: styles.FillSet, Value: styles.Values{Fills: []styles.Fill{{Color: colors.Red}}}})
	c := NewContext()
	c.Resources = lib
	c.Symbols = symbol.NewLibrary(def)
	c.SetRoot(g)
	t.Cleanup(c.Close)
	drain(t, c)

	v := c.FindView("in/r")
	require.NotNil(t, v)
	assert.Equal(t, colors.Red, v.Fills()[0].Color)

	lib.Delete("brand")
	drain(t, c)
	assert.Equal(t, colors.Blue, v.Fills()[0].Color)

	in.RemoveOverride("r", doc.OverrideFills)
	drain(t, c)
	assert.Equal(t, colors.Green, v.Fills()[0].Color)
	n := v.Cache.Computes[KeyFills]
	v.Fills()
	assert.Equal(t, n, v.Cache.Computes[KeyFills])
}

func TestTable(t *testing.T) {
	tb := doc.NewShape(doc.Table, "t")
	tb.SetSize(100, 60)
	tb.SetTable(&layout.Table{
		Rows: []layout.Track{{Size: 20}, {Weight: 1}},
		Cols: []layout.Track{{Weight: 1}, {Weight: 3}},
	})
	c1 := doc.NewShape(doc.Cell, "c1")
	c1.SetCell(layout.Cell{Row: 1, Col: 1})
	c2 := doc.NewShape(doc.Cell, "c2")
	c2.SetCell(layout.Cell{Row: 0, Col: 0, ColSpan: 2})
	tb.AddChild(c1, c2)
	c := newTestContext(t, tb)

	v1 := c.FindView("c1")
	assert.Equal(t, math32.Vec2(25, 20), v1.Pos)
	assert.Equal(t, math32.Vec2(75, 40), v1.Size)
	assert.Equal(t, math32.Vec2(100, 20), c.FindView("c2").Size)

	c1.SetCell(layout.Cell{Row: 0, Col: 0})
	drain(t, c)
	assert.Equal(t, math32.Vec2(0, 0), v1.Pos)
	assert.Equal(t, math32.Vec2(25, 20), v1.Size)
}

func TestBoolGroup(t *testing.T) {
	u := doc.NewShape(doc.BoolGroup, "u")
	u.AddChild(rect("a", 0, 0, 10, 10), rect("b", 5, 5, 10, 10), rect("far", 500, 500, 10, 10))
	c := newTestContext(t, u)
	v := c.Root.(*Bool)
	assert.Equal(t, 1, c.Stats.OpsRun)
	assert.Equal(t, 1, c.Stats.OpsSkipped)
	p, _ := v.BoolPath()
	assert.Equal(t, math32.B2(0, 0, 510, 510), p.Bounds())
	assert.Equal(t, math32.Vec2(510, 510), v.Size)

	u.SetBoolOp(ppath.Intersect)
	drain(t, c)
	p, _ = v.BoolPath()
	assert.True(t, p.Empty())

	n := v.Cache.Computes[KeyBoolPath]
	u.Find("far").SetVisible(false)
	drain(t, c)
	assert.Greater(t, v.Cache.Computes[KeyBoolPath], n)
	p, _ = v.BoolPath()
	assert.True(t, math32.B2(5, 5, 10, 10).IsEqualApprox(p.Bounds()), p.Bounds().String())
	rn := c.Render()
	rule, _ := rn.Attr("fill-rule")
	assert.Equal(t, "nonzero", rule)
	require.Len(t, rn.Children, 1)
	assert.Equal(t, "defs", rn.Children[0].Tag)
}

func TestRender(t *testing.T) {
	r := rect("r", 5, 5, 10, 10)
	r.SetFills(styles.Fill{Color: colors.Red}, styles.Fill{Color: colors.Blue})
	r.SetLocked(true)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(r)
	c := newTestContext(t, g)
	want := `<g id="g" data-kind="group">
  <path id="r" data-kind="rect" transform="translate(5,5)" data-locked="true" fill="#0000ff" data-fills="#ff0000" d="M 0 0 L 10 0 L 10 10 L 0 10 z"></path>
</g>`
	assert.Equal(t, want, c.Render().Markup())

	rn := c.Render().Find("r")
	renders := c.FindView("g").Renders
	r.SetVisible(false)
	drain(t, c)
	assert.Same(t, rn, c.Render().Find("r"))
	d, _ := rn.Attr("display")
	assert.Equal(t, "none", d)
	assert.Equal(t, renders+1, c.FindView("g").Renders)
}

func TestDestroyReleases(t *testing.T) {
	d, err := doc.ReadString(fullDoc)
	require.NoError(t, err)
	c := NewDocumentContext(d)
	drain(t, c)
	assert.Greater(t, c.Registry.Len(), 0)
	row := d.Root.Find("row")
	b1 := row.Find("b1")
	row.RemoveChild(b1)
	drain(t, c)
	assert.Nil(t, c.FindView("b1"))
	assert.Equal(t, 0, b1.NumWatchers())
	v, _ := b1.Override("label", doc.OverrideText)
	assert.Equal(t, 0, v.NumWatchers())

	c.Close()
	assert.Equal(t, 0, c.Registry.Len())
	assert.Equal(t, 0, d.Root.NumWatchers())
	r, _ := d.Resources.Resource("brand")
	assert.Equal(t, 0, r.NumWatchers())
}

func TestReorderKeepsViews(t *testing.T) {
	a, b := rect("a", 0, 0, 10, 10), rect("b", 20, 0, 10, 10)
	g := doc.NewShape(doc.Group, "g")
	g.AddChild(a, b)
	c := newTestContext(t, g)
	va := c.FindView("a")
	g.MoveChild(0, 1)
	drain(t, c)
	assert.Same(t, va, c.FindView("a"))
	assert.Equal(t, 1, va.IndexInParent())

	sub := doc.NewShape(doc.Group, "sub")
	g.AddChild(sub)
	g.Update(func() {
		g.RemoveChild(a)
		sub.AddChild(a)
	})
	drain(t, c)
	assert.Same(t, va, c.FindView("a"))
	assert.Equal(t, "sub", AsView(va.Parent).Name)
	assert.True(t, c.Registry.Has(va, slotDoc))
}
