// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package override

import (
	"testing"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns an outer instance rendering a definition that contains
// an inner instance, whose definition contains the rect "r".
func chain() (outer, inner *doc.Shape, st Stack) {
	outerDef := doc.NewShape(doc.Symbol, "outerDef")
	innerDef := doc.NewShape(doc.Symbol, "innerDef")
	inner = doc.NewShape(doc.Instance, "inner")
	inner.SetSymbolRef("innerDef")
	outerDef.AddChild(inner)
	innerDef.AddChild(doc.NewShape(doc.Rect, "r"))
	outer = doc.NewShape(doc.Instance, "outer")
	outer.SetSymbolRef("outerDef")
	st = Stack{}.Push(Context{outer, outerDef}).Push(Context{inner, innerDef})
	return
}

func TestStackKey(t *testing.T) {
	_, _, st := chain()
	assert.Equal(t, "inner/r", st.Key(0, "r"))
	assert.Equal(t, "r", st.Key(1, "r"))
	assert.Equal(t, "outer/inner", st.Identity())
}

func TestResolveOuter(t *testing.T) {
	outer, _, st := chain()
	red := []styles.Fill{{Color: colors.Red}}
	v := outer.SetOverride("inner/r", doc.OverrideFills, red)

	r := Resolve("r", doc.OverrideFills, st)
	require.True(t, r.Found)
	assert.Equal(t, red, r.Value)
	require.Len(t, r.Sources, 2)
	assert.Nil(t, r.Sources[0].Variable)
	assert.Same(t, v, r.Sources[1].Variable)

	blue := []styles.Fill{{Color: colors.Blue}}
	v.Set(blue)
	assert.Equal(t, blue, Resolve("r", doc.OverrideFills, st).Value)
}

func TestResolveNearestWins(t *testing.T) {
	outer, inner, st := chain()
	outer.SetOverride("inner/r", doc.OverrideText, "outer")
	inner.SetOverride("r", doc.OverrideText, "inner")
	r := Resolve("r", doc.OverrideText, st)
	assert.Equal(t, "inner", r.Value)
	assert.Len(t, r.Sources, 1)

	inner.RemoveOverride("r", doc.OverrideText)
	assert.Equal(t, "outer", Resolve("r", doc.OverrideText, st).Value)
}

func TestResolveKindMismatch(t *testing.T) {
	outer, inner, st := chain()
	inner.SetOverride("r", doc.OverrideFills, "red")
	r := Resolve("r", doc.OverrideFills, st)
	assert.False(t, r.Found)
	assert.Len(t, r.Sources, 2)

	outer.SetOverride("inner/r", doc.OverrideFills, []styles.Fill{{Color: colors.Red}})
	r = Resolve("r", doc.OverrideFills, st)
	assert.True(t, r.Found)

	assert.False(t, Resolve("r", doc.OverrideFills, nil).Found)
}

func TestDecorator(t *testing.T) {
	outer, _, st := chain()
	r := doc.NewShape(doc.Text, "r")
	r.SetText("local")
	var seen []doc.Categories
	d := NewDecorator(r, st, func(cat doc.Categories, res Resolution) { seen = append(seen, cat) })
	assert.Equal(t, "local", d.Text())
	assert.True(t, d.Visible())

	outer.SetOverride("inner/r", doc.OverrideText, "over")
	outer.SetOverride("inner/r", doc.OverrideVisible, false)
	assert.Equal(t, "over", d.Text())
	assert.False(t, d.Visible())
	assert.Equal(t, "r", d.ID())
	assert.Equal(t, []doc.Categories{doc.OverrideText, doc.OverrideVisible, doc.OverrideText, doc.OverrideVisible}, seen)

	assert.Same(t, r, NewDecorator(r, nil, nil))
}
