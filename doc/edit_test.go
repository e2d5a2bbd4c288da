// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"strings"
	"testing"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEdits = `
- id: r1
  pos: [3, 4]
  size: [20, 30]
  fills: [green]
- id: label
  text: Go
- id: b1
  override: {target: label, category: text, value: Stop}
- id: page
  add: {id: r2, kind: ellipse, size: [5, 5]}
- id: r2
  move: 0
- resource: brand
  resourceFills: ["#00f"]
- resource: accent
  resourceFills: ["#000"]
- id: b1
  remove: true
`

func TestApplyEdits(t *testing.T) {
	d, err := ReadString(testDoc)
	require.NoError(t, err)
	es, err := ReadEdits(strings.NewReader(testEdits))
	require.NoError(t, err)
	require.Len(t, es, 8)

	r1 := d.Find("r1")
	var got [][]Field
	r1.Watch(func(fields []Field) { got = append(got, fields) })
	require.NoError(t, d.Apply(es[0]))
	assert.Len(t, got, 1)
	assert.Equal(t, math32.Vec2(3, 4), r1.Transform().Pos())
	assert.Equal(t, math32.Vec2(20, 30), r1.Size())
	assert.Equal(t, colors.Green, r1.Style().Fills[0].Color)

	require.NoError(t, d.Apply(es[1]))
	assert.Equal(t, "Go", d.Symbols["button"].Find("label").Text())

	require.NoError(t, d.Apply(es[2]))
	v, ok := d.Find("b1").Override("label", OverrideText)
	require.True(t, ok)
	assert.Equal(t, "Stop", v.Value())

	require.NoError(t, d.Apply(es[3]))
	require.NoError(t, d.Apply(es[4]))
	assert.Equal(t, "r2", d.Root.ShapeChildren()[0].ID())
	assert.Equal(t, Ellipse, d.Find("r2").Kind())

	require.NoError(t, d.Apply(es[5]))
	r, ok := d.Resources.Resource("brand")
	require.True(t, ok)
	assert.Equal(t, []styles.Fill{{Color: colors.Blue}}, r.Value.Fills)
	require.NoError(t, d.Apply(es[6]))
	assert.Equal(t, 2, d.Resources.Len())

	require.NoError(t, d.Apply(es[7]))
	assert.Nil(t, d.Find("b1"))
}

func TestApplyEditErrors(t *testing.T) {
	d, err := ReadString(testDoc)
	require.NoError(t, err)
	assert.Error(t, d.Apply(&Edit{ID: "nope"}))
	assert.Error(t, d.Apply(&Edit{ID: "page", Remove: true}))
	assert.Error(t, d.Apply(&Edit{Resource: "missing"}))
	assert.Error(t, d.Apply(&Edit{ID: "r1", Fills: []string{"notacolor"}}))
	assert.Error(t, d.Apply(&Edit{ID: "b1", Override: &EditOverride{Target: "label", Category: "bogus"}}))

	es, err := ReadEdits(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, es)
}
