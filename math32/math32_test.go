// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/vector/base/tolassert"
	. "cogentcore.org/vector/math32"
)

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolassert.EqualVector(t, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolassert.EqualVector(t, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolassert.Equal(t, DegToRad(45), Rotate2D(DegToRad(45)).ExtractRot())

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolassert.EqualVector(t, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))

	m := Translate2D(5, 7).Scale(2, 3)
	tolassert.EqualVector(t, vxy, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(vxy)))
	sx, sy := m.ExtractScale()
	tolassert.Equal(t, 2, sx)
	tolassert.Equal(t, 3, sy)
}

func TestMatrix2String(t *testing.T) {
	assert.Equal(t, "", Identity2().String())
	assert.Equal(t, "translate(1,2)", Translate2D(1, 2).String())

	var m Matrix2
	assert.NoError(t, m.SetString("matrix(1, 2, 3, 4, 5, 6)"))
	assert.Equal(t, Matrix2{1, 2, 3, 4, 5, 6}, m)
	assert.NoError(t, m.SetString(Translate2D(3, 4).String()))
	assert.Equal(t, Translate2D(3, 4), m)
	assert.Error(t, m.SetString("invalid(1, 2)"))
}

func TestBox2(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 20, 15)
	assert.Equal(t, B2(0, 0, 20, 15), a.Union(b))
	assert.Equal(t, B2(5, 5, 10, 10), a.Intersect(b))
	assert.True(t, a.IntersectsBox(b))
	assert.False(t, a.IntersectsBox(B2(11, 11, 12, 12)))
	assert.Equal(t, a, B2Empty().Union(a))
	assert.True(t, B2Empty().IsEmpty())
	assert.Equal(t, B2(10, 20, 20, 40), a.MulMatrix2(Translate2D(10, 20).Scale(1, 2)))
	assert.Equal(t, Vec2(12.5, 10), b.Center())
}
