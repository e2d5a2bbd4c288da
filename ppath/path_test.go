// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/vector/base/tolassert"
	"cogentcore.org/vector/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())
	p.MoveTo(5, 2)
	assert.True(t, p.Empty())
	p.LineTo(6, 2)
	assert.False(t, p.Empty())
	assert.Equal(t, 2, p.Len())
}

func TestPathClose(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 0)
	p.Close()
	assert.True(t, p.Closed())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 z", p.ToSVG())
}

func TestRectangleBounds(t *testing.T) {
	p := Path{}
	p.Rectangle(10, 20, 30, 40)
	assert.Equal(t, math32.B2(10, 20, 40, 60), p.Bounds())
	assert.Equal(t, "M 10 20 L 40 20 L 40 60 L 10 60 z", p.ToSVG())
}

func TestCurveBounds(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.QuadTo(5, 10, 10, 0)
	bb := p.Bounds()
	tolassert.Equal(t, 5, bb.Max.Y)
	tolassert.Equal(t, 10, p.FastBounds().Max.Y)

	e := Path{}
	e.Ellipse(50, 50, 10, 20)
	bb = e.Bounds()
	tolassert.EqualTol(t, 40, bb.Min.X, 1e-3)
	tolassert.EqualTol(t, 60, bb.Max.X, 1e-3)
	tolassert.EqualTol(t, 30, bb.Min.Y, 1e-3)
	tolassert.EqualTol(t, 70, bb.Max.Y, 1e-3)
}

func TestRoundedRectangle(t *testing.T) {
	p := Path{}
	p.RoundedRectangleSides(0, 0, 100, 50, 10, 0, 100, 0)
	bb := p.Bounds()
	tolassert.EqualTol(t, 0, bb.Min.X, 1e-3)
	tolassert.EqualTol(t, 100, bb.Max.X, 1e-3)
	tolassert.EqualTol(t, 50, bb.Max.Y, 1e-3)
	assert.True(t, p.Closed())

	r := Path{}
	r.RoundedRectangleSides(0, 0, 10, 10, 0, 0, 0, 0)
	q := Path{}
	q.Rectangle(0, 0, 10, 10)
	assert.True(t, r.Equals(q))
}

func TestTransform(t *testing.T) {
	p := Path{}
	p.Rectangle(0, 0, 10, 10)
	q := p.Transform(math32.Translate2D(5, 5).Scale(2, 2))
	assert.Equal(t, math32.B2(5, 5, 25, 25), q.Bounds())
	assert.Equal(t, math32.B2(0, 0, 10, 10), p.Bounds())
	assert.Equal(t, math32.B2(1, 2, 11, 12), p.Translate(1, 2).Bounds())
}

func TestParseSVG(t *testing.T) {
	p, err := ParseSVG("M10 10 h 20 v20 L10,30 z M 50 50 l 5 5")
	require.NoError(t, err)
	assert.Equal(t, "M 10 10 L 30 10 L 30 30 L 10 30 z M 50 50 L 55 55", p.ToSVG())
	assert.Len(t, p.Split(), 2)

	q, err := ParseSVG(p.ToSVG())
	require.NoError(t, err)
	assert.True(t, p.Equals(q))

	c, err := ParseSVG("M0 0 C 0 10 10 10 10 0 Q 15 -5 20 0")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = ParseSVG("10 10")
	assert.Error(t, err)
	_, err = ParseSVG("M 10")
	assert.Error(t, err)
}

func TestReverse(t *testing.T) {
	p := Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	r := p.Reverse()
	assert.Equal(t, "M 10 10 L 10 0 L 0 0", r.ToSVG())
}

func TestOps(t *testing.T) {
	a := Path{}
	a.Rectangle(0, 0, 10, 10)
	b := Path{}
	b.Rectangle(5, 5, 10, 10)
	ops := FillRuleOps{}

	u, fr := ops.Op(Union, a, b)
	assert.Equal(t, NonZero, fr)
	assert.Equal(t, math32.B2(0, 0, 15, 15), u.Bounds())

	x, fr := ops.Op(Exclude, a, b)
	assert.Equal(t, EvenOdd, fr)
	assert.Len(t, x.Split(), 2)

	s, _ := ops.Op(Subtract, a, b)
	parts := s.Split()
	require.Len(t, parts, 2)
	assert.Greater(t, signedArea(parts[0].Coords()), float32(0))
	assert.Less(t, signedArea(parts[1].Coords()), float32(0))

	i, _ := ops.Op(Intersect, a, b)
	bb := i.Bounds()
	tolassert.Equal(t, 5, bb.Min.X)
	tolassert.Equal(t, 10, bb.Max.X)
	tolassert.Equal(t, 5, bb.Min.Y)
	tolassert.Equal(t, 10, bb.Max.Y)

	far := Path{}
	far.Rectangle(100, 100, 1, 1)
	n, _ := ops.Op(Intersect, a, far)
	assert.True(t, n.Empty())
}

// area returns the total unsigned area of the subpaths of p.
func area(p Path) float32 {
	var a float32
	for _, sp := range p.Flatten(8) {
		a += math32.Abs(signedArea(sp))
	}
	return a
}

func TestIntersectConcave(t *testing.T) {
	sq := Path{}
	sq.Rectangle(0, 0, 10, 10)
	ell := Path{}
	ell.Polygon(math32.Vec2(0, 0), math32.Vec2(10, 0), math32.Vec2(10, 5), math32.Vec2(5, 5), math32.Vec2(5, 10), math32.Vec2(0, 10))
	ops := FillRuleOps{}

	i, fr := ops.Op(Intersect, sq, ell)
	assert.Equal(t, NonZero, fr)
	tolassert.Equal(t, 75, area(i))
	assert.True(t, math32.B2(0, 0, 10, 10).IsEqualApprox(i.Bounds()))

	i, _ = ops.Op(Intersect, ell, sq)
	tolassert.Equal(t, 75, area(i))

	big := Path{}
	big.Rectangle(-5, -5, 20, 20)
	i, _ = ops.Op(Intersect, big, ell.Reverse())
	tolassert.Equal(t, 75, area(i))

	assert.Len(t, convexParts(ell.Flatten(8)[0]), 4)
	assert.Len(t, convexParts(sq.Flatten(8)[0]), 1)
}

func TestBoolOpString(t *testing.T) {
	assert.Equal(t, "subtract", Subtract.String())
	op, ok := ParseBoolOp("exclude")
	assert.True(t, ok)
	assert.Equal(t, Exclude, op)
	_, ok = ParseBoolOp("xor")
	assert.False(t, ok)
}
