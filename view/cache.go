// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"slices"

	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/override"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/text"
)

// CacheKey is a key of one lazily computed value in a [Cache].
type CacheKey int32

const (
	KeyFills CacheKey = iota
	KeyBorders
	KeyRadius
	KeyShadows
	KeyBlur

	// KeyOutlinePath is the outline of the shape in local coordinates.
	KeyOutlinePath

	// KeyBorderPath is the path along which the borders are stroked,
	// derived from the outline.
	KeyBorderPath

	// KeyTextLayout is the text engine metrics of a text view.
	KeyTextLayout

	// KeyBoolPath is the composed outline of a boolean group.
	KeyBoolPath

	// CacheKeysN is the number of cache keys.
	CacheKeysN
)

var cacheKeyNames = [CacheKeysN]string{"fills", "borders", "radius", "shadows", "blur", "outlinePath", "borderPath", "textLayout", "boolPath"}

func (k CacheKey) String() string {
	if k < 0 || k >= CacheKeysN {
		return "CacheKey(?)"
	}
	return cacheKeyNames[k]
}

// derivedKeys are the keys computed from each key, which must be
// cleared with it.
var derivedKeys = [CacheKeysN][]CacheKey{
	KeyBorders:     {KeyBorderPath},
	KeyRadius:      {KeyOutlinePath},
	KeyOutlinePath: {KeyBorderPath},
	KeyBoolPath:    {KeyOutlinePath},
}

// closeKeys returns keys plus all keys transitively derived from them.
func closeKeys(keys []CacheKey) []CacheKey {
	res := slices.Clone(keys)
	for i := 0; i < len(res); i++ {
		for _, d := range derivedKeys[res[i]] {
			if !slices.Contains(res, d) {
				res = append(res, d)
			}
		}
	}
	return res
}

// Cache holds the memoized derived values of a view.
// Each value is computed at most once between two invalidations.
type Cache struct {
	valid [CacheKeysN]bool

	// Computes counts the computations of each key.
	Computes [CacheKeysN]int

	fills      []styles.Fill
	borders    []styles.Border
	radius     styles.Radius
	shadows    []styles.Shadow
	blur       styles.Blur
	outline    ppath.Path
	borderPath ppath.Path
	textLayout text.Metrics
	textBox    [2]float32
	boolPath   ppath.Path
	boolRule   ppath.FillRule
}

// Valid returns whether the value of the given key is memoized.
func (c *Cache) Valid(k CacheKey) bool {
	return c.valid[k]
}

// Clear drops the value of the given key.
func (c *Cache) Clear(k CacheKey) {
	c.valid[k] = false
}

// ClearAll drops all values.
func (c *Cache) ClearAll() {
	c.valid = [CacheKeysN]bool{}
}

// begin marks the key as computed and returns false if it was already valid.
func (c *Cache) begin(k CacheKey) bool {
	if c.valid[k] {
		return false
	}
	c.valid[k] = true
	c.Computes[k]++
	return true
}

// keyField is the document field whose effects run when the
// source of a style key changes.
var keyField = [...]doc.Field{
	KeyFills:   doc.FieldFills,
	KeyBorders: doc.FieldBorders,
	KeyRadius:  doc.FieldRadius,
	KeyShadows: doc.FieldShadows,
	KeyBlur:    doc.FieldBlur,
}

// keyCategory is the override category of a style key.
var keyCategory = [...]doc.Categories{
	KeyFills:   doc.OverrideFills,
	KeyBorders: doc.OverrideBorders,
	KeyRadius:  doc.OverrideRadius,
	KeyShadows: doc.OverrideShadows,
	KeyBlur:    doc.OverrideBlur,
}

// resolveStyle resolves one style property in order of precedence:
// the shared resource referenced by refID, then an instance override,
// then the local value. The subscription of the key is replaced by one
// on the source that was used.
func resolveStyle[T any](nb *NodeBase, k CacheKey, refID string, fromResource func(v *styles.Values) T, local T) T {
	reg := nb.Ctx.Registry
	if refID != "" && nb.Ctx.Resources != nil {
		if r, ok := nb.Ctx.Resources.Resource(refID); ok && !r.Deleted {
			delete(nb.bound, k)
			reg.Bind(nb, k, r.Watch(func(r *styles.Resource) {
				nb.sourceChanged(keyField[k])
			}))
			return fromResource(&r.Value)
		}
	}
	res := override.Resolve(nb.Raw.ID(), keyCategory[k], nb.Stack)
	nb.bindResolution(k, keyField[k], res)
	if res.Found {
		return res.Value.(T)
	}
	return local
}

// Fills returns the resolved fills.
func (nb *NodeBase) Fills() []styles.Fill {
	c := &nb.Cache
	if c.begin(KeyFills) {
		st := nb.Raw.Style()
		c.fills = resolveStyle(nb, KeyFills, st.FillsRef, func(v *styles.Values) []styles.Fill { return v.Fills }, st.Fills)
	}
	return c.fills
}

// Borders returns the resolved borders.
func (nb *NodeBase) Borders() []styles.Border {
	c := &nb.Cache
	if c.begin(KeyBorders) {
		st := nb.Raw.Style()
		c.borders = resolveStyle(nb, KeyBorders, st.BordersRef, func(v *styles.Values) []styles.Border { return v.Borders }, st.Borders)
	}
	return c.borders
}

// Radius returns the resolved corner radii.
func (nb *NodeBase) Radius() styles.Radius {
	c := &nb.Cache
	if c.begin(KeyRadius) {
		st := nb.Raw.Style()
		c.radius = resolveStyle(nb, KeyRadius, st.RadiusRef, func(v *styles.Values) styles.Radius { return v.Radius }, st.Radius)
	}
	return c.radius
}

// Shadows returns the resolved shadows.
func (nb *NodeBase) Shadows() []styles.Shadow {
	c := &nb.Cache
	if c.begin(KeyShadows) {
		st := nb.Raw.Style()
		c.shadows = resolveStyle(nb, KeyShadows, st.ShadowsRef, func(v *styles.Values) []styles.Shadow { return v.Shadows }, st.Shadows)
	}
	return c.shadows
}

// Blur returns the resolved blur.
func (nb *NodeBase) Blur() styles.Blur {
	c := &nb.Cache
	if c.begin(KeyBlur) {
		st := nb.Raw.Style()
		c.blur = resolveStyle(nb, KeyBlur, st.BlurRef, func(v *styles.Values) styles.Blur { return v.Blur }, st.Blur)
	}
	return c.blur
}

// OutlinePath returns the outline of the view in local coordinates,
// which is nil for views without an outline.
func (nb *NodeBase) OutlinePath() ppath.Path {
	c := &nb.Cache
	if c.begin(KeyOutlinePath) {
		c.outline = nb.This.(Viewer).Outline()
	}
	return c.outline
}

// BorderPath returns the path along which the borders are stroked:
// the outline offset by the position of the widest visible border.
func (nb *NodeBase) BorderPath() ppath.Path {
	c := &nb.Cache
	if c.begin(KeyBorderPath) {
		c.borderPath = nb.borderPath()
	}
	return c.borderPath
}

func (nb *NodeBase) borderPath() ppath.Path {
	outline := nb.OutlinePath()
	if outline.Empty() {
		return nil
	}
	var width, off float32
	for _, b := range nb.Borders() {
		if !b.Hidden && b.Width > width {
			width = b.Width
			off = b.Outset() - b.Width/2
		}
	}
	if width == 0 {
		return nil
	}
	if off == 0 {
		return outline
	}
	switch nb.Raw.Kind() {
	case doc.Ellipse:
		p := ppath.Path{}
		p.Ellipse(nb.Size.X/2, nb.Size.Y/2, nb.Size.X/2+off, nb.Size.Y/2+off)
		return p
	case doc.Path, doc.BoolGroup:
		return outline
	}
	r := nb.Radius()
	p := ppath.Path{}
	p.RoundedRectangleSides(-off, -off, nb.Size.X+2*off, nb.Size.Y+2*off,
		max(r.Top+off, 0), max(r.Right+off, 0), max(r.Bottom+off, 0), max(r.Left+off, 0))
	return p
}

// TextLayout returns the text engine metrics of the effective text
// for the given box. It is recomputed when the box changes.
func (nb *NodeBase) TextLayout(wrap bool) text.Metrics {
	c := &nb.Cache
	box := [2]float32{nb.Size.X, nb.Size.Y}
	if c.valid[KeyTextLayout] && c.textBox != box {
		c.Clear(KeyTextLayout)
	}
	if c.begin(KeyTextLayout) {
		c.textBox = box
		c.textLayout = nb.Ctx.Text.Layout(nb.Doc.Text(), nb.Size, nb.Raw.TextStyle(), wrap)
	}
	return c.textLayout
}
