// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"log/slog"
	"slices"

	"cogentcore.org/vector/doc"
)

// Effect is a side effect of a change to a document field.
type Effect int32

const (
	// UpdateAutoLayout schedules every enclosing auto-layout
	// container for relayout, walking up while each ancestor is one.
	UpdateAutoLayout Effect = iota

	// UpdateAutoLayoutByBorder does the same as [UpdateAutoLayout]
	// starting from the view itself, only when its auto-layout
	// reserves space for the border thickness.
	UpdateAutoLayoutByBorder

	// UpdateMask asks the parent to rebuild its mask map.
	UpdateMask

	// Relayout schedules the view for relayout.
	Relayout

	// RelayoutParent schedules the parent for relayout, clearing
	// the composed outline of a boolean parent.
	RelayoutParent

	// ReloadSymbol reloads the symbol definition of an instance.
	ReloadSymbol

	// RebuildChildren reconciles the child views with the document.
	RebuildChildren

	// Render marks the view for rendering.
	Render

	// EffectsN is the number of effects.
	EffectsN
)

var effectNames = [EffectsN]string{"updateAutoLayout", "updateAutoLayoutByBorder", "updateMask", "relayout", "relayoutParent", "reloadSymbol", "rebuildChildren", "render"}

func (e Effect) String() string {
	if e < 0 || e >= EffectsN {
		return "Effect(?)"
	}
	return effectNames[e]
}

// effectFuncs are the implementations of the effects.
var effectFuncs = [EffectsN]func(nb *NodeBase){
	UpdateAutoLayout: func(nb *NodeBase) {
		nb.updateAutoLayout(nb.parentView())
	},
	UpdateAutoLayoutByBorder: func(nb *NodeBase) {
		if f := nb.Raw.AutoLayout(); f != nil && f.BorderSpace {
			nb.updateAutoLayout(nb)
		}
	},
	UpdateMask: func(nb *NodeBase) {
		if p := nb.parentView(); p != nil && p.rebuildMasks() {
			p.NeedsLayout()
		}
	},
	Relayout: func(nb *NodeBase) {
		nb.NeedsLayout()
	},
	RelayoutParent: func(nb *NodeBase) {
		p := nb.parentView()
		if p == nil {
			return
		}
		if p.Raw.Kind() == doc.BoolGroup {
			p.clearKeys(KeyBoolPath)
			p.NeedsRender()
		}
		p.NeedsLayout()
	},
	ReloadSymbol: func(nb *NodeBase) {
		if in, ok := nb.This.(*Instance); ok {
			in.reload()
		}
	},
	RebuildChildren: func(nb *NodeBase) {
		nb.childrenChanged = true
		nb.NeedsLayout()
	},
	Render: func(nb *NodeBase) {
		nb.NeedsRender()
	},
}

// updateAutoLayout schedules nb and every enclosing auto-layout
// container above it for relayout.
func (nb *NodeBase) updateAutoLayout(from *NodeBase) {
	for p := from; p != nil && p.Raw.AutoLayout() != nil; p = p.parentView() {
		p.NeedsLayout()
	}
}

// Effects are the two tables that drive the response of a view kind
// to changed document fields: the cache keys to clear, and the effects
// to apply. Both are indexed by [doc.Field].
type Effects struct {
	Keys    [doc.FieldsN][]CacheKey
	Effects [doc.FieldsN][]Effect
}

// FieldTable maps fields to values, for declaring [Effects].
type FieldTable[T any] map[doc.Field][]T

// NewEffects returns the effects for the given tables. The key table is
// closed over derived keys, so that clearing a key also clears every
// key computed from it.
func NewEffects(keys FieldTable[CacheKey], effects FieldTable[Effect]) *Effects {
	e := &Effects{}
	for f, ks := range keys {
		e.Keys[f] = closeKeys(ks)
	}
	for f, es := range effects {
		e.Effects[f] = slices.Clone(es)
	}
	return e
}

// Extend returns a copy of the base tables with the given entries added.
func (t FieldTable[T]) Extend(add FieldTable[T]) FieldTable[T] {
	res := FieldTable[T]{}
	for f, vs := range t {
		res[f] = slices.Clone(vs)
	}
	for f, vs := range add {
		for _, v := range vs {
			if !slices.ContainsFunc(res[f], func(e T) bool { return any(e) == any(v) }) {
				res[f] = append(res[f], v)
			}
		}
	}
	return res
}

// ClearCache clears the cache keys declared for the given fields.
func (nb *NodeBase) ClearCache(fields []doc.Field) {
	e := nb.This.(Viewer).Effects()
	for _, f := range fields {
		nb.clearKeys(e.Keys[f]...)
	}
}

// clearKeys clears the given keys and the keys derived from them.
func (nb *NodeBase) clearKeys(keys ...CacheKey) {
	for _, k := range closeKeys(keys) {
		nb.Cache.Clear(k)
	}
}

// ApplyEffects runs the effects declared for the given fields,
// each at most once, in the order of [Effect].
func (nb *NodeBase) ApplyEffects(fields []doc.Field) {
	e := nb.This.(Viewer).Effects()
	var run [EffectsN]bool
	for _, f := range fields {
		for _, ef := range e.Effects[f] {
			run[ef] = true
		}
	}
	for ef, ok := range run {
		if !ok {
			continue
		}
		if nb.Ctx.Settings.UpdateTrace {
			slog.Info("view.ApplyEffects", "view", nb.Path(), "effect", Effect(ef))
		}
		effectFuncs[ef](nb)
		nb.Ctx.Stats.Effects++
		if nb.This == nil {
			return
		}
	}
}

// styleKeys are the cache keys shared by all view kinds.
var styleKeys = FieldTable[CacheKey]{
	doc.FieldFills:      {KeyFills},
	doc.FieldFillsRef:   {KeyFills},
	doc.FieldBorders:    {KeyBorders},
	doc.FieldBordersRef: {KeyBorders},
	doc.FieldRadius:     {KeyRadius},
	doc.FieldRadiusRef:  {KeyRadius},
	doc.FieldShadows:    {KeyShadows},
	doc.FieldShadowsRef: {KeyShadows},
	doc.FieldBlur:       {KeyBlur},
	doc.FieldBlurRef:    {KeyBlur},
	doc.FieldSize:       {KeyOutlinePath},
	doc.FieldPoints:     {KeyOutlinePath},
}

// baseEffects are the effects shared by all view kinds.
var baseEffects = FieldTable[Effect]{
	doc.FieldName:       {Render},
	doc.FieldTransform:  {Relayout, UpdateAutoLayout, RelayoutParent, Render},
	doc.FieldSize:       {Relayout, UpdateAutoLayout, RelayoutParent, Render},
	doc.FieldVisible:    {UpdateMask, UpdateAutoLayout, RelayoutParent, Render},
	doc.FieldLocked:     {Render},
	doc.FieldMask:       {UpdateMask, RelayoutParent, Render},
	doc.FieldPins:       {Relayout},
	doc.FieldFills:      {Render},
	doc.FieldFillsRef:   {Render},
	doc.FieldBorders:    {UpdateAutoLayoutByBorder, RelayoutParent, Render},
	doc.FieldBordersRef: {UpdateAutoLayoutByBorder, RelayoutParent, Render},
	doc.FieldShadows:    {RelayoutParent, Render},
	doc.FieldShadowsRef: {RelayoutParent, Render},
	doc.FieldRadius:     {Render},
	doc.FieldRadiusRef:  {Render},
	doc.FieldBlur:       {Render},
	doc.FieldBlurRef:    {Render},
	doc.FieldCell:       {RelayoutParent},
}

// containerEffects are added for views with children.
var containerEffects = FieldTable[Effect]{
	doc.FieldChildren:   {RebuildChildren, UpdateMask, RelayoutParent, Render},
	doc.FieldAutoLayout: {Relayout, UpdateAutoLayout, Render},
}

var (
	groupEffects = NewEffects(styleKeys, baseEffects.Extend(containerEffects))

	shapeEffects = NewEffects(styleKeys, baseEffects.Extend(FieldTable[Effect]{
		doc.FieldPoints: {RelayoutParent, Render},
	}))

	textEffects = NewEffects(styleKeys.Extend(FieldTable[CacheKey]{
		doc.FieldText:         {KeyTextLayout},
		doc.FieldTextStyle:    {KeyTextLayout},
		doc.FieldTextBehavior: {KeyTextLayout},
	}), baseEffects.Extend(FieldTable[Effect]{
		doc.FieldText:         {Relayout, UpdateAutoLayout, RelayoutParent, Render},
		doc.FieldTextStyle:    {Relayout, UpdateAutoLayout, RelayoutParent, Render},
		doc.FieldTextBehavior: {Relayout, UpdateAutoLayout, RelayoutParent, Render},
	}))

	instanceEffects = NewEffects(styleKeys, baseEffects.Extend(FieldTable[Effect]{
		doc.FieldSymbolRef:  {ReloadSymbol, RebuildChildren, Render},
		doc.FieldCustomSize: {Relayout, Render},
		doc.FieldOverrides:  {Render},
	}))

	tableEffects = NewEffects(styleKeys, baseEffects.Extend(containerEffects).Extend(FieldTable[Effect]{
		doc.FieldTable: {Relayout, UpdateAutoLayout, RelayoutParent, Render},
	}))

	boolEffects = NewEffects(styleKeys.Extend(FieldTable[CacheKey]{
		doc.FieldBoolOp:   {KeyBoolPath, KeyOutlinePath},
		doc.FieldChildren: {KeyBoolPath, KeyOutlinePath},
	}), baseEffects.Extend(containerEffects).Extend(FieldTable[Effect]{
		doc.FieldBoolOp: {RelayoutParent, Render},
	}))
)
