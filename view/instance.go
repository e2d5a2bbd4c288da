// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"log/slog"
	"slices"

	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/override"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
)

// Instance is the view of a symbol instance. Its children are views of
// the children of the symbol definition, which is loaded asynchronously
// through the symbol manager of the context. The definition is scaled
// to the instance box, unless the instance has a custom size, in which
// case its children follow their constraints.
type Instance struct {
	NodeBase

	// Def is the loaded symbol definition, or nil.
	Def doc.Node

	loadedRef  string
	pendingRef string
}

func (in *Instance) Effects() *Effects {
	return instanceEffects
}

// DocChildren returns the children of the definition, in the stack
// extended by the context of this instance.
func (in *Instance) DocChildren() ([]doc.Node, override.Stack) {
	if in.Def == nil {
		return nil, in.Stack
	}
	return in.Def.Children(), in.Stack.Push(override.Context{Instance: in.Raw, Definition: in.Def})
}

// Measure starts loading the definition when the symbol reference
// differs from the one loaded or loading, and sets up the placement
// of the children relative to the definition size.
func (in *Instance) Measure() {
	if ref := in.Doc.SymbolRef(); ref != in.loadedRef && ref != in.pendingRef {
		in.startLoad(ref)
	}
	if in.Def == nil {
		return
	}
	in.OrigSize = in.Def.Size()
	if in.Raw.CustomSize() || in.OrigSize.X == 0 || in.OrigSize.Y == 0 {
		in.childScale = math32.Vector2{}
		return
	}
	in.childScale = in.Size.Div(in.OrigSize)
}

// startLoad loads the definition with the given id. Only the result of
// the latest load is applied; results of earlier loads are discarded.
func (in *Instance) startLoad(ref string) {
	ctx := in.Ctx
	if ref == "" {
		in.loadedRef, in.pendingRef = "", ""
		in.Def = nil
		ctx.Registry.Release(in.AsView(), symbolSlot{})
		return
	}
	in.pendingRef = ref
	ctx.load(ref, func(def doc.Node, err error) {
		if in.This == nil || in.pendingRef != ref {
			ctx.Stats.StaleLoads++
			return
		}
		in.pendingRef = ""
		in.loadedRef = ref
		if err != nil {
			ctx.Stats.FailedLoads++
			slog.Error("view.Instance: loading symbol", "view", in.Path(), "symbol", ref, "err", err)
			def = nil
		}
		in.setDef(def)
	})
}

// setDef sets the definition and subscribes to its size and children.
func (in *Instance) setDef(def doc.Node) {
	if in.Def == def {
		return
	}
	in.Def = def
	var unwatch func()
	if def != nil {
		unwatch = def.Watch(func(fields []doc.Field) {
			if slices.Contains(fields, doc.FieldChildren) || slices.Contains(fields, doc.FieldSize) {
				in.childrenChanged = true
				in.NeedsLayout()
			}
		})
	}
	in.Ctx.Registry.Bind(in.AsView(), symbolSlot{}, unwatch)
	in.childrenChanged = true
	in.NeedsLayout()
	in.NeedsRender()
}

// reload forgets the loaded reference so that the next layout loads
// the definition again.
func (in *Instance) reload() {
	in.loadedRef, in.pendingRef = "", ""
}

func (in *Instance) Outline() ppath.Path {
	return in.rectOutline()
}

func (in *Instance) RenderNode() *render.Node {
	n := in.baseNode("g")
	n.SetAttr("data-symbol", in.loadedRef)
	return n.AddChild(in.backgroundNode())
}
