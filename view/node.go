// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides the derived view tree of a document: one view
// per rendered element, with memoized style resolution, declarative
// invalidation tables, layout strategies per node kind, and a
// [Context] that schedules relayout and rendering.
package view

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/vector/base/plan"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/override"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/tree"
)

// Viewer is the interface that all view kinds satisfy. The base
// behavior is implemented on [NodeBase]; kinds override the layout
// steps and rendering.
type Viewer interface {
	tree.Node

	// AsView returns the [NodeBase] of the view.
	AsView() *NodeBase

	// Effects returns the cache key and effect tables of the view kind.
	Effects() *Effects

	// DocChildren returns the document nodes that child views are
	// bound to, and the instance stack for them.
	DocChildren() ([]doc.Node, override.Stack)

	// Measure sets the own size of the view after it has been placed
	// by its parent, before its children are laid out.
	Measure()

	// Place returns the position and size of the given child at index i.
	Place(i int, c *NodeBase) (pos, size math32.Vector2)

	// Arrange runs after the children are laid out: it positions them
	// where the kind arranges them, and computes the bounds.
	Arrange()

	// Outline returns the outline path in local coordinates, or nil.
	Outline() ppath.Path

	// RenderNode returns the render node of the view without children.
	RenderNode() *render.Node
}

// LayoutStates are the layout states of a view.
type LayoutStates int32

const (
	Unmeasured LayoutStates = iota
	Measuring
	Measured
)

// Bounds are the boxes of a view in the coordinates of its parent.
type Bounds struct {

	// Content is the box of the view itself, or for groups the union
	// of the content boxes of the visible, unmasked children.
	Content math32.Box2

	// Visible is the content box extended by border, shadow and blur extents.
	Visible math32.Box2

	// Outer also includes the outer boxes of all visible children.
	Outer math32.Box2
}

// NodeBase is the base type of all views.
type NodeBase struct {
	tree.NodeBase

	// Doc is the bound document node, decorated with the instance
	// stack so that overridable fields read their resolved values.
	Doc doc.Node

	// Raw is the undecorated bound document node.
	Raw doc.Node

	// Stack is the stack of enclosing instance contexts, shared by
	// reference between views.
	Stack override.Stack

	// Ctx is the context that schedules the view, owned by the tree root.
	Ctx *Context

	// Pos and Size are the resolved position and size of the view,
	// relative to its parent.
	Pos  math32.Vector2
	Size math32.Vector2

	// OrigSize is the size that child placements are relative to.
	OrigSize math32.Vector2

	Bounds Bounds
	State  LayoutStates

	// Masks maps the ids of masked children to the id of their mask.
	Masks map[string]string

	Cache Cache

	// Layouts and Renders count the layouts and renders of the view.
	Layouts int
	Renders int

	placedPos  math32.Vector2
	placedSize math32.Vector2
	innerSize  math32.Vector2

	// bound holds the override sources that each registry slot is
	// subscribed to.
	bound map[any][]override.Source

	// laidSize is the size at the end of the last layout. The outline
	// is cleared whenever a layout ends at a different size, whether
	// the view or its parent changed it.
	laidSize math32.Vector2

	// inScale is the child scale of the parent when the view was placed,
	// and childScale the factor the view scales its children by; zero
	// means that children are placed by their constraints.
	inScale    math32.Vector2
	childScale math32.Vector2

	childrenChanged bool
	orphaned        bool
	rendered        *render.Node
}

// Identity returns the identity of the view of the given document node
// id in the given instance stack.
func Identity(id string, st override.Stack) string {
	if len(st) == 0 {
		return id
	}
	return st.Identity() + "/" + id
}

// AsView returns the [NodeBase] of the given tree node, which must be a [Viewer].
func AsView(n tree.Node) *NodeBase {
	if v, ok := n.(Viewer); ok {
		return v.AsView()
	}
	return nil
}

// AsView returns the [NodeBase] of the view.
func (nb *NodeBase) AsView() *NodeBase {
	return nb
}

// newView returns a new view of the kind of n, bound to n in the
// given instance stack. It is not yet initialized.
func newView(ctx *Context, n doc.Node, st override.Stack) Viewer {
	var v Viewer
	switch n.Kind() {
	case doc.Frame, doc.Cell:
		v = &Frame{}
	case doc.Rect, doc.Ellipse, doc.Path:
		v = &Shape{}
	case doc.Text:
		v = &Text{}
	case doc.Instance:
		v = &Instance{}
	case doc.Table:
		v = &Table{}
	case doc.BoolGroup:
		v = &Bool{}
	default:
		v = &Group{}
	}
	nb := v.AsView()
	nb.Name = Identity(n.ID(), st)
	nb.Raw = n
	nb.Stack = st
	nb.Ctx = ctx
	nb.Doc = override.NewDecorator(n, st, nb.observe)
	return v
}

// Init subscribes the view to its document node.
func (nb *NodeBase) Init() {
	nb.Ctx.Registry.Bind(nb, slotDoc, nb.Raw.Watch(nb.onDocChange))
}

// Destroy releases all subscriptions of the view and its children,
// and removes them from the scheduler.
func (nb *NodeBase) Destroy() {
	if nb.This == nil {
		return
	}
	nb.Ctx.forget(nb)
	nb.Ctx.Registry.ReleaseAll(nb)
	nb.bound = nil
	nb.NodeBase.Destroy()
}

// registry slots of a view other than its cache keys
type (
	docSlot      struct{}
	overrideSlot doc.Categories
	symbolSlot   struct{}
)

var slotDoc = docSlot{}

// categoryField is the document field whose effects run when an
// override read through the decorator changes.
var categoryField = [doc.CategoriesN]doc.Field{
	doc.OverrideFills:     doc.FieldFills,
	doc.OverrideBorders:   doc.FieldBorders,
	doc.OverrideShadows:   doc.FieldShadows,
	doc.OverrideBlur:      doc.FieldBlur,
	doc.OverrideRadius:    doc.FieldRadius,
	doc.OverrideText:      doc.FieldText,
	doc.OverrideVisible:   doc.FieldVisible,
	doc.OverrideLocked:    doc.FieldLocked,
	doc.OverrideSymbolRef: doc.FieldSymbolRef,
}

// observe subscribes to the sources of a resolution made by the decorator.
func (nb *NodeBase) observe(cat doc.Categories, r override.Resolution) {
	if nb.This == nil {
		return
	}
	nb.bindResolution(overrideSlot(cat), categoryField[cat], r)
}

// bindResolution replaces the subscription of the given slot by one on
// every source inspected by r: the variables found, and the set of
// overrides of every instance inspected. The subscription is kept when
// the sources are the same as those it was made for.
func (nb *NodeBase) bindResolution(slot any, field doc.Field, r override.Resolution) {
	reg := nb.Ctx.Registry
	if prev, ok := nb.bound[slot]; ok && slices.Equal(prev, r.Sources) && (len(prev) == 0 || reg.Has(nb, slot)) {
		return
	}
	if nb.bound == nil {
		nb.bound = map[any][]override.Source{}
	}
	nb.bound[slot] = slices.Clone(r.Sources)
	nb.Ctx.Stats.Binds++
	if len(r.Sources) == 0 {
		nb.Ctx.Registry.Bind(nb, slot, nil)
		return
	}
	fire := func() { nb.sourceChanged(field) }
	var unsubs []func()
	for _, s := range r.Sources {
		if s.Variable != nil {
			unsubs = append(unsubs, s.Variable.Watch(func(*doc.Variable) { fire() }))
		}
		unsubs = append(unsubs, s.Instance.Watch(func(fields []doc.Field) {
			if slices.Contains(fields, doc.FieldOverrides) {
				fire()
			}
		}))
	}
	nb.Ctx.Registry.Bind(nb, slot, func() {
		for _, u := range unsubs {
			u()
		}
	})
}

// sourceChanged handles a change of a shared resource or override
// as a change of the given field.
func (nb *NodeBase) sourceChanged(field doc.Field) {
	if nb.This == nil {
		return
	}
	nb.onDocChange([]doc.Field{field})
}

// onDocChange clears the cache keys and applies the effects of the
// changed fields.
func (nb *NodeBase) onDocChange(fields []doc.Field) {
	if nb.This == nil || nb.orphaned {
		return
	}
	if nb.Ctx.Settings.UpdateTrace {
		slog.Info("view.Update", "view", nb.Path(), "fields", fields)
	}
	nb.ClearCache(fields)
	nb.ApplyEffects(fields)
}

func (nb *NodeBase) String() string {
	if nb.This == nil {
		return "nil"
	}
	return fmt.Sprintf("%s(%v)", nb.Path(), nb.Raw.Kind())
}

// parentView returns the parent view, or nil for the root.
func (nb *NodeBase) parentView() *NodeBase {
	if nb.Parent == nil {
		return nil
	}
	return AsView(nb.Parent)
}

// NeedsLayout schedules the view for relayout.
func (nb *NodeBase) NeedsLayout() {
	nb.Ctx.NeedsLayout(nb)
}

// NeedsRender marks the view for rendering.
func (nb *NodeBase) NeedsRender() {
	nb.Ctx.NeedsRender(nb)
}

// Transform returns the transform of the view relative to its parent:
// the document transform with the resolved position.
func (nb *NodeBase) Transform() math32.Matrix2 {
	m := nb.Raw.Transform()
	m.SetPos(nb.Pos)
	return m
}

// Effects implements [Viewer].
func (nb *NodeBase) Effects() *Effects {
	return groupEffects
}

// DocChildren implements [Viewer] by returning the document children.
func (nb *NodeBase) DocChildren() ([]doc.Node, override.Stack) {
	return nb.Raw.Children(), nb.Stack
}

// Measure implements [Viewer]; the base view keeps its placed size.
func (nb *NodeBase) Measure() {}

// Place implements [Viewer] by resolving the constraints of the child
// against the original and current size of the view, or by scaling
// the child when the view scales its children.
func (nb *NodeBase) Place(i int, c *NodeBase) (pos, size math32.Vector2) {
	pos, size = c.Raw.Transform().Pos(), c.Raw.Size()
	if nb.childScale != (math32.Vector2{}) {
		return pos.Mul(nb.childScale), size.Mul(nb.childScale)
	}
	return layout.Constrain(c.Raw.Pins(), pos, size, nb.OrigSize, nb.innerSize)
}

// Arrange implements [Viewer] by computing the bounds of a view with its own box.
func (nb *NodeBase) Arrange() {
	nb.computeBounds(true)
}

// Outline implements [Viewer]; the base view has no outline.
func (nb *NodeBase) Outline() ppath.Path {
	return nil
}

// syncChildren reconciles the child views with the document children,
// reusing views with the same identity. It returns whether the
// children changed.
func (nb *NodeBase) syncChildren() bool {
	kids, st := nb.This.(Viewer).DocChildren()
	ctx := nb.Ctx
	mods := plan.Update(&nb.Children, len(kids),
		func(i int) string { return Identity(kids[i].ID(), st) },
		func(name string, i int) tree.Node { return ctx.adopt(name, kids[i], st) },
		func(e tree.Node, i int) {
			tree.InitNode(e)
			tree.SetParent(e, nb.This)
		},
		func(e tree.Node) { ctx.orphan(AsView(e)) })
	for i, k := range kids {
		c := AsView(nb.Children[i])
		if c.Raw != k {
			ctx.orphan(c)
			nc := newView(ctx, k, st)
			tree.InitNode(nc)
			nb.Children[i] = nc
			tree.SetParent(nc, nb.This)
			mods = true
		}
	}
	nb.childrenChanged = false
	if mods {
		nb.rebuildMasks()
		nb.NeedsRender()
	}
	return mods
}

// rebuildMasks recomputes the mask map from the order of the children
// and their mask flags, marking the children for rendering and returning
// true when it changed.
func (nb *NodeBase) rebuildMasks() bool {
	kids := make([]doc.Node, len(nb.Children))
	for i, k := range nb.Children {
		kids[i] = AsView(k).Doc
	}
	masks := MaskMap(kids)
	if maps.Equal(masks, nb.Masks) {
		return false
	}
	nb.Masks = masks
	for _, k := range nb.Children {
		AsView(k).NeedsRender()
	}
	return true
}

// MaskMap returns the mask map of the given children in z-order: each
// child that is not a mask maps to the id of the nearest preceding
// visible mask sibling, if any. Hidden masks are ignored.
func MaskMap(children []doc.Node) map[string]string {
	masks := map[string]string{}
	mask := ""
	for _, c := range children {
		if c.IsMask() {
			if c.Visible() {
				mask = c.ID()
			}
			continue
		}
		if mask != "" {
			masks[c.ID()] = mask
		}
	}
	return masks
}

// place sets the position and size of the view from its parent, or
// from the document for the root.
func (nb *NodeBase) place() {
	var pos, size math32.Vector2
	if p := nb.parentView(); p != nil {
		pos, size = p.This.(Viewer).Place(nb.IndexInParent(), nb)
		nb.inScale = p.childScale
	} else {
		pos, size = nb.Raw.Transform().Pos(), nb.Raw.Size()
	}
	nb.placedPos, nb.placedSize = pos, size
	nb.Pos, nb.Size = pos, size
}

// layout lays out the view from its current placement: it measures
// the view, reconciles and lays out the children that need it, and
// arranges them.
func (nb *NodeBase) layout() {
	v := nb.This.(Viewer)
	ctx := nb.Ctx
	ctx.layoutStarted(nb)
	nb.State = Measuring
	nb.Layouts++
	if ctx.Settings.LayoutTrace {
		slog.Info("view.Layout", "view", nb.Path(), "pos", nb.Pos, "size", nb.Size)
	}
	nb.childScale = nb.inScale
	nb.OrigSize = nb.Raw.Size()
	v.Measure()
	nb.innerSize = nb.Size
	nb.syncChildren()
	for i, k := range nb.Children {
		c := AsView(k)
		pos, size := v.Place(i, c)
		if c.State != Measured || ctx.isQueued(c) || c.placedPos != pos || c.placedSize != size || c.inScale != nb.childScale {
			c.inScale = nb.childScale
			c.placedPos, c.placedSize = pos, size
			c.Pos, c.Size = pos, size
			c.layout()
		}
	}
	v.Arrange()
	if nb.Size != nb.laidSize {
		nb.laidSize = nb.Size
		nb.clearKeys(KeyOutlinePath)
	}
	nb.State = Measured
	nb.NeedsRender()
}

// computeBounds computes the bounds of the view. With own, the content
// box is the box of the view itself; otherwise it is the union of the
// content boxes of the visible, unmasked children, and the size is
// set to it.
func (nb *NodeBase) computeBounds(own bool) {
	content, vis, outer := math32.B2Empty(), math32.B2Empty(), math32.B2Empty()
	if own {
		content = math32.B2(0, 0, nb.Size.X, nb.Size.Y)
		vis = nb.visibleBox(content)
		outer = vis
	}
	for _, k := range nb.Children {
		c := AsView(k)
		if c.State != Measured || !c.Doc.Visible() {
			continue
		}
		outer.ExpandByBox(c.Bounds.Outer)
		if _, masked := nb.Masks[c.Raw.ID()]; masked {
			continue
		}
		if !own {
			content.ExpandByBox(c.Bounds.Content)
			vis.ExpandByBox(c.Bounds.Visible)
		}
	}
	if content.IsEmpty() {
		content = math32.B2(0, 0, 0, 0)
	}
	if vis.IsEmpty() {
		vis = content
	}
	outer.ExpandByBox(vis)
	if !own {
		nb.Size = content.Size()
	}
	m := nb.Transform()
	nb.Bounds = Bounds{Content: content.MulMatrix2(m), Visible: vis.MulMatrix2(m), Outer: outer.MulMatrix2(m)}
}

// visibleBox extends the given box by the border, shadow and blur extents.
func (nb *NodeBase) visibleBox(b math32.Box2) math32.Box2 {
	bo := styles.BordersOutset(nb.Borders())
	sh := styles.ShadowsOutset(nb.Shadows())
	var bl float32
	if blur := nb.Blur(); !blur.Hidden {
		bl = blur.Radius
	}
	b.Min.X -= max(bo, sh.Left) + bl
	b.Min.Y -= max(bo, sh.Top) + bl
	b.Max.X += max(bo, sh.Right) + bl
	b.Max.Y += max(bo, sh.Bottom) + bl
	return b
}
