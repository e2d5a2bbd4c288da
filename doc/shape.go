// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"maps"
	"slices"

	"cogentcore.org/vector/base/errors"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/text"
	"cogentcore.org/vector/watch"
	"github.com/jinzhu/copier"
)

// Shape is an in-memory [Node]. All changes go through its setters,
// which notify the watchers of the shape with the changed fields.
// Use [Shape.Update] to batch several changes into one notification.
type Shape struct {
	id       string
	name     string
	kind     Kinds
	parent   *Shape
	children []*Shape

	transform math32.Matrix2
	size      math32.Vector2
	hidden    bool
	locked    bool
	mask      bool
	style     styles.Style
	pins      layout.Pins
	flow      *layout.Flow

	points []math32.Vector2
	closed bool

	text         string
	textStyle    text.Style
	textBehavior text.Behaviors

	symbolRef  string
	customSize bool
	overrides  map[OverrideKey]*Variable

	boolOp ppath.BoolOp
	table  *layout.Table
	cell   layout.Cell

	listeners watch.Listeners[[]Field]
	batch     int
	pending   []Field
}

var _ Node = (*Shape)(nil)

// NewShape returns a new shape of the given kind. An empty id is
// replaced by a new unique id.
func NewShape(kind Kinds, id string) *Shape {
	if id == "" {
		id = NewID()
	}
	return &Shape{id: id, name: id, kind: kind, transform: math32.Identity2(), pins: layout.PinLeft | layout.PinTop}
}

func (s *Shape) ID() string                { return s.id }
func (s *Shape) Name() string              { return s.name }
func (s *Shape) Kind() Kinds               { return s.kind }
func (s *Shape) Transform() math32.Matrix2 { return s.transform }
func (s *Shape) Size() math32.Vector2      { return s.size }
func (s *Shape) Visible() bool             { return !s.hidden }
func (s *Shape) Locked() bool              { return s.locked }
func (s *Shape) IsMask() bool              { return s.mask }
func (s *Shape) Style() styles.Style       { return s.style }
func (s *Shape) Pins() layout.Pins         { return s.pins }
func (s *Shape) AutoLayout() *layout.Flow  { return s.flow }
func (s *Shape) Points() []math32.Vector2  { return s.points }
func (s *Shape) Closed() bool              { return s.closed }
func (s *Shape) Text() string              { return s.text }
func (s *Shape) TextStyle() text.Style     { return s.textStyle }
func (s *Shape) TextBehavior() text.Behaviors {
	return s.textBehavior
}
func (s *Shape) SymbolRef() string    { return s.symbolRef }
func (s *Shape) CustomSize() bool     { return s.customSize }
func (s *Shape) BoolOp() ppath.BoolOp { return s.boolOp }
func (s *Shape) Table() *layout.Table { return s.table }
func (s *Shape) Cell() layout.Cell    { return s.cell }
func (s *Shape) ShapeParent() *Shape  { return s.parent }
func (s *Shape) ShapeChildren() []*Shape {
	return s.children
}

// Parent returns the parent node, or nil.
func (s *Shape) Parent() Node {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// Children returns the child nodes.
func (s *Shape) Children() []Node {
	res := make([]Node, len(s.children))
	for i, c := range s.children {
		res[i] = c
	}
	return res
}

// Override implements [Node].
func (s *Shape) Override(target string, cat Categories) (*Variable, bool) {
	v, ok := s.overrides[OverrideKey{target, cat}]
	return v, ok
}

// Overrides implements [Node], returning keys sorted by target and category.
func (s *Shape) Overrides() []OverrideKey {
	return slices.SortedFunc(maps.Keys(s.overrides), func(a, b OverrideKey) int {
		if a.Target != b.Target {
			if a.Target < b.Target {
				return -1
			}
			return 1
		}
		return int(a.Category - b.Category)
	})
}

// Watch implements [Node].
func (s *Shape) Watch(fun func(fields []Field)) (unwatch func()) {
	return s.listeners.Add(fun)
}

// NumWatchers returns the number of current watchers.
func (s *Shape) NumWatchers() int {
	return s.listeners.Len()
}

// changed notifies the watchers, or records the fields while batching.
func (s *Shape) changed(fields ...Field) {
	if s.batch > 0 {
		for _, f := range fields {
			if !slices.Contains(s.pending, f) {
				s.pending = append(s.pending, f)
			}
		}
		return
	}
	s.listeners.Send(fields)
}

// Update calls fun, which may call any number of setters, and then
// sends a single notification with all of the changed fields.
func (s *Shape) Update(fun func()) {
	s.batch++
	fun()
	s.batch--
	if s.batch > 0 || len(s.pending) == 0 {
		return
	}
	fields := s.pending
	s.pending = nil
	s.listeners.Send(fields)
}

func (s *Shape) SetName(name string) {
	s.name = name
	s.changed(FieldName)
}

func (s *Shape) SetTransform(m math32.Matrix2) {
	s.transform = m
	s.changed(FieldTransform)
}

// SetPos sets the translation part of the transform.
func (s *Shape) SetPos(x, y float32) {
	s.transform.SetPos(math32.Vec2(x, y))
	s.changed(FieldTransform)
}

func (s *Shape) SetSize(w, h float32) {
	s.size = math32.Vec2(w, h)
	s.changed(FieldSize)
}

func (s *Shape) SetVisible(visible bool) {
	s.hidden = !visible
	s.changed(FieldVisible)
}

func (s *Shape) SetLocked(locked bool) {
	s.locked = locked
	s.changed(FieldLocked)
}

func (s *Shape) SetMask(mask bool) {
	s.mask = mask
	s.changed(FieldMask)
}

func (s *Shape) SetFills(fills ...styles.Fill) {
	s.style.Fills = fills
	s.changed(FieldFills)
}

func (s *Shape) SetBorders(borders ...styles.Border) {
	s.style.Borders = borders
	s.changed(FieldBorders)
}

func (s *Shape) SetShadows(shadows ...styles.Shadow) {
	s.style.Shadows = shadows
	s.changed(FieldShadows)
}

func (s *Shape) SetRadius(r styles.Radius) {
	s.style.Radius = r
	s.changed(FieldRadius)
}

func (s *Shape) SetBlur(b styles.Blur) {
	s.style.Blur = b
	s.changed(FieldBlur)
}

// SetStyle replaces the whole local style with a deep copy of st.
func (s *Shape) SetStyle(st styles.Style) {
	s.style = styles.Style{}
	errors.Log(copier.CopyWithOption(&s.style, &st, copier.Option{DeepCopy: true}))
	s.changed(FieldFills, FieldBorders, FieldShadows, FieldRadius, FieldBlur,
		FieldFillsRef, FieldBordersRef, FieldShadowsRef, FieldRadiusRef, FieldBlurRef)
}

// SetStyleRef sets the shared resource id of one style property, where
// field is one of the *Ref fields. An empty id clears the reference.
func (s *Shape) SetStyleRef(field Field, id string) {
	switch field {
	case FieldFillsRef:
		s.style.FillsRef = id
	case FieldBordersRef:
		s.style.BordersRef = id
	case FieldShadowsRef:
		s.style.ShadowsRef = id
	case FieldRadiusRef:
		s.style.RadiusRef = id
	case FieldBlurRef:
		s.style.BlurRef = id
	default:
		panic("doc.Shape.SetStyleRef: not a style reference field: " + field.String())
	}
	s.changed(field)
}

func (s *Shape) SetPins(p layout.Pins) {
	s.pins = p
	s.changed(FieldPins)
}

// SetAutoLayout sets the flow layout of a container; nil removes it.
func (s *Shape) SetAutoLayout(f *layout.Flow) {
	s.flow = f
	s.changed(FieldAutoLayout)
}

// SetPoints sets the normalized outline points of a path.
func (s *Shape) SetPoints(closed bool, pts ...math32.Vector2) {
	s.points = pts
	s.closed = closed
	s.changed(FieldPoints)
}

func (s *Shape) SetText(txt string) {
	s.text = txt
	s.changed(FieldText)
}

func (s *Shape) SetTextStyle(st text.Style) {
	s.textStyle = st
	s.changed(FieldTextStyle)
}

func (s *Shape) SetTextBehavior(b text.Behaviors) {
	s.textBehavior = b
	s.changed(FieldTextBehavior)
}

func (s *Shape) SetSymbolRef(id string) {
	s.symbolRef = id
	s.changed(FieldSymbolRef)
}

func (s *Shape) SetCustomSize(custom bool) {
	s.customSize = custom
	s.changed(FieldCustomSize)
}

// SetOverride sets the value of the override for the given target path id
// and category. An existing override variable is updated in place and
// notifies its own watchers; a new one notifies the watchers of the shape.
func (s *Shape) SetOverride(target string, cat Categories, value any) *Variable {
	k := OverrideKey{target, cat}
	if v, ok := s.overrides[k]; ok {
		v.Set(value)
		return v
	}
	if s.overrides == nil {
		s.overrides = map[OverrideKey]*Variable{}
	}
	v := NewVariable(value)
	s.overrides[k] = v
	s.changed(FieldOverrides)
	return v
}

// RemoveOverride removes the override for the given target and category.
func (s *Shape) RemoveOverride(target string, cat Categories) bool {
	k := OverrideKey{target, cat}
	if _, ok := s.overrides[k]; !ok {
		return false
	}
	delete(s.overrides, k)
	s.changed(FieldOverrides)
	return true
}

func (s *Shape) SetBoolOp(op ppath.BoolOp) {
	s.boolOp = op
	s.changed(FieldBoolOp)
}

func (s *Shape) SetTable(t *layout.Table) {
	s.table = t
	s.changed(FieldTable)
}

func (s *Shape) SetCell(c layout.Cell) {
	s.cell = c
	s.changed(FieldCell)
}

// AddChild adds the given children at the end of the child list.
func (s *Shape) AddChild(kids ...*Shape) {
	for _, k := range kids {
		s.detach(k)
		k.parent = s
		s.children = append(s.children, k)
	}
	s.changed(FieldChildren)
}

// InsertChild inserts the given child at the given index.
func (s *Shape) InsertChild(kid *Shape, index int) {
	s.detach(kid)
	kid.parent = s
	index = math32.Clamp(index, 0, len(s.children))
	s.children = slices.Insert(s.children, index, kid)
	s.changed(FieldChildren)
}

// detach removes kid from its current parent, notifying that parent.
func (s *Shape) detach(kid *Shape) {
	if kid.parent == nil {
		return
	}
	if kid.parent == s {
		s.children = slices.DeleteFunc(s.children, func(c *Shape) bool { return c == kid })
		kid.parent = nil
		return
	}
	kid.parent.RemoveChild(kid)
}

// RemoveChild removes the given child, returning false if it is not a child.
func (s *Shape) RemoveChild(kid *Shape) bool {
	idx := slices.Index(s.children, kid)
	if idx < 0 {
		return false
	}
	s.children = slices.Delete(s.children, idx, idx+1)
	kid.parent = nil
	s.changed(FieldChildren)
	return true
}

// MoveChild moves the child at index from to index to.
func (s *Shape) MoveChild(from, to int) {
	if from == to || from < 0 || from >= len(s.children) {
		return
	}
	k := s.children[from]
	s.children = slices.Delete(s.children, from, from+1)
	to = math32.Clamp(to, 0, len(s.children))
	s.children = slices.Insert(s.children, to, k)
	s.changed(FieldChildren)
}

// Find returns the shape with the given id in the subtree of s, or nil.
func (s *Shape) Find(id string) *Shape {
	if s.id == id {
		return s
	}
	for _, c := range s.children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Clone returns a deep copy of the subtree of s without watchers or parent.
// The copy keeps the ids, so that it resolves overrides the same way.
func (s *Shape) Clone() *Shape {
	c := &Shape{
		id: s.id, name: s.name, kind: s.kind,
		transform: s.transform, size: s.size,
		hidden: s.hidden, locked: s.locked, mask: s.mask,
		pins:   s.pins,
		points: slices.Clone(s.points), closed: s.closed,
		text: s.text, textStyle: s.textStyle, textBehavior: s.textBehavior,
		symbolRef: s.symbolRef, customSize: s.customSize,
		boolOp: s.boolOp, cell: s.cell,
	}
	errors.Log(copier.CopyWithOption(&c.style, &s.style, copier.Option{DeepCopy: true}))
	if s.flow != nil {
		f := *s.flow
		c.flow = &f
	}
	if s.table != nil {
		t := &layout.Table{}
		errors.Log(copier.CopyWithOption(t, s.table, copier.Option{DeepCopy: true}))
		c.table = t
	}
	for k, v := range s.overrides {
		if c.overrides == nil {
			c.overrides = map[OverrideKey]*Variable{}
		}
		c.overrides[k] = NewVariable(v.Value())
	}
	for _, k := range s.children {
		kc := k.Clone()
		kc.parent = c
		c.children = append(c.children, kc)
	}
	return c
}
