// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package doc provides the document node interface that views are
// bound to, and an in-memory [Shape] implementation of it with change
// notification.
package doc

import (
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/text"
	"github.com/google/uuid"
)

// Node is the read interface of a document node. A view holds a
// non-owning reference to the node it is bound to, and watches it.
type Node interface {

	// ID returns the stable id of the node.
	ID() string

	Name() string
	Kind() Kinds

	// Parent returns the parent node, or nil for a root.
	Parent() Node

	// Children returns the ordered child nodes; index is z-order.
	Children() []Node

	// Transform returns the transform relative to the parent.
	Transform() math32.Matrix2

	Size() math32.Vector2
	Visible() bool
	Locked() bool

	// IsMask returns whether the node masks its following siblings.
	IsMask() bool

	// Style returns the local style. It must not be modified.
	Style() styles.Style

	Pins() layout.Pins

	// AutoLayout returns the flow layout of a container, or nil.
	AutoLayout() *layout.Flow

	// Points returns the outline points of a path, normalized
	// to the unit box of the node size.
	Points() []math32.Vector2

	// Closed returns whether the outline of a path is closed.
	Closed() bool

	Text() string
	TextStyle() text.Style
	TextBehavior() text.Behaviors

	// SymbolRef returns the id of the symbol definition an instance renders.
	SymbolRef() string

	// CustomSize returns whether an instance has been resized away from
	// its definition size, in which case definition children are laid
	// out with their constraints instead of being scaled.
	CustomSize() bool

	// Override returns the override declared by an instance for the
	// given target path id and category.
	Override(target string, cat Categories) (*Variable, bool)

	// Overrides returns the keys of all overrides declared by an instance.
	Overrides() []OverrideKey

	BoolOp() ppath.BoolOp

	// Table returns the track structure of a table, or nil.
	Table() *layout.Table

	// Cell returns the placement of a table cell.
	Cell() layout.Cell

	// Watch adds a function called with the changed fields after every
	// change to the node, and returns a function that removes it.
	Watch(fun func(fields []Field)) (unwatch func())
}

// NewID returns a new unique node id.
func NewID() string {
	return uuid.NewString()
}
