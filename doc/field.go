// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

// Field is a tag for one mutable attribute of a document node.
// Change notifications carry the list of fields that changed.
type Field int32

const (
	FieldName Field = iota
	FieldTransform
	FieldSize
	FieldVisible
	FieldLocked
	FieldMask
	FieldChildren
	FieldFills
	FieldBorders
	FieldShadows
	FieldRadius
	FieldBlur
	FieldFillsRef
	FieldBordersRef
	FieldShadowsRef
	FieldRadiusRef
	FieldBlurRef
	FieldPoints
	FieldPins
	FieldAutoLayout
	FieldText
	FieldTextStyle
	FieldTextBehavior
	FieldSymbolRef
	FieldCustomSize
	FieldOverrides
	FieldBoolOp
	FieldTable
	FieldCell

	// FieldsN is the number of fields.
	FieldsN
)

var fieldNames = [FieldsN]string{
	"name", "transform", "size", "visible", "locked", "mask", "children",
	"fills", "borders", "shadows", "radius", "blur",
	"fillsRef", "bordersRef", "shadowsRef", "radiusRef", "blurRef",
	"points", "pins", "autoLayout", "text", "textStyle", "textBehavior",
	"symbolRef", "customSize", "overrides", "boolOp", "table", "cell",
}

func (f Field) String() string {
	if f < 0 || f >= FieldsN {
		return "Field(?)"
	}
	return fieldNames[f]
}

// Kinds are the kinds of document nodes.
type Kinds int32

const (
	// Group is a container whose box is the union of its children.
	Group Kinds = iota

	// Frame is a container with its own box and style, which may
	// use auto-layout for its children.
	Frame

	Rect
	Ellipse

	// Path is a shape with an outline given by its points.
	Path

	Text

	// Symbol is the root of a reusable component definition.
	Symbol

	// Instance renders a symbol definition in its own box.
	Instance

	Table
	Cell

	// BoolGroup composes the outlines of its children with a boolean operation.
	BoolGroup
)

var kindNames = [...]string{"group", "frame", "rect", "ellipse", "path", "text", "symbol", "instance", "table", "cell", "bool"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kinds(?)"
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kinds, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kinds(i), true
		}
	}
	return Group, false
}

// IsContainer returns whether nodes of this kind have children.
func (k Kinds) IsContainer() bool {
	switch k {
	case Group, Frame, Symbol, Table, Cell, BoolGroup:
		return true
	}
	return false
}

// Categories are the kinds of values an instance can override
// on the nodes of its symbol definition.
type Categories int32

const (
	OverrideFills Categories = iota
	OverrideBorders
	OverrideShadows
	OverrideBlur
	OverrideRadius
	OverrideText
	OverrideVisible
	OverrideLocked
	OverrideSymbolRef

	// CategoriesN is the number of categories.
	CategoriesN
)

var categoryNames = [CategoriesN]string{"fills", "borders", "shadows", "blur", "radius", "text", "visible", "locked", "symbolRef"}

func (c Categories) String() string {
	if c < 0 || c >= CategoriesN {
		return "Categories(?)"
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given name.
func ParseCategory(s string) (Categories, bool) {
	for i, n := range categoryNames {
		if n == s {
			return Categories(i), true
		}
	}
	return OverrideFills, false
}
