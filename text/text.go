// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text provides the text layout interface consumed by text shapes,
// and a basic engine that measures with a fixed bitmap face.
package text

import (
	"image/color"

	"cogentcore.org/vector/math32"
)

// Behaviors are how a text box follows its content.
type Behaviors int32

const (
	// Fixed keeps the width, wrapping lines to it, and grows the height.
	Fixed Behaviors = iota

	// Flexible does not wrap and grows both dimensions.
	Flexible

	// FixedBoth wraps to the width and leaves the box untouched.
	FixedBoth
)

var behaviorNames = [...]string{"fixed", "flexible", "fixed-both"}

func (b Behaviors) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "fixed"
	}
	return behaviorNames[b]
}

// ParseBehavior returns the behavior with the given name.
func ParseBehavior(s string) (Behaviors, bool) {
	for i, n := range behaviorNames {
		if n == s {
			return Behaviors(i), true
		}
	}
	return Fixed, false
}

// Wraps returns whether lines wrap to the box width.
func (b Behaviors) Wraps() bool {
	return b != Flexible
}

// Aligns are text alignments along one axis.
type Aligns int32

const (
	Start Aligns = iota
	Center
	End
)

var alignNames = [...]string{"start", "center", "end"}

func (a Aligns) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "start"
	}
	return alignNames[a]
}

// ParseAlign returns the alignment with the given name.
func ParseAlign(s string) (Aligns, bool) {
	for i, n := range alignNames {
		if n == s {
			return Aligns(i), true
		}
	}
	return Start, false
}

// Style is the style of a text run.
type Style struct {

	// Size is the font size in points; 0 means [DefaultSize].
	Size float32

	// LineHeight is the line height as a multiple of the font size;
	// 0 means 1.2.
	LineHeight float32

	Color color.RGBA

	// Align and VAlign are the horizontal and vertical alignments.
	Align  Aligns
	VAlign Aligns
}

// DefaultSize is the font size used when a style does not set one.
const DefaultSize = 13

// FontSize returns the effective font size.
func (s *Style) FontSize() float32 {
	if s.Size <= 0 {
		return DefaultSize
	}
	return s.Size
}

// LineSpacing returns the effective line height in points.
func (s *Style) LineSpacing() float32 {
	lh := s.LineHeight
	if lh <= 0 {
		lh = 1.2
	}
	return lh * s.FontSize()
}

// Line is one laid out line of text.
type Line struct {
	Text  string
	Pos   math32.Vector2
	Width float32
}

// Metrics is the result of a text layout.
type Metrics struct {
	ContentWidth  float32
	ContentHeight float32

	// ParagraphWidths are the widths of the widest line of each paragraph.
	ParagraphWidths []float32

	Lines []Line
}

// Engine lays out text in a box. When wrap is set, lines are
// broken to fit the box width.
type Engine interface {
	Layout(txt string, box math32.Vector2, style Style, wrap bool) Metrics
}
