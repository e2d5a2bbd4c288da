// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"time"

	"cogentcore.org/vector/base/iox/tomlx"
)

// Settings are the settings of a [Context].
type Settings struct {

	// FocusBudget is the time budget of the focus pass of a tick,
	// after which the tick stops and leaves the remaining work for
	// the next tick.
	FocusBudget time.Duration

	// MaxPasses is the maximum number of relayout passes per tick,
	// for layouts that keep requesting further layouts.
	MaxPasses int

	// GridCell is the cell size of the spatial grid used to skip
	// boolean operations on non-overlapping shapes.
	GridCell float32

	// FlattenSegments is the number of line segments per curve used
	// by the reference boolean operations.
	FlattenSegments int

	// Print a trace of updates that trigger relayout or re-rendering
	UpdateTrace bool

	// Print a trace of all layouts
	LayoutTrace bool

	// Print a trace of the nodes rendering
	RenderTrace bool
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.FocusBudget = 40 * time.Millisecond
	s.MaxPasses = 8
	s.GridCell = 64
	s.FlattenSegments = 16
}

// NewSettings returns new default settings.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Open loads the settings from the given TOML file. Fields that are
// not in the file keep their current values.
func (s *Settings) Open(filename string) error {
	return tomlx.Open(s, filename)
}

// Save saves the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}
