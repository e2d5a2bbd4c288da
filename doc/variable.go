// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"cogentcore.org/vector/watch"
)

// Variable is a watchable value, used for instance override values.
type Variable struct {
	value     any
	listeners watch.Listeners[*Variable]
}

// NewVariable returns a new variable with the given value.
func NewVariable(v any) *Variable {
	return &Variable{value: v}
}

// Value returns the current value.
func (v *Variable) Value() any {
	return v.value
}

// Set sets the value and notifies the watchers.
func (v *Variable) Set(val any) {
	v.value = val
	v.listeners.Send(v)
}

// Watch adds a function called whenever the value is set,
// and returns a function that removes it.
func (v *Variable) Watch(fun func(v *Variable)) (unwatch func()) {
	return v.listeners.Add(fun)
}

// NumWatchers returns the number of current watchers.
func (v *Variable) NumWatchers() int {
	return v.listeners.Len()
}

// OverrideKey identifies an override: the path id of the target node
// relative to the instance that declares it, and the category.
type OverrideKey struct {
	Target   string
	Category Categories
}
