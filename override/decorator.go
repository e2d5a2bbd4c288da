// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package override

import (
	"cogentcore.org/vector/doc"
)

// Decorator is a [doc.Node] that reads through to the wrapped node,
// except for the fields that instances can override, which are
// resolved through the stack first.
type Decorator struct {
	doc.Node

	Stack Stack

	// Observe, if non-nil, is called with every resolution made by the
	// decorator, so that the caller can watch the inspected sources.
	Observe func(cat doc.Categories, r Resolution)
}

// NewDecorator returns a decorator of n for the given stack.
// With an empty stack, n itself is returned.
func NewDecorator(n doc.Node, st Stack, observe func(cat doc.Categories, r Resolution)) doc.Node {
	if len(st) == 0 {
		return n
	}
	return &Decorator{Node: n, Stack: st, Observe: observe}
}

// Resolve resolves the given category for the wrapped node.
func (d *Decorator) Resolve(cat doc.Categories) Resolution {
	r := Resolve(d.Node.ID(), cat, d.Stack)
	if d.Observe != nil {
		d.Observe(cat, r)
	}
	return r
}

func (d *Decorator) Visible() bool {
	if r := d.Resolve(doc.OverrideVisible); r.Found {
		return r.Value.(bool)
	}
	return d.Node.Visible()
}

func (d *Decorator) Locked() bool {
	if r := d.Resolve(doc.OverrideLocked); r.Found {
		return r.Value.(bool)
	}
	return d.Node.Locked()
}

func (d *Decorator) Text() string {
	if r := d.Resolve(doc.OverrideText); r.Found {
		return r.Value.(string)
	}
	return d.Node.Text()
}

func (d *Decorator) SymbolRef() string {
	if r := d.Resolve(doc.OverrideSymbolRef); r.Found {
		return r.Value.(string)
	}
	return d.Node.SymbolRef()
}

// Unwrap returns the wrapped node.
func (d *Decorator) Unwrap() doc.Node {
	return d.Node
}
