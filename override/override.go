// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package override resolves instance overrides for the nodes of symbol
// definitions, through the stack of instance contexts that encloses them.
package override

import (
	"log/slog"
	"strings"

	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/styles"
)

// Context is one enclosing instance context: the instance node that
// declares overrides, and the symbol definition it renders.
type Context struct {
	Instance   doc.Node
	Definition doc.Node
}

// ID returns the id of the context used in override paths: the
// instance id, or the definition id when there is no instance.
func (c Context) ID() string {
	if c.Instance != nil {
		return c.Instance.ID()
	}
	if c.Definition != nil {
		return c.Definition.ID()
	}
	return ""
}

// Stack is an ordered list of instance contexts, outermost first.
// Stacks are shared by reference between views and must not be
// modified after creation; use [Stack.Push].
type Stack []Context

// Push returns a new stack with c appended as the innermost context.
func (st Stack) Push(c Context) Stack {
	ns := make(Stack, len(st), len(st)+1)
	copy(ns, st)
	return append(ns, c)
}

// Identity returns a string that identifies the stack by the ids
// of its contexts, used to distinguish views of the same definition
// node rendered by different instances.
func (st Stack) Identity() string {
	ids := make([]string, len(st))
	for i, c := range st {
		ids[i] = c.ID()
	}
	return strings.Join(ids, "/")
}

// Key returns the override target path that the context at index k
// uses for the node with the given local id: the ids of the contexts
// nested inside it followed by the local id.
func (st Stack) Key(k int, localID string) string {
	if k >= len(st)-1 {
		return localID
	}
	var b strings.Builder
	for _, c := range st[k+1:] {
		b.WriteString(c.ID())
		b.WriteByte('/')
	}
	b.WriteString(localID)
	return b.String()
}

// Source is one override inspected during a resolution.
type Source struct {
	Instance doc.Node
	Key      string

	// Variable is the override found for Key, or nil if the instance
	// had none.
	Variable *doc.Variable
}

// Resolution is the result of [Resolve].
type Resolution struct {
	Value any
	Found bool

	// Sources are all of the overrides inspected, innermost first.
	// A change to any of them, or to the set of overrides of any of
	// their instances, requires resolving again.
	Sources []Source
}

// Resolve returns the override for the node with the given local id
// and category, walking the stack from the innermost context outward.
// The first override whose value has the kind expected for the category
// wins; overrides of another kind are treated as absent.
func Resolve(localID string, cat doc.Categories, st Stack) Resolution {
	var res Resolution
	for k := len(st) - 1; k >= 0; k-- {
		c := st[k]
		if c.Instance == nil {
			continue
		}
		key := st.Key(k, localID)
		src := Source{Instance: c.Instance, Key: key}
		v, ok := c.Instance.Override(key, cat)
		if ok {
			src.Variable = v
		}
		res.Sources = append(res.Sources, src)
		if !ok {
			continue
		}
		val := v.Value()
		if !Matches(cat, val) {
			slog.Debug("override.Resolve: value kind does not match category", "target", key, "category", cat, "value", val)
			continue
		}
		res.Value = val
		res.Found = true
		break
	}
	return res
}

// Matches returns whether the value has the kind expected for the category.
func Matches(cat doc.Categories, v any) bool {
	switch cat {
	case doc.OverrideFills:
		_, ok := v.([]styles.Fill)
		return ok
	case doc.OverrideBorders:
		_, ok := v.([]styles.Border)
		return ok
	case doc.OverrideShadows:
		_, ok := v.([]styles.Shadow)
		return ok
	case doc.OverrideBlur:
		_, ok := v.(styles.Blur)
		return ok
	case doc.OverrideRadius:
		_, ok := v.(styles.Radius)
		return ok
	case doc.OverrideText, doc.OverrideSymbolRef:
		_, ok := v.(string)
		return ok
	case doc.OverrideVisible, doc.OverrideLocked:
		_, ok := v.(bool)
		return ok
	}
	return false
}
