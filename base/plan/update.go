// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan reconciles a slice of named elements against a target
// list of names. Elements whose name is still wanted are kept and moved
// into place, the rest are dropped, and missing ones are created.
// Names must be unique within a target list.
package plan

import (
	"log/slog"
	"slices"

	"cogentcore.org/vector/base/slicesx"
)

// Namer is implemented by elements that can be reconciled by [Update].
type Namer interface {

	// PlanName returns the unique name of the element in its slice.
	PlanName() string
}

// Update makes *s hold n elements named name(0) ... name(n-1), in order.
// Existing elements with a wanted name are reused. new creates the
// element for a missing name, and init, if non-nil, is called on each
// created element once all of them are in place. destroy, if non-nil,
// is called on every dropped element, in reverse slice order.
// Update returns whether the slice changed.
func Update[T Namer](s *[]T, n int, name func(i int) string, new func(name string, i int) T, init func(e T, i int), destroy func(e T)) bool {
	want := make(map[string]struct{}, n)
	for i := range n {
		nm := name(i)
		if _, dup := want[nm]; dup {
			slog.Error("plan.Update: duplicate name", "name", nm)
		}
		want[nm] = struct{}{}
	}

	cur := *s
	changed := false
	for i := len(cur) - 1; i >= 0; i-- {
		if _, ok := want[cur[i].PlanName()]; ok {
			continue
		}
		changed = true
		if destroy != nil {
			destroy(cur[i])
		}
		cur = slices.Delete(cur, i, i+1)
	}

	hint := make(map[string]int, len(cur))
	for i, e := range cur {
		hint[e.PlanName()] = i
	}
	var created []int
	for i := range n {
		nm := name(i)
		at := slicesx.Search(cur, func(e T) bool { return e.PlanName() == nm }, hint[nm])
		switch {
		case at < 0:
			cur = slices.Insert(cur, i, new(nm, i))
			created = append(created, i)
		case at != i:
			cur = slicesx.Move(cur, at, i)
		default:
			continue
		}
		changed = true
	}
	*s = cur
	if init != nil {
		for _, i := range created {
			init(cur[i], i)
		}
	}
	return changed
}
