// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/vector/base/errors"
	"github.com/jinzhu/copier"
)

// Library is an in-memory [Resolver] that owns a set of resources.
type Library struct {
	resources map[string]*Resource
}

// NewLibrary returns a new library containing copies of the given resources.
func NewLibrary(rs ...*Resource) *Library {
	lb := &Library{resources: map[string]*Resource{}}
	for _, r := range rs {
		lb.Set(r)
	}
	return lb
}

// Resource implements [Resolver].
func (lb *Library) Resource(id string) (*Resource, bool) {
	r, ok := lb.resources[id]
	return r, ok
}

// Set adds the given resource, or updates the value of the existing resource
// with the same id and notifies its watchers. The library stores a deep copy
// of the value, so later changes to r do not affect it.
func (lb *Library) Set(r *Resource) *Resource {
	cur, ok := lb.resources[r.ID]
	if !ok {
		cur = &Resource{ID: r.ID}
		lb.resources[r.ID] = cur
	}
	cur.Name = r.Name
	cur.Kind = r.Kind
	cur.Value = Values{}
	errors.Log(copier.CopyWithOption(&cur.Value, &r.Value, copier.Option{DeepCopy: true}))
	if ok {
		cur.listeners.Send(cur)
	}
	return cur
}

// Update calls the given function to modify the value of the resource
// with the given id and notifies its watchers. It returns false if there
// is no such resource.
func (lb *Library) Update(id string, fun func(v *Values)) bool {
	cur, ok := lb.resources[id]
	if !ok {
		slog.Warn("styles.Library.Update: no resource", "id", id)
		return false
	}
	fun(&cur.Value)
	cur.listeners.Send(cur)
	return true
}

// Delete removes the resource with the given id, marking it as deleted
// and notifying its watchers. It returns false if there is no such resource.
func (lb *Library) Delete(id string) bool {
	cur, ok := lb.resources[id]
	if !ok {
		return false
	}
	delete(lb.resources, id)
	cur.Deleted = true
	cur.listeners.Send(cur)
	return true
}

// IDs returns the sorted ids of all resources.
func (lb *Library) IDs() []string {
	return slices.Sorted(maps.Keys(lb.resources))
}

// Len returns the number of resources.
func (lb *Library) Len() int {
	return len(lb.resources)
}
