// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"cogentcore.org/vector/watch"
)

// ResourceKinds are the kinds of shared style resources.
type ResourceKinds int32

const (
	FillSet ResourceKinds = iota
	BorderSet
	ShadowSet
	RadiusSet
	BlurSet
)

var resourceKindNames = [...]string{"fills", "borders", "shadows", "radius", "blur"}

func (k ResourceKinds) String() string {
	if k < 0 || int(k) >= len(resourceKindNames) {
		return fmt.Sprintf("ResourceKinds(%d)", int32(k))
	}
	return resourceKindNames[k]
}

// Values holds the style values of a [Resource]. Only the
// values matching the resource kind are meaningful.
type Values struct {
	Fills   []Fill
	Borders []Border
	Shadows []Shadow
	Radius  Radius
	Blur    Blur
}

// Resource is a shared, named style fragment that shapes reference by id.
// Changes to it are announced to its watchers.
type Resource struct {
	ID    string
	Name  string
	Kind  ResourceKinds
	Value Values

	// Deleted is set when the resource has been removed from its
	// library; watchers are notified one last time.
	Deleted bool

	listeners watch.Listeners[*Resource]
}

// Watch adds a function that is called whenever the resource changes
// or is deleted, and returns a function that removes it.
func (r *Resource) Watch(fun func(r *Resource)) (unwatch func()) {
	return r.listeners.Add(fun)
}

// NumWatchers returns the number of current watchers of the resource.
func (r *Resource) NumWatchers() int {
	return r.listeners.Len()
}

// Resolver looks up shared style resources by id. It returns false
// when there is no resource with the given id, for example because
// it has been deleted.
type Resolver interface {
	Resource(id string) (*Resource, bool)
}
