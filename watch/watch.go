// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch provides change listener lists for watchable sources
// and a [Registry] that tracks the subscriptions of each subscriber
// so that they can be released deterministically.
package watch

import (
	"maps"
	"slices"
)

// Listeners is a list of callback functions that are called with
// a value of type T whenever [Listeners.Send] is called.
// The zero value is ready to use. It is not safe for concurrent use.
type Listeners[T any] struct {
	next int
	fns  map[int]func(T)
}

// Add adds the given listener function and returns a function
// that removes it again. The remove function is safe to call
// more than once.
func (ls *Listeners[T]) Add(fun func(T)) (remove func()) {
	if ls.fns == nil {
		ls.fns = map[int]func(T){}
	}
	id := ls.next
	ls.next++
	ls.fns[id] = fun
	return func() {
		delete(ls.fns, id)
	}
}

// Send calls every listener with the given value, in the order in which
// the listeners were added. Listeners added during the call are not
// called; listeners removed during the call are skipped.
func (ls *Listeners[T]) Send(v T) {
	if len(ls.fns) == 0 {
		return
	}
	ids := slices.Sorted(maps.Keys(ls.fns))
	for _, id := range ids {
		if fun, ok := ls.fns[id]; ok {
			fun(v)
		}
	}
}

// Len returns the number of current listeners.
func (ls *Listeners[T]) Len() int {
	return len(ls.fns)
}
