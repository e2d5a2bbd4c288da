// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol provides the symbol manager interface that instance
// views load their definitions through, and an in-memory library.
package symbol

import (
	"context"
	"sync"
	"time"

	"cogentcore.org/vector/base/errors"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/watch"
)

// ErrNotFound is returned by [Manager.Get] when there is no definition
// with the requested id.
var ErrNotFound = errors.New("symbol: definition not found")

// Manager loads symbol definitions by id. Get may block, and must
// return promptly with the context error when ctx is done.
type Manager interface {
	Get(ctx context.Context, id string) (doc.Node, error)
}

// Notifier is implemented by managers that report when a definition
// is added or replaced, so that failed loads can be retried.
type Notifier interface {
	// OnSet adds a function called with the id of each definition that
	// is set, possibly on another goroutine, and returns a function
	// that removes it.
	OnSet(fun func(id string)) (remove func())
}

// Library is an in-memory [Manager]. It is safe for concurrent use.
type Library struct {

	// Latency is an artificial delay applied to every Get.
	Latency time.Duration

	mu   sync.RWMutex
	defs map[string]doc.Node
	gets int

	setMu sync.Mutex
	sets  watch.Listeners[string]
}

// NewLibrary returns a new library with the given definitions,
// keyed by their ids.
func NewLibrary(defs ...doc.Node) *Library {
	lb := &Library{defs: map[string]doc.Node{}}
	for _, d := range defs {
		lb.defs[d.ID()] = d
	}
	return lb
}

// NewDocumentLibrary returns a new library with the symbols of the given document.
func NewDocumentLibrary(d *doc.Document) *Library {
	lb := NewLibrary()
	for id, s := range d.Symbols {
		lb.defs[id] = s
	}
	return lb
}

// Set adds or replaces the definition with the id of def, and
// notifies the functions added with [Library.OnSet].
func (lb *Library) Set(def doc.Node) {
	id := def.ID()
	lb.mu.Lock()
	lb.defs[id] = def
	lb.mu.Unlock()
	lb.setMu.Lock()
	defer lb.setMu.Unlock()
	lb.sets.Send(id)
}

// OnSet implements [Notifier]. The function must not call OnSet
// or its remove function.
func (lb *Library) OnSet(fun func(id string)) (remove func()) {
	lb.setMu.Lock()
	defer lb.setMu.Unlock()
	rm := lb.sets.Add(fun)
	return func() {
		lb.setMu.Lock()
		defer lb.setMu.Unlock()
		rm()
	}
}

// Delete removes the definition with the given id.
func (lb *Library) Delete(id string) {
	lb.mu.Lock()
	delete(lb.defs, id)
	lb.mu.Unlock()
}

// Gets returns the number of calls to Get so far.
func (lb *Library) Gets() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return lb.gets
}

// Get implements [Manager].
func (lb *Library) Get(ctx context.Context, id string) (doc.Node, error) {
	lb.mu.Lock()
	lb.gets++
	lat := lb.Latency
	lb.mu.Unlock()
	if lat > 0 {
		t := time.NewTimer(lat)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	d, ok := lb.defs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}
