// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

// Key identifies one subscription: a subscriber and the slot it
// uses for a given source. Both must be comparable.
type Key struct {
	Subscriber any
	Slot       any
}

// Registry holds at most one unsubscribe function per [Key].
// Binding a key that is already bound releases the previous
// subscription first, so subscriptions are replaced and never
// accumulate. The zero value is not usable; use [NewRegistry].
type Registry struct {
	subs  map[Key]func()
	bySub map[any]map[any]struct{}
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{subs: map[Key]func(){}, bySub: map[any]map[any]struct{}{}}
}

// Bind records the given unsubscribe function for the given subscriber
// and slot, first calling any unsubscribe function previously bound to them.
// A nil unsub just releases the slot.
func (r *Registry) Bind(sub, slot any, unsub func()) {
	r.Release(sub, slot)
	if unsub == nil {
		return
	}
	k := Key{sub, slot}
	r.subs[k] = unsub
	slots := r.bySub[sub]
	if slots == nil {
		slots = map[any]struct{}{}
		r.bySub[sub] = slots
	}
	slots[slot] = struct{}{}
}

// Has returns whether there is a subscription bound to the given
// subscriber and slot.
func (r *Registry) Has(sub, slot any) bool {
	_, ok := r.subs[Key{sub, slot}]
	return ok
}

// Release calls and removes the unsubscribe function bound to the given
// subscriber and slot, if any. It returns whether there was one.
func (r *Registry) Release(sub, slot any) bool {
	k := Key{sub, slot}
	unsub, ok := r.subs[k]
	if !ok {
		return false
	}
	delete(r.subs, k)
	if slots := r.bySub[sub]; slots != nil {
		delete(slots, slot)
		if len(slots) == 0 {
			delete(r.bySub, sub)
		}
	}
	unsub()
	return true
}

// ReleaseAll releases every subscription of the given subscriber,
// returning how many there were.
func (r *Registry) ReleaseAll(sub any) int {
	slots := r.bySub[sub]
	n := 0
	for slot := range slots {
		if r.Release(sub, slot) {
			n++
		}
	}
	return n
}

// Len returns the total number of bound subscriptions.
func (r *Registry) Len() int {
	return len(r.subs)
}

// Count returns the number of subscriptions bound to the given subscriber.
func (r *Registry) Count(sub any) int {
	return len(r.bySub[sub])
}
