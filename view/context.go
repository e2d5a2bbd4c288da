// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/vector/base/errors"
	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/override"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/render"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/symbol"
	"cogentcore.org/vector/text"
	"cogentcore.org/vector/tree"
	"cogentcore.org/vector/watch"
)

// Stats are counters of the work done by a [Context].
type Stats struct {
	Ticks       int
	Layouts     int
	Renders     int
	Effects     int
	Loads       int
	StaleLoads  int
	FailedLoads int
	BudgetExits int
	OpsRun      int
	OpsSkipped  int

	// Binds counts the subscriptions made to override sources.
	Binds int
}

// Context schedules the layout and rendering of one view tree, and
// holds the collaborators that views consult. It is owned by the tree
// root and is not safe for concurrent use, except that symbol loads
// complete on other goroutines and are posted back to [Context.Tick].
type Context struct {
	Settings Settings

	// Registry holds the subscriptions of all views, keyed by view and slot.
	Registry *watch.Registry

	// Resources resolves shared style resources. It may be nil.
	Resources styles.Resolver

	// Symbols loads symbol definitions for instances. It may be nil.
	Symbols symbol.Manager

	Text text.Engine

	// Ops composes the outlines of boolean groups.
	Ops ppath.Ops

	// Focus is an optional focused view whose ancestor chain is laid
	// out first on each tick, within [Settings.FocusBudget].
	Focus *NodeBase

	Stats Stats

	// Root is the root view.
	Root Viewer

	relayout   map[*NodeBase]struct{}
	dirty      map[*NodeBase]struct{}
	orphans    map[string]*NodeBase
	layoutDone watch.Listeners[*Context]

	// watched is the symbol manager whose definitions are watched.
	watched symbol.Manager

	base     context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	posts    []func()
	wake     chan struct{}
	inflight atomic.Int32

	// now returns the current time, for the focus budget.
	now func() time.Time
}

// NewContext returns a new context with default settings, the basic
// text engine, and the reference boolean operations.
func NewContext() *Context {
	c := &Context{
		Registry: watch.NewRegistry(),
		Text:     text.NewBasicEngine(),
		relayout: map[*NodeBase]struct{}{},
		dirty:    map[*NodeBase]struct{}{},
		orphans:  map[string]*NodeBase{},
		wake:     make(chan struct{}, 1),
		now:      time.Now,
	}
	c.Settings.Defaults()
	c.Ops = ppath.FillRuleOps{Segments: c.Settings.FlattenSegments}
	c.base, c.cancel = context.WithCancel(context.Background())
	return c
}

// NewDocumentContext returns a new context that resolves resources and
// symbols from the given document, with its root view set to the
// document root.
func NewDocumentContext(d *doc.Document) *Context {
	c := NewContext()
	c.Resources = d.Resources
	c.Symbols = symbol.NewDocumentLibrary(d)
	c.SetRoot(d.Root)
	return c
}

// SetRoot sets the root view to a new view of the given document node,
// destroying any previous root, and schedules it for layout.
func (c *Context) SetRoot(n doc.Node) Viewer {
	if c.Root != nil {
		c.Root.Destroy()
	}
	v := newView(c, n, nil)
	tree.InitNode(v)
	c.Root = v
	v.AsView().NeedsLayout()
	return v
}

// Close cancels pending symbol loads and destroys the view tree.
func (c *Context) Close() {
	c.cancel()
	c.Registry.Release(c, symbolSlot{})
	c.watched = nil
	if c.Root != nil {
		c.Root.Destroy()
		c.Root = nil
	}
	c.destroyOrphans()
}

// NeedsLayout adds the given view to the relayout set.
func (c *Context) NeedsLayout(nb *NodeBase) {
	if nb.This == nil || nb.orphaned {
		return
	}
	if c.Settings.UpdateTrace {
		slog.Info("view.NeedsLayout", "view", nb.Path())
	}
	c.relayout[nb] = struct{}{}
}

// NeedsRender adds the given view to the render dirty set.
func (c *Context) NeedsRender(nb *NodeBase) {
	if nb.This == nil || nb.orphaned {
		return
	}
	c.dirty[nb] = struct{}{}
}

// isQueued returns whether the view is in the relayout set.
func (c *Context) isQueued(nb *NodeBase) bool {
	_, ok := c.relayout[nb]
	return ok
}

// layoutStarted removes the view from the relayout set when its layout starts.
func (c *Context) layoutStarted(nb *NodeBase) {
	delete(c.relayout, nb)
	c.Stats.Layouts++
}

// forget removes a destroyed view from the scheduler.
func (c *Context) forget(nb *NodeBase) {
	delete(c.relayout, nb)
	delete(c.dirty, nb)
	if o, ok := c.orphans[nb.Name]; ok && o == nb {
		delete(c.orphans, nb.Name)
	}
	if c.Focus == nb {
		c.Focus = nil
	}
}

// orphan detaches a view removed from its parent during reconciliation.
// It can be adopted by another parent in the same tick, keeping its
// cache, and is destroyed at the end of the tick otherwise.
func (c *Context) orphan(nb *NodeBase) {
	if o, ok := c.orphans[nb.Name]; ok && o != nb {
		o.This.Destroy()
	}
	delete(c.relayout, nb)
	delete(c.dirty, nb)
	nb.Parent = nil
	nb.orphaned = true
	c.orphans[nb.Name] = nb
}

// adopt returns the orphan with the given identity bound to n, or a new view.
func (c *Context) adopt(name string, n doc.Node, st override.Stack) tree.Node {
	if o, ok := c.orphans[name]; ok && o.Raw == n {
		delete(c.orphans, name)
		o.orphaned = false
		o.State = Unmeasured
		return o.This
	}
	return newView(c, n, st)
}

func (c *Context) destroyOrphans() {
	for _, o := range slices.Collect(maps.Values(c.orphans)) {
		o.This.Destroy()
	}
	clear(c.orphans)
}

// attached returns whether the view is in the tree of the root.
func (c *Context) attached(nb *NodeBase) bool {
	if nb.This == nil || c.Root == nil {
		return false
	}
	return tree.Root(nb.This) == tree.Node(c.Root)
}

// OnLayoutDone adds a function called after the layout pass of every
// tick that was not cut short, and returns a function that removes it.
func (c *Context) OnLayoutDone(fun func(c *Context)) (remove func()) {
	return c.layoutDone.Add(fun)
}

// Tick runs one frame of work: it applies completed symbol loads, lays
// out the ancestor chain of the focused view within the focus budget,
// lays out all queued views shallow first, signals that layout is done,
// and renders the dirty views.
func (c *Context) Tick() {
	c.Stats.Ticks++
	start := c.now()
	c.runPosts()
	if !c.focusPass(start) {
		c.Stats.BudgetExits++
		return
	}
	c.relayoutPass()
	c.destroyOrphans()
	c.layoutDone.Send(c)
	c.renderPass()
}

// focusPass lays out the queued views on the ancestor chain of the
// focused view, root first. It returns false if the budget ran out.
func (c *Context) focusPass(start time.Time) bool {
	f := c.Focus
	if f == nil || !c.attached(f) {
		return true
	}
	var chain []*NodeBase
	f.WalkUp(func(n tree.Node) bool {
		chain = append(chain, AsView(n))
		return tree.Continue
	})
	slices.Reverse(chain)
	for _, nb := range chain {
		if !c.isQueued(nb) {
			continue
		}
		c.layoutNode(nb)
		if c.now().Sub(start) > c.Settings.FocusBudget {
			return false
		}
	}
	return true
}

// byDepth returns the views sorted by depth, shallow first, and then by path.
func byDepth(set map[*NodeBase]struct{}) []*NodeBase {
	nodes := slices.Collect(maps.Keys(set))
	depth := make(map[*NodeBase]int, len(nodes))
	for _, nb := range nodes {
		depth[nb] = nb.Depth()
	}
	slices.SortFunc(nodes, func(a, b *NodeBase) int {
		return cmp.Or(cmp.Compare(depth[a], depth[b]), cmp.Compare(a.Path(), b.Path()))
	})
	return nodes
}

// relayoutPass lays out the queued views shallow first. Layouts may
// remove views from the set and add others, so the set is processed
// in passes until it is empty or [Settings.MaxPasses] is reached.
func (c *Context) relayoutPass() {
	for pass := 0; len(c.relayout) > 0 && pass < c.Settings.MaxPasses; pass++ {
		for _, nb := range byDepth(c.relayout) {
			if !c.isQueued(nb) {
				continue
			}
			c.layoutNode(nb)
		}
	}
}

// layoutNode lays out a queued view from its placement in its parent,
// and arranges its ancestors again for as long as their boxes change.
func (c *Context) layoutNode(nb *NodeBase) {
	if !c.attached(nb) {
		delete(c.relayout, nb)
		return
	}
	bounds, size := nb.Bounds, nb.Size
	nb.place()
	nb.layout()
	changed := nb.Bounds != bounds || nb.Size != size
	for p := nb.parentView(); p != nil && changed; p = p.parentView() {
		if p.State != Measured {
			break
		}
		bounds, size = p.Bounds, p.Size
		p.This.(Viewer).Arrange()
		p.NeedsRender()
		changed = p.Bounds != bounds || p.Size != size
	}
}

// renderPass renders the dirty views, deepest first.
func (c *Context) renderPass() {
	nodes := byDepth(c.dirty)
	slices.Reverse(nodes)
	for _, nb := range nodes {
		if _, ok := c.dirty[nb]; !ok {
			continue
		}
		if !c.attached(nb) {
			delete(c.dirty, nb)
			continue
		}
		nb.render()
	}
}

// post queues a function to run on the next tick.
func (c *Context) post(fun func()) {
	c.mu.Lock()
	c.posts = append(c.posts, fun)
	c.mu.Unlock()
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Context) runPosts() {
	c.mu.Lock()
	posts := c.posts
	c.posts = nil
	c.mu.Unlock()
	for _, fun := range posts {
		fun()
	}
}

// load loads the symbol definition with the given id on another
// goroutine, and calls done with the result on a later tick.
func (c *Context) load(id string, done func(def doc.Node, err error)) {
	c.watchSymbols()
	c.Stats.Loads++
	c.inflight.Add(1)
	finish := func(def doc.Node, err error) {
		c.post(func() {
			c.inflight.Add(-1)
			done(def, err)
		})
	}
	if c.Symbols == nil {
		finish(nil, symbol.ErrNotFound)
		return
	}
	go func() {
		def, err := c.Symbols.Get(c.base, id)
		finish(def, err)
	}()
}

// watchSymbols subscribes to the definitions set in the symbol manager,
// if it is a [symbol.Notifier], replacing the subscription to any
// previous manager.
func (c *Context) watchSymbols() {
	if c.Symbols == c.watched {
		return
	}
	c.watched = c.Symbols
	var unwatch func()
	if n, ok := c.Symbols.(symbol.Notifier); ok {
		unwatch = n.OnSet(func(id string) {
			c.post(func() { c.symbolSet(id) })
		})
	}
	c.Registry.Bind(c, symbolSlot{}, unwatch)
}

// symbolSet loads the definition with the given id again in the
// instances that last loaded it, including those whose load failed.
func (c *Context) symbolSet(id string) {
	if c.Root == nil {
		return
	}
	c.Root.AsTree().WalkDown(func(n tree.Node) bool {
		if in, ok := n.(*Instance); ok && in.pendingRef == "" && in.loadedRef == id {
			in.reload()
			in.NeedsLayout()
		}
		return tree.Continue
	})
}

// Idle returns whether there is no pending work.
func (c *Context) Idle() bool {
	c.mu.Lock()
	np := len(c.posts)
	c.mu.Unlock()
	return len(c.relayout) == 0 && len(c.dirty) == 0 && np == 0 && c.inflight.Load() == 0
}

// maxDrainTicks bounds the ticks of [Context.Drain].
const maxDrainTicks = 1000

// Drain ticks until there is no pending work, waiting for symbol
// loads to complete. It returns the context error if ctx is done first.
func (c *Context) Drain(ctx context.Context) error {
	for range maxDrainTicks {
		c.Tick()
		if c.Idle() {
			return nil
		}
		if len(c.relayout) == 0 && len(c.dirty) == 0 {
			select {
			case <-c.wake:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return errors.Log(fmt.Errorf("view.Context.Drain: work still pending after %d ticks", maxDrainTicks))
}

// Render returns the render tree of the root view, as of the last tick.
func (c *Context) Render() *render.Node {
	if c.Root == nil {
		return nil
	}
	return c.Root.AsView().rendered
}

// NumViews returns the number of views in the tree.
func (c *Context) NumViews() int {
	if c.Root == nil {
		return 0
	}
	n := 0
	c.Root.AsTree().WalkDown(func(tree.Node) bool {
		n++
		return tree.Continue
	})
	return n
}

// FindView returns the view with the given identity, or nil.
func (c *Context) FindView(identity string) *NodeBase {
	if c.Root == nil {
		return nil
	}
	var res *NodeBase
	c.Root.AsTree().WalkDown(func(n tree.Node) bool {
		if res != nil {
			return tree.Break
		}
		if n.PlanName() == identity {
			res = AsView(n)
			return tree.Break
		}
		return tree.Continue
	})
	return res
}
