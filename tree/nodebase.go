// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strings"

	"cogentcore.org/vector/base/slicesx"
)

// NodeBase is the embedded core of every [Node]. A node becomes usable
// once [InitNode] has run on it, which [NodeBase.AddChild] and
// [NodeBase.InsertChild] do for their argument.
type NodeBase struct {

	// Name identifies the node among its siblings unless the node type
	// reports another identity through PlanName.
	Name string

	// This is the node as its concrete type, so that base methods can
	// reach overrides. It is nil once the node is destroyed.
	This Node

	// Parent is set when the node is added to a parent.
	Parent Node

	// Children are in paint order.
	Children []Node

	// index is a search hint for [NodeBase.IndexInParent].
	index int
}

// NewNodeBase returns an initialized [NodeBase], added to parent if given.
func NewNodeBase(name string, parent ...Node) *NodeBase {
	n := &NodeBase{Name: name}
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	} else {
		InitNode(n)
	}
	return n
}

func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

func (n *NodeBase) AsTree() *NodeBase { return n }
func (n *NodeBase) PlanName() string  { return n.Name }
func (n *NodeBase) Init()             {}
func (n *NodeBase) OnAdd()            {}

// InitNode sets This and calls Init the first time it sees n.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		n.Init()
	}
}

// IndexOf returns the index of child in slice, or -1. The search
// starts at the optional hint and widens in both directions.
func IndexOf(slice []Node, child Node, hint ...int) int {
	return slicesx.Search(slice, func(e Node) bool { return e == child }, hint...)
}

// IndexInParent returns the index of n among its siblings, or -1 for a root.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	n.index = IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	return n.index
}

// Depth returns the number of ancestors of n.
func (n *NodeBase) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.AsTree().Parent {
		d++
	}
	return d
}

// Path returns the slash separated plan names from the root down to n.
// Slashes inside names are escaped.
func (n *NodeBase) Path() string {
	name := n.Name
	if n.This != nil {
		name = n.This.PlanName()
	}
	name = strings.ReplaceAll(name, "/", `\/`)
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + name
	}
	return "/" + name
}

// Child returns the child at index i, or nil if i is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// AddChild appends kid, which must not have a parent.
func (n *NodeBase) AddChild(kid Node) {
	n.InsertChild(kid, len(n.Children))
}

// InsertChild inserts kid at index, which must not have a parent.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// SetParent points child at parent and calls OnAdd. It does not touch
// the children of parent.
func SetParent(child, parent Node) {
	child.AsTree().Parent = parent
	child.OnAdd()
}

// DeleteChild removes and destroys child, returning false if it is
// not a child of n.
func (n *NodeBase) DeleteChild(child Node) bool {
	i := IndexOf(n.Children, child)
	if child == nil || i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.Destroy()
	return true
}

// DeleteChildren destroys all children of n.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, k := range kids {
		if k != nil {
			k.Destroy()
		}
	}
}

// Destroy destroys the subtree of n. It is a no-op on a destroyed node.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	n.DeleteChildren()
	n.This = nil
	n.Parent = nil
}

func (n *NodeBase) IsDestroyed() bool { return n.This == nil }

// Root returns the topmost ancestor of n, or n itself.
func Root(n Node) Node {
	for {
		p := n.AsTree().Parent
		if p == nil {
			return n
		}
		n = p
	}
}
