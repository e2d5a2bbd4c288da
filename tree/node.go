// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the ownership tree that the view layer is built on.
// Concrete node types embed [NodeBase] and are handled through [Node].
package tree

import (
	"cogentcore.org/vector/base/plan"
)

// Node is the interface of every tree node. It holds only the hooks
// that node types override; the rest of the tree API lives on the
// embedded [NodeBase], reached with AsTree.
type Node interface {

	// AsTree returns the embedded [NodeBase].
	AsTree() *NodeBase

	// Init runs once, right after the node is created and before it
	// has a parent.
	Init()

	// OnAdd runs each time the node is added to a parent.
	OnAdd()

	// Destroy releases the node and its whole subtree. Overrides must
	// end by calling [NodeBase.Destroy].
	Destroy()

	// Children are reconciled by name with [plan.Update].
	plan.Namer
}
