// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	. "cogentcore.org/vector/tree"
	"github.com/stretchr/testify/assert"
)

func newTestTree() *NodeBase {
	root := NewNodeBase("root")
	NewNodeBase("child0", root)
	child1 := NewNodeBase("child1", root)
	schild1 := NewNodeBase("subchild1", child1)
	NewNodeBase("subsubchild1", schild1)
	NewNodeBase("child2", root)
	return root
}

func TestWalkDown(t *testing.T) {
	root := newTestTree()
	res := []string{}
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2"}, res)

	res = res[:0]
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)
}

func TestWalkDownDestroy(t *testing.T) {
	root := newTestTree()
	res := []string{}
	root.WalkDown(func(n Node) bool {
		nb := n.AsTree()
		res = append(res, nb.Name)
		if nb.Name == "child0" {
			root.Child(2).Destroy()
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "subsubchild1"}, res)
}

func TestWalkUp(t *testing.T) {
	root := newTestTree()
	leaf := root.Child(1).AsTree().Child(0).AsTree().Child(0).AsTree()
	res := []string{}
	assert.True(t, leaf.WalkUp(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	}))
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)
	assert.False(t, leaf.WalkUp(func(n Node) bool { return n.AsTree().Name != "child1" }))
	assert.Equal(t, 3, leaf.Depth())
	assert.Equal(t, "/root/child1/subchild1/subsubchild1", leaf.Path())
}
