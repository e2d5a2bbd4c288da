// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	. "cogentcore.org/vector/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedNode struct {
	NodeBase
	inits     int
	adds      int
	destroyed *[]string
}

func (t *trackedNode) Init()  { t.inits++ }
func (t *trackedNode) OnAdd() { t.adds++ }

func (t *trackedNode) Destroy() {
	if t.destroyed != nil {
		*t.destroyed = append(*t.destroyed, t.Name)
	}
	t.NodeBase.Destroy()
}

func TestAddChild(t *testing.T) {
	parent := NewNodeBase("par1")
	child := &trackedNode{NodeBase: NodeBase{Name: "child1"}}
	parent.AddChild(child)
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, Node(child), child.This)
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 1, child.adds)
	assert.Equal(t, "/par1/child1", child.Path())
	assert.Equal(t, 0, child.IndexInParent())
	assert.Equal(t, 1, child.Depth())
	assert.Equal(t, Node(parent), Root(child))
}

func TestInsertChild(t *testing.T) {
	parent := NewNodeBase("par1")
	NewNodeBase("a", parent)
	NewNodeBase("c", parent)
	b := NewNodeBase("b")
	parent.InsertChild(b, 1)
	names := []string{}
	for _, k := range parent.Children {
		names = append(names, k.AsTree().Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 1, b.IndexInParent())
	assert.Equal(t, 2, IndexOf(parent.Children, parent.Child(2), 0))
	assert.Nil(t, parent.Child(5))
	assert.Equal(t, -1, parent.IndexInParent())
}

func TestSetParentKeepsNode(t *testing.T) {
	a := NewNodeBase("a")
	k := &trackedNode{NodeBase: NodeBase{Name: "k"}}
	a.AddChild(k)
	b := NewNodeBase("b")
	a.Children = nil
	b.Children = append(b.Children, k)
	SetParent(k, b)
	assert.Equal(t, 1, k.inits)
	assert.Equal(t, 2, k.adds)
	assert.Equal(t, "/b/k", k.Path())
}

func TestDelete(t *testing.T) {
	var destroyed []string
	parent := NewNodeBase("par1")
	kid := &trackedNode{NodeBase: NodeBase{Name: "kid"}, destroyed: &destroyed}
	parent.AddChild(kid)
	grand := &trackedNode{NodeBase: NodeBase{Name: "grand"}, destroyed: &destroyed}
	kid.AddChild(grand)

	require.True(t, parent.DeleteChild(kid))
	assert.Equal(t, []string{"kid", "grand"}, destroyed)
	assert.True(t, kid.IsDestroyed())
	assert.True(t, grand.IsDestroyed())
	assert.Empty(t, parent.Children)
	assert.False(t, parent.DeleteChild(kid))

	parent.Destroy()
	parent.Destroy()
	assert.True(t, parent.IsDestroyed())
}
