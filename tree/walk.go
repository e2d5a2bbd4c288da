// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Values returned by walk functions.
const (
	// Continue walks on, including into the children of the current node.
	Continue = true

	// Break stops walking up, or skips the children when walking down.
	Break = false
)

// WalkUp calls fun on n and then on each ancestor, until fun returns
// [Break]. It returns false if the walk was stopped.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	for cur := n.This; cur != nil; cur = cur.AsTree().Parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls fun on n and its descendants in pre-order. Returning
// [Break] skips the children of that node. Nodes destroyed by fun
// during the walk are skipped.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := cur.AsTree()
		if cb.This == nil || !fun(cur) {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			stack = append(stack, cb.Children[i])
		}
	}
}
