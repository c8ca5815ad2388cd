// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Clone - create an independent tree with the same entries, the same
// shape and the same ordering
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	c := &Tree[K, V]{
		less:   tree.less,
		policy: tree.policy,
	}
	c.root = c.copyNodes(tree.root)
	c.count = tree.count
	return c
}

// CopyFrom - replace the contents of the tree by a copy of src
func (tree *Tree[K, V]) CopyFrom(src *Tree[K, V]) {
	if src == tree {
		return
	}
	tree.Clear()
	tree.less = src.less
	tree.policy = src.policy
	tree.root = tree.copyNodes(src.root)
	tree.count = src.count
}

// Move - transfer all nodes to a new tree, leaving this tree empty
// but still usable with its ordering
func (tree *Tree[K, V]) Move() *Tree[K, V] {
	m := &Tree[K, V]{
		less:   tree.less,
		policy: tree.policy,
	}
	m.take(tree)
	return m
}

// MoveFrom - discard the contents of the tree and transfer all nodes
// of src to it, leaving src empty
func (tree *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if src == tree {
		return
	}
	tree.Clear()
	tree.less = src.less
	tree.policy = src.policy
	tree.take(src)
}

// internal: ownership of the nodes passes from src to tree
func (tree *Tree[K, V]) take(src *Tree[K, V]) {
	tree.root = src.root
	tree.count = src.count
	tree.nodes = src.nodes

	src.root = nil
	src.count = 0
	src.nodes = allocator[K, V]{}
}

// internal: duplicate a sub-tree node by node, parent first then
// left then right, allocating from this tree
func (tree *Tree[K, V]) copyNodes(from *Node[K, V]) *Node[K, V] {
	if nil == from {
		return nil
	}

	type pending struct {
		from *Node[K, V]
		link **Node[K, V]
		up   *Node[K, V]
	}

	var root *Node[K, V]
	stack := []pending{{from: from, link: &root, up: nil}}
	for len(stack) > 0 {
		n := len(stack) - 1
		p := stack[n]
		stack = stack[:n]

		c := tree.nodes.newNode(p.from.key, p.from.value, p.up)
		*p.link = c

		// right is pushed first so that left is copied first
		if nil != p.from.right {
			stack = append(stack, pending{from: p.from.right, link: &c.right, up: c})
		}
		if nil != p.from.left {
			stack = append(stack, pending{from: p.from.left, link: &c.left, up: c})
		}
	}
	return root
}
