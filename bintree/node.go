// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Node - a node in the tree
//
// a node owns its left and right sub-trees; up is only a back
// reference for walking the tree and never owns anything
type Node[K, V any] struct {
	left  *Node[K, V] // left sub-tree
	right *Node[K, V] // right sub-tree
	up    *Node[K, V] // points to parent node
	key   K           // key part for ordering
	value V           // value part for data storage
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Left - return the left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a
// sub-tree in ascending key order
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: the node with the next highest key or nil if no more
// nodes
//
// leaving a right child means that sub-tree is finished, so keep
// climbing until arriving from a left child
func (p *Node[K, V]) next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for p.up != nil && p.up.right == p {
		p = p.up
	}
	return p.up
}
