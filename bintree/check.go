// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"math/bits"

	"github.com/bitmark-inc/bintree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify the parent links, the strict ascending order of
// keys and the node count
func (tree *Tree[K, V]) Check() error {
	if !tree.CheckUp() {
		return fault.ErrInconsistentParent
	}

	n := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.next() {
		if nil != previous && !tree.less(previous.key, p.key) {
			return fault.ErrOrderViolation
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// Height - number of nodes on the longest path from the root, zero
// for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// IsBalanced - true if at every node the heights of the two sub-trees
// differ by at most one
func (tree *Tree[K, V]) IsBalanced() bool {
	_, ok := balanced(tree.root)
	return ok
}

// internal: returns height and balanced flag in one pass
func balanced[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := balanced(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(p.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// MinimalHeight - the lowest possible height of a binary tree with n
// nodes: ceil(log2(n+1))
func MinimalHeight(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
