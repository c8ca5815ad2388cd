// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"cmp"

	"github.com/bitmark-inc/bintree/fault"
)

// DuplicatePolicy - what Insert does when the key is already present
type DuplicatePolicy int

// possible policies
const (
	RejectDuplicates    DuplicatePolicy = iota // keep the stored value
	OverwriteDuplicates                        // replace the stored value
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root   *Node[K, V]
	count  int
	less   func(a, b K) bool
	policy DuplicatePolicy
	nodes  allocator[K, V]
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Less[K])
}

// NewFunc - create an initially empty tree ordered by a strict weak
// ordering: less(a, b) reports whether a sorts before b
func NewFunc[K, V any](less func(a, b K) bool) *Tree[K, V] {
	if nil == less {
		panic(fault.ErrNilOrdering)
	}
	return &Tree[K, V]{
		root:   nil,
		count:  0,
		less:   less,
		policy: RejectDuplicates,
	}
}

// SetDuplicatePolicy - select the behaviour of Insert for existing keys
func (tree *Tree[K, V]) SetDuplicatePolicy(policy DuplicatePolicy) {
	tree.policy = policy
}

// Policy - the current duplicate key policy
func (tree *Tree[K, V]) Policy() DuplicatePolicy {
	return tree.policy
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - discard every node, leaving the tree empty
func (tree *Tree[K, V]) Clear() {
	releasedNodes.Add(uint64(tree.count + tree.nodes.free))
	tree.root = nil
	tree.count = 0
	tree.nodes = allocator[K, V]{}
}
