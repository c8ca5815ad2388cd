// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/fault"
)

// per-tree store of reclaimed nodes
//
// only Balance returns nodes here and it immediately re-inserts the
// same number of entries, so the pool is normally empty
type allocator[K, V any] struct {
	pool *Node[K, V] // linked list of reclaimed nodes
	free int         // number of nodes in the pool
}

// global statistics, shared by all trees
var (
	totalNodes    counter.Counter // total nodes created
	recycledNodes counter.Counter // allocations served from a pool
	releasedNodes counter.Counter // dropped by Clear
)

// Stats - node allocation statistics for the whole process
type Stats struct {
	Allocated uint64 `json:"allocated"`
	Recycled  uint64 `json:"recycled"`
	Released  uint64 `json:"released"`
}

// Statistics - read the current node allocation statistics
func Statistics() Stats {
	return Stats{
		Allocated: totalNodes.Uint64(),
		Recycled:  recycledNodes.Uint64(),
		Released:  releasedNodes.Uint64(),
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	if nil == a.pool {
		if 0 != a.free {
			fault.Panicf("allocator: pool empty with free: %d", a.free)
		}
		totalNodes.Increment()
		return &Node[K, V]{
			key:   key,
			value: value,
			up:    up,
		}
	}
	p := a.pool
	a.pool = p.up
	p.key = key
	p.value = value
	p.left = nil
	p.right = nil
	p.up = up // ensure freelist pointer is replaced
	a.free -= 1
	recycledNodes.Increment()
	return p
}

// reclaim every node of a sub-tree and keep them in the pool
//
// uses an explicit stack since an unbalanced tree can be as deep as
// it is large
func (a *allocator[K, V]) freeTree(p *Node[K, V]) {
	if nil == p {
		return
	}
	var zeroKey K
	var zeroValue V

	stack := []*Node[K, V]{p}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if nil != node.left {
			stack = append(stack, node.left)
		}
		if nil != node.right {
			stack = append(stack, node.right)
		}

		node.up = a.pool // use as free list pointer
		node.left = nil
		node.right = nil
		node.key = zeroKey
		node.value = zeroValue
		a.free += 1

		a.pool = node
	}
}
