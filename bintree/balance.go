// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"github.com/bitmark-inc/bintree/fault"
)

// Entries - all key/value pairs in ascending key order
func (tree *Tree[K, V]) Entries() []Entry[K, V] {
	list := make([]Entry[K, V], 0, tree.count)
	for p := tree.root.first(); nil != p; p = p.next() {
		list = append(list, Entry[K, V]{Key: p.key, Value: p.value})
	}
	return list
}

// Balance - rebuild the tree to its minimum height
//
// the entries are extracted in order, all nodes are released and the
// entries re-inserted into this same tree middle first.  Each insert
// lands as the root of a still empty range, so the result has height
// ceil(log2(n+1)) without any rotations.
func (tree *Tree[K, V]) Balance() {
	if nil == tree.root {
		return
	}

	list := tree.Entries()

	tree.nodes.freeTree(tree.root)
	tree.root = nil
	tree.count = 0

	tree.rebuild(list, 0, len(list)-1)
}

// internal: insert list[low..high] middle first
func (tree *Tree[K, V]) rebuild(list []Entry[K, V], low int, high int) {
	if low > high {
		return
	}
	middle := low + (high-low)/2
	if _, added := tree.insert(list[middle].Key, list[middle].Value); !added {
		fault.Panicf("balance: entries out of order at: %d", middle)
	}

	tree.rebuild(list, low, middle-1)
	tree.rebuild(list, middle+1, high)
}
