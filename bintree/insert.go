// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// Insert - insert a new node into the tree
//
// returns an iterator to the node holding key and true if a node was
// added.  If the key already exists the tree shape is not changed and
// false is returned; the stored value is replaced only under the
// OverwriteDuplicates policy.
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.insert(key, value)
	if !added && OverwriteDuplicates == tree.policy {
		p.value = value
	}
	return Iterator[K, V]{node: p}, added
}

// At - return a pointer to the value stored under key
//
// if the key is not present a node holding the zero value is
// inserted first.  The pointer is valid until the next Balance or
// Clear.
func (tree *Tree[K, V]) At(key K) *V {
	var value V
	p, _ := tree.insert(key, value)
	return &p.value
}

// internal: insert key/value only if the key is absent
func (tree *Tree[K, V]) insert(key K, value V) (*Node[K, V], bool) {
	link, up := tree.search(key)
	if nil != *link {
		return *link, false
	}
	p := tree.nodes.newNode(key, value, up)
	*link = p
	tree.count += 1
	return p, true
}
