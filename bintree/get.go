// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"github.com/bitmark-inc/bintree/fault"
)

// Find - return an iterator to the node holding key, or End() if the
// key is not present
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	link, _ := tree.search(key)
	return Iterator[K, V]{node: *link}
}

// Get - read the value stored under key without modifying the tree
//
// returns fault.ErrKeyNotFound if the key is not present
func (tree *Tree[K, V]) Get(key K) (V, error) {
	link, _ := tree.search(key)
	if nil == *link {
		var value V
		return value, fault.ErrKeyNotFound
	}
	return (*link).value, nil
}

// Contains - true if the key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	link, _ := tree.search(key)
	return nil != *link
}
