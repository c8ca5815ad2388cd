// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"io"
	"iter"
)

// View - read only access to a tree
//
// a view never inserts: Get reports a missing key as an error
type View[K, V any] struct {
	tree *Tree[K, V]
}

// ReadOnly - a read only view of the tree
func (tree *Tree[K, V]) ReadOnly() View[K, V] {
	return View[K, V]{tree: tree}
}

// Find - iterator to the node holding key, or End()
func (v View[K, V]) Find(key K) ConstIterator[K, V] {
	return v.tree.Find(key).ReadOnly()
}

// Get - read the value stored under key
func (v View[K, V]) Get(key K) (V, error) {
	return v.tree.Get(key)
}

// Contains - true if the key is present
func (v View[K, V]) Contains(key K) bool {
	return v.tree.Contains(key)
}

// Begin - iterator to the node with the lowest key
func (v View[K, V]) Begin() ConstIterator[K, V] {
	return v.tree.Begin().ReadOnly()
}

// End - the exhausted iterator
func (v View[K, V]) End() ConstIterator[K, V] {
	return ConstIterator[K, V]{}
}

// All - ascending sequence of all key/value pairs
func (v View[K, V]) All() iter.Seq2[K, V] {
	return v.tree.All()
}

// Count - number of entries
func (v View[K, V]) Count() int {
	return v.tree.Count()
}

// IsEmpty - true if there are no entries
func (v View[K, V]) IsEmpty() bool {
	return v.tree.IsEmpty()
}

// WriteTo - see Tree.WriteTo
func (v View[K, V]) WriteTo(w io.Writer) (int64, error) {
	return v.tree.WriteTo(w)
}

// String - see Tree.String
func (v View[K, V]) String() string {
	return v.tree.String()
}
