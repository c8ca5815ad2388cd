// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"iter"
)

// Entry - a key/value pair
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Iterator - a forward position in a tree
//
// iterators compare equal (==) when they refer to the same node or
// are both exhausted.  Key, Value, Entry and SetValue must not be
// called on an exhausted iterator.
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// ConstIterator - a forward position in a tree that cannot modify
// values
type ConstIterator[K, V any] struct {
	node *Node[K, V]
}

// Begin - iterator to the node with the lowest key, equal to End()
// for an empty tree
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.first()}
}

// End - the exhausted iterator
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// All - ascending sequence of all key/value pairs
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return all(tree.root)
}

func all[K, V any](root *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := root.first(); nil != p; p = p.next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Next - move to the node with the next highest key; does nothing
// once exhausted
func (it *Iterator[K, V]) Next() {
	if nil != it.node {
		it.node = it.node.next()
	}
}

// Valid - false once the iterator is exhausted
func (it Iterator[K, V]) Valid() bool {
	return nil != it.node
}

// Equal - true if both refer to the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Key - the key at the current position
func (it Iterator[K, V]) Key() K {
	return it.node.key
}

// Value - the value at the current position
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// Entry - the key/value pair at the current position
func (it Iterator[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: it.node.key, Value: it.node.value}
}

// SetValue - replace the value at the current position
func (it Iterator[K, V]) SetValue(value V) {
	it.node.value = value
}

// Node - the node at the current position, nil once exhausted
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// ReadOnly - the same position without write access
func (it Iterator[K, V]) ReadOnly() ConstIterator[K, V] {
	return ConstIterator[K, V]{node: it.node}
}

// Next - move to the node with the next highest key; does nothing
// once exhausted
func (it *ConstIterator[K, V]) Next() {
	if nil != it.node {
		it.node = it.node.next()
	}
}

// Valid - false once the iterator is exhausted
func (it ConstIterator[K, V]) Valid() bool {
	return nil != it.node
}

// Equal - true if both refer to the same node
func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.node == other.node
}

// Key - the key at the current position
func (it ConstIterator[K, V]) Key() K {
	return it.node.key
}

// Value - a copy of the value at the current position
func (it ConstIterator[K, V]) Value() V {
	return it.node.value
}

// Entry - a copy of the key/value pair at the current position
func (it ConstIterator[K, V]) Entry() Entry[K, V] {
	return Entry[K, V]{Key: it.node.key, Value: it.node.value}
}
