// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

// internal: find the link that holds key
//
// returns the link (the root pointer or a child pointer of some node)
// and the node owning that link, nil for the root.  If the key is not
// present the link is nil and is the place where a node with the key
// must be attached.
func (tree *Tree[K, V]) search(key K) (**Node[K, V], *Node[K, V]) {
	link := &tree.root
	var up *Node[K, V]
	for p := *link; nil != p; p = *link {
		switch {
		case tree.less(p.key, key): // p.key < key
			link = &p.right
		case tree.less(key, p.key): // p.key > key
			link = &p.left
		default:
			return link, up
		}
		up = p
	}
	return link, up
}
