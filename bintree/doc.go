// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bintree - an ordered binary search tree with the addition
// of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree does not rebalance itself on insert.  Balance rebuilds the
// whole tree to its minimum height by re-inserting the ordered
// entries middle first, so the cost is paid only when the caller asks
// for it.
//
// Keys are unique: by default an insert with an existing key leaves
// the tree unchanged and reports that nothing was added.  The
// OverwriteDuplicates policy replaces the stored value instead.
//
// Iterators hold a node pointer.  Any Insert, At, Balance or Clear
// invalidates all outstanding iterators.
package bintree
