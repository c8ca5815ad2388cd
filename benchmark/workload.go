// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// a populated container under test
type subject interface {
	find(key int) bool
	check(size int) error
	height() int
	balanced() bool
}

// create a subject from the ascending keys and a random permutation
// of the same keys
type builder func(ascending []int, shuffled []int) subject

var workloads = map[string]builder{
	LinkedList: buildLinkedList,
	Balanced:   buildBalanced,
	Random:     buildRandom,
	Map:        buildMap,
	Cache:      buildCache,
}

// ascending inserts: every node only has a right child
func buildLinkedList(ascending []int, _ []int) subject {
	tree := bintree.New[int, int]()
	for _, key := range ascending {
		tree.Insert(key, key)
	}
	return &treeSubject{tree: tree}
}

// the linked list tree copied and then balanced
func buildBalanced(ascending []int, shuffled []int) subject {
	list := buildLinkedList(ascending, shuffled).(*treeSubject)
	tree := list.tree.Clone()
	tree.Balance()
	return &treeSubject{tree: tree, mustBalance: true}
}

func buildRandom(_ []int, shuffled []int) subject {
	tree := bintree.New[int, int]()
	for _, key := range shuffled {
		tree.Insert(key, key)
	}
	return &treeSubject{tree: tree}
}

func buildMap(_ []int, shuffled []int) subject {
	m := make(map[int]int)
	for _, key := range shuffled {
		m[key] = key
	}
	return mapSubject(m)
}

func buildCache(_ []int, shuffled []int) subject {
	c := cache.New(cache.NoExpiration, 0)
	for _, key := range shuffled {
		c.Set(strconv.Itoa(key), key, cache.NoExpiration)
	}
	return &cacheSubject{cache: c}
}

type treeSubject struct {
	tree        *bintree.Tree[int, int]
	mustBalance bool
}

func (s *treeSubject) find(key int) bool {
	return s.tree.Find(key).Valid()
}

func (s *treeSubject) check(size int) error {
	if err := s.tree.Check(); nil != err {
		return err
	}
	if size != s.tree.Count() {
		return fault.ErrCountMismatch
	}
	if s.mustBalance && (!s.tree.IsBalanced() || s.tree.Height() != bintree.MinimalHeight(size)) {
		return fault.ErrNotBalanced
	}
	return nil
}

func (s *treeSubject) height() int {
	return s.tree.Height()
}

func (s *treeSubject) balanced() bool {
	return s.tree.IsBalanced()
}

type mapSubject map[int]int

func (s mapSubject) find(key int) bool {
	_, ok := s[key]
	return ok
}

func (s mapSubject) check(size int) error {
	if size != len(s) {
		return fault.ErrCountMismatch
	}
	return nil
}

func (s mapSubject) height() int    { return 0 }
func (s mapSubject) balanced() bool { return false }

// go-cache keys are strings, so conversion is part of every lookup
type cacheSubject struct {
	cache *cache.Cache
}

func (s *cacheSubject) find(key int) bool {
	_, ok := s.cache.Get(strconv.Itoa(key))
	return ok
}

func (s *cacheSubject) check(size int) error {
	if size != s.cache.ItemCount() {
		return fault.ErrCountMismatch
	}
	return nil
}

func (s *cacheSubject) height() int    { return 0 }
func (s *cacheSubject) balanced() bool { return false }
