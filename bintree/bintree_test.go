// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

var addList = []string{
	"058", "041", "032", "005", "046", "073", "057", "023", "048", "064",
	"051", "072", "093", "079", "095", "042", "061", "036", "011", "098",
	"082", "029", "044", "088", "001", "084", "067", "068", "025", "060",
	"087", "038", "069", "097", "034", "031", "066", "047", "010", "089",
	"053", "050", "021", "075", "015", "030", "013", "016", "078", "085",
	"076", "063", "090", "003", "019", "091", "008", "022", "083", "043",
	"062", "055", "006", "096", "002", "017", "035", "099", "026", "077",
	"009", "020", "071", "094", "052", "007", "039", "033", "024", "027",
	"056", "059", "054", "028", "065", "074", "040", "018", "037", "081",
	"086", "014", "045", "080", "012", "070", "092", "004", "049",
}

// the keys actually used in a tree built from a list
func sortedUnique(list []string) []string {
	unique := make(map[string]struct{})
	for _, key := range list {
		unique[key] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

func makeTree(list []string) *bintree.Tree[string, string] {
	tree := bintree.New[string, string]()
	for _, key := range list {
		tree.Insert(key, "data:"+key)
	}
	return tree
}

func keysOf[K, V any](tree *bintree.Tree[K, V]) []K {
	keys := []K{}
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func diagram[K, V any](tree *bintree.Tree[K, V]) string {
	var b bytes.Buffer
	tree.Print(&b, true)
	return b.String()
}

func TestScenario(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "l"}

	tree := bintree.New[int, string]()
	for i, v := range values {
		_, added := tree.Insert(i+1, v)
		require.True(t, added, "insert: %d", i+1)
	}
	assert.Equal(t, 10, tree.Count(), "count")

	it := tree.Find(1)
	require.True(t, it.Valid(), "find 1")
	assert.Equal(t, "a", it.Value(), "value before balance")

	tree.Balance()
	root := tree.Root().Key()
	assert.True(t, 5 == root || 6 == root, "root key: %d", root)
	assert.Equal(t, "a", tree.Find(1).Value(), "value after balance")
	assert.NoError(t, tree.Check(), "check")

	tree.Clear()
	assert.True(t, tree.Find(1).Equal(tree.End()), "find after clear")
	assert.True(t, tree.IsEmpty(), "empty after clear")
	assert.Equal(t, 0, tree.Count(), "count after clear")
}

func TestEmptyTree(t *testing.T) {
	tree := bintree.New[int, int]()

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Nil(t, tree.Root(), "root")
	assert.True(t, tree.Begin().Equal(tree.End()), "begin is end")
	assert.Equal(t, tree.End(), tree.Find(7), "find")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.True(t, tree.IsBalanced(), "balanced")
	assert.NoError(t, tree.Check(), "check")
	assert.Equal(t, "\n", tree.String(), "string")
	assert.Equal(t, 0, tree.Print(&bytes.Buffer{}, true), "print depth")

	tree.Balance()
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "still empty")
	assert.Empty(t, tree.Entries(), "entries")

	it := tree.End()
	it.Next()
	assert.False(t, it.Valid(), "next on end")

	n := 0
	for range tree.All() {
		n += 1
	}
	assert.Equal(t, 0, n, "all")
}

func TestFind(t *testing.T) {
	tree := makeTree(addList)
	require.True(t, tree.CheckUp(), "inconsistent tree")

	for _, key := range addList {
		it := tree.Find(key)
		require.True(t, it.Valid(), "missing key: %q", key)
		assert.Equal(t, key, it.Key(), "key")
		assert.Equal(t, "data:"+key, it.Value(), "value")
		assert.True(t, tree.Contains(key), "contains: %q", key)
	}

	for _, key := range []string{"000", "100", "5", "", "0581"} {
		assert.True(t, tree.Find(key).Equal(tree.End()), "unexpected key: %q", key)
		assert.False(t, tree.Contains(key), "contains: %q", key)
	}
}

func TestTraverse(t *testing.T) {
	tree := makeTree(addList)
	expected := sortedUnique(addList)

	assert.Equal(t, expected, keysOf(tree), "iterator order")
	assert.Equal(t, len(expected), tree.Count(), "count")

	keys := []string{}
	for key, value := range tree.All() {
		assert.Equal(t, "data:"+key, value, "value for: %q", key)
		keys = append(keys, key)
	}
	assert.Equal(t, expected, keys, "range order")

	entries := tree.Entries()
	require.Len(t, entries, len(expected), "entries")
	for i, e := range entries {
		assert.Equal(t, expected[i], e.Key, "entry: %d", i)
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := makeTree(addList)

	keys := []string{}
	for key := range tree.All() {
		if len(keys) == 3 {
			break
		}
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"001", "002", "003"}, keys, "first keys")
}

func TestDuplicateInsert(t *testing.T) {
	tree := makeTree(addList)
	before := diagram(tree)
	count := tree.Count()

	it, added := tree.Insert("046", "replacement")
	assert.False(t, added, "duplicate was added")
	require.True(t, it.Valid(), "iterator to existing entry")
	assert.Equal(t, "046", it.Key(), "key")
	assert.Equal(t, "data:046", it.Value(), "value changed")
	assert.Equal(t, count, tree.Count(), "count changed")
	assert.Equal(t, before, diagram(tree), "shape changed")

	// the returned iterator may be used to update the value
	it.SetValue("updated")
	assert.Equal(t, "updated", tree.Find("046").Value(), "set value")
}

func TestOverwritePolicy(t *testing.T) {
	tree := bintree.New[string, int]()
	assert.Equal(t, bintree.RejectDuplicates, tree.Policy(), "default policy")

	tree.SetDuplicatePolicy(bintree.OverwriteDuplicates)
	tree.Insert("x", 1)
	tree.Insert("y", 2)
	it, added := tree.Insert("x", 3)

	assert.False(t, added, "duplicate reported as added")
	assert.Equal(t, 3, it.Value(), "overwrite value")
	assert.Equal(t, 2, tree.Count(), "count")
	assert.NoError(t, tree.Check(), "check")

	c := tree.Clone()
	assert.Equal(t, bintree.OverwriteDuplicates, c.Policy(), "cloned policy")
}

func TestAtInsertsOnMiss(t *testing.T) {
	tree := bintree.New[int, string]()
	tree.Insert(2, "two")

	assert.Equal(t, "two", *tree.At(2), "existing")
	assert.Equal(t, 1, tree.Count(), "count after hit")

	p := tree.At(5)
	require.NotNil(t, p, "pointer")
	assert.Equal(t, "", *p, "zero value")
	assert.Equal(t, 2, tree.Count(), "count after miss")

	*p = "five"
	assert.Equal(t, "five", tree.Find(5).Value(), "write through pointer")

	*tree.At(2) = "TWO"
	assert.Equal(t, "TWO", tree.Find(2).Value(), "overwrite through pointer")
	assert.NoError(t, tree.Check(), "check")
}

func TestGetMissingKey(t *testing.T) {
	tree := bintree.New[int, string]()
	tree.Insert(1, "one")

	value, err := tree.Get(1)
	assert.NoError(t, err, "get 1")
	assert.Equal(t, "one", value, "value")

	value, err = tree.Get(2)
	assert.Equal(t, fault.ErrKeyNotFound, err, "get 2")
	assert.True(t, fault.IsErrNotFound(err), "not found class")
	assert.Equal(t, "", value, "zero value")
	assert.Equal(t, 1, tree.Count(), "get must not insert")
}

func TestReadOnlyView(t *testing.T) {
	tree := makeTree(addList)
	view := tree.ReadOnly()

	assert.Equal(t, tree.Count(), view.Count(), "count")
	assert.False(t, view.IsEmpty(), "empty")

	value, err := view.Get("058")
	assert.NoError(t, err, "get")
	assert.Equal(t, "data:058", value, "value")

	_, err = view.Get("missing")
	assert.Equal(t, fault.ErrKeyNotFound, err, "missing")
	assert.False(t, view.Contains("missing"), "contains")
	assert.Equal(t, len(sortedUnique(addList)), tree.Count(), "view must not insert")

	assert.True(t, view.Find("missing").Equal(view.End()), "find missing")
	assert.Equal(t, tree.Find("058").ReadOnly(), view.Find("058"), "same position")

	keys := []string{}
	for it := view.Begin(); !it.Equal(view.End()); it.Next() {
		keys = append(keys, it.Entry().Key)
	}
	assert.Equal(t, sortedUnique(addList), keys, "view order")
	assert.Equal(t, tree.String(), view.String(), "rendering")

	// changes to the tree are visible through the view
	tree.Insert("zzz", "last")
	assert.True(t, view.Contains("zzz"), "view follows tree")
}

func TestIteratorEquality(t *testing.T) {
	tree := makeTree(addList)

	a := tree.Find("042")
	b := tree.Find("042")
	assert.True(t, a.Equal(b), "same key")
	assert.True(t, a == b, "comparable")

	b.Next()
	assert.False(t, a.Equal(b), "advanced")
	assert.Equal(t, "043", b.Key(), "successor")

	it := tree.Find("099")
	it.Next()
	assert.True(t, it.Equal(tree.End()), "past the last key")
	it.Next()
	assert.True(t, it.Equal(tree.End()), "next at end")

	assert.True(t, tree.Begin().ReadOnly().Equal(tree.Find("001").ReadOnly()), "begin")
	assert.Equal(t, bintree.Entry[string, string]{Key: "001", Value: "data:001"}, tree.Begin().Entry(), "entry")
}

func TestClone(t *testing.T) {
	tree := makeTree(addList)
	c := tree.Clone()

	require.NoError(t, c.Check(), "check copy")
	assert.Equal(t, tree.Entries(), c.Entries(), "entries")
	assert.Equal(t, diagram(tree), diagram(c), "shape")

	for _, key := range addList {
		assert.NotSame(t, tree.Find(key).Node(), c.Find(key).Node(), "shared node: %q", key)
	}

	c.Insert("new", "value")
	*c.At("001") = "changed"
	assert.False(t, tree.Contains("new"), "insert leaked into source")
	assert.Equal(t, "data:001", tree.Find("001").Value(), "value leaked into source")

	c.Clear()
	assert.Equal(t, len(sortedUnique(addList)), tree.Count(), "clear leaked into source")
	assert.NoError(t, tree.Check(), "check source")

	tree.Clear()
	assert.True(t, bintree.New[int, int]().Clone().IsEmpty(), "clone of empty")
}

func TestCopyFrom(t *testing.T) {
	src := makeTree(addList)
	dst := makeTree([]string{"old", "stuff"})

	dst.CopyFrom(src)
	assert.False(t, dst.Contains("old"), "previous content")
	assert.Equal(t, src.Entries(), dst.Entries(), "entries")
	assert.NoError(t, dst.Check(), "check")

	src.Insert("src-only", "x")
	assert.False(t, dst.Contains("src-only"), "shared content")

	before := dst.Entries()
	dst.CopyFrom(dst)
	assert.Equal(t, before, dst.Entries(), "self copy")
}

func TestMove(t *testing.T) {
	tree := makeTree(addList)
	expected := tree.Entries()
	node := tree.Find("058").Node()

	u := tree.Move()
	assert.True(t, tree.IsEmpty(), "source not empty")
	assert.Equal(t, 0, tree.Count(), "source count")
	assert.True(t, tree.Find("058").Equal(tree.End()), "source find")
	assert.Equal(t, expected, u.Entries(), "moved entries")
	assert.Same(t, node, u.Find("058").Node(), "nodes are transferred")
	assert.NoError(t, u.Check(), "check")

	// source remains usable
	tree.Insert("again", "x")
	assert.Equal(t, 1, tree.Count(), "reuse source")
	assert.False(t, u.Contains("again"), "shared content")
}

func TestMoveFrom(t *testing.T) {
	src := makeTree(addList)
	expected := src.Entries()
	dst := makeTree([]string{"old"})

	dst.MoveFrom(src)
	assert.Equal(t, expected, dst.Entries(), "entries")
	assert.True(t, src.IsEmpty(), "source not empty")
	assert.True(t, src.Find("001").Equal(src.End()), "source find")

	dst.MoveFrom(dst)
	assert.Equal(t, expected, dst.Entries(), "self move")
}

func TestBalance(t *testing.T) {
	for n := 0; n <= 130; n += 1 {
		tree := bintree.New[int, int]()
		for i := 0; i < n; i += 1 {
			tree.Insert(i, i*i)
		}
		expected := tree.Entries()
		assert.Equal(t, n, tree.Height(), "degenerate height: %d", n)

		tree.Balance()
		require.NoError(t, tree.Check(), "check: %d", n)
		assert.Equal(t, expected, tree.Entries(), "entries: %d", n)
		assert.Equal(t, bintree.MinimalHeight(n), tree.Height(), "height: %d", n)
		assert.True(t, tree.IsBalanced(), "balanced: %d", n)

		// balancing twice changes nothing
		shape := diagram(tree)
		tree.Balance()
		assert.Equal(t, shape, diagram(tree), "rebalance: %d", n)
	}
}

func TestBalanceRecyclesNodes(t *testing.T) {
	tree := makeTree(addList)
	n := uint64(tree.Count())

	before := bintree.Statistics()
	tree.Balance()
	after := bintree.Statistics()

	assert.Equal(t, before.Allocated, after.Allocated, "new nodes allocated")
	assert.Equal(t, before.Recycled+n, after.Recycled, "recycled")
}

func TestClearReleasesNodes(t *testing.T) {
	tree := makeTree(addList)
	n := uint64(tree.Count())

	before := bintree.Statistics()
	tree.Clear()
	after := bintree.Statistics()

	assert.Equal(t, before.Released+n, after.Released, "released")
	assert.True(t, tree.IsEmpty(), "empty")
}

func TestMinimalHeight(t *testing.T) {
	heights := map[int]int{
		-1: 0, 0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 7: 3, 8: 4, 1023: 10, 1024: 11,
	}
	for n, h := range heights {
		assert.Equal(t, h, bintree.MinimalHeight(n), "n: %d", n)
	}
}

func TestAscendingWithBalance(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	tree := bintree.New[int, int]()
	unique := make(map[int]int)
	for round := 0; round < 20; round += 1 {
		for i := 0; i < 200; i += 1 {
			k := r.Intn(5000)
			if _, added := tree.Insert(k, round); added {
				unique[k] = round
			}
		}
		if 0 == round%3 {
			tree.Balance()
		}
		require.NoError(t, tree.Check(), "round: %d", round)
	}

	assert.Equal(t, len(unique), tree.Count(), "count")
	previous := -1
	for k, v := range tree.All() {
		assert.Less(t, previous, k, "order")
		assert.Equal(t, unique[k], v, "value for: %d", k)
		previous = k
	}
}

type version struct {
	major int
	minor int
}

func TestCustomOrdering(t *testing.T) {
	descending := bintree.NewFunc[int, string](func(a, b int) bool { return a > b })
	for i := 1; i <= 6; i += 1 {
		descending.Insert(i, fmt.Sprint(i))
	}
	descending.Balance()
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, keysOf(descending), "descending")
	assert.NoError(t, descending.Check(), "check")

	byVersion := bintree.NewFunc[version, string](func(a, b version) bool {
		if a.major != b.major {
			return a.major < b.major
		}
		return a.minor < b.minor
	})
	byVersion.Insert(version{1, 10}, "1.10")
	byVersion.Insert(version{1, 2}, "1.2")
	byVersion.Insert(version{0, 99}, "0.99")
	_, added := byVersion.Insert(version{1, 2}, "again")
	assert.False(t, added, "equivalent keys are duplicates")

	values := []string{}
	for _, v := range byVersion.All() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"0.99", "1.2", "1.10"}, values, "struct keys")

	c := byVersion.Clone()
	c.Insert(version{1, 5}, "1.5")
	assert.Equal(t, "1.5", c.Find(version{1, 5}).Value(), "clone keeps ordering")
}

func TestNilOrderingPanics(t *testing.T) {
	assert.PanicsWithValue(t, fault.ErrNilOrdering, func() {
		bintree.NewFunc[int, int](nil)
	}, "nil less")
}

func TestWriteTo(t *testing.T) {
	tree := bintree.New[int, string]()
	tree.Insert(2, "b")
	tree.Insert(3, "c")
	tree.Insert(1, "a")

	var b strings.Builder
	n, err := tree.WriteTo(&b)
	assert.NoError(t, err, "write")
	assert.Equal(t, "(1:a) (2:b) (3:c) \n", b.String(), "rendering")
	assert.Equal(t, int64(b.Len()), n, "byte count")
	assert.Equal(t, b.String(), tree.String(), "string")
}

func TestPrint(t *testing.T) {
	tree := bintree.New[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, fmt.Sprintf("v%d", k))
	}

	var b bytes.Buffer
	depth := tree.Print(&b, true)
	assert.Equal(t, 2, depth, "depth")

	expected := "" +
		"       /------+ 3 → v3 ^2\n" +
		"|------+ 2 → v2 ^<nil>\n" +
		"       \\------+ 1 → v1 ^2\n"
	assert.Equal(t, expected, b.String(), "diagram")

	b.Reset()
	tree.Print(&b, false)
	assert.NotContains(t, b.String(), "→", "keys only")
	assert.Equal(t, tree.Height(), tree.Print(&bytes.Buffer{}, false), "depth is height")
}

func TestDepthInTree(t *testing.T) {
	tree := bintree.New[int, int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, i)
	}
	assert.Equal(t, uint(6), tree.Find(7).Node().Depth(), "degenerate depth")

	tree.Balance()
	assert.Equal(t, uint(0), tree.Root().Depth(), "root depth")
	assert.Equal(t, uint(1), tree.Find(2).Node().Depth(), "depth of 2")
	assert.Equal(t, uint(2), tree.Find(1).Node().Depth(), "depth of 1")
}

func TestGetChildrenByDepth(t *testing.T) {
	tree := bintree.New[int, int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, i)
	}
	tree.Balance()

	byDepth := func(depth uint) []int {
		keys := []int{}
		for _, p := range tree.Root().GetChildrenByDepth(depth) {
			keys = append(keys, p.Key())
		}
		return keys
	}
	assert.Equal(t, []int{4}, byDepth(0), "depth 0")
	assert.Equal(t, []int{2, 6}, byDepth(1), "depth 1")
	assert.Equal(t, []int{1, 3, 5, 7}, byDepth(2), "depth 2")
	assert.Empty(t, byDepth(3), "depth 3")

	left := tree.Root().Left()
	assert.Equal(t, 2, left.Key(), "left")
	assert.Same(t, tree.Root(), left.Parent(), "parent")
	assert.Equal(t, 6, tree.Root().Right().Key(), "right")
	assert.Nil(t, tree.Root().Parent(), "root parent")
}

func TestDegenerateTree(t *testing.T) {
	const n = 20000
	tree := bintree.New[int, int]()
	for i := n; i > 0; i -= 1 {
		tree.Insert(i, -i)
	}
	assert.Equal(t, n, tree.Height(), "height")

	c := tree.Clone()
	assert.Equal(t, n, c.Count(), "clone count")
	assert.Equal(t, -1, c.Begin().Value(), "first value")

	tree.Balance()
	assert.Equal(t, bintree.MinimalHeight(n), tree.Height(), "balanced height")
	assert.NoError(t, tree.Check(), "check")
}
