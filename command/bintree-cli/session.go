// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// the output commands, independent of the key type
type commands interface {
	balance()
	print(w io.Writer) error
	diagram(w io.Writer, data bool) error
	find(w io.Writer, keys []string) error
	levels(w io.Writer) error
	stats(w io.Writer) error
}

// a loaded tree
type session[K cmp.Ordered] struct {
	tree       *bintree.Tree[K, string]
	parse      keyParser[K]
	duplicates int
}

// summary printed by the stats command
type treeStats struct {
	Count         int           `json:"count"`
	Height        int           `json:"height"`
	MinimalHeight int           `json:"minimal_height"`
	Balanced      bool          `json:"balanced"`
	Duplicates    int           `json:"duplicates"`
	Nodes         bintree.Stats `json:"nodes"`
}

func (s *session[K]) balance() {
	s.tree.Balance()
}

func (s *session[K]) print(w io.Writer) error {
	_, err := s.tree.ReadOnly().WriteTo(w)
	return err
}

func (s *session[K]) diagram(w io.Writer, data bool) error {
	depth := s.tree.Print(w, data)
	_, err := fmt.Fprintf(w, "depth: %d\n", depth)
	return err
}

func (s *session[K]) find(w io.Writer, keys []string) error {
	if 0 == len(keys) {
		return fault.ErrMissingArguments
	}

	view := s.tree.ReadOnly()
	for _, text := range keys {
		key, err := s.parse(text)
		if nil != err {
			return err
		}
		value, err := view.Get(key)
		if fault.IsErrNotFound(err) {
			fmt.Fprintf(w, "%v: not found\n", key)
			continue
		}
		fmt.Fprintf(w, "%v: %s\n", key, value)
	}
	return nil
}

func (s *session[K]) levels(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"depth", "count", "keys"})

	if root := s.tree.Root(); nil != root {
		for depth := uint(0); ; depth += 1 {
			nodes := root.GetChildrenByDepth(depth)
			if 0 == len(nodes) {
				break
			}
			keys := lo.Map(nodes, func(p *bintree.Node[K, string], _ int) string {
				return fmt.Sprint(p.Key())
			})
			t.AppendRow(table.Row{depth, len(nodes), strings.Join(keys, " ")})
		}
	}

	t.Render()
	return nil
}

func (s *session[K]) stats(w io.Writer) error {
	return printJson(w, treeStats{
		Count:         s.tree.Count(),
		Height:        s.tree.Height(),
		MinimalHeight: bintree.MinimalHeight(s.tree.Count()),
		Balanced:      s.tree.IsBalanced(),
		Duplicates:    s.duplicates,
		Nodes:         bintree.Statistics(),
	})
}
