// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bintree

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// WriteTo - write every pair in ascending order as "(key:value) "
// followed by a newline
//
// intended for diagnostics, not a stable serialisation
func (tree *Tree[K, V]) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for p := tree.root.first(); nil != p; p = p.next() {
		n, err := fmt.Fprintf(w, "(%v:%v) ", p.key, p.value)
		total += int64(n)
		if nil != err {
			return total, err
		}
	}
	n, err := io.WriteString(w, "\n")
	total += int64(n)
	return total, err
}

// String - the WriteTo text
func (tree *Tree[K, V]) String() string {
	var b strings.Builder
	tree.WriteTo(&b)
	return b.String()
}

// Print - write an ASCII graphic representation of the tree
//
// returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v\n", tree.key, tree.value, up)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
