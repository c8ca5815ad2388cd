// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - compare lookup times of differently shaped trees
//
// Each workload builds a container holding the keys 0 … size-1 and then
// looks every key up, in a shuffled order, a number of times.  The tree
// workloads show the cost of a degenerate (linked list) tree against
// the same tree after Balance and against a tree built from random
// inserts.  The map and cache workloads give hash based baselines.
//
// Results are passed to a Reporter as each workload completes.
package benchmark
