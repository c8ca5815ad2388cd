// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/samber/lo"

	"github.com/bitmark-inc/bintree/fault"
)

// names of the available workloads
const (
	LinkedList = "linked-list"
	Balanced   = "balanced"
	Random     = "random"
	Map        = "map"
	Cache      = "cache"
)

// defaults used by the benchmark program
const (
	DefaultSize   = 10000
	DefaultRepeat = 1
	DefaultSeed   = 1
)

// DefaultWorkloads - the workloads run when none are configured
var DefaultWorkloads = []string{LinkedList, Balanced, Random, Map}

// Options - parameters of a run
type Options struct {
	Size      int      `gluamapper:"size" json:"size" yaml:"size"`
	Repeat    int      `gluamapper:"repeat" json:"repeat" yaml:"repeat"`
	Seed      int64    `gluamapper:"seed" json:"seed" yaml:"seed"`
	Workloads []string `gluamapper:"workloads" json:"workloads" yaml:"workloads"`
}

// Validate - check the options and drop repeated workload names
func (options Options) Validate() (Options, error) {
	if options.Size < 1 {
		return options, fault.ErrInvalidSize
	}
	if options.Repeat < 1 {
		return options, fault.ErrInvalidRepeat
	}
	if 0 == len(options.Workloads) {
		return options, fault.ErrWorkloadsNotConfigured
	}

	names := lo.Uniq(options.Workloads)
	for _, name := range names {
		if _, ok := workloads[name]; !ok {
			return options, fault.ErrUnknownWorkload
		}
	}
	options.Workloads = names
	return options, nil
}

// WorkloadNames - all workload names accepted by Validate
func WorkloadNames() []string {
	return []string{LinkedList, Balanced, Random, Map, Cache}
}
