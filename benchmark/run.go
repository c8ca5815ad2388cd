// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"context"
	"math/rand"
	"time"

	"github.com/bitmark-inc/bintree/fault"
)

// Run - run the selected workloads in order
//
// every result is passed to the reporter as soon as it is available,
// and the results so far are returned on error or cancellation.
// Cancellation is checked between workloads and between lookup passes.
func Run(ctx context.Context, options Options, reporter Reporter) ([]Result, error) {
	options, err := options.Validate()
	if nil != err {
		return nil, err
	}

	ascending := make([]int, options.Size)
	for i := range ascending {
		ascending[i] = i
	}

	// both orders derive from the seed so runs are repeatable
	r := rand.New(rand.NewSource(options.Seed))
	insertOrder := r.Perm(options.Size)
	lookupOrder := r.Perm(options.Size)

	if err := reporter.Begin(options); nil != err {
		return nil, err
	}

	results := make([]Result, 0, len(options.Workloads))
	for _, name := range options.Workloads {
		if err := ctx.Err(); nil != err {
			return results, err
		}

		result, err := measure(ctx, name, options.Repeat, ascending, insertOrder, lookupOrder)
		if nil != err {
			return results, err
		}
		results = append(results, result)

		if err := reporter.Report(result); nil != err {
			return results, err
		}
	}

	return results, reporter.End()
}

// build one workload, verify it, then time the lookups
func measure(ctx context.Context, name string, repeat int, ascending []int, insertOrder []int, lookupOrder []int) (Result, error) {
	build, ok := workloads[name]
	if !ok {
		return Result{}, fault.ErrUnknownWorkload
	}

	size := len(ascending)

	start := time.Now()
	s := build(ascending, insertOrder)
	buildTime := time.Since(start)

	if err := s.check(size); nil != err {
		return Result{}, err
	}

	start = time.Now()
	for i := 0; i < repeat; i += 1 {
		if err := ctx.Err(); nil != err {
			return Result{}, err
		}
		for _, key := range lookupOrder {
			if !s.find(key) {
				return Result{}, fault.ErrLookupFailed
			}
		}
	}
	lookupTime := time.Since(start)

	lookups := repeat * size
	return Result{
		Workload: name,
		Size:     size,
		Lookups:  lookups,
		Build:    buildTime,
		Lookup:   lookupTime,
		Average:  lookupTime / time.Duration(lookups),
		Height:   s.height(),
		Balanced: s.balanced(),
	}, nil
}
