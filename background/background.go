// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run long lived goroutines that stop on request
//
// each process receives a shutdown channel that is closed by Stop, and
// Stop only returns when every process has returned from Run
package background

import (
	"sync"
)

// Process - a background task
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a set of running processes
type T struct {
	shutdown chan struct{}
	done     sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}

	t.done.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer t.done.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - stop a set of background processes and wait for them to
// finish; calling it again does nothing
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
		t.done.Wait()
	})
}
