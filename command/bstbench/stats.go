// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/bintree"
)

const (
	statsDelay = 10 * time.Second
	mega       = 1048576
)

// background process to log memory and node allocation statistics
type memstats struct {
	delay time.Duration
}

func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

	for {
		logMemory(log)

		select {
		case <-shutdown:
			logMemory(log)
			log.Info("stopped")
			return
		case <-time.After(m.delay):
		}
	}
}

func logMemory(log *logger.L) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		log.Errorf("marshal error: %s", err)
	} else {
		log.Debugf("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	s := m.Sys / mega
	log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

	nodes := bintree.Statistics()
	log.Infof("tree nodes allocated: %d  recycled: %d  released: %d", nodes.Allocated, nodes.Recycled, nodes.Released)
}
