// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
)

type logReporter struct {
	log *logger.L
}

// NewLogReporter - write results to a logger channel
func NewLogReporter(log *logger.L) (Reporter, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &logReporter{log: log}, nil
}

func (r *logReporter) Begin(options Options) error {
	r.log.Infof("size: %d  repeat: %d  seed: %d", options.Size, options.Repeat, options.Seed)
	r.log.Infof("workloads: %v", options.Workloads)
	return nil
}

func (r *logReporter) Report(result Result) error {
	r.log.Infof("%s: build: %v  lookups: %d  total: %v  average: %v",
		result.Workload, result.Build, result.Lookups, result.Lookup, result.Average)
	if 0 != result.Height {
		r.log.Debugf("%s: height: %d  balanced: %t", result.Workload, result.Height, result.Balanced)
	}
	return nil
}

func (r *logReporter) End() error {
	r.log.Info("finished")
	r.log.Flush()
	return nil
}
