// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/benchmark"
)

// run one benchmark with the reporters selected by the configuration
//
// console output goes to w, nil for none
func runBenchmark(ctx context.Context, options *Configuration, w io.Writer) ([]benchmark.Result, error) {

	logReporter, err := benchmark.NewLogReporter(logger.New("benchmark"))
	if nil != err {
		return nil, err
	}
	reporters := benchmark.Reporters{logReporter}

	if nil != w && options.Table {
		reporters = append(reporters, benchmark.NewTableReporter(w))
	}

	if "" != options.ReportFile {
		fileReporter, err := benchmark.NewFileReporter(options.ReportFile)
		if nil != err {
			return nil, err
		}
		reporters = append(reporters, fileReporter)
	}

	return benchmark.Run(ctx, options.Benchmark, reporters)
}
