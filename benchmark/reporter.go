// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

// Reporter - receives the results of a run
//
// Begin is called once before any workload, Report after each
// workload and End only when every workload has completed
type Reporter interface {
	Begin(options Options) error
	Report(result Result) error
	End() error
}

// Reporters - pass everything to several reporters, stopping at the
// first error.  An empty list discards the results.
type Reporters []Reporter

// Begin - start all reporters
func (reporters Reporters) Begin(options Options) error {
	for _, r := range reporters {
		if err := r.Begin(options); nil != err {
			return err
		}
	}
	return nil
}

// Report - pass a result to all reporters
func (reporters Reporters) Report(result Result) error {
	for _, r := range reporters {
		if err := r.Report(result); nil != err {
			return err
		}
	}
	return nil
}

// End - finish all reporters
func (reporters Reporters) End() error {
	for _, r := range reporters {
		if err := r.End(); nil != err {
			return err
		}
	}
	return nil
}
