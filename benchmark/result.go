// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"
)

// Result - measurements of one workload
//
// Height and Balanced are only meaningful for the tree workloads
type Result struct {
	Workload string        `json:"workload" yaml:"workload"`
	Size     int           `json:"size" yaml:"size"`
	Lookups  int           `json:"lookups" yaml:"lookups"`
	Build    time.Duration `json:"build" yaml:"build"`
	Lookup   time.Duration `json:"lookup" yaml:"lookup"`
	Average  time.Duration `json:"average" yaml:"average"`
	Height   int           `json:"height,omitempty" yaml:"height,omitempty"`
	Balanced bool          `json:"balanced,omitempty" yaml:"balanced,omitempty"`
}
