// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type tableReporter struct {
	w io.Writer
	t table.Writer
}

// NewTableReporter - render the results as a text table on End
func NewTableReporter(w io.Writer) Reporter {
	return &tableReporter{w: w}
}

func (r *tableReporter) Begin(options Options) error {
	r.t = table.NewWriter()
	r.t.SetOutputMirror(r.w)
	r.t.SetStyle(table.StyleLight)
	r.t.SetTitle(fmt.Sprintf("size: %d  repeat: %d", options.Size, options.Repeat))
	r.t.AppendHeader(table.Row{"workload", "build", "lookups", "total", "average", "height", "balanced"})
	return nil
}

func (r *tableReporter) Report(result Result) error {
	height := "-"
	balanced := "-"
	if 0 != result.Height {
		height = fmt.Sprint(result.Height)
		balanced = fmt.Sprint(result.Balanced)
	}
	r.t.AppendRow(table.Row{
		result.Workload,
		result.Build,
		result.Lookups,
		result.Lookup,
		result.Average,
		height,
		balanced,
	})
	return nil
}

func (r *tableReporter) End() error {
	r.t.Render()
	return nil
}
