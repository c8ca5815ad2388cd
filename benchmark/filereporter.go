// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bintree/fault"
)

// Report - the document written by a file reporter
type Report struct {
	Options Options  `json:"options" yaml:"options"`
	Results []Result `json:"results" yaml:"results"`
}

type encoder func(v interface{}) ([]byte, error)

type fileReporter struct {
	fileName string
	encode   encoder
	report   Report
}

// NewFileReporter - write all results to a file when the run ends
//
// the format is chosen by the file extension: ".json", ".yaml" or
// ".yml" write a Report document; ".prom" writes Prometheus text
// format metrics
func NewFileReporter(fileName string) (Reporter, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return &fileReporter{fileName: fileName, encode: encodeJSON}, nil
	case ".yaml", ".yml":
		return &fileReporter{fileName: fileName, encode: yaml.Marshal}, nil
	case ".prom":
		return newPrometheusReporter(fileName), nil
	default:
		return nil, fault.ErrUnknownReportFormat
	}
}

func encodeJSON(v interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if nil != err {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (r *fileReporter) Begin(options Options) error {
	r.report = Report{
		Options: options,
		Results: make([]Result, 0, len(options.Workloads)),
	}
	return nil
}

func (r *fileReporter) Report(result Result) error {
	r.report.Results = append(r.report.Results, result)
	return nil
}

func (r *fileReporter) End() error {
	b, err := r.encode(r.report)
	if nil != err {
		return err
	}
	return os.WriteFile(r.fileName, b, 0644)
}
