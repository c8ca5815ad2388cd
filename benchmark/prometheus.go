// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "bintree_benchmark"

// metrics for the node_exporter text file collector
type prometheusReporter struct {
	fileName string
	registry *prometheus.Registry
	size     prometheus.Gauge
	build    *prometheus.GaugeVec
	lookup   *prometheus.GaugeVec
	average  *prometheus.GaugeVec
	height   *prometheus.GaugeVec
}

func newPrometheusReporter(fileName string) *prometheusReporter {
	gauge := func(name string, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		}, []string{"workload"})
	}

	r := &prometheusReporter{
		fileName: fileName,
		registry: prometheus.NewRegistry(),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "size",
			Help:      "number of keys in each container",
		}),
		build:   gauge("build_seconds", "time to build the container"),
		lookup:  gauge("lookup_seconds", "time for all lookups"),
		average: gauge("average_lookup_seconds", "mean time of one lookup"),
		height:  gauge("height", "tree height, zero for hash baselines"),
	}
	r.registry.MustRegister(r.size, r.build, r.lookup, r.average, r.height)
	return r
}

func (r *prometheusReporter) Begin(options Options) error {
	r.size.Set(float64(options.Size))
	return nil
}

func (r *prometheusReporter) Report(result Result) error {
	r.build.WithLabelValues(result.Workload).Set(result.Build.Seconds())
	r.lookup.WithLabelValues(result.Workload).Set(result.Lookup.Seconds())
	r.average.WithLabelValues(result.Workload).Set(result.Average.Seconds())
	r.height.WithLabelValues(result.Workload).Set(float64(result.Height))
	return nil
}

func (r *prometheusReporter) End() error {
	return prometheus.WriteToTextfile(r.fileName, r.registry)
}
