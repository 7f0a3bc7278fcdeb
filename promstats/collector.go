// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package promstats exports solhash kernel counters to Prometheus.
package promstats

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/superwindstorm/solhash"
)

// Collector implements prometheus.Collector over solhash.Counters.
// Values are read at scrape time; nothing is copied in between.
type Collector struct {
	counters *solhash.Counters
	hits     *prometheus.Desc
	misses   *prometheus.Desc
}

// NewCollector returns a Collector for c. namespace may be empty.
// A nil c yields no metrics.
func NewCollector(c *solhash.Counters, namespace string) *Collector {
	return &Collector{
		counters: c,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sha256", "kernel_hits_total"),
			"Calls served by the 32-byte hardware kernel.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sha256", "kernel_misses_total"),
			"Calls that could not use the kernel, by total input size clamped to [1,32].",
			[]string{"size"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.counters == nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(c.counters.Hits()))
	for i, n := range c.counters.MissBuckets() {
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(n), strconv.Itoa(i+1))
	}
}
