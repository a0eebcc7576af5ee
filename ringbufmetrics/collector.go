// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Package ringbufmetrics exposes a Buffer's observability counters as a
// prometheus.Collector, without pulling the Prometheus client into the
// core ringbuffer package for callers who don't want it.
package ringbufmetrics

import (
	"github.com/JoshuaSkootsky/coalescing-ring-buffer"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsProvider is satisfied by *ringbuffer.Buffer[K, V] for any K, V.
type StatsProvider interface {
	Stats() ringbuffer.BufferStats
}

// Collector adapts a StatsProvider's snapshot into Prometheus metrics:
// a size gauge, a capacity gauge, an occupancy-ratio gauge, and a
// rejection counter.
type Collector struct {
	provider StatsProvider

	size           *prometheus.Desc
	capacity       *prometheus.Desc
	occupancy      *prometheus.Desc
	rejectionCount *prometheus.Desc
}

// NewCollector builds a Collector for provider. name is used as the
// metric name prefix (e.g. "price_feed" yields "price_feed_size").
func NewCollector(name string, provider StatsProvider, constLabels prometheus.Labels) *Collector {
	return &Collector{
		provider: provider,
		size: prometheus.NewDesc(
			name+"_size", "Current number of entries resident in the ring buffer.", nil, constLabels,
		),
		capacity: prometheus.NewDesc(
			name+"_capacity", "Effective (power-of-two) capacity of the ring buffer.", nil, constLabels,
		),
		occupancy: prometheus.NewDesc(
			name+"_occupancy_ratio", "Size divided by capacity, in [0, 1].", nil, constLabels,
		),
		rejectionCount: prometheus.NewDesc(
			name+"_rejections_total", "Cumulative count of Offer calls that returned false.", nil, constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.occupancy
	ch <- c.rejectionCount
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.provider.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(stats.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.occupancy, prometheus.GaugeValue, stats.Occupancy)
	ch <- prometheus.MustNewConstMetric(c.rejectionCount, prometheus.CounterValue, float64(stats.RejectionCount))
}
