// Package metrics exposes striped counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/llxisdsh/striped"
	"github.com/llxisdsh/striped/counterset"
)

// Collector is a prometheus.Collector reporting every counter of a
// counterset.Set. The value of each counter is its Sum at scrape time.
type Collector struct {
	set   *counterset.Set
	total *prometheus.Desc
	lanes *prometheus.Desc
}

// NewCollector returns a Collector for set. Metric names are prefixed with
// namespace when it is non-empty.
func NewCollector(namespace string, set *counterset.Set) *Collector {
	return &Collector{
		set: set,
		total: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "striped", "counter_total"),
			"Sum of all lanes of a striped counter.",
			[]string{"name"}, nil,
		),
		lanes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "striped", "counter_lanes"),
			"Number of lanes of a striped counter.",
			[]string{"name"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.lanes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.set.Range(func(name string, sc *striped.Counter) bool {
		ch <- prometheus.MustNewConstMetric(c.total, prometheus.CounterValue, float64(sc.Sum()), name)
		ch <- prometheus.MustNewConstMetric(c.lanes, prometheus.GaugeValue, float64(sc.Len()), name)
		return true
	})
}
