/*
Package metrics exports the fill of Bloom filters to Prometheus.
*/
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kwertop/simplebloom/filters"
)

// StatsFunc reads the current statistics of a filter
type StatsFunc func(ctx context.Context) (filters.Stats, error)

// FromFilter adapts an in-memory filter, BloomFilter or SyncBloomFilter, to a StatsFunc.
// A RedisBloomFilter's Stats method is a StatsFunc already.
func FromFilter(filter interface{ Stats() filters.Stats }) StatsFunc {
	return func(context.Context) (filters.Stats, error) {
		return filter.Stats(), nil
	}
}

// FilterCollector is a prometheus.Collector reading a filter's Stats on every scrape.
type FilterCollector struct {
	stats   StatsFunc
	timeout time.Duration

	sizeBits          *prometheus.Desc
	hashFunctions     *prometheus.Desc
	setBits           *prometheus.Desc
	falsePositiveRate *prometheus.Desc
}

// DefaultTimeout bounds one read of a Redis backed filter during a scrape
const DefaultTimeout = 5 * time.Second

// NewFilterCollector creates a collector for the filter _name_
func NewFilterCollector(name string, stats StatsFunc) *FilterCollector {
	labels := prometheus.Labels{"filter": name}
	return &FilterCollector{
		stats:   stats,
		timeout: DefaultTimeout,
		sizeBits: prometheus.NewDesc("simplebloom_filter_size_bits",
			"Number of bits of the filter", nil, labels),
		hashFunctions: prometheus.NewDesc("simplebloom_filter_hash_functions",
			"Number of bit positions probed per item", nil, labels),
		setBits: prometheus.NewDesc("simplebloom_filter_set_bits",
			"Number of bits set in the filter", nil, labels),
		falsePositiveRate: prometheus.NewDesc("simplebloom_filter_estimated_false_positive_rate",
			"False positive rate estimated from the fraction of set bits", nil, labels),
	}
}

// Describe implements prometheus.Collector
func (collector *FilterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.sizeBits
	ch <- collector.hashFunctions
	ch <- collector.setBits
	ch <- collector.falsePositiveRate
}

// Collect implements prometheus.Collector. When the stats can't be read every
// gauge is reported as an invalid metric carrying the error.
func (collector *FilterCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collector.timeout)
	defer cancel()
	stats, err := collector.stats(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(collector.sizeBits, err)
		ch <- prometheus.NewInvalidMetric(collector.hashFunctions, err)
		ch <- prometheus.NewInvalidMetric(collector.setBits, err)
		ch <- prometheus.NewInvalidMetric(collector.falsePositiveRate, err)
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.sizeBits, prometheus.GaugeValue, float64(stats.SizeInBits))
	ch <- prometheus.MustNewConstMetric(collector.hashFunctions, prometheus.GaugeValue, float64(stats.NumHashes))
	ch <- prometheus.MustNewConstMetric(collector.setBits, prometheus.GaugeValue, float64(stats.SetBits))
	ch <- prometheus.MustNewConstMetric(collector.falsePositiveRate, prometheus.GaugeValue, stats.FalsePositiveRate)
}

var _ prometheus.Collector = (*FilterCollector)(nil)
