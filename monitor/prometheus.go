package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromCollector mirrors lookup metrics into Prometheus collectors. It
// satisfies Collector so it can be chained behind the in-memory one.
type PromCollector struct {
	lookups  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewPromCollector creates the Prometheus collectors and registers them
// with reg.
func NewPromCollector(reg prometheus.Registerer) *PromCollector {
	c := &PromCollector{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "silverspace",
			Name:      "lookups_total",
			Help:      "Recommendation lookups by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "silverspace",
			Name:      "lookup_duration_seconds",
			Help:      "Recommendation lookup latency.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	reg.MustRegister(c.lookups, c.duration)
	return c
}

func (c *PromCollector) Record(m LookupMetrics) {
	outcome := "found"
	if !m.Found {
		outcome = "not_found"
	}
	c.lookups.WithLabelValues(outcome).Inc()
	c.duration.Observe(m.Duration.Seconds())
}

// Flush is a no-op; Prometheus metrics are pull-based.
func (c *PromCollector) Flush() Summary {
	return Summary{}
}

// MultiCollector fans Record out to several collectors. Flush returns the
// first collector's summary.
type MultiCollector []Collector

func (mc MultiCollector) Record(m LookupMetrics) {
	for _, c := range mc {
		c.Record(m)
	}
}

func (mc MultiCollector) Flush() Summary {
	if len(mc) == 0 {
		return Summary{}
	}
	return mc[0].Flush()
}
