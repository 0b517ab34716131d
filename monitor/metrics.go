// Package monitor collects lookup metrics: an in-memory collector backing
// the /metrics/summary endpoint, and Prometheus collectors for scraping.
package monitor

import "time"

// LookupMetrics records the outcome of one recommendation lookup.
type LookupMetrics struct {
	Title    string        `json:"title"`
	Found    bool          `json:"found"`
	Results  int           `json:"results"`
	Duration time.Duration `json:"duration"`
}

// Summary aggregates lookup metrics over the process lifetime.
type Summary struct {
	TotalLookups int     `json:"total_lookups"`
	NotFound     int     `json:"not_found"`
	AvgLatencyUs float64 `json:"avg_latency_us"`
}
