package monitor

import (
	"sync"
	"time"
)

// Collector receives lookup metrics.
type Collector interface {
	Record(m LookupMetrics)
	Flush() Summary
}

// InMemoryCollector aggregates lookup metrics in memory.
type InMemoryCollector struct {
	mu            sync.RWMutex
	totalLookups  int
	notFound      int
	totalDuration time.Duration
}

// NewInMemoryCollector creates a new in-memory metrics collector.
func NewInMemoryCollector() *InMemoryCollector {
	return &InMemoryCollector{}
}

func (c *InMemoryCollector) Record(m LookupMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalLookups++
	if !m.Found {
		c.notFound++
	}
	c.totalDuration += m.Duration
}

func (c *InMemoryCollector) Flush() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Summary{
		TotalLookups: c.totalLookups,
		NotFound:     c.notFound,
	}
	if c.totalLookups > 0 {
		s.AvgLatencyUs = float64(c.totalDuration.Microseconds()) / float64(c.totalLookups)
	}
	return s
}

// Reset clears all recorded metrics.
func (c *InMemoryCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalLookups = 0
	c.notFound = 0
	c.totalDuration = 0
}

type NoOpCollector struct{}

func NewNoOpCollector() *NoOpCollector {
	return &NoOpCollector{}
}

func (c *NoOpCollector) Record(m LookupMetrics) {}

func (c *NoOpCollector) Flush() Summary {
	return Summary{}
}
