package monitor

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestInMemoryCollector(t *testing.T) {
	c := NewInMemoryCollector()

	c.Record(LookupMetrics{Title: "A", Found: true, Results: 5, Duration: 10 * time.Microsecond})
	c.Record(LookupMetrics{Title: "B", Found: true, Results: 5, Duration: 30 * time.Microsecond})
	c.Record(LookupMetrics{Title: "missing", Found: false, Duration: 2 * time.Microsecond})

	s := c.Flush()
	if s.TotalLookups != 3 {
		t.Errorf("TotalLookups = %d, want 3", s.TotalLookups)
	}
	if s.NotFound != 1 {
		t.Errorf("NotFound = %d, want 1", s.NotFound)
	}
	if s.AvgLatencyUs != 14 {
		t.Errorf("AvgLatencyUs = %v, want 14", s.AvgLatencyUs)
	}

	c.Reset()
	if s := c.Flush(); s.TotalLookups != 0 {
		t.Errorf("after Reset TotalLookups = %d, want 0", s.TotalLookups)
	}
}

func TestInMemoryCollectorConcurrent(t *testing.T) {
	c := NewInMemoryCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(LookupMetrics{Found: true, Duration: time.Microsecond})
			}
		}()
	}
	wg.Wait()

	if s := c.Flush(); s.TotalLookups != 1000 {
		t.Errorf("TotalLookups = %d, want 1000", s.TotalLookups)
	}
}

func TestMultiCollector(t *testing.T) {
	mem := NewInMemoryCollector()
	prom := NewPromCollector(prometheus.NewRegistry())
	mc := MultiCollector{mem, prom}

	mc.Record(LookupMetrics{Found: true, Duration: time.Microsecond})
	mc.Record(LookupMetrics{Found: false, Duration: time.Microsecond})

	if s := mc.Flush(); s.TotalLookups != 2 || s.NotFound != 1 {
		t.Errorf("Flush = %+v", s)
	}
}

func TestNoOpCollector(t *testing.T) {
	c := NewNoOpCollector()
	c.Record(LookupMetrics{Found: true})
	if s := c.Flush(); s.TotalLookups != 0 {
		t.Errorf("NoOp Flush = %+v", s)
	}
}
