package metadata

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// newBreaker builds the circuit breaker shared by the API clients. Five
// consecutive failures open the circuit for thirty seconds, so a dead
// upstream degrades to fast placeholder responses instead of piling up
// timeouts.
func newBreaker[T any](name string) *gobreaker.CircuitBreaker[T] {
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
