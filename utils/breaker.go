package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibenav/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Breaker guards one upstream with a circuit breaker so that a failing
// provider is skipped quickly instead of eating the per-call timeout every time.
type Breaker struct {
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

// NewBreaker creates a breaker that opens at a 60% failure rate over at least
// 10 requests in a one minute window, and probes again after 30 seconds.
func NewBreaker(name string) *Breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		// A caller walking away is not the provider's fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			GetLogger().Warn("circuit breaker state transition",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &Breaker{cb: cb, name: name}
}

// Name returns the upstream label of the breaker.
func (b *Breaker) Name() string {
	return b.name
}

// IsRejection reports whether err came from the breaker refusing the call.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Run executes fn through the breaker and records upstream metrics.
func Run[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	start := time.Now()
	result, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	metrics.UpstreamDuration.WithLabelValues(b.name).Observe(time.Since(start).Seconds())

	if err != nil {
		if IsRejection(err) {
			metrics.UpstreamRequests.WithLabelValues(b.name, metrics.OutcomeRejected).Inc()
		} else {
			metrics.UpstreamRequests.WithLabelValues(b.name, metrics.OutcomeUnavailable).Inc()
		}
		return zero, err
	}
	metrics.UpstreamRequests.WithLabelValues(b.name, metrics.OutcomeOK).Inc()

	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker %s: unexpected result type %T", b.name, result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
