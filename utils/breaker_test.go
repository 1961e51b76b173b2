package utils

import (
	"errors"
	"testing"

	"vibenav/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsTypedResult(t *testing.T) {
	b := NewBreaker("test_typed")

	got, err := Run(b, func() (int, error) { return 42, nil })

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("test_typed", metrics.OutcomeOK)))
}

func TestRun_OpensAfterRepeatedFailures(t *testing.T) {
	b := NewBreaker("test_trip")
	boom := errors.New("boom")

	for i := 0; i < 10; i++ {
		_, err := Run(b, func() (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)
	}

	called := false
	_, err := Run(b, func() (string, error) {
		called = true
		return "ok", nil
	})

	assert.False(t, called)
	assert.True(t, IsRejection(err))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test_trip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("test_trip", metrics.OutcomeRejected)))
}
