package vibe

import (
	"context"

	"vibenav/models"

	"go.uber.org/zap"
)

// distanceFuture holds the one batched distance matrix result. It is written once
// before done is closed and only read afterwards.
type distanceFuture struct {
	done     chan struct{}
	elements []models.DistanceElement
	ok       bool
}

func resolvedDistances(elements []models.DistanceElement, ok bool) *distanceFuture {
	f := &distanceFuture{done: make(chan struct{}), elements: elements, ok: ok}
	close(f.done)
	return f
}

// startDistances fires the batch for the first DistanceBatchSize candidates of the full list.
// Without a precise origin there is nothing to measure from and the batch is unavailable.
func (o *Orchestrator) startDistances(ctx context.Context, origin *models.Coordinates, candidates []models.Candidate) *distanceFuture {
	if origin == nil {
		return resolvedDistances(nil, false)
	}

	batch := candidates
	if len(batch) > o.settings.DistanceBatchSize {
		batch = batch[:o.settings.DistanceBatchSize]
	}
	destinations := make([]models.Coordinates, len(batch))
	for i, c := range batch {
		destinations[i] = c.Coordinates
	}

	f := &distanceFuture{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				o.logger.Warn("Distance matrix panicked", zap.Any("panic", r))
				f.elements, f.ok = nil, false
			}
		}()
		f.elements, f.ok = o.matrix.Compute(ctx, *origin, destinations)
	}()
	return f
}

// lookup returns the distance and travel time texts for the candidate at index.
func (f *distanceFuture) lookup(ctx context.Context, index int) (string, string) {
	select {
	case <-f.done:
	case <-ctx.Done():
		return distanceUnavailable, timeUnavailable
	}
	if !f.ok || index >= len(f.elements) || !f.elements[index].OK {
		return distanceUnavailable, timeUnavailable
	}
	el := f.elements[index]
	return el.DistanceText, el.TravelTimeText
}
