package supplementary

import (
	"context"
	"errors"

	"vibenav/models"
)

// ErrUnavailable marks a failed call to the supplementary content provider.
var ErrUnavailable = errors.New("supplementary source unavailable")

// Source fills contact and review gaps left by the places provider.
// Both calls are best-effort: failures come back as empty values.
type Source interface {
	Fetch(ctx context.Context, name, address string) models.SupplementaryData
	SupplementaryReviews(ctx context.Context, name, category string) []string
}
