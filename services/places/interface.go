package places

import (
	"context"
	"errors"

	"vibenav/models"
)

// ErrUnavailable marks a failed call to a Google web service.
var ErrUnavailable = errors.New("places provider unavailable")

// Geocoder turns free text into coordinates. A failure is reported as not found.
type Geocoder interface {
	Resolve(ctx context.Context, locationText string) (models.Coordinates, bool)
}

// ReverseGeocoder labels a point with an address and city.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (models.Address, error)
}

// Autocompleter suggests cities for partial input.
type Autocompleter interface {
	Autocomplete(ctx context.Context, input string) []models.LocationPrediction
}

// PlaceSource finds candidate venues and their details.
type PlaceSource interface {
	Search(ctx context.Context, origin models.Coordinates, categoryFilter string, radiusMeters int) []models.Candidate
	Details(ctx context.Context, providerID string) (models.CandidateDetails, bool)
	PhotoURL(photoRef string, maxWidth int) string
}

// DistanceMatrix computes travel distance and time from one origin to many destinations.
type DistanceMatrix interface {
	Compute(ctx context.Context, origin models.Coordinates, destinations []models.Coordinates) ([]models.DistanceElement, bool)
}

// Router returns the encoded overview polyline of the first route between two points.
type Router interface {
	Directions(ctx context.Context, origin, dest models.Coordinates) (string, error)
}
