package vibe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"vibenav/metrics"
	"vibenav/models"
	ai "vibenav/services/intelligence"
	"vibenav/services/places"
	"vibenav/services/supplementary"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// NoPlacesMessage accompanies an empty result set.
	NoPlacesMessage = "No places found for this category in the specified location"

	distanceUnavailable = "Distance unavailable"
	timeUnavailable     = "Time unavailable"
	hoursUnavailable    = "Hours not available"
	placeholderImage    = "/placeholder.svg?height=300&width=400"
	defaultRating       = 4.0
	photoWidth          = 600
	reviewDateLayout    = "1/2/2006"
)

// Settings tunes the pipeline.
type Settings struct {
	RadiusMeters      int
	MaxCandidates     int
	DistanceBatchSize int
	MaxConcurrency    int
	Timeout           time.Duration
}

// DefaultSettings returns the stock pipeline limits.
func DefaultSettings() Settings {
	return Settings{
		RadiusMeters:      places.DefaultRadiusMeters,
		MaxCandidates:     8,
		DistanceBatchSize: 10,
		MaxConcurrency:    8,
	}
}

// Orchestrator runs one search: locate, gather candidates, enrich them concurrently, rank.
type Orchestrator struct {
	geocoder      places.Geocoder
	source        places.PlaceSource
	matrix        places.DistanceMatrix
	supplementary supplementary.Source
	narrator      ai.Narrator
	settings      Settings
	now           func() time.Time
	logger        *zap.Logger
}

// NewOrchestrator wires the collaborators. Zero settings fall back to DefaultSettings.
func NewOrchestrator(
	geocoder places.Geocoder,
	source places.PlaceSource,
	matrix places.DistanceMatrix,
	supp supplementary.Source,
	narrator ai.Narrator,
	settings Settings,
	logger *zap.Logger,
) *Orchestrator {
	defaults := DefaultSettings()
	if settings.RadiusMeters <= 0 {
		settings.RadiusMeters = defaults.RadiusMeters
	}
	if settings.MaxCandidates <= 0 {
		settings.MaxCandidates = defaults.MaxCandidates
	}
	if settings.DistanceBatchSize <= 0 {
		settings.DistanceBatchSize = defaults.DistanceBatchSize
	}
	if settings.MaxConcurrency <= 0 {
		settings.MaxConcurrency = defaults.MaxConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		geocoder:      geocoder,
		source:        source,
		matrix:        matrix,
		supplementary: supp,
		narrator:      narrator,
		settings:      settings,
		now:           time.Now,
		logger:        logger.With(zap.String("component", "orchestrator")),
	}
}

// WithClock replaces the clock used to pick today's opening hours.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Validate checks the request boundary invariants.
func Validate(req models.SearchRequest) error {
	if strings.TrimSpace(req.City) == "" {
		return &InputError{Field: "city", Message: "City and category are required"}
	}
	if strings.TrimSpace(req.Category) == "" {
		return &InputError{Field: "category", Message: "City and category are required"}
	}
	if p := req.Profile.PersonalityType; p != "" && !p.Valid() {
		return &InputError{Field: "personalityType", Message: fmt.Sprintf("unknown personality type %q", p)}
	}
	return nil
}

// Search runs the pipeline. Only invalid input and whole-pipeline failures are errors;
// every upstream problem degrades the result instead.
func (o *Orchestrator) Search(ctx context.Context, req models.SearchRequest) (resp *models.SearchResponse, err error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if r := recover(); r != nil {
			err = &PipelineError{Err: fmt.Errorf("panic: %v", r)}
			resp = nil
		}
		if err != nil {
			outcome = "error"
			var inputErr *InputError
			if errors.As(err, &inputErr) {
				outcome = "invalid"
			}
		}
		metrics.SearchRequests.WithLabelValues(outcome).Inc()
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	if err := Validate(req); err != nil {
		return nil, err
	}
	parent := ctx
	if o.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.settings.Timeout)
		defer cancel()
	}

	origin, found := o.searchOrigin(ctx, req)
	if !found {
		outcome = "empty"
		return emptyResponse(req), nil
	}

	candidates := o.source.Search(ctx, origin, PlaceType(req.Category), o.settings.RadiusMeters)
	if len(candidates) == 0 {
		outcome = "empty"
		return emptyResponse(req), nil
	}

	distanceOrigin := preciseOrigin(req.UserLocation)
	distances := o.startDistances(ctx, distanceOrigin, candidates)

	capped := candidates
	if len(capped) > o.settings.MaxCandidates {
		capped = capped[:o.settings.MaxCandidates]
	}

	results := make([]*models.VibeResult, len(capped))
	var g errgroup.Group
	g.SetLimit(o.settings.MaxConcurrency)
	for i, c := range capped {
		g.Go(func() error {
			result, err := o.enrich(ctx, i, c, req, distanceOrigin, distances)
			if err != nil {
				o.logger.Warn("Dropping candidate",
					zap.String("placeId", c.ProviderID),
					zap.String("place", c.Name),
					zap.Error(err))
				metrics.CandidatesDropped.WithLabelValues("processing_error").Inc()
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	if ctxErr := parent.Err(); ctxErr != nil {
		return nil, &PipelineError{Err: ctxErr}
	}
	if ctx.Err() != nil {
		o.logger.Warn("Pipeline deadline reached; returning finished candidates",
			zap.Duration("timeout", o.settings.Timeout))
	}

	ranked := make([]models.VibeResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].VibeScore > ranked[b].VibeScore
	})

	if len(ranked) == 0 && ctx.Err() != nil {
		outcome = "empty"
		return emptyResponse(req), nil
	}

	return &models.SearchResponse{
		Places:       ranked,
		Total:        len(ranked),
		UserLocation: req.UserLocation,
	}, nil
}

// searchOrigin uses the caller's own position only when they are searching their current city.
func (o *Orchestrator) searchOrigin(ctx context.Context, req models.SearchRequest) (models.Coordinates, bool) {
	loc := req.UserLocation
	if loc != nil && loc.HasPrecisePoint() && loc.City != "" &&
		strings.EqualFold(strings.TrimSpace(loc.City), strings.TrimSpace(req.City)) {
		return loc.Coordinates(), true
	}
	return o.geocoder.Resolve(ctx, req.City)
}

// preciseOrigin is independent of the city gate: any supplied point is used for distances.
func preciseOrigin(loc *models.UserLocation) *models.Coordinates {
	if loc == nil || !loc.HasPrecisePoint() {
		return nil
	}
	c := loc.Coordinates()
	return &c
}

func emptyResponse(req models.SearchRequest) *models.SearchResponse {
	return &models.SearchResponse{
		Places:       []models.VibeResult{},
		Total:        0,
		Message:      NoPlacesMessage,
		UserLocation: req.UserLocation,
	}
}
