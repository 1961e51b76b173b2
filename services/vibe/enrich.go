package vibe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vibenav/metrics"
	"vibenav/models"
	"vibenav/services/places"

	"go.uber.org/zap"
)

// async runs fn on its own goroutine and reports a panic as an error.
func async(fn func()) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic: %v", r)
			}
		}()
		fn()
		done <- nil
	}()
	return done
}

func await(ctx context.Context, done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enrich turns one candidate into a result. Every collaborator here is best-effort
// except details, whose absence drops the candidate.
func (o *Orchestrator) enrich(
	ctx context.Context,
	index int,
	c models.Candidate,
	req models.SearchRequest,
	distanceOrigin *models.Coordinates,
	distances *distanceFuture,
) (result *models.VibeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			result = nil
		}
	}()

	var extraReviews []string
	reviewsDone := async(func() {
		extraReviews = o.supplementary.SupplementaryReviews(ctx, c.Name, req.Category)
	})

	details, ok := o.source.Details(ctx, c.ProviderID)
	if !ok {
		metrics.CandidatesDropped.WithLabelValues("details_missing").Inc()
		o.logger.Info("Skipping candidate without details",
			zap.String("placeId", c.ProviderID),
			zap.String("place", c.Name))
		return nil, nil
	}

	address := details.FormattedAddress
	if address == "" {
		address = c.Vicinity
	}
	website := details.Website
	phone := details.Phone()
	var about string
	if website == "" || phone == "" || len(details.Reviews) == 0 {
		extra := o.supplementary.Fetch(ctx, c.Name, address)
		if website == "" {
			website = extra.Website
		}
		if phone == "" {
			phone = extra.Phone
		}
		about = extra.Description
	}

	if err := await(ctx, reviewsDone); err != nil {
		return nil, fmt.Errorf("supplementary reviews: %w", err)
	}
	merged := mergeReviews(details.Reviews, extraReviews)

	var emojis []string
	emojisDone := async(func() {
		emojis = o.narrator.Emojis(ctx, c.Name, req.Category, req.Profile.PersonalityType, merged)
	})
	tagline := o.narrator.Tagline(ctx, c.Name, req.Category, merged, req.Profile.PersonalityType)
	if err := await(ctx, emojisDone); err != nil {
		return nil, fmt.Errorf("emojis: %w", err)
	}

	distance, travelTime := distances.lookup(ctx, index)

	input := ScoreInput{
		Rating:      c.Rating,
		PriceLevel:  c.PriceLevel,
		Types:       c.Types,
		Reviews:     merged,
		OpenNow:     details.OpenNow,
		Personality: req.Profile.PersonalityType,
	}

	rating := defaultRating
	if input.hasRating() {
		rating = *c.Rating
	}
	image := placeholderImage
	if c.PhotoRef != "" {
		image = o.source.PhotoURL(c.PhotoRef, photoWidth)
	}
	workingDays := details.WeekdayText
	if workingDays == nil {
		workingDays = []string{}
	}

	return &models.VibeResult{
		ID:                 c.ProviderID,
		Name:               c.Name,
		Category:           req.Category,
		Rating:             rating,
		Distance:           distance,
		TravelTime:         travelTime,
		Image:              image,
		VibeScore:          Score(input),
		Tags:               Tags(input),
		Description:        tagline,
		VibeDescription:    tagline,
		PersonalizedEmojis: emojis,
		Coordinates:        c.Coordinates,
		Address:            address,
		OpeningHours:       todaysHours(workingDays, o.now()),
		WorkingDays:        workingDays,
		Website:            website,
		Phone:              phone,
		PriceLevel:         c.PriceLevel,
		Reviews:            toReviews(c.ProviderID, details.Reviews),
		About:              about,
		DirectionsURL:      places.DirectionsURL(c.Coordinates, distanceOrigin),
	}, nil
}

// mergeReviews puts provider review texts first, then supplementary ones, skipping blanks.
func mergeReviews(provider []models.ProviderReview, extra []string) []string {
	merged := make([]string, 0, len(provider)+len(extra))
	for _, r := range provider {
		if strings.TrimSpace(r.Text) != "" {
			merged = append(merged, r.Text)
		}
	}
	for _, text := range extra {
		if strings.TrimSpace(text) != "" {
			merged = append(merged, text)
		}
	}
	return merged
}

func toReviews(placeID string, provider []models.ProviderReview) []models.Review {
	reviews := make([]models.Review, 0, len(provider))
	for _, r := range provider {
		reviews = append(reviews, models.Review{
			ID:           fmt.Sprintf("%s_%d", placeID, r.Time),
			Author:       r.AuthorName,
			Rating:       r.Rating,
			Text:         r.Text,
			Time:         time.Unix(r.Time, 0).UTC().Format(reviewDateLayout),
			ProfilePhoto: r.ProfilePhotoURL,
		})
	}
	return reviews
}

// todaysHours picks today's line from Monday-first weekday text.
func todaysHours(weekdayText []string, now time.Time) string {
	idx := (int(now.Weekday()) + 6) % 7
	if idx < len(weekdayText) && weekdayText[idx] != "" {
		return weekdayText[idx]
	}
	return hoursUnavailable
}
