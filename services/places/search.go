package places

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"vibenav/models"

	"go.uber.org/zap"
)

// DefaultRadiusMeters is the nearby search radius used when none is configured.
const DefaultRadiusMeters = 10000

var detailFields = strings.Join([]string{
	"name",
	"rating",
	"formatted_phone_number",
	"international_phone_number",
	"opening_hours",
	"website",
	"reviews",
	"photos",
	"formatted_address",
	"geometry",
	"price_level",
	"types",
}, ",")

// Search runs a nearby search around origin. Any failure yields an empty list.
func (c *GoogleClient) Search(ctx context.Context, origin models.Coordinates, categoryFilter string, radiusMeters int) []models.Candidate {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	params := url.Values{}
	params.Set("location", origin.String())
	params.Set("radius", fmt.Sprint(radiusMeters))
	if categoryFilter != "" {
		params.Set("type", categoryFilter)
	}

	var resp nearbyResponse
	if err := c.getJSON(ctx, endpointNearby, params, &resp); err != nil {
		return []models.Candidate{}
	}
	if resp.Status != statusOK {
		c.logger.Info("Nearby search returned no results",
			zap.String("type", categoryFilter),
			zap.String("status", resp.Status))
		return []models.Candidate{}
	}

	candidates := make([]models.Candidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, r.toCandidate())
	}
	return candidates
}

// Details fetches the extended record of one place. false means Missing.
func (c *GoogleClient) Details(ctx context.Context, providerID string) (models.CandidateDetails, bool) {
	params := url.Values{}
	params.Set("place_id", providerID)
	params.Set("fields", detailFields)

	var resp detailsResponse
	if err := c.getJSON(ctx, endpointDetails, params, &resp); err != nil {
		return models.CandidateDetails{}, false
	}
	if resp.Status != statusOK {
		c.logger.Info("Place details missing",
			zap.String("placeId", providerID),
			zap.String("status", resp.Status))
		return models.CandidateDetails{}, false
	}
	return resp.Result.toDetails(), true
}
