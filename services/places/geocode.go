package places

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"vibenav/models"

	"go.uber.org/zap"
)

const (
	unknownCity    = "Unknown City"
	unknownAddress = "Unknown address"
)

// Resolve geocodes free text to the first result's location.
func (c *GoogleClient) Resolve(ctx context.Context, locationText string) (models.Coordinates, bool) {
	if strings.TrimSpace(locationText) == "" {
		return models.Coordinates{}, false
	}

	params := url.Values{}
	params.Set("address", locationText)

	var resp geocodeResponse
	if err := c.getJSON(ctx, endpointGeocode, params, &resp); err != nil {
		return models.Coordinates{}, false
	}
	if resp.Status != statusOK || len(resp.Results) == 0 {
		c.logger.Info("Geocode returned no match",
			zap.String("location", locationText),
			zap.String("status", resp.Status))
		return models.Coordinates{}, false
	}

	loc := resp.Results[0].Geometry.Location
	return models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, true
}

// ReverseGeocode labels a point. On failure the returned Address still carries the
// defaults so callers can degrade without a second code path.
func (c *GoogleClient) ReverseGeocode(ctx context.Context, lat, lng float64) (models.Address, error) {
	addr := models.Address{Lat: lat, Lng: lng, Address: unknownAddress, City: unknownCity}

	params := url.Values{}
	params.Set("latlng", models.Coordinates{Lat: lat, Lng: lng}.String())

	var resp geocodeResponse
	if err := c.getJSON(ctx, endpointGeocode, params, &resp); err != nil {
		return addr, err
	}
	if resp.Status != statusOK {
		return addr, fmt.Errorf("%w: reverse geocode status %s. %s", ErrUnavailable, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Results) == 0 {
		return addr, nil
	}

	first := resp.Results[0]
	if first.FormattedAddress != "" {
		addr.Address = first.FormattedAddress
	}
	addr.City = cityFromComponents(first.AddressComponents)
	return addr, nil
}

// cityFromComponents prefers the locality, then the state, then the county.
func cityFromComponents(components []addressComponent) string {
	for _, wanted := range []string{"locality", "administrative_area_level_1", "administrative_area_level_2"} {
		for _, comp := range components {
			if hasType(comp.Types, wanted) && comp.LongName != "" {
				return comp.LongName
			}
		}
	}
	return unknownCity
}

func hasType(types []string, wanted string) bool {
	for _, t := range types {
		if t == wanted {
			return true
		}
	}
	return false
}
