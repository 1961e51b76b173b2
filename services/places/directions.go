package places

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"vibenav/models"
)

// ErrNoRoute is returned when the provider answers but has no route.
var ErrNoRoute = errors.New("no route found")

const mapsDirBase = "https://www.google.com/maps/dir/"

// DirectionsURL builds a shareable Google Maps directions link.
func DirectionsURL(dest models.Coordinates, origin *models.Coordinates) string {
	if origin != nil {
		return fmt.Sprintf("%s%s/%s", mapsDirBase, origin.String(), dest.String())
	}
	return fmt.Sprintf("%s?api=1&destination=%s", mapsDirBase, dest.String())
}

// Directions fetches the overview polyline of the first route.
func (c *GoogleClient) Directions(ctx context.Context, origin, dest models.Coordinates) (string, error) {
	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", dest.String())

	var resp DirectionsResponse
	if err := c.getJSON(ctx, endpointDirections, params, &resp); err != nil {
		return "", err
	}
	if len(resp.Routes) == 0 {
		return "", ErrNoRoute
	}
	return resp.Routes[0].OverviewPolyline.Points, nil
}
