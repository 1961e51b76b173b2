package places

import (
	"context"
	"net/url"
	"strings"

	"vibenav/models"
)

// Compute asks the distance matrix for one row. The result is positionally aligned with
// destinations; false means the whole call was unavailable.
func (c *GoogleClient) Compute(ctx context.Context, origin models.Coordinates, destinations []models.Coordinates) ([]models.DistanceElement, bool) {
	if len(destinations) == 0 {
		return []models.DistanceElement{}, true
	}

	dests := make([]string, len(destinations))
	for i, d := range destinations {
		dests[i] = d.String()
	}
	params := url.Values{}
	params.Set("origins", origin.String())
	params.Set("destinations", strings.Join(dests, "|"))
	params.Set("units", "metric")

	var resp matrixResponse
	if err := c.getJSON(ctx, endpointDistance, params, &resp); err != nil {
		return nil, false
	}
	if resp.Status != statusOK {
		return nil, false
	}

	var row []matrixElement
	if len(resp.Rows) > 0 {
		row = resp.Rows[0].Elements
	}
	return alignElements(row, len(destinations)), true
}

// alignElements converts a matrix row and pads it to n entries.
func alignElements(row []matrixElement, n int) []models.DistanceElement {
	out := make([]models.DistanceElement, n)
	for i := 0; i < n && i < len(row); i++ {
		if row[i].Status != statusOK {
			continue
		}
		out[i] = models.DistanceElement{
			DistanceText:   row[i].Distance.Text,
			TravelTimeText: row[i].Duration.Text,
			OK:             true,
		}
	}
	return out
}
