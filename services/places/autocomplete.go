package places

import (
	"context"
	"net/url"
	"unicode/utf8"

	"vibenav/models"
)

// Autocomplete returns city predictions for input. Short input and failures yield an empty list.
func (c *GoogleClient) Autocomplete(ctx context.Context, input string) []models.LocationPrediction {
	predictions := []models.LocationPrediction{}
	if utf8.RuneCountInString(input) < 2 {
		return predictions
	}

	params := url.Values{}
	params.Set("input", input)
	params.Set("types", "(cities)")

	var resp autocompleteResponse
	if err := c.getJSON(ctx, endpointAutocomplete, params, &resp); err != nil {
		return predictions
	}
	for _, p := range resp.Predictions {
		predictions = append(predictions, models.LocationPrediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
			Types:         p.Types,
		})
	}
	return predictions
}
