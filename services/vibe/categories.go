package vibe

import "strings"

const defaultPlaceType = "establishment"

// categoryTypes maps a user facing category to the provider's place type filter.
var categoryTypes = map[string]string{
	"cafes":      "cafe",
	"parks":      "park",
	"historical": "tourist_attraction",
	"religious":  "place_of_worship",
	"nature":     "natural_feature",
	"museums":    "museum",
	"shopping":   "shopping_mall",
	"adventure":  "amusement_park",
	"beaches":    "natural_feature",
	"nightlife":  "night_club",
	"bookstores": "book_store",
	"viewpoints": "tourist_attraction",
}

// PlaceType returns the provider filter for category, or "establishment" when unmapped.
func PlaceType(category string) string {
	if t, ok := categoryTypes[strings.ToLower(strings.TrimSpace(category))]; ok {
		return t
	}
	return defaultPlaceType
}
