package models

import "fmt"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// String renders the point the way Google web services expect ("lat,lng").
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lng)
}

// UserLocation is the caller's precise position, optionally labelled with the city it was resolved to.
type UserLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
}

// Coordinates returns the point part of the location.
func (l UserLocation) Coordinates() Coordinates {
	return Coordinates{Lat: l.Lat, Lng: l.Lng}
}

// HasPrecisePoint reports whether both coordinates were supplied (0,0 counts as missing).
func (l UserLocation) HasPrecisePoint() bool {
	return l.Lat != 0 && l.Lng != 0
}

// Address is the result of reverse geocoding a point.
type Address struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Warning string  `json:"warning,omitempty"`
}

// LocationPrediction is one autocomplete suggestion.
type LocationPrediction struct {
	PlaceID       string   `json:"place_id"`
	Description   string   `json:"description"`
	MainText      string   `json:"main_text"`
	SecondaryText string   `json:"secondary_text"`
	Types         []string `json:"types,omitempty"`
}
