package places

import "vibenav/models"

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          geometry           `json:"geometry"`
	AddressComponents []addressComponent `json:"address_components"`
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type openingHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type placeResult struct {
	PlaceID            string                  `json:"place_id"`
	Name               string                  `json:"name"`
	Rating             *float64                `json:"rating"`
	PriceLevel         *int                    `json:"price_level"`
	Vicinity           string                  `json:"vicinity"`
	FormattedAddress   string                  `json:"formatted_address"`
	Geometry           geometry                `json:"geometry"`
	Photos             []placePhoto            `json:"photos"`
	OpeningHours       *openingHours           `json:"opening_hours"`
	Types              []string                `json:"types"`
	Reviews            []models.ProviderReview `json:"reviews"`
	Website            string                  `json:"website"`
	FormattedPhone     string                  `json:"formatted_phone_number"`
	InternationalPhone string                  `json:"international_phone_number"`
}

type nearbyResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []placeResult `json:"results"`
}

type detailsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Result       placeResult `json:"result"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type matrixElement struct {
	Status   string    `json:"status"`
	Distance textValue `json:"distance"`
	Duration textValue `json:"duration"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
		Types []string `json:"types"`
	} `json:"predictions"`
}

// DirectionsResponse represents the part of the Google Directions API response we read.
type DirectionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

func (p placeResult) toCandidate() models.Candidate {
	candidate := models.Candidate{
		ProviderID:  p.PlaceID,
		Name:        p.Name,
		Rating:      p.Rating,
		PriceLevel:  p.PriceLevel,
		Coordinates: models.Coordinates{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng},
		Types:       p.Types,
		Vicinity:    p.Vicinity,
	}
	if len(p.Photos) > 0 {
		candidate.PhotoRef = p.Photos[0].PhotoReference
	}
	return candidate
}

func (p placeResult) toDetails() models.CandidateDetails {
	details := models.CandidateDetails{
		Website:            p.Website,
		FormattedPhone:     p.FormattedPhone,
		InternationalPhone: p.InternationalPhone,
		FormattedAddress:   p.FormattedAddress,
		Reviews:            p.Reviews,
	}
	if p.OpeningHours != nil {
		details.OpenNow = p.OpeningHours.OpenNow
		details.WeekdayText = p.OpeningHours.WeekdayText
	}
	return details
}
