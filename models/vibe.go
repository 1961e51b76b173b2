package models

// SearchRequest is the body of POST /api/places/search.
type SearchRequest struct {
	City         string        `json:"city" binding:"required"`
	Category     string        `json:"category" binding:"required"`
	Profile      Profile       `json:"userProfile"`
	UserLocation *UserLocation `json:"userLocation,omitempty"`
}

// Review is a provider review as shown to the user.
type Review struct {
	ID           string  `json:"id"`
	Author       string  `json:"author"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	Time         string  `json:"time"`
	ProfilePhoto string  `json:"profilePhoto,omitempty"`
}

// VibeResult is one ranked, enriched place.
type VibeResult struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Category           string      `json:"category"`
	Rating             float64     `json:"rating"`
	Distance           string      `json:"distance"`
	TravelTime         string      `json:"travelTime"`
	Image              string      `json:"image"`
	VibeScore          int         `json:"vibeScore"`
	Tags               []string    `json:"tags"`
	Description        string      `json:"description"`
	VibeDescription    string      `json:"vibeDescription"`
	PersonalizedEmojis []string    `json:"personalizedEmojis"`
	Coordinates        Coordinates `json:"coordinates"`
	Address            string      `json:"address"`
	OpeningHours       string      `json:"openingHours"`
	WorkingDays        []string    `json:"workingDays"`
	Website            string      `json:"website,omitempty"`
	Phone              string      `json:"phone,omitempty"`
	PriceLevel         *int        `json:"priceLevel,omitempty"`
	Reviews            []Review    `json:"reviews"`
	About              string      `json:"about,omitempty"`
	DirectionsURL      string      `json:"directionsUrl"`
	IsFavorite         bool        `json:"isFavorite"`
}

// SearchResponse is what the pipeline hands back to the caller.
type SearchResponse struct {
	Places       []VibeResult  `json:"places"`
	Total        int           `json:"total"`
	Message      string        `json:"message,omitempty"`
	UserLocation *UserLocation `json:"userLocation"`
}
