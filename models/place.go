package models

// Candidate is a venue returned by nearby search, before enrichment.
type Candidate struct {
	ProviderID  string      `json:"place_id"`
	Name        string      `json:"name"`
	Rating      *float64    `json:"rating,omitempty"`
	PriceLevel  *int        `json:"price_level,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Types       []string    `json:"types"`
	PhotoRef    string      `json:"photo_reference,omitempty"`
	Vicinity    string      `json:"vicinity,omitempty"`
}

// ProviderReview is a review as returned by the place details call.
type ProviderReview struct {
	AuthorName      string  `json:"author_name"`
	Rating          float64 `json:"rating"`
	Text            string  `json:"text"`
	Time            int64   `json:"time"` // unix seconds
	ProfilePhotoURL string  `json:"profile_photo_url,omitempty"`
}

// CandidateDetails is the extended record for one candidate.
type CandidateDetails struct {
	Website            string           `json:"website,omitempty"`
	FormattedPhone     string           `json:"formatted_phone_number,omitempty"`
	InternationalPhone string           `json:"international_phone_number,omitempty"`
	FormattedAddress   string           `json:"formatted_address,omitempty"`
	OpenNow            bool             `json:"open_now"`
	WeekdayText        []string         `json:"weekday_text,omitempty"`
	Reviews            []ProviderReview `json:"reviews,omitempty"`
}

// Phone returns the local phone number, falling back to the international one.
func (d CandidateDetails) Phone() string {
	if d.FormattedPhone != "" {
		return d.FormattedPhone
	}
	return d.InternationalPhone
}

// DistanceElement is one positional entry of a distance matrix row.
type DistanceElement struct {
	DistanceText   string `json:"distance"`
	TravelTimeText string `json:"duration"`
	OK             bool   `json:"ok"`
}

// SupplementaryData fills gaps left by the places provider.
type SupplementaryData struct {
	Website     string `json:"website,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
}
