package models

// PersonalityType is the user's travel personality.
type PersonalityType string

const (
	Adventurous PersonalityType = "Adventurous"
	Chill       PersonalityType = "Chill"
	Curious     PersonalityType = "Curious"
	Spiritual   PersonalityType = "Spiritual"
	Creative    PersonalityType = "Creative"
	Social      PersonalityType = "Social"
)

// PersonalityTypes lists every accepted personality, in display order.
var PersonalityTypes = []PersonalityType{Adventurous, Chill, Curious, Spiritual, Creative, Social}

// Valid reports whether p is one of the fixed personality types.
func (p PersonalityType) Valid() bool {
	for _, known := range PersonalityTypes {
		if p == known {
			return true
		}
	}
	return false
}

// Profile is the taste profile supplied with every search. It is read-only input.
type Profile struct {
	Name            string          `json:"name,omitempty"`
	PersonalityType PersonalityType `json:"personalityType"`
	TravelCompanion string          `json:"travelCompanion,omitempty"` // Solo, Friends, Partner, Family
	PreferredPlaces []string        `json:"preferredPlaces,omitempty"`
}
