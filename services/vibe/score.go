package vibe

import (
	"math"
	"strings"

	"vibenav/models"
)

const baseScore = 60

var personalityKeywords = map[models.PersonalityType][]string{
	models.Adventurous: {"adventure", "exciting", "thrilling", "outdoor", "active"},
	models.Chill:       {"peaceful", "quiet", "relaxing", "calm", "serene", "cozy"},
	models.Curious:     {"unique", "interesting", "educational", "cultural", "historical"},
	models.Spiritual:   {"peaceful", "serene", "mindful", "quiet", "sacred"},
	models.Creative:    {"artistic", "aesthetic", "inspiring", "beautiful", "creative"},
	models.Social:      {"lively", "popular", "vibrant", "social", "buzzing"},
}

// ScoreInput is everything the scorer looks at for one candidate.
type ScoreInput struct {
	Rating      *float64
	PriceLevel  *int
	Types       []string
	Reviews     []string
	OpenNow     bool
	Personality models.PersonalityType
}

// hasRating treats a zero rating as missing, matching how the provider omits unrated places.
func (in ScoreInput) hasRating() bool {
	return in.Rating != nil && *in.Rating != 0
}

// Score computes the personalization score in [0,100]. It is a pure function of in.
func Score(in ScoreInput) int {
	score := float64(baseScore)

	if in.hasRating() {
		score += math.Min(20, (*in.Rating-3)*10)
	}

	reviewText := strings.ToLower(strings.Join(in.Reviews, " "))
	typeText := strings.ToLower(strings.Join(in.Types, " "))
	matches := 0
	for _, keyword := range personalityKeywords[in.Personality] {
		if strings.Contains(reviewText, keyword) || strings.Contains(typeText, keyword) {
			matches++
		}
	}
	score += math.Min(15, float64(matches*3))

	if in.PriceLevel != nil {
		score -= math.Abs(float64(*in.PriceLevel-2)) * 2
	}

	score += math.Min(10, float64(len(in.Reviews)*2))

	if in.OpenNow {
		score += 5
	}

	return int(math.Max(0, math.Min(100, math.Round(score))))
}
