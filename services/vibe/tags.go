package vibe

import (
	"strings"

	"vibenav/models"
)

const maxTags = 4

var personalityTags = map[models.PersonalityType][]string{
	models.Adventurous: {"exciting", "adventure-ready"},
	models.Chill:       {"relaxing", "peaceful"},
	models.Curious:     {"fascinating", "educational"},
	models.Spiritual:   {"mindful", "serene"},
	models.Creative:    {"inspiring", "aesthetic"},
	models.Social:      {"vibrant", "social-hub"},
}

// reviewTags is ordered; the first matches win the remaining slots.
var reviewTags = []struct {
	phrase string
	tag    string
}{
	{"cozy", "cozy"},
	{"beautiful", "beautiful"},
	{"friendly", "friendly-staff"},
	{"clean", "well-maintained"},
	{"unique", "unique-find"},
	{"hidden gem", "hidden-gem"},
}

// Tags returns at most four distinct descriptive tags in insertion order.
func Tags(in ScoreInput) []string {
	candidates := append([]string(nil), personalityTags[in.Personality]...)

	if in.hasRating() {
		if *in.Rating >= 4.5 {
			candidates = append(candidates, "highly-rated")
		}
		if *in.Rating >= 4.0 {
			candidates = append(candidates, "popular")
		}
	}

	reviewText := strings.ToLower(strings.Join(in.Reviews, " "))
	for _, rt := range reviewTags {
		if strings.Contains(reviewText, rt.phrase) {
			candidates = append(candidates, rt.tag)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	tags := make([]string, 0, maxTags)
	for _, tag := range candidates {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}
