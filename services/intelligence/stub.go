package ai

import (
	"context"
	"fmt"

	"vibenav/models"
)

var stubTaglines = map[models.PersonalityType]string{
	models.Adventurous: "%s is where your next bold story begins.",
	models.Chill:       "Slow down and unwind at %s.",
	models.Curious:     "%s rewards every question you bring.",
	models.Spiritual:   "Find a quiet, grounding moment at %s.",
	models.Creative:    "Let %s spark your next idea.",
	models.Social:      "%s is buzzing and made for good company.",
}

var stubEmojis = map[models.PersonalityType][]string{
	models.Adventurous: {"🧗", "🔥", "🗺️"},
	models.Chill:       {"🌿", "☕", "😌"},
	models.Curious:     {"🔍", "📚", "💡"},
	models.Spiritual:   {"🕊️", "🧘", "🌅"},
	models.Creative:    {"🎨", "✨", "📸"},
	models.Social:      {"🎉", "🥂", "🎶"},
}

// StubNarrator writes deterministic copy from personality templates.
type StubNarrator struct{}

// NewStubNarrator returns a narrator that never calls a model.
func NewStubNarrator() *StubNarrator {
	return &StubNarrator{}
}

// Tagline fills the personality template with the place name.
func (StubNarrator) Tagline(_ context.Context, name, _ string, _ []string, personality models.PersonalityType) string {
	tmpl, ok := stubTaglines[personality]
	if !ok {
		return FallbackTagline(name)
	}
	return fmt.Sprintf(tmpl, name)
}

// Emojis returns the personality's emoji set.
func (StubNarrator) Emojis(_ context.Context, _, _ string, personality models.PersonalityType, _ []string) []string {
	emojis, ok := stubEmojis[personality]
	if !ok {
		return fallbackEmojis()
	}
	return append([]string(nil), emojis...)
}
