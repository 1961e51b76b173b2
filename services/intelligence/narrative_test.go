package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vibenav/models"

	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestTagline_UsesModelOutput(t *testing.T) {
	gen := &fakeGenerator{reply: "  \"A sunlit nook for slow mornings.\"\n"}
	narrator := NewGeminiNarrator(gen, 0, nil)

	got := narrator.Tagline(context.Background(), "Blue Door", "cafes",
		[]string{"r1", "r2", "r3", "r4"}, models.Chill)

	assert.Equal(t, "A sunlit nook for slow mornings.", got)
	assert.Contains(t, gen.prompts[0], "r1. r2. r3.")
	assert.NotContains(t, gen.prompts[0], "r4")
	assert.Contains(t, gen.prompts[0], "Chill")
}

func TestTagline_FallsBack(t *testing.T) {
	for name, gen := range map[string]*fakeGenerator{
		"error": {err: errors.New("quota exceeded")},
		"empty": {reply: "   "},
	} {
		t.Run(name, func(t *testing.T) {
			narrator := NewGeminiNarrator(gen, 0, nil)
			got := narrator.Tagline(context.Background(), "Blue Door", "cafes", nil, models.Chill)
			assert.Equal(t, "Experience the unique charm of Blue Door.", got)
		})
	}
}

func TestEmojis_FallsBack(t *testing.T) {
	narrator := NewGeminiNarrator(&fakeGenerator{err: errors.New("down")}, 0, nil)

	got := narrator.Emojis(context.Background(), "Blue Door", "cafes", models.Chill, nil)

	assert.Equal(t, []string{"✨", "📍", "🧭"}, got)
	got[0] = "x"
	assert.Equal(t, "✨", FallbackEmojis[0])
}

func TestEmojis_FallsBackWhenOutputHasNoEmoji(t *testing.T) {
	narrator := NewGeminiNarrator(&fakeGenerator{reply: "sorry, I cannot"}, 0, nil)

	got := narrator.Emojis(context.Background(), "Blue Door", "cafes", models.Chill, nil)

	assert.Equal(t, FallbackEmojis, got)
}

func TestEmojis_TopsUpShortOutput(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{"single", "☕", []string{"☕", "✨", "📍"}},
		{"skips duplicates", "✨ ☕", []string{"✨", "☕", "📍"}},
		{"enough already", "☕ 📚 🌿", []string{"☕", "📚", "🌿"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			narrator := NewGeminiNarrator(&fakeGenerator{reply: tt.reply}, 0, nil)
			got := narrator.Emojis(context.Background(), "Blue Door", "cafes", models.Chill, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

// blockingGenerator never answers before its context ends.
type blockingGenerator struct{}

func (blockingGenerator) GenerateContent(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestNarrator_TimeoutFallsBack(t *testing.T) {
	narrator := NewGeminiNarrator(blockingGenerator{}, 50*time.Millisecond, nil)

	start := time.Now()
	tagline := narrator.Tagline(context.Background(), "Blue Door", "cafes", nil, models.Chill)
	emojis := narrator.Emojis(context.Background(), "Blue Door", "cafes", models.Chill, nil)

	assert.Equal(t, FallbackTagline("Blue Door"), tagline)
	assert.Equal(t, FallbackEmojis, emojis)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestParseEmojis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"space separated", "☕ 📚 ✨", []string{"☕", "📚", "✨"}},
		{"run together", "☕📚✨", []string{"☕", "📚", "✨"}},
		{"capped at five", "🌿 ☕ 😌 🎨 ✨ 📸 🎉", []string{"🌿", "☕", "😌", "🎨", "✨"}},
		{"skin tone stays attached", "👋🏽🎉", []string{"👋🏽", "🎉"}},
		{"zwj sequence stays whole", "👩‍💻☕", []string{"👩‍💻", "☕"}},
		{"variation selector stays attached", "🕊️🌅", []string{"🕊️", "🌅"}},
		{"words dropped", "Here: 🌊 and 🏖️", []string{"🌊", "🏖️"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEmojis(tt.in))
		})
	}
}

func TestStubNarrator(t *testing.T) {
	stub := NewStubNarrator()

	for _, p := range models.PersonalityTypes {
		tagline := stub.Tagline(context.Background(), "Blue Door", "cafes", nil, p)
		assert.True(t, strings.Contains(tagline, "Blue Door"), tagline)
		emojis := stub.Emojis(context.Background(), "Blue Door", "cafes", p, nil)
		assert.Len(t, emojis, 3)
	}

	assert.Equal(t, FallbackTagline("X"), stub.Tagline(context.Background(), "X", "", nil, "Unknown"))
	assert.Equal(t, FallbackEmojis, stub.Emojis(context.Background(), "X", "", "Unknown", nil))
}
