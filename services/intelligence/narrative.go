package ai

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"vibenav/models"
	"vibenav/utils"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"
)

const (
	maxPromptReviews = 3
	minEmojis        = 3
	maxEmojis        = 5
)

// FallbackEmojis is returned whenever emoji generation fails.
var FallbackEmojis = []string{"✨", "📍", "🧭"}

// FallbackTagline is the tagline used when generation fails.
func FallbackTagline(name string) string {
	return fmt.Sprintf("Experience the unique charm of %s.", name)
}

// Narrator writes short marketing copy for a venue. It never fails: errors become fallbacks.
type Narrator interface {
	Tagline(ctx context.Context, name, category string, reviews []string, personality models.PersonalityType) string
	Emojis(ctx context.Context, name, category string, personality models.PersonalityType, reviews []string) []string
}

// GeminiNarrator generates taglines and emoji sets with a text model.
type GeminiNarrator struct {
	gen     TextGenerator
	timeout time.Duration
	breaker *utils.Breaker
	logger  *zap.Logger
}

// NewGeminiNarrator wraps gen. Each model call is bounded by timeout when it is positive.
func NewGeminiNarrator(gen TextGenerator, timeout time.Duration, logger *zap.Logger) *GeminiNarrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiNarrator{
		gen:     gen,
		timeout: timeout,
		breaker: utils.NewBreaker("gemini_narrative"),
		logger:  logger.With(zap.String("component", "narrator")),
	}
}

func (n *GeminiNarrator) generate(ctx context.Context, prompt string) (string, error) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	return utils.Run(n.breaker, func() (string, error) {
		return n.gen.GenerateContent(ctx, prompt)
	})
}

// Tagline returns a one-line vibe description, or FallbackTagline on any failure.
func (n *GeminiNarrator) Tagline(ctx context.Context, name, category string, reviews []string, personality models.PersonalityType) string {
	prompt := fmt.Sprintf(`Generate a concise, engaging tagline (max 20 words) for "%s" (%s category).
Consider these user reviews: %s.
The user's personality is %s.
Focus on the unique "vibe" of the place. Example: "A cozy cafe perfect for deep conversations."`,
		name, category, joinReviews(reviews), personality)

	text, err := n.generate(ctx, prompt)
	if err != nil {
		n.logger.Warn("Tagline generation failed", zap.String("place", name), zap.Error(err))
		return FallbackTagline(name)
	}
	tagline := strings.Trim(strings.TrimSpace(text), `"“”`)
	if tagline == "" {
		return FallbackTagline(name)
	}
	return tagline
}

// Emojis returns 3 to 5 emoji for the place. Short model output is topped up from FallbackEmojis.
func (n *GeminiNarrator) Emojis(ctx context.Context, name, category string, personality models.PersonalityType, reviews []string) []string {
	prompt := fmt.Sprintf(`Generate 3-5 emojis that best represent the vibe of "%s" (%s category).
Consider these user reviews: %s.
The user's personality is %s.
Return only the emojis, separated by spaces. Example: "☕ 📚 ✨"`,
		name, category, joinReviews(reviews), personality)

	text, err := n.generate(ctx, prompt)
	if err != nil {
		n.logger.Warn("Emoji generation failed", zap.String("place", name), zap.Error(err))
		return fallbackEmojis()
	}
	return topUpEmojis(ParseEmojis(text))
}

// topUpEmojis pads emojis to the minimum count with fallback symbols not already present.
func topUpEmojis(emojis []string) []string {
	if len(emojis) == 0 {
		return fallbackEmojis()
	}
	for _, e := range FallbackEmojis {
		if len(emojis) >= minEmojis {
			break
		}
		if !slices.Contains(emojis, e) {
			emojis = append(emojis, e)
		}
	}
	return emojis
}

// ParseEmojis splits model output into at most five emoji. Whitespace separates tokens;
// a run-together token is split on grapheme boundaries so modifiers and ZWJ sequences stay whole.
// Anything that is not a symbol is discarded.
func ParseEmojis(text string) []string {
	var out []string
	for _, token := range strings.Fields(text) {
		gr := uniseg.NewGraphemes(token)
		for gr.Next() {
			cluster := gr.Str()
			if !isEmojiCluster(cluster) {
				continue
			}
			out = append(out, cluster)
			if len(out) == maxEmojis {
				return out
			}
		}
	}
	return out
}

func isEmojiCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r != utf8.RuneError && unicode.Is(unicode.So, r)
}

func joinReviews(reviews []string) string {
	if len(reviews) > maxPromptReviews {
		reviews = reviews[:maxPromptReviews]
	}
	return strings.Join(reviews, ". ")
}

func fallbackEmojis() []string {
	return append([]string(nil), FallbackEmojis...)
}
