package supplementary

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"vibenav/models"
)

var reviewTemplates = map[string][]string{
	"cafes": {
		"The coffee here is absolutely divine! Perfect spot for morning meetings.",
		"Love the cozy atmosphere and friendly staff. Great for working on laptop.",
		"Amazing latte art and the pastries are fresh. Highly recommend!",
		"Perfect ambiance for a quiet afternoon. The music selection is spot on.",
		"Great place to catch up with friends. The seating is comfortable and spacious.",
	},
	"parks": {
		"Beautiful green space perfect for morning jogs and evening walks.",
		"Love bringing my kids here - safe, clean, and lots of activities.",
		"Great for picnics and outdoor photography. Very peaceful environment.",
		"The walking trails are well-maintained and the scenery is gorgeous.",
		"Perfect spot for yoga and meditation. Very serene and calming.",
	},
	"museums": {
		"Fascinating exhibits and well-curated collections. Educational and inspiring.",
		"The interactive displays are amazing for kids and adults alike.",
		"Rich history and culture beautifully presented. A must-visit!",
		"Excellent guided tours and knowledgeable staff. Very informative.",
		"Beautiful architecture and thoughtfully designed spaces.",
	},
	"default": {
		"Amazing place with great vibes and friendly atmosphere.",
		"Highly recommend visiting - exceeded all expectations!",
		"Perfect spot for spending quality time. Will definitely return.",
		"Great service and attention to detail. Very impressed.",
		"Wonderful experience from start to finish. Five stars!",
	},
}

// StubSource serves deterministic content for offline runs.
type StubSource struct{}

// NewStubSource returns a StubSource.
func NewStubSource() *StubSource {
	return &StubSource{}
}

// Fetch returns a slug website and a templated description. It never invents a phone number.
func (StubSource) Fetch(_ context.Context, name, address string) models.SupplementaryData {
	area := firstAddressPart(address)
	if area == "" {
		area = "a vibrant area"
	}
	data := models.SupplementaryData{
		Description: fmt.Sprintf("%s is a beloved local establishment known for its unique atmosphere and quality service. Located in the heart of %s, it offers an authentic experience that locals and visitors alike cherish.", name, area),
	}
	if slug := slugify(name); slug != "" {
		data.Website = fmt.Sprintf("https://www.%s.com", slug)
	}
	return data
}

// SupplementaryReviews picks three to five category templates, stable per venue name.
func (StubSource) SupplementaryReviews(_ context.Context, name, category string) []string {
	templates, ok := reviewTemplates[strings.ToLower(category)]
	if !ok {
		templates = reviewTemplates["default"]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	seed := int(h.Sum32() % 1000)

	count := 3 + seed%3
	reviews := make([]string, 0, count)
	for i := 0; i < count; i++ {
		reviews = append(reviews, templates[(seed+i)%len(templates)])
	}
	return reviews
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
