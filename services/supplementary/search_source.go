package supplementary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"vibenav/models"
	"vibenav/utils"

	"go.uber.org/zap"
)

const maxReviewSnippets = 5

var phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s\-().]{6,}\d`)

// Listing and social sites never count as a venue's own website.
var aggregatorHosts = []string{
	"tripadvisor.", "yelp.", "facebook.com", "instagram.com", "twitter.com", "x.com",
	"google.", "zomato.", "foursquare.com", "wikipedia.org", "justdial.com",
	"booking.com", "expedia.", "timeout.com", "wanderlog.com", "swiggy.com",
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
	Snippet     string `json:"snippet"`
	Mime        string `json:"mime,omitempty"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

// SearchSource answers supplementary lookups with the Custom Search JSON API.
type SearchSource struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engineID   string
	breaker    *utils.Breaker
	logger     *zap.Logger
}

// NewSearchSource creates a source bounded by timeout per call.
func NewSearchSource(baseURL, apiKey, engineID string, timeout time.Duration, logger *zap.Logger) *SearchSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		engineID:   engineID,
		breaker:    utils.NewBreaker("custom_search"),
		logger:     logger.With(zap.String("component", "supplementary_search")),
	}
}

func (s *SearchSource) query(ctx context.Context, q string, num int) ([]searchItem, error) {
	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", q)
	params.Set("num", fmt.Sprint(num))
	target := s.baseURL + "?" + params.Encode()

	return utils.Run(s.breaker, func() ([]searchItem, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
		}
		var body searchResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
		}
		return body.Items, nil
	})
}

// Fetch looks for the venue's own website, a phone number and a short description.
func (s *SearchSource) Fetch(ctx context.Context, name, address string) models.SupplementaryData {
	q := name
	if area := firstAddressPart(address); area != "" {
		q = fmt.Sprintf("%s %s", name, area)
	}
	items, err := s.query(ctx, q, 10)
	if err != nil {
		s.logger.Warn("Supplementary fetch failed", zap.String("place", name), zap.Error(err))
		return models.SupplementaryData{}
	}
	return extractData(items)
}

// SupplementaryReviews returns review-like snippets about the venue.
func (s *SearchSource) SupplementaryReviews(ctx context.Context, name, category string) []string {
	items, err := s.query(ctx, fmt.Sprintf("%s %s reviews", name, category), maxReviewSnippets)
	if err != nil {
		s.logger.Warn("Supplementary reviews failed", zap.String("place", name), zap.Error(err))
		return []string{}
	}
	reviews := make([]string, 0, len(items))
	for _, item := range items {
		if snippet := cleanSnippet(item.Snippet); snippet != "" {
			reviews = append(reviews, snippet)
		}
		if len(reviews) == maxReviewSnippets {
			break
		}
	}
	return reviews
}

func extractData(items []searchItem) models.SupplementaryData {
	var data models.SupplementaryData
	for _, item := range items {
		if data.Website == "" && isOfficialSite(item) {
			data.Website = item.Link
			if snippet := cleanSnippet(item.Snippet); snippet != "" {
				data.Description = snippet
			}
		}
		if data.Phone == "" {
			data.Phone = extractPhone(item.Snippet)
		}
	}
	if data.Description == "" {
		for _, item := range items {
			if snippet := cleanSnippet(item.Snippet); snippet != "" {
				data.Description = snippet
				break
			}
		}
	}
	return data
}

func isOfficialSite(item searchItem) bool {
	if item.Link == "" || (item.Mime != "" && item.Mime != "text/html") {
		return false
	}
	host := strings.ToLower(item.DisplayLink)
	if host == "" {
		if u, err := url.Parse(item.Link); err == nil {
			host = strings.ToLower(u.Host)
		}
	}
	for _, agg := range aggregatorHosts {
		if strings.Contains(host, agg) {
			return false
		}
	}
	return true
}

func extractPhone(text string) string {
	match := phonePattern.FindString(text)
	if match == "" {
		return ""
	}
	digits := 0
	for _, r := range match {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	// Dates and prices also match the pattern; real numbers carry more digits.
	if digits < 9 || digits > 15 {
		return ""
	}
	return strings.TrimSpace(match)
}

func cleanSnippet(snippet string) string {
	return strings.Join(strings.Fields(snippet), " ")
}

func firstAddressPart(address string) string {
	part, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(part)
}
