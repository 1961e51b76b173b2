package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vibenav/utils"

	"go.uber.org/zap"
)

const (
	endpointGeocode      = "geocode"
	endpointNearby       = "place/nearbysearch"
	endpointDetails      = "place/details"
	endpointAutocomplete = "place/autocomplete"
	endpointDistance     = "distancematrix"
	endpointDirections   = "directions"
)

const statusOK = "OK"

// GoogleClient talks to the Google Maps web services with one API key.
// It implements every provider interface of this package.
type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breakers   map[string]*utils.Breaker
	logger     *zap.Logger
}

// NewGoogleClient creates a client. Each call is bounded by timeout and each endpoint
// sits behind its own circuit breaker.
func NewGoogleClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *GoogleClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	breakers := make(map[string]*utils.Breaker)
	for _, endpoint := range []string{endpointGeocode, endpointNearby, endpointDetails, endpointAutocomplete, endpointDistance, endpointDirections} {
		breakers[endpoint] = utils.NewBreaker("google_" + strings.ReplaceAll(endpoint, "/", "_"))
	}
	return &GoogleClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		breakers:   breakers,
		logger:     logger.With(zap.String("component", "google_places")),
	}
}

// getJSON performs one GET against endpoint and decodes the body into out.
// Only transport and HTTP level failures are errors; the caller inspects the API status.
func (c *GoogleClient) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	target := fmt.Sprintf("%s/%s/json?%s", c.baseURL, endpoint, params.Encode())

	_, err := utils.Run(c.breakers[endpoint], func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return struct{}{}, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, fmt.Errorf("%w: %s: %w", ErrUnavailable, endpoint, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return struct{}{}, fmt.Errorf("%w: %s returned HTTP %d", ErrUnavailable, endpoint, resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return struct{}{}, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, endpoint, err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		c.logger.Warn("Google request failed", zap.String("endpoint", endpoint), zap.Error(err))
	}
	return err
}

// PhotoURL formats a photo reference as a fetchable image URL.
func (c *GoogleClient) PhotoURL(photoRef string, maxWidth int) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprint(maxWidth))
	params.Set("photo_reference", photoRef)
	params.Set("key", c.apiKey)
	return fmt.Sprintf("%s/place/photo?%s", c.baseURL, params.Encode())
}
