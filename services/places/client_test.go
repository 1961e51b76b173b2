package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vibenav/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test helpers
// ============================================================================

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GoogleClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGoogleClient(server.URL, "test-key", 2*time.Second, nil), server
}

func routes(m map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := m[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

// ============================================================================
// Geocoding
// ============================================================================

func TestResolve_ReturnsFirstResult(t *testing.T) {
	var gotAddress, gotKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":48.85,"lng":2.35}}},{"geometry":{"location":{"lat":1,"lng":1}}}]}`))
	})

	coords, ok := client.Resolve(context.Background(), "Paris")

	require.True(t, ok)
	assert.Equal(t, models.Coordinates{Lat: 48.85, Lng: 2.35}, coords)
	assert.Equal(t, "Paris", gotAddress)
	assert.Equal(t, "test-key", gotKey)
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		input   string
	}{
		{"empty text", routes(nil), "  "},
		{"zero results", routes(map[string]string{"/geocode/json": `{"status":"ZERO_RESULTS","results":[]}`}), "Atlantis"},
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }, "Paris"},
		{"bad json", routes(map[string]string{"/geocode/json": `{not json`}), "Paris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)
			_, ok := client.Resolve(context.Background(), tt.input)
			assert.False(t, ok)
		})
	}
}

func TestReverseGeocode_PrefersLocality(t *testing.T) {
	client, _ := newTestClient(t, routes(map[string]string{
		"/geocode/json": `{"status":"OK","results":[{"formatted_address":"1 Main St, Springfield","address_components":[
			{"long_name":"Illinois","types":["administrative_area_level_1"]},
			{"long_name":"Springfield","types":["locality","political"]}]}]}`,
	}))

	addr, err := client.ReverseGeocode(context.Background(), 39.78, -89.65)

	require.NoError(t, err)
	assert.Equal(t, "Springfield", addr.City)
	assert.Equal(t, "1 Main St, Springfield", addr.Address)
	assert.Equal(t, 39.78, addr.Lat)
}

func TestReverseGeocode_FallsBackToAdminArea(t *testing.T) {
	client, _ := newTestClient(t, routes(map[string]string{
		"/geocode/json": `{"status":"OK","results":[{"address_components":[
			{"long_name":"Cook County","types":["administrative_area_level_2"]}]}]}`,
	}))

	addr, err := client.ReverseGeocode(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, "Cook County", addr.City)
	assert.Equal(t, unknownAddress, addr.Address)
}

func TestReverseGeocode_FailureKeepsDefaults(t *testing.T) {
	client, _ := newTestClient(t, routes(map[string]string{
		"/geocode/json": `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`,
	}))

	addr, err := client.ReverseGeocode(context.Background(), 1, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
	assert.Equal(t, unknownCity, addr.City)
	assert.Equal(t, unknownAddress, addr.Address)
}

// ============================================================================
// Nearby search and details
// ============================================================================

func TestSearch_MapsResults(t *testing.T) {
	var query map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		query = map[string]string{
			"location": r.URL.Query().Get("location"),
			"radius":   r.URL.Query().Get("radius"),
			"type":     r.URL.Query().Get("type"),
		}
		_, _ = w.Write([]byte(`{"status":"OK","results":[
			{"place_id":"a","name":"Cafe A","rating":4.6,"price_level":2,"vicinity":"Rue 1","geometry":{"location":{"lat":1.5,"lng":2.5}},"types":["cafe"],"photos":[{"photo_reference":"ref-a"}]},
			{"place_id":"b","name":"Cafe B","geometry":{"location":{"lat":3,"lng":4}},"types":["cafe","food"]}]}`))
	})

	candidates := client.Search(context.Background(), models.Coordinates{Lat: 10, Lng: 20}, "cafe", 0)

	require.Len(t, candidates, 2)
	assert.Equal(t, "10,20", query["location"])
	assert.Equal(t, "10000", query["radius"])
	assert.Equal(t, "cafe", query["type"])

	a := candidates[0]
	assert.Equal(t, "a", a.ProviderID)
	require.NotNil(t, a.Rating)
	assert.Equal(t, 4.6, *a.Rating)
	require.NotNil(t, a.PriceLevel)
	assert.Equal(t, 2, *a.PriceLevel)
	assert.Equal(t, "ref-a", a.PhotoRef)
	assert.Equal(t, "Rue 1", a.Vicinity)

	b := candidates[1]
	assert.Nil(t, b.Rating)
	assert.Nil(t, b.PriceLevel)
	assert.Empty(t, b.PhotoRef)
}

func TestSearch_EmptyOnFailure(t *testing.T) {
	client, _ := newTestClient(t, routes(map[string]string{
		"/place/nearbysearch/json": `{"status":"OVER_QUERY_LIMIT","results":[{"place_id":"x"}]}`,
	}))

	candidates := client.Search(context.Background(), models.Coordinates{Lat: 1, Lng: 1}, "park", 500)

	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestDetails(t *testing.T) {
	var fields string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fields = r.URL.Query().Get("fields")
		if r.URL.Query().Get("place_id") == "missing" {
			_, _ = w.Write([]byte(`{"status":"NOT_FOUND"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK","result":{
			"website":"https://a.example","international_phone_number":"+33 1 23",
			"formatted_address":"1 Rue, Paris",
			"opening_hours":{"open_now":true,"weekday_text":["Monday: 9-5","Tuesday: 9-5"]},
			"reviews":[{"author_name":"Ann","rating":5,"text":"Cozy spot","time":1700000000}]}}`))
	})

	details, ok := client.Details(context.Background(), "a")
	require.True(t, ok)
	assert.Equal(t, "https://a.example", details.Website)
	assert.Equal(t, "+33 1 23", details.Phone())
	assert.True(t, details.OpenNow)
	assert.Len(t, details.WeekdayText, 2)
	require.Len(t, details.Reviews, 1)
	assert.Equal(t, "Ann", details.Reviews[0].AuthorName)
	assert.Contains(t, fields, "international_phone_number")
	assert.Contains(t, fields, "opening_hours")

	_, ok = client.Details(context.Background(), "missing")
	assert.False(t, ok)
}

// ============================================================================
// Distance matrix
// ============================================================================

func TestCompute_AlignsAndPads(t *testing.T) {
	var destinations string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		destinations = r.URL.Query().Get("destinations")
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[
			{"status":"OK","distance":{"text":"1.2 km","value":1200},"duration":{"text":"5 mins","value":300}},
			{"status":"ZERO_RESULTS"}]}]}`))
	})
	dests := []models.Coordinates{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 3}}

	elements, ok := client.Compute(context.Background(), models.Coordinates{Lat: 0.5, Lng: 0.5}, dests)

	require.True(t, ok)
	require.Len(t, elements, 3)
	assert.Equal(t, models.DistanceElement{DistanceText: "1.2 km", TravelTimeText: "5 mins", OK: true}, elements[0])
	assert.False(t, elements[1].OK)
	assert.False(t, elements[2].OK)
	assert.Equal(t, 3, len(strings.Split(destinations, "|")))
}

func TestCompute_Unavailable(t *testing.T) {
	client, _ := newTestClient(t, routes(map[string]string{
		"/distancematrix/json": `{"status":"INVALID_REQUEST","rows":[]}`,
	}))

	_, ok := client.Compute(context.Background(), models.Coordinates{}, []models.Coordinates{{Lat: 1, Lng: 1}})
	assert.False(t, ok)
}

func TestCompute_NoDestinationsSkipsCall(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	elements, ok := client.Compute(context.Background(), models.Coordinates{}, nil)

	assert.True(t, ok)
	assert.Empty(t, elements)
	assert.False(t, called)
}

// ============================================================================
// Autocomplete, photos and directions
// ============================================================================

func TestAutocomplete(t *testing.T) {
	var types string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		types = r.URL.Query().Get("types")
		_, _ = w.Write([]byte(`{"status":"OK","predictions":[{"place_id":"p1","description":"Paris, France",
			"structured_formatting":{"main_text":"Paris","secondary_text":"France"},"types":["locality"]}]}`))
	})

	assert.Empty(t, client.Autocomplete(context.Background(), "P"))

	predictions := client.Autocomplete(context.Background(), "Par")
	require.Len(t, predictions, 1)
	assert.Equal(t, "(cities)", types)
	assert.Equal(t, "Paris", predictions[0].MainText)
	assert.Equal(t, "France", predictions[0].SecondaryText)
}

func TestPhotoURL(t *testing.T) {
	client := NewGoogleClient("https://maps.example/api/", "k", time.Second, nil)

	got := client.PhotoURL("ref-1", 600)

	assert.True(t, strings.HasPrefix(got, "https://maps.example/api/place/photo?"))
	assert.Contains(t, got, "maxwidth=600")
	assert.Contains(t, got, "photo_reference=ref-1")
	assert.Contains(t, got, "key=k")
}

func TestDirectionsURL(t *testing.T) {
	dest := models.Coordinates{Lat: 1.5, Lng: 2.5}
	origin := models.Coordinates{Lat: 3, Lng: 4}

	assert.Equal(t, "https://www.google.com/maps/dir/3,4/1.5,2.5", DirectionsURL(dest, &origin))
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=1.5,2.5", DirectionsURL(dest, nil))
}

func TestDirections(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("destination") == "9,9" {
			_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"overview_polyline":{"points":"abc123"}}]}`))
	})

	polyline, err := client.Directions(context.Background(), models.Coordinates{Lat: 1, Lng: 1}, models.Coordinates{Lat: 2, Lng: 2})
	require.NoError(t, err)
	assert.Equal(t, "abc123", polyline)

	_, err = client.Directions(context.Background(), models.Coordinates{Lat: 1, Lng: 1}, models.Coordinates{Lat: 9, Lng: 9})
	assert.ErrorIs(t, err, ErrNoRoute)
}
