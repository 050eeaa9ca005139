// Package geocoding resolves coordinates to human readable addresses.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campus-compliments/internal/metrics"

	"github.com/rs/zerolog"
)

// ErrNoFeatures is returned when the provider knows nothing at a location.
var ErrNoFeatures = errors.New("geocoding: no features at location")

// Feature is the first reverse geocoding hit for a coordinate.
type Feature struct {
	PlaceName string `json:"place_name"`
	Text      string `json:"text"`
	Name      string `json:"name,omitempty"`
}

// Label returns the short display name of the feature, or "" if it has none.
func (f Feature) Label() string {
	if f.Text != "" {
		return f.Text
	}
	return f.Name
}

// Geocoder resolves a coordinate to its nearest address or point of interest.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (Feature, error)
}

// MapboxClient uses the Mapbox Geocoding v5 places endpoint.
type MapboxClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewMapboxClient creates a Mapbox geocoder. baseURL is normally https://api.mapbox.com.
func NewMapboxClient(baseURL, token string, timeout time.Duration) *MapboxClient {
	return &MapboxClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type mapboxResponse struct {
	Features []struct {
		PlaceName  string `json:"place_name"`
		Text       string `json:"text"`
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
	Message string `json:"message"`
}

// Reverse looks up addresses and points of interest at lat/lng.
func (m *MapboxClient) Reverse(ctx context.Context, lat, lng float64) (Feature, error) {
	if m.token == "" {
		return Feature{}, errors.New("geocoding: missing mapbox token")
	}

	params := url.Values{}
	params.Set("access_token", m.token)
	params.Set("types", "address,poi")

	coords := strconv.FormatFloat(lng, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
	reqURL := m.baseURL + "/geocoding/v5/mapbox.places/" + coords + ".json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Feature{}, fmt.Errorf("geocoding: build request: %w", err)
	}

	l := zerolog.Ctx(ctx)
	start := time.Now()
	metrics.GeocodeRequestsTotal.Inc()
	defer func() {
		metrics.GeocodeDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		metrics.GeocodeFailTotal.Inc()
		return Feature{}, fmt.Errorf("geocoding: request failed: %w", err)
	}
	defer resp.Body.Close()

	var body mapboxResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		metrics.GeocodeFailTotal.Inc()
		return Feature{}, fmt.Errorf("geocoding: mapbox returned status %d: %s", resp.StatusCode, body.Message)
	}
	if decodeErr != nil {
		metrics.GeocodeFailTotal.Inc()
		return Feature{}, fmt.Errorf("geocoding: decoding response: %w", decodeErr)
	}

	l.Debug().Float64("lat", lat).Float64("lng", lng).Int("features", len(body.Features)).
		Dur("duration", time.Since(start)).Msg("mapbox_reverse")

	if len(body.Features) == 0 {
		return Feature{}, ErrNoFeatures
	}

	first := body.Features[0]
	return Feature{
		PlaceName: first.PlaceName,
		Text:      first.Text,
		Name:      first.Properties.Name,
	}, nil
}
