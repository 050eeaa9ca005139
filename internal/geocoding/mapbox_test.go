package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapboxClient_Reverse(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expected      Feature
		expectNone    bool
		expectError   bool
		expectedLabel string
	}{
		{
			name:   "address feature",
			status: http.StatusOK,
			body: `{"features":[
				{"place_name":"607 South Mathews Avenue, Urbana, Illinois 61801, United States","text":"South Mathews Avenue","properties":{}},
				{"place_name":"ignored","text":"ignored"}]}`,
			expected: Feature{
				PlaceName: "607 South Mathews Avenue, Urbana, Illinois 61801, United States",
				Text:      "South Mathews Avenue",
			},
			expectedLabel: "South Mathews Avenue",
		},
		{
			name:          "poi name without text",
			status:        http.StatusOK,
			body:          `{"features":[{"place_name":"Quad, Urbana","properties":{"name":"Main Quad"}}]}`,
			expected:      Feature{PlaceName: "Quad, Urbana", Name: "Main Quad"},
			expectedLabel: "Main Quad",
		},
		{
			name:       "no features",
			status:     http.StatusOK,
			body:       `{"features":[]}`,
			expectNone: true,
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"message":"Not Authorized - Invalid Token"}`,
			expectError: true,
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{"features":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/geocoding/v5/mapbox.places/-88.2253,40.1057.json", r.URL.Path)
				assert.Equal(t, "pk.test", r.URL.Query().Get("access_token"))
				assert.Equal(t, "address,poi", r.URL.Query().Get("types"))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewMapboxClient(srv.URL+"/", "pk.test", time.Second)
			f, err := client.Reverse(context.Background(), 40.1057, -88.2253)

			switch {
			case tt.expectNone:
				assert.ErrorIs(t, err, ErrNoFeatures)
			case tt.expectError:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrNoFeatures)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, f)
				assert.Equal(t, tt.expectedLabel, f.Label())
			}
		})
	}
}

func TestMapboxClient_MissingToken(t *testing.T) {
	client := NewMapboxClient("http://127.0.0.1:1", "", time.Second)
	_, err := client.Reverse(context.Background(), 40, -88)
	assert.Error(t, err)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "geocode:40.10570,-88.22530", CacheKey(40.1057, -88.2253))
	assert.Equal(t, CacheKey(40.105701, -88.225301), CacheKey(40.105699, -88.225299))
}
