package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Coordinates is a [longitude, latitude] pair, matching the map client's ordering.
type Coordinates [2]float64

// Lng returns the longitude.
func (c Coordinates) Lng() float64 { return c[0] }

// Lat returns the latitude.
func (c Coordinates) Lat() float64 { return c[1] }

// Valid reports whether both components are within geographic bounds.
func (c Coordinates) Valid() bool {
	return c[0] >= -180 && c[0] <= 180 && c[1] >= -90 && c[1] <= 90
}

// UnmarshalJSON requires exactly two numbers; short or long arrays are errors.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinates: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates: want [longitude, latitude], got %d values", len(pair))
	}
	c[0], c[1] = pair[0], pair[1]
	return nil
}

// Compliment is a short message pinned to a building or location.
type Compliment struct {
	ID           string      `json:"_id"`
	BuildingCode string      `json:"buildingCode"`
	BuildingName string      `json:"buildingName"`
	Text         string      `json:"text"`
	Coordinates  Coordinates `json:"coordinates"`
	Timestamp    time.Time   `json:"timestamp"`
	Likes        int         `json:"likes"`
}

// NewCompliment is the client-supplied part of a compliment. Coordinates is nil
// when the field was absent.
type NewCompliment struct {
	BuildingCode string       `json:"buildingCode"`
	BuildingName string       `json:"buildingName"`
	Text         string       `json:"text"`
	Coordinates  *Coordinates `json:"coordinates"`
}

// ComplimentFilter narrows a feed listing. Zero value lists everything.
type ComplimentFilter struct {
	Query        string
	BuildingCode string
}

// Stats summarises the feed.
type Stats struct {
	TotalCompliments int `json:"totalCompliments"`
	ActiveLocations  int `json:"activeLocations"`
	TodayCompliments int `json:"todayCompliments"`
}
