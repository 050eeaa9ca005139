package models

import "time"

// Feedback is a free-form message about the app itself.
type Feedback struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Email     string    `json:"email,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Placement describes what sits at a dropped pin.
type Placement struct {
	BuildingName string      `json:"buildingName"`
	Address      string      `json:"address"`
	BuildingCode string      `json:"buildingCode,omitempty"`
	Coordinates  Coordinates `json:"coordinates"`
	Matched      bool        `json:"matched"`
}
