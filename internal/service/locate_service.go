package service

import (
	"context"
	"errors"
	"fmt"

	"campus-compliments/internal/geocoding"
	"campus-compliments/internal/models"

	"github.com/rs/zerolog"
)

const (
	defaultPlaceName   = "Selected Location"
	addressNotFound    = "Address not found"
	addressUnavailable = "Address unavailable"
)

// LocateService identifies the building at a dropped pin
type LocateService struct {
	geocoder  geocoding.Geocoder
	buildings *BuildingService
}

// NewLocateService creates a new locate service
func NewLocateService(geocoder geocoding.Geocoder, buildings *BuildingService) *LocateService {
	return &LocateService{geocoder: geocoder, buildings: buildings}
}

// Locate reverse geocodes lat/lng and matches the result against the catalog.
// A matched building is authoritative for name, code and address. Geocoding
// failures produce a coordinate-based placement instead of an error.
func (s *LocateService) Locate(ctx context.Context, lat, lng float64) (models.Placement, error) {
	coords := models.Coordinates{lng, lat}
	if !coords.Valid() {
		return models.Placement{}, invalid(fmt.Sprintf("coordinates out of range: lat=%g lng=%g", lat, lng))
	}

	feature, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoFeatures) {
			return models.Placement{
				BuildingName: defaultPlaceName,
				Address:      addressNotFound,
				Coordinates:  coords,
			}, nil
		}
		zerolog.Ctx(ctx).Warn().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("reverse_geocode_failed")
		return models.Placement{
			BuildingName: fmt.Sprintf("Location (%.4f, %.4f)", lat, lng),
			Address:      addressUnavailable,
			Coordinates:  coords,
		}, nil
	}

	if b, ok := s.buildings.Match(feature.PlaceName); ok {
		return models.Placement{
			BuildingName: b.BuildingName,
			Address:      b.FormattedAddress(),
			BuildingCode: b.BuildingCode,
			Coordinates:  coords,
			Matched:      true,
		}, nil
	}

	p := models.Placement{
		BuildingName: feature.Label(),
		Address:      feature.PlaceName,
		Coordinates:  coords,
	}
	if p.BuildingName == "" {
		p.BuildingName = defaultPlaceName
	}
	if p.Address == "" {
		p.Address = fmt.Sprintf("%.6f, %.6f", lat, lng)
	}
	return p, nil
}
