package service

import (
	"sort"
	"strings"

	"campus-compliments/internal/matcher"
	"campus-compliments/internal/metrics"
	"campus-compliments/internal/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const defaultSearchLimit = 10

// CatalogSource hands out the current building catalog.
type CatalogSource interface {
	Load() *matcher.Catalog
}

// BuildingService answers questions about the building catalog
type BuildingService struct {
	catalogs CatalogSource
}

// NewBuildingService creates a new building service
func NewBuildingService(catalogs CatalogSource) *BuildingService {
	return &BuildingService{catalogs: catalogs}
}

// List returns every building in catalog order.
func (s *BuildingService) List() []models.Building {
	return s.catalogs.Load().Buildings()
}

// Match resolves a geocoded address to a building.
func (s *BuildingService) Match(address string) (models.Building, bool) {
	b, ok := s.catalogs.Load().Match(address)
	if ok {
		metrics.MatchRequestsTotal.WithLabelValues("matched").Inc()
	} else {
		metrics.MatchRequestsTotal.WithLabelValues("unmatched").Inc()
	}
	return b, ok
}

// Rank lists every building that scored for address, best first.
func (s *BuildingService) Rank(address string) []matcher.Candidate {
	return s.catalogs.Load().Rank(address)
}

// Search finds buildings whose name fuzzily contains query, closest first.
// limit <= 0 means the default of 10.
func (s *BuildingService) Search(query string, limit int) []models.Building {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Building{}
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	buildings := s.catalogs.Load().Buildings()
	names := make([]string, len(buildings))
	for i, b := range buildings {
		names[i] = b.BuildingName
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]models.Building, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, buildings[r.OriginalIndex])
	}
	return out
}
