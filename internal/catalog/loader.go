// Package catalog loads the campus building catalog and keeps it fresh.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"campus-compliments/internal/matcher"
	"campus-compliments/internal/models"
)

// document is the on-disk shape of the building dataset.
type document struct {
	Buildings []models.Building `json:"buildings"`
}

// Decode reads a {"buildings": [...]} document. Entries without a name are
// rejected so a truncated export cannot silently shrink the catalog.
func Decode(r io.Reader) ([]models.Building, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for i, b := range doc.Buildings {
		if strings.TrimSpace(b.BuildingName) == "" {
			return nil, fmt.Errorf("catalog: building %d has no name", i)
		}
	}
	return doc.Buildings, nil
}

// ReadFile decodes the building dataset at path.
func ReadFile(path string) ([]models.Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadFile builds a catalog from the dataset at path.
func LoadFile(path string) (*matcher.Catalog, error) {
	buildings, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return matcher.NewCatalog(buildings), nil
}

// BuildingLister is the repository method the database loader needs.
type BuildingLister interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
}

// LoadRepository builds a catalog from the buildings table.
func LoadRepository(ctx context.Context, repo BuildingLister) (*matcher.Catalog, error) {
	buildings, err := repo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return matcher.NewCatalog(buildings), nil
}
