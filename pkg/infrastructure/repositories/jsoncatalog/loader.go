// Package jsoncatalog loads the catalog data file of spec.md §6 from JSON
// and normalizes it into a *entities.Catalog, following the teacher's
// csv_loader.go idiom (loader struct, explicit field conversion, wrapped
// per-record errors) adapted from CSV rows to JSON arrays.
package jsoncatalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// Loader reads and normalizes a catalog data file.
type Loader struct{}

// NewLoader creates a catalog Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements repositories.CatalogRepository.
func (l *Loader) Load(path string, maxTierUnlocked entities.Tier) (*entities.Catalog, []entities.CatalogWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var raw rawData
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	return buildCatalog(raw, maxTierUnlocked)
}
