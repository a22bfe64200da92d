package repositories

import "github.com/kvoss/qrlp/pkg/domain/entities"

// CatalogRepository loads and normalizes the external data file of spec.md
// §6 into a Catalog. Normalization warnings (recipes dropped for an unknown
// ingredient) are returned alongside the Catalog rather than as errors,
// matching spec.md §7's "data-quality issues are logged, not fatal" policy.
type CatalogRepository interface {
	Load(path string, maxTierUnlocked entities.Tier) (*entities.Catalog, []entities.CatalogWarning, error)
}
