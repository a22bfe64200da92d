package entities

import "github.com/shopspring/decimal"

// SolverConfig is the Configuration record of spec.md §6, loaded verbatim
// from a JSON document. Tier-valued fields are carried as quality names
// (e.g. "legendary") and resolved via ParseTier at Builder time.
type SolverConfig struct {
	Data string `json:"data"`

	QualityModuleTier    int    `json:"quality_module_tier"`
	QualityModuleQuality string `json:"quality_module_quality"`

	ProdModuleTier    int    `json:"prod_module_tier"`
	ProdModuleQuality string `json:"prod_module_quality"`

	SpeedModuleTier    int    `json:"speed_module_tier"`
	SpeedModuleQuality string `json:"speed_module_quality"`
	CheckSpeedModules  bool   `json:"check_speed_modules"`

	MaxQualityUnlocked string  `json:"max_quality_unlocked"`
	BuildingQuality    float64 `json:"building_quality"`
	AllowByproducts    bool    `json:"allow_byproducts"`

	AllowedRecipes    []string `json:"allowed_recipes,omitempty"`
	DisallowedRecipes []string `json:"disallowed_recipes,omitempty"`

	AllowedCraftingMachines    []string `json:"allowed_crafting_machines,omitempty"`
	DisallowedCraftingMachines []string `json:"disallowed_crafting_machines,omitempty"`

	ModuleCost   decimal.Decimal `json:"module_cost"`
	BuildingCost decimal.Decimal `json:"building_cost"`

	Inputs  []InputSpec  `json:"inputs"`
	Outputs []OutputSpec `json:"outputs"`
}

// InputSpec declares a free supply variable. If Resource is true, Key names
// a Resource and the supply maps to its synthetic "${key}-resource" item.
type InputSpec struct {
	Key      string          `json:"key"`
	Quality  string          `json:"quality"`
	Resource bool            `json:"resource"`
	Cost     decimal.Decimal `json:"cost"`
}

// OutputSpec declares a demand constant on an (item, tier) node.
type OutputSpec struct {
	Key     string  `json:"key"`
	Quality string  `json:"quality"`
	Amount  float64 `json:"amount"`
}

// ResolvedMaxQualityUnlocked parses MaxQualityUnlocked into a Tier.
func (c SolverConfig) ResolvedMaxQualityUnlocked() (Tier, error) {
	return ParseTier(c.MaxQualityUnlocked)
}

// ResolvedQuality parses an InputSpec's quality name into a Tier.
func (i InputSpec) ResolvedQuality() (Tier, error) {
	return ParseTier(i.Quality)
}

// ResolvedQuality parses an OutputSpec's quality name into a Tier.
func (o OutputSpec) ResolvedQuality() (Tier, error) {
	return ParseTier(o.Quality)
}

// Validate enforces the allow/deny mutual-exclusion rule from spec.md §4.2/§7
// before any Catalog or LP construction begins.
func (c SolverConfig) Validate() error {
	if len(c.AllowedRecipes) > 0 && len(c.DisallowedRecipes) > 0 {
		return &ConfigError{Reason: "cannot set both allowed_recipes and disallowed_recipes"}
	}
	if len(c.AllowedCraftingMachines) > 0 && len(c.DisallowedCraftingMachines) > 0 {
		return &ConfigError{Reason: "cannot set both allowed_crafting_machines and disallowed_crafting_machines"}
	}
	return nil
}

// RecipeAllowed reports whether recipeKey passes the allow/deny filter.
// Callers must have already checked Validate().
func (c SolverConfig) RecipeAllowed(recipeKey string) bool {
	return allowedBy(recipeKey, c.AllowedRecipes, c.DisallowedRecipes)
}

// MachineAllowed reports whether machineKey passes the allow/deny filter.
func (c SolverConfig) MachineAllowed(machineKey string) bool {
	return allowedBy(machineKey, c.AllowedCraftingMachines, c.DisallowedCraftingMachines)
}

func allowedBy(key string, allowed, disallowed []string) bool {
	if len(allowed) > 0 {
		return contains(allowed, key)
	}
	if len(disallowed) > 0 {
		return !contains(disallowed, key)
	}
	return true
}

func contains(list []string, key string) bool {
	for _, item := range list {
		if item == key {
			return true
		}
	}
	return false
}
