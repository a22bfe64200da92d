package entities

// Machine is a crafting machine (or a mining drill lowered into one).
type Machine struct {
	Key                string
	CraftingSpeed      float64
	ModuleSlots        int
	CraftingCategories []string
	ProdBonus          float64
}

// Allows reports whether the machine can run the given crafting category.
func (m Machine) Allows(category string) bool {
	for _, c := range m.CraftingCategories {
		if c == category {
			return true
		}
	}
	return false
}

// MiningDrill mines a resource category; lowered into a synthetic Machine
// with crafting_speed=mining_speed and prod_bonus=0 (see SPEC_FULL.md §12).
type MiningDrill struct {
	Key                string
	ModuleSlots        int
	MiningSpeed        float64
	ResourceCategories []string
}

// AsMachine lowers a mining drill into its synthetic crafting-machine form.
func (d MiningDrill) AsMachine() Machine {
	return Machine{
		Key:                d.Key,
		CraftingSpeed:      d.MiningSpeed,
		ModuleSlots:        d.ModuleSlots,
		CraftingCategories: d.ResourceCategories,
		ProdBonus:          0,
	}
}

// Resource is a mineable deposit, lowered into a synthetic item+recipe pair
// by the Catalog (see SPEC_FULL.md §12's resource/mining-drill synthesis).
type Resource struct {
	Key           string
	MiningTime    float64
	Results       []Result
	Category      string
	RequiredFluid string
	FluidAmount   float64
}

// HasRequiredFluid reports whether this resource needs an input fluid (e.g. coal + heavy-oil).
func (r Resource) HasRequiredFluid() bool {
	return r.RequiredFluid != ""
}

// ResourceItemKey returns the synthetic placeholder item key for a resource.
func ResourceItemKey(resourceKey string) string {
	return resourceKey + "-resource"
}

// ResourceRecipeKey returns the synthetic mining recipe key for a resource.
func ResourceRecipeKey(resourceKey string) string {
	return resourceKey + "-mining"
}

// DefaultResourceCategory is used when a Resource's JSON record omits `category`.
const DefaultResourceCategory = "basic-solid"
