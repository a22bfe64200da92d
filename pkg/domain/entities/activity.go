package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Activity is one LP column: a (recipe, machine, tier, module assignment,
// beacon count) combination. Its solved value is the average number of
// buildings of this exact configuration.
type Activity struct {
	RecipeKey    string
	MachineKey   string
	Tier         Tier
	NQual        int
	NProd        int
	NBeaconSpeed int
}

// ID renders the activity identifier grammar from spec.md §6:
// "{quality_name}__{recipe_key}__{machine_key}__{n_qual}-qual__{n_prod}-prod__{n_beacon}-beaconed-speed"
func (a Activity) ID() string {
	return fmt.Sprintf("%s__%s__%s__%d-qual__%d-prod__%d-beaconed-speed",
		a.Tier, a.RecipeKey, a.MachineKey, a.NQual, a.NProd, a.NBeaconSpeed)
}

// ParsedActivityID is the decomposition of an activity ID string, used by
// the CSV exporter to round-trip the six reported columns without needing
// the original Activity struct (matching linear_solver.py's parse_recipe_id).
type ParsedActivityID struct {
	RecipeQuality  string
	RecipeName     string
	Machine        string
	NumQualModules int
	NumProdModules int
}

// ParseActivityID inverts Activity.ID(). It returns an error if id does not
// have the expected six "__"-separated fields.
func ParseActivityID(id string) (ParsedActivityID, error) {
	fields := strings.Split(id, "__")
	if len(fields) != 6 {
		return ParsedActivityID{}, fmt.Errorf("activity id %q: expected 6 fields, got %d", id, len(fields))
	}
	numQual, err := strconv.Atoi(strings.TrimSuffix(fields[3], "-qual"))
	if err != nil {
		return ParsedActivityID{}, fmt.Errorf("activity id %q: bad qual-module count: %w", id, err)
	}
	numProd, err := strconv.Atoi(strings.TrimSuffix(fields[4], "-prod"))
	if err != nil {
		return ParsedActivityID{}, fmt.Errorf("activity id %q: bad prod-module count: %w", id, err)
	}
	return ParsedActivityID{
		RecipeQuality:  fields[0],
		RecipeName:     fields[1],
		Machine:        fields[2],
		NumQualModules: numQual,
		NumProdModules: numProd,
	}, nil
}

// ActivitySolution pairs an activity with its solved building count.
type ActivitySolution struct {
	Activity Activity
	Value    float64
}
