package qrlp

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kvoss/qrlp/pkg/domain/entities"
	"github.com/kvoss/qrlp/pkg/domain/services/machineselect"
)

// Build assembles a standard-form Problem from a Catalog and SolverConfig,
// following spec.md §4's data flow: Catalog -> Activity Enumerator
// (consulting the Quality Kernel and Machine Selector) -> Mass-Balance
// Assembler, wired with declared supplies/demands/byproduct sinks -> Objective
// Builder -> Problem, ready for the Solver Driver.
func Build(catalog *entities.Catalog, cfg entities.SolverConfig, logger zerolog.Logger) (*Problem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	profile, err := ResolveModuleProfile(cfg)
	if err != nil {
		return nil, err
	}

	maxTierUnlocked, err := cfg.ResolvedMaxQualityUnlocked()
	if err != nil {
		return nil, err
	}

	assembler := NewAssembler()
	objective := NewObjective()

	buildingCost, _ := cfg.BuildingCost.Float64()
	moduleCost, _ := cfg.ModuleCost.Float64()

	var activityVars []string
	activityMeta := make(map[string]entities.Activity)

	for _, key := range sortedRecipeKeys(catalog.Recipes) {
		recipe := catalog.Recipes[key]
		if !cfg.RecipeAllowed(recipe.Key) {
			continue
		}
		machine, err := machineselect.SelectDominant(recipe.Category, catalog.Machines, cfg)
		if err != nil {
			return nil, err
		}
		if machine == nil {
			logger.Warn().Str("recipe", recipe.Key).Msg("no permitted machine for recipe category, skipping")
			continue
		}

		columns := EnumerateActivities(recipe, *machine, profile, maxTierUnlocked, cfg.CheckSpeedModules, catalog.Items)
		for _, col := range columns {
			varName := col.Activity.ID()
			activityVars = append(activityVars, varName)
			activityMeta[varName] = col.Activity

			for _, term := range col.Terms {
				assembler.AddTerm(term.Node, varName, term.Coeff)
			}
			objective.AddCost(varName, buildingCost+moduleCost*float64(col.ModuleCount))
		}
	}

	declaredInputs := make(map[entities.Node]bool)
	declaredOutputs := make(map[entities.Node]bool)
	supplySet := make(map[string]bool)

	var supplyVars []string
	for _, input := range cfg.Inputs {
		tier, err := input.ResolvedQuality()
		if err != nil {
			return nil, err
		}
		itemKey := input.Key
		if input.Resource {
			itemKey = entities.ResourceItemKey(input.Key)
		}
		node := entities.Node{ItemKey: itemKey, Tier: tier}
		varName := inputVarName(itemVarID(itemKey, tier))
		assembler.DeclareSupply(node, varName)
		cost, _ := input.Cost.Float64()
		objective.AddCost(varName, cost)
		supplyVars = append(supplyVars, varName)
		supplySet[varName] = true
		declaredInputs[node] = true
	}

	for _, output := range cfg.Outputs {
		tier, err := output.ResolvedQuality()
		if err != nil {
			return nil, err
		}
		node := entities.Node{ItemKey: output.Key, Tier: tier}
		assembler.DeclareDemand(node, output.Amount)
		declaredOutputs[node] = true
	}

	// Byproduct sink scope: only for nodes that are neither a declared input
	// nor a declared output (spec.md §4.4).
	var sinkVars []string
	sinkSet := make(map[string]bool)
	if cfg.AllowByproducts {
		for _, node := range assembler.Nodes() {
			if declaredInputs[node] || declaredOutputs[node] {
				continue
			}
			varName := byproductVarName(itemVarID(node.ItemKey, node.Tier))
			assembler.DeclareSink(node, varName)
			sinkVars = append(sinkVars, varName)
			sinkSet[varName] = true
		}
	}

	allVars := make([]string, 0, len(activityVars)+len(supplyVars)+len(sinkVars))
	allVars = append(allVars, activityVars...)
	allVars = append(allVars, supplyVars...)
	allVars = append(allVars, sinkVars...)

	varIndex := make(map[string]int, len(allVars))
	varMeta := make([]VarMeta, len(allVars))
	for i, name := range allVars {
		varIndex[name] = i
		switch {
		case supplySet[name]:
			varMeta[i] = VarMeta{Kind: VarInput, Name: name}
		case sinkSet[name]:
			varMeta[i] = VarMeta{Kind: VarByproduct, Name: name}
		default:
			act := activityMeta[name]
			varMeta[i] = VarMeta{Kind: VarActivity, Name: name, Activity: &act}
		}
	}

	rows, rhs, nodeOrder := assembler.BuildRows(varIndex, len(allVars))
	c := objective.BuildVector(varIndex, len(allVars))

	return &Problem{
		VarNames:  allVars,
		VarMeta:   varMeta,
		A:         rows,
		B:         rhs,
		C:         c,
		NodeOrder: nodeOrder,
	}, nil
}

func sortedRecipeKeys(recipes map[string]entities.Recipe) []string {
	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
