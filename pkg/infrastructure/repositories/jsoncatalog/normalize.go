package jsoncatalog

import (
	"fmt"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

func (r rawAmountRecord) toAmountSpec() (entities.AmountSpec, error) {
	if r.Amount != nil {
		return entities.FixedAmount(*r.Amount), nil
	}
	if r.AmountMin != nil && r.AmountMax != nil {
		return entities.RangeAmount(*r.AmountMin, *r.AmountMax), nil
	}
	return entities.AmountSpec{}, fmt.Errorf("%q: missing amount and amount_min/amount_max", r.Name)
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func (r rawAmountRecord) toIngredient() (entities.Ingredient, error) {
	amount, err := r.toAmountSpec()
	if err != nil {
		return entities.Ingredient{}, err
	}
	return entities.Ingredient{Name: r.Name, Amount: amount}, nil
}

func (r rawAmountRecord) toResult() (entities.Result, error) {
	amount, err := r.toAmountSpec()
	if err != nil {
		return entities.Result{}, err
	}
	return entities.Result{
		Name:                  r.Name,
		Amount:                amount,
		Probability:           orDefault(r.Probability, 1.0),
		IgnoredByProductivity: orDefault(r.IgnoredByProductivity, 0.0),
		ExtraCountFraction:    orDefault(r.ExtraCountFraction, 0.0),
	}, nil
}

// buildCatalog normalizes raw catalog data into domain entities, following
// the teacher's loader idiom (csv_loader.go's field-by-field conversion with
// wrapped errors) and linear_solver.py.__init__'s quality tagging,
// recipe-drop-on-unknown-ingredient, and resource/mining-drill synthesis
// (lines 172-278, see SPEC_FULL.md §12).
func buildCatalog(raw rawData, maxTierUnlocked entities.Tier) (*entities.Catalog, []entities.CatalogWarning, error) {
	cat := entities.NewCatalog()
	var warnings []entities.CatalogWarning

	for _, ri := range raw.Items {
		kind := entities.KindSolid
		if ri.Type == "fluid" {
			kind = entities.KindFluid
		}
		cat.Items[ri.Key] = entities.Item{
			Key:           ri.Key,
			Kind:          kind,
			AllowsQuality: kind != entities.KindFluid,
		}
	}

	for _, rm := range raw.CraftingMachines {
		cat.Machines[rm.Key] = entities.Machine{
			Key:                rm.Key,
			CraftingSpeed:      rm.CraftingSpeed,
			ModuleSlots:        rm.ModuleSlots,
			CraftingCategories: rm.CraftingCategories,
			ProdBonus:          rm.ProdBonus,
		}
	}

	for _, rd := range raw.MiningDrills {
		drill := entities.MiningDrill{
			Key:                rd.Key,
			ModuleSlots:        rd.ModuleSlots,
			MiningSpeed:        rd.MiningSpeed,
			ResourceCategories: rd.ResourceCategories,
		}
		cat.MiningDrills[rd.Key] = drill
		// Mining drills become synthetic machines (spec.md §3).
		cat.Machines[drill.Key] = drill.AsMachine()
	}

	for _, rr := range raw.Resources {
		results := make([]entities.Result, 0, len(rr.Results))
		for _, res := range rr.Results {
			result, err := res.toResult()
			if err != nil {
				return nil, nil, fmt.Errorf("resource %s: %w", rr.Key, err)
			}
			results = append(results, result)
		}
		resource := entities.Resource{
			Key:           rr.Key,
			MiningTime:    rr.MiningTime,
			Results:       results,
			Category:      rr.Category,
			RequiredFluid: rr.RequiredFluid,
			FluidAmount:   rr.FluidAmount,
		}
		if resource.Category == "" {
			resource.Category = entities.DefaultResourceCategory
		}
		cat.Resources[rr.Key] = resource
		synthesizeResource(cat, resource)
	}

	for _, rc := range raw.Recipes {
		recipe, unknownIngredient, err := buildRecipe(rc, cat.Items, maxTierUnlocked)
		if err != nil {
			return nil, nil, fmt.Errorf("recipe %s: %w", rc.Key, err)
		}
		if unknownIngredient != "" {
			warnings = append(warnings, entities.CatalogWarning{
				RecipeKey: rc.Key,
				Reason:    fmt.Sprintf("ingredient %q not found in items list, recipe dropped", unknownIngredient),
			})
			continue
		}
		cat.Recipes[recipe.Key] = recipe
	}

	return cat, warnings, nil
}

// synthesizeResource lowers a Resource into its synthetic placeholder item
// and mining recipe, per linear_solver.py.setup_resource (lines 238-263).
func synthesizeResource(cat *entities.Catalog, r entities.Resource) {
	itemKey := entities.ResourceItemKey(r.Key)
	recipeKey := entities.ResourceRecipeKey(r.Key)

	cat.Items[itemKey] = entities.Item{Key: itemKey, Kind: entities.KindSolid, AllowsQuality: false}

	ingredients := []entities.Ingredient{{Name: itemKey, Amount: entities.FixedAmount(1)}}
	if r.HasRequiredFluid() {
		ingredients = append(ingredients, entities.Ingredient{
			Name:   r.RequiredFluid,
			Amount: entities.FixedAmount(r.FluidAmount),
		})
	}

	cat.Recipes[recipeKey] = entities.Recipe{
		Key:               recipeKey,
		Category:          r.Category,
		AllowProductivity: false,
		Ingredients:       ingredients,
		Results:           r.Results,
		EnergyRequired:    r.MiningTime,
		AllowsQuality:     false,
		Qualities:         []entities.Tier{0},
	}
}

// buildRecipe converts a raw recipe, tagging allows_quality from its
// ingredients and reporting the first unknown ingredient name found (if
// any), per linear_solver.py.__init__ (lines 184-199).
func buildRecipe(rc rawRecipe, items map[string]entities.Item, maxTierUnlocked entities.Tier) (entities.Recipe, string, error) {
	ingredients := make([]entities.Ingredient, 0, len(rc.Ingredients))
	allowsQuality := false
	for _, ri := range rc.Ingredients {
		item, ok := items[ri.Name]
		if !ok {
			return entities.Recipe{}, ri.Name, nil
		}
		if item.AllowsQuality {
			allowsQuality = true
		}
		ingredient, err := ri.toIngredient()
		if err != nil {
			return entities.Recipe{}, "", err
		}
		ingredients = append(ingredients, ingredient)
	}

	results := make([]entities.Result, 0, len(rc.Results))
	for _, rr := range rc.Results {
		result, err := rr.toResult()
		if err != nil {
			return entities.Recipe{}, "", err
		}
		results = append(results, result)
	}

	qualities := []entities.Tier{0}
	if allowsQuality {
		qualities = make([]entities.Tier, maxTierUnlocked+1)
		for t := entities.Tier(0); t <= maxTierUnlocked; t++ {
			qualities[t] = t
		}
	}

	return entities.Recipe{
		Key:               rc.Key,
		Category:          rc.Category,
		AllowProductivity: rc.AllowProductivity,
		Ingredients:       ingredients,
		Results:           results,
		EnergyRequired:    rc.EnergyRequired,
		AllowsQuality:     allowsQuality,
		Qualities:         qualities,
	}, "", nil
}
