package qrlp

import (
	"github.com/kvoss/qrlp/pkg/domain/entities"
	"github.com/kvoss/qrlp/pkg/domain/services/quality"
)

// Term is one signed coefficient contributed by an activity to a node.
type Term struct {
	Node  entities.Node
	Coeff float64
}

// Column is one enumerated LP activity together with the terms it
// contributes to the Mass-Balance Assembler and its module count (used by
// the Objective Builder; the Reporter does not print a module-count total).
type Column struct {
	Activity    entities.Activity
	Terms       []Term
	ModuleCount int
}

// EnumerateActivities enumerates every (tier, n_qual, n_beacon) tuple for a
// recipe running on its chosen machine and computes each activity's LP
// coefficients, following linear_solver.py.setup_recipe_var (lines 286-357).
func EnumerateActivities(recipe entities.Recipe, machine entities.Machine, profile ModuleProfile, maxTierUnlocked entities.Tier, checkSpeedModules bool, items map[string]entities.Item) []Column {
	var columns []Column

	beaconCounts := BeaconCounts(checkSpeedModules)

	for _, recipeTier := range recipe.Qualities {
		for nQual := 0; nQual <= machine.ModuleSlots; nQual++ {
			nProd := 0
			if recipe.AllowProductivity {
				nProd = machine.ModuleSlots - nQual
			}
			for _, nBeacon := range beaconCounts {
				columns = append(columns, buildColumn(recipe, machine, profile, maxTierUnlocked, items, recipeTier, nQual, nProd, nBeacon))
			}
		}
	}

	return columns
}

func buildColumn(recipe entities.Recipe, machine entities.Machine, profile ModuleProfile, maxTierUnlocked entities.Tier, items map[string]entities.Item, recipeTier entities.Tier, nQual, nProd, nBeacon int) Column {
	effSpeed := EffectiveSpeedModules(nBeacon)
	qualityPenaltyFromSpeed := effSpeed * profile.QualityPenaltyPerSpeed

	prodBonus := float64(nProd)*profile.ProdBonus + machine.ProdBonus
	speedFactor := machine.CraftingSpeed * profile.BuildingQuality * (1 +
		effSpeed*profile.SpeedBonus -
		(float64(nQual)*profile.SpeedPenaltyPerQuality + float64(nProd)*profile.SpeedPenaltyPerProd))

	activity := entities.Activity{
		RecipeKey:    recipe.Key,
		MachineKey:   machine.Key,
		Tier:         recipeTier,
		NQual:        nQual,
		NProd:        nProd,
		NBeaconSpeed: nBeacon,
	}

	var terms []Term

	for _, ing := range recipe.Ingredients {
		ingItem := items[ing.Name]
		ingredientTier := recipeTier
		if !ingItem.AllowsQuality {
			ingredientTier = 0
		}
		amountPerSecond := ing.Amount.Base() * speedFactor / recipe.EnergyRequired
		terms = append(terms, Term{
			Node:  entities.Node{ItemKey: ing.Name, Tier: ingredientTier},
			Coeff: -amountPerSecond,
		})
	}

	qualityPercent := clamp01(float64(nQual)*profile.QualityProbability - qualityPenaltyFromSpeed)

	for _, res := range recipe.Results {
		resItem := items[res.Name]
		expected := res.ExpectedAmount(prodBonus)

		if resItem.AllowsQuality {
			for e := recipeTier; e <= maxTierUnlocked; e++ {
				factor := quality.Factor(recipeTier, e, maxTierUnlocked, qualityPercent)
				coeff := expected * speedFactor * factor / recipe.EnergyRequired
				terms = append(terms, Term{Node: entities.Node{ItemKey: res.Name, Tier: e}, Coeff: coeff})
			}
		} else {
			coeff := expected * speedFactor / recipe.EnergyRequired
			terms = append(terms, Term{Node: entities.Node{ItemKey: res.Name, Tier: 0}, Coeff: coeff})
		}
	}

	return Column{
		Activity:    activity,
		Terms:       terms,
		ModuleCount: nQual + nProd + nBeacon,
	}
}
