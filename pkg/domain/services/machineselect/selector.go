// Package machineselect implements the Machine Selector: given a recipe's
// crafting category, it picks the single dominant permitted machine.
package machineselect

import (
	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// SelectDominant filters machines to those permitted and whose crafting
// categories include category, then picks the machine that simultaneously
// maximizes ModuleSlots, ProdBonus and CraftingSpeed. It returns (nil, nil)
// when no machine qualifies (the caller should skip the recipe with a
// warning), and a *entities.ConfigError when more than one machine ties for
// dominance (spec.md §4.2).
func SelectDominant(category string, machines map[string]entities.Machine, cfg entities.SolverConfig) (*entities.Machine, error) {
	var candidates []entities.Machine
	for _, m := range machines {
		if cfg.MachineAllowed(m.Key) && m.Allows(category) {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	maxSlots := candidates[0].ModuleSlots
	maxProd := candidates[0].ProdBonus
	maxSpeed := candidates[0].CraftingSpeed
	for _, c := range candidates[1:] {
		if c.ModuleSlots > maxSlots {
			maxSlots = c.ModuleSlots
		}
		if c.ProdBonus > maxProd {
			maxProd = c.ProdBonus
		}
		if c.CraftingSpeed > maxSpeed {
			maxSpeed = c.CraftingSpeed
		}
	}

	var dominant []entities.Machine
	for _, c := range candidates {
		if c.ModuleSlots == maxSlots && c.ProdBonus == maxProd && c.CraftingSpeed == maxSpeed {
			dominant = append(dominant, c)
		}
	}
	if len(dominant) != 1 {
		return nil, &entities.ConfigError{Reason: "ambiguous dominant machine for category " + category}
	}
	return &dominant[0], nil
}
