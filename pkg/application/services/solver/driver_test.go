package solver

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kvoss/qrlp/pkg/application/services/qrlp"
	"github.com/kvoss/qrlp/pkg/domain/entities"
)

func simpleCatalog() *entities.Catalog {
	cat := entities.NewCatalog()
	cat.Items["ingredient"] = entities.Item{Key: "ingredient", Kind: entities.KindSolid, AllowsQuality: true}
	cat.Items["product"] = entities.Item{Key: "product", Kind: entities.KindSolid, AllowsQuality: true}

	cat.Recipes["craft-product"] = entities.Recipe{
		Key:               "craft-product",
		Category:          "crafting",
		AllowProductivity: true,
		EnergyRequired:    1,
		AllowsQuality:     true,
		Qualities:         []entities.Tier{0, 1, 2, 3, 4},
		Ingredients: []entities.Ingredient{
			{Name: "ingredient", Amount: entities.FixedAmount(1)},
		},
		Results: []entities.Result{
			{Name: "product", Amount: entities.FixedAmount(1), Probability: 1},
		},
	}

	cat.Machines["assembler"] = entities.Machine{
		Key:                "assembler",
		CraftingSpeed:      1,
		ModuleSlots:        4,
		CraftingCategories: []string{"crafting"},
	}

	return cat
}

func solverConfig(allowByproducts bool) entities.SolverConfig {
	return entities.SolverConfig{
		QualityModuleTier:    3,
		QualityModuleQuality: "legendary",
		ProdModuleTier:       3,
		ProdModuleQuality:    "legendary",
		SpeedModuleTier:      1,
		SpeedModuleQuality:   "normal",
		MaxQualityUnlocked:   "legendary",
		AllowByproducts:      allowByproducts,
		BuildingCost:         decimal.NewFromInt(1),
		ModuleCost:           decimal.NewFromInt(1),
		Inputs: []entities.InputSpec{
			{Key: "ingredient", Quality: "normal", Cost: decimal.NewFromInt(1)},
		},
		Outputs: []entities.OutputSpec{
			{Key: "product", Quality: "legendary", Amount: 1},
		},
	}
}

// TestSolve_S2_InfeasibleWithoutByproductSinks exercises spec.md §8 scenario
// S2: demanding only the top tier with no recycling recipe and no sinks
// leaves lower-tier output with nowhere to go, so the LP must be infeasible.
func TestSolve_S2_InfeasibleWithoutByproductSinks(t *testing.T) {
	cfg := solverConfig(false)
	problem, err := qrlp.Build(simpleCatalog(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	driver := NewDriver(zerolog.Nop())
	_, err = driver.Solve(problem)
	if err == nil {
		t.Fatalf("expected infeasible solve to return an error")
	}
	var statusErr *entities.SolverStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *entities.SolverStatusError, got %T", err)
	}
	if statusErr.Status != entities.Infeasible {
		t.Errorf("status = %v, want Infeasible", statusErr.Status)
	}
}

// TestSolve_S3_FeasibleWithByproductSinks exercises spec.md §8 scenario S3:
// the same setup as S2 but with allow_byproducts = true becomes feasible,
// since lower-tier output can now drain into a sink.
func TestSolve_S3_FeasibleWithByproductSinks(t *testing.T) {
	cfg := solverConfig(true)
	problem, err := qrlp.Build(simpleCatalog(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	driver := NewDriver(zerolog.Nop())
	sol, err := driver.Solve(problem)
	if err != nil {
		t.Fatalf("expected feasible solve, got error: %v", err)
	}
	if sol.Status != entities.Optimal {
		t.Errorf("status = %v, want Optimal", sol.Status)
	}
	if len(sol.Activities) == 0 {
		t.Errorf("expected at least one non-zero activity")
	}
	if sol.Objective <= 0 {
		t.Errorf("objective = %v, want a strictly positive supply cost", sol.Objective)
	}
}

// TestSolve_S1_ReferenceObjective exercises spec.md §8 scenario S1: the
// literal no-recycling one-step case (4 module slots, tier-3 legendary
// quality/prod modules, max_tier_unlocked = legendary, single unit-cost
// normal-ingredient supply, demand 1 legendary product). Its objective must
// match the reference matrix-based prototype within 0.5% — see DESIGN.md for
// how that reference value was derived and verified against the original
// one_step_matrix_solver.py. This is exactly the kind of case that would
// catch a prod-bonus double-count regression (spec.md §9).
func TestSolve_S1_ReferenceObjective(t *testing.T) {
	// Zero out building/module cost: the reference prototype's input
	// figure is supply × ingredient-cost alone, with no machine/module cost
	// term (spec.md §8 calls it "objective (supply × cost)").
	cfg := solverConfig(true)
	cfg.BuildingCost = decimal.Zero
	cfg.ModuleCost = decimal.Zero
	problem, err := qrlp.Build(simpleCatalog(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build error: %v", err)
	}

	driver := NewDriver(zerolog.Nop())
	sol, err := driver.Solve(problem)
	if err != nil {
		t.Fatalf("expected feasible solve, got error: %v", err)
	}
	if sol.Status != entities.Optimal {
		t.Errorf("status = %v, want Optimal", sol.Status)
	}

	// Reference value reproduced by running the quality kernel's closed form
	// at the reference prototype's optimum (all 4 module slots assigned to
	// quality modules, none to productivity): 1 / (4*0.062 * 0.1^3).
	const reference = 4032.258064516129
	tolerance := reference * 0.005
	if diff := sol.Objective - reference; diff < -tolerance || diff > tolerance {
		t.Errorf("objective = %v, want within 0.5%% of %v (reference matrix-based prototype)", sol.Objective, reference)
	}
}

func TestSolve_EmptyProblemIsInfeasible(t *testing.T) {
	driver := NewDriver(zerolog.Nop())
	_, err := driver.Solve(&qrlp.Problem{})
	var statusErr *entities.SolverStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *entities.SolverStatusError, got %T (%v)", err, err)
	}
	if statusErr.Status != entities.Infeasible {
		t.Errorf("status = %v, want Infeasible", statusErr.Status)
	}
}
