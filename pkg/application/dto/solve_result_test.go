package dto

import (
	"testing"
	"time"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

func TestFromActivitySolutions_ParsesAndSorts(t *testing.T) {
	solutions := []entities.ActivitySolution{
		{
			Activity: entities.Activity{RecipeKey: "zeta-recipe", MachineKey: "assembler", Tier: 0, NQual: 1, NProd: 2, NBeaconSpeed: 0},
			Value:    3.5,
		},
		{
			Activity: entities.Activity{RecipeKey: "alpha-recipe", MachineKey: "assembler", Tier: 4, NQual: 0, NProd: 4, NBeaconSpeed: 0},
			Value:    1.25,
		},
	}

	result, err := FromActivitySolutions(entities.Optimal, 42.0, solutions, map[string]float64{"x": 1}, nil, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.Optimal {
		t.Errorf("status = %v, want Optimal", result.Status)
	}
	if len(result.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(result.Activities))
	}

	sorted := result.SortedActivities()
	if sorted[0].RecipeName != "alpha-recipe" {
		t.Errorf("sorted[0] = %q, want alpha-recipe first", sorted[0].RecipeName)
	}

	total := result.TotalBuildings()
	if total != 4.75 {
		t.Errorf("total buildings = %v, want 4.75", total)
	}
}
