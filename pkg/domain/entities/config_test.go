package entities

import (
	"errors"
	"testing"
)

func TestSolverConfig_Validate(t *testing.T) {
	cfg := SolverConfig{AllowedRecipes: []string{"iron-plate"}, DisallowedRecipes: []string{"copper-plate"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected ConfigError for both allowed_recipes and disallowed_recipes set")
	}
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}

	cfg = SolverConfig{AllowedCraftingMachines: []string{"a"}, DisallowedCraftingMachines: []string{"b"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected ConfigError for both machine allow/deny set")
	}

	if err := (SolverConfig{AllowedRecipes: []string{"iron-plate"}}).Validate(); err != nil {
		t.Errorf("expected no error for allow-only config, got %v", err)
	}
}

func TestSolverConfig_RecipeAllowed(t *testing.T) {
	allow := SolverConfig{AllowedRecipes: []string{"iron-plate"}}
	if !allow.RecipeAllowed("iron-plate") {
		t.Errorf("expected iron-plate to be allowed")
	}
	if allow.RecipeAllowed("copper-plate") {
		t.Errorf("expected copper-plate to be disallowed")
	}

	deny := SolverConfig{DisallowedRecipes: []string{"copper-plate"}}
	if !deny.RecipeAllowed("iron-plate") {
		t.Errorf("expected iron-plate to be allowed under deny-list")
	}
	if deny.RecipeAllowed("copper-plate") {
		t.Errorf("expected copper-plate to be denied")
	}

	open := SolverConfig{}
	if !open.RecipeAllowed("anything") {
		t.Errorf("expected everything allowed with no allow/deny list")
	}
}
