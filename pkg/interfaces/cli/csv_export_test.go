package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kvoss/qrlp/pkg/application/dto"
	"github.com/kvoss/qrlp/pkg/domain/entities"
)

func TestExportCSV_ColumnOrderAndContent(t *testing.T) {
	solutions := []entities.ActivitySolution{
		{
			Activity: entities.Activity{RecipeKey: "craft-product", MachineKey: "assembler", Tier: 4, NQual: 2, NProd: 2, NBeaconSpeed: 0},
			Value:    3.0,
		},
	}
	result, err := dto.FromActivitySolutions(entities.Optimal, 10, solutions, nil, nil, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "recipe_name,recipe_quality,machine,num_qual_modules,num_prod_modules,num_buildings" {
		t.Errorf("header = %q, want exact spec column order", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected 1 header + 1 data row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "craft-product,legendary,assembler,2,2,3") {
		t.Errorf("data row = %q", lines[1])
	}
}
