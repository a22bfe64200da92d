package cli

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kvoss/qrlp/pkg/application/dto"
)

// csvColumns is the exact output column order from spec.md §6.
var csvColumns = []string{"recipe_name", "recipe_quality", "machine", "num_qual_modules", "num_prod_modules", "num_buildings"}

// ExportCSV writes result's activities to w in the column order spec.md §6
// requires, replacing vsinha-mrp's unimplemented CSV writer stubs with a
// working encoding/csv export.
func ExportCSV(w io.Writer, result dto.SolveResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range result.SortedActivities() {
		record := []string{
			row.RecipeName,
			row.RecipeQuality,
			row.Machine,
			fmt.Sprintf("%d", row.NumQualModules),
			fmt.Sprintf("%d", row.NumProdModules),
			fmt.Sprintf("%g", row.NumBuildings),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", row.RecipeName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
