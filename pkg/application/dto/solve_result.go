// Package dto carries solver output across the application/interfaces
// boundary in the shape the Reporter and CSV exporter consume, independent
// of the LP backend's own variable-indexed representation.
package dto

import (
	"sort"
	"time"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// ActivityRow is one reported activity line: a solved building count
// together with the parsed fields the CSV exporter writes.
type ActivityRow struct {
	entities.ParsedActivityID
	NumBuildings float64
}

// SolveResult is the complete output of one solver run, ready for display
// or CSV export.
type SolveResult struct {
	Status     entities.SolverStatus
	Objective  float64
	Activities []ActivityRow
	Supplies   map[string]float64
	Byproducts map[string]float64
	SolvedAt   time.Time
}

// SortedActivities returns Activities ordered by recipe name, then quality
// name (compared as a string, not by tier), then machine, for stable report
// output.
func (r SolveResult) SortedActivities() []ActivityRow {
	rows := make([]ActivityRow, len(r.Activities))
	copy(rows, r.Activities)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].RecipeName != rows[j].RecipeName {
			return rows[i].RecipeName < rows[j].RecipeName
		}
		if rows[i].RecipeQuality != rows[j].RecipeQuality {
			return rows[i].RecipeQuality < rows[j].RecipeQuality
		}
		return rows[i].Machine < rows[j].Machine
	})
	return rows
}

// TotalBuildings sums NumBuildings across every activity, matching the
// accumulation the original OR-Tools objective folded into num_buildings_var.
func (r SolveResult) TotalBuildings() float64 {
	total := 0.0
	for _, row := range r.Activities {
		total += row.NumBuildings
	}
	return total
}

// FromActivitySolutions parses each solved activity's ID into an ActivityRow,
// decoupling the Reporter/CSV layer from entities.Activity's struct shape.
func FromActivitySolutions(status entities.SolverStatus, objective float64, activities []entities.ActivitySolution, supplies, byproducts map[string]float64, solvedAt time.Time) (SolveResult, error) {
	rows := make([]ActivityRow, 0, len(activities))
	for _, sol := range activities {
		parsed, err := entities.ParseActivityID(sol.Activity.ID())
		if err != nil {
			return SolveResult{}, err
		}
		rows = append(rows, ActivityRow{ParsedActivityID: parsed, NumBuildings: sol.Value})
	}
	return SolveResult{
		Status:     status,
		Objective:  objective,
		Activities: rows,
		Supplies:   supplies,
		Byproducts: byproducts,
		SolvedAt:   solvedAt,
	}, nil
}
