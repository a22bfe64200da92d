// Package cli renders a SolveResult to the terminal and to CSV, in the
// style of _examples/Napolitain-solver-lnk/cmd/units/main.go's
// tablewriter+fatih/color reporting.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kvoss/qrlp/pkg/application/dto"
	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// Reporter writes a SolveResult's tables and summary to an io.Writer.
type Reporter struct {
	out io.Writer
}

// NewReporter builds a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report renders the full result: activity table, per-variable supply and
// byproduct tables, and the objective and total-buildings lines. A
// non-Optimal result prints only its status line.
func (r *Reporter) Report(result dto.SolveResult) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)

	if result.Status != entities.Optimal {
		errorColor.Fprintf(r.out, "Solver status: %s\n", result.Status)
		return
	}

	titleColor.Fprintln(r.out, "Activities")
	r.printActivities(result)

	fmt.Fprintln(r.out)
	titleColor.Fprintln(r.out, "Supplies")
	r.printNamedValues(result.Supplies)

	if len(result.Byproducts) > 0 {
		fmt.Fprintln(r.out)
		titleColor.Fprintln(r.out, "Byproducts")
		r.printNamedValues(result.Byproducts)
	}

	fmt.Fprintln(r.out)
	successColor.Fprintf(r.out, "Objective: %.4f\n", result.Objective)
	fmt.Fprintf(r.out, "Total buildings: %.2f\n", result.TotalBuildings())
}

func (r *Reporter) printActivities(result dto.SolveResult) {
	table := tablewriter.NewTable(r.out,
		tablewriter.WithHeader([]string{"Recipe", "Quality", "Machine", "Qual Modules", "Prod Modules", "Buildings"}),
	)
	for _, row := range result.SortedActivities() {
		table.Append([]string{
			row.RecipeName,
			row.RecipeQuality,
			row.Machine,
			fmt.Sprintf("%d", row.NumQualModules),
			fmt.Sprintf("%d", row.NumProdModules),
			fmt.Sprintf("%.4f", row.NumBuildings),
		})
	}
	table.Render()
}

func (r *Reporter) printNamedValues(values map[string]float64) {
	table := tablewriter.NewTable(r.out, tablewriter.WithHeader([]string{"Variable", "Value"}))
	for name, value := range values {
		table.Append([]string{name, fmt.Sprintf("%.4f", value)})
	}
	table.Render()
}
