// Package solver wraps the continuous linear-programming backend behind
// the Solver Driver of spec.md §4.6: it takes an assembled Problem, invokes
// the LP solver, and maps the raw outcome onto entities.SolverStatus and a
// pruned set of non-zero activity solutions.
package solver

import (
	"errors"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/kvoss/qrlp/pkg/application/services/qrlp"
	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// zeroTolerance is the threshold below which a solved activity value is
// treated as zero and dropped from the reported solution (spec.md §4.6).
const zeroTolerance = 1e-9

// Solution is the outcome of solving a Problem: every non-zero variable's
// value, tagged by its VarMeta role.
type Solution struct {
	Status     entities.SolverStatus
	Objective  float64
	Activities []entities.ActivitySolution
	Supplies   map[string]float64
	Byproducts map[string]float64
}

// Driver solves an assembled Problem and reports the outcome.
type Driver struct {
	Logger zerolog.Logger
}

// NewDriver builds a Driver with the given logger.
func NewDriver(logger zerolog.Logger) *Driver {
	return &Driver{Logger: logger}
}

// Solve runs the LP and maps gonum's outcome onto a Solution or a
// *entities.SolverStatusError when the problem is not Optimal.
func (d *Driver) Solve(problem *qrlp.Problem) (*Solution, error) {
	numVars := problem.NumVars()
	numConstraints := problem.NumConstraints()

	if numConstraints == 0 || numVars == 0 {
		return nil, &entities.SolverStatusError{
			Status:         entities.Infeasible,
			NumActivities:  numVars,
			NumConstraints: numConstraints,
			Underlying:     errors.New("empty problem: no constraints or no variables"),
		}
	}

	flatA := make([]float64, 0, numConstraints*numVars)
	for _, row := range problem.A {
		flatA = append(flatA, row...)
	}
	A := mat.NewDense(numConstraints, numVars, flatA)

	optF, optX, err := lp.Simplex(problem.C, A, problem.B, 0, nil)
	if err != nil {
		status := statusFor(err)
		d.Logger.Warn().Err(err).Str("status", status.String()).
			Int("activities", numVars).Int("constraints", numConstraints).
			Msg("solver did not reach an optimal solution")
		return nil, &entities.SolverStatusError{
			Status:         status,
			NumActivities:  numVars,
			NumConstraints: numConstraints,
			Underlying:     err,
		}
	}

	sol := &Solution{
		Status:     entities.Optimal,
		Objective:  optF,
		Supplies:   make(map[string]float64),
		Byproducts: make(map[string]float64),
	}

	for i, value := range optX {
		if value < zeroTolerance {
			continue
		}
		meta := problem.VarMeta[i]
		switch meta.Kind {
		case qrlp.VarActivity:
			sol.Activities = append(sol.Activities, entities.ActivitySolution{
				Activity: *meta.Activity,
				Value:    value,
			})
		case qrlp.VarInput:
			sol.Supplies[meta.Name] = value
		case qrlp.VarByproduct:
			sol.Byproducts[meta.Name] = value
		}
	}

	d.Logger.Debug().Float64("objective", optF).Int("activities", len(sol.Activities)).Msg("solver reached optimal solution")

	return sol, nil
}

// statusFor maps a gonum lp error to the SolverStatus taxonomy of
// spec.md §4.6/§7. Any error not recognized as infeasibility or
// unboundedness is reported as NumericalFailure.
func statusFor(err error) entities.SolverStatus {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return entities.Infeasible
	case errors.Is(err, lp.ErrUnbounded):
		return entities.Unbounded
	default:
		return entities.NumericalFailure
	}
}
