package qrlp

import "github.com/kvoss/qrlp/pkg/domain/entities"

// VarKind distinguishes an LP column's role, used by the Solver Driver and
// Reporter to interpret a solved value.
type VarKind int

const (
	// VarActivity is a Column's building-count variable.
	VarActivity VarKind = iota
	// VarInput is a free supply variable declared by an InputSpec.
	VarInput
	// VarOutput is a free satisfied-demand variable for an OutputSpec.
	VarOutput
	// VarByproduct is a free sink variable for an unconsumed, undeclared item.
	VarByproduct
)

// VarMeta describes one LP column for reporting purposes.
type VarMeta struct {
	Kind     VarKind
	Name     string
	Activity *entities.Activity // non-nil iff Kind == VarActivity
	Node     entities.Node
}

// Problem is the fully assembled standard-form LP: minimize C·x subject to
// A·x = B, x >= 0, ready to hand to the Solver Driver.
type Problem struct {
	VarNames  []string
	VarMeta   []VarMeta
	A         [][]float64
	B         []float64
	C         []float64
	NodeOrder []entities.Node
}

// NumVars returns the column count.
func (p *Problem) NumVars() int { return len(p.VarNames) }

// NumConstraints returns the row count.
func (p *Problem) NumConstraints() int { return len(p.B) }
