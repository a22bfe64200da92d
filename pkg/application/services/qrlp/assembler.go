package qrlp

import (
	"sort"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

type varTerm struct {
	VarName string
	Coeff   float64
}

type nodeAccum struct {
	terms    []varTerm
	constant float64
}

// Assembler is the Mass-Balance Assembler: it maintains one row per
// (item, tier) node, accumulating signed coefficients from activities,
// supplies, byproduct sinks, and demand constants (spec.md §4.4).
type Assembler struct {
	nodes map[entities.Node]*nodeAccum
}

// NewAssembler creates an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{nodes: make(map[entities.Node]*nodeAccum)}
}

func (a *Assembler) accum(node entities.Node) *nodeAccum {
	acc, ok := a.nodes[node]
	if !ok {
		acc = &nodeAccum{}
		a.nodes[node] = acc
	}
	return acc
}

// AddTerm appends a coefficient on a variable to node's row (used by
// activities, whose coefficients may be positive or negative).
func (a *Assembler) AddTerm(node entities.Node, varName string, coeff float64) {
	acc := a.accum(node)
	acc.terms = append(acc.terms, varTerm{VarName: varName, Coeff: coeff})
}

// DeclareSupply adds a free ≥0 supply variable with coefficient +1.
func (a *Assembler) DeclareSupply(node entities.Node, varName string) {
	a.AddTerm(node, varName, 1)
}

// DeclareSink adds a free ≥0 byproduct sink variable with coefficient −1.
func (a *Assembler) DeclareSink(node entities.Node, varName string) {
	a.AddTerm(node, varName, -1)
}

// DeclareDemand records a constant draw of amount on node.
func (a *Assembler) DeclareDemand(node entities.Node, amount float64) {
	acc := a.accum(node)
	acc.constant -= amount
}

// Nodes returns, in a stable order, every node that has at least one term or
// a demand constant; nodes never touched by AddTerm or DeclareDemand do not
// appear.
func (a *Assembler) Nodes() []entities.Node {
	nodes := make([]entities.Node, 0, len(a.nodes))
	for n := range a.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].ItemKey != nodes[j].ItemKey {
			return nodes[i].ItemKey < nodes[j].ItemKey
		}
		return nodes[i].Tier < nodes[j].Tier
	})
	return nodes
}

// BuildRows renders the assembled constraints as dense A rows and an RHS
// vector, ordered per Nodes(), using varIndex to place each term's
// coefficient in the right column. Equality form is Ax = b: since demand
// constants are folded into each row, b is the negated accumulated
// constant (Σ terms + constant = 0 ⟺ Σ terms = −constant).
func (a *Assembler) BuildRows(varIndex map[string]int, numVars int) (rows [][]float64, rhs []float64, nodeOrder []entities.Node) {
	nodeOrder = a.Nodes()
	rows = make([][]float64, len(nodeOrder))
	rhs = make([]float64, len(nodeOrder))
	for i, node := range nodeOrder {
		acc := a.nodes[node]
		row := make([]float64, numVars)
		for _, t := range acc.terms {
			if idx, ok := varIndex[t.VarName]; ok {
				row[idx] += t.Coeff
			}
		}
		rows[i] = row
		rhs[i] = -acc.constant
	}
	return rows, rhs, nodeOrder
}
