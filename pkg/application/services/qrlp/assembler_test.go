package qrlp

import (
	"testing"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

func TestAssembler_NodesOmitsEmptyRows(t *testing.T) {
	a := NewAssembler()
	a.AddTerm(entities.Node{ItemKey: "iron-plate", Tier: 0}, "act1", 1.0)

	nodes := a.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if nodes[0].ItemKey != "iron-plate" {
		t.Errorf("node = %+v, want iron-plate", nodes[0])
	}
}

func TestAssembler_FlowConservation(t *testing.T) {
	a := NewAssembler()
	node := entities.Node{ItemKey: "iron-plate", Tier: 0}

	a.DeclareSupply(node, "input__normal__iron-plate")
	a.AddTerm(node, "activity1", -1.0)
	a.DeclareDemand(node, 5)

	varIndex := map[string]int{"input__normal__iron-plate": 0, "activity1": 1}
	rows, rhs, nodeOrder := a.BuildRows(varIndex, 2)

	if len(nodeOrder) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodeOrder))
	}
	if rows[0][0] != 1.0 {
		t.Errorf("supply coeff = %v, want 1.0", rows[0][0])
	}
	if rows[0][1] != -1.0 {
		t.Errorf("activity coeff = %v, want -1.0", rows[0][1])
	}
	if rhs[0] != 5 {
		t.Errorf("rhs = %v, want 5 (demand constant negated)", rhs[0])
	}
}

func TestAssembler_SinkCoefficientIsNegative(t *testing.T) {
	a := NewAssembler()
	node := entities.Node{ItemKey: "slag", Tier: 0}
	a.AddTerm(node, "producer", 2.0)
	a.DeclareSink(node, "byproduct__normal__slag")

	varIndex := map[string]int{"producer": 0, "byproduct__normal__slag": 1}
	rows, _, _ := a.BuildRows(varIndex, 2)

	if rows[0][1] != -1.0 {
		t.Errorf("sink coeff = %v, want -1.0", rows[0][1])
	}
}

func TestAssembler_NodeOrderIsStable(t *testing.T) {
	a := NewAssembler()
	a.AddTerm(entities.Node{ItemKey: "zinc-plate", Tier: 1}, "v", 1)
	a.AddTerm(entities.Node{ItemKey: "zinc-plate", Tier: 0}, "v", 1)
	a.AddTerm(entities.Node{ItemKey: "iron-plate", Tier: 0}, "v", 1)

	nodes := a.Nodes()
	want := []entities.Node{
		{ItemKey: "iron-plate", Tier: 0},
		{ItemKey: "zinc-plate", Tier: 0},
		{ItemKey: "zinc-plate", Tier: 1},
	}
	if len(nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(want))
	}
	for i := range want {
		if nodes[i] != want[i] {
			t.Errorf("nodes[%d] = %+v, want %+v", i, nodes[i], want[i])
		}
	}
}
