package qrlp

import (
	"fmt"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// itemVarID renders the "{quality}__{item_key}" identifier used to key
// supply/output/byproduct variables onto a node, per linear_solver.py's
// get_item_id (line 118).
func itemVarID(itemKey string, tier entities.Tier) string {
	return fmt.Sprintf("%s__%s", tier, itemKey)
}

func inputVarName(itemID string) string     { return "input__" + itemID }
func outputVarName(itemID string) string    { return "output__" + itemID }
func byproductVarName(itemID string) string { return "byproduct__" + itemID }
