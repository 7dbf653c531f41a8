package restraint

import (
	"testing"

	"github.com/automoto/slopes/tile"
)

func TestDefaultRestraintsCover(t *testing.T) {
	defs := DefaultRestraints()

	// FULL, the four side halves, the four corner halves and the sixteen
	// quarters all carry rules; EMPTY carries none.
	if len(defs) != 25 {
		t.Fatalf("got %d shape entries, want 25", len(defs))
	}

	table := Compile(defs)
	for name, list := range defs {
		shape, ok := tile.ResolveType(name)
		if !ok {
			t.Errorf("unknown shape name %q", name)
			continue
		}
		rules := table.Rules(shape)
		if len(rules) != len(list) {
			t.Errorf("%s: %d rules compiled from %d defs", name, len(rules), len(list))
		}
	}

	if table.Rules(tile.Empty) != nil {
		t.Error("EMPTY has rules")
	}
}

func TestDefaultRestraintsTargetSetsResolve(t *testing.T) {
	table := Compile(DefaultRestraints())

	for name := range DefaultRestraints() {
		shape, _ := tile.ResolveType(name)
		for i, rule := range table.Rules(shape) {
			// Authored target sets must survive compilation in full; an
			// empty set would make the rule unmatchable.
			if rule.Types != nil && len(rule.Types) == 0 {
				t.Errorf("%s rule %d: empty target set", name, i)
			}
			if rule.OverlapX == nil && rule.OverlapY == nil && rule.Types == nil {
				t.Errorf("%s rule %d: unconstrained same-type rule", name, i)
			}
		}
	}
}

func TestDefaultFullRulesMatchDiagonalSeams(t *testing.T) {
	table := Compile(DefaultRestraints())
	rules := table.Rules(tile.Full)

	if len(rules) != 4 {
		t.Fatalf("got %d FULL rules, want 4", len(rules))
	}

	wantSlots := []tile.Slot{tile.Above, tile.Below, tile.Left, tile.Right}
	for i, slot := range wantSlots {
		if rules[i].Neighbour != slot {
			t.Errorf("rule %d: slot %v, want %v", i, rules[i].Neighbour, slot)
		}
		if rules[i].Separate.kind != policyDecide {
			t.Errorf("rule %d: policy %v, want decide", i, rules[i].Separate.kind)
		}
	}

	// The above-seam target set is the shapes solid along their whole
	// bottom border.
	inSet := func(rule Rule, shape tile.ShapeType) bool {
		for _, s := range rule.Types {
			if s == shape {
				return true
			}
		}
		return false
	}
	if !inSet(rules[0], tile.HalfBottomLeft) {
		t.Error("above seam misses HALF_BOTTOM_LEFT")
	}
	if inSet(rules[0], tile.HalfTopLeft) {
		t.Error("above seam includes HALF_TOP_LEFT")
	}
}

func TestDefaultQuarterRunRulesPairLowHigh(t *testing.T) {
	table := Compile(DefaultRestraints())

	rules := table.Rules(tile.QuarterBottomLeftLow)
	if len(rules) == 0 {
		t.Fatal("no rules for QUARTER_BOTTOM_LEFT_LOW")
	}
	first := rules[0]
	if first.Neighbour != tile.Left {
		t.Errorf("first rule slot: got %v, want left", first.Neighbour)
	}
	if len(first.Types) != 1 || first.Types[0] != tile.QuarterBottomLeftHigh {
		t.Errorf("first rule targets: got %v, want the high piece", first.Types)
	}
}
