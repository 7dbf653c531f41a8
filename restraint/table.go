package restraint

import (
	"log"

	"github.com/automoto/slopes/tile"
)

// Table maps each tile shape type to its ordered restraint rules. Rule
// order is significant: the first matching rule wins. A Table is built
// once by Compile and read-only afterwards.
type Table struct {
	rules map[tile.ShapeType][]Rule
	defs  map[string][]Def
}

// Compile turns authored shorthand definitions, keyed by shape-type
// name, into a canonical table. Configuration problems (unknown type
// name, unknown direction keyword) are reported and degrade locally;
// compilation never fails.
func Compile(defs map[string][]Def) *Table {
	t := &Table{
		rules: make(map[tile.ShapeType][]Rule, len(defs)),
		defs:  defs,
	}
	for name, list := range defs {
		t.install(name, list)
	}
	return t
}

func (t *Table) install(name string, defs []Def) {
	shape, ok := tile.ResolveType(name)
	if !ok {
		log.Printf("restraint: unknown shape type %q in rule table", name)
		return
	}

	rules := make([]Rule, 0, len(defs))
	for _, def := range defs {
		rules = append(rules, compileRule(def))
	}
	t.rules[shape] = rules
}

func compileRule(def Def) Rule {
	rule := Rule{
		Neighbour: def.Neighbour,
		OverlapX:  def.OverlapX,
		OverlapY:  def.OverlapY,
		Separate:  def.Separate,
	}

	if def.Direction != "" {
		rule.OverlapX, rule.OverlapY = resolveOverlaps(def.Direction)
	}

	if def.Types != nil {
		rule.Types = make([]tile.ShapeType, 0, len(def.Types))
		for _, name := range def.Types {
			shape, ok := tile.ResolveType(name)
			if !ok {
				log.Printf("restraint: unknown shape type %q in rule target set", name)
				continue
			}
			rule.Types = append(rule.Types, shape)
		}
	}

	// Anything other than an explicit suppress, axis or decision means
	// allow-default.
	if rule.Separate.kind == policyUnset {
		rule.Separate = AllowDefault()
	}

	return rule
}

// resolveOverlaps maps a direction keyword to its overlap-normal ranges.
func resolveOverlaps(direction string) (overlapX, overlapY *Range) {
	switch direction {
	case "up":
		return Exact(0), Between(-1, 0)
	case "down":
		return Exact(0), Between(0, 1)
	case "left":
		return Between(-1, 0), Exact(0)
	case "right":
		return Between(0, 1), Exact(0)
	case "any":
		return nil, nil
	}
	log.Printf("restraint: unknown overlap direction %q", direction)
	return nil, nil
}

// Rules returns the compiled rule list for a shape type, nil when the
// type has no entry.
func (t *Table) Rules(shape tile.ShapeType) []Rule {
	return t.rules[shape]
}

// Defs returns the uncompiled definitions the table was built from, for
// introspection and debugging.
func (t *Table) Defs() map[string][]Def {
	return t.defs
}
