package restraint

import (
	"github.com/kvartborg/vector"

	"github.com/automoto/slopes/sat"
	"github.com/automoto/slopes/tile"
)

// AxisCollider re-collides a body against a tile constrained to a single
// axis. *sat.Solver satisfies it.
type AxisCollider interface {
	CollideOnAxis(body *sat.Body, t *tile.Tile, axis vector.Vector) bool
}

// Engine evaluates restraint rules against live collisions. It is built
// once, holds an immutable table between reconfigurations, and keeps no
// per-collision state, so a single Engine may serve concurrent checks.
type Engine struct {
	table  *Table
	solver AxisCollider
}

// NewEngine returns an engine loaded with the default restraint table.
func NewEngine(solver AxisCollider) *Engine {
	return &Engine{
		table:  Compile(DefaultRestraints()),
		solver: solver,
	}
}

// Table returns the engine's current restraint table.
func (e *Engine) Table() *Table {
	return e.table
}

// SetRestraints installs or replaces the rule list for one shape type,
// given in the authored shorthand. Not part of the hot path.
func (e *Engine) SetRestraints(typeName string, defs []Def) {
	if e.table == nil {
		e.table = Compile(map[string][]Def{typeName: defs})
		return
	}
	if e.table.defs == nil {
		e.table.defs = make(map[string][]Def)
	}
	e.table.defs[typeName] = defs
	e.table.install(typeName, defs)
}

// Restrain judges a collision response for a tile. It returns true when
// default SAT handling should continue unmodified, and false when a rule
// consumed the collision — in which case any forced axis-aligned
// separation has already been applied through the solver.
//
// Missing data never fails: no overlap, no neighbour graph, no table
// entry, an empty neighbour slot or an unresolved neighbour shape all
// fall through to default handling.
func (e *Engine) Restrain(body *sat.Body, t *tile.Tile, res *sat.Response) bool {
	if res == nil || !res.Overlapping || t == nil || t.Neighbours == nil {
		return true
	}

	rules := e.table.Rules(t.Type)
	if rules == nil {
		return true
	}

	for i := range rules {
		rule := &rules[i]

		neighbour := t.Neighbour(rule.Neighbour)
		if !neighbour.HasShape() {
			continue
		}
		if !rule.matches(t, neighbour, res) {
			continue
		}

		// First match wins; later rules are not evaluated.
		return e.apply(rule.Separate, body, t, res)
	}

	return true
}

// apply resolves a matched rule's policy and carries it out.
func (e *Engine) apply(p Policy, body *sat.Body, t *tile.Tile, res *sat.Response) bool {
	if p.kind == policyDecide {
		p = p.decide(body, t, res)
		if p.kind == policyDecide || p.kind == policyUnset {
			p = AllowDefault()
		}
	}

	switch p.kind {
	case policySuppress:
		return false
	case policyForceAxis:
		if e.solver != nil {
			e.solver.CollideOnAxis(body, t, p.axis)
		}
		return false
	default:
		// Allow-default: a sloped tile constrains separation to its
		// preferred axis; a tile without one lets the raw response
		// through to default handling.
		if t.Sloped() {
			if e.solver != nil {
				e.solver.CollideOnAxis(body, t, t.Axis)
			}
			return false
		}
		return true
	}
}
