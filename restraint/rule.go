// Package restraint decides whether a raw SAT collision response against
// a tile should be applied, replaced with a forced axis-aligned
// separation, or suppressed. Naive per-tile SAT on a mosaic of sloped and
// square tiles collides against internal (shared) edges — edges that
// exist on an individual tile's convex shape but are functionally
// invisible because a neighbour continues the surface. The restraint
// tables in this package describe those seams declaratively.
package restraint

import (
	"github.com/kvartborg/vector"

	"github.com/automoto/slopes/sat"
	"github.com/automoto/slopes/tile"
)

// Range matches one overlap-normal component, inclusive on both ends.
// An exact match is a range with Min == Max. A nil *Range on a rule
// leaves that axis unconstrained.
type Range struct {
	Min, Max float64
}

// Exact returns a range matching only v.
func Exact(v float64) *Range {
	return &Range{Min: v, Max: v}
}

// Between returns the inclusive range [min, max].
func Between(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

func (r *Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DecideFunc computes a separation policy from the live collision. It
// must be pure: no mutation of body, tile or response.
type DecideFunc func(body *sat.Body, t *tile.Tile, res *sat.Response) Policy

type policyKind int

const (
	policyUnset policyKind = iota
	policyAllow
	policySuppress
	policyForceAxis
	policyDecide
)

// Policy is the separation decision of a matched rule, a tagged variant
// over suppress / allow-default / force-axis / decide. The zero Policy is
// "unspecified" and compiles to allow-default.
type Policy struct {
	kind   policyKind
	axis   vector.Vector
	decide DecideFunc
}

// Suppress applies no separation at all for this tile; the neighbour
// already provides the correct face.
func Suppress() Policy {
	return Policy{kind: policySuppress}
}

// AllowDefault separates along the tile's preferred slope axis when it
// has one, and otherwise lets the raw response through.
func AllowDefault() Policy {
	return Policy{kind: policyAllow}
}

// ForceAxis separates along the given axis regardless of the raw
// response direction.
func ForceAxis(axis vector.Vector) Policy {
	return Policy{kind: policyForceAxis, axis: axis}
}

// Decide defers the decision to fn at evaluation time.
func Decide(fn DecideFunc) Policy {
	return Policy{kind: policyDecide, decide: fn}
}

// Def is a restraint rule in the authored shorthand: a direction keyword
// stands in for explicit overlap ranges, and neighbour shape types are
// given by name. Defs are compiled once into Rules; nothing on the
// per-collision path reads a Def.
type Def struct {
	// Neighbour is the slot to inspect.
	Neighbour tile.Slot

	// Direction is one of "up", "down", "left", "right" or "any". When
	// set it supplies the overlap ranges; unknown keywords are reported
	// and contribute no constraint.
	Direction string

	// Explicit overlap-normal constraints, used when Direction is empty.
	OverlapX, OverlapY *Range

	// Types names the neighbour shape types the rule applies to. Nil
	// restricts the rule to neighbours of the subject tile's own type.
	Types []string

	// Separate is the separation policy; the zero value compiles to
	// allow-default.
	Separate Policy
}

// Rule is the compiled, canonical form of a Def. The hot path operates
// only on shape-type codes, never on names.
type Rule struct {
	Neighbour          tile.Slot
	OverlapX, OverlapY *Range
	Types              []tile.ShapeType // nil means same type as subject
	Separate           Policy
}

// matches reports whether the rule's type and overlap conditions hold
// for the given neighbour and response.
func (r *Rule) matches(subject, neighbour *tile.Tile, res *sat.Response) bool {
	if r.Types != nil {
		member := false
		for _, t := range r.Types {
			if t == neighbour.Type {
				member = true
				break
			}
		}
		if !member {
			return false
		}
	} else if neighbour.Type != subject.Type {
		return false
	}

	if r.OverlapX != nil && !r.OverlapX.contains(res.OverlapN.X()) {
		return false
	}
	if r.OverlapY != nil && !r.OverlapY.contains(res.OverlapN.Y()) {
		return false
	}
	return true
}
