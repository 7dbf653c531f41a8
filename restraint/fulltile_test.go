package restraint

import (
	"testing"

	"github.com/automoto/slopes/sat"
	"github.com/automoto/slopes/tile"
)

func fullTile() *tile.Tile {
	return tile.New(tile.Full, 0, 0, 32, 32)
}

func forcedAxis(t *testing.T, p Policy) (x, y float64) {
	t.Helper()
	if p.kind != policyForceAxis {
		t.Fatalf("policy kind: got %v, want force-axis", p.kind)
	}
	return p.axis.X(), p.axis.Y()
}

func TestFullTileSeparationLanding(t *testing.T) {
	tl := fullTile()
	body := &sat.Body{X: 8, Y: -10, W: 16, H: 16, SpeedY: 4}

	x, y := forcedAxis(t, FullTileSeparation(body, tl, &sat.Response{}))
	if x != 0 || y != -1 {
		t.Errorf("axis: got (%v, %v), want (0, -1)", x, y)
	}
}

func TestFullTileSeparationCeiling(t *testing.T) {
	tl := fullTile()
	body := &sat.Body{X: 8, Y: 26, W: 16, H: 16, SpeedY: -4}

	x, y := forcedAxis(t, FullTileSeparation(body, tl, &sat.Response{}))
	if x != 0 || y != 1 {
		t.Errorf("axis: got (%v, %v), want (0, 1)", x, y)
	}
}

func TestFullTileSeparationWallFromLeft(t *testing.T) {
	tl := fullTile()
	body := &sat.Body{X: -10, Y: 8, W: 16, H: 16, SpeedX: 4}

	x, y := forcedAxis(t, FullTileSeparation(body, tl, &sat.Response{}))
	if x != -1 || y != 0 {
		t.Errorf("axis: got (%v, %v), want (-1, 0)", x, y)
	}
}

func TestFullTileSeparationWallFromRight(t *testing.T) {
	tl := fullTile()
	body := &sat.Body{X: 26, Y: 8, W: 16, H: 16, SpeedX: -4}

	x, y := forcedAxis(t, FullTileSeparation(body, tl, &sat.Response{}))
	if x != 1 || y != 0 {
		t.Errorf("axis: got (%v, %v), want (1, 0)", x, y)
	}
}

func TestFullTileSeparationVerticalWinsPriority(t *testing.T) {
	// Falling faster than moving sideways near the top edge: the up
	// branch fires even though the body also qualifies horizontally.
	tl := fullTile()
	body := &sat.Body{X: -10, Y: -10, W: 16, H: 16, SpeedX: 2, SpeedY: 4}

	x, y := forcedAxis(t, FullTileSeparation(body, tl, &sat.Response{}))
	if x != 0 || y != -1 {
		t.Errorf("axis: got (%v, %v), want (0, -1)", x, y)
	}
}

func TestFullTileSeparationNeedsDominantVelocity(t *testing.T) {
	tl := fullTile()

	// Sideways speed dominates: not a landing.
	body := &sat.Body{X: 8, Y: -10, W: 16, H: 16, SpeedX: 6, SpeedY: 4}
	if p := FullTileSeparation(body, tl, &sat.Response{}); p.kind != policyAllow {
		t.Errorf("dominant sideways speed: got %v, want allow-default", p.kind)
	}

	// No velocity at all: nothing to decide.
	still := &sat.Body{X: 8, Y: 8, W: 16, H: 16}
	if p := FullTileSeparation(still, tl, &sat.Response{}); p.kind != policyAllow {
		t.Errorf("still body: got %v, want allow-default", p.kind)
	}
}

func TestFullTileSeparationRespectsInternalEdges(t *testing.T) {
	tl := fullTile()
	tl.Edges.Top = tile.EdgeEmpty
	body := &sat.Body{X: 8, Y: -10, W: 16, H: 16, SpeedY: 4}

	if p := FullTileSeparation(body, tl, &sat.Response{}); p.kind != policyAllow {
		t.Errorf("internal top edge: got %v, want allow-default", p.kind)
	}
}

func TestFullTileSeparationRespectsCollideFlags(t *testing.T) {
	tl := fullTile()
	tl.CollideUp = false
	body := &sat.Body{X: 8, Y: -10, W: 16, H: 16, SpeedY: 4}

	if p := FullTileSeparation(body, tl, &sat.Response{}); p.kind != policyAllow {
		t.Errorf("one-way tile: got %v, want allow-default", p.kind)
	}
}
