package sat

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"

	"github.com/automoto/slopes/tile"
)

func TestCollideMiss(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.Full, 0, 0, 32, 32)
	body := &Body{X: 100, Y: 100, W: 16, H: 16}

	res := s.Collide(body, tl)
	if res.Overlapping {
		t.Error("separated shapes report overlap")
	}
}

func TestCollideEmptyTile(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.Empty, 0, 0, 32, 32)
	body := &Body{X: 8, Y: 8, W: 16, H: 16}

	if res := s.Collide(body, tl); res.Overlapping {
		t.Error("EMPTY tile reports overlap")
	}
	if res := s.Collide(body, nil); res.Overlapping {
		t.Error("nil tile reports overlap")
	}
}

func TestCollideFromAbove(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.Full, 0, 0, 32, 32)
	body := &Body{X: 8, Y: -10, W: 16, H: 16}

	res := s.Collide(body, tl)
	if !res.Overlapping {
		t.Fatal("no overlap")
	}
	if math.Abs(res.Overlap-6) > 1e-9 {
		t.Errorf("overlap depth: got %v, want 6", res.Overlap)
	}
	if res.OverlapN.X() != 0 || res.OverlapN.Y() != -1 {
		t.Errorf("overlap normal: got %v, want (0, -1)", res.OverlapN)
	}
	if math.Abs(res.OverlapV.Y()+6) > 1e-9 {
		t.Errorf("overlap vector: got %v, want (0, -6)", res.OverlapV)
	}
}

func TestCollideDiagonalSlope(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.HalfBottomLeft, 0, 0, 32, 32)
	body := &Body{X: 14, Y: 2, W: 16, H: 16}

	res := s.Collide(body, tl)
	if !res.Overlapping {
		t.Fatal("no overlap")
	}

	// The minimum translation axis is the hypotenuse normal, so the
	// quantized components are diagonal, not axis-aligned.
	if res.OverlapN.X() != 1 || res.OverlapN.Y() != -1 {
		t.Errorf("overlap normal: got %v, want (1, -1)", res.OverlapN)
	}
	if math.Abs(res.Overlap-2*math.Sqrt2) > 1e-9 {
		t.Errorf("overlap depth: got %v, want %v", res.Overlap, 2*math.Sqrt2)
	}
	if math.Abs(res.OverlapV.X()-2) > 1e-9 || math.Abs(res.OverlapV.Y()+2) > 1e-9 {
		t.Errorf("overlap vector: got %v, want (2, -2)", res.OverlapV)
	}
}

func TestCollideSeparatedByDiagonalAxisOnly(t *testing.T) {
	// The body overlaps the slope's bounding box but sits entirely on the
	// open side of the hypotenuse.
	s := NewSolver()
	tl := tile.New(tile.HalfBottomLeft, 0, 0, 32, 32)
	body := &Body{X: 20, Y: 0, W: 8, H: 8}

	if res := s.Collide(body, tl); res.Overlapping {
		t.Errorf("overlap across the hypotenuse: %+v", res)
	}
}

func TestQuantizedNormalDomain(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{3.7, 1},
		{-0.002, -1},
		{0, 0},
		{1e-12, 0},
	}
	for _, c := range cases {
		if got := quantize(c.in); got != c.want {
			t.Errorf("quantize(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSeparate(t *testing.T) {
	s := NewSolver()
	body := &Body{X: 8, Y: -4, W: 16, H: 16, SpeedX: 2, SpeedY: 5}
	res := &Response{
		Overlapping: true,
		Overlap:     6,
		OverlapN:    vector.Vector{0, -1},
		OverlapV:    vector.Vector{0, -6},
	}

	s.Separate(body, res)

	if body.Y != -10 {
		t.Errorf("Y: got %v, want -10", body.Y)
	}
	if body.SpeedY != 0 {
		t.Errorf("SpeedY: got %v, want 0", body.SpeedY)
	}
	if body.SpeedX != 2 {
		t.Errorf("SpeedX changed: got %v", body.SpeedX)
	}
}

func TestSeparateIgnoresMiss(t *testing.T) {
	s := NewSolver()
	body := &Body{X: 1, Y: 2, SpeedY: 3}

	s.Separate(body, &Response{})
	s.Separate(body, nil)

	if body.X != 1 || body.Y != 2 || body.SpeedY != 3 {
		t.Errorf("body mutated: %+v", body)
	}
}

func TestCollideOnAxis(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.Full, 0, 0, 32, 32)
	body := &Body{X: 8, Y: -10, W: 16, H: 16, SpeedY: 4}

	if !s.CollideOnAxis(body, tl, vector.Vector{0, -1}) {
		t.Fatal("no separation applied")
	}
	if math.Abs(body.Bottom()) > 1e-9 {
		t.Errorf("bottom: got %v, want 0", body.Bottom())
	}
	if body.SpeedY != 0 {
		t.Errorf("SpeedY: got %v, want 0", body.SpeedY)
	}
}

func TestCollideOnAxisPreservesTangentVelocity(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.HalfBottomLeft, 0, 0, 32, 32)
	body := &Body{X: 10, Y: 2, W: 16, H: 16, SpeedX: -3}

	if !s.CollideOnAxis(body, tl, tl.Axis) {
		t.Fatal("no separation applied")
	}

	// Velocity along the surface survives; only the into-surface
	// component is removed.
	v := vector.Vector{body.SpeedX, body.SpeedY}
	into := v.X()*tl.Axis.X() + v.Y()*tl.Axis.Y()
	if into < -1e-9 {
		t.Errorf("velocity still enters the surface: %v", into)
	}
	if body.SpeedX == 0 && body.SpeedY == 0 {
		t.Error("tangential velocity removed entirely")
	}
}

func TestCollideOnAxisMiss(t *testing.T) {
	s := NewSolver()
	tl := tile.New(tile.Full, 0, 0, 32, 32)
	body := &Body{X: 100, Y: 100, W: 16, H: 16}

	if s.CollideOnAxis(body, tl, vector.Vector{0, -1}) {
		t.Error("separated shapes separated again")
	}
}
