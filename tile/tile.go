package tile

import (
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// Tile is a world-placed collision tile: a shape code plus the data the
// solver and the restraint engine read per collision check.
type Tile struct {
	Type ShapeType

	// World-space bounds of the cell.
	X, Y, W, H float64

	// Polygon is the collidable shape in world space. Nil for EMPTY.
	Polygon *resolv.ConvexPolygon

	// Axis is the preferred separation axis of a sloped shape, pointing
	// out of the solid. Nil for FULL and EMPTY.
	Axis vector.Vector

	// Edges holds the per-edge state; internal (flush shared) edges are
	// flagged EdgeEmpty by Map linking.
	Edges Edges

	// Per-face collision toggles, all enabled by default.
	CollideUp, CollideDown, CollideLeft, CollideRight bool

	// Neighbours maps each of the eight slots to the adjacent tile.
	// Slots are absent at map borders. Nil until the tile is linked
	// into a Map.
	Neighbours map[Slot]*Tile
}

// New builds a tile of the given shape at world position x, y with cell
// size w, h. EMPTY tiles carry no polygon and collide with nothing.
func New(t ShapeType, x, y, w, h float64) *Tile {
	tl := &Tile{
		Type: t,
		X:    x, Y: y, W: w, H: h,
		CollideUp: true, CollideDown: true, CollideLeft: true, CollideRight: true,
	}

	geom, ok := shapeGeometries[t]
	if !ok {
		return tl
	}

	points := make([]float64, len(geom.points))
	for i := 0; i < len(geom.points); i += 2 {
		points[i] = geom.points[i] * w
		points[i+1] = geom.points[i+1] * h
	}
	tl.Polygon = resolv.NewConvexPolygon(x, y, points...)

	if geom.axis != nil {
		tl.Axis = vector.Vector{geom.axis[0], geom.axis[1]}
	}
	tl.Edges = geom.edges

	return tl
}

// HasShape reports whether the tile has a resolved, collidable shape.
func (t *Tile) HasShape() bool {
	return t != nil && t.Type != Empty
}

// Sloped reports whether the tile has a preferred separation axis.
func (t *Tile) Sloped() bool {
	return t != nil && t.Axis != nil
}

func (t *Tile) Top() float64    { return t.Y }
func (t *Tile) Bottom() float64 { return t.Y + t.H }
func (t *Tile) Left() float64   { return t.X }
func (t *Tile) Right() float64  { return t.X + t.W }

func (t *Tile) CenterX() float64 { return t.X + t.W/2 }
func (t *Tile) CenterY() float64 { return t.Y + t.H/2 }

// Neighbour returns the tile in the given slot, or nil when the slot is
// absent or the tile has no neighbour graph.
func (t *Tile) Neighbour(s Slot) *Tile {
	if t.Neighbours == nil {
		return nil
	}
	return t.Neighbours[s]
}
