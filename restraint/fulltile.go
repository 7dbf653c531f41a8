package restraint

import (
	"math"

	"github.com/kvartborg/vector"

	"github.com/automoto/slopes/sat"
	"github.com/automoto/slopes/tile"
)

// FullTileSeparation is the eager-separation decision for square tiles
// bordering diagonal neighbours. A body approaching a full tile near a
// shared seam can be pushed along the raw, possibly diagonal, SAT normal
// and tunnel through the seam; this forces the axis a flat run of tiles
// would have produced.
//
// The checks run in a fixed priority order (up, down, left, right). Each
// fires when the body's relevant edge sits inside the tile on that side,
// the corresponding face is collidable and not an internal seam, and the
// velocity component entering through that face dominates the
// perpendicular one. When no check fires the raw response is allowed
// through unchanged.
func FullTileSeparation(body *sat.Body, t *tile.Tile, res *sat.Response) Policy {
	vx := body.SpeedX
	vy := body.SpeedY

	// Body falling onto the tile's top half: push it back up.
	if body.Bottom() > t.Top() && body.Bottom() <= t.CenterY() &&
		t.CollideUp && t.Edges.Top != tile.EdgeEmpty &&
		vy > 0 && vy > math.Abs(vx) {
		return ForceAxis(vector.Vector{0, -1})
	}

	// Body rising into the tile's bottom half: push it back down.
	if body.Bottom() > t.CenterY() && body.Top() < t.Bottom() &&
		t.CollideDown && t.Edges.Bottom != tile.EdgeEmpty &&
		vy < 0 && -vy > math.Abs(vx) {
		return ForceAxis(vector.Vector{0, 1})
	}

	// Body entering the tile's left half moving right: push it back left.
	if body.Right() > t.Left() && body.Right() <= t.CenterX() &&
		t.CollideLeft && t.Edges.Left != tile.EdgeEmpty &&
		vx > 0 && vx > math.Abs(vy) {
		return ForceAxis(vector.Vector{-1, 0})
	}

	// Body entering the tile's right half moving left: push it back right.
	if body.Left() >= t.CenterX() && body.Left() < t.Right() &&
		t.CollideRight && t.Edges.Right != tile.EdgeEmpty &&
		vx < 0 && -vx > math.Abs(vy) {
		return ForceAxis(vector.Vector{1, 0})
	}

	return AllowDefault()
}
