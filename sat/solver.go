package sat

import (
	"math"

	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"

	"github.com/automoto/slopes/tile"
)

// Solver runs the SAT narrow phase against tile polygons and applies
// separations. It holds no per-collision state and is safe to share.
type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

// Collide tests the body against the tile. EMPTY tiles and separated
// pairs return a non-overlapping response.
//
// The minimum translation vector is computed here by projecting both
// shapes onto every candidate separating axis; the first axis with no
// overlap separates the pair, otherwise the axis with the smallest
// overlap yields the MTV, oriented to push the body out of the tile.
func (s *Solver) Collide(body *Body, t *tile.Tile) *Response {
	res := &Response{}
	if t == nil || t.Polygon == nil {
		return res
	}

	depth := math.Inf(1)
	var mtv vector.Vector

	for _, axis := range collisionAxes(t.Polygon) {
		bodyMin, bodyMax := projectBody(body, axis)
		tileMin, tileMax := projectPolygon(t.Polygon, axis)
		if bodyMax <= tileMin || tileMax <= bodyMin {
			return res
		}

		overlap := math.Min(bodyMax, tileMax) - math.Max(bodyMin, tileMin)
		if overlap < depth {
			depth = overlap
			dir := 1.0
			if bodyMin+bodyMax < tileMin+tileMax {
				dir = -1
			}
			mtv = vector.Vector{axis.X() * overlap * dir, axis.Y() * overlap * dir}
		}
	}

	res.Overlapping = true
	res.Overlap = depth
	res.OverlapV = mtv
	res.OverlapN = vector.Vector{quantize(mtv.X()), quantize(mtv.Y())}
	return res
}

// collisionAxes returns the candidate separating axes for an AABB
// against the polygon: the two world axes plus the polygon's edge
// normals, all unit length.
func collisionAxes(p *resolv.ConvexPolygon) []vector.Vector {
	pts := p.Transformed()
	axes := make([]vector.Vector, 0, 2+len(pts))
	axes = append(axes, vector.Vector{1, 0}, vector.Vector{0, 1})
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		ex, ey := b.X()-a.X(), b.Y()-a.Y()
		length := math.Hypot(ex, ey)
		if length == 0 {
			continue
		}
		axes = append(axes, vector.Vector{-ey / length, ex / length})
	}
	return axes
}

// Separate applies the raw response: it moves the body out along the
// minimum translation vector and removes the velocity component driving
// it into the surface.
func (s *Solver) Separate(body *Body, res *Response) {
	if res == nil || !res.Overlapping {
		return
	}
	body.X += res.OverlapV.X()
	body.Y += res.OverlapV.Y()
	if res.Overlap > 0 {
		removeVelocityInto(body, res.OverlapV.Unit())
	}
}

// CollideOnAxis re-collides the body against the tile constrained to a
// single axis: penetration is measured by projecting both shapes onto
// the axis and the body is pushed out along that axis only. Reports
// whether a separation was applied.
func (s *Solver) CollideOnAxis(body *Body, t *tile.Tile, axis vector.Vector) bool {
	if t == nil || t.Polygon == nil || axis == nil {
		return false
	}
	axis = axis.Unit()

	bodyMin, bodyMax := projectBody(body, axis)
	tileMin, tileMax := projectPolygon(t.Polygon, axis)
	if bodyMax <= tileMin || tileMax <= bodyMin {
		return false
	}

	// The axis points out of the tile's solid, so the body leaves on the
	// positive side.
	push := tileMax - bodyMin
	body.X += axis.X() * push
	body.Y += axis.Y() * push
	removeVelocityInto(body, axis)
	return true
}

// removeVelocityInto zeroes the velocity component moving the body
// against the given outward unit normal.
func removeVelocityInto(body *Body, n vector.Vector) {
	vn := body.SpeedX*n.X() + body.SpeedY*n.Y()
	if vn < 0 {
		body.SpeedX -= n.X() * vn
		body.SpeedY -= n.Y() * vn
	}
}

func projectBody(body *Body, axis vector.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	xs := [2]float64{body.Left(), body.Right()}
	ys := [2]float64{body.Top(), body.Bottom()}
	for _, x := range xs {
		for _, y := range ys {
			d := x*axis.X() + y*axis.Y()
			min = math.Min(min, d)
			max = math.Max(max, d)
		}
	}
	return min, max
}

func projectPolygon(p *resolv.ConvexPolygon, axis vector.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, pt := range p.Transformed() {
		d := pt.X()*axis.X() + pt.Y()*axis.Y()
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}
