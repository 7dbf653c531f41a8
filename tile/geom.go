package tile

import "github.com/kvartborg/vector"

// EdgeState classifies one cardinal edge of a tile cell.
type EdgeState int

const (
	// EdgeEmpty means the edge carries no collidable surface, either
	// because the shape never reaches it or because internal-edge
	// flagging hid it behind a flush neighbour.
	EdgeEmpty EdgeState = iota
	// EdgeInteresting means the shape covers part of the edge.
	EdgeInteresting
	// EdgeSolid means the shape covers the whole edge.
	EdgeSolid
)

// Edges holds the per-edge state of a tile.
type Edges struct {
	Top, Bottom, Left, Right EdgeState
}

const (
	diag  = 0.7071067811865475 // 1/sqrt(2), 45-degree normals
	steep = 0.8944271909999159 // 2/sqrt(5), major component of 1:2 normals
	shal  = 0.4472135954999579 // 1/sqrt(5), minor component of 1:2 normals
)

type shapeGeometry struct {
	// points are unit-space polygon vertices as x,y pairs, scaled by the
	// tile size at construction.
	points []float64
	// axis is the preferred separation axis, pointing out of the solid
	// across the sloped face. Nil for shapes with no slope.
	axis vector.Vector
	// edges are the default edge states before internal flagging.
	edges Edges
}

var shapeGeometries = map[ShapeType]shapeGeometry{
	Full: {
		points: []float64{0, 0, 1, 0, 1, 1, 0, 1},
		edges:  Edges{EdgeSolid, EdgeSolid, EdgeSolid, EdgeSolid},
	},
	HalfBottom: {
		points: []float64{0, 0.5, 1, 0.5, 1, 1, 0, 1},
		axis:   vector.Vector{0, -1},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeInteresting, EdgeInteresting},
	},
	HalfTop: {
		points: []float64{0, 0, 1, 0, 1, 0.5, 0, 0.5},
		axis:   vector.Vector{0, 1},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeInteresting, EdgeInteresting},
	},
	HalfLeft: {
		points: []float64{0, 0, 0.5, 0, 0.5, 1, 0, 1},
		axis:   vector.Vector{1, 0},
		edges:  Edges{EdgeInteresting, EdgeInteresting, EdgeSolid, EdgeEmpty},
	},
	HalfRight: {
		points: []float64{0.5, 0, 1, 0, 1, 1, 0.5, 1},
		axis:   vector.Vector{-1, 0},
		edges:  Edges{EdgeInteresting, EdgeInteresting, EdgeEmpty, EdgeSolid},
	},
	HalfBottomLeft: {
		points: []float64{0, 0, 1, 1, 0, 1},
		axis:   vector.Vector{diag, -diag},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeSolid, EdgeEmpty},
	},
	HalfBottomRight: {
		points: []float64{1, 0, 1, 1, 0, 1},
		axis:   vector.Vector{-diag, -diag},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeEmpty, EdgeSolid},
	},
	HalfTopLeft: {
		points: []float64{0, 0, 1, 0, 0, 1},
		axis:   vector.Vector{diag, diag},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeSolid, EdgeEmpty},
	},
	HalfTopRight: {
		points: []float64{0, 0, 1, 0, 1, 1},
		axis:   vector.Vector{-diag, diag},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeEmpty, EdgeSolid},
	},
	QuarterBottomLeftLow: {
		points: []float64{0, 0.5, 1, 1, 0, 1},
		axis:   vector.Vector{shal, -steep},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeInteresting, EdgeEmpty},
	},
	QuarterBottomLeftHigh: {
		points: []float64{0, 0, 1, 0.5, 1, 1, 0, 1},
		axis:   vector.Vector{shal, -steep},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeSolid, EdgeInteresting},
	},
	QuarterBottomRightLow: {
		points: []float64{1, 0.5, 1, 1, 0, 1},
		axis:   vector.Vector{-shal, -steep},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeEmpty, EdgeInteresting},
	},
	QuarterBottomRightHigh: {
		points: []float64{0, 0.5, 1, 0, 1, 1, 0, 1},
		axis:   vector.Vector{-shal, -steep},
		edges:  Edges{EdgeEmpty, EdgeSolid, EdgeInteresting, EdgeSolid},
	},
	QuarterLeftBottomLow: {
		points: []float64{0, 0, 0.5, 1, 0, 1},
		axis:   vector.Vector{steep, -shal},
		edges:  Edges{EdgeEmpty, EdgeInteresting, EdgeSolid, EdgeEmpty},
	},
	QuarterLeftBottomHigh: {
		points: []float64{0, 0, 0.5, 0, 1, 1, 0, 1},
		axis:   vector.Vector{steep, -shal},
		edges:  Edges{EdgeInteresting, EdgeSolid, EdgeSolid, EdgeEmpty},
	},
	QuarterLeftTopLow: {
		points: []float64{0, 0, 0.5, 0, 0, 1},
		axis:   vector.Vector{steep, shal},
		edges:  Edges{EdgeInteresting, EdgeEmpty, EdgeSolid, EdgeEmpty},
	},
	QuarterLeftTopHigh: {
		points: []float64{0, 0, 1, 0, 0.5, 1, 0, 1},
		axis:   vector.Vector{steep, shal},
		edges:  Edges{EdgeSolid, EdgeInteresting, EdgeSolid, EdgeEmpty},
	},
	QuarterRightBottomLow: {
		points: []float64{1, 0, 1, 1, 0.5, 1},
		axis:   vector.Vector{-steep, -shal},
		edges:  Edges{EdgeEmpty, EdgeInteresting, EdgeEmpty, EdgeSolid},
	},
	QuarterRightBottomHigh: {
		points: []float64{0.5, 0, 1, 0, 1, 1, 0, 1},
		axis:   vector.Vector{-steep, -shal},
		edges:  Edges{EdgeInteresting, EdgeSolid, EdgeEmpty, EdgeSolid},
	},
	QuarterRightTopLow: {
		points: []float64{0.5, 0, 1, 0, 1, 1},
		axis:   vector.Vector{-steep, shal},
		edges:  Edges{EdgeInteresting, EdgeEmpty, EdgeEmpty, EdgeSolid},
	},
	QuarterRightTopHigh: {
		points: []float64{0, 0, 1, 0, 1, 1, 0.5, 1},
		axis:   vector.Vector{-steep, shal},
		edges:  Edges{EdgeSolid, EdgeInteresting, EdgeEmpty, EdgeSolid},
	},
	QuarterTopLeftLow: {
		points: []float64{0, 0, 1, 0, 0, 0.5},
		axis:   vector.Vector{shal, steep},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeInteresting, EdgeEmpty},
	},
	QuarterTopLeftHigh: {
		points: []float64{0, 0, 1, 0, 1, 0.5, 0, 1},
		axis:   vector.Vector{shal, steep},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeSolid, EdgeInteresting},
	},
	QuarterTopRightLow: {
		points: []float64{0, 0, 1, 0, 1, 0.5},
		axis:   vector.Vector{-shal, steep},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeEmpty, EdgeInteresting},
	},
	QuarterTopRightHigh: {
		points: []float64{0, 0, 1, 0, 1, 1, 0, 0.5},
		axis:   vector.Vector{-shal, steep},
		edges:  Edges{EdgeSolid, EdgeEmpty, EdgeInteresting, EdgeSolid},
	},
}
