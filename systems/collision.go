package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/slopes/components"
	"github.com/automoto/slopes/restraint"
	"github.com/automoto/slopes/sat"
	"github.com/automoto/slopes/tile"
)

// UpdateCollisions moves every physics body by its speed and resolves it
// against the tile map, one axis at a time. Horizontal movement resolves
// first so that a body sliding along a floor never catches on the seam
// between two tiles.
//
// For each overlapped tile the raw SAT response is offered to the
// restraint engine; only when the engine lets it through is the default
// separation applied.
func UpdateCollisions(w donburi.World, m *tile.Map, eng *restraint.Engine, solver *sat.Solver) {
	components.Object.Each(w, func(e *donburi.Entry) {
		body := components.Object.Get(e).Body

		body.X += body.SpeedX
		resolveAgainst(body, m, eng, solver)

		vy := body.SpeedY
		body.Y += vy
		resolveAgainst(body, m, eng, solver)

		if e.HasComponent(components.Physics) {
			physics := components.Physics.Get(e)
			// Landing or riding a slope bleeds downward speed off during
			// the vertical pass.
			physics.OnGround = vy > 0 && body.SpeedY < vy
		}
	})
}

func resolveAgainst(body *sat.Body, m *tile.Map, eng *restraint.Engine, solver *sat.Solver) {
	for _, t := range m.TilesIn(body.X, body.Y, body.W, body.H) {
		res := solver.Collide(body, t)
		if !res.Overlapping {
			continue
		}
		if eng.Restrain(body, t, res) {
			solver.Separate(body, res)
		}
	}
}
