package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/slopes/components"
)

// UpdatePhysics integrates friction, speed clamping and gravity for every
// entity carrying Physics and Object. Positions are not touched here; the
// collision system owns movement so that restraint decisions see the
// pre-move body.
func UpdatePhysics(w donburi.World) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}

		physics := components.Physics.Get(e)
		body := components.Object.Get(e).Body

		// Friction (ground only)
		if physics.OnGround {
			if body.SpeedX > physics.Friction {
				body.SpeedX -= physics.Friction
			} else if body.SpeedX < -physics.Friction {
				body.SpeedX += physics.Friction
			} else {
				body.SpeedX = 0
			}
		}

		// Clamp horizontal speed
		if body.SpeedX > physics.MaxSpeed {
			body.SpeedX = physics.MaxSpeed
		} else if body.SpeedX < -physics.MaxSpeed {
			body.SpeedX = -physics.MaxSpeed
		}

		// Gravity
		body.SpeedY += physics.Gravity
		if physics.MaxFallSpeed > 0 && body.SpeedY > physics.MaxFallSpeed {
			body.SpeedY = physics.MaxFallSpeed
		}
	})
}
