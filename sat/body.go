// Package sat provides the narrow-phase collision collaborators: the
// axis-aligned physics body, the overlap response, and the solver that
// performs the SAT test and applies separations.
package sat

// Body is an axis-aligned physics body.
type Body struct {
	X, Y, W, H float64

	SpeedX float64
	SpeedY float64
}

func (b *Body) Top() float64    { return b.Y }
func (b *Body) Bottom() float64 { return b.Y + b.H }
func (b *Body) Left() float64   { return b.X }
func (b *Body) Right() float64  { return b.X + b.W }

func (b *Body) CenterX() float64 { return b.X + b.W/2 }
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }
