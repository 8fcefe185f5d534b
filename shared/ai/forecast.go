package ai

import (
	"github.com/automoto/slime-soccer/shared/gamemath"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// Prediction is one forecast ball sample, Time ticks ahead (0 = next tick).
type Prediction struct {
	X, Y   float64
	VX, VY float64
	Time   int
}

// Forecast runs free-ball physics forward for at most steps ticks and stops
// at the first ground contact, which is included. Slimes are ignored.
func Forecast(b sim.Ball, t *tuning.Tuning, steps int) []Prediction {
	x, y, vx, vy := b.X, b.Y, b.VX, b.VY
	r := t.Ball.Radius
	damping := t.Ball.BounceDamping
	out := make([]Prediction, 0, steps)

	for i := 0; i < steps; i++ {
		vy += t.Ball.Gravity
		vx *= t.Ball.Damping
		x += vx
		y += vy

		if x < r {
			x = r
			vx = gamemath.Bounce(vx, damping)
		}
		if x > t.Field.Width-r {
			x = t.Field.Width - r
			vx = gamemath.Bounce(vx, damping)
		}
		if y < r {
			y = r
			vy = gamemath.Bounce(vy, damping)
		}

		out = append(out, Prediction{X: x, Y: y, VX: vx, VY: vy, Time: i})
		if y > t.BallFloor() {
			break
		}
	}
	return out
}
