package ai

import "github.com/automoto/slime-soccer/shared/sim"

// frame is the field as seen by a brain playing from the left.
type frame struct {
	self, opp sim.Slime
	ball      sim.Ball
	width     float64
	mirrored  bool
}

func newFrame(v View, width float64) frame {
	f := frame{
		self:     v.Sim.Slimes[v.Side],
		opp:      v.Sim.Slimes[v.Side.Opponent()],
		ball:     v.Sim.Ball,
		width:    width,
		mirrored: v.Side == sim.Right,
	}
	if f.mirrored {
		f.self.X, f.self.VX = f.x(f.self.X), -f.self.VX
		f.opp.X, f.opp.VX = f.x(f.opp.X), -f.opp.VX
		f.ball.X, f.ball.VX = f.x(f.ball.X), -f.ball.VX
	}
	return f
}

// x converts a position between world and frame coordinates. It is its own
// inverse.
func (f frame) x(x float64) float64 {
	if f.mirrored {
		return f.width - x
	}
	return x
}

// vx converts a horizontal velocity between world and frame coordinates.
func (f frame) vx(vx float64) float64 {
	if f.mirrored {
		return -vx
	}
	return vx
}
