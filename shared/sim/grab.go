package sim

import (
	"math"

	"github.com/automoto/slime-soccer/shared/gamemath"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// GrabState is the orbit of a held ball around its holder.
type GrabState struct {
	Angle           float64
	AngularVelocity float64
}

func grabOf(b Ball) GrabState {
	return GrabState{Angle: b.GrabAngle, AngularVelocity: b.GrabAngularVelocity}
}

// SolveGrab advances a held ball's orbit by one tick. Moving the holder winds
// the ball around it; the angle stops dead at the edge of the holder's
// forward arc (left: -π/2..π/2, right: π/2..3π/2).
func SolveGrab(grabber Slime, g GrabState, side Side, t *tuning.Tuning) GrabState {
	w := g.AngularVelocity - grabber.VX*t.Grab.AngularDrive*side.Dir()
	w *= t.Grab.AngularDamping
	a, w := clampArc(g.Angle+w, w, side)
	return GrabState{Angle: a, AngularVelocity: w}
}

func clampArc(a, w float64, side Side) (float64, float64) {
	lo, hi := -math.Pi/2, math.Pi/2
	if side == Right {
		a = gamemath.NormalizeAngle(a)
		lo, hi = math.Pi/2, 3*math.Pi/2
	}
	if a < lo {
		return lo, 0
	}
	if a > hi {
		return hi, 0
	}
	return a, w
}

// ReleaseVelocity is the ball velocity when the holder lets go. Spin built up
// while winding adds to the throw.
func ReleaseVelocity(grabber Slime, g GrabState, t *tuning.Tuning) (vx, vy float64) {
	boost := math.Abs(g.AngularVelocity) * t.Grab.ReleaseSpinScale
	vx = grabber.VX*t.Grab.ReleaseCarryScale + math.Cos(g.Angle)*(t.Grab.ReleaseBaseSpeed+boost)
	vy = grabber.VY - t.Grab.ReleaseLift + math.Sin(g.Angle)*boost*t.Grab.ReleaseVerticalSpin
	return vx, vy
}

// HeldPosition places a held ball on its orbit, kept inside the field.
func HeldPosition(grabber Slime, angle float64, t *tuning.Tuning) (x, y float64) {
	x, y = gamemath.Polar(grabber.X, grabber.Y, angle, t.HoldDistance())
	x = gamemath.Clamp(x, t.Ball.Radius, t.Field.Width-t.Ball.Radius)
	y = gamemath.Clamp(y, t.Ball.Radius, t.BallFloor())
	return x, y
}

func clearGrab(s *State) {
	if h, ok := s.Holder(); ok {
		s.Slimes[h].HasBall = false
	}
	s.Ball.GrabbedBy = None
	s.Ball.GrabAngle = 0
	s.Ball.GrabAngularVelocity = 0
}

// grab takes the ball at the raw contact angle. The orbit is pulled onto the
// forward arc by SolveGrab on the next held tick.
func grab(s *State, side Side, angle float64, t *tuning.Tuning) {
	sl := &s.Slimes[side]
	sl.HasBall = true
	s.Ball.GrabbedBy = OwnerOf(side)
	s.Ball.GrabAngle, s.Ball.GrabAngularVelocity = angle, 0
	s.Ball.X, s.Ball.Y = HeldPosition(*sl, s.Ball.GrabAngle, t)
	s.Ball.VX, s.Ball.VY = sl.VX, sl.VY
}
