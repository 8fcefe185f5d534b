package sim

import (
	"math"

	"github.com/automoto/slime-soccer/shared/gamemath"
)

// contacts resolves slime/ball touches, left slime first. The right slime sees
// whatever the left slime did to the ball this tick, so a right holder that
// is knocked loose but still grabbing takes the ball straight back.
func (e *Engine) contacts(s State) State {
	e.bp.syncSlimes(s)

	for _, side := range [2]Side{Left, Right} {
		e.bp.syncBall(s.Ball)
		if !e.bp.near(side) {
			continue
		}

		sl := s.Slimes[side]
		dx, dy := s.Ball.X-sl.X, s.Ball.Y-sl.Y
		if gamemath.Length(dx, dy) >= e.t.ContactDistance() {
			continue
		}
		angle := math.Atan2(dy, dx)

		switch {
		case s.Ball.GrabbedBy != None && s.Ball.GrabbedBy != OwnerOf(side):
			if e.knocksOut(sl) {
				clearGrab(&s)
				s.Ball.VX = math.Cos(angle)*e.t.Grab.KnockoutImpulse + sl.VX
				s.Ball.VY = math.Sin(angle)*e.t.Grab.KnockoutImpulse + sl.VY
			}
		case s.Ball.GrabbedBy == None && sl.IsGrabbing:
			grab(&s, side, angle, e.t)
		case s.Ball.GrabbedBy == None && !sl.IsGrabbing && s.Ball.Y < sl.Y:
			s.Ball = e.reflect(s.Ball, sl, angle)
		}
	}
	return s
}

func (e *Engine) knocksOut(sl Slime) bool {
	return gamemath.Length(sl.VX, sl.VY) > e.t.Grab.KnockoutSpeed ||
		math.Abs(sl.VY) > e.t.Grab.KnockoutVerticalSpeed
}

// reflect pushes the ball out to the dome surface and sends it off along the
// contact normal, faster than it came in.
func (e *Engine) reflect(b Ball, sl Slime, angle float64) Ball {
	b.X, b.Y = gamemath.Polar(sl.X, sl.Y, angle, e.t.ContactDistance())

	speed := gamemath.Length(b.VX, b.VY) * e.t.Ball.HitSpeedScale
	b.VX = math.Cos(angle)*speed + sl.VX*e.t.Ball.HitSlimeVelocityScale
	b.VY = math.Sin(angle)*speed + sl.VY*e.t.Ball.HitSlimeVelocityScale
	b.VX, b.VY = gamemath.ClampLength(b.VX, b.VY, e.t.Ball.MaxSpeed)
	return b
}
