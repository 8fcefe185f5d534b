package sim

import "github.com/automoto/slime-soccer/shared/gamemath"

// applyControls copies intents onto the slimes. Grab is latched before the
// jump test so a slime cannot jump on the tick it starts holding.
func (e *Engine) applyControls(s State, in [2]Intent) State {
	gl := e.t.GroundLine()
	for i := range s.Slimes {
		sl := &s.Slimes[i]
		sl.VX = in[i].MoveX
		sl.IsGrabbing = in[i].Grab
		if in[i].Jump && sl.Grounded(gl) && !sl.IsGrabbing {
			sl.VY = e.t.Slime.JumpPower
		}
	}
	return s
}

func (e *Engine) integrateSlimes(s State) State {
	gl := e.t.GroundLine()
	r := e.t.Slime.Radius
	for i := range s.Slimes {
		sl := &s.Slimes[i]
		sl.VY += e.t.Ball.Gravity
		sl.X += sl.VX
		sl.Y += sl.VY

		sl.X = gamemath.Clamp(sl.X, r, e.t.Field.Width-r)
		if sl.Y > gl {
			sl.Y = gl
			sl.VY = 0
		}
	}
	return s
}

// integrateBall moves the ball one tick. A held ball rides its holder's orbit;
// a ball released this tick is thrown and then flies as a free ball.
func (e *Engine) integrateBall(s State) State {
	if h, ok := s.Holder(); ok {
		g := s.Slimes[h]
		gs := SolveGrab(g, grabOf(s.Ball), h, e.t)
		s.Ball.GrabAngle, s.Ball.GrabAngularVelocity = gs.Angle, gs.AngularVelocity
		s.Ball.X, s.Ball.Y = HeldPosition(g, gs.Angle, e.t)
		s.Ball.VX, s.Ball.VY = g.VX, g.VY
		if g.IsGrabbing {
			return s
		}
		s.Ball.VX, s.Ball.VY = ReleaseVelocity(g, gs, e.t)
		clearGrab(&s)
	}

	b := &s.Ball
	b.VY += e.t.Ball.Gravity
	b.VX *= e.t.Ball.Damping
	b.X += b.VX
	b.Y += b.VY
	return s
}

// boundBall bounces a free ball off the walls, the ceiling and the ground.
func (e *Engine) boundBall(s State) State {
	if s.Ball.GrabbedBy != None {
		return s
	}
	b := &s.Ball
	r := e.t.Ball.Radius
	damping := e.t.Ball.BounceDamping

	if b.X < r {
		b.X = r
		b.VX = gamemath.Bounce(b.VX, damping)
	}
	if b.X > e.t.Field.Width-r {
		b.X = e.t.Field.Width - r
		b.VX = gamemath.Bounce(b.VX, damping)
	}
	if floor := e.t.BallFloor(); b.Y > floor {
		b.Y = floor
		b.VY = gamemath.Bounce(b.VY, damping)
	}
	if b.Y < r {
		b.Y = r
		b.VY = gamemath.Bounce(b.VY, damping)
	}
	return s
}
