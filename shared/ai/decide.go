package ai

import (
	"math"

	"github.com/automoto/slime-soccer/shared/gamemath"
	"github.com/automoto/slime-soccer/shared/sim"
)

// Phase is the strategy the brain picked on its last re-evaluation.
type Phase int

const (
	PhaseOffense Phase = iota
	PhaseDefense
	PhaseMidfield
)

func (p Phase) String() string {
	switch p {
	case PhaseOffense:
		return "offense"
	case PhaseDefense:
		return "defense"
	}
	return "midfield"
}

// plan is one strategy pass, in frame coordinates.
type plan struct {
	phase  Phase
	target float64
	speed  float64
	jump   bool
	grab   bool
}

// Decide produces this tick's intent for the AI slime and updates st.
func (b *Brain) Decide(st *State, v View) sim.Intent {
	f := newFrame(v, b.t.Field.Width)
	gl := b.t.GroundLine()
	grounded := f.self.Grounded(gl)
	speed := b.t.Slime.Speed * b.profile.SpeedScale

	if st.DecisionCooldown > 0 {
		st.DecisionCooldown--
		return sim.Intent{
			MoveX: f.vx(b.steer(f.x(st.TargetX)-f.self.X, speed)),
			Grab:  f.self.IsGrabbing,
		}
	}

	if st.StableStart {
		if v.TimeLeft > b.t.AI.OpeningTimeLeft {
			st.TargetX = startX(b.t, v.Side)
			if math.Abs(f.ball.X-f.self.X) < b.t.AI.OpeningProximity {
				st.StableStart = false
				st.DecisionCooldown = b.t.AI.OpeningCooldown
			}
			return sim.Intent{}
		}
		st.StableStart = false
	}

	p := b.strategize(st, f, grounded, v.Sim.Tick)

	if math.Abs(p.target-f.x(st.TargetX)) > b.t.AI.RetargetDeadzone {
		st.TargetX = f.x(p.target)
		st.DecisionCooldown = max(1, b.t.AI.RetargetCooldown+b.profile.CooldownDelta)
	}

	in := sim.Intent{
		MoveX: f.vx(b.steer(f.x(st.TargetX)-f.self.X, p.speed*b.profile.SpeedScale)),
		Grab:  p.grab && grounded,
	}
	in.Jump = p.jump && grounded && !in.Grab
	return in
}

// steer is arrive-style: full speed far away, ramping down near the target,
// still inside the deadzone.
func (b *Brain) steer(gap, speed float64) float64 {
	if math.Abs(gap) <= b.t.AI.SteerDeadzone {
		return 0
	}
	return gamemath.Sign(gap) * gamemath.Ramp(gap, b.t.AI.SteerRamp, speed)
}

// PhaseFor classifies the field from the brain's point of view.
func (b *Brain) PhaseFor(v View) Phase {
	return b.phase(newFrame(v, b.t.Field.Width).ball)
}

func (b *Brain) phase(ball sim.Ball) Phase {
	w := b.t.Field.Width
	oppGoal := w - b.t.Field.GoalWidth/2
	ownGoal := b.t.Field.GoalWidth / 2
	movingHome := ball.VX < -b.t.AI.MovingHomeSpeed

	switch {
	case math.Abs(ball.X-oppGoal) < math.Abs(ball.X-ownGoal)*b.t.AI.OffenseGoalRatio,
		ball.X > w*b.t.AI.OffenseFieldFraction && !movingHome:
		return PhaseOffense
	case ball.X < w*b.t.AI.DefenseFieldFraction || movingHome:
		return PhaseDefense
	}
	return PhaseMidfield
}

func (b *Brain) strategize(st *State, f frame, grounded bool, tick uint64) plan {
	ball := f.ball
	if math.Abs(ball.Y-st.LastBallY) < b.t.AI.StuckHeightTolerance &&
		math.Abs(ball.VX) < b.t.AI.StuckSpeedTolerance {
		st.StuckCounter++
	} else {
		st.StuckCounter = 0
	}
	st.LastBallY = ball.Y

	p := plan{phase: b.phase(ball), target: f.x(st.TargetX), speed: b.t.Slime.Speed}
	preds := Forecast(ball, b.t, b.t.AI.ForecastSteps)

	switch p.phase {
	case PhaseOffense:
		b.attack(&p, st, f, grounded)
	case PhaseDefense:
		b.defend(&p, st, f, preds)
	default:
		b.holdMidfield(&p, f, grounded, preds)
	}

	if p.jump && Oscillation(tick) < b.profile.Hesitation {
		p.jump = false
	}
	return p
}

func (b *Brain) attack(p *plan, st *State, f frame, grounded bool) {
	w := b.t.Field.Width
	gl := b.t.GroundLine()
	ball := f.ball
	height := gl - ball.Y
	dist := math.Abs(f.self.X - ball.X)

	switch {
	case height > 60 && dist < 150:
		p.target = ball.X - 45 // under it for a header
	case height < 30 && dist < 100:
		p.target = ball.X - 20
	default:
		p.target = ball.X - 30
	}
	p.speed = b.t.Slime.Speed * b.t.AI.AttackBoost

	if dist < 100 {
		switch {
		case st.StuckCounter > 30:
			p.jump = true
			p.target = ball.X - 40
		case height < 35 && dist < 60 && !f.self.HasBall && ball.VY > -2:
			p.grab = true
		case (height > 30 && height < 90) || (ball.X > w*0.6 && height < 120):
			if grounded {
				reach := dist / b.t.Slime.Speed
				y := gamemath.Ballistic(ball.Y, ball.VY, b.t.Ball.Gravity, reach)
				p.jump = y > gl-100 && y < gl-20
			}
		}
	}

	if f.self.HasBall {
		goalAhead := w-b.t.Field.GoalWidth/2 > f.self.X
		p.grab = !(goalAhead || f.self.X > w*0.7)
	}
}

func (b *Brain) defend(p *plan, st *State, f frame, preds []Prediction) {
	w := b.t.Field.Width
	ball := f.ball
	speed := b.t.Slime.Speed
	movingHome := ball.VX < -b.t.AI.MovingHomeSpeed

	p.target = ball.X
	for _, pr := range preds {
		if pr.X >= w*0.4 {
			continue
		}
		reach := math.Abs(f.self.X-pr.X) / (speed * b.t.AI.DefenseBoost)
		if reach <= float64(pr.Time+5) {
			p.target = pr.X
			break
		}
	}

	if ball.X < b.t.Field.GoalWidth*2.5 && movingHome {
		p.target = math.Max(ball.X-10, b.t.Slime.Radius)
		p.speed = speed * b.t.AI.DefenseBoost
		if math.Abs(f.self.X-ball.X) < 120 && b.t.GroundLine()-ball.Y < 100 {
			p.jump = true
		}
	}

	if st.StuckCounter > 20 && ball.X < w*0.3 {
		p.jump = true
		p.target = ball.X + 30 // get behind it and clear upfield
	}
}

func (b *Brain) holdMidfield(p *plan, f frame, grounded bool, preds []Prediction) {
	home := b.t.Field.Width * 0.4
	gl := b.t.GroundLine()
	p.target = home

	for _, pr := range preds {
		if pr.Y >= gl-50 || math.Abs(pr.X-home) >= 100 {
			continue
		}
		reach := math.Abs(f.self.X-pr.X) / b.t.Slime.Speed
		if reach < float64(pr.Time) && pr.Time < 30 {
			p.target = pr.X
			p.jump = pr.Time < 20 && grounded
			break
		}
	}
}
