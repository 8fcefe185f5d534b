// Package ai is the scripted slime opponent.
//
// The brain reasons as if it were the left slime defending x = 0; a right
// side brain mirrors the field on the way in and its intent on the way out.
// Decisions depend only on the simulation state and the tick counter, so a
// restored snapshot replays the same moves.
package ai

import (
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// State is the scratch memory one AI slime keeps between ticks.
// TargetX is in world coordinates.
type State struct {
	TargetX          float64
	DecisionCooldown int
	StableStart      bool
	StuckCounter     int
	LastBallY        float64
}

// NewState returns the kickoff memory for an AI playing side.
func NewState(t *tuning.Tuning, side sim.Side) *State {
	st := &State{}
	st.Reset(t, side)
	return st
}

// Reset clears the memory after a goal, a penalty or a new match.
func (st *State) Reset(t *tuning.Tuning, side sim.Side) {
	*st = State{
		TargetX:     startX(t, side),
		StableStart: true,
		LastBallY:   t.Ball.StartY,
	}
}

func startX(t *tuning.Tuning, side sim.Side) float64 {
	if side == sim.Left {
		return t.Slime.StartLeftX
	}
	return t.Slime.StartRightX
}

// View is everything the brain may look at for one decision.
type View struct {
	Sim      sim.State
	Side     sim.Side
	TimeLeft int // seconds
	Duration int // seconds, length of the whole match
}

// Brain turns a View into an Intent for one side.
type Brain struct {
	t       *tuning.Tuning
	profile Profile
}

// NewBrain creates a brain with the given difficulty profile.
func NewBrain(t *tuning.Tuning, p Profile) *Brain {
	return &Brain{t: t, profile: p}
}

// Profile returns the difficulty profile in use.
func (b *Brain) Profile() Profile {
	return b.profile
}
