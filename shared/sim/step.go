package sim

import (
	"fmt"

	"github.com/automoto/slime-soccer/shared/tuning"
)

// DebugAssertions makes Step panic when a tick leaves the state inconsistent.
var DebugAssertions = false

// Engine advances a State by one fixed tick. An Engine keeps a collision
// space between ticks, so it must not be shared between goroutines.
type Engine struct {
	t  *tuning.Tuning
	bp *broadphase
}

// NewEngine builds an engine for a validated tuning.
func NewEngine(t *tuning.Tuning) *Engine {
	return &Engine{t: t, bp: newBroadphase(t)}
}

// Tuning returns the parameters the engine runs with.
func (e *Engine) Tuning() *tuning.Tuning {
	return e.t
}

// Kickoff returns the starting state.
func (e *Engine) Kickoff() State {
	return NewState(e.t)
}

// Step runs one tick: controls, slime motion, camping, ball motion, goals,
// ball bounds and contacts. A goal or camping penalty resets the field and
// ends the tick early; the returned events say who scored.
func (e *Engine) Step(s State, in [2]Intent) (State, []Event) {
	s.Tick++
	s = e.applyControls(s, in)
	s = e.integrateSlimes(s)

	s, ev := e.camping(s)
	if ev != nil {
		return e.finish(Reset(s, e.t)), []Event{*ev}
	}

	s = e.integrateBall(s)
	if ev = e.goal(s); ev != nil {
		return e.finish(Reset(s, e.t)), []Event{*ev}
	}

	s = e.boundBall(s)
	s = e.contacts(s)
	return e.finish(s), nil
}

func (e *Engine) finish(s State) State {
	if DebugAssertions {
		if err := CheckInvariants(s, e.t); err != nil {
			panic(fmt.Sprintf("sim: tick %d: %v", s.Tick, err))
		}
	}
	return s
}
