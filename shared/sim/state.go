// Package sim is the deterministic fixed-step slime soccer simulation.
//
// State is a plain value: Engine.Step takes one State and returns the next, so
// callers can keep, copy and compare states freely.
package sim

import "github.com/automoto/slime-soccer/shared/tuning"

// Side identifies a slime. Left defends the goal at x = 0.
type Side int

const (
	Left Side = iota
	Right
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

// Dir is +1 for Left and -1 for Right: the direction toward the opponent's goal.
func (s Side) Dir() float64 {
	if s == Left {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Owner records who holds the ball.
type Owner int

const (
	None Owner = iota
	OwnedByLeft
	OwnedByRight
)

// OwnerOf converts a side into its owner value.
func OwnerOf(s Side) Owner {
	return Owner(s + 1)
}

// Side returns the holding side. It is only meaningful when o != None.
func (o Owner) Side() Side {
	return Side(o - 1)
}

// Slime is one player body. X, Y is the centre of the flat base; the dome
// extends upward by the slime radius.
type Slime struct {
	X, Y         float64
	VX, VY       float64
	IsGrabbing   bool
	HasBall      bool
	GoalLineTime float64 // seconds spent inside the own goal zone
}

// Ball is the ball. Grab fields are only meaningful while GrabbedBy != None.
type Ball struct {
	X, Y                float64
	VX, VY              float64
	GrabbedBy           Owner
	GrabAngle           float64
	GrabAngularVelocity float64
}

// State is the complete simulation state. It holds no pointers.
type State struct {
	Slimes [2]Slime
	Ball   Ball
	Tick   uint64
}

// Intent is one tick of control for one slime.
type Intent struct {
	MoveX float64
	Jump  bool
	Grab  bool
}

// EventKind classifies an Event.
type EventKind int

const (
	Goal EventKind = iota
	CampingPenalty
)

func (k EventKind) String() string {
	switch k {
	case Goal:
		return "goal"
	case CampingPenalty:
		return "camping penalty"
	}
	return "unknown"
}

// Event reports a scoring incident. Scorer receives the point.
type Event struct {
	Kind   EventKind
	Scorer Side
	Tick   uint64
}

// NewState returns the kick-off state.
func NewState(t *tuning.Tuning) State {
	return State{
		Slimes: [2]Slime{
			{X: t.Slime.StartLeftX, Y: t.GroundLine()},
			{X: t.Slime.StartRightX, Y: t.GroundLine()},
		},
		Ball: Ball{X: t.Field.Width / 2, Y: t.Ball.StartY},
	}
}

// Reset returns s with positions, velocities and grab state back at kick-off.
// The tick counter is kept.
func Reset(s State, t *tuning.Tuning) State {
	n := NewState(t)
	n.Tick = s.Tick
	return n
}

// Grounded reports whether the slime stands on the ground this tick.
func (sl Slime) Grounded(groundLine float64) bool {
	return sl.VY == 0 && sl.Y >= groundLine
}

// Holder returns the slime holding the ball and true, or false when free.
func (s State) Holder() (Side, bool) {
	if s.Ball.GrabbedBy == None {
		return 0, false
	}
	return s.Ball.GrabbedBy.Side(), true
}
