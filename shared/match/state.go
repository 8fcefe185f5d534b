// Package match runs a timed slime soccer match on top of the simulation:
// controllers, score, countdown, frame pacing and snapshots.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/slime-soccer/shared/sim"
)

var (
	// ErrNotRunning is returned by operations that need a running match.
	ErrNotRunning = errors.New("match is not running")
	// ErrInvalidDuration is returned for a non-positive match length.
	ErrInvalidDuration = errors.New("invalid match duration")
)

// Phase is the lifecycle stage of a match.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Winner is the result of a finished match.
type Winner int

const (
	Undecided Winner = iota
	WinnerLeft
	WinnerRight
	Draw
)

func (w Winner) String() string {
	switch w {
	case WinnerLeft:
		return "left"
	case WinnerRight:
		return "right"
	case Draw:
		return "draw"
	}
	return "undecided"
}

// State is the scoreboard.
type State struct {
	Score    [2]int
	TimeLeft int // seconds
	Duration int // seconds
	Phase    Phase
	Winner   Winner
}

func decide(score [2]int) Winner {
	switch {
	case score[sim.Left] > score[sim.Right]:
		return WinnerLeft
	case score[sim.Right] > score[sim.Left]:
		return WinnerRight
	}
	return Draw
}

// Mode picks who controls each slime.
type Mode int

const (
	// ModeSingle is the human on the right against the AI on the left.
	ModeSingle Mode = iota
	ModeTwoPlayer
	// ModeSpectate lets two AIs play each other.
	ModeSpectate
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeTwoPlayer:
		return "multi"
	case ModeSpectate:
		return "spectate"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a flag or settings value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "1p":
		return ModeSingle, nil
	case "multi", "2p", "two":
		return ModeTwoPlayer, nil
	case "spectate", "ai", "demo":
		return ModeSpectate, nil
	}
	return ModeSingle, fmt.Errorf("unknown mode %q", s)
}

// EventKind classifies an Event.
type EventKind int

const (
	EventGoal EventKind = iota
	EventCampingPenalty
	EventMatchEnded
)

func (k EventKind) String() string {
	switch k {
	case EventGoal:
		return "goal"
	case EventCampingPenalty:
		return "camping penalty"
	case EventMatchEnded:
		return "match ended"
	}
	return "unknown"
}

// Event is delivered to OnEvent hooks. Scorer is set for goals and penalties,
// Winner for EventMatchEnded.
type Event struct {
	Kind   EventKind
	Scorer sim.Side
	Score  [2]int
	Winner Winner
	Tick   uint64
}

func fromSim(ev sim.Event, score [2]int) Event {
	kind := EventGoal
	if ev.Kind == sim.CampingPenalty {
		kind = EventCampingPenalty
	}
	return Event{Kind: kind, Scorer: ev.Scorer, Score: score, Tick: ev.Tick}
}
