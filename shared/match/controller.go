package match

import (
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// ControllerKind says where a slime's intents come from.
type ControllerKind int

const (
	Human ControllerKind = iota
	AI
)

func (k ControllerKind) String() string {
	if k == AI {
		return "ai"
	}
	return "human"
}

// Controller drives one slime. AI memory is only present for AI controllers.
type Controller struct {
	Kind ControllerKind
	AI   *ai.State
}

// HumanController reads keys.
func HumanController() Controller {
	return Controller{Kind: Human}
}

// AIController plays side with fresh memory.
func AIController(t *tuning.Tuning, side sim.Side) Controller {
	return Controller{Kind: AI, AI: ai.NewState(t, side)}
}

// Controllers returns the pair of controllers for a mode.
func Controllers(m Mode, t *tuning.Tuning) [2]Controller {
	switch m {
	case ModeTwoPlayer:
		return [2]Controller{HumanController(), HumanController()}
	case ModeSpectate:
		return [2]Controller{AIController(t, sim.Left), AIController(t, sim.Right)}
	}
	return [2]Controller{AIController(t, sim.Left), HumanController()}
}

// intent produces this tick's control for side.
func (c Controller) intent(side sim.Side, brain *ai.Brain, view ai.View, in Input, speed float64) sim.Intent {
	if c.Kind == AI && c.AI != nil {
		return brain.Decide(c.AI, view)
	}
	return HumanIntent(in, side, speed)
}
