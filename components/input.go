package components

import (
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for the
// menu-level actions. All devices are merged.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// SlimeInputData stores the controls of one slime.
type SlimeInputData struct {
	Side           sim.Side
	ControlScheme  cfg.ControlSchemeID
	BoundGamepadID *ebiten.GamepadID // nil = keyboard only
	Current        [cfg.ActionCount]bool
	Previous       [cfg.ActionCount]bool
}

var SlimeInput = donburi.NewComponentType[SlimeInputData]()
