package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionGrab
	ActionStart
	ActionBack
	ActionCycleMode
	ActionCycleDuration
	ActionCycleDifficulty
	ActionToggleDebug
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the menu-level mappings shared by every device
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// ControlSchemeID selects the keyboard cluster driving one slime.
type ControlSchemeID int

const (
	ControlSchemeLeft  ControlSchemeID = iota // WASD, S grabs
	ControlSchemeRight                        // arrows, Down grabs
)

// Input is the global input configuration
var Input InputConfig

// ControlSchemeBindings maps each scheme's actions to keys.
var ControlSchemeBindings []map[ActionID][]ebiten.Key

// SlimeGamepadButtons are the in-play buttons of a gamepad bound to a slime.
// Gamepad N drives side N.
var SlimeGamepadButtons map[ActionID][]ebiten.StandardGamepadButton

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionStart: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionCycleMode: {
				Keys: []ebiten.Key{ebiten.KeyM},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionCycleDuration: {
				Keys: []ebiten.Key{ebiten.KeyT},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionCycleDifficulty: {
				Keys: []ebiten.Key{ebiten.KeyL},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterCenter,
				},
			},
		},
	}

	ControlSchemeBindings = []map[ActionID][]ebiten.Key{
		ControlSchemeLeft: {
			ActionMoveLeft:  {ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyD},
			ActionJump:      {ebiten.KeyW},
			ActionGrab:      {ebiten.KeyS},
		},
		ControlSchemeRight: {
			ActionMoveLeft:  {ebiten.KeyArrowLeft},
			ActionMoveRight: {ebiten.KeyArrowRight},
			ActionJump:      {ebiten.KeyArrowUp},
			ActionGrab:      {ebiten.KeyArrowDown},
		},
	}

	SlimeGamepadButtons = map[ActionID][]ebiten.StandardGamepadButton{
		ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
		ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
		// A / Cross button
		ActionJump: {ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonLeftTop},
		// X / Square button
		ActionGrab: {ebiten.StandardGamepadButtonRightLeft, ebiten.StandardGamepadButtonLeftBottom},
	}
}
