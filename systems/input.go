package systems

import (
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the menu-level actions into the Input component.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateSlimeInput polls the controls of every slime entity. Gamepad N is
// bound to side N while it is connected.
func UpdateSlimeInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.SlimeInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.SlimeInput.Get(entry)
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		input.BoundGamepadID = nil
		if int(input.Side) < len(gamepadIDs) {
			id := gamepadIDs[input.Side]
			input.BoundGamepadID = &id
		}

		pollControlScheme(input)
		if input.BoundGamepadID != nil {
			pollGamepad(input, *input.BoundGamepadID)
		}
	})
}

// pollControlScheme reads the keyboard cluster of a slime.
func pollControlScheme(input *components.SlimeInputData) {
	if input.ControlScheme < 0 || int(input.ControlScheme) >= len(cfg.ControlSchemeBindings) {
		return
	}
	for actionID, keys := range cfg.ControlSchemeBindings[input.ControlScheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// pollGamepad merges a gamepad's buttons and left stick into a slime's input.
func pollGamepad(input *components.SlimeInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range cfg.SlimeGamepadButtons {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.Current[actionID] = true
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if horizontal > deadzone {
		input.Current[cfg.ActionMoveRight] = true
	}
	if vertical < -deadzone {
		input.Current[cfg.ActionJump] = true
	}
	if vertical > deadzone {
		input.Current[cfg.ActionGrab] = true
	}
}

var controlActions = [...]cfg.ActionID{
	match.MoveLeft:  cfg.ActionMoveLeft,
	match.MoveRight: cfg.ActionMoveRight,
	match.Jump:      cfg.ActionJump,
	match.Grab:      cfg.ActionGrab,
}

// slimeControls adapts the slime input components to match.Input.
type slimeControls [2]*components.SlimeInputData

func (c slimeControls) Pressed(side sim.Side, ctl match.Control) bool {
	if side < 0 || int(side) >= len(c) || c[side] == nil {
		return false
	}
	if ctl < 0 || int(ctl) >= len(controlActions) {
		return false
	}
	return c[side].Current[controlActions[ctl]]
}

// SlimeControls returns the held controls of both slimes.
func SlimeControls(ecs *ecs.ECS) match.Input {
	var c slimeControls
	components.SlimeInput.Each(ecs.World, func(entry *donburi.Entry) {
		in := components.SlimeInput.Get(entry)
		if in.Side == sim.Left || in.Side == sim.Right {
			c[in.Side] = in
		}
	})
	return c
}
