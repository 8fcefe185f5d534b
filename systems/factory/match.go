package factory

import (
	"github.com/automoto/slime-soccer/archetypes"
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the session singleton and routes session events into
// it for the effects system.
func CreateMatch(ecs *ecs.ECS, session *match.Session) *donburi.Entry {
	entry := archetypes.Match.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: session})
	components.ScorePop.SetValue(entry, components.ScorePopData{Scale: [2]float32{1, 1}})

	session.OnEvent(func(ev match.Event) {
		data := components.Session.Get(entry)
		data.Events = append(data.Events, ev)
	})
	return entry
}

// CreateSlime spawns the input entity of one side.
func CreateSlime(ecs *ecs.ECS, side sim.Side) *donburi.Entry {
	entry := archetypes.Slime.Spawn(ecs)
	scheme := cfg.ControlSchemeLeft
	if side == sim.Right {
		scheme = cfg.ControlSchemeRight
	}
	components.SlimeInput.SetValue(entry, components.SlimeInputData{
		Side:          side,
		ControlScheme: scheme,
	})
	return entry
}

// CreateAudio spawns the sound queue.
func CreateAudio(ecs *ecs.ECS, volume float64) *donburi.Entry {
	entry := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(entry, components.AudioData{SFXVolume: volume})
	return entry
}
