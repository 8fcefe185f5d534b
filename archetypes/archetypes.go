package archetypes

import (
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Match = newArchetype(
		tags.Match,
		components.Session,
		components.Flash,
		components.ScorePop,
	)
	Slime = newArchetype(
		tags.Slime,
		components.SlimeInput,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
