package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/slime-soccer/archetypes"
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/systems"
	"github.com/automoto/slime-soccer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchOptions seeds the match scene.
type MatchOptions struct {
	Settings  components.SettingsData
	AutoStart bool // skip the kickoff screen
	Logger    *log.Logger
}

// MatchScene is the pitch: kickoff screen, play and results.
type MatchScene struct {
	ecs  *ecs.ECS
	opts MatchOptions
	once sync.Once
}

// NewMatchScene creates the match scene. The world is built on first update.
func NewMatchScene(opts MatchOptions) *MatchScene {
	return &MatchScene{opts: opts}
}

func (ms *MatchScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MatchScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSlimeInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawField)
	ecs.AddRenderer(cfg.Default, systems.DrawCampingTimers)
	ecs.AddRenderer(cfg.Default, systems.DrawSlimes)
	ecs.AddRenderer(cfg.Default, systems.DrawBall)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMatchHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ms.ecs = ecs

	settingsEntry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settingsEntry, ms.opts.Settings)
	settings := components.Settings.Get(settingsEntry)

	session := match.NewSession(match.Config{
		Tuning:     cfg.Tuning,
		Mode:       systems.ChosenMode(settings),
		Difficulty: systems.ChosenDifficulty(settings),
		Logger:     ms.opts.Logger,
	})

	factory.CreateMatch(ecs, session)
	factory.CreateSlime(ecs, sim.Left)
	factory.CreateSlime(ecs, sim.Right)
	factory.CreateAudio(ecs, settings.SFXVolume)
	archetypes.Input.Spawn(ecs)

	if ms.opts.AutoStart {
		if err := session.StartPreset(systems.ChosenDuration(settings)); err != nil {
			log.Printf("[match] could not start: %v", err)
		}
	}
}
