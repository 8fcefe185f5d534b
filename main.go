package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/slime-soccer/components"
	"github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/fonts"
	"github.com/automoto/slime-soccer/scenes"
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
	"github.com/automoto/slime-soccer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(opts scenes.MatchOptions) (*Game, error) {
	loads := []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, config.HUD.RegularSize},
		{fonts.Bold, gobold.TTF, config.HUD.BoldSize},
		{fonts.Title, gobold.TTF, config.HUD.TitleSize},
		{fonts.Small, goregular.TTF, config.HUD.SmallSize},
	}
	for _, l := range loads {
		if err := fonts.LoadFontWithSize(l.name, l.ttf, l.size); err != nil {
			return nil, err
		}
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.ChangeScene(scenes.NewMatchScene(opts))
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	var (
		modeFlag       = flag.String("mode", "", "who plays: single, 2p or spectate (default: last used)")
		durationFlag   = flag.String("duration", "", "match length preset: 1min, 2min, 4min, 8min or worldcup")
		difficultyFlag = flag.String("difficulty", "", "AI difficulty: easy, normal or hard")
		tuningFlag     = flag.String("tuning", "", "YAML file overriding simulation tuning")
		debugFlag      = flag.Bool("debug", false, "check simulation invariants every tick and show the AI overlay")
		startFlag      = flag.Bool("start", false, "skip the kickoff screen")
	)
	flag.Parse()

	if *tuningFlag != "" {
		t, err := tuning.Load(*tuningFlag)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.SetTuning(t)
	}
	if *debugFlag {
		config.Debug.Assertions = true
		config.Debug.Overlay = true
		sim.DebugAssertions = true
	}

	// Initialize persistence and load saved settings
	settings := systems.DefaultSettings()
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(&settings, saved)
	}
	if err := applyFlags(&settings, *modeFlag, *durationFlag, *difficultyFlag); err != nil {
		log.Fatal(err)
	}
	if *debugFlag {
		settings.ShowDebug = true
	}

	ebiten.SetWindowTitle("Slime Soccer")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame(scenes.MatchOptions{Settings: settings, AutoStart: *startFlag})
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func applyFlags(settings *components.SettingsData, mode, duration, difficulty string) error {
	if mode != "" {
		m, err := match.ParseMode(mode)
		if err != nil {
			return err
		}
		systems.SelectMode(settings, m)
	}
	if duration != "" && !systems.SelectDuration(settings, duration) {
		return fmt.Errorf("unknown duration preset %q", duration)
	}
	if difficulty != "" {
		d, err := ai.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		systems.SelectDifficulty(settings, d)
	}
	return nil
}
