package systems

import (
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause of a running match.
// This system should run AFTER UpdateInput but BEFORE UpdateSession.
func UpdatePause(ecs *ecs.ECS) {
	session := GetSession(ecs)
	if session == nil || !session.Running() {
		return
	}
	input := getOrCreateInput(ecs)

	switch {
	case GetAction(input, cfg.ActionPause).JustPressed:
		session.SetPaused(!session.Paused())
		QueueSFX(ecs, cfg.SoundMenuSelect)
	case session.Paused() && GetAction(input, cfg.ActionStart).JustPressed:
		session.SetPaused(false)
		QueueSFX(ecs, cfg.SoundMenuSelect)
	}
}

// IsPaused reports whether the match is frozen.
func IsPaused(ecs *ecs.ECS) bool {
	session := GetSession(ecs)
	return session != nil && session.Paused()
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.HUD.OverlayColor,
		false,
	)
	drawCentered(screen, "PAUSED", fonts.Title.Get(), width/2, height/2, cfg.HUD.TextColor)
	drawCentered(screen, "P or Enter: resume   Esc: abandon", fonts.Small.Get(), width/2, height-24, cfg.HUD.HintColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}
