package systems

import (
	"fmt"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/fonts"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMatchHUD renders the kickoff screen while idle and the results once
// the match has ended.
func DrawMatchHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	switch session.Phase() {
	case match.PhaseIdle:
		drawKickoff(screen, GetOrCreateSettings(ecs))
	case match.PhaseEnded:
		drawResults(screen, session.Match())
	}
}

func drawKickoff(screen *ebiten.Image, settings *components.SettingsData) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)
	drawCentered(screen, "SLIME SOCCER", fonts.Title.Get(), width/2, 80, cfg.BrightOrange)

	face := fonts.Regular.Get()
	mode := ChosenMode(settings)
	lines := []struct {
		label, value, key string
	}{
		{"Mode", modeLabel(mode), "M"},
		{"Duration", durationLabel(ChosenDuration(settings)), "T"},
		{"AI", ChosenDifficulty(settings).String(), "L"},
	}
	y := 140.0
	for _, l := range lines {
		drawCentered(screen, fmt.Sprintf("%s: %s  [%s]", l.label, l.value, l.key), face, width/2, y, cfg.HUD.TextColor)
		y += 26
	}

	small := fonts.Small.Get()
	y += 12
	for _, hint := range controlHints(mode) {
		drawCentered(screen, hint, small, width/2, y, cfg.HUD.HintColor)
		y += 18
	}
	drawCentered(screen, "Enter to kick off", fonts.Bold.Get(), width/2, height-40, cfg.BrightGreen)
}

func modeLabel(m match.Mode) string {
	switch m {
	case match.ModeSingle:
		return "1 player vs AI"
	case match.ModeTwoPlayer:
		return "2 players"
	case match.ModeSpectate:
		return "AI vs AI"
	}
	return m.String()
}

func durationLabel(preset string) string {
	if preset == "worldcup" {
		return "World Cup (5 min)"
	}
	if s, ok := cfg.Tuning.Duration(preset); ok {
		return fmt.Sprintf("%d min", s/60)
	}
	return preset
}

func controlHints(m match.Mode) []string {
	left := "Cyan: A/D move, W jump, S grab"
	right := "Red: arrows move, Up jump, Down grab"
	switch m {
	case match.ModeSingle:
		return []string{right}
	case match.ModeTwoPlayer:
		return []string{left, right}
	}
	return []string{"Sit back and watch"}
}

// ResultText names the winner of a finished match.
func ResultText(w match.Winner) string {
	switch w {
	case match.WinnerLeft:
		return "Cyan Team Wins!"
	case match.WinnerRight:
		return "Red Team Wins!"
	case match.Draw:
		return "It's a Draw!"
	}
	return "Match Complete"
}

func drawResults(screen *ebiten.Image, m match.State) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)
	drawCentered(screen, "FULL TIME", fonts.Title.Get(), width/2, 90, cfg.BrightOrange)

	winnerColor := cfg.Yellow
	switch m.Winner {
	case match.WinnerLeft:
		winnerColor = cfg.Slime.Colors[0]
	case match.WinnerRight:
		winnerColor = cfg.Slime.Colors[1]
	}
	drawCentered(screen, ResultText(m.Winner), fonts.Bold.Get(), width/2, 140, winnerColor)
	drawCentered(screen, fmt.Sprintf("%d - %d", m.Score[0], m.Score[1]), fonts.Title.Get(), width/2, 200, cfg.HUD.TextColor)

	drawCentered(screen, "Enter: play again    Esc: back", fonts.Regular.Get(), width/2, height-40, cfg.HUD.HintColor)
}
