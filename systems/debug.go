package systems

import (
	"fmt"

	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/fonts"
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays the ball forecast, the AI targets and contact rings.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowDebug {
		return
	}
	session := GetSession(ecs)
	if session == nil {
		return
	}
	t := cfg.Tuning
	snap := session.Snapshot()

	preds := ai.Forecast(snap.Sim.Ball, t, t.AI.ForecastSteps)
	for i := 0; i < len(preds); i += cfg.HUD.ForecastStride {
		p := preds[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, cfg.HUD.ForecastColor, false)
	}

	gl := float32(t.GroundLine())
	contact := float32(t.ContactDistance())
	for _, side := range []sim.Side{sim.Left, sim.Right} {
		sl := snap.Sim.Slimes[side]
		vector.StrokeCircle(screen, float32(sl.X), float32(sl.Y), contact, 1, cfg.HUD.ForecastColor, true)

		if snap.Controllers[side] != match.AI {
			continue
		}
		target := float32(snap.AI[side].TargetX)
		vector.StrokeLine(screen, target, gl, target, gl+12, 2, cfg.HUD.TargetColor, false)
	}

	small := fonts.Small.Get()
	lines := []string{
		fmt.Sprintf("tick %d  TPS %.0f", snap.Sim.Tick, ebiten.ActualTPS()),
		fmt.Sprintf("ball %.1f,%.1f v %.2f,%.2f", snap.Sim.Ball.X, snap.Sim.Ball.Y, snap.Sim.Ball.VX, snap.Sim.Ball.VY),
	}
	for side, kind := range snap.Controllers {
		if kind == match.AI {
			lines = append(lines, fmt.Sprintf("%s AI: %s", sim.Side(side), session.AIPhase(sim.Side(side))))
		}
	}
	y := int(gl) + 22
	for _, l := range lines {
		text.Draw(screen, l, small, int(cfg.HUD.Margin), y, cfg.HUD.TextColor)
		y += 12
	}
}
