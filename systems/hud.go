package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/fonts"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudTextOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the clock, both scores and the goal flash.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry).Session
	if session.Phase() == match.PhaseIdle {
		return
	}
	pop := components.ScorePop.Get(entry)
	flash := components.Flash.Get(entry)

	drawClock(screen, session.TimeLeft())
	drawScores(screen, session.Score(), pop)
	drawFlash(screen, flash)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func drawClock(screen *ebiten.Image, timeLeft int) {
	width := float32(cfg.C.Width)
	w, h := cfg.HUD.TimerWidth, cfg.HUD.TimerHeight
	x := width/2 - w/2
	y := cfg.HUD.Margin

	vector.FillRect(screen, x, y, w, h, cfg.HUD.OverlayColor, false)
	drawCentered(screen, FormatClock(timeLeft), fonts.Bold.Get(), float64(width/2), float64(y+h)-6, cfg.HUD.TextColor)
}

func drawScores(screen *ebiten.Image, score [2]int, pop *components.ScorePopData) {
	face := fonts.Title.Get()
	margin := float64(cfg.HUD.Margin)
	for _, side := range []sim.Side{sim.Left, sim.Right} {
		str := fmt.Sprintf("%d", score[side])
		b := text.BoundString(face, str)
		scale := float64(pop.Scale[side])
		if scale <= 0 {
			scale = 1
		}

		// Anchor the score's outer top corner so it grows into the field.
		cx := margin*4 + float64(b.Dx())/2
		if side == sim.Right {
			cx = float64(cfg.C.Width) - cx
		}
		cy := margin + float64(b.Dy())/2

		hudTextOp.GeoM.Reset()
		hudTextOp.GeoM.Translate(-float64(b.Min.X)-float64(b.Dx())/2, -float64(b.Min.Y)-float64(b.Dy())/2)
		hudTextOp.GeoM.Scale(scale, scale)
		hudTextOp.GeoM.Translate(cx, cy)
		hudTextOp.ColorScale.Reset()
		hudTextOp.ColorScale.ScaleWithColor(cfg.Slime.Colors[side])
		text.DrawWithOptions(screen, str, face, hudTextOp)
	}
}

func drawFlash(screen *ebiten.Image, flash *components.FlashData) {
	if flash.Alpha <= 0 {
		return
	}
	// color.RGBA is premultiplied, so every channel fades together.
	k := flash.Alpha * 0.6
	c := color.RGBA{
		R: uint8(float32(flash.Color.R) * k),
		G: uint8(float32(flash.Color.G) * k),
		B: uint8(float32(flash.Color.B) * k),
		A: uint8(float32(flash.Color.A) * k),
	}
	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), c, false)
}

// drawCentered draws str with its baseline at y, centred on cx.
func drawCentered(screen *ebiten.Image, str string, face font.Face, cx, y float64, c color.Color) {
	b := text.BoundString(face, str)
	x := int(cx) - b.Dx()/2 - b.Min.X
	text.Draw(screen, str, face, x, int(y), c)
}
