package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/slime-soccer/shared/gamemath"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
	"github.com/gdamore/tcell/v2"
)

// cellKind is what a terminal cell shows.
type cellKind int

const (
	cellSky cellKind = iota
	cellGround
	cellNet
	cellPost
	cellSlimeLeft
	cellSlimeRight
	cellBall
	cellTimerSafe
	cellTimerWarn
)

var (
	styleSky    = tcell.StyleDefault.Background(tcell.ColorBlue)
	styleGround = tcell.StyleDefault.Background(tcell.ColorGray)
	styleNet    = styleSky.Foreground(tcell.ColorSilver)
	stylePost   = styleSky.Foreground(tcell.ColorWhite)
	slimeColors = [2]tcell.Color{
		tcell.NewRGBColor(0, 206, 209),
		tcell.NewRGBColor(220, 20, 60),
	}
	styleSlimes = [2]tcell.Style{
		tcell.StyleDefault.Background(slimeColors[sim.Left]),
		tcell.StyleDefault.Background(slimeColors[sim.Right]),
	}
	styleBall      = styleSky.Foreground(tcell.NewRGBColor(255, 215, 0))
	styleTimerSafe = styleGround.Foreground(tcell.ColorYellow)
	styleTimerWarn = styleGround.Foreground(tcell.ColorRed)
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const campingWarnAt = 0.3

// view maps the field onto a grid of terminal cells. Row 0 is the HUD and
// the last row holds hints; the field fills the rows in between.
type view struct {
	t          *tuning.Tuning
	cols, rows int
}

func newView(t *tuning.Tuning, width, height int) view {
	return view{t: t, cols: max(width, 1), rows: max(height-2, 1)}
}

// center returns the world point sampled by a field cell.
func (v view) center(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.t.Field.Width / float64(v.cols)
	y = (float64(row) + 0.5) * v.t.Field.Height / float64(v.rows)
	return x, y
}

// cell returns the field cell containing a world point.
func (v view) cell(x, y float64) (col, row int) {
	col = int(x * float64(v.cols) / v.t.Field.Width)
	row = int(y * float64(v.rows) / v.t.Field.Height)
	return min(max(col, 0), v.cols-1), min(max(row, 0), v.rows-1)
}

func (v view) cellWidth() float64 {
	return v.t.Field.Width / float64(v.cols)
}

// classify decides what the cell at (col, row) shows. The ball is placed
// separately so it is never lost between samples.
func (v view) classify(s sim.State, col, row int) cellKind {
	t := v.t
	x, y := v.center(col, row)
	gl := t.GroundLine()

	for _, side := range []sim.Side{sim.Left, sim.Right} {
		sl := s.Slimes[side]
		if y <= sl.Y && gamemath.Distance(x, y, sl.X, sl.Y) <= t.Slime.Radius {
			return cellSlimeLeft + cellKind(side)
		}
	}

	if y >= gl {
		if kind, ok := v.campingBar(s, x, y); ok {
			return kind
		}
		return cellGround
	}

	if y < t.GoalMouthTop() {
		return cellSky
	}
	half := t.Field.GoalWidth / 2
	cw := v.cellWidth()
	switch {
	case math.Abs(x-half) < cw/2, math.Abs(x-(t.Field.Width-half)) < cw/2:
		return cellPost
	case x < half, x > t.Field.Width-half:
		return cellNet
	}
	return cellSky
}

// campingBar draws the shrinking camping timer on the first ground row.
func (v view) campingBar(s sim.State, x, y float64) (cellKind, bool) {
	t := v.t
	_, barRow := v.cell(x, t.GroundLine()+1)
	_, row := v.cell(x, y)
	if row != barRow {
		return 0, false
	}
	for _, side := range []sim.Side{sim.Left, sim.Right} {
		sl := s.Slimes[side]
		if sl.GoalLineTime <= 0 {
			continue
		}
		left := gamemath.Clamp(1-sl.GoalLineTime/t.Camping.LimitSeconds, 0, 1)
		from := 0.0
		if side == sim.Right {
			from = t.Field.Width - t.Field.GoalWidth
		}
		if x >= from && x < from+t.Field.GoalWidth*left {
			if left <= campingWarnAt {
				return cellTimerWarn, true
			}
			return cellTimerSafe, true
		}
	}
	return 0, false
}

func (k cellKind) draw() (rune, tcell.Style) {
	switch k {
	case cellGround:
		return ' ', styleGround
	case cellNet:
		return '┼', styleNet
	case cellPost:
		return '┃', stylePost
	case cellSlimeLeft:
		return ' ', styleSlimes[sim.Left]
	case cellSlimeRight:
		return ' ', styleSlimes[sim.Right]
	case cellBall:
		return '●', styleBall
	case cellTimerSafe:
		return '▀', styleTimerSafe
	case cellTimerWarn:
		return '▀', styleTimerWarn
	}
	return ' ', styleSky
}

// draw renders a snapshot onto the screen.
func draw(screen tcell.Screen, t *tuning.Tuning, snap match.Snapshot, banner string) {
	w, h := screen.Size()
	v := newView(t, w, h)
	screen.Clear()

	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			r, st := v.classify(snap.Sim, col, row).draw()
			screen.SetContent(col, row+1, r, nil, st)
		}
	}

	b := snap.Sim.Ball
	col, row := v.cell(b.X, b.Y)
	r, st := cellBall.draw()
	if k := v.classify(snap.Sim, col, row); k == cellSlimeLeft || k == cellSlimeRight {
		st = st.Background(slimeColors[k-cellSlimeLeft])
	}
	screen.SetContent(col, row+1, r, nil, st)

	drawText(screen, 0, 0, hudLine(snap, w), styleHUD)
	drawText(screen, 0, h-1, hintLine(snap.Match.Phase), styleHint)
	if banner != "" {
		drawText(screen, (w-len([]rune(banner)))/2, 1+v.rows/3, banner, styleHUD)
	}
	screen.Show()
}

func hudLine(snap match.Snapshot, width int) string {
	secs := snap.Match.TimeLeft
	clock := fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	left := fmt.Sprintf(" CYAN %d", snap.Match.Score[sim.Left])
	right := fmt.Sprintf("%d RED ", snap.Match.Score[sim.Right])
	gap := max(width-len(left)-len(right)-len(clock), 2)
	return left + strings.Repeat(" ", gap/2) + clock + strings.Repeat(" ", gap-gap/2) + right
}

func hintLine(p match.Phase) string {
	switch p {
	case match.PhaseIdle:
		return " Enter: kick off   m: mode   q: quit"
	case match.PhaseEnded:
		return " Enter: play again   Esc: back   q: quit"
	}
	return " A/D W S   ←/→ ↑ ↓   p: pause   Esc: abandon   q: quit"
}

func resultBanner(m match.State) string {
	switch m.Winner {
	case match.WinnerLeft:
		return fmt.Sprintf("Cyan wins %d-%d", m.Score[0], m.Score[1])
	case match.WinnerRight:
		return fmt.Sprintf("Red wins %d-%d", m.Score[1], m.Score[0])
	case match.Draw:
		return fmt.Sprintf("Draw %d-%d", m.Score[0], m.Score[1])
	}
	return ""
}

func drawText(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}
