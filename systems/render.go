package systems

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/gamemath"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Reused between frames to avoid allocations
	pathVertices []ebiten.Vertex
	pathIndices  []uint16
	trianglesOp  = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawField renders the sky, the ground and both goals.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	t := cfg.Tuning
	w, h := float32(t.Field.Width), float32(t.Field.Height)
	gl := float32(t.GroundLine())

	screen.Fill(cfg.Field.Sky)
	vector.FillRect(screen, 0, gl, w, h-gl, cfg.Field.Ground, false)

	drawGoal(screen, sim.Left)
	drawGoal(screen, sim.Right)
}

// drawGoal draws the goal line, the post halfway along it and the net
// between post and wall.
func drawGoal(screen *ebiten.Image, side sim.Side) {
	t := cfg.Tuning
	gl := float32(t.GroundLine())
	top := float32(t.GoalMouthTop())
	goalW := float32(t.Field.GoalWidth)
	post := goalW / 2

	// Net spans [netFrom, netTo] horizontally.
	lineFrom, netFrom, netTo := float32(0), float32(0), post
	if side == sim.Right {
		lineFrom = float32(t.Field.Width) - goalW
		netFrom = float32(t.Field.Width) - post
		netTo = float32(t.Field.Width)
		post = netFrom
	}

	step := cfg.Field.NetStep
	for x := netFrom; x <= netTo; x += step {
		vector.StrokeLine(screen, x, top, x, gl, cfg.Field.NetSize, cfg.Field.Net, true)
	}
	for y := top; y <= gl; y += step {
		vector.StrokeLine(screen, netFrom, y, netTo, y, cfg.Field.NetSize, cfg.Field.Net, true)
	}

	vector.StrokeLine(screen, lineFrom, gl, lineFrom+goalW, gl, cfg.Field.PostSize, cfg.Field.Post, true)
	vector.StrokeLine(screen, post, gl, post, top, cfg.Field.PostSize, cfg.Field.Post, true)
}

// DrawCampingTimers shows how long each slime may still stay in its own
// goal zone, as a shrinking bar under the goal.
func DrawCampingTimers(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	t := cfg.Tuning
	st := session.Sim()
	for _, side := range []sim.Side{sim.Left, sim.Right} {
		sl := st.Slimes[side]
		if sl.GoalLineTime <= 0 || !session.GoalZone(side) {
			continue
		}
		left := CampingFractionLeft(sl.GoalLineTime, t.Camping.LimitSeconds)
		width := float32(t.Field.GoalWidth * left)
		x := float32(0)
		if side == sim.Right {
			x = float32(t.Field.Width - t.Field.GoalWidth)
		}
		c := cfg.Field.TimerSafe
		if left <= cfg.Field.TimerWarnAt {
			c = cfg.Field.TimerWarn
		}
		y := float32(t.GroundLine()) + cfg.Field.TimerOffsetY
		vector.StrokeLine(screen, x, y, x+width, y, cfg.Field.TimerSize, c, false)
	}
}

// CampingFractionLeft is the share of the camping limit not yet used.
func CampingFractionLeft(elapsed, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return gamemath.Clamp(1-elapsed/limit, 0, 1)
}

// DrawSlimes renders both slimes as domes with an eye tracking the ball.
func DrawSlimes(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	st := session.Sim()
	for _, side := range []sim.Side{sim.Left, sim.Right} {
		drawSlime(screen, st.Slimes[side], side, st.Ball)
	}
}

func drawSlime(screen *ebiten.Image, sl sim.Slime, side sim.Side, ball sim.Ball) {
	r := float32(cfg.Tuning.Slime.Radius)
	x, y := float32(sl.X), float32(sl.Y)

	var dome vector.Path
	dome.Arc(x, y, r, math.Pi, 2*math.Pi, vector.Clockwise)
	dome.Close()
	fillPath(screen, &dome, cfg.Slime.Colors[side])

	// Accent stripe on the trailing shoulder.
	from, to := float32(math.Pi+0.3), float32(math.Pi+0.7)
	if side == sim.Right {
		from, to = float32(2*math.Pi-0.7), float32(2*math.Pi-0.3)
	}
	var stripe vector.Path
	stripe.Arc(x, y, r-5, from, to, vector.Clockwise)
	stripe.Arc(x, y, r-15, to, from, vector.CounterClockwise)
	stripe.Close()
	fillPath(screen, &stripe, cfg.Slime.Accents[side])

	if sl.IsGrabbing {
		strokePath(screen, &dome, cfg.Slime.GrabOutline, 2)
	}

	dir := side.Dir()
	radius := cfg.Tuning.Slime.Radius
	eyeX := sl.X + dir*radius*cfg.Slime.EyeOffsetX
	eyeY := sl.Y - radius*cfg.Slime.EyeOffsetY
	vector.DrawFilledCircle(screen, float32(eyeX), float32(eyeY), cfg.Slime.EyeRadius, cfg.Slime.Eye, true)

	px, py := PupilPosition(eyeX, eyeY, ball.X, ball.Y,
		float64(cfg.Slime.EyeRadius-cfg.Slime.PupilRadius))
	vector.DrawFilledCircle(screen, float32(px), float32(py), cfg.Slime.PupilRadius, cfg.Slime.Pupil, true)
}

// PupilPosition places the pupil inside the eye, looking toward (tx, ty).
func PupilPosition(eyeX, eyeY, tx, ty, reach float64) (float64, float64) {
	dx, dy := tx-eyeX, ty-eyeY
	d := gamemath.Length(dx, dy)
	if d == 0 {
		return eyeX, eyeY
	}
	return eyeX + dx/d*reach, eyeY + dy/d*reach
}

// DrawBall renders the ball.
func DrawBall(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(ecs)
	if session == nil {
		return
	}
	b := session.Sim().Ball
	r := float32(cfg.Tuning.Ball.Radius)
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), r, cfg.Ball.Color, true)
	vector.StrokeCircle(screen, float32(b.X), float32(b.Y), r, 1, cfg.Ball.Outline, true)
}

func fillPath(screen *ebiten.Image, p *vector.Path, c color.RGBA) {
	pathVertices, pathIndices = p.AppendVerticesAndIndicesForFilling(pathVertices[:0], pathIndices[:0])
	drawPathTriangles(screen, c)
}

func strokePath(screen *ebiten.Image, p *vector.Path, c color.RGBA, width float32) {
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	pathVertices, pathIndices = p.AppendVerticesAndIndicesForStroke(pathVertices[:0], pathIndices[:0], op)
	drawPathTriangles(screen, c)
}

func drawPathTriangles(screen *ebiten.Image, c color.RGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range pathVertices {
		pathVertices[i].SrcX = 1
		pathVertices[i].SrcY = 1
		pathVertices[i].ColorR = r * a
		pathVertices[i].ColorG = g * a
		pathVertices[i].ColorB = b * a
		pathVertices[i].ColorA = a
	}
	screen.DrawTriangles(pathVertices, pathIndices, whiteSubImage, trianglesOp)
}
