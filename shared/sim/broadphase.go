package sim

import (
	"github.com/automoto/slime-soccer/shared/tuning"
	"github.com/solarlune/resolv"
)

const (
	cellSize = 16
	skin     = 2.0

	tagSlimeLeft  = "slime-left"
	tagSlimeRight = "slime-right"
	tagBall       = "ball"
)

var sideTags = [2]string{tagSlimeLeft, tagSlimeRight}

// broadphase keeps axis-aligned boxes for the slimes and the ball in a
// resolv.Space. Boxes are padded by skin so a cell overlap is a superset of
// a circle overlap. The space is offset by margin because a reflected ball can
// sit slightly outside the field for one tick.
type broadphase struct {
	space  *resolv.Space
	slimes [2]*resolv.Object
	ball   *resolv.Object
	margin float64
	slimeR float64
	ballR  float64
}

func newBroadphase(t *tuning.Tuning) *broadphase {
	margin := t.ContactDistance() + skin + cellSize
	w := int(t.Field.Width + 2*margin)
	h := int(t.Field.Height + 2*margin)

	b := &broadphase{
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
		margin: margin,
		slimeR: t.Slime.Radius + skin,
		ballR:  t.Ball.Radius + skin,
	}
	for side, tag := range sideTags {
		obj := resolv.NewObject(0, 0, 2*b.slimeR, 2*b.slimeR, tag)
		obj.Data = Side(side)
		b.slimes[side] = obj
		b.space.Add(obj)
	}
	b.ball = resolv.NewObject(0, 0, 2*b.ballR, 2*b.ballR, tagBall)
	b.space.Add(b.ball)
	return b
}

func (b *broadphase) place(obj *resolv.Object, x, y, r float64) {
	obj.X = x - r + b.margin
	obj.Y = y - r + b.margin
	obj.Update()
}

func (b *broadphase) syncSlimes(s State) {
	for i, sl := range s.Slimes {
		b.place(b.slimes[i], sl.X, sl.Y, b.slimeR)
	}
}

func (b *broadphase) syncBall(ball Ball) {
	b.place(b.ball, ball.X, ball.Y, b.ballR)
}

// near reports whether the ball shares a cell with the given slime.
func (b *broadphase) near(side Side) bool {
	return b.ball.Check(0, 0, sideTags[side]) != nil
}
