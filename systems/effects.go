package systems

import (
	"image/color"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects turns the session events of this frame into flashes, score
// pops and sounds, then advances the running tweens by one frame.
func UpdateEffects(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	data := components.Session.Get(entry)
	flash := components.Flash.Get(entry)
	pop := components.ScorePop.Get(entry)

	for _, ev := range data.Events {
		switch ev.Kind {
		case match.EventGoal:
			startFlash(flash, cfg.HUD.FlashColor)
			startPop(pop, int(ev.Scorer))
			QueueSFX(e, cfg.SoundGoal)
		case match.EventCampingPenalty:
			startFlash(flash, cfg.HUD.PenaltyColor)
			startPop(pop, int(ev.Scorer))
			QueueSFX(e, cfg.SoundPenalty)
		case match.EventMatchEnded:
			QueueSFX(e, cfg.SoundWhistle)
		}
	}
	data.Events = data.Events[:0]

	dt := 1 / float32(cfg.C.TPS)
	advanceFlash(flash, dt)
	advancePop(pop, dt)
}

func startFlash(f *components.FlashData, c color.RGBA) {
	f.Color = c
	f.Alpha = 1
	f.Tween = gween.New(1, 0, cfg.HUD.FlashSeconds, ease.OutQuad)
}

func advanceFlash(f *components.FlashData, dt float32) {
	if f.Tween == nil {
		return
	}
	alpha, done := f.Tween.Update(dt)
	f.Alpha = alpha
	if done {
		f.Tween = nil
		f.Alpha = 0
	}
}

func startPop(p *components.ScorePopData, side int) {
	p.Scale[side] = cfg.HUD.PopScale
	p.Tweens[side] = gween.New(cfg.HUD.PopScale, 1, cfg.HUD.PopSeconds, ease.OutBack)
}

func advancePop(p *components.ScorePopData, dt float32) {
	for i, tw := range p.Tweens {
		if tw == nil {
			continue
		}
		scale, done := tw.Update(dt)
		p.Scale[i] = scale
		if done {
			p.Tweens[i] = nil
			p.Scale[i] = 1
		}
	}
}
