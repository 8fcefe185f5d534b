package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData is a full-screen fade played after a goal or a penalty.
type FlashData struct {
	Tween *gween.Tween // alpha 1 -> 0, nil when idle
	Alpha float32
	Color color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

// ScorePopData scales a side's score up and back down when it changes.
type ScorePopData struct {
	Tweens [2]*gween.Tween
	Scale  [2]float32
}

var ScorePop = donburi.NewComponentType[ScorePopData]()
