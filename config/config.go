package config

import (
	"image/color"

	"github.com/automoto/slime-soccer/shared/tuning"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// FieldConfig contains the pitch palette and goal geometry used by the renderer
type FieldConfig struct {
	Sky      color.RGBA
	Ground   color.RGBA
	Post     color.RGBA
	Net      color.RGBA
	NetStep  float32 // spacing between net lines
	PostSize float32
	NetSize  float32

	// camping timer bar below the ground line
	TimerSafe    color.RGBA
	TimerWarn    color.RGBA
	TimerWarnAt  float64 // remaining fraction that turns the bar to TimerWarn
	TimerOffsetY float32
	TimerSize    float32
}

// SlimeConfig contains slime colours per side
type SlimeConfig struct {
	Colors       [2]color.RGBA
	Accents      [2]color.RGBA
	GrabOutline  color.RGBA
	Eye          color.RGBA
	Pupil        color.RGBA
	EyeRadius    float32
	PupilRadius  float32
	EyeOffsetX   float64 // fraction of the radius toward the opponent's goal
	PupilOffsetX float64
	EyeOffsetY   float64 // fraction of the radius above the base
}

// BallConfig contains the ball palette
type BallConfig struct {
	Color   color.RGBA
	Outline color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin         float32
	TimerWidth     float32
	TimerHeight    float32
	FlashSeconds   float32 // goal flash fade-out
	PopSeconds     float32 // score pop settle time
	PopScale       float32 // score text scale at the start of a pop
	FlashColor     color.RGBA
	PenaltyColor   color.RGBA
	OverlayColor   color.RGBA
	TextColor      color.RGBA
	HintColor      color.RGBA
	RegularSize    float64
	BoldSize       float64
	TitleSize      float64
	SmallSize      float64
	ForecastColor  color.RGBA
	TargetColor    color.RGBA
	ForecastStride int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Assertions bool // panic on simulation invariant violations
	Overlay    bool // start with the AI overlay visible
}

// Global configuration instances
var C *Config
var Tuning *tuning.Tuning
var Field FieldConfig
var Slime SlimeConfig
var Ball BallConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	SetTuning(tuning.Default())

	Field = FieldConfig{
		Sky:      color.RGBA{R: 0, G: 0, B: 255, A: 255},
		Ground:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Post:     White,
		Net:      color.RGBA{R: 204, G: 204, B: 204, A: 204},
		NetStep:  10,
		PostSize: 3,
		NetSize:  1.5,

		TimerSafe:    Yellow,
		TimerWarn:    Red,
		TimerWarnAt:  0.3,
		TimerOffsetY: 10,
		TimerSize:    5,
	}

	Slime = SlimeConfig{
		Colors: [2]color.RGBA{
			{R: 0, G: 206, B: 209, A: 255}, // left: dark turquoise
			{R: 220, G: 20, B: 60, A: 255}, // right: crimson
		},
		Accents: [2]color.RGBA{
			{R: 0, G: 139, B: 139, A: 255},
			{R: 139, G: 0, B: 0, A: 255},
		},
		GrabOutline:  BrightYellow,
		Eye:          White,
		Pupil:        Black,
		EyeRadius:    5,
		PupilRadius:  2,
		EyeOffsetX:   0.3,
		PupilOffsetX: 0.35,
		EyeOffsetY:   0.3,
	}

	Ball = BallConfig{
		Color:   color.RGBA{R: 255, G: 215, B: 0, A: 255},
		Outline: color.RGBA{R: 120, G: 90, B: 0, A: 255},
	}

	HUD = HUDConfig{
		Margin:         8,
		TimerWidth:     80,
		TimerHeight:    26,
		FlashSeconds:   0.75,
		PopSeconds:     0.4,
		PopScale:       1.8,
		FlashColor:     White,
		PenaltyColor:   LightRed,
		OverlayColor:   BlackOverlay,
		TextColor:      White,
		HintColor:      Grey,
		RegularSize:    14,
		BoldSize:       20,
		TitleSize:      36,
		SmallSize:      11,
		ForecastColor:  color.RGBA{R: 255, G: 255, B: 255, A: 120},
		TargetColor:    BrightGreen,
		ForecastStride: 4,
	}

	Debug = DebugConfig{}
}

// SetTuning installs t as the active simulation tuning and sizes the screen
// to its field.
func SetTuning(t *tuning.Tuning) {
	Tuning = t
	tps := 60
	if C != nil {
		tps = C.TPS
	}
	C = &Config{
		Width:  int(t.Field.Width),
		Height: int(t.Field.Height),
		TPS:    tps,
	}
}
