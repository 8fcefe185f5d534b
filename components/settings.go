package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the choices made on the kickoff screen. Indices point
// into config.Settings.
type SettingsData struct {
	ModeIndex       int
	DurationIndex   int
	DifficultyIndex int
	ShowDebug       bool
	SFXVolume       float64
	Muted           bool
}

// Settings is the component type for settings state
var Settings = donburi.NewComponentType[SettingsData]()
