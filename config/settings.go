package config

import (
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
)

// SettingsConfig lists the choices offered on the kickoff screen, in the
// order they cycle.
type SettingsConfig struct {
	Modes        []match.Mode
	Durations    []string // tuning duration presets
	Difficulties []ai.Difficulty

	DefaultMode       match.Mode
	DefaultDuration   string
	DefaultDifficulty ai.Difficulty
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Modes:             []match.Mode{match.ModeSingle, match.ModeTwoPlayer, match.ModeSpectate},
		Durations:         []string{"1min", "2min", "4min", "8min", "worldcup"},
		Difficulties:      []ai.Difficulty{ai.DifficultyEasy, ai.DifficultyNormal, ai.DifficultyHard},
		DefaultMode:       match.ModeSingle,
		DefaultDuration:   "1min",
		DefaultDifficulty: ai.DifficultyNormal,
	}
}
