package systems

import (
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/yohamta/donburi/ecs"
)

// DefaultSettings returns the configured kickoff screen defaults.
func DefaultSettings() components.SettingsData {
	s := components.SettingsData{SFXVolume: cfg.Audio.DefaultSFXVol, ShowDebug: cfg.Debug.Overlay}
	SelectMode(&s, cfg.Settings.DefaultMode)
	SelectDuration(&s, cfg.Settings.DefaultDuration)
	SelectDifficulty(&s, cfg.Settings.DefaultDifficulty)
	return s
}

// SelectMode points s at mode. It reports false if mode is not offered.
func SelectMode(s *components.SettingsData, mode match.Mode) bool {
	for i, m := range cfg.Settings.Modes {
		if m == mode {
			s.ModeIndex = i
			return true
		}
	}
	return false
}

// SelectDuration points s at a duration preset.
func SelectDuration(s *components.SettingsData, preset string) bool {
	for i, d := range cfg.Settings.Durations {
		if d == preset {
			s.DurationIndex = i
			return true
		}
	}
	return false
}

// SelectDifficulty points s at an AI difficulty.
func SelectDifficulty(s *components.SettingsData, d ai.Difficulty) bool {
	for i, x := range cfg.Settings.Difficulties {
		if x == d {
			s.DifficultyIndex = i
			return true
		}
	}
	return false
}

// ChosenMode returns the selected player mode.
func ChosenMode(s *components.SettingsData) match.Mode {
	return cfg.Settings.Modes[s.ModeIndex]
}

// ChosenDuration returns the selected duration preset.
func ChosenDuration(s *components.SettingsData) string {
	return cfg.Settings.Durations[s.DurationIndex]
}

// ChosenDifficulty returns the selected AI difficulty.
func ChosenDifficulty(s *components.SettingsData) ai.Difficulty {
	return cfg.Settings.Difficulties[s.DifficultyIndex]
}

// applySettings pushes the choices onto the session. Only valid while idle;
// changing controllers mid-match would reset AI memory.
func applySettings(session *match.Session, s *components.SettingsData) {
	if session.Mode() != ChosenMode(s) {
		session.SetMode(ChosenMode(s))
	}
	session.SetDifficulty(ChosenDifficulty(s))
}

func cycle(i, n int) int {
	return (i + 1) % n
}

// GetOrCreateSettings returns the settings singleton.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, DefaultSettings())
	}
	return components.Settings.Get(entry)
}
