package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Choices are
// stored by name so reordering the menus does not scramble them.
type SavedSettings struct {
	Mode       string  `json:"mode"`
	Duration   string  `json:"duration"`
	Difficulty string  `json:"difficulty"`
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	ShowDebug  bool    `json:"showDebug"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "slime_soccer",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings writes the kickoff screen choices to disk.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(SavedFromSettings(s))
}

// SavedFromSettings converts the settings component to its stored form.
func SavedFromSettings(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		Mode:       cfg.Settings.Modes[s.ModeIndex].String(),
		Duration:   cfg.Settings.Durations[s.DurationIndex],
		Difficulty: cfg.Settings.Difficulties[s.DifficultyIndex].String(),
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		ShowDebug:  s.ShowDebug,
	}
}

// ApplySavedSettings copies stored choices onto s. Unknown names keep the
// current value.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	for i, m := range cfg.Settings.Modes {
		if m.String() == saved.Mode {
			s.ModeIndex = i
		}
	}
	for i, d := range cfg.Settings.Durations {
		if d == saved.Duration {
			s.DurationIndex = i
		}
	}
	for i, d := range cfg.Settings.Difficulties {
		if d.String() == saved.Difficulty {
			s.DifficultyIndex = i
		}
	}
	if saved.SFXVolume >= 0 && saved.SFXVolume <= 1 {
		s.SFXVolume = saved.SFXVolume
	}
	s.Muted = saved.Muted
	s.ShowDebug = saved.ShowDebug
}
