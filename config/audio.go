package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundGoal
	SoundPenalty
	SoundWhistle
	SoundMenuSelect
)

// Note is one step of a synthesised cue.
type Note struct {
	Freq    float64 // Hz
	Seconds float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Attack        float64 // seconds of fade-in per note
	Release       float64 // seconds of fade-out per note
}

// SoundConfig maps sound IDs to the notes they are synthesised from
type SoundConfig struct {
	Cues              map[SoundID][]Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		Attack:        0.005,
		Release:       0.03,
	}

	Sound = SoundConfig{
		Cues: map[SoundID][]Note{
			SoundGoal:       {{Freq: 523.25, Seconds: 0.12}, {Freq: 659.25, Seconds: 0.12}, {Freq: 783.99, Seconds: 0.25}},
			SoundPenalty:    {{Freq: 220, Seconds: 0.15}, {Freq: 164.81, Seconds: 0.3}},
			SoundWhistle:    {{Freq: 2093, Seconds: 0.2}, {Freq: 0, Seconds: 0.08}, {Freq: 2093, Seconds: 0.5}},
			SoundMenuSelect: {{Freq: 880, Seconds: 0.05}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWhistle: 0.5,
		},
	}
}
