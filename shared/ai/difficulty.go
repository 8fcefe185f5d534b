package ai

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty selects how sharp the AI plays.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a flag or settings value onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

// Profile holds the knobs a difficulty turns.
type Profile struct {
	// Hesitation skips jump requests while Oscillation is below it.
	Hesitation float64
	// SpeedScale multiplies every movement speed the brain asks for.
	SpeedScale float64
	// CooldownDelta is added to the retarget cooldown (minimum one tick).
	CooldownDelta int
}

// Profiles holds the preset for each difficulty. Normal is the reference
// opponent and changes nothing.
var Profiles map[Difficulty]Profile

func init() {
	Profiles = map[Difficulty]Profile{
		DifficultyEasy: {
			Hesitation:    0.35,
			SpeedScale:    0.85,
			CooldownDelta: 8, // slower to change its mind
		},
		DifficultyNormal: {
			SpeedScale: 1,
		},
		DifficultyHard: {
			SpeedScale:    1.05,
			CooldownDelta: -4,
		},
	}
}

// ProfileFor returns the preset for d, falling back to Normal.
func ProfileFor(d Difficulty) Profile {
	if p, ok := Profiles[d]; ok {
		return p
	}
	return Profiles[DifficultyNormal]
}

// Oscillation is a smooth 0..1 signal driven by simulated time. It stands in
// for randomness so that replays from a snapshot stay identical.
func Oscillation(tick uint64) float64 {
	return 0.5 + 0.5*math.Sin(float64(tick)/60)
}
