package main

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/slime-soccer/shared/match"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone is one note of a cue. Freq 0 is a rest.
type tone struct {
	freq float64
	dur  time.Duration
}

var cues = map[match.EventKind][]tone{
	match.EventGoal: {
		{523.25, 90 * time.Millisecond},
		{659.25, 90 * time.Millisecond},
		{783.99, 180 * time.Millisecond},
	},
	match.EventCampingPenalty: {
		{220, 120 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{174.61, 220 * time.Millisecond},
	},
	match.EventMatchEnded: {
		{1318.5, 150 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{1318.5, 150 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{1318.5, 400 * time.Millisecond},
	},
}

// sounds plays a short cue for every session event.
type sounds struct {
	volume float64
}

func newSounds(volume float64) (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &sounds{volume: volume}, nil
}

// Play is a session event hook.
func (s *sounds) Play(ev match.Event) {
	st, err := cue(cues[ev.Kind])
	if err != nil || st == nil {
		return
	}
	speaker.Play(withVolume(st, s.volume))
}

func (s *sounds) Close() {
	speaker.Close()
}

// cue strings tones together. It returns nil for an empty cue.
func cue(tones []tone) (beep.Streamer, error) {
	if len(tones) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sampleRate.N(t.dur)
		if t.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(n, sine))
	}
	return beep.Seq(parts...), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
