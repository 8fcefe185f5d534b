package systems

import (
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	sfxCache           = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesises every cue up front so the first goal does not
// stutter.
func PreloadAllSFX() {
	for id := range cfg.Sound.Cues {
		_ = sfxBytes(id)
	}
}

// QueueSFX asks the audio system to play a cue on its next update.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio plays the queued cues.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	if len(a.PendingSFX) == 0 {
		return
	}

	settings := GetOrCreateSettings(e)
	volume := settings.SFXVolume
	if settings.Muted {
		volume = 0
	}
	a.SFXVolume = volume

	if volume > 0 {
		initGlobalAudio()
		for _, id := range a.PendingSFX {
			playSFX(id, volume)
		}
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(id cfg.SoundID, volume float64) {
	pcm := sfxBytes(id)
	if len(pcm) == 0 {
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

func sfxBytes(id cfg.SoundID) []byte {
	if pcm, ok := sfxCache[id]; ok {
		return pcm
	}
	notes, ok := cfg.Sound.Cues[id]
	if !ok {
		log.Printf("[audio] no cue for sound %d", id)
		return nil
	}
	pcm := synthesize(notes, cfg.Audio.SampleRate, cfg.Audio.Attack, cfg.Audio.Release)
	sfxCache[id] = pcm
	return pcm
}

// synthesize renders notes as 16-bit little-endian stereo PCM. A zero
// frequency is a rest.
func synthesize(notes []cfg.Note, sampleRate int, attack, release float64) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.Seconds * float64(sampleRate))
	}
	buf := make([]byte, 0, total*4)

	for _, n := range notes {
		frames := int(n.Seconds * float64(sampleRate))
		for i := 0; i < frames; i++ {
			t := float64(i) / float64(sampleRate)
			var v float64
			if n.Freq > 0 {
				v = 0.3 * math.Sin(2*math.Pi*n.Freq*t) * envelope(t, n.Seconds, attack, release)
			}
			s := uint16(int16(v * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

// envelope fades a note in and out to avoid clicks.
func envelope(t, length, attack, release float64) float64 {
	g := 1.0
	if attack > 0 && t < attack {
		g = t / attack
	}
	if release > 0 && length-t < release {
		g = math.Min(g, (length-t)/release)
	}
	return g
}
