// Command slimeterm plays slime soccer in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/tuning"
	"github.com/gdamore/tcell/v2"
)

// Polls run faster than the simulation so the frame gate, which never
// catches up on missed ticks, still sees close to the full tick rate.
const pollRate = 240

var modes = []match.Mode{match.ModeSpectate, match.ModeSingle, match.ModeTwoPlayer}

type app struct {
	screen   tcell.Screen
	t        *tuning.Tuning
	loop     *match.GameLoop
	keys     *stickyKeys
	frames   chan match.Snapshot
	last     match.Snapshot
	duration string
}

func main() {
	var (
		modeFlag       = flag.String("mode", "spectate", "who plays: single, 2p or spectate")
		durationFlag   = flag.String("duration", "1min", "match length preset: 1min, 2min, 4min, 8min or worldcup")
		difficultyFlag = flag.String("difficulty", "normal", "AI difficulty: easy, normal or hard")
		tuningFlag     = flag.String("tuning", "", "YAML file overriding simulation tuning")
		logFlag        = flag.String("log", "", "write logs to this file")
		volumeFlag     = flag.Float64("volume", 0.5, "sound volume from 0 to 1")
		muteFlag       = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	if err := run(*modeFlag, *durationFlag, *difficultyFlag, *tuningFlag, *logFlag, *volumeFlag, *muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "slimeterm: %v\n", err)
		os.Exit(1)
	}
}

func run(modeName, duration, difficulty, tuningPath, logPath string, volume float64, mute bool) error {
	// The screen belongs to tcell, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	t := tuning.Default()
	if tuningPath != "" {
		var err error
		if t, err = tuning.Load(tuningPath); err != nil {
			return fmt.Errorf("load tuning: %w", err)
		}
	}
	if _, ok := t.Duration(duration); !ok {
		return fmt.Errorf("unknown duration preset %q", duration)
	}
	mode, err := match.ParseMode(modeName)
	if err != nil {
		return err
	}
	diff, err := ai.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	session := match.NewSession(match.Config{Tuning: t, Mode: mode, Difficulty: diff, Logger: log.Default()})
	if !mute {
		snd, err := newSounds(volume)
		if err != nil {
			log.Printf("[sound] disabled: %v", err)
		} else {
			defer snd.Close()
			session.OnEvent(snd.Play)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	state := match.NewKeyState()
	a := &app{
		screen:   screen,
		t:        t,
		loop:     match.NewGameLoop(session, state, pollRate),
		keys:     newStickyKeys(state),
		frames:   make(chan match.Snapshot, 1),
		last:     session.Snapshot(),
		duration: duration,
	}
	a.loop.OnFrame(a.publish)
	go a.loop.Run()
	defer a.loop.Stop()

	a.events()
	return nil
}

// publish keeps only the newest snapshot for the renderer.
func (a *app) publish(snap match.Snapshot) {
	select {
	case <-a.frames:
	default:
	}
	select {
	case a.frames <- snap:
	default:
	}
}

func (a *app) events() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	expiry := time.NewTicker(20 * time.Millisecond)
	defer expiry.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
				a.redraw()
			}
		case snap := <-a.frames:
			a.last = snap
			a.redraw()
		case now := <-expiry.C:
			a.keys.Expire(now)
		}
	}
}

func (a *app) redraw() {
	banner := ""
	switch a.last.Match.Phase {
	case match.PhaseIdle:
		banner = "Mode: " + a.last.Mode.String()
	case match.PhaseEnded:
		banner = resultBanner(a.last.Match)
	default:
		if a.last.Paused {
			banner = "PAUSED"
		}
	}
	draw(a.screen, a.t, a.last, banner)
}

// handleKey reports false when the player quits.
func (a *app) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if a.last.Match.Phase != match.PhaseRunning {
			a.keys.Clear()
			duration := a.duration
			a.loop.Do(func(s *match.Session) {
				if err := s.StartPreset(duration); err != nil {
					log.Printf("[match] start: %v", err)
				}
			})
		}
		return true
	case tcell.KeyEscape:
		a.keys.Clear()
		a.loop.Do(func(s *match.Session) { s.ResetMatch() })
		return true
	case tcell.KeyRune:
		switch lower(ev.Rune()) {
		case 'q':
			return false
		case 'p':
			if a.last.Match.Phase == match.PhaseRunning {
				a.keys.Clear()
				a.loop.Do(func(s *match.Session) { s.SetPaused(!s.Paused()) })
			}
			return true
		case 'm':
			if a.last.Match.Phase == match.PhaseIdle {
				next := nextMode(a.last.Mode)
				a.loop.Do(func(s *match.Session) { s.SetMode(next) })
			}
			return true
		}
	}
	if k, ok := controlFor(ev); ok {
		a.keys.Press(k, now)
	}
	return true
}

func nextMode(m match.Mode) match.Mode {
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
