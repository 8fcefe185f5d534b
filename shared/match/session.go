package match

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// Config describes a session.
type Config struct {
	Tuning     *tuning.Tuning // nil means tuning.Default()
	Mode       Mode
	Difficulty ai.Difficulty
	Logger     *log.Logger // nil means log.Default()
}

// Session is one match plus everything needed to play it. A Session is not
// safe for concurrent use; GameLoop serialises access when it is driven from
// several goroutines.
type Session struct {
	t           *tuning.Tuning
	engine      *sim.Engine
	brain       *ai.Brain
	difficulty  ai.Difficulty
	mode        Mode
	controllers [2]Controller

	sim   sim.State
	match State

	gate   FrameGate
	clock  SecondClock
	paused bool

	hooks []func(Event)
	log   *log.Logger
}

// NewSession creates an idle session at kickoff.
func NewSession(cfg Config) *Session {
	t := cfg.Tuning
	if t == nil {
		t = tuning.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		t:      t,
		engine: sim.NewEngine(t),
		gate:   NewFrameGate(t.Match.TickRate),
		log:    logger,
	}
	s.SetMode(cfg.Mode)
	s.SetDifficulty(cfg.Difficulty)
	s.ResetMatch()
	return s
}

// Tuning returns the parameters the session runs with.
func (s *Session) Tuning() *tuning.Tuning {
	return s.t
}

// Mode returns who controls each slime.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode swaps controllers. AI memory starts fresh.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.controllers = Controllers(m, s.t)
}

// SetDifficulty changes the AI profile for both AI slimes.
func (s *Session) SetDifficulty(d ai.Difficulty) {
	s.difficulty = d
	s.brain = ai.NewBrain(s.t, ai.ProfileFor(d))
}

// Difficulty returns the AI difficulty in use.
func (s *Session) Difficulty() ai.Difficulty { return s.difficulty }

// Controller returns the controller of side.
func (s *Session) Controller(side sim.Side) Controller {
	return s.controllers[side]
}

// OnEvent registers a hook for goals, penalties and the final whistle.
func (s *Session) OnEvent(fn func(Event)) {
	s.hooks = append(s.hooks, fn)
}

// StartMatch resets everything and starts a match of the given length.
func (s *Session) StartMatch(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: %d seconds", ErrInvalidDuration, seconds)
	}
	s.resetField()
	s.match = State{TimeLeft: seconds, Duration: seconds, Phase: PhaseRunning}
	s.paused = false
	s.gate.Reset()
	s.clock.Stop()
	s.log.Printf("[match] started: %s, %ds", s.mode, seconds)
	return nil
}

// StartPreset starts a match using a named duration ("1min", "worldcup", ...).
func (s *Session) StartPreset(name string) error {
	d, ok := s.t.Duration(name)
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidDuration, name)
	}
	return s.StartMatch(d)
}

// ResetMatch returns to an idle kickoff with a blank scoreboard.
func (s *Session) ResetMatch() {
	s.resetField()
	s.match = State{
		TimeLeft: s.t.Match.DefaultDuration,
		Duration: s.t.Match.DefaultDuration,
		Phase:    PhaseIdle,
	}
	s.paused = false
	s.gate.Reset()
	s.clock.Stop()
}

// SetPaused freezes or resumes a running match. While paused Frame does
// nothing; the countdown restarts with a full second on resume.
func (s *Session) SetPaused(p bool) {
	if s.match.Phase != PhaseRunning || s.paused == p {
		return
	}
	s.paused = p
	s.gate.Reset()
	s.clock.Stop()
	if p {
		s.log.Printf("[match] paused at %ds", s.match.TimeLeft)
	}
}

// Paused reports whether a running match is frozen.
func (s *Session) Paused() bool { return s.paused }

func (s *Session) resetField() {
	s.sim = sim.Reset(s.sim, s.t)
	s.resetAI()
}

func (s *Session) resetAI() {
	for side, c := range s.controllers {
		if c.AI != nil {
			c.AI.Reset(s.t, sim.Side(side))
		}
	}
}

// SecondElapsed runs the countdown by one second and ends the match at zero.
func (s *Session) SecondElapsed() error {
	if s.match.Phase != PhaseRunning {
		return ErrNotRunning
	}
	s.match.TimeLeft--
	if s.match.TimeLeft <= 0 {
		s.match.TimeLeft = 0
		s.end()
	}
	return nil
}

func (s *Session) end() {
	s.match.Phase = PhaseEnded
	s.paused = false
	s.match.Winner = decide(s.match.Score)
	s.clock.Stop()
	s.log.Printf("[match] final whistle: %d-%d, %s", s.match.Score[sim.Left], s.match.Score[sim.Right], s.match.Winner)
	s.emit(Event{Kind: EventMatchEnded, Score: s.match.Score, Winner: s.match.Winner, Tick: s.sim.Tick})
}

// Tick advances the simulation by one fixed step.
func (s *Session) Tick(in Input) error {
	if s.match.Phase != PhaseRunning {
		return ErrNotRunning
	}

	var intents [2]sim.Intent
	for i, c := range s.controllers {
		side := sim.Side(i)
		view := ai.View{Sim: s.sim, Side: side, TimeLeft: s.match.TimeLeft, Duration: s.match.Duration}
		intents[i] = c.intent(side, s.brain, view, in, s.t.Slime.Speed)
	}

	next, events := s.engine.Step(s.sim, intents)
	s.sim = next
	for _, ev := range events {
		s.match.Score[ev.Scorer]++
		s.resetAI()
		s.log.Printf("[match] %s for %s at tick %d: %d-%d", ev.Kind, ev.Scorer, ev.Tick,
			s.match.Score[sim.Left], s.match.Score[sim.Right])
		s.emit(fromSim(ev, s.match.Score))
	}
	return nil
}

// Frame is the real-time driver: it applies the countdown first, then at
// most one tick if the frame gate allows it. It reports whether a tick ran.
func (s *Session) Frame(now time.Time, in Input) bool {
	if s.match.Phase != PhaseRunning || s.paused {
		return false
	}
	if !s.clock.Started() {
		s.clock.Start(now)
	}
	if s.clock.Due(now) {
		_ = s.SecondElapsed()
		if s.match.Phase != PhaseRunning {
			return false
		}
	}
	if !s.gate.Ready(now) {
		return false
	}
	return s.Tick(in) == nil
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.hooks {
		fn(ev)
	}
}

// Score returns the goals for left and right.
func (s *Session) Score() [2]int { return s.match.Score }

// TimeLeft returns the remaining seconds.
func (s *Session) TimeLeft() int { return s.match.TimeLeft }

// Winner returns the result, Undecided until the match ends.
func (s *Session) Winner() Winner { return s.match.Winner }

// Running reports whether the match is in play.
func (s *Session) Running() bool { return s.match.Phase == PhaseRunning }

// Phase returns the lifecycle stage.
func (s *Session) Phase() Phase { return s.match.Phase }

// Sim returns a copy of the simulation state.
func (s *Session) Sim() sim.State { return s.sim }

// Match returns a copy of the scoreboard.
func (s *Session) Match() State { return s.match }

// GoalZone reports whether side's slime is inside its own camping zone.
func (s *Session) GoalZone(side sim.Side) bool {
	return s.engine.InOwnGoalZone(side, s.sim.Slimes[side])
}

// AIPhase reports how the AI reads the position from side's point of view.
func (s *Session) AIPhase(side sim.Side) ai.Phase {
	return s.brain.PhaseFor(ai.View{Sim: s.sim, Side: side, TimeLeft: s.match.TimeLeft, Duration: s.match.Duration})
}
