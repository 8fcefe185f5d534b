package systems

import (
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/automoto/slime-soccer/archetypes"
	"github.com/automoto/slime-soccer/components"
	cfg "github.com/automoto/slime-soccer/config"
	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestWorld(t *testing.T, mode match.Mode) (*ecs.ECS, *match.Session) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	s := match.NewSession(match.Config{Tuning: cfg.Tuning, Mode: mode, Logger: log.New(io.Discard, "", 0)})
	factory.CreateMatch(e, s)
	factory.CreateSlime(e, sim.Left)
	factory.CreateSlime(e, sim.Right)
	factory.CreateAudio(e, 1)
	archetypes.Input.Spawn(e)
	return e, s
}

func press(e *ecs.ECS, id cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[id] = true
}

func release(e *ecs.ECS) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	entry, _ := components.Audio.First(e.World)
	return components.Audio.Get(entry).PendingSFX
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{300, "05:00"},
		{481, "08:01"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCampingFractionLeft(t *testing.T) {
	tests := []struct {
		elapsed, limit, want float64
	}{
		{0, 1, 1},
		{0.25, 1, 0.75},
		{1, 1, 0},
		{2, 1, 0},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := CampingFractionLeft(tt.elapsed, tt.limit); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("CampingFractionLeft(%v, %v) = %v, want %v", tt.elapsed, tt.limit, got, tt.want)
		}
	}
}

func TestPupilStaysInsideEye(t *testing.T) {
	px, py := PupilPosition(100, 100, 400, 500, 3)
	if d := math.Hypot(px-100, py-100); math.Abs(d-3) > 1e-9 {
		t.Fatalf("pupil %v from centre, want 3", d)
	}
	if px <= 100 || py <= 100 {
		t.Fatalf("pupil (%v, %v) not looking toward the ball", px, py)
	}
	if px, py := PupilPosition(5, 5, 5, 5, 3); px != 5 || py != 5 {
		t.Fatalf("ball on the eye moved the pupil to (%v, %v)", px, py)
	}
}

func TestSynthesizeLengthAndRests(t *testing.T) {
	notes := []cfg.Note{{Freq: 440, Seconds: 0.1}, {Freq: 0, Seconds: 0.05}}
	pcm := synthesize(notes, 1000, 0.01, 0.01)
	if len(pcm) != 150*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 150*4)
	}
	for i := 100 * 4; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("rest is not silent at byte %d", i)
		}
	}
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Fatal("note does not start from silence")
	}
}

func TestEnvelope(t *testing.T) {
	if g := envelope(0.5, 1, 0.1, 0.1); g != 1 {
		t.Fatalf("sustain gain = %v", g)
	}
	if g := envelope(0.05, 1, 0.1, 0.1); math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("attack gain = %v", g)
	}
	if g := envelope(0.95, 1, 0.1, 0.1); math.Abs(g-0.5) > 1e-9 {
		t.Fatalf("release gain = %v", g)
	}
}

func TestSavedSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	SelectMode(&s, match.ModeSpectate)
	SelectDuration(&s, "worldcup")
	SelectDifficulty(&s, ai.DifficultyHard)
	s.Muted = true

	saved := SavedFromSettings(&s)
	if saved.Mode != "spectate" || saved.Duration != "worldcup" || saved.Difficulty != "hard" {
		t.Fatalf("saved = %+v", saved)
	}

	got := DefaultSettings()
	ApplySavedSettings(&got, saved)
	if got != s {
		t.Fatalf("restored %+v, want %+v", got, s)
	}

	// Unknown names keep what was there.
	ApplySavedSettings(&got, &SavedSettings{Mode: "lan", Duration: "forever", SFXVolume: 7})
	if ChosenMode(&got) != match.ModeSpectate || ChosenDuration(&got) != "worldcup" || got.SFXVolume != s.SFXVolume {
		t.Fatalf("unknown values changed settings: %+v", got)
	}
}

func TestSlimeControlsMapActions(t *testing.T) {
	var left, right components.SlimeInputData
	left.Current[cfg.ActionGrab] = true
	right.Current[cfg.ActionMoveLeft] = true
	c := slimeControls{&left, &right}

	if !c.Pressed(sim.Left, match.Grab) || c.Pressed(sim.Left, match.Jump) {
		t.Fatal("left controls misread")
	}
	if !c.Pressed(sim.Right, match.MoveLeft) || c.Pressed(sim.Right, match.MoveRight) {
		t.Fatal("right controls misread")
	}
	if (slimeControls{}).Pressed(sim.Left, match.Grab) {
		t.Fatal("missing input reported a press")
	}

	in := match.HumanIntent(c, sim.Right, 5)
	if in.MoveX != -5 {
		t.Fatalf("intent = %+v", in)
	}
}

func TestKickoffScreenCyclesAndStarts(t *testing.T) {
	e, s := newTestWorld(t, match.ModeSingle)
	settings := GetOrCreateSettings(e)
	SelectMode(settings, match.ModeSingle)

	press(e, cfg.ActionCycleMode)
	UpdateSession(e)
	if ChosenMode(settings) != match.ModeTwoPlayer || s.Mode() != match.ModeTwoPlayer {
		t.Fatalf("mode = %s / %s, want 2p", ChosenMode(settings), s.Mode())
	}

	// Holding the key does not cycle again.
	in := getOrCreateInput(e)
	in.Previous = in.Current
	UpdateSession(e)
	if ChosenMode(settings) != match.ModeTwoPlayer {
		t.Fatal("held key cycled twice")
	}

	release(e)
	press(e, cfg.ActionStart)
	UpdateSession(e)
	if !s.Running() {
		t.Fatalf("phase = %s after Start", s.Phase())
	}
	want, _ := cfg.Tuning.Duration(ChosenDuration(settings))
	if s.TimeLeft() != want {
		t.Fatalf("timeLeft = %d, want %d", s.TimeLeft(), want)
	}
	if sfx := pendingSFX(e); len(sfx) != 2 || sfx[0] != cfg.SoundMenuSelect || sfx[1] != cfg.SoundWhistle {
		t.Fatalf("pending sfx = %v", sfx)
	}
}

func TestBackAbandonsRunningMatch(t *testing.T) {
	e, s := newTestWorld(t, match.ModeSpectate)
	if err := s.StartMatch(60); err != nil {
		t.Fatal(err)
	}
	press(e, cfg.ActionBack)
	UpdateSession(e)
	if s.Phase() != match.PhaseIdle {
		t.Fatalf("phase = %s, want idle", s.Phase())
	}
}

func TestRunningSessionTicksInRealTime(t *testing.T) {
	e, s := newTestWorld(t, match.ModeSpectate)
	if err := s.StartMatch(60); err != nil {
		t.Fatal(err)
	}
	t0 := time.Unix(5000, 0)
	clock := t0
	now = func() time.Time { return clock }
	defer func() { now = time.Now }()

	for i := 0; i < 30; i++ {
		release(e)
		UpdateSession(e)
		clock = clock.Add(time.Second / 60)
	}
	if s.Sim().Tick == 0 {
		t.Fatal("no ticks ran")
	}
	if s.TimeLeft() != 60 {
		t.Fatalf("clock ran early: %d", s.TimeLeft())
	}
}

func TestGoalTriggersEffects(t *testing.T) {
	e, s := newTestWorld(t, match.ModeTwoPlayer)
	if err := s.StartMatch(60); err != nil {
		t.Fatal(err)
	}

	// Drive the ball into the right goal through the session.
	snap := s.Snapshot()
	snap.Sim.Ball = sim.Ball{X: 785, Y: 300, VX: 10}
	if err := s.Restore(snap); err != nil {
		t.Fatal(err)
	}
	if err := s.Tick(nil); err != nil {
		t.Fatal(err)
	}
	if s.Score() != [2]int{1, 0} {
		t.Fatalf("score = %v", s.Score())
	}

	UpdateEffects(e)
	entry, _ := components.Session.First(e.World)
	flash := components.Flash.Get(entry)
	pop := components.ScorePop.Get(entry)
	if flash.Alpha <= 0 || flash.Alpha >= 1 || flash.Color != cfg.HUD.FlashColor {
		t.Fatalf("flash = %+v", flash)
	}
	if pop.Scale[sim.Left] <= 1 || pop.Scale[sim.Right] != 1 {
		t.Fatalf("pop = %v", pop.Scale)
	}
	if len(components.Session.Get(entry).Events) != 0 {
		t.Fatal("events not drained")
	}
	if sfx := pendingSFX(e); len(sfx) != 1 || sfx[0] != cfg.SoundGoal {
		t.Fatalf("pending sfx = %v", sfx)
	}

	// Both tweens settle.
	for i := 0; i < 2*cfg.C.TPS; i++ {
		UpdateEffects(e)
	}
	if flash.Tween != nil || flash.Alpha != 0 || pop.Scale[sim.Left] != 1 {
		t.Fatalf("effects did not settle: flash %+v pop %v", flash, pop.Scale)
	}
}

func TestPauseTogglesAndGatesSystems(t *testing.T) {
	e, s := newTestWorld(t, match.ModeSpectate)
	calls := 0
	counted := WithPauseCheck(func(*ecs.ECS) { calls++ })

	press(e, cfg.ActionPause)
	UpdatePause(e)
	if IsPaused(e) {
		t.Fatal("paused an idle match")
	}

	if err := s.StartMatch(60); err != nil {
		t.Fatal(err)
	}
	release(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	counted(e)
	if !IsPaused(e) || calls != 0 {
		t.Fatalf("paused=%v calls=%d", IsPaused(e), calls)
	}

	release(e)
	press(e, cfg.ActionStart)
	UpdatePause(e)
	counted(e)
	if IsPaused(e) || calls != 1 {
		t.Fatalf("Start did not resume: paused=%v calls=%d", IsPaused(e), calls)
	}
}
