package sim

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/automoto/slime-soccer/shared/tuning"
)

func TestMain(m *testing.M) {
	DebugAssertions = true
	os.Exit(m.Run())
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(tuning.Default())
}

func idle() [2]Intent {
	return [2]Intent{}
}

func TestKickoffBallSettlesInBounds(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	for i := 0; i < 600; i++ {
		var evs []Event
		s, evs = e.Step(s, idle())
		if len(evs) != 0 {
			t.Fatalf("tick %d: unexpected events %v", s.Tick, evs)
		}
	}
	if s.Ball.X != 400 {
		t.Fatalf("ball drifted to x=%v with no horizontal input", s.Ball.X)
	}
	if s.Ball.Y > e.t.BallFloor() {
		t.Fatalf("ball y %v below floor", s.Ball.Y)
	}
	if s.Tick != 600 {
		t.Fatalf("tick = %d, want 600", s.Tick)
	}
}

func TestJumpRequiresGroundAndFreeHands(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()

	s, _ = e.Step(s, [2]Intent{{Jump: true}, {Jump: true, Grab: true}})
	if got := s.Slimes[Left].VY; math.Abs(got-(-11.4)) > 1e-9 {
		t.Fatalf("left VY after jump = %v, want -11.4", got)
	}
	if s.Slimes[Right].VY != 0 || s.Slimes[Right].Y != e.t.GroundLine() {
		t.Fatalf("grabbing right slime jumped: %+v", s.Slimes[Right])
	}

	vy := s.Slimes[Left].VY
	s, _ = e.Step(s, [2]Intent{{Jump: true}, {}})
	if got := s.Slimes[Left].VY; math.Abs(got-(vy+0.6)) > 1e-9 {
		t.Fatalf("airborne slime jumped again: VY = %v", got)
	}

	for i := 0; i < 60; i++ {
		s, _ = e.Step(s, idle())
	}
	if !s.Slimes[Left].Grounded(e.t.GroundLine()) {
		t.Fatalf("slime did not land: %+v", s.Slimes[Left])
	}
}

func TestSlimesStayInsideField(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	for i := 0; i < 200; i++ {
		s, _ = e.Step(s, [2]Intent{{MoveX: -5}, {MoveX: 5}})
		s.Slimes[Left].GoalLineTime = 0
		s.Slimes[Right].GoalLineTime = 0
	}
	if s.Slimes[Left].X != e.t.Slime.Radius {
		t.Fatalf("left x = %v, want %v", s.Slimes[Left].X, e.t.Slime.Radius)
	}
	if s.Slimes[Right].X != e.t.Field.Width-e.t.Slime.Radius {
		t.Fatalf("right x = %v", s.Slimes[Right].X)
	}
}

func TestGoalScoresOnceAndResetsSameTick(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		scorer Side
	}{
		{"into left goal", 15, -10, Right},
		{"into right goal", 785, 10, Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			s := e.Kickoff()
			s.Ball = Ball{X: tt.x, Y: 300, VX: tt.vx}

			next, evs := e.Step(s, idle())
			if len(evs) != 1 {
				t.Fatalf("events = %v, want exactly one", evs)
			}
			if evs[0].Kind != Goal || evs[0].Scorer != tt.scorer {
				t.Fatalf("event = %+v, want goal for %s", evs[0], tt.scorer)
			}
			want := NewState(e.t)
			want.Tick = 1
			if next != want {
				t.Fatalf("state after goal = %+v, want kickoff %+v", next, want)
			}
		})
	}
}

func TestBallAboveCrossbarBouncesOffWall(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	s.Ball = Ball{X: 15, Y: 100, VX: -10}

	next, evs := e.Step(s, idle())
	if len(evs) != 0 {
		t.Fatalf("events = %v, want none", evs)
	}
	if next.Ball.X != e.t.Ball.Radius {
		t.Fatalf("ball x = %v, want clamped to %v", next.Ball.X, e.t.Ball.Radius)
	}
	if math.Abs(next.Ball.VX-7.92) > 1e-9 {
		t.Fatalf("ball vx = %v, want 7.92", next.Ball.VX)
	}
}

func TestCampingPenaltyAfterOneSecond(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	s.Slimes[Left].X = 40

	for tick := 1; tick < 60; tick++ {
		var evs []Event
		s, evs = e.Step(s, idle())
		if len(evs) != 0 {
			t.Fatalf("tick %d: early penalty %v", tick, evs)
		}
		if s.Slimes[Left].GoalLineTime <= 0 {
			t.Fatalf("tick %d: camping timer not running", tick)
		}
	}

	s, evs := e.Step(s, idle())
	if len(evs) != 1 || evs[0].Kind != CampingPenalty || evs[0].Scorer != Right {
		t.Fatalf("tick 60 events = %v, want camping penalty for right", evs)
	}
	if s.Slimes[Left].GoalLineTime != 0 || s.Slimes[Left].X != e.t.Slime.StartLeftX {
		t.Fatalf("left slime not reset: %+v", s.Slimes[Left])
	}
}

func TestCampingTimerClearsOutsideZone(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	s.Slimes[Right].X = 780
	for i := 0; i < 30; i++ {
		s, _ = e.Step(s, idle())
	}
	if s.Slimes[Right].GoalLineTime == 0 {
		t.Fatal("timer did not run in goal zone")
	}
	s.Slimes[Right].X = 500
	s, _ = e.Step(s, idle())
	if s.Slimes[Right].GoalLineTime != 0 {
		t.Fatalf("timer = %v after leaving zone", s.Slimes[Right].GoalLineTime)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	s := e.Kickoff()
	for i := 0; i < 40; i++ {
		s, _ = e.Step(s, [2]Intent{{MoveX: 5, Jump: true}, {MoveX: -5}})
	}
	once := Reset(s, e.t)
	twice := Reset(once, e.t)
	if once != twice {
		t.Fatalf("Reset not idempotent:\n%+v\n%+v", once, twice)
	}
	if once.Tick != s.Tick {
		t.Fatalf("Reset dropped the tick counter")
	}
	once.Tick = 0
	if once != NewState(e.t) {
		t.Fatalf("Reset != kickoff: %+v", once)
	}
}

func TestDeterministicAndInvariantUnderLongPlay(t *testing.T) {
	run := func() State {
		e := newTestEngine(t)
		s := e.Kickoff()
		for i := 0; i < 3000; i++ {
			f := float64(i)
			in := [2]Intent{
				{MoveX: 5 * math.Sin(f/37), Jump: i%50 == 0, Grab: (i/90)%2 == 0},
				{MoveX: 5 * math.Cos(f/23), Jump: i%70 == 10, Grab: (i/120)%2 == 1},
			}
			s, _ = e.Step(s, in)
			if err := CheckInvariants(s, e.t); err != nil {
				t.Fatalf("tick %d: %v", s.Tick, err)
			}
		}
		return s
	}

	a, b := run(), run()
	if a != b {
		t.Fatalf("same inputs produced different states:\n%+v\n%+v", a, b)
	}
}

func TestCheckInvariantsCatchesViolations(t *testing.T) {
	tn := tuning.Default()
	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"slime under ground", func(s *State) { s.Slimes[Left].Y = 400 }},
		{"slime through wall", func(s *State) { s.Slimes[Right].X = 799 }},
		{"phantom possession", func(s *State) { s.Slimes[Left].HasBall = true }},
		{"camping timer in midfield", func(s *State) { s.Slimes[Right].GoalLineTime = 0.5 }},
		{"held ball off orbit", func(s *State) {
			s.Ball.GrabbedBy = OwnedByRight
			s.Slimes[Right].HasBall = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tn)
			tt.mutate(&s)
			if err := CheckInvariants(s, tn); !errors.Is(err, ErrInvariant) {
				t.Fatalf("CheckInvariants = %v, want ErrInvariant", err)
			}
		})
	}

	if err := CheckInvariants(NewState(tn), tn); err != nil {
		t.Fatalf("kickoff state rejected: %v", err)
	}
}
