package match

import (
	"sync"
	"testing"
	"time"

	"github.com/automoto/slime-soccer/shared/sim"
)

func TestFrameGateDropsMissedTicks(t *testing.T) {
	g := NewFrameGate(60)
	t0 := time.Unix(0, 0)

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{10 * time.Millisecond, false},
		{17 * time.Millisecond, true},
		{30 * time.Millisecond, false},
		{200 * time.Millisecond, true}, // one tick, not ten
		{205 * time.Millisecond, false},
		{217 * time.Millisecond, true},
	}
	for _, st := range steps {
		if got := g.Ready(t0.Add(st.at)); got != st.want {
			t.Fatalf("Ready(+%v) = %v, want %v", st.at, got, st.want)
		}
	}
}

func TestSecondClockCadence(t *testing.T) {
	var c SecondClock
	t0 := time.Unix(0, 0)
	if c.Due(t0.Add(time.Hour)) {
		t.Fatal("unstarted clock fired")
	}

	c.Start(t0)
	if c.Due(t0.Add(999 * time.Millisecond)) {
		t.Fatal("fired before one second")
	}
	if !c.Due(t0.Add(time.Second)) {
		t.Fatal("did not fire at one second")
	}
	if c.Due(t0.Add(time.Second)) {
		t.Fatal("fired twice for one second")
	}
	if !c.Due(t0.Add(2500 * time.Millisecond)) {
		t.Fatal("did not fire at two seconds")
	}

	// A long stall yields one second, then resumes a second later.
	stall := t0.Add(10 * time.Second)
	if !c.Due(stall) || c.Due(stall.Add(time.Millisecond)) {
		t.Fatal("stall was not collapsed into a single second")
	}
	if !c.Due(stall.Add(time.Second)) {
		t.Fatal("clock did not resume after stall")
	}
}

func TestHumanIntentPrefersLeft(t *testing.T) {
	keys := KeySet{}
	keys.Set(sim.Left, MoveLeft, true)
	keys.Set(sim.Left, MoveRight, true)
	keys.Set(sim.Left, Grab, true)

	in := HumanIntent(keys, sim.Left, 5)
	if in.MoveX != -5 || !in.Grab || in.Jump {
		t.Fatalf("intent = %+v", in)
	}

	keys.Set(sim.Left, MoveLeft, false)
	if in := HumanIntent(keys, sim.Left, 5); in.MoveX != 5 {
		t.Fatalf("MoveX = %v after releasing left", in.MoveX)
	}
	if in := HumanIntent(nil, sim.Right, 5); in != (sim.Intent{}) {
		t.Fatalf("nil input gave %+v", in)
	}
}

func TestKeyStateConcurrentWrites(t *testing.T) {
	ks := NewKeyState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ks.Set(sim.Side(i%2), Control(j%4), j%2 == 0)
				ks.Pressed(sim.Side(i%2), Jump)
			}
		}(i)
	}
	wg.Wait()

	ks.Clear()
	ks.Set(sim.Right, Jump, true)
	if !ks.Pressed(sim.Right, Jump) || ks.Pressed(sim.Left, Jump) {
		t.Fatal("KeyState lost track of keys")
	}
}

func TestGameLoopRunsCommands(t *testing.T) {
	s := quietSession(ModeSpectate)
	loop := NewGameLoop(s, NewKeyState(), 500)

	running := make(chan Snapshot, 1)
	loop.OnFrame(func(snap Snapshot) {
		if snap.Match.Phase == PhaseRunning && snap.Sim.Tick > 0 {
			select {
			case running <- snap:
			default:
			}
		}
	})

	if loop.Running() {
		t.Fatal("loop reports running before Run")
	}
	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()
	loop.Do(func(s *Session) { _ = s.StartMatch(60) })

	select {
	case snap := <-running:
		if snap.Match.Duration != 60 {
			t.Fatalf("duration = %d", snap.Match.Duration)
		}
		if !loop.Running() {
			t.Fatal("loop delivered a frame but reports stopped")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop never ran the match")
	}

	loop.Stop()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if loop.Running() {
		t.Fatal("loop still reports running after Stop")
	}
	loop.Stop()
}
