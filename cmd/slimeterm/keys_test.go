package main

import (
	"testing"
	"time"

	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/gdamore/tcell/v2"
)

func TestStickyKeysExpire(t *testing.T) {
	state := match.NewKeyState()
	keys := newStickyKeys(state)
	jump := match.Key{Side: sim.Left, Control: match.Jump}
	t0 := time.Unix(100, 0)

	keys.Press(jump, t0)
	keys.Expire(t0.Add(holdFor / 2))
	if !state.Pressed(sim.Left, match.Jump) {
		t.Fatal("released before the hold ran out")
	}

	// An auto-repeat extends the hold.
	keys.Press(jump, t0.Add(holdFor/2))
	keys.Expire(t0.Add(holdFor))
	if !state.Pressed(sim.Left, match.Jump) {
		t.Fatal("repeat did not extend the hold")
	}

	keys.Expire(t0.Add(holdFor/2 + holdFor))
	if state.Pressed(sim.Left, match.Jump) {
		t.Fatal("still held after expiry")
	}
}

func TestStickyKeysClear(t *testing.T) {
	state := match.NewKeyState()
	keys := newStickyKeys(state)
	now := time.Unix(100, 0)
	keys.Press(match.Key{Side: sim.Right, Control: match.MoveLeft}, now)
	keys.Press(match.Key{Side: sim.Left, Control: match.Grab}, now)

	keys.Clear()
	if state.Pressed(sim.Right, match.MoveLeft) || state.Pressed(sim.Left, match.Grab) {
		t.Fatal("clear left controls held")
	}
}

func TestControlFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want match.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), match.Key{Side: sim.Left, Control: match.MoveLeft}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), match.Key{Side: sim.Left, Control: match.Jump}, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), match.Key{Side: sim.Left, Control: match.Grab}, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), match.Key{Side: sim.Right, Control: match.MoveRight}, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), match.Key{Side: sim.Right, Control: match.Grab}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), match.Key{}, false},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), match.Key{}, false},
	}
	for _, tt := range tests {
		got, ok := controlFor(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("controlFor(%v) = %+v, %v; want %+v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}
