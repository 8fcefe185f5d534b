package main

import (
	"sync"
	"time"

	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/gdamore/tcell/v2"
)

// Terminals report presses and auto-repeats but no releases, so a control
// stays held for holdFor after its last press. The window must outlast the
// gap between the first press and the first auto-repeat.
const holdFor = 180 * time.Millisecond

// stickyKeys turns key presses into held controls on a match.KeyState.
type stickyKeys struct {
	mu       sync.Mutex
	state    *match.KeyState
	deadline map[match.Key]time.Time
}

func newStickyKeys(state *match.KeyState) *stickyKeys {
	return &stickyKeys{state: state, deadline: map[match.Key]time.Time{}}
}

// Press holds a control until holdFor after now.
func (k *stickyKeys) Press(key match.Key, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.deadline[key] = now.Add(holdFor)
	k.state.Set(key.Side, key.Control, true)
}

// Expire releases every control whose hold has run out.
func (k *stickyKeys) Expire(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, until := range k.deadline {
		if !now.Before(until) {
			delete(k.deadline, key)
			k.state.Set(key.Side, key.Control, false)
		}
	}
}

// Clear releases everything.
func (k *stickyKeys) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.deadline = map[match.Key]time.Time{}
	k.state.Clear()
}

var runeControls = map[rune]match.Key{
	'a': {Side: sim.Left, Control: match.MoveLeft},
	'd': {Side: sim.Left, Control: match.MoveRight},
	'w': {Side: sim.Left, Control: match.Jump},
	's': {Side: sim.Left, Control: match.Grab},
}

var keyControls = map[tcell.Key]match.Key{
	tcell.KeyLeft:  {Side: sim.Right, Control: match.MoveLeft},
	tcell.KeyRight: {Side: sim.Right, Control: match.MoveRight},
	tcell.KeyUp:    {Side: sim.Right, Control: match.Jump},
	tcell.KeyDown:  {Side: sim.Right, Control: match.Grab},
}

// controlFor maps a terminal key to a slime control.
func controlFor(ev *tcell.EventKey) (match.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeControls[lower(ev.Rune())]
		return k, ok
	}
	k, ok := keyControls[ev.Key()]
	return k, ok
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
