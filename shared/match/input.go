package match

import (
	"sync"

	"github.com/automoto/slime-soccer/shared/sim"
)

// Control is one logical button.
type Control int

const (
	MoveLeft Control = iota
	MoveRight
	Jump
	Grab
)

func (c Control) String() string {
	switch c {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Jump:
		return "jump"
	case Grab:
		return "grab"
	}
	return "unknown"
}

// Input answers which controls are held down right now.
type Input interface {
	Pressed(side sim.Side, c Control) bool
}

// Key is a (side, control) pair.
type Key struct {
	Side    sim.Side
	Control Control
}

// KeySet is a plain Input backed by a map.
type KeySet map[Key]bool

// Pressed implements Input.
func (k KeySet) Pressed(side sim.Side, c Control) bool {
	return k[Key{side, c}]
}

// Set marks a control as held or released.
func (k KeySet) Set(side sim.Side, c Control, down bool) {
	if down {
		k[Key{side, c}] = true
		return
	}
	delete(k, Key{side, c})
}

// KeyState is a KeySet that input goroutines can write while the game loop
// reads it.
type KeyState struct {
	mu   sync.RWMutex
	keys KeySet
}

// NewKeyState returns an empty KeyState.
func NewKeyState() *KeyState {
	return &KeyState{keys: KeySet{}}
}

// Set marks a control as held or released.
func (s *KeyState) Set(side sim.Side, c Control, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys.Set(side, c, down)
}

// Clear releases every control.
func (s *KeyState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = KeySet{}
}

// Pressed implements Input.
func (s *KeyState) Pressed(side sim.Side, c Control) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys.Pressed(side, c)
}

// HumanIntent turns held keys into an intent. Left wins when both directions
// are held.
func HumanIntent(in Input, side sim.Side, speed float64) sim.Intent {
	var it sim.Intent
	if in == nil {
		return it
	}
	switch {
	case in.Pressed(side, MoveLeft):
		it.MoveX = -speed
	case in.Pressed(side, MoveRight):
		it.MoveX = speed
	}
	it.Jump = in.Pressed(side, Jump)
	it.Grab = in.Pressed(side, Grab)
	return it
}
