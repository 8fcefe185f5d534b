package components

import (
	"github.com/automoto/slime-soccer/shared/match"
	"github.com/yohamta/donburi"
)

// SessionData holds the running match. Singleton.
type SessionData struct {
	Session *match.Session
	// Events collects session events raised during the current frame; the
	// effects system drains it.
	Events []match.Event
}

var Session = donburi.NewComponentType[SessionData]()
