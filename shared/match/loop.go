package match

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop drives a Session in real time on its own goroutine. Other
// goroutines talk to the session through Do.
type GameLoop struct {
	session  *Session
	input    Input
	tickRate int
	running  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	commands chan func(*Session)
	onFrame  func(Snapshot)
	now      func() time.Time
}

// NewGameLoop creates a loop polling at tickRate. The session's frame gate
// still decides whether a simulation tick runs on each poll.
func NewGameLoop(session *Session, input Input, tickRate int) *GameLoop {
	return &GameLoop{
		session:  session,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		commands: make(chan func(*Session), 16),
		now:      time.Now,
	}
}

// OnFrame sets a callback that receives a snapshot after every poll. It runs
// on the loop goroutine. Must be called before Run.
func (g *GameLoop) OnFrame(fn func(Snapshot)) {
	g.onFrame = fn
}

// Do queues fn to run on the loop goroutine before the next frame.
func (g *GameLoop) Do(fn func(*Session)) {
	select {
	case g.commands <- fn:
	case <-g.stopChan:
	}
}

// Run blocks until Stop is called.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d polls/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Running reports whether Run is between start and stop.
func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Stop ends Run. Calling it again does nothing.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.processCommands()
	g.session.Frame(g.now(), g.input)
	if g.onFrame != nil {
		g.onFrame(g.session.Snapshot())
	}
}

func (g *GameLoop) processCommands() {
	for {
		select {
		case fn := <-g.commands:
			fn(g.session)
		default:
			return
		}
	}
}
