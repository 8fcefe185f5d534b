package match

import "time"

// FrameGate lets a tick through when at least one interval has passed since
// the previous one. Missed ticks are dropped, never caught up.
type FrameGate struct {
	interval time.Duration
	last     time.Time
	primed   bool
}

// NewFrameGate returns a gate for rate ticks per second.
func NewFrameGate(rate int) FrameGate {
	return FrameGate{interval: time.Second / time.Duration(rate)}
}

// Ready reports whether a tick may run at now, and records it if so.
func (g *FrameGate) Ready(now time.Time) bool {
	if g.primed && now.Sub(g.last) < g.interval {
		return false
	}
	g.primed = true
	g.last = now
	return true
}

// Reset forgets the previous tick.
func (g *FrameGate) Reset() {
	g.primed = false
}

// SecondClock fires once per second of wall time after Start.
type SecondClock struct {
	next    time.Time
	started bool
}

// Start arms the clock; the first second elapses one second after now.
func (c *SecondClock) Start(now time.Time) {
	c.next = now.Add(time.Second)
	c.started = true
}

// Stop disarms the clock.
func (c *SecondClock) Stop() {
	c.started = false
}

// Started reports whether Start has been called since the last Stop.
func (c *SecondClock) Started() bool {
	return c.started
}

// Due reports whether a second boundary has passed. It fires at most once
// per call; after a long stall it resynchronises instead of bursting.
func (c *SecondClock) Due(now time.Time) bool {
	if !c.started || now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(time.Second)
	if !now.Before(c.next) {
		c.next = now.Add(time.Second)
	}
	return true
}
