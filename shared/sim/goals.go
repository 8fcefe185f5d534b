package sim

// InOwnGoalZone reports whether a slime stands in front of its own goal.
func (e *Engine) InOwnGoalZone(side Side, sl Slime) bool {
	if side == Left {
		return sl.X < e.t.Field.GoalWidth
	}
	return sl.X > e.t.Field.Width-e.t.Field.GoalWidth
}

// camping charges each slime for time spent guarding its own goal mouth. The
// first slime over the limit concedes a point.
func (e *Engine) camping(s State) (State, *Event) {
	for _, side := range [2]Side{Left, Right} {
		sl := &s.Slimes[side]
		if !e.InOwnGoalZone(side, *sl) {
			sl.GoalLineTime = 0
			continue
		}
		sl.GoalLineTime += e.t.TickSeconds()
		if sl.GoalLineTime >= e.t.Camping.LimitSeconds {
			return s, &Event{Kind: CampingPenalty, Scorer: side.Opponent(), Tick: s.Tick}
		}
	}
	return s, nil
}

// goal reports a ball touching a back wall below the crossbar. It runs before
// the wall bounce so a ball resting on the goal line still counts.
func (e *Engine) goal(s State) *Event {
	b := s.Ball
	if b.Y <= e.t.GoalMouthTop() {
		return nil
	}
	switch {
	case b.X <= e.t.Ball.Radius:
		return &Event{Kind: Goal, Scorer: Right, Tick: s.Tick}
	case b.X >= e.t.Field.Width-e.t.Ball.Radius:
		return &Event{Kind: Goal, Scorer: Left, Tick: s.Tick}
	}
	return nil
}
