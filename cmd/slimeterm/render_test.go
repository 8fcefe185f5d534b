package main

import (
	"strings"
	"testing"

	"github.com/automoto/slime-soccer/shared/match"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/automoto/slime-soccer/shared/tuning"
)

// An 80x42 terminal gives 10x10 world units per field cell.
func testView() view {
	return newView(tuning.Default(), 80, 42)
}

func kickoffState() sim.State {
	return sim.State{Slimes: [2]sim.Slime{{X: 200, Y: 320}, {X: 600, Y: 320}}}
}

func TestViewCellClamps(t *testing.T) {
	v := testView()
	if col, row := v.cell(-5, 1000); col != 0 || row != v.rows-1 {
		t.Fatalf("cell = (%d, %d)", col, row)
	}
	if col, row := v.cell(405, 155); col != 40 || row != 15 {
		t.Fatalf("cell = (%d, %d), want (40, 15)", col, row)
	}
	if x, y := v.center(40, 15); x != 405 || y != 155 {
		t.Fatalf("center = (%v, %v)", x, y)
	}
}

func TestClassify(t *testing.T) {
	v := testView()
	s := kickoffState()
	tests := []struct {
		name     string
		col, row int
		want     cellKind
	}{
		{"left slime", 20, 30, cellSlimeLeft},
		{"right slime", 60, 30, cellSlimeRight},
		{"above slime dome", 20, 26, cellSky},
		{"ground", 40, 35, cellGround},
		{"net", 2, 25, cellNet},
		{"over the net", 2, 10, cellSky},
		{"open field", 40, 25, cellSky},
	}
	for _, tt := range tests {
		if got := v.classify(s, tt.col, tt.row); got != tt.want {
			t.Errorf("%s: classify(%d, %d) = %d, want %d", tt.name, tt.col, tt.row, got, tt.want)
		}
	}
}

func TestCampingBarShrinks(t *testing.T) {
	v := testView()
	s := kickoffState()
	_, barRow := v.cell(0, v.t.GroundLine()+1)

	s.Slimes[sim.Left].GoalLineTime = 0.5
	if got := v.classify(s, 1, barRow); got != cellTimerSafe {
		t.Fatalf("bar start = %d, want safe", got)
	}
	if got := v.classify(s, 5, barRow); got != cellGround {
		t.Fatalf("spent bar = %d, want ground", got)
	}
	if got := v.classify(s, 1, barRow+1); got != cellGround {
		t.Fatalf("bar drawn below its row: %d", got)
	}

	s.Slimes[sim.Left].GoalLineTime = 0.8
	if got := v.classify(s, 0, barRow); got != cellTimerWarn {
		t.Fatalf("nearly spent bar = %d, want warn", got)
	}
	if got := v.classify(s, 79, barRow); got != cellGround {
		t.Fatalf("right bar drawn without camping: %d", got)
	}
}

func TestHUDLine(t *testing.T) {
	snap := match.Snapshot{Match: match.State{Score: [2]int{2, 1}, TimeLeft: 75}}
	line := hudLine(snap, 40)
	if len(line) != 40 {
		t.Fatalf("len = %d: %q", len(line), line)
	}
	if !strings.HasPrefix(line, " CYAN 2") || !strings.HasSuffix(line, "1 RED ") || !strings.Contains(line, "01:15") {
		t.Fatalf("line = %q", line)
	}
	if narrow := hudLine(snap, 5); !strings.Contains(narrow, "01:15") {
		t.Fatalf("narrow line lost the clock: %q", narrow)
	}
}

func TestResultBanner(t *testing.T) {
	tests := []struct {
		m    match.State
		want string
	}{
		{match.State{Score: [2]int{1, 3}, Winner: match.WinnerRight}, "Red wins 3-1"},
		{match.State{Score: [2]int{4, 0}, Winner: match.WinnerLeft}, "Cyan wins 4-0"},
		{match.State{Score: [2]int{2, 2}, Winner: match.Draw}, "Draw 2-2"},
		{match.State{}, ""},
	}
	for _, tt := range tests {
		if got := resultBanner(tt.m); got != tt.want {
			t.Errorf("resultBanner(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestNextModeCycles(t *testing.T) {
	m := match.ModeSpectate
	seen := map[match.Mode]bool{}
	for range modes {
		seen[m] = true
		m = nextMode(m)
	}
	if m != match.ModeSpectate || len(seen) != len(modes) {
		t.Fatalf("cycle ended on %s after visiting %v", m, seen)
	}
}
