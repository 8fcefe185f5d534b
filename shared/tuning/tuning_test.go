package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchClassicField(t *testing.T) {
	tn := Default()

	if got := tn.GroundLine(); got != 320 {
		t.Fatalf("GroundLine() = %v, want 320", got)
	}
	if got := tn.HoldDistance(); got != 45 {
		t.Fatalf("HoldDistance() = %v, want 45", got)
	}
	if got := tn.ContactDistance(); got != 50 {
		t.Fatalf("ContactDistance() = %v, want 50", got)
	}
	if got := tn.GoalMouthTop(); got != 200 {
		t.Fatalf("GoalMouthTop() = %v, want 200", got)
	}
	if d, ok := tn.Duration("worldcup"); !ok || d != 300 {
		t.Fatalf("Duration(worldcup) = %d, %v; want 300, true", d, ok)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Slime.Speed = 99
	a.Match.Durations["1min"] = 1
	if b.Slime.Speed == 99 || b.Match.Durations["1min"] == 1 {
		t.Fatal("Default() shares state between calls")
	}
}

func TestParseOverlaysOnlyNamedKeys(t *testing.T) {
	tn, err := Parse([]byte("slime:\n  speed: 7\nmatch:\n  durations:\n    blitz: 30\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tn.Slime.Speed != 7 {
		t.Fatalf("speed = %v, want 7", tn.Slime.Speed)
	}
	if tn.Slime.Radius != 40 {
		t.Fatalf("radius = %v, want untouched default 40", tn.Slime.Radius)
	}
	if d, _ := tn.Duration("blitz"); d != 30 {
		t.Fatalf("blitz = %d, want 30", d)
	}
	if d, _ := tn.Duration("2min"); d != 120 {
		t.Fatalf("2min = %d, want default 120 kept", d)
	}
}

func TestValidateRejectsBrokenValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bouncy ball", "ball:\n  bounce_damping: 1.2\n"},
		{"no tick rate", "match:\n  tick_rate: 0\n"},
		{"narrow field", "field:\n  width: 50\n"},
		{"hold inset too deep", "grab:\n  hold_inset: 80\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  max_speed: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tn, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tn.Ball.MaxSpeed != 20 {
		t.Fatalf("max speed = %v, want 20", tn.Ball.MaxSpeed)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}
