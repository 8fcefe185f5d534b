package match

import (
	"errors"
	"fmt"

	"github.com/automoto/slime-soccer/shared/ai"
	"github.com/automoto/slime-soccer/shared/sim"
	"github.com/vmihailenco/msgpack/v5"
)

const snapshotVersion = 2

// ErrSnapshotVersion is returned when restoring a snapshot written by an
// incompatible build.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot is a read-only copy of everything a session needs to resume:
// simulation, scoreboard and AI memory. Renderers draw from it.
type Snapshot struct {
	Version     int               `msgpack:"v"`
	Mode        Mode              `msgpack:"mode"`
	Difficulty  ai.Difficulty     `msgpack:"difficulty"`
	Sim         sim.State         `msgpack:"sim"`
	Match       State             `msgpack:"match"`
	Controllers [2]ControllerKind `msgpack:"controllers"`
	AI          [2]ai.State       `msgpack:"ai"`
	Paused      bool              `msgpack:"paused"`
}

// Snapshot captures the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Version:    snapshotVersion,
		Mode:       s.mode,
		Difficulty: s.difficulty,
		Sim:        s.sim,
		Match:      s.match,
		Paused:     s.paused,
	}
	for i, c := range s.controllers {
		snap.Controllers[i] = c.Kind
		if c.AI != nil {
			snap.AI[i] = *c.AI
		}
	}
	return snap
}

// Restore replaces the session state with snap. The countdown restarts on
// the next Frame.
func (s *Session) Restore(snap Snapshot) error {
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	s.mode = snap.Mode
	s.SetDifficulty(snap.Difficulty)
	for i, kind := range snap.Controllers {
		c := Controller{Kind: kind}
		if kind == AI {
			st := snap.AI[i]
			c.AI = &st
		}
		s.controllers[i] = c
	}
	s.sim = snap.Sim
	s.match = snap.Match
	s.paused = snap.Paused && snap.Match.Phase == PhaseRunning
	s.gate.Reset()
	s.clock.Stop()
	return nil
}

// EncodeSnapshot serialises a snapshot with msgpack.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses data written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w: %d", ErrSnapshotVersion, snap.Version)
	}
	return snap, nil
}
