package reef

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// replay steps g with the autopilot for n ticks.
func replay(t *testing.T, g *Game, n int) {
	t.Helper()
	pilot := NewAutopilot()
	for range n {
		if _, err := g.Step(pilot.Input(g), testDt); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
}

func TestSnapshotRestoreReproducesTicks(t *testing.T) {
	ref := newTestGame(42)
	replay(t, ref, 300)
	data, err := MarshalProgression(ref.Snapshot())
	if err != nil {
		t.Fatalf("MarshalProgression() error = %v", err)
	}

	g := newTestGame(42)
	replay(t, g, 300)

	// Scramble the progression, then restore it from the encoded snapshot
	g.s.Progress.Score = 0
	g.s.Progress.Combo = 1
	g.s.Player.Speed = g.s.Player.BaseSpeed
	g.s.Player.BoostEnergy = 0

	snap, err := UnmarshalProgression(data)
	if err != nil {
		t.Fatalf("UnmarshalProgression() error = %v", err)
	}
	if err := g.RestoreProgression(snap); err != nil {
		t.Fatalf("RestoreProgression() error = %v", err)
	}

	replay(t, ref, 300)
	replay(t, g, 300)

	if ref.Snapshot() != g.Snapshot() {
		t.Errorf("restored run diverged:\n ref = %+v\n got = %+v", ref.Snapshot(), g.Snapshot())
	}
	if ref.s.Player.Pos != g.s.Player.Pos {
		t.Errorf("player positions differ: %v vs %v", ref.s.Player.Pos, g.s.Player.Pos)
	}
}

func TestRestoreRejectsBadSnapshot(t *testing.T) {
	g := newTestGame(1)
	good := g.Snapshot()

	tests := []struct {
		name   string
		mutate func(*ProgressionSnapshot)
	}{
		{"negative score", func(s *ProgressionSnapshot) { s.Score = -1 }},
		{"zero combo", func(s *ProgressionSnapshot) { s.Combo = 0 }},
		{"combo over max", func(s *ProgressionSnapshot) { s.Combo = 11 }},
		{"zero multiplier", func(s *ProgressionSnapshot) { s.ScoreMultiplier = 0 }},
		{"multiplier over factor", func(s *ProgressionSnapshot) { s.ScoreMultiplier = 3 }},
		{"speed over max", func(s *ProgressionSnapshot) { s.Speed = s.MaxSpeed + 0.1 }},
		{"speed under floor", func(s *ProgressionSnapshot) { s.Speed = s.BaseSpeed * 0.4 }},
		{"negative max speed", func(s *ProgressionSnapshot) { s.MaxSpeed = -1 }},
		{"zero base speed", func(s *ProgressionSnapshot) { s.BaseSpeed = 0 }},
		{"energy overflow", func(s *ProgressionSnapshot) { s.BoostEnergy = 101 }},
		{"nan speed", func(s *ProgressionSnapshot) { s.Speed = math.NaN() }},
		{"negative distance", func(s *ProgressionSnapshot) { s.Distance = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := good
			tc.mutate(&snap)
			if err := g.RestoreProgression(snap); !errors.Is(err, ErrBadSnapshot) {
				t.Errorf("RestoreProgression() error = %v, expected ErrBadSnapshot", err)
			}
		})
	}

	if g.Snapshot() != good {
		t.Error("rejected snapshots must leave the run untouched")
	}

	// The multiplier power-up value itself is accepted
	boosted := good
	boosted.ScoreMultiplier = g.s.Cfg.Powerups.MultiplierFactor
	if err := g.RestoreProgression(boosted); err != nil {
		t.Errorf("RestoreProgression() with an active multiplier: %v", err)
	}
}

func TestUnmarshalProgressionInvalid(t *testing.T) {
	if _, err := UnmarshalProgression([]byte("{not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newTestGame(1)
	before := g.Snapshot().Hash()
	g.Step(core.NewInputFrame(), testDt)
	if g.Snapshot().Hash() == before {
		t.Error("hash should change as the run progresses")
	}
}
