package reef

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// ErrBadSnapshot is returned when a snapshot holds out-of-range values.
var ErrBadSnapshot = errors.New("reef: invalid progression snapshot")

// ProgressionSnapshot is the scoring and speed state of a run.
// Restoring it into a session with an identical world reproduces the same
// subsequent ticks for the same inputs.
type ProgressionSnapshot struct {
	Score           int     `json:"score"`
	Combo           int     `json:"combo"`
	ComboTimer      float64 `json:"combo_timer"`
	Distance        float64 `json:"distance"`
	Speed           float64 `json:"speed"`
	BaseSpeed       float64 `json:"base_speed"`
	MaxSpeed        float64 `json:"max_speed"`
	ScoreMultiplier int     `json:"score_multiplier"`
	BoostEnergy     float64 `json:"boost_energy"`
}

// Snapshot returns the current progression state.
func (g *Game) Snapshot() ProgressionSnapshot {
	if g.s == nil {
		return ProgressionSnapshot{}
	}
	s := g.s
	return ProgressionSnapshot{
		Score:           s.Progress.Score,
		Combo:           s.Progress.Combo,
		ComboTimer:      s.Progress.ComboTimer,
		Distance:        s.Progress.Distance,
		Speed:           s.Player.Speed,
		BaseSpeed:       s.Player.BaseSpeed,
		MaxSpeed:        s.Player.MaxSpeed,
		ScoreMultiplier: s.Progress.Multiplier,
		BoostEnergy:     s.Player.BoostEnergy,
	}
}

// RestoreProgression applies a snapshot to the running session.
func (g *Game) RestoreProgression(snap ProgressionSnapshot) error {
	if g.s == nil {
		return fmt.Errorf("reef: restore: no active run")
	}
	s := g.s
	if err := snap.validate(s.Cfg); err != nil {
		return err
	}

	s.Progress.Score = snap.Score
	s.Progress.Combo = snap.Combo
	s.Progress.ComboTimer = snap.ComboTimer
	s.Progress.Distance = snap.Distance
	s.Progress.Multiplier = snap.ScoreMultiplier
	s.Player.Speed = snap.Speed
	s.Player.BaseSpeed = snap.BaseSpeed
	s.Player.MaxSpeed = snap.MaxSpeed
	s.Player.BoostEnergy = snap.BoostEnergy
	s.Gen.SetTravelled(snap.Distance)
	return nil
}

// validate checks the snapshot against the run's limits, including the
// speed envelope [BaseSpeed*MinSpeedFactor, MaxSpeed].
func (snap ProgressionSnapshot) validate(cfg config.ReefConfig) error {
	for _, f := range []float64{snap.ComboTimer, snap.Distance, snap.Speed, snap.BaseSpeed, snap.MaxSpeed, snap.BoostEnergy} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite value", ErrBadSnapshot)
		}
	}
	maxMultiplier := max(1, cfg.Powerups.MultiplierFactor)
	floor := snap.BaseSpeed * cfg.Player.MinSpeedFactor
	switch {
	case snap.Score < 0:
		return fmt.Errorf("%w: negative score", ErrBadSnapshot)
	case snap.Combo < 1 || snap.Combo > cfg.Combo.Max:
		return fmt.Errorf("%w: combo %d outside [1, %d]", ErrBadSnapshot, snap.Combo, cfg.Combo.Max)
	case snap.ScoreMultiplier < 1 || snap.ScoreMultiplier > maxMultiplier:
		return fmt.Errorf("%w: score multiplier %d outside [1, %d]", ErrBadSnapshot, snap.ScoreMultiplier, maxMultiplier)
	case snap.BoostEnergy < 0 || snap.BoostEnergy > cfg.Boost.MaxEnergy:
		return fmt.Errorf("%w: boost energy %v", ErrBadSnapshot, snap.BoostEnergy)
	case snap.Distance < 0:
		return fmt.Errorf("%w: negative distance", ErrBadSnapshot)
	case snap.BaseSpeed <= 0 || snap.MaxSpeed <= 0:
		return fmt.Errorf("%w: base speed %v max speed %v", ErrBadSnapshot, snap.BaseSpeed, snap.MaxSpeed)
	case snap.Speed < floor || snap.Speed > snap.MaxSpeed:
		return fmt.Errorf("%w: speed %v outside [%v, %v]", ErrBadSnapshot, snap.Speed, floor, snap.MaxSpeed)
	}
	return nil
}

// MarshalProgression encodes a snapshot as JSON.
func MarshalProgression(snap ProgressionSnapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("reef: marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalProgression decodes a snapshot from JSON.
func UnmarshalProgression(data []byte) (ProgressionSnapshot, error) {
	var snap ProgressionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("reef: unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap ProgressionSnapshot) Hash() uint64 {
	h := uint64(snap.Score)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreMultiplier) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.ComboTimer, snap.Distance, snap.Speed, snap.BaseSpeed, snap.MaxSpeed, snap.BoostEnergy} {
		h = h*31 + math.Float64bits(f)
	}
	return h
}
