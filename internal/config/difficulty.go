package config

import "math"

// DifficultyManager derives the progression base speed from distance.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables the distance ramp.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the distance ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampRate > 0
}

// BaseSpeed returns min(cap, base + distance*rate) scaled by the species speed.
// With the ramp disabled the base speed stays at its starting value.
func (d *DifficultyManager) BaseSpeed(distance, speciesSpeed float64) float64 {
	speed := d.cfg.BaseSpeed
	if d.IsEnabled() {
		speed = math.Min(d.cfg.SpeedCap, d.cfg.BaseSpeed+math.Max(0, distance)*d.cfg.RampRate)
	}
	return speed * speciesSpeed
}

// Level returns how far along the ramp a distance is, from 0.0 to 1.0.
func (d *DifficultyManager) Level(distance float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	span := d.cfg.SpeedCap - d.cfg.BaseSpeed
	if span <= 0 {
		return 1 // Already at the cap
	}
	progress := math.Max(0, distance) * d.cfg.RampRate / span
	return clampF(progress, 0.0, 1.0)
}

// Decay returns the speed lost per second while not boosting.
func (d *DifficultyManager) Decay() float64 {
	return d.cfg.SpeedDecay
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
