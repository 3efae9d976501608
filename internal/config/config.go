// Package config provides YAML-based configuration loading and
// difficulty management for the reef runner.
package config

import (
	"errors"
	"fmt"
)

// ReefConfig contains every tunable of a run.
type ReefConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Boost      BoostConfig      `yaml:"boost"`
	Movement   MovementConfig   `yaml:"movement"`
	Camera     CameraConfig     `yaml:"camera"`
	World      WorldConfig      `yaml:"world"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Combo      ComboConfig      `yaml:"combo"`
	Effects    EffectsConfig    `yaml:"effects"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's speed envelope and hit response.
type PlayerConfig struct {
	Species         string  `yaml:"species"`          // Default species id
	MaxSpeed        float64 `yaml:"max_speed"`        // Speed ceiling without a speed power-up
	Bound           float64 `yaml:"bound"`            // Lateral clamp, applied to x and y
	HitHalfExtent   float64 `yaml:"hit_half_extent"`  // Half size of the player hit box
	Invulnerability float64 `yaml:"invulnerability"`  // Seconds of invulnerability after an obstacle hit
	FlashDuration   float64 `yaml:"flash_duration"`   // Seconds the player flashes after a hit
	MinSpeedFactor  float64 `yaml:"min_speed_factor"` // Hits never drop speed below base speed times this
}

// BoostConfig defines the boost energy model.
type BoostConfig struct {
	MaxEnergy float64 `yaml:"max_energy"`
	Drain     float64 `yaml:"drain"`     // Energy per second while boosting
	Regen     float64 `yaml:"regen"`     // Energy per second while not boosting
	GainRate  float64 `yaml:"gain_rate"` // Speed per second while boosting, times boost power
}

// Smoothing modes for position and rotation easing.
const (
	SmoothingPerTick = "per_tick"
	SmoothingDelta   = "delta"
)

// MovementConfig defines steering, easing and the swim animation.
type MovementConfig struct {
	MoveRate        float64 `yaml:"move_rate"`        // Units per second at agility 1
	PointerGain     float64 `yaml:"pointer_gain"`     // Target offset per unit of pointer axis
	Smoothing       string  `yaml:"smoothing"`        // "per_tick" or "delta"
	SmoothingFactor float64 `yaml:"smoothing_factor"` // Fraction of the gap closed per tick
	BankRoll        float64 `yaml:"bank_roll"`
	BankYaw         float64 `yaml:"bank_yaw"`
	Pitch           float64 `yaml:"pitch"`
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	BobFrequency    float64 `yaml:"bob_frequency"`
	EmitChance      float64 `yaml:"emit_chance"` // Trail particle chance per tick per unit of speed
	GhostInterval   float64 `yaml:"ghost_interval"`
	GhostMax        int     `yaml:"ghost_max"`
	GhostOpacity    float64 `yaml:"ghost_opacity"`
}

// CameraConfig defines the chase camera.
type CameraConfig struct {
	Follow          float64 `yaml:"follow"`   // Fraction of player x/y the camera follows
	Height          float64 `yaml:"height"`   // Offset above the player
	Distance        float64 `yaml:"distance"` // Offset behind the player on the travel axis
	Lerp            float64 `yaml:"lerp"`
	Sway            float64 `yaml:"sway"`
	BaseFOV         float64 `yaml:"base_fov"`
	FOVPerSpeed     float64 `yaml:"fov_per_speed"`
	JitterThreshold float64 `yaml:"jitter_threshold"`
	JitterScale     float64 `yaml:"jitter_scale"`
	LookFollow      float64 `yaml:"look_follow"`
	LookAhead       float64 `yaml:"look_ahead"`
	ShakeDuration   float64 `yaml:"shake_duration"`
}

// WorldConfig defines streaming, generation gates and cleanup.
type WorldConfig struct {
	SegmentLength     float64 `yaml:"segment_length"`
	SegmentCount      int     `yaml:"segment_count"`
	CleanupMin        float64 `yaml:"cleanup_min"`
	CleanupMax        float64 `yaml:"cleanup_max"`
	CollisionWindow   float64 `yaml:"collision_window"`
	ObstacleStartZ    float64 `yaml:"obstacle_start_z"` // Obstacles only spawn in segments beyond this
	PowerupStartZ     float64 `yaml:"powerup_start_z"`
	DecorationChance  float64 `yaml:"decoration_chance"`
	ObstacleChance    float64 `yaml:"obstacle_chance"`
	CollectibleChance float64 `yaml:"collectible_chance"`
	PowerupChance     float64 `yaml:"powerup_chance"`
	CreatureChance    float64 `yaml:"creature_chance"`
	CollectibleValue  int     `yaml:"collectible_value"`
	ExplosionRadius   float64 `yaml:"explosion_radius"`
	CurrentX          float64 `yaml:"current_x"`
	CurrentY          float64 `yaml:"current_y"`
	BubbleInterval    float64 `yaml:"bubble_interval"`
	MaxBubbles        int     `yaml:"max_bubbles"`
	TravelScale       float64 `yaml:"travel_scale"` // World units per unit of speed per second
}

// PowerupConfig defines power-up durations and effects.
type PowerupConfig struct {
	SpeedDuration      float64 `yaml:"speed_duration"`
	SpeedMax           float64 `yaml:"speed_max"`
	SpeedBonus         float64 `yaml:"speed_bonus"`
	ShieldDuration     float64 `yaml:"shield_duration"`
	MagnetDuration     float64 `yaml:"magnet_duration"`
	MagnetRadius       float64 `yaml:"magnet_radius"`
	MagnetPull         float64 `yaml:"magnet_pull"`
	MultiplierDuration float64 `yaml:"multiplier_duration"`
	MultiplierFactor   int     `yaml:"multiplier_factor"`
}

// ComboConfig defines the combo chain.
type ComboConfig struct {
	Max        int     `yaml:"max"`
	Window     float64 `yaml:"window"`      // Seconds before an idle combo resets
	SpeedBonus float64 `yaml:"speed_bonus"` // Speed gained per pickup
}

// EffectsConfig defines particle bursts and transient effects.
type EffectsConfig struct {
	ImpactParticles    int     `yaml:"impact_particles"`
	ExplosionParticles int     `yaml:"explosion_particles"`
	CollectParticles   int     `yaml:"collect_particles"`
	PowerupParticles   int     `yaml:"powerup_particles"`
	SharkParticles     int     `yaml:"shark_particles"`
	ParticleDecay      float64 `yaml:"particle_decay"` // Life lost per second
	ShockwaveDuration  float64 `yaml:"shockwave_duration"`
	TrailSegments      int     `yaml:"trail_segments"`
	TrailFade          float64 `yaml:"trail_fade"` // Opacity lost per second
	DamageShake        float64 `yaml:"damage_shake"`
	SharkShake         float64 `yaml:"shark_shake"`
}

// InputConfig defines how terminal input is interpreted.
type InputConfig struct {
	HoldWindow float64 `yaml:"hold_window"` // Seconds a key press counts as held
	Pointer    bool    `yaml:"pointer"`     // Whether mouse motion steers
}

// DifficultyConfig defines the base speed ramp over distance.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	BaseSpeed  float64 `yaml:"base_speed"`  // Base speed at distance 0
	SpeedCap   float64 `yaml:"speed_cap"`   // Base speed ceiling before species scaling
	RampRate   float64 `yaml:"ramp_rate"`   // Base speed gained per unit of distance
	SpeedDecay float64 `yaml:"speed_decay"` // Speed lost per second toward base while not boosting
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI string to a preset.
// Unknown values return an empty preset, meaning "use the config as is".
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// RampRateForPreset returns the base speed ramp for a difficulty preset.
func RampRateForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.00002
	case DifficultyHard:
		return 0.00005
	default:
		return 0.00003
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the values the simulation divides by or loops over.
func (c ReefConfig) Validate() error {
	switch {
	case c.World.SegmentLength <= 0:
		return fmt.Errorf("%w: world.segment_length must be positive", ErrInvalidConfig)
	case c.World.SegmentCount <= 0:
		return fmt.Errorf("%w: world.segment_count must be positive", ErrInvalidConfig)
	case c.World.CleanupMin >= c.World.CleanupMax:
		return fmt.Errorf("%w: world.cleanup_min must be below cleanup_max", ErrInvalidConfig)
	case c.Player.MaxSpeed <= 0:
		return fmt.Errorf("%w: player.max_speed must be positive", ErrInvalidConfig)
	case c.Boost.MaxEnergy <= 0:
		return fmt.Errorf("%w: boost.max_energy must be positive", ErrInvalidConfig)
	case c.Combo.Max < 1:
		return fmt.Errorf("%w: combo.max must be at least 1", ErrInvalidConfig)
	case c.Movement.Smoothing != SmoothingPerTick && c.Movement.Smoothing != SmoothingDelta:
		return fmt.Errorf("%w: movement.smoothing must be %q or %q", ErrInvalidConfig, SmoothingPerTick, SmoothingDelta)
	case c.Movement.SmoothingFactor <= 0 || c.Movement.SmoothingFactor > 1:
		return fmt.Errorf("%w: movement.smoothing_factor must be in (0, 1]", ErrInvalidConfig)
	case c.Movement.GhostMax < 0:
		return fmt.Errorf("%w: movement.ghost_max must not be negative", ErrInvalidConfig)
	}
	return nil
}
