package config

import (
	_ "embed"
)

//go:embed defaults/reef.yaml
var defaultReefYAML []byte

// DefaultReefConfig returns the hardcoded reef configuration.
// It mirrors defaults/reef.yaml and is used if the embedded file fails to parse.
func DefaultReefConfig() ReefConfig {
	return ReefConfig{
		Player: PlayerConfig{
			Species:         "fish",
			MaxSpeed:        3.0,
			Bound:           12,
			HitHalfExtent:   2.0,
			Invulnerability: 1.0,
			FlashDuration:   0.1,
			MinSpeedFactor:  0.5,
		},
		Boost: BoostConfig{
			MaxEnergy: 100,
			Drain:     50,
			Regen:     20,
			GainRate:  2,
		},
		Movement: MovementConfig{
			MoveRate:        5,
			PointerGain:     2,
			Smoothing:       SmoothingPerTick,
			SmoothingFactor: 0.1,
			BankRoll:        0.3,
			BankYaw:         0.2,
			Pitch:           0.2,
			BobAmplitude:    0.05,
			BobFrequency:    3,
			EmitChance:      0.5,
			GhostInterval:   0.1,
			GhostMax:        10,
			GhostOpacity:    0.3,
		},
		Camera: CameraConfig{
			Follow:          0.3,
			Height:          6,
			Distance:        15,
			Lerp:            0.05,
			Sway:            0.1,
			BaseFOV:         80,
			FOVPerSpeed:     5,
			JitterThreshold: 2,
			JitterScale:     0.02,
			LookFollow:      0.1,
			LookAhead:       10,
			ShakeDuration:   0.5,
		},
		World: WorldConfig{
			SegmentLength:     25,
			SegmentCount:      20,
			CleanupMin:        -200,
			CleanupMax:        50,
			CollisionWindow:   30,
			ObstacleStartZ:    -50,
			PowerupStartZ:     -100,
			DecorationChance:  0.7,
			ObstacleChance:    0.6,
			CollectibleChance: 0.7,
			PowerupChance:     0.1,
			CreatureChance:    0.3,
			CollectibleValue:  100,
			ExplosionRadius:   5,
			CurrentX:          0.5,
			CurrentY:          0.3,
			BubbleInterval:    0.3,
			MaxBubbles:        30,
			TravelScale:       10,
		},
		Powerups: PowerupConfig{
			SpeedDuration:      10,
			SpeedMax:           4.0,
			SpeedBonus:         1.0,
			ShieldDuration:     8,
			MagnetDuration:     12,
			MagnetRadius:       15,
			MagnetPull:         20,
			MultiplierDuration: 15,
			MultiplierFactor:   2,
		},
		Combo: ComboConfig{
			Max:        10,
			Window:     3,
			SpeedBonus: 0.3,
		},
		Effects: EffectsConfig{
			ImpactParticles:    30,
			ExplosionParticles: 60,
			CollectParticles:   40,
			PowerupParticles:   50,
			SharkParticles:     40,
			ParticleDecay:      2,
			ShockwaveDuration:  0.5,
			TrailSegments:      10,
			TrailFade:          3,
			DamageShake:        0.02,
			SharkShake:         0.5,
		},
		Input: InputConfig{
			HoldWindow: 0.25,
			Pointer:    true,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			BaseSpeed:  0.5,
			SpeedCap:   2.0,
			RampRate:   0.00003,
			SpeedDecay: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultReefYAML
}
