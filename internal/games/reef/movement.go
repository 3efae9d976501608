package reef

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// updateMovement steers the player, runs the boost model and advances the
// swim animation.
func updateMovement(s *Session, in core.InputFrame) {
	p := &s.Player
	cfg := s.Cfg.Movement
	dt := s.Dt
	step := cfg.MoveRate * s.Stats.Agility * dt

	target := p.Pos
	switch {
	case in.Has(core.ActionLeft):
		target.X -= step
		p.TargetRot.Z, p.TargetRot.Y = cfg.BankRoll, cfg.BankYaw
	case in.Has(core.ActionRight):
		target.X += step
		p.TargetRot.Z, p.TargetRot.Y = -cfg.BankRoll, -cfg.BankYaw
	default:
		p.TargetRot.Z, p.TargetRot.Y = 0, 0
	}

	switch {
	case in.Has(core.ActionUp):
		target.Y += step
		p.TargetRot.X = -cfg.Pitch
	case in.Has(core.ActionDown):
		target.Y -= step
		p.TargetRot.X = cfg.Pitch
	default:
		p.TargetRot.X = 0
	}

	if s.Cfg.Input.Pointer || in.Touch.Active {
		x, y := in.Steering()
		target.X += x * cfg.PointerGain
		target.Y += y * cfg.PointerGain
	}

	updateBoost(s, in.Has(core.ActionBoost))

	alpha := smoothAlpha(cfg.Smoothing, cfg.SmoothingFactor, dt)
	p.Pos.X += (target.X - p.Pos.X) * alpha
	p.Pos.Y += (target.Y - p.Pos.Y) * alpha
	p.Rot = r3.Add(p.Rot, r3.Scale(alpha, r3.Sub(p.TargetRot, p.Rot)))
	clampPlayer(s)

	// Swim bob rides on top of the smoothed position
	p.Pos.Y += math.Sin(s.Elapsed*cfg.BobFrequency) * cfg.BobAmplitude
	clampPlayer(s)

	p.Pose = s.animate(s.Elapsed, p.Speed)
	emitTrail(s)
	updateGhosts(s)
}

// updateBoost drains energy into speed while boost is held, and
// regenerates it otherwise.
func updateBoost(s *Session, held bool) {
	p := &s.Player
	cfg := s.Cfg.Boost
	dt := s.Dt

	if held && p.BoostEnergy > 0 {
		p.Boosting = true
		p.BoostEnergy = math.Max(0, p.BoostEnergy-cfg.Drain*dt)
		p.Speed = math.Min(p.MaxSpeed, p.Speed+cfg.GainRate*s.Stats.BoostPower*dt)
		return
	}
	p.Boosting = false
	p.BoostEnergy = math.Min(cfg.MaxEnergy, p.BoostEnergy+cfg.Regen*dt)
}

func clampPlayer(s *Session) {
	b := s.Cfg.Player.Bound
	s.Player.Pos.X = core.ClampF(s.Player.Pos.X, -b, b)
	s.Player.Pos.Y = core.ClampF(s.Player.Pos.Y, -b, b)
}

// emitTrail drops a wake particle behind the player, more often at speed.
func emitTrail(s *Session) {
	p := &s.Player
	if s.fx.Float64() >= p.Speed*s.Cfg.Movement.EmitChance {
		return
	}
	pos := p.Pos
	pos.X += (s.fx.Float64() - 0.5) * 0.5
	pos.Y += (s.fx.Float64() - 0.5) * 0.5
	s.World.AddParticle(&world.Particle{
		Body: world.Body{Pos: pos, Scale: 0.1 + s.fx.Float64()*0.1},
		Vel: r3.Vec{
			X: (s.fx.Float64() - 0.5) * 0.02,
			Y: (s.fx.Float64() - 0.5) * 0.02,
		},
		Life:  1,
		Decay: 1,
		Color: s.Palette.Trail,
	})
}
