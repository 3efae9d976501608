package reef

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// Motion constants for the living reef.
const (
	collectibleSpin  = 2    // Radians per second
	collectibleFloat = 0.02 // Vertical bob per tick
	powerupPulse     = 0.1  // Scale amplitude
	obstacleSpinX    = 0.5  // Radians per second
	obstacleSpinY    = 0.3
	particleShrink   = 0.98 // Scale kept per 1/60 s
	bubbleSway       = 0.02
	bubbleCeiling    = 20
	bubbleFloor      = -20
	bubbleSpread     = 40
)

// updateProgression scrolls the world, streams segments, animates entities,
// ramps difficulty and runs every timer.
func updateProgression(s *Session) {
	dt := s.Dt
	cfg := s.Cfg
	p := &s.Player
	pr := &s.Progress

	move := p.Speed * dt * cfg.World.TravelScale
	pr.Distance += move

	s.Current = r3.Vec{
		X: math.Sin(s.Elapsed*0.5) * cfg.World.CurrentX,
		Y: math.Cos(s.Elapsed*0.3) * cfg.World.CurrentY,
	}

	s.World.Translate(move)
	s.Effects.translate(move)
	s.World.RemoveSegmentsPast(cfg.World.CleanupMax)
	s.Gen.SetTravelled(pr.Distance)
	streamSegments(s)
	s.World.Admit(s.admitZ())

	animateObstacles(s)
	animateCollectibles(s)
	animatePowerups(s)
	for _, c := range s.World.Creatures.All() {
		c.Animate(s.Elapsed, p.Pos)
	}
	updateParticles(s)
	updateBubbles(s)
	s.World.Cleanup(cfg.World.CleanupMin, cfg.World.CleanupMax)

	p.BaseSpeed = s.Difficulty.BaseSpeed(pr.Distance, s.Stats.Speed)
	if !p.Boosting {
		p.Speed = math.Max(p.BaseSpeed, p.Speed-s.Difficulty.Decay()*dt)
	}

	if pr.ComboTimer > 0 {
		pr.ComboTimer -= dt
		if pr.ComboTimer <= 0 {
			pr.ComboTimer = 0
			pr.Combo = 1
		}
	}

	expirePowerups(s)
	s.Effects.advance(dt, cfg.Effects, cfg.Camera.ShakeDuration)

	p.Speed = core.ClampF(p.Speed, s.minSpeed(), p.MaxSpeed)
}

// streamSegments tops the segment ring up to the configured count, each new
// segment one segment length beyond the farthest.
func streamSegments(s *Session) {
	length := s.Cfg.World.SegmentLength
	for len(s.World.Segments) < s.Cfg.World.SegmentCount {
		z, ok := s.World.FarthestZ()
		if !ok {
			z = 2 * length // First segment lands at +length
		}
		s.World.AddSegment(s.Gen.GenerateSegment(z - length))
	}
}

func animateObstacles(s *Session) {
	dt := s.Dt
	for _, o := range s.World.Obstacles.All() {
		o.Rot.X += (obstacleSpinX + o.Spin.X) * dt
		o.Rot.Y += (obstacleSpinY + o.Spin.Y) * dt
		o.Pos.X += s.Current.X * dt
		o.Pos.Y += s.Current.Y * dt
	}
}

func animateCollectibles(s *Session) {
	dt := s.Dt
	magnet := s.Powerups.Active(world.PowerupMagnet, s.Elapsed)
	cfg := s.Cfg.Powerups

	for _, c := range s.World.Collectibles.All() {
		c.Rot.Y += collectibleSpin * dt
		c.Pos.Y += math.Sin(s.Elapsed*2+c.Pos.X) * collectibleFloat
		if magnet {
			applyMagnet(c, s.Player.Pos, dt, cfg.MagnetRadius, cfg.MagnetPull)
		}
	}
}

// applyMagnet pulls a collectible toward the player. The step grows as the
// collectible gets closer but never carries it past the player.
func applyMagnet(c *world.Collectible, player r3.Vec, dt, radius, pull float64) {
	d := r3.Sub(player, c.Pos)
	dist := r3.Norm(d)
	if dist >= radius || dist < 1e-6 {
		return
	}
	step := math.Min(dt*pull/dist, dist)
	c.Pos = r3.Add(c.Pos, r3.Scale(step/dist, d))
}

func animatePowerups(s *Session) {
	pulse := 1 + math.Sin(s.Elapsed*3)*powerupPulse
	for _, pu := range s.World.Powerups.All() {
		pu.Rot.Y += s.Dt
		pu.Scale = pulse
	}
}

// updateParticles integrates particle motion. Velocities are per 1/60 s.
func updateParticles(s *Session) {
	frames := s.Dt * 60
	shrink := math.Pow(particleShrink, frames)
	for _, pt := range s.World.Particles.All() {
		pt.Pos = r3.Add(pt.Pos, r3.Scale(frames, pt.Vel))
		pt.Life -= pt.Decay * s.Dt
		pt.Scale *= shrink
	}
	s.World.Particles.RemoveIf(func(pt *world.Particle) bool { return pt.Life <= 0 })
}

// updateBubbles spawns ambient bubbles on a fixed cadence and lets them rise.
func updateBubbles(s *Session) {
	cfg := s.Cfg.World
	s.bubbleClock += s.Dt
	for s.bubbleClock >= cfg.BubbleInterval {
		s.bubbleClock -= cfg.BubbleInterval
		if s.World.Bubbles.Len() < cfg.MaxBubbles {
			spawnBubble(s)
		}
	}

	frames := s.Dt * 60
	for i, b := range s.World.Bubbles.All() {
		b.Pos = r3.Add(b.Pos, r3.Scale(frames, b.Vel))
		b.Pos.X += math.Sin(s.Elapsed*2+float64(i)) * bubbleSway
	}
	s.World.Bubbles.RemoveIf(func(b *world.Bubble) bool { return b.Pos.Y > bubbleCeiling })
}

func spawnBubble(s *Session) {
	s.World.AddBubble(&world.Bubble{
		Body: world.Body{
			Pos: r3.Vec{
				X: (s.fx.Float64() - 0.5) * bubbleSpread,
				Y: bubbleFloor,
				Z: s.Player.Pos.Z + (s.fx.Float64()-0.5)*bubbleSpread,
			},
			Scale: 0.1 + s.fx.Float64()*0.3,
		},
		Vel: r3.Vec{
			X: (s.fx.Float64() - 0.5) * 0.1,
			Y: 0.5 + s.fx.Float64()*0.5,
		},
	})
}
