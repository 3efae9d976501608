package reef

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// Effect colors.
const (
	colorImpact    uint32 = 0xff0000
	colorCollect   uint32 = 0x00ffff
	colorExplosion uint32 = 0xffaa00
)

const (
	shockwaveGrowth = 20 // Scale gained per second
	trailArc        = 2 // Peak height of the collection arc
)

// Shockwave is the expanding ring left by an explosion.
type Shockwave struct {
	ID      uint64
	Pos     r3.Vec
	Age     float64
	Scale   float64
	Opacity float64
}

// CollectTrail is the arc drawn from a picked collectible to the player.
type CollectTrail struct {
	ID      uint64
	Points  []r3.Vec
	Opacity float64
}

// Shake is one camera shake, decaying linearly over the shake duration.
type Shake struct {
	Intensity float64
	Age       float64
}

// Effects holds every transient effect. Each is advanced once per tick by
// the progression phase and dropped when finished.
type Effects struct {
	Shockwaves []*Shockwave
	Trails     []*CollectTrail
	Shakes     []*Shake

	nextID uint64
}

func (e *Effects) id() uint64 {
	e.nextID++
	return e.nextID
}

// advance ages every effect by dt and drops finished ones.
func (e *Effects) advance(dt float64, cfg config.EffectsConfig, shakeDuration float64) {
	waves := e.Shockwaves[:0]
	for _, w := range e.Shockwaves {
		w.Age += dt
		if w.Age >= cfg.ShockwaveDuration {
			continue
		}
		w.Scale = 1 + w.Age*shockwaveGrowth
		w.Opacity = 1 - w.Age/cfg.ShockwaveDuration
		waves = append(waves, w)
	}
	e.Shockwaves = waves

	trails := e.Trails[:0]
	for _, t := range e.Trails {
		t.Opacity -= cfg.TrailFade * dt
		if t.Opacity > 0 {
			trails = append(trails, t)
		}
	}
	e.Trails = trails

	shakes := e.Shakes[:0]
	for _, s := range e.Shakes {
		s.Age += dt
		if s.Age < shakeDuration {
			shakes = append(shakes, s)
		}
	}
	e.Shakes = shakes
}

// translate scrolls positioned effects with the world.
func (e *Effects) translate(dz float64) {
	for _, w := range e.Shockwaves {
		w.Pos.Z += dz
	}
	for _, t := range e.Trails {
		for i := range t.Points {
			t.Points[i].Z += dz
		}
	}
}

// clear cancels every pending effect.
func (e *Effects) clear() {
	e.Shockwaves = nil
	e.Trails = nil
	e.Shakes = nil
}

// shakeOffset sums the jitter of all active shakes.
func (e *Effects) shakeOffset(rng *rand.Rand, duration float64) r3.Vec {
	var off r3.Vec
	for _, s := range e.Shakes {
		amount := s.Intensity * (1 - s.Age/duration)
		off.X += (rng.Float64() - 0.5) * amount
		off.Y += (rng.Float64() - 0.5) * amount
	}
	return off
}

// burst spawns count particles flying out of pos.
func burst(s *Session, pos r3.Vec, color uint32, count int) {
	for range count {
		s.World.AddParticle(&world.Particle{
			Body: world.Body{Pos: pos, Scale: 0.1 + s.fx.Float64()*0.2},
			Vel: r3.Vec{
				X: (s.fx.Float64() - 0.5) * 2,
				Y: (s.fx.Float64() - 0.5) * 2,
				Z: s.fx.Float64() * 2,
			},
			Life:  1,
			Decay: s.Cfg.Effects.ParticleDecay,
			Color: color,
		})
	}
}

// explode detonates a mine: nearby obstacles are destroyed and a shockwave
// and particle burst are spawned.
func explode(s *Session, mine *world.Obstacle) {
	for _, o := range s.World.ObstaclesNear(mine.Pos, s.Cfg.World.ExplosionRadius, mine) {
		o.Removed = true
	}
	s.Effects.Shockwaves = append(s.Effects.Shockwaves, &Shockwave{
		ID:      s.Effects.id(),
		Pos:     mine.Pos,
		Scale:   1,
		Opacity: 1,
	})
	burst(s, mine.Pos, colorExplosion, s.Cfg.Effects.ExplosionParticles)
	s.emit(Event{Kind: EventExplosion, Pos: mine.Pos, EntityID: mine.ID})
}

// addCollectTrail draws an arc from a collectible to the player.
func addCollectTrail(s *Session, from, to r3.Vec) {
	segments := max(1, s.Cfg.Effects.TrailSegments)
	pts := make([]r3.Vec, segments+1)
	for i := range pts {
		t := float64(i) / float64(segments)
		pt := core.LerpVec(from, to, t)
		pt.Y += math.Sin(t*math.Pi) * trailArc
		pts[i] = pt
	}
	s.Effects.Trails = append(s.Effects.Trails, &CollectTrail{
		ID:      s.Effects.id(),
		Points:  pts,
		Opacity: 1,
	})
}

// shake starts a camera shake.
func shake(s *Session, intensity float64) {
	s.Effects.Shakes = append(s.Effects.Shakes, &Shake{Intensity: intensity})
}
