package reef

import (
	"math"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// damageToSpeed converts obstacle damage into speed lost.
const damageToSpeed = 0.01

// sharkSlowdown is the fraction of speed kept after a shark hit.
const sharkSlowdown = 0.5

// checkCollisions tests the player against every entity near it on the
// travel axis and applies the results. Consumed entities are marked and
// swept at the end, so no pool is modified while it is being walked.
func checkCollisions(s *Session) {
	box := s.playerBox()
	window := s.Cfg.World.CollisionWindow

	for _, o := range s.World.Obstacles.All() {
		// A hit grants invulnerability, which skips the remaining obstacles
		if s.invulnerable() {
			break
		}
		if o.Removed || math.Abs(o.Pos.Z) > window {
			continue
		}
		if core.BoxesOverlap(box, o.Bounds()) {
			hitObstacle(s, o)
		}
	}

	for _, c := range s.World.Collectibles.All() {
		if c.Removed || math.Abs(c.Pos.Z) > window {
			continue
		}
		if core.BoxesOverlap(box, c.Bounds()) {
			collect(s, c)
		}
	}

	for _, pu := range s.World.Powerups.All() {
		if pu.Removed || math.Abs(pu.Pos.Z) > window {
			continue
		}
		if core.BoxesOverlap(box, pu.Bounds()) {
			activatePowerup(s, pu.Kind)
			burst(s, pu.Pos, pu.Kind.Color(), s.Cfg.Effects.PowerupParticles)
			pu.Removed = true
		}
	}

	for _, c := range s.World.Creatures.All() {
		if s.invulnerable() {
			break
		}
		if !c.Dangerous || math.Abs(c.Pos.Z) > window {
			continue
		}
		if core.BoxesOverlap(box, c.Bounds()) {
			hitShark(s, c)
		}
	}

	s.World.Sweep()
}

func hitObstacle(s *Session, o *world.Obstacle) {
	p := &s.Player
	p.Speed = math.Max(s.minSpeed(), p.Speed-o.Damage*damageToSpeed)

	burst(s, p.Pos, colorImpact, s.Cfg.Effects.ImpactParticles)
	shake(s, o.Damage*s.Cfg.Effects.DamageShake)
	if o.Explosive {
		explode(s, o)
	}

	s.Progress.Combo = 1
	s.Progress.ComboTimer = 0
	s.Progress.Hits++

	p.InvulnUntil = s.Elapsed + s.Cfg.Player.Invulnerability
	p.FlashUntil = s.Elapsed + s.Cfg.Player.FlashDuration
	o.Removed = true

	s.emit(Event{Kind: EventObstacleHit, Pos: o.Pos, EntityID: o.ID, Value: int(o.Damage)})
}

func collect(s *Session, c *world.Collectible) {
	p := &s.Player
	pr := &s.Progress

	gained := c.Value * pr.Combo * pr.Multiplier
	pr.Score += gained
	pr.Combo = min(pr.Combo+1, s.Cfg.Combo.Max)
	pr.ComboTimer = s.Cfg.Combo.Window
	pr.MaxCombo = max(pr.MaxCombo, pr.Combo)
	pr.Pickups++

	s.emit(Event{Kind: EventCollectiblePicked, Pos: c.Pos, EntityID: c.ID, Value: gained, Combo: pr.Combo})
	if pr.Combo > 1 {
		s.emit(Event{Kind: EventComboPopup, Pos: c.Pos, Combo: pr.Combo})
	}

	p.Speed = math.Min(p.MaxSpeed, p.Speed+s.Cfg.Combo.SpeedBonus)

	burst(s, c.Pos, colorCollect, s.Cfg.Effects.CollectParticles)
	addCollectTrail(s, c.Pos, p.Pos)
	c.Removed = true
}

// hitShark slows the player. Sharks are not consumed.
func hitShark(s *Session, c *world.Creature) {
	p := &s.Player
	p.Speed = math.Max(s.minSpeed(), p.Speed*sharkSlowdown)
	shake(s, s.Cfg.Effects.SharkShake)
	burst(s, p.Pos, colorImpact, s.Cfg.Effects.SharkParticles)
	s.emit(Event{Kind: EventSharkHit, Pos: c.Pos, EntityID: c.ID})
}
