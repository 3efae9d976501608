package reef

import (
	"github.com/vovakirdan/reef-runner/internal/world"
)

// Powerups tracks the deadline of every active power-up.
// An expired entry is removed the tick its deadline passes, so each
// expiry fires exactly once.
type Powerups struct {
	until map[world.PowerupKind]float64
}

func newPowerups() Powerups {
	return Powerups{until: make(map[world.PowerupKind]float64)}
}

// Active reports whether kind is active at elapsed time now.
func (pw Powerups) Active(kind world.PowerupKind, now float64) bool {
	until, ok := pw.until[kind]
	return ok && now < until
}

// Remaining returns the seconds left on kind, or 0 when inactive.
func (pw Powerups) Remaining(kind world.PowerupKind, now float64) float64 {
	if !pw.Active(kind, now) {
		return 0
	}
	return pw.until[kind] - now
}

func (pw Powerups) clear() {
	for k := range pw.until {
		delete(pw.until, k)
	}
}

func (s *Session) powerupDuration(kind world.PowerupKind) float64 {
	cfg := s.Cfg.Powerups
	switch kind {
	case world.PowerupSpeed:
		return cfg.SpeedDuration
	case world.PowerupShield:
		return cfg.ShieldDuration
	case world.PowerupMagnet:
		return cfg.MagnetDuration
	default:
		return cfg.MultiplierDuration
	}
}

// activatePowerup applies a power-up. Picking up a kind that is already
// active restarts its timer instead of stacking.
func activatePowerup(s *Session, kind world.PowerupKind) {
	cfg := s.Cfg.Powerups
	p := &s.Player
	refreshed := s.Powerups.Active(kind, s.Elapsed)

	switch kind {
	case world.PowerupSpeed:
		p.MaxSpeed = cfg.SpeedMax
		p.Speed = min(cfg.SpeedMax, p.Speed+cfg.SpeedBonus)
	case world.PowerupMultiplier:
		s.Progress.Multiplier = cfg.MultiplierFactor
	}
	// Shield and magnet only need the deadline

	s.Powerups.until[kind] = s.Elapsed + s.powerupDuration(kind)
	s.emit(Event{Kind: EventPowerupActivated, Pos: p.Pos, Powerup: kind})
	s.log.Debug("powerup activated", "kind", kind, "refreshed", refreshed, "until", s.Powerups.until[kind])
}

// expirePowerups reverts every power-up whose deadline has passed.
func expirePowerups(s *Session) {
	for _, kind := range world.PowerupKinds() {
		until, ok := s.Powerups.until[kind]
		if !ok || s.Elapsed < until {
			continue
		}
		delete(s.Powerups.until, kind)

		switch kind {
		case world.PowerupSpeed:
			s.Player.MaxSpeed = s.Cfg.Player.MaxSpeed
		case world.PowerupMultiplier:
			s.Progress.Multiplier = 1
		}
		s.emit(Event{Kind: EventPowerupExpired, Powerup: kind})
		s.log.Debug("powerup expired", "kind", kind)
	}
}
