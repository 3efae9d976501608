package reef

import "gonum.org/v1/gonum/spatial/r3"

// Ghost is a fading copy of the player left behind while boosting.
type Ghost struct {
	Pos     r3.Vec
	Rot     r3.Vec
	Scale   float64
	Age     float64
	Opacity float64
}

// updateGhosts ages the trail and, while boosting, drops a new ghost every
// ghost interval. Ghosts fade out over one second and the oldest is evicted
// once the trail is full.
func updateGhosts(s *Session) {
	p := &s.Player
	cfg := s.Cfg.Movement
	dt := s.Dt

	kept := p.Ghosts[:0]
	for _, g := range p.Ghosts {
		g.Age += dt
		g.Pos.Z += p.Speed * dt * s.Cfg.World.TravelScale
		g.Opacity = cfg.GhostOpacity * (1 - g.Age)
		if g.Opacity > 0 {
			kept = append(kept, g)
		}
	}
	p.Ghosts = kept

	if !p.Boosting {
		p.ghostClock = 0
		return
	}

	p.ghostClock += dt
	if p.ghostClock < cfg.GhostInterval {
		return
	}
	p.ghostClock -= cfg.GhostInterval

	p.Ghosts = append(p.Ghosts, Ghost{
		Pos:     p.Pos,
		Rot:     p.Rot,
		Scale:   p.Scale,
		Opacity: cfg.GhostOpacity,
	})
	if over := len(p.Ghosts) - cfg.GhostMax; over > 0 {
		p.Ghosts = append(p.Ghosts[:0], p.Ghosts[over:]...)
	}
}
