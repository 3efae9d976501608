package world

import "math"

// Segment is one slice of the tunnel. It owns its decorations and holds
// the entities generated for it until it enters the live window.
type Segment struct {
	Z           float64 // Travel position of the segment center
	Radius      float64
	Wobble      float64 // Ring distortion amplitude
	Length      float64
	Decorations []Decoration
	Populated   bool // Pending entities have been admitted

	pending spawns
}

// spawns are entities positioned relative to the segment center.
type spawns struct {
	obstacles    []*Obstacle
	collectibles []*Collectible
	powerups     []*Powerup
	creatures    []*Creature
}

// Pending returns the number of entities not yet admitted.
func (s *Segment) Pending() int {
	return len(s.pending.obstacles) + len(s.pending.collectibles) +
		len(s.pending.powerups) + len(s.pending.creatures)
}

// admit moves pending entities into the registry at world positions.
func (s *Segment) admit(r *Registry) int {
	n := 0
	for _, o := range s.pending.obstacles {
		o.Pos.Z += s.Z
		r.AddObstacle(o)
		n++
	}
	for _, c := range s.pending.collectibles {
		c.Pos.Z += s.Z
		r.AddCollectible(c)
		n++
	}
	for _, p := range s.pending.powerups {
		p.Pos.Z += s.Z
		r.AddPowerup(p)
		n++
	}
	for _, c := range s.pending.creatures {
		c.Pos.Z += s.Z
		r.AddCreature(c)
		n++
	}
	s.pending = spawns{}
	s.Populated = true
	return n
}

// TunnelRadius is the tunnel radius at travel position z.
func TunnelRadius(z float64) float64 {
	return 18 + math.Sin(z*0.03)*10 + math.Cos(z*0.07)*5
}

// TunnelWobble is the ring distortion amplitude at travel position z.
func TunnelWobble(z float64) float64 {
	return math.Sin(z*0.1) * 4
}
