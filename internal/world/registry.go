package world

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Pool is an insertion-ordered collection of one entity type.
type Pool[T Entity] struct {
	items []T
}

// Add appends an entity.
func (p *Pool[T]) Add(e T) {
	p.items = append(p.items, e)
}

// All returns the live entities in insertion order.
// The slice is owned by the pool; callers must not append to it.
func (p *Pool[T]) All() []T {
	return p.items
}

// Len returns the number of entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Each calls fn for every entity in insertion order.
func (p *Pool[T]) Each(fn func(T)) {
	for _, e := range p.items {
		fn(e)
	}
}

// RemoveIf removes every entity matching pred, keeping the order of the
// rest. Returns the number removed.
func (p *Pool[T]) RemoveIf(pred func(T) bool) int {
	kept := p.items[:0]
	for _, e := range p.items {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	removed := len(p.items) - len(kept)

	// Release references held by the tail
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	return removed
}

// Sweep removes every entity marked Removed.
// Marking during iteration and sweeping afterwards makes removal safe
// while another loop is walking the pool.
func (p *Pool[T]) Sweep() int {
	return p.RemoveIf(func(e T) bool { return e.Base().Removed })
}

// Clear removes every entity.
func (p *Pool[T]) Clear() {
	p.RemoveIf(func(T) bool { return true })
}

// translate moves every entity along the travel axis.
func (p *Pool[T]) translate(dz float64) {
	for _, e := range p.items {
		e.Base().Pos.Z += dz
	}
}

// outside removes entities whose travel position left [min, max].
func (p *Pool[T]) outside(min, max float64) int {
	return p.RemoveIf(func(e T) bool {
		z := e.Base().Pos.Z
		return z < min || z > max
	})
}

// Counts is a snapshot of registry sizes.
type Counts struct {
	Segments     int
	Obstacles    int
	Collectibles int
	Powerups     int
	Creatures    int
	Particles    int
	Bubbles      int
}

// Registry owns every live entity of a session, grouped by type.
type Registry struct {
	Obstacles    Pool[*Obstacle]
	Collectibles Pool[*Collectible]
	Powerups     Pool[*Powerup]
	Creatures    Pool[*Creature]
	Particles    Pool[*Particle]
	Bubbles      Pool[*Bubble]
	Segments     []*Segment

	nextID uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// assign gives a body the next entity ID.
func (r *Registry) assign(b *Body) {
	r.nextID++
	b.ID = r.nextID
	b.Removed = false
}

// AddObstacle registers an obstacle.
func (r *Registry) AddObstacle(o *Obstacle) {
	r.assign(&o.Body)
	r.Obstacles.Add(o)
}

// AddCollectible registers a collectible.
func (r *Registry) AddCollectible(c *Collectible) {
	r.assign(&c.Body)
	r.Collectibles.Add(c)
}

// AddPowerup registers a power-up.
func (r *Registry) AddPowerup(p *Powerup) {
	r.assign(&p.Body)
	r.Powerups.Add(p)
}

// AddCreature registers a creature.
func (r *Registry) AddCreature(c *Creature) {
	r.assign(&c.Body)
	r.Creatures.Add(c)
}

// AddParticle registers a particle.
func (r *Registry) AddParticle(p *Particle) {
	r.assign(&p.Body)
	r.Particles.Add(p)
}

// AddBubble registers an ambient bubble.
func (r *Registry) AddBubble(b *Bubble) {
	r.assign(&b.Body)
	r.Bubbles.Add(b)
}

// AddSegment appends a segment. Its pending entities are admitted by Admit.
func (r *Registry) AddSegment(s *Segment) {
	r.Segments = append(r.Segments, s)
}

// FarthestZ returns the travel position of the farthest segment ahead,
// and false when there are no segments.
func (r *Registry) FarthestZ() (float64, bool) {
	if len(r.Segments) == 0 {
		return 0, false
	}
	z := r.Segments[0].Z
	for _, s := range r.Segments[1:] {
		if s.Z < z {
			z = s.Z
		}
	}
	return z, true
}

// Translate scrolls the whole world along the travel axis.
func (r *Registry) Translate(dz float64) {
	for _, s := range r.Segments {
		s.Z += dz
	}
	r.Obstacles.translate(dz)
	r.Collectibles.translate(dz)
	r.Powerups.translate(dz)
	r.Creatures.translate(dz)
	r.Particles.translate(dz)
	r.Bubbles.translate(dz)
}

// Admit registers the pending entities of every segment that has entered
// the live window (travel position >= min).
func (r *Registry) Admit(min float64) int {
	n := 0
	for _, s := range r.Segments {
		if !s.Populated && s.Z >= min {
			n += s.admit(r)
		}
	}
	return n
}

// RemoveSegmentsPast drops segments whose travel position exceeds max.
func (r *Registry) RemoveSegmentsPast(max float64) int {
	kept := r.Segments[:0]
	for _, s := range r.Segments {
		if s.Z <= max {
			kept = append(kept, s)
		}
	}
	removed := len(r.Segments) - len(kept)
	for i := len(kept); i < len(r.Segments); i++ {
		r.Segments[i] = nil
	}
	r.Segments = kept
	return removed
}

// Cleanup purges every entity outside [min, max] on the travel axis.
// Calling it twice in a row removes nothing the second time.
func (r *Registry) Cleanup(min, max float64) int {
	n := r.Obstacles.outside(min, max)
	n += r.Collectibles.outside(min, max)
	n += r.Powerups.outside(min, max)
	n += r.Creatures.outside(min, max)
	n += r.Particles.outside(min, max)
	n += r.Bubbles.outside(min, max)
	return n
}

// Sweep removes every entity marked Removed.
func (r *Registry) Sweep() int {
	n := r.Obstacles.Sweep()
	n += r.Collectibles.Sweep()
	n += r.Powerups.Sweep()
	n += r.Creatures.Sweep()
	n += r.Particles.Sweep()
	n += r.Bubbles.Sweep()
	return n
}

// Clear drops every entity and segment.
func (r *Registry) Clear() {
	r.Obstacles.Clear()
	r.Collectibles.Clear()
	r.Powerups.Clear()
	r.Creatures.Clear()
	r.Particles.Clear()
	r.Bubbles.Clear()
	r.Segments = nil
}

// Counts returns the current registry sizes.
func (r *Registry) Counts() Counts {
	return Counts{
		Segments:     len(r.Segments),
		Obstacles:    r.Obstacles.Len(),
		Collectibles: r.Collectibles.Len(),
		Powerups:     r.Powerups.Len(),
		Creatures:    r.Creatures.Len(),
		Particles:    r.Particles.Len(),
		Bubbles:      r.Bubbles.Len(),
	}
}

// ObstaclesNear returns live obstacles within radius of p, excluding skip.
func (r *Registry) ObstaclesNear(p r3.Vec, radius float64, skip *Obstacle) []*Obstacle {
	var out []*Obstacle
	for _, o := range r.Obstacles.All() {
		if o == skip || o.Removed {
			continue
		}
		if r3.Norm(r3.Sub(o.Pos, p)) < radius {
			out = append(out, o)
		}
	}
	return out
}
