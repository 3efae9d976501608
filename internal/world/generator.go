package world

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// Collectible patterns.
const (
	PatternRing = iota
	PatternSpiral
	PatternLine
	patternCount
)

// Generator creates tunnel segments and the entities attached to them.
// All randomness comes from the injected source, so a fixed seed yields
// the same reef.
type Generator struct {
	rng       *rand.Rand
	cfg       config.WorldConfig
	travelled float64
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, cfg config.WorldConfig) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// SetTravelled records the distance the world has scrolled. The tunnel
// shape follows absolute position, so it keeps changing as the run goes on.
func (g *Generator) SetTravelled(d float64) {
	g.travelled = d
}

// GenerateSegment creates one segment centered at travel position z.
// Every gate is rolled independently; entities are placed inside the
// segment volume (|dz| <= length/2, lateral distance <= radius).
func (g *Generator) GenerateSegment(z float64) *Segment {
	seg := &Segment{
		Z:      z,
		Radius: TunnelRadius(z - g.travelled),
		Wobble: TunnelWobble(z - g.travelled),
		Length: g.cfg.SegmentLength,
	}

	if g.rng.Float64() < g.cfg.DecorationChance {
		g.decorate(seg)
	}

	// Keep the start of the run clear of hazards
	if z < g.cfg.ObstacleStartZ && g.rng.Float64() < g.cfg.ObstacleChance {
		g.placeObstacles(seg)
	}

	if g.rng.Float64() < g.cfg.CollectibleChance {
		g.placeCollectibles(seg, g.rng.Intn(patternCount))
	}

	if z < g.cfg.PowerupStartZ && g.rng.Float64() < g.cfg.PowerupChance {
		g.placePowerup(seg)
	}

	if g.rng.Float64() < g.cfg.CreatureChance {
		g.placeCreature(seg)
	}

	return seg
}

// spread returns a travel offset uniformly in [-10, 10], clipped to the segment.
func (g *Generator) spread(seg *Segment) float64 {
	return g.clipDZ(seg, (g.rng.Float64()-0.5)*20)
}

func (g *Generator) clipDZ(seg *Segment, dz float64) float64 {
	half := seg.Length / 2
	return math.Max(-half, math.Min(half, dz))
}

// onCircle returns the lateral point at angle and distance r, with r
// limited to the tunnel radius.
func onCircle(angle, r, radius float64) r3.Vec {
	r = math.Max(0, math.Min(r, radius))
	return r3.Vec{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
}

func (g *Generator) decorate(seg *Segment) {
	kind := DecorationKind(g.rng.Intn(3))
	radius := seg.Radius

	var n int
	switch kind {
	case DecorationKelp:
		n = 10 + g.rng.Intn(10)
	case DecorationRock:
		n = 5 + g.rng.Intn(8)
	default:
		n = 8 + g.rng.Intn(12)
	}

	for i := range n {
		var pos r3.Vec
		var scale float64
		switch kind {
		case DecorationKelp:
			// Kelp grows from the lower half of the wall
			angle := math.Pi + g.rng.Float64()*math.Pi
			pos = onCircle(angle, radius-1-g.rng.Float64()*3, radius)
			scale = 5 + g.rng.Float64()*8
		case DecorationRock:
			angle := g.rng.Float64() * math.Pi * 2
			pos = onCircle(angle, radius-2-g.rng.Float64()*4, radius)
			scale = 1 + g.rng.Float64()*2
		default:
			angle := float64(i)/float64(n)*math.Pi*2 + g.rng.Float64()*0.5
			pos = onCircle(angle, radius-1, radius)
			scale = 0.5 + g.rng.Float64()*1.5
		}
		pos.Z = g.spread(seg)
		seg.Decorations = append(seg.Decorations, Decoration{Kind: kind, Offset: pos, Scale: scale})
	}
}

func (g *Generator) placeObstacles(seg *Segment) {
	n := 2 + g.rng.Intn(5)
	for range n {
		angle := g.rng.Float64() * math.Pi * 2
		dist := 3 + g.rng.Float64()*math.Max(0, seg.Radius-6)
		pos := onCircle(angle, dist, seg.Radius)
		pos.Z = g.spread(seg)

		o := NewObstacle(ObstacleType(g.rng.Intn(len(obstacleTraits))), pos)
		o.Rot = r3.Vec{
			X: g.rng.Float64() * math.Pi,
			Y: g.rng.Float64() * math.Pi,
			Z: g.rng.Float64() * math.Pi,
		}
		o.Spin = r3.Vec{X: (g.rng.Float64() - 0.5) * 0.5, Y: (g.rng.Float64() - 0.5) * 0.5}
		seg.pending.obstacles = append(seg.pending.obstacles, o)
	}
}

func (g *Generator) placeCollectibles(seg *Segment, pattern int) {
	value := g.cfg.CollectibleValue
	// Shrink patterns to fit narrow sections of the tunnel
	fit := math.Min(1, math.Max(0, seg.Radius-1)/8)

	add := func(x, y, dz float64) {
		pos := r3.Vec{X: x * fit, Y: y * fit, Z: g.clipDZ(seg, dz)}
		seg.pending.collectibles = append(seg.pending.collectibles, NewCollectible(pos, value))
	}

	switch pattern {
	case PatternRing:
		for i := range 8 {
			angle := float64(i) / 8 * math.Pi * 2
			add(math.Cos(angle)*5, math.Sin(angle)*5, 0)
		}
	case PatternSpiral:
		for i := range 12 {
			t := float64(i) / 12
			angle := t * math.Pi * 4
			r := 3 + t*5
			add(math.Cos(angle)*r, math.Sin(angle)*r, float64(i)*2-12)
		}
	default:
		for i := range 6 {
			add(0, -5+float64(i)*2, float64(i)*3-7.5)
		}
	}
}

func (g *Generator) placePowerup(seg *Segment) {
	kind := PowerupKind(g.rng.Intn(int(powerupKindCount)))
	angle := g.rng.Float64() * math.Pi * 2
	dist := 5 + g.rng.Float64()*5
	pos := onCircle(angle, dist, math.Max(0, seg.Radius-1))
	pos.Z = g.clipDZ(seg, g.rng.Float64()*10)
	seg.pending.powerups = append(seg.pending.powerups, NewPowerup(kind, pos))
}

func (g *Generator) placeCreature(seg *Segment) {
	kind := CreatureKind(g.rng.Intn(int(creatureKindCount)))
	pos := r3.Vec{
		X: (g.rng.Float64() - 0.5) * seg.Radius * 1.5,
		Y: (g.rng.Float64() - 0.5) * seg.Radius,
		Z: g.spread(seg),
	}
	c := NewCreature(kind, pos, g.rng.Float64()*math.Pi*2)
	if kind == CreatureSchool {
		c.Members = 15 + g.rng.Intn(10)
	}
	seg.pending.creatures = append(seg.pending.creatures, c)
}
