// Package world holds the streamed reef: entities, the registry that owns
// them, tunnel segments, and the generator that populates new segments.
package world

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// Body is the state shared by every registry entity.
type Body struct {
	ID      uint64
	Pos     r3.Vec
	Rot     r3.Vec
	Half    r3.Vec  // Hit box half extents
	Scale   float64 // Display scale
	Removed bool    // Marked for removal at the next sweep
}

// Base returns the shared body. Used by Pool to reach common fields.
func (b *Body) Base() *Body { return b }

// Bounds returns the axis-aligned hit box.
func (b *Body) Bounds() r3.Box {
	return core.BoxAround(b.Pos, b.Half)
}

// Entity is implemented by every registry entity type.
type Entity interface {
	Base() *Body
}

// ObstacleType enumerates the damaging reef hazards.
type ObstacleType int

const (
	ObstacleRock ObstacleType = iota
	ObstacleCoral
	ObstacleCrystal
	ObstacleShipwreck
	ObstacleMine
)

type obstacleTrait struct {
	name      string
	damage    float64
	explosive bool
	half      r3.Vec
	color     uint32
}

var obstacleTraits = [...]obstacleTrait{
	ObstacleRock:      {"rock", 20, false, r3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, 0x666666},
	ObstacleCoral:     {"coral", 15, false, r3.Vec{X: 1.2, Y: 1.5, Z: 1.2}, 0xff6699},
	ObstacleCrystal:   {"crystal", 10, false, r3.Vec{X: 1.0, Y: 1.5, Z: 1.0}, 0x00ffff},
	ObstacleShipwreck: {"shipwreck", 25, false, r3.Vec{X: 1.5, Y: 2.0, Z: 0.6}, 0x8b4513},
	ObstacleMine:      {"mine", 30, true, r3.Vec{X: 1.2, Y: 1.2, Z: 1.2}, 0x333333},
}

// String returns the obstacle type name.
func (t ObstacleType) String() string { return obstacleTraits[t].name }

// Damage returns the speed damage dealt on contact.
func (t ObstacleType) Damage() float64 { return obstacleTraits[t].damage }

// Explosive reports whether contact detonates the obstacle.
func (t ObstacleType) Explosive() bool { return obstacleTraits[t].explosive }

// Color returns the display color.
func (t ObstacleType) Color() uint32 { return obstacleTraits[t].color }

// Obstacle is a damaging hazard.
type Obstacle struct {
	Body
	Type      ObstacleType
	Damage    float64
	Explosive bool
	Spin      r3.Vec // Rotation per second
}

// NewObstacle creates an obstacle of the given type at a position.
func NewObstacle(t ObstacleType, pos r3.Vec) *Obstacle {
	tr := obstacleTraits[t]
	return &Obstacle{
		Body:      Body{Pos: pos, Half: tr.half, Scale: 1},
		Type:      t,
		Damage:    tr.damage,
		Explosive: tr.explosive,
	}
}

// Collectible is a scoring pickup.
type Collectible struct {
	Body
	Value int
}

// NewCollectible creates a collectible worth value points.
func NewCollectible(pos r3.Vec, value int) *Collectible {
	return &Collectible{
		Body:  Body{Pos: pos, Half: r3.Vec{X: 0.6, Y: 0.6, Z: 0.6}, Scale: 1},
		Value: value,
	}
}

// PowerupKind enumerates the timed power-ups.
type PowerupKind int

const (
	PowerupSpeed PowerupKind = iota
	PowerupShield
	PowerupMagnet
	PowerupMultiplier
	powerupKindCount
)

// PowerupKinds lists every power-up kind.
func PowerupKinds() []PowerupKind {
	return []PowerupKind{PowerupSpeed, PowerupShield, PowerupMagnet, PowerupMultiplier}
}

// String returns the power-up name.
func (k PowerupKind) String() string {
	switch k {
	case PowerupSpeed:
		return "speed"
	case PowerupShield:
		return "shield"
	case PowerupMagnet:
		return "magnet"
	case PowerupMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Color returns the display color.
func (k PowerupKind) Color() uint32 {
	switch k {
	case PowerupSpeed:
		return 0xffff00
	case PowerupShield:
		return 0x00ff00
	case PowerupMagnet:
		return 0xff00ff
	default:
		return 0xff0000
	}
}

// Powerup is a pickup that grants a timed effect.
type Powerup struct {
	Body
	Kind PowerupKind
}

// NewPowerup creates a power-up of the given kind.
func NewPowerup(kind PowerupKind, pos r3.Vec) *Powerup {
	return &Powerup{
		Body: Body{Pos: pos, Half: r3.Vec{X: 1.5, Y: 1.5, Z: 1.5}, Scale: 1},
		Kind: kind,
	}
}

// CreatureKind enumerates ambient sea life.
type CreatureKind int

const (
	CreatureJellyfish CreatureKind = iota
	CreatureSchool
	CreatureRay
	CreatureShark
	creatureKindCount
)

// String returns the creature name.
func (k CreatureKind) String() string {
	switch k {
	case CreatureJellyfish:
		return "jellyfish"
	case CreatureSchool:
		return "school"
	case CreatureRay:
		return "ray"
	default:
		return "shark"
	}
}

// Color returns the display color.
func (k CreatureKind) Color() uint32 {
	switch k {
	case CreatureJellyfish:
		return 0xff99ff
	case CreatureSchool:
		return 0xffcc66
	case CreatureRay:
		return 0x446688
	default:
		return 0x778899
	}
}

// Creature is ambient sea life. Only sharks are dangerous.
type Creature struct {
	Body
	Kind      CreatureKind
	Dangerous bool
	Phase     float64 // Idle animation offset
	Members   int     // Fish in a school
	Pulse     float64 // Jellyfish bell scale
}

// NewCreature creates a creature of the given kind.
func NewCreature(kind CreatureKind, pos r3.Vec, phase float64) *Creature {
	half := r3.Vec{X: 1, Y: 1, Z: 1}
	if kind == CreatureShark {
		half = r3.Vec{X: 1.5, Y: 0.6, Z: 1.5}
	}
	return &Creature{
		Body:      Body{Pos: pos, Half: half, Scale: 1},
		Kind:      kind,
		Dangerous: kind == CreatureShark,
		Phase:     phase,
		Pulse:     1,
	}
}

// Animate advances the creature's idle motion. player is the player position.
func (c *Creature) Animate(elapsed float64, player r3.Vec) {
	switch c.Kind {
	case CreatureJellyfish:
		c.Pulse = 0.6 + math.Sin(elapsed*2+c.Phase)*0.2
		c.Pos.Y += math.Sin(elapsed+c.Phase) * 0.01
	case CreatureSchool:
		c.Rot.Y = math.Sin(elapsed*0.5) * 2
	case CreatureRay:
		c.Pos.X += math.Sin(elapsed*0.5) * 0.02
		c.Pos.Y += math.Cos(elapsed*0.7) * 0.01
		c.Rot.Z = math.Sin(elapsed*2) * 0.3
	case CreatureShark:
		c.Pos.X += math.Sin(elapsed*0.8) * 0.05
		c.Rot.Y = math.Sin(elapsed*0.8) * 0.3

		// Turn toward the player when close
		d := r3.Sub(player, c.Pos)
		if r3.Norm(d) < 10 {
			c.Rot.Y = math.Atan2(d.X, d.Z)
		}
	}
}

// Particle is a short-lived cosmetic point.
type Particle struct {
	Body
	Vel   r3.Vec  // Units per 1/60 s
	Life  float64 // 1 at spawn, removed at 0
	Decay float64 // Life lost per second
	Color uint32
}

// Opacity returns the particle's display opacity.
func (p *Particle) Opacity() float64 {
	return math.Max(0, p.Life)
}

// Bubble is an ambient rising bubble.
type Bubble struct {
	Body
	Vel r3.Vec // Units per 1/60 s
}

// DecorationKind enumerates non-colliding wall dressing.
type DecorationKind int

const (
	DecorationKelp DecorationKind = iota
	DecorationRock
	DecorationCoral
)

// String returns the decoration name.
func (k DecorationKind) String() string {
	switch k {
	case DecorationKelp:
		return "kelp"
	case DecorationRock:
		return "rock"
	default:
		return "coral"
	}
}

// Decoration is a non-colliding piece of scenery owned by a segment.
type Decoration struct {
	Kind   DecorationKind
	Offset r3.Vec // Relative to the segment center
	Scale  float64
}
