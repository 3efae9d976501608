// Package species defines the playable sea creatures.
// The set is closed: every species has fixed stats, a palette and an
// animation function resolved once when the species is chosen.
package species

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownSpecies is returned by Parse for an unrecognized species id.
var ErrUnknownSpecies = errors.New("species: unknown species")

// Species identifies a playable creature.
type Species int

const (
	Fish Species = iota
	Dolphin
	Squid
	Turtle
	Octopus
)

// Stats are the movement multipliers of a species.
type Stats struct {
	Speed      float64 // Scales the progression base speed
	Agility    float64 // Scales directional input
	BoostPower float64 // Scales speed gain while boosting
}

// Palette holds the display colors of a species as 0xRRGGBB values.
type Palette struct {
	Color    uint32
	Emissive uint32
	Trail    uint32
	Scale    float64 // Model scale
}

// Part names an animated piece of a species model.
type Part string

// Animated parts shared across species.
const (
	PartTail     Part = "tail"
	PartFin      Part = "fin"
	PartFluke    Part = "fluke"
	PartTentacle Part = "tentacle"
	PartFlipper  Part = "flipper"
	PartHead     Part = "head"
)

// Axis is the rotation axis of a joint.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// Joint is one animated rotation (or, for the turtle head, offset).
type Joint struct {
	Part  Part
	Index int
	Axis  Axis
	Angle float64
}

// Pose is the set of joint values for one tick.
type Pose []Joint

// Animator computes the pose for elapsed time t at the given swim speed.
type Animator func(t, speed float64) Pose

type definition struct {
	id      string
	name    string
	stats   Stats
	palette Palette
	animate Animator
}

var definitions = [...]definition{
	Fish: {
		id:      "fish",
		name:    "Clownfish",
		stats:   Stats{Speed: 1.0, Agility: 1.2, BoostPower: 1.0},
		palette: Palette{Color: 0xffaa00, Emissive: 0xff6600, Trail: 0xffcc00, Scale: 1.0},
		animate: animateFish,
	},
	Dolphin: {
		id:      "dolphin",
		name:    "Dolphin",
		stats:   Stats{Speed: 1.3, Agility: 1.0, BoostPower: 1.2},
		palette: Palette{Color: 0x6699ff, Emissive: 0x3366cc, Trail: 0x99ccff, Scale: 1.2},
		animate: animateDolphin,
	},
	Squid: {
		id:      "squid",
		name:    "Squid",
		stats:   Stats{Speed: 1.1, Agility: 1.3, BoostPower: 1.5},
		palette: Palette{Color: 0xff66cc, Emissive: 0xcc3399, Trail: 0xff99dd, Scale: 1.1},
		animate: animateSquid,
	},
	Turtle: {
		id:      "turtle",
		name:    "Sea Turtle",
		stats:   Stats{Speed: 0.8, Agility: 0.8, BoostPower: 1.3},
		palette: Palette{Color: 0x66dd66, Emissive: 0x339933, Trail: 0x99ff99, Scale: 1.3},
		animate: animateTurtle,
	},
	Octopus: {
		id:      "octopus",
		name:    "Octopus",
		stats:   Stats{Speed: 0.9, Agility: 1.5, BoostPower: 1.1},
		palette: Palette{Color: 0xff6633, Emissive: 0xcc3300, Trail: 0xffaa66, Scale: 1.15},
		animate: animateOctopus,
	},
}

// All returns every species in display order.
func All() []Species {
	return []Species{Fish, Dolphin, Squid, Turtle, Octopus}
}

// Parse resolves a species id such as "dolphin".
func Parse(id string) (Species, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i, d := range definitions {
		if d.id == id {
			return Species(i), nil
		}
	}
	return Fish, fmt.Errorf("%w %q", ErrUnknownSpecies, id)
}

// Valid reports whether s is one of the defined species.
func (s Species) Valid() bool {
	return s >= Fish && int(s) < len(definitions)
}

func (s Species) def() definition {
	if !s.Valid() {
		return definitions[Fish]
	}
	return definitions[s]
}

// ID returns the lowercase identifier used on the command line.
func (s Species) ID() string { return s.def().id }

// String returns the display name.
func (s Species) String() string { return s.def().name }

// Stats returns the movement multipliers.
func (s Species) Stats() Stats { return s.def().stats }

// Palette returns the display colors.
func (s Species) Palette() Palette { return s.def().palette }

// Animator returns the species animation function.
func (s Species) Animator() Animator { return s.def().animate }

func animateFish(t, speed float64) Pose {
	pose := Pose{{Part: PartTail, Axis: AxisY, Angle: math.Sin(t*8*speed) * 0.3}}
	for i := range 2 {
		pose = append(pose, Joint{
			Part:  PartFin,
			Index: i,
			Axis:  AxisZ,
			Angle: math.Sin(t*6+float64(i)) * 0.2,
		})
	}
	return pose
}

func animateDolphin(t, speed float64) Pose {
	pose := Pose{{Part: PartFluke, Axis: AxisX, Angle: math.Sin(t*10*speed) * 0.4}}
	for i := range 2 {
		pose = append(pose, Joint{
			Part:  PartFin,
			Index: i,
			Axis:  AxisZ,
			Angle: math.Sin(t*5+float64(i)*math.Pi) * 0.2,
		})
	}
	return pose
}

func animateSquid(t, _ float64) Pose {
	pose := make(Pose, 0, 8)
	for i := range 8 {
		pose = append(pose, Joint{
			Part:  PartTentacle,
			Index: i,
			Axis:  AxisX,
			Angle: math.Sin(t*4+float64(i)*0.5) * 0.2,
		})
	}
	return pose
}

func animateTurtle(t, speed float64) Pose {
	pose := make(Pose, 0, 5)
	for i := range 4 {
		// Front and back pairs stroke in opposite phase
		phase := 0.0
		if i >= 2 {
			phase = math.Pi
		}
		pose = append(pose, Joint{
			Part:  PartFlipper,
			Index: i,
			Axis:  AxisZ,
			Angle: math.Sin(t*4*speed+phase) * 0.3,
		})
	}
	// Head bob is a forward offset rather than a rotation
	pose = append(pose, Joint{Part: PartHead, Axis: AxisZ, Angle: 0.8 + math.Sin(t*2)*0.05})
	return pose
}

func animateOctopus(t, _ float64) Pose {
	pose := make(Pose, 0, 8)
	for i := range 8 {
		pose = append(pose, Joint{
			Part:  PartTentacle,
			Index: i,
			Axis:  AxisX,
			Angle: math.Sin(t*3+float64(i)*math.Pi*2/8) * 0.2,
		})
	}
	return pose
}
