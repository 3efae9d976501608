package reef

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// Autopilot is a headless input source. It steers toward the nearest pearl
// ahead, swerves around obstacles in its lane and boosts while it has
// energy to spare.
type Autopilot struct {
	BoostAbove float64 // Boost only while energy exceeds this
	Lane       float64 // Half width of the lane checked for obstacles
	Deadzone   float64 // Offsets smaller than this are not corrected
}

// NewAutopilot creates an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{BoostAbove: 50, Lane: 3, Deadzone: 0.5}
}

// Input returns the input frame for the next tick of g.
func (a *Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	s := g.s
	if s == nil || s.Ended {
		return in
	}
	p := s.Player.Pos
	window := s.Cfg.World.CollisionWindow

	target := r3.Vec{}
	best := math.Inf(1)
	for _, c := range s.World.Collectibles.All() {
		if c.Pos.Z > 0 || c.Pos.Z < -window {
			continue
		}
		if d := r3.Norm(r3.Sub(c.Pos, p)); d < best {
			best, target = d, c.Pos
		}
	}

	// An obstacle in the lane overrides the pearl chase
	nearest := math.Inf(1)
	for _, o := range s.World.Obstacles.All() {
		if o.Pos.Z > 2 || o.Pos.Z < -window/2 {
			continue
		}
		if math.Abs(o.Pos.X-p.X) > a.Lane || math.Abs(o.Pos.Y-p.Y) > a.Lane {
			continue
		}
		if dz := -o.Pos.Z; dz < nearest {
			nearest = dz
			target = p
			if o.Pos.X >= p.X {
				target.X = p.X - 2*a.Lane
			} else {
				target.X = p.X + 2*a.Lane
			}
		}
	}

	switch dx := target.X - p.X; {
	case dx < -a.Deadzone:
		in.Set(core.ActionLeft)
	case dx > a.Deadzone:
		in.Set(core.ActionRight)
	}
	switch dy := target.Y - p.Y; {
	case dy < -a.Deadzone:
		in.Set(core.ActionDown)
	case dy > a.Deadzone:
		in.Set(core.ActionUp)
	}

	if s.Player.BoostEnergy > a.BoostAbove {
		in.Set(core.ActionBoost)
	}
	return in
}
