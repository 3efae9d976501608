package reef

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/leaderboard"
	"github.com/vovakirdan/reef-runner/internal/species"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// EntityKind identifies the class of a rendered entity.
type EntityKind int

const (
	EntityObstacle EntityKind = iota
	EntityCollectible
	EntityPowerup
	EntityCreature
	EntityParticle
	EntityBubble
)

// EntityView is the render state of one live entity.
type EntityView struct {
	ID      uint64
	Kind    EntityKind
	Subtype string
	Pos     r3.Vec
	Rot     r3.Vec
	Scale   float64
	Opacity float64
	Color   uint32
}

// PlayerView is the render state of the player.
type PlayerView struct {
	Pos      r3.Vec
	Rot      r3.Vec
	Scale    float64
	Species  species.Species
	Palette  species.Palette
	Pose     species.Pose
	Flash    bool
	Shielded bool
	Boosting bool
}

// SegmentView is the render state of one tunnel segment.
type SegmentView struct {
	Z           float64
	Radius      float64
	Wobble      float64
	Decorations []world.Decoration
}

// CameraView is the pose the scene is rendered from.
type CameraView struct {
	Eye    r3.Vec
	LookAt r3.Vec
	FOV    float64
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Elapsed    float64
	Player     PlayerView
	Ghosts     []Ghost
	Entities   []EntityView
	Segments   []SegmentView
	Shockwaves []Shockwave
	Trails     []CollectTrail
	Camera     CameraView
}

// PowerupStatus is an active power-up shown in the HUD.
type PowerupStatus struct {
	Kind      world.PowerupKind
	Remaining float64
}

// HUD holds the values shown around the scene.
type HUD struct {
	Species     string
	Score       int
	Speed       int // Display units
	Distance    int
	Combo       int
	Multiplier  int
	BoostEnergy float64
	Boosting    bool
	Powerups    []PowerupStatus
	Leaderboard []leaderboard.Entry
	Rank        int
	Paused      bool
	Ended       bool
}

// speedDisplayScale converts speed to the displayed figure.
const speedDisplayScale = 50

// PresentationSink receives a frame after every tick.
type PresentationSink interface {
	Present(Frame)
}

// UISink receives the HUD after every tick.
type UISink interface {
	ShowHUD(HUD)
}

func buildFrame(s *Session) Frame {
	p := s.Player
	f := Frame{
		Elapsed: s.Elapsed,
		Player: PlayerView{
			Pos:      p.Pos,
			Rot:      p.Rot,
			Scale:    p.Scale,
			Species:  s.Species,
			Palette:  s.Palette,
			Pose:     p.Pose,
			Flash:    s.Elapsed < p.FlashUntil,
			Shielded: s.Powerups.Active(world.PowerupShield, s.Elapsed),
			Boosting: p.Boosting,
		},
		Ghosts: append([]Ghost(nil), p.Ghosts...),
		Camera: CameraView{
			Eye:    s.Camera.Eye(),
			LookAt: s.Camera.LookAt,
			FOV:    s.Camera.FOV,
		},
	}

	for _, seg := range s.World.Segments {
		f.Segments = append(f.Segments, SegmentView{
			Z:           seg.Z,
			Radius:      seg.Radius,
			Wobble:      seg.Wobble,
			Decorations: seg.Decorations,
		})
	}

	add := func(b *world.Body, kind EntityKind, subtype string, opacity float64, color uint32) {
		f.Entities = append(f.Entities, EntityView{
			ID:      b.ID,
			Kind:    kind,
			Subtype: subtype,
			Pos:     b.Pos,
			Rot:     b.Rot,
			Scale:   b.Scale,
			Opacity: opacity,
			Color:   color,
		})
	}
	for _, o := range s.World.Obstacles.All() {
		add(&o.Body, EntityObstacle, o.Type.String(), 1, o.Type.Color())
	}
	for _, c := range s.World.Collectibles.All() {
		add(&c.Body, EntityCollectible, "pearl", 1, colorCollect)
	}
	for _, pu := range s.World.Powerups.All() {
		add(&pu.Body, EntityPowerup, pu.Kind.String(), 1, pu.Kind.Color())
	}
	for _, c := range s.World.Creatures.All() {
		add(&c.Body, EntityCreature, c.Kind.String(), 1, c.Kind.Color())
	}
	for _, pt := range s.World.Particles.All() {
		add(&pt.Body, EntityParticle, "", pt.Opacity(), pt.Color)
	}
	for _, b := range s.World.Bubbles.All() {
		add(&b.Body, EntityBubble, "", 0.4, 0xffffff)
	}

	for _, w := range s.Effects.Shockwaves {
		f.Shockwaves = append(f.Shockwaves, *w)
	}
	for _, t := range s.Effects.Trails {
		tr := *t
		tr.Points = append([]r3.Vec(nil), t.Points...)
		f.Trails = append(f.Trails, tr)
	}
	return f
}

func buildHUD(s *Session) HUD {
	h := HUD{
		Species:     s.Species.String(),
		Score:       s.Progress.Score,
		Speed:       int(s.Player.Speed * speedDisplayScale),
		Distance:    int(s.Progress.Distance),
		Combo:       s.Progress.Combo,
		Multiplier:  s.Progress.Multiplier,
		BoostEnergy: s.Player.BoostEnergy,
		Boosting:    s.Player.Boosting,
		Leaderboard: s.Board.Entries(),
		Rank:        s.Board.PlayerRank(),
		Paused:      s.Paused,
		Ended:       s.Ended,
	}
	for _, kind := range world.PowerupKinds() {
		if rem := s.Powerups.Remaining(kind, s.Elapsed); rem > 0 {
			h.Powerups = append(h.Powerups, PowerupStatus{Kind: kind, Remaining: rem})
		}
	}
	return h
}
