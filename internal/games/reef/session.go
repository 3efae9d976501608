package reef

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/leaderboard"
	"github.com/vovakirdan/reef-runner/internal/species"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// Player is the steered creature. It sits at z=0; the world scrolls past it.
type Player struct {
	Pos       r3.Vec
	Rot       r3.Vec
	TargetRot r3.Vec
	Scale     float64

	Speed       float64
	BaseSpeed   float64
	MaxSpeed    float64
	BoostEnergy float64
	Boosting    bool

	InvulnUntil float64 // Elapsed time the post-hit invulnerability ends
	FlashUntil  float64 // Elapsed time the hit flash ends

	Pose       species.Pose
	Ghosts     []Ghost
	ghostClock float64
}

// Progression is the scoring state of a run.
type Progression struct {
	Score      int
	Combo      int
	ComboTimer float64
	Multiplier int
	Distance   float64

	MaxCombo int
	Hits     int
	Pickups  int
}

// Session is the complete state of one run. Every phase of a tick receives
// it explicitly; nothing lives in package globals.
type Session struct {
	Cfg     config.ReefConfig
	Species species.Species
	Stats   species.Stats
	Palette species.Palette
	animate species.Animator

	Player   Player
	Progress Progression
	World    *world.Registry
	Gen      *world.Generator
	Camera   Camera
	Effects  Effects
	Powerups Powerups
	Board    *leaderboard.Board

	Difficulty *config.DifficultyManager
	Current    r3.Vec // Water current drift per second

	Tick    uint64
	Elapsed float64 // Simulated seconds, frozen while paused
	Dt      float64 // Clamped delta of the current tick
	Paused  bool
	Ended   bool
	Events  []Event

	fx          *rand.Rand // Cosmetic randomness, kept apart from world generation
	bubbleClock float64
	log         *log.Logger
}

func newSession(cfg config.ReefConfig, sp species.Species, seed int64, logger *log.Logger) *Session {
	s := &Session{
		Cfg:        cfg,
		Species:    sp,
		Stats:      sp.Stats(),
		Palette:    sp.Palette(),
		animate:    sp.Animator(),
		World:      world.NewRegistry(),
		Gen:        world.NewGenerator(rand.New(rand.NewSource(seed)), cfg.World),
		Board:      leaderboard.New(),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		fx:         rand.New(rand.NewSource(seed + 1)),
		log:        logger,
	}

	base := s.Difficulty.BaseSpeed(0, s.Stats.Speed)
	s.Player = Player{
		Scale:       s.Palette.Scale,
		Speed:       base,
		BaseSpeed:   base,
		MaxSpeed:    cfg.Player.MaxSpeed,
		BoostEnergy: cfg.Boost.MaxEnergy,
		Pose:        s.animate(0, base),
	}
	s.Progress = Progression{Combo: 1, Multiplier: 1, MaxCombo: 1}
	s.Camera = newCamera(cfg.Camera)
	s.Powerups = newPowerups()

	streamSegments(s)
	s.World.Admit(s.admitZ())
	return s
}

// admitZ is the segment position at which a segment's entities go live.
// Entities sit up to half a segment behind the center, so admission waits
// until none of them would be purged by cleanup.
func (s *Session) admitZ() float64 {
	return s.Cfg.World.CleanupMin + s.Cfg.World.SegmentLength/2
}

// invulnerable reports whether obstacle and creature hits are suppressed.
func (s *Session) invulnerable() bool {
	shield := s.Powerups.until[world.PowerupShield]
	return s.Elapsed < math.Max(s.Player.InvulnUntil, shield)
}

// playerBox returns the player's hit box.
func (s *Session) playerBox() r3.Box {
	h := s.Cfg.Player.HitHalfExtent * s.Player.Scale
	return core.BoxAround(s.Player.Pos, r3.Vec{X: h, Y: h, Z: h})
}

// minSpeed is the floor no hit can push speed below.
func (s *Session) minSpeed() float64 {
	return s.Player.BaseSpeed * s.Cfg.Player.MinSpeedFactor
}

func (s *Session) emit(e Event) {
	s.Events = append(s.Events, e)
}

// smoothAlpha converts a per-tick easing factor for the configured mode.
// In delta mode the factor is rescaled so easing speed does not depend on
// the frame rate.
func smoothAlpha(mode string, factor, dt float64) float64 {
	if mode == config.SmoothingDelta {
		return 1 - math.Pow(1-factor, dt*60)
	}
	return factor
}
