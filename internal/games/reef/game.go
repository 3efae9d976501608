// Package reef implements the reef runner simulation: a creature swims down
// an endless streamed tunnel, collecting pearls and power-ups while dodging
// obstacles and sharks.
//
// A tick runs its phases in a fixed order on a single goroutine:
// movement, collisions, progression, camera, then the leaderboard and sinks.
package reef

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/species"
	"github.com/vovakirdan/reef-runner/internal/telemetry"
)

// MaxDelta is the longest step a single tick simulates.
const MaxDelta = 0.1

var (
	// ErrDiverged is returned when a tick leaves non-finite state behind.
	ErrDiverged = errors.New("reef: simulation diverged")

	// ErrTickPanic is returned when a tick phase panics.
	ErrTickPanic = errors.New("reef: tick panicked")
)

// Options configures a Game.
type Options struct {
	ConfigPath string                  // Custom config file, empty for the search order
	Config     *config.ReefConfig      // Use this config instead of loading one
	Difficulty config.DifficultyPreset // Applied on top of the loaded config
	Species    species.Species
	Logger     *log.Logger

	Presentation PresentationSink // Optional, receives a Frame every tick
	UI           UISink           // Optional, receives the HUD every tick
}

// StepResult is returned by Game.Step.
type StepResult struct {
	core.StepResult
	Events []Event
}

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	Species  species.Species
	Score    int
	Distance float64
	MaxCombo int
	Duration time.Duration
	Hits     int
	Pickups  int
}

// Game owns one session and drives it tick by tick.
type Game struct {
	opts    Options
	runtime core.RuntimeConfig
	cfg     config.ReefConfig
	log     *log.Logger

	s      *Session
	prev   core.InputFrame
	err    error
	closed bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, log: logger}
}

// ID returns the game identifier used for the run history.
func (g *Game) ID() string { return "reef" }

// Title returns the display name.
func (g *Game) Title() string { return "Reef Runner" }

// Reset starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.ReefConfig
	if g.opts.Config != nil {
		cfg = *g.opts.Config
	} else {
		loaded, err := config.LoadReef(g.opts.ConfigPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
		}
		cfg = loaded
	}
	config.ApplyPreset(&cfg, g.opts.Difficulty)
	g.cfg = cfg

	sp := g.opts.Species
	if !sp.Valid() {
		sp = species.Fish
	}

	g.s = newSession(cfg, sp, runtime.Seed, g.log)
	g.prev = core.NewInputFrame()
	g.err = nil
	g.closed = false
	g.log.Info("run started", "species", sp.ID(), "seed", runtime.Seed, "difficulty", g.opts.Difficulty)
}

// Step advances the simulation by dt seconds. dt is clamped to [0, MaxDelta].
// Any error is fatal: the run stops and every later Step returns the same
// error. After Close, Step does nothing.
func (g *Game) Step(in core.InputFrame, dt float64) (res StepResult, err error) {
	if g.closed || g.s == nil {
		return StepResult{StepResult: core.StepResult{State: g.State()}}, nil
	}
	if g.err != nil {
		return StepResult{StepResult: core.StepResult{State: g.State()}}, g.err
	}

	defer func() {
		if r := recover(); r != nil {
			g.err = fmt.Errorf("%w: tick %d: %v", ErrTickPanic, g.s.Tick, r)
			g.log.Error("tick failed", "err", g.err)
			res, err = StepResult{StepResult: core.StepResult{State: g.State()}}, g.err
		}
	}()

	pressed := func(a core.Action) bool { return in.Has(a) && !g.prev.Has(a) }
	defer func() { g.prev = in.Clone() }()

	s := g.s
	if s.Ended {
		if pressed(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return StepResult{StepResult: core.StepResult{State: g.State()}}, nil
	}
	if pressed(core.ActionEndRun) {
		g.endRun()
		return StepResult{StepResult: core.StepResult{State: g.State()}}, nil
	}
	if pressed(core.ActionPause) {
		s.Paused = !s.Paused
	}
	if s.Paused {
		s.Dt = 0
		return StepResult{StepResult: core.StepResult{State: g.State()}}, nil
	}

	dt = core.ClampF(dt, 0, MaxDelta)
	if !core.FiniteF(dt) {
		dt = 0
	}
	g.tick(in, dt)

	if err := g.checkFinite(); err != nil {
		g.err = err
		g.log.Error("tick failed", "err", err)
		return StepResult{StepResult: core.StepResult{State: g.State(), Dt: dt}}, err
	}

	g.publish()
	events := s.Events
	s.Events = nil
	return StepResult{
		StepResult: core.StepResult{State: g.State(), Dt: dt},
		Events:     events,
	}, nil
}

// tick runs every phase once, in order.
func (g *Game) tick(in core.InputFrame, dt float64) {
	s := g.s
	s.Tick++
	s.Dt = dt
	s.Elapsed += dt

	updateMovement(s, in)
	checkCollisions(s)
	updateProgression(s)
	updateCamera(s)
	s.Board.Submit(s.Progress.Score)
}

func (g *Game) checkFinite() error {
	s := g.s
	p := s.Player
	switch {
	case !core.Finite(p.Pos), !core.Finite(p.Rot):
		return fmt.Errorf("%w: tick %d: player transform %v %v", ErrDiverged, s.Tick, p.Pos, p.Rot)
	case !core.FiniteF(p.Speed), !core.FiniteF(p.BoostEnergy):
		return fmt.Errorf("%w: tick %d: speed %v energy %v", ErrDiverged, s.Tick, p.Speed, p.BoostEnergy)
	case !core.FiniteF(s.Progress.Distance), !core.Finite(s.Camera.Pos):
		return fmt.Errorf("%w: tick %d: distance %v camera %v", ErrDiverged, s.Tick, s.Progress.Distance, s.Camera.Pos)
	}
	return nil
}

func (g *Game) publish() {
	if g.opts.Presentation != nil {
		g.opts.Presentation.Present(buildFrame(g.s))
	}
	if g.opts.UI != nil {
		g.opts.UI.ShowHUD(buildHUD(g.s))
	}
}

func (g *Game) endRun() {
	s := g.s
	s.Ended = true
	s.Paused = false
	s.Dt = 0
	s.Effects.clear()
	s.Powerups.clear()
	g.log.Info("run ended",
		"species", s.Species.ID(),
		"score", s.Progress.Score,
		"distance", int(s.Progress.Distance),
		"max_combo", s.Progress.MaxCombo,
		"rank", s.Board.PlayerRank())
	g.publish()
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	if g.s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.s.Progress.Score,
		Distance: g.s.Progress.Distance,
		Elapsed:  g.s.Elapsed,
		GameOver: g.s.Ended,
		Paused:   g.s.Paused,
	}
}

// Frame returns the render state of the current tick.
func (g *Game) Frame() Frame {
	if g.s == nil {
		return Frame{}
	}
	return buildFrame(g.s)
}

// HUD returns the HUD values of the current tick.
func (g *Game) HUD() HUD {
	if g.s == nil {
		return HUD{}
	}
	return buildHUD(g.s)
}

// Summary describes the current run.
func (g *Game) Summary() RunSummary {
	if g.s == nil {
		return RunSummary{}
	}
	s := g.s
	return RunSummary{
		Species:  s.Species,
		Score:    s.Progress.Score,
		Distance: s.Progress.Distance,
		MaxCombo: s.Progress.MaxCombo,
		Duration: time.Duration(s.Elapsed * float64(time.Second)),
		Hits:     s.Progress.Hits,
		Pickups:  s.Progress.Pickups,
	}
}

// Sample returns the telemetry view of the last tick.
func (g *Game) Sample() telemetry.Sample {
	if g.s == nil {
		return telemetry.Sample{}
	}
	s := g.s
	return telemetry.Sample{
		Tick:     s.Tick,
		Dt:       s.Dt,
		Elapsed:  s.Elapsed,
		Speed:    s.Player.Speed,
		Score:    s.Progress.Score,
		Distance: s.Progress.Distance,
		Combo:    s.Progress.Combo,
		Hits:     s.Progress.Hits,
		Pickups:  s.Progress.Pickups,
		Counts:   s.World.Counts(),
	}
}

// Err returns the fatal error that stopped the run, if any.
func (g *Game) Err() error {
	return g.err
}

// Close stops the run. Pending timers and effects are dropped and further
// Step calls do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.s != nil {
		g.s.Effects.clear()
		g.s.Powerups.clear()
		g.s.Events = nil
	}
}
