package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/storage"
	"github.com/vovakirdan/reef-runner/internal/telemetry"
)

// ErrNoTerminal is returned by Run when stdout is not a terminal.
var ErrNoTerminal = errors.New("tui: stdout is not a terminal")

// Options configures the host loop around a game.
type Options struct {
	Store           *storage.Store     // Run history, optional
	Input           config.InputConfig // Key hold window and pointer steering
	Telemetry       io.Writer          // CSV telemetry destination, optional
	TelemetryWindow float64            // Seconds per telemetry row
	FixedSeed       bool               // Keep the seed on restart instead of drawing a new one
	Logger          *log.Logger
}

// Model is the Bubble Tea model running one reef game.
type Model struct {
	game      *reef.Game
	scene     *Scene
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	input     *core.InputTracker
	keyMapper *KeyMapper
	collector *telemetry.Collector
	csv       *telemetry.Writer
	logger    *log.Logger
	loop      uint64

	lastTick   time.Time
	gameState  core.GameState
	err        error
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been saved to the history
}

// NewModel creates the model and its game. The game's presentation and UI
// sinks are replaced by the terminal scene.
func NewModel(gameOpts reef.Options, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewScene(cfg.ScreenW, cfg.ScreenH)
	gameOpts.Presentation = scene
	gameOpts.UI = scene
	if gameOpts.Logger == nil {
		gameOpts.Logger = logger
	}

	m := Model{
		game:      reef.New(gameOpts),
		scene:     scene,
		store:     opts.Store,
		config:    cfg,
		opts:      opts,
		input:     core.NewInputTracker(time.Duration(opts.Input.HoldWindow * float64(time.Second))),
		keyMapper: NewKeyMapper(),
		logger:    logger,
		loop:      nextLoopID(),
	}
	if opts.Telemetry != nil {
		m.collector = telemetry.NewCollector(opts.TelemetryWindow)
		m.csv = telemetry.NewWriter(opts.Telemetry)
	}
	return m
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.scene.Sync(m.game)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scene.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.finishRun()
		return m, tea.Quit
	}

	// Back leaves only a paused or finished run
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun()
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.input.Press(action, time.Now())
	return m, nil
}

// handleMouse maps mouse motion to pointer steering and left-button drags
// to a touch gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := core.NormalizePointer(msg.X, msg.Y, m.config.ScreenW, m.config.ScreenH)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.TouchStart(x, y)
		}
	case tea.MouseActionRelease:
		m.input.TouchEnd()
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.input.TouchMove(x, y)
		} else if m.opts.Input.Pointer {
			m.input.Pointer(x, y)
		}
	}
	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.input.Snapshot(now)
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	// A new run after game over gets a fresh seed unless one was fixed
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.opts.FixedSeed {
			m.config.Seed = now.UnixNano()
		}
		m.game.Reset(m.config)
		m.scene.Sync(m.game)
		m.gameState = m.game.State()
		m.runSaved = false
		m.input.Reset()
		if m.collector != nil {
			m.collector.Reset()
		}
		return m, tickCmd(m.loop, m.config.TickRate)
	}

	res, err := m.game.Step(frame, dt)
	m.gameState = res.State
	if err != nil {
		m.err = err
		m.logger.Error("simulation stopped", "err", err)
		return m, tea.Quit
	}
	if res.State.Paused || res.State.GameOver {
		// Paused and finished runs do not publish
		m.scene.Sync(m.game)
	}

	m.observe()
	if m.gameState.GameOver {
		m.finishRun()
	}

	return m, tickCmd(m.loop, m.config.TickRate)
}

// observe feeds the telemetry collector.
func (m *Model) observe() {
	if m.collector == nil {
		return
	}
	if stats, ok := m.collector.Observe(m.game.Sample()); ok {
		if err := m.csv.Write(stats); err != nil {
			m.logger.Warn("telemetry write failed", "err", err)
		}
	}
}

// finishRun saves the run and flushes telemetry, once per run.
func (m *Model) finishRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.collector != nil {
		if stats, ok := m.collector.Flush(m.game.Sample()); ok {
			//nolint:errcheck // Best-effort flush
			m.csv.Write(stats)
		}
	}

	sum := m.game.Summary()
	if m.store == nil || sum.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Species:  sum.Species.ID(),
		Score:    sum.Score,
		Distance: sum.Distance,
		MaxCombo: sum.MaxCombo,
		Duration: sum.Duration,
	})
	if err != nil {
		m.logger.Warn("run not saved", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", sum.Score)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.TempDir(), "reef-screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.scene.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.scene.View()
}

// Err returns the error that stopped the simulation, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Result describes how a hosted game ended.
type Result struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run hosts a game on the local terminal until the player quits or goes
// back to the menu. A simulation error stops the program and is returned.
func Run(gameOpts reef.Options, cfg core.RuntimeConfig, opts Options) (Result, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return Result{Config: cfg}, ErrNoTerminal
	}

	model := NewModel(gameOpts, cfg, opts)
	defer model.game.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{BackToMenu: m.BackToMenu(), Config: m.config}, m.Err()
}
