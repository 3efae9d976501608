package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var (
	flagTelemetryPath   string
	flagTelemetryWindow float64
)

var playCmd = &cobra.Command{
	Use:   "play [species]",
	Short: "Start a run",
	Long: `Start a run as the given species (fish, dolphin, squid, turtle, octopus).

Controls:
  WASD/Arrows  - Steer
  Mouse        - Steer toward the pointer, drag to swipe
  Space        - Boost
  P            - Pause
  E            - End the run
  R            - New run (after the run ended)
  B/Esc        - Leave (while paused or after the run ended)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower speed ramp
  normal - Default ramp
  hard   - Faster speed ramp
  fixed  - No ramp, base speed stays constant

Examples:
  reef play
  reef play squid --difficulty hard
  reef play turtle --seed 42
  reef play --telemetry run.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTelemetryPath, "telemetry", "", "Write CSV telemetry to this file")
	playCmd.Flags().Float64Var(&flagTelemetryWindow, "telemetry-window", 1, "Seconds of simulated time per telemetry row")
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard, "reef")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameOpts, cfg, err := loadGameOptions(args, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'reef species' to see available species.")
		closeLog()
		os.Exit(1)
	}
	host := tui.Options{
		Input:           cfg.Input,
		TelemetryWindow: flagTelemetryWindow,
		FixedSeed:       flagSeed != 0,
		Logger:          logger,
	}

	if flagTelemetryPath != "" {
		f, err := os.Create(flagTelemetryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create telemetry file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		host.Telemetry = f
	}

	// The run history lives as long as the process
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}
	host.Store = store

	_, runErr := tui.Run(gameOpts, runtimeConfig(), host)
	if runErr != nil {
		if errors.Is(runErr, tui.ErrNoTerminal) {
			fmt.Fprintln(os.Stderr, "Error: play needs a terminal; use 'reef simulate' for headless runs.")
		} else {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		closeLog()
		os.Exit(1)
	}
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
