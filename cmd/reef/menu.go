package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a species and play, returning to the menu after each run",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a species, Enter to start a run.
Leave a finished run with B or Esc to get back to the menu.
Tab shows the runs of this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start a run
  Tab          - Session runs
  Q            - Quit

Examples:
  reef menu
  reef menu --fps 30 --difficulty easy`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard, "reef")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameOpts, reefCfg, err := loadGameOptions(nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	host := tui.Options{
		Store:     store,
		Input:     reefCfg.Input,
		FixedSeed: flagSeed != 0,
		Logger:    logger,
	}
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameOpts.Species = menuResult.Species
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, runErr := tui.Run(gameOpts, cfg, host)
		if runErr != nil {
			if errors.Is(runErr, tui.ErrNoTerminal) {
				fmt.Fprintln(os.Stderr, "Error: menu needs a terminal; use 'reef simulate' for headless runs.")
				return
			}
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		if !result.BackToMenu && runErr == nil {
			return // Quit from inside the game
		}
	}
}
