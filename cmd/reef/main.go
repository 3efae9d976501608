// reef is an endless underwater runner for the terminal.
//
// Usage:
//
//	reef play [species]   - Swim as a species (default: fish)
//	reef menu             - Pick a species interactively
//	reef species          - List the playable species
//	reef serve            - Host the game over SSH
//	reef simulate         - Run headless with the autopilot and emit telemetry
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom reef config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/species"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reef",
	Short: "Reef Runner - an endless underwater runner in your terminal",
	Long: `Reef Runner sends a sea creature down an endless reef tunnel.
Collect pearls and power-ups, dodge rocks, mines and sharks, and climb
the leaderboard.

Available commands:
  play      - Start a run directly
  menu      - Interactive species picker
  species   - Show the playable species
  serve     - Start SSH server for remote play
  simulate  - Headless autopilot runs with CSV telemetry

Examples:
  reef play
  reef play dolphin --difficulty hard
  reef menu
  reef serve --ssh :2222
  reef simulate --ticks 3600 --telemetry -`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom reef config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the logger for a command. Without --log, output goes to
// fallback; interactive commands pass io.Discard so logs never draw over the
// game. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameOptions loads the reef config once and returns the game options
// shared by every run of the command. The species comes from args, falling
// back to the config's default species.
func loadGameOptions(args []string, logger *log.Logger) (reef.Options, config.ReefConfig, error) {
	cfg, err := config.LoadReef(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	sp, err := parseSpecies(args, cfg.Player.Species)
	if err != nil {
		return reef.Options{}, cfg, err
	}
	return reef.Options{
		Config:     &cfg,
		Difficulty: config.ParseDifficultyPreset(flagDifficulty),
		Species:    sp,
		Logger:     logger,
	}, cfg, nil
}

// parseSpecies resolves an optional species argument. Without one the
// fallback id is used, and Fish when that is empty too.
func parseSpecies(args []string, fallback string) (species.Species, error) {
	id := fallback
	if len(args) > 0 && args[0] != "" {
		id = args[0]
	}
	if id == "" {
		return species.Fish, nil
	}
	return species.Parse(id)
}
