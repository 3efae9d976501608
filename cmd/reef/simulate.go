package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/storage"
	"github.com/vovakirdan/reef-runner/internal/telemetry"
)

var (
	flagSimTicks     int
	flagSimDt        float64
	flagSimSpecies   string
	flagSimRuns      int
	flagSimTelemetry string
	flagSimWindow    float64
	flagSimSnapshot  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless with the autopilot",
	Long: `Run one or more runs without a terminal. The autopilot chases pearls,
swerves around obstacles and boosts while it has energy to spare.

Telemetry rows (CSV) are written every --window simulated seconds;
use "-" for stdout. A summary of the runs is logged to stderr.

Examples:
  reef simulate --ticks 3600 --telemetry -
  reef simulate --species squid --runs 5 --seed 1
  reef simulate --dt 0.033 --telemetry sim.csv --snapshot final.json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Ticks per run")
	simulateCmd.Flags().Float64Var(&flagSimDt, "dt", 0.016, "Seconds per tick")
	simulateCmd.Flags().StringVar(&flagSimSpecies, "species", "", "Species to swim as (default: player.species from the config)")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs; each run uses the next seed")
	simulateCmd.Flags().StringVar(&flagSimTelemetry, "telemetry", "", `Write CSV telemetry to this file ("-" for stdout)`)
	simulateCmd.Flags().Float64Var(&flagSimWindow, "window", 1, "Seconds of simulated time per telemetry row")
	simulateCmd.Flags().StringVar(&flagSimSnapshot, "snapshot", "", "Write the final progression of the last run as JSON")
}

// simulation holds everything a headless batch of runs needs.
type simulation struct {
	opts      reef.Options
	runtime   core.RuntimeConfig
	ticks     int
	dt        float64
	runs      int
	collector *telemetry.Collector
	csv       *telemetry.Writer
	store     *storage.Store
	logger    *log.Logger
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "reef-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	var out io.Writer
	switch flagSimTelemetry {
	case "":
	case "-":
		out = os.Stdout
	default:
		f, err := os.Create(flagSimTelemetry)
		if err != nil {
			return fmt.Errorf("cannot create telemetry file: %w", err)
		}
		defer f.Close()
		out = f
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameOpts, _, err := loadGameOptions([]string{flagSimSpecies}, logger)
	if err != nil {
		return err
	}

	sim := &simulation{
		opts:      gameOpts,
		runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed},
		ticks:     flagSimTicks,
		dt:        flagSimDt,
		runs:      max(1, flagSimRuns),
		collector: telemetry.NewCollector(flagSimWindow),
		csv:       telemetry.NewWriter(out),
		store:     store,
		logger:    logger,
	}

	last, err := sim.run()
	if err != nil {
		return err
	}
	if err := sim.report(); err != nil {
		return err
	}

	if flagSimSnapshot != "" {
		data, err := reef.MarshalProgression(last)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagSimSnapshot, data, 0o644); err != nil {
			return fmt.Errorf("cannot write snapshot: %w", err)
		}
	}
	return nil
}

// run plays every run and returns the final progression of the last one.
func (sim *simulation) run() (reef.ProgressionSnapshot, error) {
	game := reef.New(sim.opts)
	defer game.Close()
	pilot := reef.NewAutopilot()

	var last reef.ProgressionSnapshot
	for i := range sim.runs {
		rt := sim.runtime
		rt.Seed += int64(i)
		game.Reset(rt)
		sim.collector.Reset()

		for range sim.ticks {
			res, err := game.Step(pilot.Input(game), sim.dt)
			if err != nil {
				return last, fmt.Errorf("run %d: %w", i+1, err)
			}
			if stats, ok := sim.collector.Observe(game.Sample()); ok {
				if err := sim.csv.Write(stats); err != nil {
					return last, err
				}
			}
			if res.State.GameOver {
				break
			}
		}
		if stats, ok := sim.collector.Flush(game.Sample()); ok {
			if err := sim.csv.Write(stats); err != nil {
				return last, err
			}
		}

		last = game.Snapshot()
		sum := game.Summary()
		if _, err := sim.store.SaveRun(storage.Run{
			Species:  sum.Species.ID(),
			Score:    sum.Score,
			Distance: sum.Distance,
			MaxCombo: sum.MaxCombo,
			Duration: sum.Duration,
		}); err != nil {
			return last, err
		}
		sim.logger.Info("run finished",
			"run", i+1,
			"seed", rt.Seed,
			"score", sum.Score,
			"distance", int(sum.Distance),
			"max_combo", sum.MaxCombo,
			"hits", sum.Hits,
			"pickups", sum.Pickups)
	}
	return last, nil
}

// report logs the batch summary from the run history.
func (sim *simulation) report() error {
	best, err := sim.store.BestScore()
	if err != nil {
		return err
	}
	stats, err := sim.store.SpeciesStats()
	if err != nil {
		return err
	}
	for _, st := range stats {
		sim.logger.Info("batch summary",
			"species", st.Species,
			"runs", st.Runs,
			"best", best,
			"avg", int(st.AvgScore),
			"max_distance", int(st.MaxDistance))
	}
	return nil
}
