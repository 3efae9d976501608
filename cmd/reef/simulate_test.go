package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/species"
	"github.com/vovakirdan/reef-runner/internal/storage"
	"github.com/vovakirdan/reef-runner/internal/telemetry"
)

func newTestSimulation(t *testing.T, out io.Writer, runs int) *simulation {
	t.Helper()

	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultReefConfig()
	return &simulation{
		opts:      reef.Options{Config: &cfg, Species: species.Squid},
		runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		ticks:     300,
		dt:        0.016,
		runs:      runs,
		collector: telemetry.NewCollector(1),
		csv:       telemetry.NewWriter(out),
		store:     store,
		logger:    log.New(io.Discard),
	}
}

func TestSimulationRuns(t *testing.T) {
	var buf bytes.Buffer
	sim := newTestSimulation(t, &buf, 2)

	last, err := sim.run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if last.Distance <= 0 {
		t.Errorf("distance = %v, want > 0", last.Distance)
	}

	runs, err := sim.store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(runs))
	}
	for _, r := range runs {
		if r.Species != species.Squid.ID() {
			t.Errorf("species = %q, want %q", r.Species, species.Squid.ID())
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 3 {
		t.Fatalf("telemetry has %d lines, want a header and rows", len(lines))
	}
	if got := strings.Count(buf.String(), "window_end"); got != 1 {
		t.Errorf("header written %d times, want 1", got)
	}

	if err := sim.report(); err != nil {
		t.Errorf("report: %v", err)
	}
}

func TestSimulationDeterministic(t *testing.T) {
	a, err := newTestSimulation(t, nil, 1).run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := newTestSimulation(t, nil, 1).run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("same seed gave different progressions: %+v vs %+v", a, b)
	}
}
