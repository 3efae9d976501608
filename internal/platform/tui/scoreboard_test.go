package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reef-runner/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardFiltersBySpecies(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Species: "fish", Score: 300})
	store.SaveRun(storage.Run{Species: "squid", Score: 500})
	store.SaveRun(storage.Run{Species: "fish", Score: 100})

	m := NewScoreboardModel(store, 120, 40)
	if len(m.runs) != 3 {
		t.Fatalf("all-species view shows %d runs, expected 3", len(m.runs))
	}
	if m.runs[0].Score != 500 {
		t.Errorf("best run first, got %d", m.runs[0].Score)
	}

	// Next filter is the first species
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 2 {
		t.Fatalf("fish view shows %d runs, expected 2", len(m.runs))
	}
	for _, r := range m.runs {
		if r.Species != "fish" {
			t.Errorf("fish view contains a %s run", r.Species)
		}
	}

	// Wrapping backwards from the first filter lands on the last one
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != len(m.filters)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.filters)-1)
	}
}

func TestScoreboardViewPlacesSessionBest(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{Species: "turtle", Score: 20000})

	out := NewScoreboardModel(store, 120, 40).View()
	for _, want := range []string{"SESSION RUNS", "Sea Turtle", "YOU", "AquaKing"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard view is missing %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs yet") {
		t.Error("empty scoreboard should say so")
	}

	next, _ := m.Update(runeKey("b"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
