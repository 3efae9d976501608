package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	cfg := config.DefaultReefConfig()
	store := openStore(t)
	m := NewSessionModel(reef.Options{Config: &cfg}, Options{Store: store, Input: cfg.Input}, core.DefaultConfig())

	// Menu -> scoreboard -> menu
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScoreboard {
		t.Fatalf("view = %v, expected the scoreboard", m.view)
	}
	m = sessionUpdate(t, m, runeKey("b"))
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected the menu", m.view)
	}

	// Menu -> game
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.game == nil {
		t.Fatalf("view = %v, expected a running game", m.view)
	}

	// Pause, then back to the menu
	m = sessionUpdate(t, m, runeKey("p"))
	m = sessionUpdate(t, m, TickMsg{Loop: m.game.loop})
	m = sessionUpdate(t, m, runeKey("b"))
	if m.view != viewMenu || m.game != nil {
		t.Fatalf("view = %v, expected the menu after leaving the game", m.view)
	}

	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestNewSSHServer(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = keyPath
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected the configured address", srv.Addr())
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not created: %v", err)
	}
}
