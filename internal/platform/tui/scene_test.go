package tui

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/species"
)

func TestProjectorCentersLookAt(t *testing.T) {
	view := core.NewRect(0, 0, 80, 24)
	cam := reef.CameraView{Eye: r3.Vec{Y: 6, Z: 15}, LookAt: r3.Vec{Z: -10}, FOV: 80}
	pr, ok := newProjector(cam, view)
	if !ok {
		t.Fatal("newProjector() rejected a valid camera")
	}

	col, row, depth, ok := pr.project(cam.LookAt)
	if !ok {
		t.Fatal("look-at point not projected")
	}
	if col != 40 || row != 12 {
		t.Errorf("look-at projected to (%d, %d), expected the viewport center (40, 12)", col, row)
	}
	if depth <= 0 {
		t.Errorf("depth = %v, expected positive", depth)
	}

	// Points behind the eye are culled
	if _, _, _, ok := pr.project(r3.Vec{Z: 30}); ok {
		t.Error("point behind the camera should not be projected")
	}

	// Farther points along the same ray are deeper
	_, _, near, _ := pr.project(r3.Vec{Z: -5})
	_, _, far, _ := pr.project(r3.Vec{Z: -40})
	if far <= near {
		t.Errorf("depth ordering: near %v, far %v", near, far)
	}
}

func TestProjectorRejectsDegenerateCamera(t *testing.T) {
	view := core.NewRect(0, 0, 80, 24)
	if _, ok := newProjector(reef.CameraView{Eye: r3.Vec{Z: 1}, LookAt: r3.Vec{Z: 1}}, view); ok {
		t.Error("eye equal to look-at should be rejected")
	}
	if _, ok := newProjector(reef.CameraView{Eye: r3.Vec{Y: 10}, LookAt: r3.Vec{}}, view); ok {
		t.Error("camera looking straight down should be rejected")
	}
}

func newSceneGame(t *testing.T, w, h int) (*Scene, *reef.Game) {
	t.Helper()
	cfg := config.DefaultReefConfig()
	sc := NewScene(w, h)
	g := reef.New(reef.Options{Config: &cfg, Species: species.Fish, Presentation: sc, UI: sc})
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 3})
	for range 30 {
		if _, err := g.Step(core.NewInputFrame(), 1.0/60); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}
	return sc, g
}

func TestSceneWideViewShowsPanel(t *testing.T) {
	sc, _ := newSceneGame(t, 120, 36)

	out := sc.View()
	for _, want := range []string{"Clownfish", "Score", "Leaderboard", "AquaKing"} {
		if !strings.Contains(out, want) {
			t.Errorf("wide view is missing %q", want)
		}
	}

	// The player is drawn into the viewport
	if !strings.Contains(sc.Screen().String(), "<@>") {
		t.Error("player glyph not drawn")
	}
}

func TestSceneNarrowViewShowsStatusLine(t *testing.T) {
	sc, _ := newSceneGame(t, 60, 20)

	sc.View()
	if row := sc.Screen().Row(0); !strings.Contains(row, "SCORE") {
		t.Errorf("status line = %q, expected a score readout", row)
	}
}

func TestSceneOverlays(t *testing.T) {
	sc, g := newSceneGame(t, 80, 24)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 1.0/60)
	sc.Sync(g)
	sc.View()
	if !strings.Contains(sc.Screen().String(), "PAUSED") {
		t.Error("paused run should show the pause overlay")
	}

	end := core.NewInputFrame()
	end.Set(core.ActionEndRun)
	g.Step(end, 1.0/60)
	sc.View()
	if !strings.Contains(sc.Screen().String(), "RUN OVER") {
		t.Error("ended run should show the run over overlay")
	}
}

func TestSceneEmptyBeforeFirstFrame(t *testing.T) {
	sc := NewScene(80, 24)
	sc.View()
	if strings.Contains(sc.Screen().String(), "<@>") {
		t.Error("a scene without frames should not draw the player")
	}

	zero := NewScene(0, 0)
	if out := zero.View(); out != "" {
		t.Errorf("zero-size View() = %q, expected empty", out)
	}
}

func TestEntityGlyphs(t *testing.T) {
	tests := []struct {
		view reef.EntityView
		want rune
		ok   bool
	}{
		{reef.EntityView{Kind: reef.EntityObstacle, Subtype: "mine"}, '*', true},
		{reef.EntityView{Kind: reef.EntityObstacle, Subtype: "rock"}, '#', true},
		{reef.EntityView{Kind: reef.EntityCollectible}, 'o', true},
		{reef.EntityView{Kind: reef.EntityPowerup, Subtype: "shield"}, 'S', true},
		{reef.EntityView{Kind: reef.EntityCreature, Subtype: "shark"}, 'W', true},
		{reef.EntityView{Kind: reef.EntityParticle, Opacity: 0.1}, '\'', false},
	}

	for _, tt := range tests {
		got, ok := entityGlyph(tt.view)
		if got != tt.want || ok != tt.ok {
			t.Errorf("entityGlyph(%v %q) = %q, %v; expected %q, %v", tt.view.Kind, tt.view.Subtype, got, ok, tt.want, tt.ok)
		}
	}
}
