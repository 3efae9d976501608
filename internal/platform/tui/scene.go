package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/games/reef"
	"github.com/vovakirdan/reef-runner/internal/leaderboard"
	"github.com/vovakirdan/reef-runner/internal/world"
)

// Scene layout constants
const (
	hudPanelWidth   = 26  // Width of the HUD side panel
	minWidthForHUD  = 90  // Narrower terminals get a status line instead
	nearPlane       = 0.5 // Points closer to the eye are not drawn
	ringSamples     = 32
	minimapW        = 13
	minimapH        = 7
	minimapRange    = 50 // Depth shown on the minimap
	minimapHalfSpan = 12 // Lateral half span shown on the minimap
	cellAspect      = 2  // Terminal cells are about twice as tall as wide
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("30")).
			Width(hudPanelWidth-2).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// Scene is the terminal presentation sink. It keeps the latest Frame and HUD
// and projects them onto a character screen on demand.
type Scene struct {
	screen *core.Screen
	frame  reef.Frame
	hud    reef.HUD
	ready  bool
}

// NewScene creates a scene for a width*height terminal.
func NewScene(width, height int) *Scene {
	return &Scene{screen: core.NewScreen(width, height)}
}

// Present implements reef.PresentationSink.
func (sc *Scene) Present(f reef.Frame) {
	sc.frame = f
	sc.ready = true
}

// ShowHUD implements reef.UISink.
func (sc *Scene) ShowHUD(h reef.HUD) {
	sc.hud = h
}

// Sync copies the current state of g, for ticks that did not publish.
func (sc *Scene) Sync(g *reef.Game) {
	sc.Present(g.Frame())
	sc.ShowHUD(g.HUD())
}

// Resize changes the terminal size.
func (sc *Scene) Resize(width, height int) {
	sc.screen.Resize(width, height)
}

// Screen returns the character buffer of the last View.
func (sc *Scene) Screen() *core.Screen {
	return sc.screen
}

// View draws the scene and the HUD and returns the styled terminal output.
func (sc *Scene) View() string {
	w, h := sc.screen.Width(), sc.screen.Height()
	if w <= 0 || h <= 0 {
		return ""
	}

	wide := w >= minWidthForHUD
	viewW := w
	if wide {
		viewW = w - hudPanelWidth
	}

	sc.screen.Clear()
	if sc.ready {
		sc.draw(core.NewRect(0, 0, viewW, h))
	}
	if !wide {
		sc.drawStatusLine(w)
	}
	sc.drawOverlay(core.NewRect(0, 0, viewW, h))

	if !wide {
		return RenderScreen(sc.screen)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, RenderRect(sc.screen, core.NewRect(0, 0, viewW, h)), sc.renderPanel(h))
}

// projector maps world points onto a viewport through the camera pose.
type projector struct {
	eye            r3.Vec
	fwd, right, up r3.Vec
	focal          float64
	cx, cy         float64
	view           core.Rect
}

func newProjector(cam reef.CameraView, view core.Rect) (projector, bool) {
	fwd := r3.Sub(cam.LookAt, cam.Eye)
	if r3.Norm(fwd) == 0 {
		return projector{}, false
	}
	fwd = r3.Unit(fwd)
	right := r3.Cross(fwd, r3.Vec{Y: 1})
	if r3.Norm(right) == 0 {
		return projector{}, false
	}
	right = r3.Unit(right)
	up := r3.Cross(right, fwd)

	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = 80
	}
	halfH := float64(view.H) / 2
	return projector{
		eye:   cam.Eye,
		fwd:   fwd,
		right: right,
		up:    up,
		focal: halfH / math.Tan(fov*math.Pi/360),
		cx:    float64(view.X) + float64(view.W)/2,
		cy:    float64(view.Y) + halfH,
		view:  view,
	}, true
}

// project returns the cell of p and its depth along the view axis.
func (pr projector) project(p r3.Vec) (col, row int, depth float64, ok bool) {
	d := r3.Sub(p, pr.eye)
	depth = r3.Dot(d, pr.fwd)
	if depth < nearPlane {
		return 0, 0, 0, false
	}
	x := r3.Dot(d, pr.right) / depth * pr.focal * cellAspect
	y := r3.Dot(d, pr.up) / depth * pr.focal
	col = int(math.Round(pr.cx + x))
	row = int(math.Round(pr.cy - y))
	if !pr.view.Contains(col, row) {
		return 0, 0, 0, false
	}
	return col, row, depth, true
}

// sprite is one projected glyph, drawn back to front.
type sprite struct {
	col, row int
	depth    float64
	glyph    rune
	color    core.Color
}

func (sc *Scene) draw(view core.Rect) {
	f := sc.frame
	pr, ok := newProjector(f.Camera, view)
	if !ok {
		return
	}

	var sprites []sprite
	put := func(p r3.Vec, glyph rune, color core.Color) {
		if col, row, depth, ok := pr.project(p); ok {
			sprites = append(sprites, sprite{col, row, depth, glyph, color})
		}
	}

	for _, seg := range f.Segments {
		ringColor := core.ColorDeepBlue
		if int(math.Abs(seg.Z)/25)%2 == 0 {
			ringColor = core.ColorTeal
		}
		for i := range ringSamples {
			a := float64(i) / ringSamples * 2 * math.Pi
			r := seg.Radius + seg.Wobble*math.Sin(a*3)
			put(r3.Vec{X: math.Cos(a) * r, Y: math.Sin(a) * r, Z: seg.Z}, '.', ringColor)
		}
		for _, d := range seg.Decorations {
			put(r3.Add(r3.Vec{Z: seg.Z}, d.Offset), decorationGlyph(d.Kind), decorationColor(d.Kind))
		}
	}

	for _, e := range f.Entities {
		glyph, ok := entityGlyph(e)
		if !ok {
			continue
		}
		put(e.Pos, glyph, core.ColorFromHex(e.Color))
	}

	for _, w := range f.Shockwaves {
		if w.Opacity <= 0 {
			continue
		}
		for i := range 16 {
			a := float64(i) / 16 * 2 * math.Pi
			put(r3.Add(w.Pos, r3.Vec{X: math.Cos(a) * w.Scale, Y: math.Sin(a) * w.Scale}), '*', core.ColorOrange)
		}
	}
	for _, t := range f.Trails {
		if t.Opacity <= 0.2 {
			continue
		}
		for _, p := range t.Points {
			put(p, '.', core.ColorBrightYellow)
		}
	}

	trail := core.ColorFromHex(f.Player.Palette.Trail)
	for _, g := range f.Ghosts {
		if g.Opacity > 0.2 {
			put(g.Pos, 'o', trail)
		}
	}

	// Painter's order: far sprites first
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].depth > sprites[j].depth
	})
	for _, s := range sprites {
		sc.screen.SetColored(s.col, s.row, s.glyph, s.color)
	}

	sc.drawPlayer(pr)
	sc.drawMinimap(view)
}

func (sc *Scene) drawPlayer(pr projector) {
	p := sc.frame.Player
	// Flash blinks the player five times a second
	if p.Flash && int(sc.frame.Elapsed*10)%2 == 0 {
		return
	}
	col, row, _, ok := pr.project(p.Pos)
	if !ok {
		return
	}
	color := core.ColorFromHex(p.Palette.Color)
	body := "<@>"
	if p.Boosting {
		body = "=<@>="
	}
	if p.Shielded {
		body = "(" + body + ")"
	}
	x := col - len(body)/2
	sc.screen.DrawTextColored(x, row, body, color)
	if p.Shielded {
		sc.screen.SetColored(x, row, '(', core.ColorBrightGreen)
		sc.screen.SetColored(x+len(body)-1, row, ')', core.ColorBrightGreen)
	}
}

// drawMinimap shows obstacles and collectibles within minimapRange ahead.
func (sc *Scene) drawMinimap(view core.Rect) {
	if view.W < minimapW+4 || view.H < minimapH+4 {
		return
	}
	box := core.NewRect(view.Right()-minimapW-1, view.Bottom()-minimapH-1, minimapW, minimapH)
	sc.screen.DrawRect(box, ' ', core.ColorDefault)
	sc.screen.DrawBox(box, core.ColorGray)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	player := sc.frame.Player.Pos
	plot := func(pos r3.Vec, glyph rune, color core.Color) {
		dz := player.Z - pos.Z
		if dz < 0 || dz > minimapRange {
			return
		}
		fx := (pos.X - player.X + minimapHalfSpan) / (2 * minimapHalfSpan)
		if fx < 0 || fx > 1 {
			return
		}
		col := inner.X + int(fx*float64(inner.W-1))
		row := inner.Bottom() - 1 - int(dz/minimapRange*float64(inner.H-1))
		sc.screen.SetColored(col, row, glyph, color)
	}
	for _, e := range sc.frame.Entities {
		switch e.Kind {
		case reef.EntityObstacle:
			plot(e.Pos, 'x', core.ColorRed)
		case reef.EntityCollectible:
			plot(e.Pos, '.', core.ColorBrightGreen)
		}
	}
	sc.screen.SetColored(inner.X+inner.W/2, inner.Bottom()-1, '^', core.ColorFromHex(sc.frame.Player.Palette.Color))
}

func (sc *Scene) drawStatusLine(w int) {
	h := sc.hud
	line := fmt.Sprintf(" %s  SCORE %d  SPD %d  DIST %dm  x%d  BOOST %3.0f%%", h.Species, h.Score, h.Speed, h.Distance, h.Combo, h.BoostEnergy)
	if h.Rank > 0 {
		line += fmt.Sprintf("  #%d", h.Rank)
	}
	sc.screen.DrawRect(core.NewRect(0, 0, w, 1), ' ', core.ColorDefault)
	sc.screen.DrawTextColored(0, 0, line, core.ColorBrightWhite)
}

func (sc *Scene) drawOverlay(view core.Rect) {
	h := sc.hud
	var lines []string
	switch {
	case h.Ended:
		lines = []string{
			"RUN OVER",
			"",
			fmt.Sprintf("Score    %d", h.Score),
			fmt.Sprintf("Distance %dm", h.Distance),
		}
		if h.Rank > 0 {
			lines = append(lines, fmt.Sprintf("Rank     #%d", h.Rank))
		}
		lines = append(lines, "", "R: new run  B: menu  Q: quit")
	case h.Paused:
		lines = []string{"PAUSED", "", "P: resume  E: end run"}
	default:
		return
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect(view.X+(view.W-boxW)/2, view.Y+(view.H-boxH)/2, boxW, boxH)
	sc.screen.DrawRect(box, ' ', core.ColorDefault)
	sc.screen.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		x := box.X + (boxW-len(l))/2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		sc.screen.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

func (sc *Scene) renderPanel(height int) string {
	h := sc.hud
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	b.WriteString(playerStyle.Render(h.Species))
	b.WriteString("\n\n")
	row("Score", fmt.Sprintf("%d", h.Score))
	row("Speed", fmt.Sprintf("%d", h.Speed))
	row("Distance", fmt.Sprintf("%dm", h.Distance))
	row("Combo", fmt.Sprintf("x%d", h.Combo))
	if h.Multiplier > 1 {
		row("Bonus", fmt.Sprintf("x%d", h.Multiplier))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Boost"))
	b.WriteString("\n")
	b.WriteString(boostBar(h.BoostEnergy, hudPanelWidth-6, h.Boosting))
	b.WriteString("\n")

	if len(h.Powerups) > 0 {
		b.WriteString("\n")
		for _, p := range h.Powerups {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(p.Kind.Color())))
			b.WriteString(style.Render(fmt.Sprintf("%-10s %4.1fs", p.Kind, p.Remaining)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(renderBoard(h.Leaderboard))

	panel := panelStyle.Height(max(1, height-2)).Render(strings.TrimRight(b.String(), "\n"))
	return panel
}

// renderBoard renders leaderboard rows, highlighting the player.
func renderBoard(entries []leaderboard.Entry) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Leaderboard"))
	b.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%d. %-10s %6d", i+1, e.Name, e.Score)
		if e.IsPlayer {
			line = playerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func boostBar(energy float64, width int, boosting bool) string {
	filled := int(math.Round(core.ClampF(energy, 0, 100) / 100 * float64(width)))
	color := lipgloss.Color("39")
	if boosting {
		color = lipgloss.Color("51")
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	return bar + labelStyle.Render(strings.Repeat("░", width-filled))
}

func hexColor(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xffffff)
}

func entityGlyph(e reef.EntityView) (rune, bool) {
	switch e.Kind {
	case reef.EntityObstacle:
		switch e.Subtype {
		case "mine":
			return '*', true
		case "crystal":
			return '^', true
		case "coral":
			return '%', true
		case "shipwreck":
			return 'H', true
		}
		return '#', true
	case reef.EntityCollectible:
		return 'o', true
	case reef.EntityPowerup:
		if e.Subtype == "" {
			return '?', true
		}
		return rune(strings.ToUpper(e.Subtype)[0]), true
	case reef.EntityCreature:
		switch e.Subtype {
		case "jellyfish":
			return '&', true
		case "school":
			return '~', true
		case "ray":
			return 'v', true
		}
		return 'W', true
	case reef.EntityParticle:
		return '\'', e.Opacity > 0.2
	case reef.EntityBubble:
		return '°', true
	}
	return 0, false
}

func decorationGlyph(k world.DecorationKind) rune {
	switch k {
	case world.DecorationKelp:
		return '|'
	case world.DecorationRock:
		return 'n'
	default:
		return 'Y'
	}
}

func decorationColor(k world.DecorationKind) core.Color {
	switch k {
	case world.DecorationKelp:
		return core.ColorGreen
	case world.DecorationRock:
		return core.ColorGray
	default:
		return core.ColorPink
	}
}
