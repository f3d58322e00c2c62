package bubbles

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	engine "github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

// Visual characters for rendering
const (
	PopChar       = '*'
	FallChar      = 'o'
	PreviewChar   = '·'
	AlternateChar = '.'
	MuzzleChar    = '^'
)

const (
	hudHeight   = 2 // score line and shot line
	colsPerSlot = 4 // screen columns per grid interval
)

// view maps world positions onto screen cells. One grid interval is one
// screen row and colsPerSlot screen columns, so the quarter interval row
// offset lands on whole columns.
type view struct {
	origin   engine.Vec2
	iv       float64
	halfW    int // columns from the board center to a wall
	floorRow int // rows from the ceiling line to the floor line
	muzzle   engine.Vec2
}

func newView(layout engine.Layout, muzzle engine.Vec2, floorY float64) view {
	_, right, top, _ := layout.Bounds()
	v := view{
		origin: layout.Origin,
		iv:     layout.Interval(),
		muzzle: muzzle,
	}
	v.halfW = int(math.Ceil((right - v.origin.X) * colsPerSlot / v.iv))
	v.floorRow = int(math.Round((top-floorY)/v.iv)) + 1
	return v
}

// width returns the screen columns the board and its walls need.
func (v view) width() int {
	return 2*v.halfW + 3
}

// height returns the screen rows the HUD, the board and the status line need.
func (v view) height() int {
	return hudHeight + v.floorRow + 2
}

// toScreen converts a world position for a screen of width w.
func (v view) toScreen(p engine.Vec2, w int) (int, int) {
	x := w/2 + int(math.Round((p.X-v.origin.X)*colsPerSlot/v.iv))
	y := hudHeight + 1 + int(math.Round((v.origin.Y-p.Y)/v.iv))
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.state == StateNoLevel {
		dst.DrawTextCentered(dst.Height()/2, "No playable levels")
		return
	}

	g.renderHUD(dst)
	g.renderFrame(dst)
	g.renderPreview(dst)
	g.renderBubbles(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, shots and level on top and aim info below.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Shots: %d", g.shooter.Shots()))

	lvl := g.levels[g.levelIndex]
	levelText := lvl.Title()
	if g.mode == ModeCampaign {
		levelText = fmt.Sprintf("%s %d/%d", levelText, g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)

	next := g.shooter.Next()
	dst.DrawText(1, 1, "Next:")
	dst.SetWithColor(7, 1, g.palette.Glyph(next), g.colorOf(next))

	filled := int(math.Round(g.power * 10))
	bar := fmt.Sprintf("Power [%s%s]", strings.Repeat("#", filled), strings.Repeat("-", 10-filled))
	dst.DrawTextCentered(1, bar)

	aimText := fmt.Sprintf("Aim: %+.0f°", g.aim)
	dst.DrawText(dst.Width()-len([]rune(aimText))-1, 1, aimText)
}

// box returns the frame of walls, ceiling and floor for a screen of width w.
func (v view) box(w int) core.Rect {
	return core.NewRect(w/2-v.halfW-1, hudHeight, v.width(), v.floorRow+1)
}

// renderFrame draws the walls, the ceiling and the floor.
func (g *Game) renderFrame(dst *core.Screen) {
	w := dst.Width()
	dst.DrawBoxWithColor(g.view.box(w), core.ColorGray)

	x, y := g.view.toScreen(g.view.muzzle, w)
	dst.SetWithColor(x, y+1, MuzzleChar, core.ColorWhite)
}

// renderPreview draws the predicted path of the prepared bubble.
func (g *Game) renderPreview(dst *core.Screen) {
	if g.state != StatePlaying || !g.shooter.Preview(g.aimDir(), g.power, &g.traj) {
		return
	}
	g.drawPath(dst, g.traj.Alternate, AlternateChar)
	g.drawPath(dst, g.traj.Primary, PreviewChar)
}

func (g *Game) drawPath(dst *core.Screen, path []engine.Vec2, glyph rune) {
	w := dst.Width()
	inside := g.view.box(w).Inset(1)
	mx, my := g.view.toScreen(g.view.muzzle, w)
	for _, p := range path {
		x, y := g.view.toScreen(p, w)
		if (x == mx && y == my) || !inside.Contains(x, y) || dst.Get(x, y) != ' ' {
			continue
		}
		dst.SetWithColor(x, y, glyph, core.ColorGray)
	}
}

// renderBubbles draws every live bubble: resting cells, the queued or
// flying projectile and running effects.
func (g *Game) renderBubbles(dst *core.Screen) {
	w := dst.Width()
	inside := g.view.box(w).Inset(1)
	for _, b := range g.bubbles.Bubbles() {
		x, y := g.view.toScreen(b.Position(), w)
		if !inside.Contains(x, y) {
			continue
		}
		glyph := g.palette.Glyph(b.Color)
		switch b.Phase() {
		case engine.PhasePopping:
			glyph = PopChar
		case engine.PhaseFalling:
			glyph = FallChar
		}
		dst.SetWithColor(x, y, glyph, g.colorOf(b.Color))
	}
}

// renderOverlay draws pause and round result messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	status := hudHeight + g.view.floorRow + 1

	switch g.state {
	case StatePaused:
		dst.DrawTextCenteredWithColor(status, "PAUSED - Press P to resume", core.ColorYellow)
	case StateOver:
		msg, c := "OUT OF SHOTS", core.ColorRed
		if g.won {
			msg, c = "LEVEL CLEARED!", core.ColorGreen
		}
		midY := hudHeight + g.view.floorRow/2
		dst.DrawTextCenteredWithColor(midY-1, msg, c)
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(status, "Enter: continue  R: restart  Q: quit")
	default:
		dst.DrawTextCentered(status, "←/→ aim  ↑/↓ power  Space fire  P pause")
	}
}

func (g *Game) colorOf(c engine.Color) core.Color {
	if int(c) < len(g.colors) {
		return g.colors[c]
	}
	return core.ColorWhite
}
