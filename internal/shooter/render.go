package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '▼'
	BulletChar = '|'
)

// viewport maps playfield units onto the screen cells inside the border.
type viewport struct {
	left, top int // First inner cell
	w, h      int // Inner size in cells
	sx, sy    float64
	fieldH    float64
}

func newViewport(dst *core.Screen, field core.Rect) (viewport, bool) {
	// Row 0 is the HUD, the rest is the bordered playfield
	v := viewport{
		left:   1,
		top:    2,
		w:      dst.Width() - 2,
		h:      dst.Height() - 3,
		fieldH: field.H,
	}
	if v.w < 1 || v.h < 1 || field.W <= 0 || field.H <= 0 {
		return v, false
	}
	v.sx = float64(v.w) / field.W
	v.sy = float64(v.h) / field.H
	return v, true
}

// cells returns the inclusive cell range covered by r, clipped to the
// viewport. The playfield y axis grows upward, screen rows grow downward.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = v.left + int(math.Floor(r.X*v.sx))
	x1 = v.left + int(math.Ceil(r.Right()*v.sx)) - 1
	y0 = v.top + int(math.Floor((v.fieldH-r.Top())*v.sy))
	y1 = v.top + int(math.Ceil((v.fieldH-r.Y)*v.sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	x0 = core.Max(x0, v.left)
	y0 = core.Max(y0, v.top)
	x1 = core.Min(x1, v.left+v.w-1)
	y1 = core.Min(y1, v.top+v.h-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	// Draw HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorGreen)
	status := fmt.Sprintf("Enemies: %d  Bullets: %d", len(snap.Enemies), len(snap.Bullets))
	dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, core.ColorGray)

	dst.DrawBox(0, 1, dst.Width(), dst.Height()-1, core.ColorGray)

	v, ok := newViewport(dst, snap.Playfield)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	for _, r := range snap.Enemies {
		fill(dst, v, r, EnemyChar, core.ColorBrightRed)
	}
	for _, r := range snap.Bullets {
		fill(dst, v, r, BulletChar, core.ColorBrightYellow)
	}
	if snap.PlayerAlive {
		fill(dst, v, snap.Player, PlayerChar, core.ColorBrightCyan)
	}

	if g.paused {
		drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}

	if snap.State == StateGameOver {
		drawCenteredMessage(dst, core.ColorBrightRed,
			"Game Over!",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Press R to restart",
		)
	}
}

func fill(dst *core.Screen, v viewport, r core.Rect, ch rune, c core.Color) {
	if x0, y0, x1, y1, ok := v.cells(r); ok {
		dst.FillCells(x0, y0, x1, y1, ch, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// The first line is the title, drawn in the given color.
func drawCenteredMessage(dst *core.Screen, c core.Color, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillCells(boxX, boxY, boxX+boxW-1, boxY+boxH-1, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = c
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i*2, l, color)
	}
}
