package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout: one HUD row, then the bordered board. Each grid cell is two
// terminal columns wide so cells look square.
const (
	cellWidth = 2
	hudHeight = 1
)

var foodGlyphs = map[FoodKind]struct {
	runes [cellWidth]rune
	color core.Color
}{
	FoodRegular: {[cellWidth]rune{'●', ' '}, core.ColorRed},
	FoodBonus:   {[cellWidth]rune{'★', ' '}, core.ColorBrightYellow},
	FoodPoison:  {[cellWidth]rune{'☠', ' '}, core.ColorMagenta},
}

// Render draws the HUD, board, snake and food into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	g.renderHUD(dst, snap)

	if snap.TooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := boardRect(dst, snap.GridW, snap.GridH)
	dst.DrawBox(board, core.ColorGray)

	for _, f := range snap.Foods() {
		glyph := foodGlyphs[f.Kind]
		x, y := cellOrigin(board, f.Location)
		for i, r := range glyph.runes {
			dst.SetColored(x+i, y, r, glyph.color)
		}
	}

	for i, c := range snap.Body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		x, y := cellOrigin(board, c)
		dst.DrawText(x, y, "██", color)
	}

	if snap.Phase == core.PhaseGameOver {
		renderOverlay(dst, "Game Over!", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d", g.Title(), snap.Score, len(snap.Body))
	dst.DrawText(0, 0, hud, core.ColorWhite)
	if snap.Poison.Active {
		dst.DrawText(len([]rune(hud))+2, 0, "Poison!", core.ColorMagenta)
	}
}

// boardRect centers the bordered board horizontally below the HUD.
func boardRect(dst *core.Screen, gridW, gridH int) core.Rect {
	w := gridW*cellWidth + 2
	h := gridH + 2
	x := core.Max(0, (dst.Width()-w)/2)
	return core.NewRect(x, hudHeight, w, h)
}

// cellOrigin maps a grid cell to the screen position of its left column.
func cellOrigin(board core.Rect, c core.Cell) (int, int) {
	return board.X + 1 + c.X*cellWidth, board.Y + 1 + c.Y
}

func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorWhite)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorRed
		}
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}
