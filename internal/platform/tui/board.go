package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	hudHeight  = 1 // Status line above the board
	helpHeight = 1 // Help line below the screen buffer
	cellRune   = '█'
)

// Layout places the board on a terminal screen.
type Layout struct {
	Box       core.Rect // Border around the board
	CellWidth int       // Columns per grid cell
	TooSmall  bool      // Board does not fit; nothing but a notice is drawn
	NeedW     int
	NeedH     int
}

// NewLayout centers a grid of cellWidth-column cells on a screen of the given size.
func NewLayout(grid core.Grid, cellWidth, screenW, screenH int) Layout {
	boxW := grid.Width*cellWidth + 2
	boxH := grid.Height + 2
	l := Layout{
		CellWidth: cellWidth,
		NeedW:     boxW,
		NeedH:     boxH + hudHeight,
	}
	if screenW < l.NeedW || screenH < l.NeedH {
		l.TooSmall = true
		return l
	}
	l.Box = core.NewRect((screenW-boxW)/2, hudHeight, boxW, boxH)
	return l
}

// CellOrigin returns the screen position of a grid cell's first column.
func (l Layout) CellOrigin(grid core.Grid, c core.Cell) (int, int) {
	x, y := grid.ToScreen(c, l.CellWidth, 1)
	return l.Box.X + 1 + x, l.Box.Y + 1 + y
}

// DrawBoard renders the HUD, the border, the empty board and the game's drawables.
func DrawBoard(dst *core.Screen, g *game.Game, layout Layout, pal core.Palette) {
	dst.SetPen(pal.Text, pal.Background)
	dst.Clear()

	drawHUD(dst, g.State())

	if layout.TooSmall {
		drawNotice(dst, "Terminal too small",
			fmt.Sprintf("need %dx%d, have %dx%d", layout.NeedW, layout.NeedH+helpHeight, dst.Width(), dst.Height()+helpHeight))
		return
	}

	dst.SetPen(pal.Border, pal.Background)
	dst.DrawBox(layout.Box)

	grid := g.Grid()
	for _, d := range g.Drawables() {
		glyph := core.Glyph{Rune: cellRune, Fg: d.Color(), Bg: pal.Background}
		for _, c := range d.Cells() {
			x, y := layout.CellOrigin(grid, c)
			for i := 0; i < layout.CellWidth; i++ {
				dst.SetGlyph(x+i, y, glyph)
			}
		}
	}

	dst.SetPen(pal.Text, pal.Background)
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, st core.GameState) {
	hud := fmt.Sprintf(" Snake  Length: %d  Best: %d  Resets: %d", st.Length, st.BestLength, st.Resets)
	dst.DrawText(0, 0, hud)
}

// drawNotice draws two centered lines in the middle of the screen.
func drawNotice(dst *core.Screen, line1, line2 string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, line1)
	dst.DrawTextCentered(y+1, line2)
}
