package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used for world primitives.
const (
	BlockGlyph = '█'
	BallGlyph  = '●'
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// CellSurface draws world-coordinate primitives onto a Screen.
type CellSurface struct {
	screen *core.Screen
	view   core.Viewport
}

// NewCellSurface maps a world of the given size onto the whole screen.
func NewCellSurface(screen *core.Screen, worldW, worldH float64) *CellSurface {
	return &CellSurface{
		screen: screen,
		view:   core.NewViewport(worldW, worldH, float64(screen.Width()), float64(screen.Height())),
	}
}

// Screen returns the target buffer.
func (c *CellSurface) Screen() *core.Screen {
	return c.screen
}

// Resize changes the screen size and rescales the world onto it.
func (c *CellSurface) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.view.DeviceW = float64(cols)
	c.view.DeviceH = float64(rows)
}

// FillRect fills every cell the shape touches. The outline color is not
// drawn separately at cell resolution.
func (c *CellSurface) FillRect(s core.Shape, fill, _ core.Color) {
	c.screen.DrawRect(c.view.Cells(s), BlockGlyph, fill)
}

// FillEllipse draws a single ball glyph at the shape's center.
func (c *CellSurface) FillEllipse(s core.Shape, fill, _ core.Color) {
	x, y := c.view.Point(s.X, s.Y)
	c.screen.SetCell(int(math.Floor(x)), int(math.Floor(y)), BallGlyph, fill)
}

// DrawLabel writes each line of the label on its own row, top line at the
// label's anchor.
func (c *CellSurface) DrawLabel(l core.Label) {
	x, y := c.view.Point(l.X, l.Y)
	row := int(math.Floor(y))
	for i, line := range strings.Split(l.Text, "\n") {
		col := int(math.Floor(x))
		if l.Align == core.AlignCenter {
			col -= utf8.RuneCountInString(line) / 2
		}
		c.screen.DrawText(col, row+i, line, l.Color)
	}
}

// FitField returns the largest cell grid inside cols x rows that keeps the
// world's aspect ratio, treating cells as twice as tall as they are wide.
func FitField(cols, rows int, worldW, worldH float64) (int, int) {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return 0, 0
	}
	w := int(math.Round(float64(rows) * cellAspect * worldW / worldH))
	if w <= cols {
		return max(w, 1), rows
	}
	h := int(math.Round(float64(cols) * worldH / (worldW * cellAspect)))
	return cols, max(min(h, rows), 1)
}
