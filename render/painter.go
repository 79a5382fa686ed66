package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"asciipond/constants"
	"asciipond/sim"
)

// Painter owns all tcell writes for a frame: background fill, one glyph
// per grid cell at its displaced position, then the raindrop streak
// overlay on top.
type Painter struct {
	screen  tcell.Screen
	bg      tcell.Color
	bgStyle tcell.Style
}

// NewPainter wraps an initialized screen.
func NewPainter(screen tcell.Screen) *Painter {
	bg := tcell.NewRGBColor(int32(Background.R), int32(Background.G), int32(Background.B))
	return &Painter{
		screen:  screen,
		bg:      bg,
		bgStyle: tcell.StyleDefault.Background(bg),
	}
}

// Paint draws a full frame into the screen buffer. The caller overlays
// any status text and then calls Flush.
func (p *Painter) Paint(frame [][]sim.Cell, drops []sim.Raindrop) {
	rows := len(frame)
	if rows == 0 {
		return
	}
	cols := len(frame[0])

	// Background pass first: displacement can leave source cells empty.
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p.screen.SetContent(x, y, ' ', nil, p.bgStyle)
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := frame[y][x]
			glyph := GlyphFor(cell.CharValue)
			if glyph == ' ' {
				continue
			}
			px := x + clampCell(cell.DispX)
			py := y + clampCell(cell.DispY)
			if px < 0 || px >= cols || py < 0 || py >= rows {
				continue
			}
			c := Colorize(cell)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
				Background(p.bg)
			p.screen.SetContent(px, py, glyph, nil, style)
		}
	}

	p.paintDrops(drops, cols, rows)
}

// Flush pushes the composed frame to the terminal.
func (p *Painter) Flush() {
	p.screen.Show()
}

// paintDrops overlays each airborne raindrop as a short fading streak.
func (p *Painter) paintDrops(drops []sim.Raindrop, cols, rows int) {
	for _, d := range drops {
		col := int(d.X / constants.CellWidth)
		row := int(d.Y / constants.CellHeight)
		p.streakCell(col, row, 1.0, cols, rows)
		p.streakCell(col, row-1, 0.45, cols, rows)
	}
}

func (p *Painter) streakCell(col, row int, alpha float64, cols, rows int) {
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return
	}
	c := Background.Blend(RainStreak, alpha)
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(p.bg)
	p.screen.SetContent(col, row, '│', nil, style)
}

// Text writes a status line without styling frills.
func (p *Painter) Text(x, y int, text string, c RGB) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(p.bg)
	for i, r := range text {
		p.screen.SetContent(x+i, y, r, nil, style)
	}
}

// clampCell rounds a displacement to whole cells, limited to one cell
// so dragged glyphs never teleport.
func clampCell(v float64) int {
	d := int(math.Round(v))
	if d > 1 {
		return 1
	}
	if d < -1 {
		return -1
	}
	return d
}
