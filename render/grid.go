package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/grid-shooter/core"
)

// Layout of the buffer around the playfield
const (
	TopMargin    = 1
	BottomMargin = 0
	LeftMargin   = 1
	RightMargin  = 0
	Border       = 1
)

// Accepted playfield dimensions
const (
	MinRows = 8
	MaxRows = 32
	MinCols = 16
	MaxCols = 64
)

// DefaultColor is the colour of blank and border cells
const DefaultColor = ColorWhite

// Border glyphs
const (
	glyphTopLeft     = '╔'
	glyphTopRight    = '╗'
	glyphBottomLeft  = '╚'
	glyphBottomRight = '╝'
	glyphVertical    = '║'
	glyphHorizontal  = '═'
	glyphBlank       = ' '
)

// ErrInvalidDimension is returned when a grid is requested outside the accepted dimensions
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Grid is a fixed-size character/colour surface with dirty-cell tracking
// Writes land in the buffers; Render pushes only the cells changed since the previous Render
type Grid struct {
	rows, cols    int
	width, height int

	chars  []rune
	colors []Color

	// FIFO of buffer coordinates written since the last render
	queue []core.Point

	surface Surface
}

// NewGrid allocates a grid with a rows x cols playfield, draws its border and queues a full paint
func NewGrid(rows, cols int, surface Surface) (*Grid, error) {
	if rows < MinRows || rows > MaxRows {
		return nil, fmt.Errorf("%w: rows %d not within %d to %d", ErrInvalidDimension, rows, MinRows, MaxRows)
	}
	if cols < MinCols || cols > MaxCols {
		return nil, fmt.Errorf("%w: columns %d not within %d to %d", ErrInvalidDimension, cols, MinCols, MaxCols)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		height:  TopMargin + BottomMargin + 2*Border + rows,
		width:   LeftMargin + RightMargin + 2*Border + cols,
		surface: surface,
	}
	g.chars = make([]rune, g.width*g.height)
	g.colors = make([]Color, g.width*g.height)
	g.queue = make([]core.Point, 0, g.width*g.height)

	g.initializeBuffer()
	g.drawBorder()
	return g, nil
}

// Rows returns the playfield row count
func (g *Grid) Rows() int { return g.rows }

// Cols returns the playfield column count
func (g *Grid) Cols() int { return g.cols }

// BufferSize returns the buffer height and width including margins and border
func (g *Grid) BufferSize() (height, width int) {
	return g.height, g.width
}

// Cell returns the buffered character and colour at a buffer coordinate
func (g *Grid) Cell(bufRow, bufCol int) (rune, Color, bool) {
	if !g.inBuffer(bufRow, bufCol) {
		return 0, 0, false
	}
	idx := bufRow*g.width + bufCol
	return g.chars[idx], g.colors[idx], true
}

// Pending returns the number of queued dirty cells
func (g *Grid) Pending() int {
	return len(g.queue)
}

// InitializeWindow prepares the terminal: clear and hide the cursor
func (g *Grid) InitializeWindow() {
	g.surface.ClearScreen()
	g.surface.HideCursor()
}

// FillPixel writes a character into the playfield at (row, col)
// Unchanged values are not queued; coordinates outside the playfield are dropped
func (g *Grid) FillPixel(ch rune, color Color, row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.setCell(row+TopMargin+Border, col+LeftMargin+Border, ch, color)
}

// SetStatus writes a single line of text into the top margin row, blank-padded to the buffer width
func (g *Grid) SetStatus(text string) {
	runes := []rune(text)
	for col := 0; col < g.width; col++ {
		ch := glyphBlank
		if col < len(runes) {
			ch = runes[col]
		}
		g.setCell(0, col, ch, DefaultColor)
	}
}

// Render flushes queued cells to the surface in write order and returns how many were written
func (g *Grid) Render() int {
	if len(g.queue) == 0 {
		return 0
	}

	previous := g.surface.Foreground()
	written := len(g.queue)
	for _, p := range g.queue {
		idx := p.Row*g.width + p.Col
		g.surface.SetCursor(p.Row, p.Col)
		g.surface.WriteChar(g.chars[idx], g.colors[idx])
	}
	g.queue = g.queue[:0]
	g.surface.SetForeground(previous)
	g.surface.Show()

	return written
}

// Clear blanks the whole buffer, redraws the border and renders immediately
func (g *Grid) Clear() {
	g.initializeBuffer()
	g.drawBorder()
	g.Render()
}

func (g *Grid) inBuffer(bufRow, bufCol int) bool {
	return bufRow >= 0 && bufRow < g.height && bufCol >= 0 && bufCol < g.width
}

// setCell is the single mutation path for buffer cells, keeping the queue consistent with the buffers
func (g *Grid) setCell(bufRow, bufCol int, ch rune, color Color) {
	idx := bufRow*g.width + bufCol
	if g.chars[idx] == ch && g.colors[idx] == color {
		return
	}
	g.chars[idx] = ch
	g.colors[idx] = color
	g.queue = append(g.queue, core.NewPoint(bufRow, bufCol))
}

// initializeBuffer blanks every cell and queues all of them
func (g *Grid) initializeBuffer() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := row*g.width + col
			g.chars[idx] = glyphBlank
			g.colors[idx] = DefaultColor
			g.queue = append(g.queue, core.NewPoint(row, col))
		}
	}
}

// drawBorder places the frame glyphs; cells were already queued by initializeBuffer
func (g *Grid) drawBorder() {
	top := TopMargin
	bottom := TopMargin + Border + g.rows
	left := LeftMargin
	right := LeftMargin + Border + g.cols

	g.put(top, left, glyphTopLeft)
	g.put(top, right, glyphTopRight)
	g.put(bottom, left, glyphBottomLeft)
	g.put(bottom, right, glyphBottomRight)
	for row := top + Border; row < bottom; row++ {
		g.put(row, left, glyphVertical)
		g.put(row, right, glyphVertical)
	}
	for col := left + Border; col < right; col++ {
		g.put(top, col, glyphHorizontal)
		g.put(bottom, col, glyphHorizontal)
	}
}

func (g *Grid) put(bufRow, bufCol int, ch rune) {
	idx := bufRow*g.width + bufCol
	g.chars[idx] = ch
	g.colors[idx] = DefaultColor
}
