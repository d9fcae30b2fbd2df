package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, rows, cols int) (*Grid, *Recorder) {
	t.Helper()
	rec := NewRecorder()
	g, err := NewGrid(rows, cols, rec)
	require.NoError(t, err)
	return g, rec
}

// TestNewGridBorderAcrossRange checks every accepted size produces a framed buffer
func TestNewGridBorderAcrossRange(t *testing.T) {
	for rows := MinRows; rows <= MaxRows; rows++ {
		for cols := MinCols; cols <= MaxCols; cols++ {
			g, _ := newTestGrid(t, rows, cols)

			height, width := g.BufferSize()
			require.Equal(t, TopMargin+BottomMargin+2*Border+rows, height)
			require.Equal(t, LeftMargin+RightMargin+2*Border+cols, width)

			top, bottom := TopMargin, TopMargin+Border+rows
			left, right := LeftMargin, LeftMargin+Border+cols

			assertGlyph(t, g, top, left, glyphTopLeft)
			assertGlyph(t, g, top, right, glyphTopRight)
			assertGlyph(t, g, bottom, left, glyphBottomLeft)
			assertGlyph(t, g, bottom, right, glyphBottomRight)
			for row := top + 1; row < bottom; row++ {
				assertGlyph(t, g, row, left, glyphVertical)
				assertGlyph(t, g, row, right, glyphVertical)
			}
			for col := left + 1; col < right; col++ {
				assertGlyph(t, g, top, col, glyphHorizontal)
				assertGlyph(t, g, bottom, col, glyphHorizontal)
			}

			// Full initial paint
			require.Equal(t, height*width, g.Pending())
		}
	}
}

func assertGlyph(t *testing.T, g *Grid, row, col int, want rune) {
	t.Helper()
	ch, color, ok := g.Cell(row, col)
	require.True(t, ok)
	require.Equalf(t, want, ch, "glyph at (%d,%d)", row, col)
	require.Equal(t, DefaultColor, color)
}

func TestNewGridInvalidDimension(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"rows below", MinRows - 1, 48},
		{"rows above", MaxRows + 1, 48},
		{"cols below", 24, MinCols - 1},
		{"cols above", 24, MaxCols + 1},
		{"zero", 0, 0},
		{"negative", -5, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecorder()
			g, err := NewGrid(tc.rows, tc.cols, rec)
			require.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, g)
			assert.Empty(t, rec.Writes, "nothing may be rendered before the dimension error")
		})
	}
}

func TestFillPixelDeduplicates(t *testing.T) {
	g, _ := newTestGrid(t, 24, 48)
	g.Render()
	require.Zero(t, g.Pending())

	g.FillPixel('#', ColorRed, 3, 4)
	g.FillPixel('#', ColorRed, 3, 4)
	assert.Equal(t, 1, g.Pending())

	ch, color, _ := g.Cell(3+TopMargin+Border, 4+LeftMargin+Border)
	assert.Equal(t, '#', ch)
	assert.Equal(t, ColorRed, color)

	// Same glyph, new colour is a change
	g.FillPixel('#', ColorBlue, 3, 4)
	assert.Equal(t, 2, g.Pending())
}

func TestFillPixelOutsidePlayfieldDropped(t *testing.T) {
	g, _ := newTestGrid(t, 8, 16)
	g.Render()

	g.FillPixel('x', ColorRed, -1, 0)
	g.FillPixel('x', ColorRed, 0, -1)
	g.FillPixel('x', ColorRed, 8, 0)
	g.FillPixel('x', ColorRed, 0, 16)
	assert.Zero(t, g.Pending())
	assertGlyph(t, g, TopMargin, LeftMargin+Border, glyphHorizontal)
}

func TestRenderDrainsQueueInOrder(t *testing.T) {
	g, rec := newTestGrid(t, 8, 16)
	g.Render()
	rec.Reset()

	rec.SetForeground(ColorCyan)
	g.FillPixel('a', ColorRed, 0, 0)
	g.FillPixel('b', ColorGreen, 5, 7)

	n := g.Render()
	require.Equal(t, 2, n)
	require.Len(t, rec.Writes, 2)
	assert.Equal(t, Write{At: pointAt(0+TopMargin+Border, 0+LeftMargin+Border), Char: 'a', Color: ColorRed}, rec.Writes[0])
	assert.Equal(t, Write{At: pointAt(5+TopMargin+Border, 7+LeftMargin+Border), Char: 'b', Color: ColorGreen}, rec.Writes[1])
	assert.Equal(t, ColorCyan, rec.Foreground(), "foreground restored after render")
	assert.Zero(t, g.Pending())

	// Second render is a no-op
	rec.Reset()
	assert.Zero(t, g.Render())
	assert.Empty(t, rec.Writes)
	assert.Zero(t, rec.Shows)
}

func TestClearRepaintsEverything(t *testing.T) {
	g, rec := newTestGrid(t, 8, 16)
	g.Render()
	g.FillPixel('@', ColorYellow, 2, 2)
	rec.Reset()

	g.Clear()

	height, width := g.BufferSize()
	assert.Zero(t, g.Pending())
	assert.GreaterOrEqual(t, len(rec.Writes), height*width)

	ch, _, _ := g.Cell(2+TopMargin+Border, 2+LeftMargin+Border)
	assert.Equal(t, ' ', ch)
	w, ok := rec.At(2+TopMargin+Border, 2+LeftMargin+Border)
	require.True(t, ok)
	assert.Equal(t, ' ', w.Char)
	assertGlyph(t, g, TopMargin, LeftMargin, glyphTopLeft)
}

func TestSetStatus(t *testing.T) {
	g, _ := newTestGrid(t, 8, 16)
	g.Render()

	g.SetStatus("Kills: 3")
	_, width := g.BufferSize()
	assert.Equal(t, 7, g.Pending(), "blank cells are already blank")

	ch, _, _ := g.Cell(0, 0)
	assert.Equal(t, 'K', ch)

	g.Render()
	g.SetStatus("Kills: 3")
	assert.Zero(t, g.Pending())

	long := make([]rune, width+10)
	for i := range long {
		long[i] = 'z'
	}
	g.SetStatus(string(long))
	ch, _, ok := g.Cell(0, width-1)
	require.True(t, ok)
	assert.Equal(t, 'z', ch)
}

func TestInitializeWindow(t *testing.T) {
	g, rec := newTestGrid(t, 8, 16)
	g.InitializeWindow()
	assert.Equal(t, 1, rec.Clears)
	assert.True(t, rec.Hidden)
}
