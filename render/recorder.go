package render

import "github.com/lixenwraith/grid-shooter/core"

// Write is one character written to a Recorder
type Write struct {
	At    core.Point
	Char  rune
	Color Color
}

// Recorder is an in-memory Surface that records every write, used by tests and headless runs
type Recorder struct {
	cursor     core.Point
	foreground Color

	Writes []Write
	Shows  int
	Clears int
	Hidden bool
	screen map[core.Point]Write
}

// NewRecorder creates an empty recorder with a white foreground
func NewRecorder() *Recorder {
	return &Recorder{
		foreground: ColorWhite,
		screen:     make(map[core.Point]Write),
	}
}

func (r *Recorder) SetCursor(row, col int) {
	r.cursor = core.NewPoint(row, col)
}

func (r *Recorder) WriteChar(ch rune, color Color) {
	r.foreground = color
	w := Write{At: r.cursor, Char: ch, Color: color}
	r.Writes = append(r.Writes, w)
	r.screen[r.cursor] = w
	r.cursor.ShiftInPlace(0, 1)
}

func (r *Recorder) Foreground() Color { return r.foreground }

func (r *Recorder) SetForeground(color Color) { r.foreground = color }

func (r *Recorder) ClearScreen() {
	r.Clears++
	clear(r.screen)
}

func (r *Recorder) HideCursor() { r.Hidden = true }

func (r *Recorder) Show() { r.Shows++ }

// At returns the last character written at a buffer coordinate
func (r *Recorder) At(row, col int) (Write, bool) {
	w, ok := r.screen[core.NewPoint(row, col)]
	return w, ok
}

// Reset forgets recorded writes but keeps the screen image
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
	r.Shows = 0
}
