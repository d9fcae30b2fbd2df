package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grid-shooter/render"
)

// palette maps console colours onto tcell's named colours, which use the terminal's own 16-colour table
var palette = [render.PaletteSize]tcell.Color{
	render.ColorBlack:       tcell.ColorBlack,
	render.ColorDarkBlue:    tcell.ColorNavy,
	render.ColorDarkGreen:   tcell.ColorGreen,
	render.ColorDarkCyan:    tcell.ColorTeal,
	render.ColorDarkRed:     tcell.ColorMaroon,
	render.ColorDarkMagenta: tcell.ColorPurple,
	render.ColorDarkYellow:  tcell.ColorOlive,
	render.ColorGray:        tcell.ColorSilver,
	render.ColorDarkGray:    tcell.ColorGray,
	render.ColorBlue:        tcell.ColorBlue,
	render.ColorGreen:       tcell.ColorLime,
	render.ColorCyan:        tcell.ColorAqua,
	render.ColorRed:         tcell.ColorRed,
	render.ColorMagenta:     tcell.ColorFuchsia,
	render.ColorYellow:      tcell.ColorYellow,
	render.ColorWhite:       tcell.ColorWhite,
}

// TcellColor converts a palette colour, falling back to the terminal default for invalid values
func TcellColor(c render.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return palette[c]
}
