package render

import "math/rand"

// Color is an entry of the 16-colour console palette
type Color uint8

// Palette order matches the classic console colour table, black first
const (
	ColorBlack Color = iota
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite

	paletteSize
)

var colorNames = [paletteSize]string{
	"black", "dark-blue", "dark-green", "dark-cyan", "dark-red", "dark-magenta", "dark-yellow", "gray",
	"dark-gray", "blue", "green", "cyan", "red", "magenta", "yellow", "white",
}

// PaletteSize is the number of colours in the palette
const PaletteSize = int(paletteSize)

// Valid reports whether c is inside the palette
func (c Color) Valid() bool {
	return c < paletteSize
}

func (c Color) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return colorNames[c]
}

// RandomNonBlack picks a palette colour other than black
func RandomNonBlack(rng *rand.Rand) Color {
	return Color(rng.Intn(PaletteSize-1) + 1)
}
