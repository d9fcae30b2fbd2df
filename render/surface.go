package render

// Surface is the narrow terminal capability the grid renders through
// Coordinates are buffer coordinates: row from the top, column from the left
type Surface interface {
	SetCursor(row, col int)
	// WriteChar writes ch at the cursor in the given colour and advances the cursor one column
	WriteChar(ch rune, color Color)
	Foreground() Color
	SetForeground(color Color)
	ClearScreen()
	HideCursor()
	// Show flushes pending writes to the physical terminal
	Show()
}
