package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Escape)
	SpecialKeys map[tcell.Key]Command

	// Printable keys, delivered by tcell as KeyRune
	Runes map[rune]Command
}

// DefaultKeyTable returns the default bindings: arrows and hjkl move, space fires, c clears, Esc quits
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyEscape: CommandQuit,
			tcell.KeyCtrlC:  CommandQuit,
			tcell.KeyLeft:   CommandMoveLeft,
			tcell.KeyRight:  CommandMoveRight,
			tcell.KeyUp:     CommandMoveUp,
			tcell.KeyDown:   CommandMoveDown,
		},
		Runes: map[rune]Command{
			' ': CommandFire,
			'c': CommandClear,
			'C': CommandClear,
			'h': CommandMoveLeft,
			'l': CommandMoveRight,
			'k': CommandMoveUp,
			'j': CommandMoveDown,
		},
	}
}

// Lookup translates a key event, reporting false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Command, bool) {
	if ev == nil {
		return CommandNone, false
	}
	if ev.Key() == tcell.KeyRune {
		cmd, ok := kt.Runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := kt.SpecialKeys[ev.Key()]
	return cmd, ok
}
