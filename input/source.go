package input

import "github.com/gdamore/tcell/v2"

// Source delivers commands without blocking
type Source interface {
	// Next returns the next pending command, false when none is waiting
	Next() (Command, bool)
}

// KeyPoller is the terminal side of keyboard input
type KeyPoller interface {
	// PollKey returns a pending key event without blocking
	PollKey() (*tcell.EventKey, bool)
}

// KeyboardSource turns polled key events into commands through a key table
type KeyboardSource struct {
	poller KeyPoller
	table  *KeyTable
}

// NewKeyboardSource creates a source; a nil table selects DefaultKeyTable
func NewKeyboardSource(poller KeyPoller, table *KeyTable) *KeyboardSource {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &KeyboardSource{poller: poller, table: table}
}

// Next drains pending key events until one maps to a command
func (s *KeyboardSource) Next() (Command, bool) {
	for {
		ev, ok := s.poller.PollKey()
		if !ok {
			return CommandNone, false
		}
		if cmd, ok := s.table.Lookup(ev); ok {
			return cmd, true
		}
	}
}

// ScriptSource replays a fixed command sequence, one per call
type ScriptSource struct {
	commands []Command
}

// NewScriptSource creates a source that yields commands in order
func NewScriptSource(commands ...Command) *ScriptSource {
	return &ScriptSource{commands: commands}
}

func (s *ScriptSource) Next() (Command, bool) {
	if len(s.commands) == 0 {
		return CommandNone, false
	}
	cmd := s.commands[0]
	s.commands = s.commands[1:]
	return cmd, true
}

// Remaining returns the number of commands not yet delivered
func (s *ScriptSource) Remaining() int {
	return len(s.commands)
}
