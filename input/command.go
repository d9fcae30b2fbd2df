package input

import "github.com/lixenwraith/grid-shooter/core"

// Command is a discrete action delivered to the game
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandFire
	CommandClear
	CommandQuit
)

var commandNames = map[Command]string{
	CommandNone:      "none",
	CommandMoveLeft:  "move-left",
	CommandMoveRight: "move-right",
	CommandMoveUp:    "move-up",
	CommandMoveDown:  "move-down",
	CommandFire:      "fire",
	CommandClear:     "clear",
	CommandQuit:      "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Displacement returns the one-cell step of a move command
func (c Command) Displacement() (core.Point, bool) {
	switch c {
	case CommandMoveLeft:
		return core.NewPoint(0, -1), true
	case CommandMoveRight:
		return core.NewPoint(0, 1), true
	case CommandMoveUp:
		return core.NewPoint(-1, 0), true
	case CommandMoveDown:
		return core.NewPoint(1, 0), true
	default:
		return core.Point{}, false
	}
}
