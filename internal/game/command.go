package game

import "github.com/gdamore/tcell/v2"

// Command is one discrete player input.
type Command int

const (
	// CommandNone renders again without changing anything.
	CommandNone Command = iota
	CommandForward
	CommandBackward
	CommandTurnLeft
	CommandTurnRight
	CommandToggleMap
	CommandQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandForward:
		return "forward"
	case CommandBackward:
		return "backward"
	case CommandTurnLeft:
		return "turn_left"
	case CommandTurnRight:
		return "turn_right"
	case CommandToggleMap:
		return "toggle_map"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// RuneCommand maps a character key to a command.
func RuneCommand(r rune) Command {
	switch r {
	case 'w', 'W':
		return CommandForward
	case 's', 'S':
		return CommandBackward
	case 'a', 'A':
		return CommandTurnLeft
	case 'd', 'D':
		return CommandTurnRight
	case 'm', 'M':
		return CommandToggleMap
	case 'q', 'Q':
		return CommandQuit
	default:
		return CommandNone
	}
}

// KeyCommand maps a terminal key event to a command.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandForward
	case tcell.KeyDown:
		return CommandBackward
	case tcell.KeyLeft:
		return CommandTurnLeft
	case tcell.KeyRight:
		return CommandTurnRight
	case tcell.KeyRune:
		return RuneCommand(ev.Rune())
	default:
		return CommandNone
	}
}
