package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raymarch/internal/ui"
)

// CommandReader yields the next player command.
type CommandReader interface {
	ReadCommand() Command
}

// TerminalInput reads commands from a terminal screen.
type TerminalInput struct {
	screen      *ui.Screen
	nonBlocking bool
}

// NewTerminalInput creates a reader over the screen's event queue. In
// non-blocking mode ReadCommand returns CommandNone when no event is pending.
func NewTerminalInput(screen *ui.Screen, nonBlocking bool) *TerminalInput {
	return &TerminalInput{screen: screen, nonBlocking: nonBlocking}
}

// ReadCommand returns the command for the next terminal event.
func (in *TerminalInput) ReadCommand() Command {
	if in.nonBlocking && !in.screen.HasPendingEvent() {
		return CommandNone
	}

	switch ev := in.screen.PollEvent().(type) {
	case nil:
		// The screen was finalized.
		return CommandQuit
	case *tcell.EventKey:
		return KeyCommand(ev)
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return CommandNone
}

// Script replays a fixed sequence of commands, then quits.
type Script struct {
	commands []Command
	next     int
}

// NewScript creates a script from commands.
func NewScript(commands ...Command) *Script {
	return &Script{commands: commands}
}

// ParseScript creates a script from key characters, e.g. "wwad".
func ParseScript(keys string) *Script {
	s := &Script{}
	for _, r := range keys {
		s.commands = append(s.commands, RuneCommand(r))
	}
	return s
}

// ReadCommand returns the next scripted command, or CommandQuit when exhausted.
func (s *Script) ReadCommand() Command {
	if s.next >= len(s.commands) {
		return CommandQuit
	}
	c := s.commands[s.next]
	s.next++
	return c
}
