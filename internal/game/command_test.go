package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{CommandNone, "none"},
		{CommandForward, "forward"},
		{CommandBackward, "backward"},
		{CommandTurnLeft, "turn_left"},
		{CommandTurnRight, "turn_right"},
		{CommandToggleMap, "toggle_map"},
		{CommandQuit, "quit"},
		{Command(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.expected {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.expected)
		}
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Command
	}{
		{tcell.KeyUp, 0, CommandForward},
		{tcell.KeyDown, 0, CommandBackward},
		{tcell.KeyLeft, 0, CommandTurnLeft},
		{tcell.KeyRight, 0, CommandTurnRight},
		{tcell.KeyEscape, 0, CommandQuit},
		{tcell.KeyCtrlC, 0, CommandQuit},
		{tcell.KeyRune, 'w', CommandForward},
		{tcell.KeyRune, 's', CommandBackward},
		{tcell.KeyRune, 'a', CommandTurnLeft},
		{tcell.KeyRune, 'd', CommandTurnRight},
		{tcell.KeyRune, 'm', CommandToggleMap},
		{tcell.KeyRune, 'q', CommandQuit},
		{tcell.KeyRune, 'z', CommandNone},
		{tcell.KeyTab, 0, CommandNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
		if got := KeyCommand(ev); got != tt.want {
			t.Errorf("KeyCommand(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestScript(t *testing.T) {
	s := ParseScript("wdx")

	want := []Command{CommandForward, CommandTurnRight, CommandNone, CommandQuit, CommandQuit}
	for i, w := range want {
		if got := s.ReadCommand(); got != w {
			t.Errorf("ReadCommand() #%d = %v, want %v", i, got, w)
		}
	}
}
