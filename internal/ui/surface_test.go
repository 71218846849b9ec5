package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer(3, 2)

	if w, h := b.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = (%d, %d), want (3, 2)", w, h)
	}

	b.SetContent(1, 0, 'x', tcell.StyleDefault)
	b.SetContent(5, 5, 'y', tcell.StyleDefault) // ignored

	if got := b.Row(0); got != " x " {
		t.Errorf("Row(0) = %q, want %q", got, " x ")
	}

	b.Clear()
	if got := b.Row(0); got != "   " {
		t.Errorf("Row(0) after Clear() = %q, want blanks", got)
	}
}

func TestWriteSnapshot(t *testing.T) {
	b := NewBuffer(3, 2)
	red := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0))
	b.SetContent(0, 0, 'a', red)
	b.SetContent(1, 0, 'b', red)
	b.SetContent(2, 1, 'c', tcell.StyleDefault)

	var out bytes.Buffer
	if err := WriteSnapshot(&out, b); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(color.ClearCode(out.String()), "\n"), "\n")
	want := []string{"ab ", "  c"}
	if len(lines) != len(want) {
		t.Fatalf("WriteSnapshot() wrote %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestScreenOnSimulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	defer s.Close()

	sim.SetSize(10, 5)
	if w, h := s.Size(); w != 10 || h != 5 {
		t.Errorf("Size() = (%d, %d), want (10, 5)", w, h)
	}

	var surface Surface = s
	surface.SetContent(1, 1, 'x', tcell.StyleDefault)
	surface.Show()

	cells, w, _ := sim.GetContents()
	if got := cells[1*w+1].Runes; len(got) == 0 || got[0] != 'x' {
		t.Errorf("Simulated cell (1, 1) = %q, want 'x'", got)
	}
}
