package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Surface is a fixed-size character grid frames are drawn onto.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
	Show()
}

// Cell is one character of a Buffer.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an in-memory Surface.
type Buffer struct {
	width, height int
	cells         []Cell
}

// NewBuffer creates a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// SetContent sets a cell. Writes outside the buffer are ignored.
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Clear resets every cell to a blank with the default style.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Show does nothing; a buffer is read back directly.
func (b *Buffer) Show() {}

// Cell returns the cell at the given position.
func (b *Buffer) Cell(x, y int) Cell {
	return b.cells[y*b.width+x]
}

// Row returns the characters of row y.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
