package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
)

// WriteSnapshot prints a buffer as text, colouring runs of cells that share
// a foreground colour with 24-bit ANSI codes.
func WriteSnapshot(w io.Writer, b *Buffer) error {
	out := bufio.NewWriter(w)
	width, height := b.Size()

	for y := 0; y < height; y++ {
		var run strings.Builder
		runColor := tcell.ColorDefault

		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(paint(runColor, run.String()))
			run.Reset()
		}

		for x := 0; x < width; x++ {
			cell := b.Cell(x, y)
			fg, _, _ := cell.Style.Decompose()
			if fg != runColor {
				flush()
				runColor = fg
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		out.WriteByte('\n')
	}

	return out.Flush()
}

// paint wraps text in the ANSI sequence for fg, or returns it unchanged for
// the default colour.
func paint(fg tcell.Color, text string) string {
	if fg == tcell.ColorDefault || !fg.Valid() {
		return text
	}
	r, g, b := fg.RGB()
	if r < 0 {
		return text
	}
	return color.RGB(uint8(r), uint8(g), uint8(b)).Sprint(text)
}
