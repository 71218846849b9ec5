package ui

import "github.com/gdamore/tcell/v2"

// Glyphs used by the first-person view.
const (
	GlyphWall     = '█'
	GlyphBoundary = '▓'
	GlyphCeiling  = ' '
)

// Palette holds the styles used to draw a frame.
type Palette struct {
	Walls    []tcell.Style // one per shade bucket, darkest first
	Ceiling  tcell.Style
	Floor    tcell.Style
	MapWall  tcell.Style
	MapFloor tcell.Style
	Player   tcell.Style
	Text     tcell.Style
}

// NewPalette builds a wall ramp of the given number of buckets, scaling tint
// from dim (bucket 0) to full brightness (last bucket).
func NewPalette(buckets int, tint tcell.Color) *Palette {
	tr, tg, tb := tint.RGB()
	if tr < 0 {
		tr, tg, tb = 255, 255, 255
	}

	walls := make([]tcell.Style, buckets)
	for i := range walls {
		scale := func(c int32) int32 {
			return c * int32(i+1) / int32(buckets)
		}
		walls[i] = tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.NewRGBColor(scale(tr), scale(tg), scale(tb)))
	}

	return &Palette{
		Walls:    walls,
		Ceiling:  tcell.StyleDefault.Background(tcell.ColorBlack),
		Floor:    tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray),
		MapWall:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray),
		MapFloor: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray),
		Player:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true),
		Text:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}
