package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/raymarch/internal/entity"
	"github.com/samdwyer/raymarch/internal/raycast"
	"github.com/samdwyer/raymarch/internal/shade"
	"github.com/samdwyer/raymarch/internal/world"
)

// corridorLayout is 9 wide and 15 deep; a player at (4, 2) facing down sees
// the far wall 11.5 cells away.
var corridorLayout = "#########\n" + strings.Repeat("#       #\n", 13) + "#########\n"

func newTestRenderer(opts Options) (*Renderer, *Palette) {
	palette := NewPalette(shade.DefaultBuckets, tcell.ColorWhite)
	marcher := raycast.NewMarcher(raycast.DefaultStep, raycast.DefaultMaxDepth, raycast.DefaultEdgeThreshold)
	mapper := shade.NewMapper(raycast.DefaultMaxDepth, shade.DefaultBuckets, raycast.DefaultStep)
	if opts.FOV == 0 {
		opts.FOV = math.Pi / 3
	}
	return NewRenderer(marcher, mapper, palette, opts), palette
}

func TestRenderColumnBands(t *testing.T) {
	r, palette := newTestRenderer(Options{})
	grid := world.MustParseGrid(corridorLayout)
	player := entity.NewPlayer(4, 2, 0)
	buf := NewBuffer(40, 20)

	stats := r.Render(buf, grid, player, 0)

	if stats.Columns != 40 {
		t.Errorf("Render() Columns = %d, want 40", stats.Columns)
	}
	if stats.Hits != 40 {
		t.Errorf("Render() Hits = %d, want 40 in a closed map", stats.Hits)
	}

	// Split(20, 11.5) = (8, 12)
	tests := []struct {
		row  int
		want rune
	}{
		{0, GlyphCeiling},
		{8, GlyphCeiling},
		{9, GlyphWall},
		{12, GlyphWall},
		{13, '-'},
		{19, '#'},
	}
	for _, tt := range tests {
		if got := buf.Cell(20, tt.row).Rune; got != tt.want {
			t.Errorf("Cell(20, %d) = %q, want %q", tt.row, got, tt.want)
		}
	}

	if got := buf.Cell(20, 10).Style; got != palette.Walls[3] {
		t.Errorf("Wall style at distance 11.5 = %v, want bucket 3 %v", got, palette.Walls[3])
	}
}

func TestRenderMiniMap(t *testing.T) {
	r, _ := newTestRenderer(Options{ShowMiniMap: true})
	grid := world.MustParseGrid(corridorLayout)
	player := entity.NewPlayer(4, 2, 0)
	buf := NewBuffer(40, 20)

	r.Render(buf, grid, player, 0)

	if got := buf.Row(0)[:9]; got != "#########" {
		t.Errorf("Mini-map row 0 = %q, want %q", got, "#########")
	}
	if got := buf.Cell(4, 2).Rune; got != '⇓' {
		t.Errorf("Player marker = %q, want '⇓'", got)
	}
	if got := buf.Cell(1, 1).Rune; got != ' ' {
		t.Errorf("Mini-map floor = %q, want ' '", got)
	}

	if r.ToggleMiniMap() {
		t.Error("ToggleMiniMap() = true, want false after hiding")
	}
	buf.Clear()
	r.Render(buf, grid, player, 0)
	if got := buf.Cell(4, 2).Rune; got == '⇓' {
		t.Error("Player marker drawn with the mini-map hidden")
	}
}

func TestRenderFPS(t *testing.T) {
	r, _ := newTestRenderer(Options{ShowFPS: true})
	grid := world.MustParseGrid(corridorLayout)
	player := entity.NewPlayer(4, 2, 0)
	buf := NewBuffer(40, 20)

	r.Render(buf, grid, player, 29.6)

	if got := buf.Row(19); !strings.HasPrefix(got, "Frame rate: 30 FPS") {
		t.Errorf("Bottom row = %q, want prefix %q", got, "Frame rate: 30 FPS")
	}
}

func TestRenderBoundaryGlyph(t *testing.T) {
	r, _ := newTestRenderer(Options{})
	grid := world.MustParseGrid("#####\n#   #\n#   #\n#   #\n#####\n")
	buf := NewBuffer(1, 20)

	// A single column looks along the heading minus half the FOV.
	player := entity.NewPlayer(2, 2, math.Pi/4+math.Pi/6)
	stats := r.Render(buf, grid, player, 0)

	if stats.Boundaries != 1 {
		t.Fatalf("Render() Boundaries = %d, want 1", stats.Boundaries)
	}
	if got := buf.Cell(0, 10).Rune; got != GlyphBoundary {
		t.Errorf("Cell(0, 10) = %q, want boundary glyph", got)
	}
}

func TestRayAngle(t *testing.T) {
	r, _ := newTestRenderer(Options{FOV: math.Pi / 3})

	if got, want := r.RayAngle(1, 0, 80), 1-math.Pi/6; math.Abs(got-want) > 1e-12 {
		t.Errorf("RayAngle(1, 0, 80) = %v, want %v", got, want)
	}
	if got := r.RayAngle(1, 40, 80); math.Abs(got-1) > 1e-12 {
		t.Errorf("RayAngle(1, 40, 80) = %v, want 1", got)
	}
}

func TestNewPaletteRamp(t *testing.T) {
	p := NewPalette(4, tcell.NewRGBColor(200, 100, 0))

	if len(p.Walls) != 4 {
		t.Fatalf("len(Walls) = %d, want 4", len(p.Walls))
	}

	fg, _, _ := p.Walls[3].Decompose()
	if r, g, b := fg.RGB(); r != 200 || g != 100 || b != 0 {
		t.Errorf("Brightest shade = (%d, %d, %d), want (200, 100, 0)", r, g, b)
	}
	fg, _, _ = p.Walls[0].Decompose()
	if r, g, b := fg.RGB(); r != 50 || g != 25 || b != 0 {
		t.Errorf("Darkest shade = (%d, %d, %d), want (50, 25, 0)", r, g, b)
	}
}
