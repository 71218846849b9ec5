package world

import (
	"errors"
	"testing"
)

const testLayout = "#####\n" +
	"#   #\n" +
	"# # #\n" +
	"#   #\n" +
	"#####\n"

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(testLayout)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	if g.Width() != 5 || g.Height() != 5 {
		t.Errorf("ParseGrid() size = %dx%d, want 5x5", g.Width(), g.Height())
	}
	if g.String() != testLayout {
		t.Errorf("String() = %q, want %q", g.String(), testLayout)
	}
}

func TestParseGridRejects(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", ErrEmptyLayout},
		{"two rows", "###\n# #\n", ErrTooSmall},
		{"two columns", "##\n##\n##\n", ErrTooSmall},
		{"ragged", "###\n# \n###\n", ErrNotRectangular},
		{"ragged last row", "###\n# #\n####\n", ErrNotRectangular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(tt.layout)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseGrid(%q) error = %v, want %v", tt.layout, err, tt.want)
			}
			if g != nil {
				t.Errorf("ParseGrid(%q) returned a grid for a rejected layout", tt.layout)
			}
		})
	}
}

func TestParseGridLineEndings(t *testing.T) {
	for _, layout := range []string{
		"###\r\n# #\r\n###\r\n",
		"###\n\r# #\n\r###\n\r",
		"###\n# #\n###",
	} {
		g, err := ParseGrid(layout)
		if err != nil {
			t.Errorf("ParseGrid(%q) error = %v", layout, err)
			continue
		}
		if g.Width() != 3 || g.Height() != 3 {
			t.Errorf("ParseGrid(%q) size = %dx%d, want 3x3", layout, g.Width(), g.Height())
		}
	}
}

func TestMustParseGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseGrid() with an invalid layout did not panic")
		}
	}()
	MustParseGrid("##\n##\n")
}

func TestGridQueriesRoundToNearestCell(t *testing.T) {
	g := MustParseGrid(testLayout)

	tests := []struct {
		x, y      float64
		wall, oob bool
	}{
		{1, 1, false, false},
		{2, 2, true, false},
		{1.6, 1.6, true, false}, // rounds to (2,2)
		{1.4, 1.4, false, false},
		{0, 0, true, false},
		{-0.4, 1, true, false}, // rounds to column 0
		{-0.6, 1, false, true},
		{4.4, 4.4, true, false},
		{4.5, 1, false, true},
		{1, 5, false, true},
	}

	for _, tt := range tests {
		if got := g.IsWall(tt.x, tt.y); got != tt.wall {
			t.Errorf("IsWall(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.wall)
		}
		if got := g.IsOutOfBounds(tt.x, tt.y); got != tt.oob {
			t.Errorf("IsOutOfBounds(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.oob)
		}
	}
}

func TestGridCustomWallGlyphs(t *testing.T) {
	g := MustParseGrid("+-+\n|.|\n+-+\n", '+', '-', '|')

	if !g.IsWall(0, 0) || !g.IsWall(1, 0) || !g.IsWall(0, 1) {
		t.Error("Custom wall glyphs are not treated as walls")
	}
	if g.IsWall(1, 1) {
		t.Error("Floor cell reported as wall")
	}
	if g.IsWallTile(TileWall) {
		t.Error("Default wall glyph should not be a wall when custom glyphs are given")
	}
}

func TestTileAt(t *testing.T) {
	g := MustParseGrid(testLayout)

	if tile, ok := g.TileAt(2, 2); !ok || tile != TileWall {
		t.Errorf("TileAt(2, 2) = %q, %v, want %q, true", tile, ok, TileWall)
	}
	if tile, ok := g.TileAt(1, 1); !ok || tile != TileFloor {
		t.Errorf("TileAt(1, 1) = %q, %v, want %q, true", tile, ok, TileFloor)
	}
	if _, ok := g.TileAt(5, 0); ok {
		t.Error("TileAt(5, 0) should be out of bounds")
	}
}
