package world

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MinSize is the smallest accepted width and height of a layout.
const MinSize = 3

var (
	// ErrEmptyLayout is returned when a layout has no rows.
	ErrEmptyLayout = errors.New("empty layout")
	// ErrTooSmall is returned when a layout is narrower or shorter than MinSize.
	ErrTooSmall = errors.New("layout must be at least 3x3 cells")
	// ErrNotRectangular is returned when layout rows differ in length.
	ErrNotRectangular = errors.New("layout rows must all have the same length")
)

// Grid is an immutable rectangular cell map parsed from a row-delimited layout.
// Cells are addressed by rounding coordinates to the nearest integer, so cell
// (i, j) covers [i-0.5, i+0.5) x [j-0.5, j+0.5).
type Grid struct {
	width  int
	height int
	cells  []Tile // row-major, width*height
	walls  mapset.Set[rune]
}

// ParseGrid builds a grid from a layout whose rows are separated by newlines.
// A trailing row terminator is optional and carriage returns are ignored.
// Cells equal to one of wallGlyphs are walls; TileWall is used when none are given.
func ParseGrid(layout string, wallGlyphs ...rune) (*Grid, error) {
	layout = strings.ReplaceAll(layout, "\r", "")
	layout = strings.TrimSuffix(layout, "\n")
	if layout == "" {
		return nil, ErrEmptyLayout
	}

	rows := strings.Split(layout, "\n")
	width := len([]rune(rows[0]))

	cells := make([]Tile, 0, width*len(rows))
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, i, len(runes), width)
		}
		for _, r := range runes {
			cells = append(cells, Tile(r))
		}
	}

	if width < MinSize || len(rows) < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, len(rows))
	}

	walls := mapset.New[rune]()
	if len(wallGlyphs) == 0 {
		wallGlyphs = []rune{TileWall.Rune()}
	}
	for _, g := range wallGlyphs {
		walls.Put(g)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
		walls:  walls,
	}, nil
}

// MustParseGrid parses a layout, panicking on error.
// Use this for built-in layouts that must be valid for the program to start.
func MustParseGrid(layout string, wallGlyphs ...rune) *Grid {
	g, err := ParseGrid(layout, wallGlyphs...)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Cell returns the integer cell index containing the given point.
func Cell(x, y float64) (int, int) {
	return int(math.Round(x)), int(math.Round(y))
}

// IsOutOfBounds returns true if the point falls outside the grid.
func (g *Grid) IsOutOfBounds(x, y float64) bool {
	cx, cy := Cell(x, y)
	return !g.contains(cx, cy)
}

// IsWall returns true if the point lies in a wall cell. Points outside the
// grid are never walls.
func (g *Grid) IsWall(x, y float64) bool {
	cx, cy := Cell(x, y)
	if !g.contains(cx, cy) {
		return false
	}
	return g.walls.Has(g.cells[cy*g.width+cx].Rune())
}

// TileAt returns the tile at the given cell, and false if the cell is outside the grid.
func (g *Grid) TileAt(x, y int) (Tile, bool) {
	if !g.contains(x, y) {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// IsWallTile reports whether t is one of the grid's wall glyphs.
func (g *Grid) IsWallTile(t Tile) bool {
	return g.walls.Has(t.Rune())
}

// String returns the layout with rows separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for _, t := range g.cells[y*g.width : (y+1)*g.width] {
			sb.WriteRune(t.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
