package ui

import (
	"math"

	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/raymarch/internal/entity"
	"github.com/samdwyer/raymarch/internal/raycast"
	"github.com/samdwyer/raymarch/internal/shade"
	"github.com/samdwyer/raymarch/internal/world"
)

// Options controls what a Renderer draws besides the first-person view.
type Options struct {
	FOV         float64 // Field of view in radians, split evenly across columns
	ShowMiniMap bool
	ShowFPS     bool
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Columns    int
	Hits       int // columns whose ray found a wall
	Boundaries int // columns drawn with the boundary glyph
}

// Renderer draws frames of the first-person view.
type Renderer struct {
	marcher *raycast.Marcher
	mapper  *shade.Mapper
	palette *Palette
	opts    Options
}

// NewRenderer creates a new renderer.
func NewRenderer(marcher *raycast.Marcher, mapper *shade.Mapper, palette *Palette, opts Options) *Renderer {
	return &Renderer{
		marcher: marcher,
		mapper:  mapper,
		palette: palette,
		opts:    opts,
	}
}

// ToggleMiniMap flips mini-map visibility and returns the new state.
func (r *Renderer) ToggleMiniMap() bool {
	r.opts.ShowMiniMap = !r.opts.ShowMiniMap
	return r.opts.ShowMiniMap
}

// RayAngle returns the angle of the ray cast for a screen column.
func (r *Renderer) RayAngle(heading float64, column, width int) float64 {
	return heading - r.opts.FOV/2 + float64(column)*r.opts.FOV/float64(width)
}

// Render draws the view from the player onto the surface, then the enabled overlays.
func (r *Renderer) Render(s Surface, grid *world.Grid, player *entity.Player, fps float64) FrameStats {
	width, height := s.Size()
	px, py := player.Position()
	stats := FrameStats{Columns: width}

	for x := 0; x < width; x++ {
		ray := raycast.NewRay(px, py, r.RayAngle(player.Heading(), x, width))
		hit := r.marcher.March(grid, ray)
		if hit.Hit {
			stats.Hits++
		}
		if hit.Boundary {
			stats.Boundaries++
		}
		r.drawColumn(s, x, height, hit)
	}

	if r.opts.ShowMiniMap {
		r.drawMiniMap(s, grid, player)
	}
	if r.opts.ShowFPS && height > 0 {
		r.drawText(s, 0, height-1, gotext.Get("Frame rate: %d FPS", int(math.Round(fps))))
	}

	return stats
}

// drawColumn fills one screen column with ceiling, wall and floor.
func (r *Renderer) drawColumn(s Surface, x, height int, hit raycast.Hit) {
	ceiling, floor := r.mapper.Split(height, hit.Distance)
	wallStyle := r.palette.Walls[r.mapper.Bucket(hit.Distance)]
	wallGlyph := rune(GlyphWall)
	if hit.Boundary {
		wallGlyph = GlyphBoundary
	}

	for y := 0; y < height; y++ {
		switch r.mapper.Classify(y, ceiling, floor) {
		case shade.BandCeiling:
			s.SetContent(x, y, GlyphCeiling, r.palette.Ceiling)
		case shade.BandWall:
			s.SetContent(x, y, wallGlyph, wallStyle)
		default:
			s.SetContent(x, y, r.mapper.FloorGlyph(y, height), r.palette.Floor)
		}
	}
}

// drawMiniMap draws the layout in the top-left corner with the player marker on top.
func (r *Renderer) drawMiniMap(s Surface, grid *world.Grid, player *entity.Player) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile, _ := grid.TileAt(x, y)
			style := r.palette.MapFloor
			if grid.IsWallTile(tile) {
				style = r.palette.MapWall
			}
			s.SetContent(x, y, tile.Rune(), style)
		}
	}

	cx, cy := world.Cell(player.Position())
	if _, ok := grid.TileAt(cx, cy); ok {
		s.SetContent(cx, cy, player.Symbol(), r.palette.Player)
	}
}

// drawText writes a single line of text starting at the given position.
func (r *Renderer) drawText(s Surface, x, y int, msg string) {
	for _, ch := range msg {
		s.SetContent(x, y, ch, r.palette.Text)
		x++
	}
}
