// Package world provides the level grid and procedural layout generation.
package world

// Tile represents a single map cell as it appears in a layout string.
type Tile rune

const (
	// TileWall represents an occluding wall cell.
	TileWall Tile = '#'
	// TileFloor represents an open floor cell.
	TileFloor Tile = ' '
)

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
