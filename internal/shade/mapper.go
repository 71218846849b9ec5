// Package shade maps hit distances and screen rows to shading decisions.
package shade

import "math"

// Bucket count limits.
const (
	MinBuckets     = 4
	MaxBuckets     = 16
	DefaultBuckets = 16
)

// DefaultFloorThresholds split the floor gradient into DefaultFloorGlyphs.
var (
	DefaultFloorThresholds = []float64{0.25, 0.5, 0.75, 0.9}
	DefaultFloorGlyphs     = []rune{'#', 'x', '-', '.', ' '}
)

// Band is the part of a screen column a row belongs to.
type Band int

const (
	// BandCeiling rows are drawn as background.
	BandCeiling Band = iota
	// BandWall rows are shaded by the hit distance.
	BandWall
	// BandFloor rows are shaded by their vertical position.
	BandFloor
)

// String returns a human-readable band name.
func (b Band) String() string {
	switch b {
	case BandCeiling:
		return "ceiling"
	case BandWall:
		return "wall"
	case BandFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Mapper converts distances into wall shade buckets and column splits.
type Mapper struct {
	MaxDepth    float64
	Buckets     int
	MinDistance float64 // distances below this are raised to it before dividing

	// FloorGlyphs has one more entry than FloorThresholds; the last glyph is
	// used once the gradient value reaches the final threshold.
	FloorThresholds []float64
	FloorGlyphs     []rune
}

// NewMapper creates a mapper with the default floor gradient.
func NewMapper(maxDepth float64, buckets int, minDistance float64) *Mapper {
	return &Mapper{
		MaxDepth:        maxDepth,
		Buckets:         buckets,
		MinDistance:     minDistance,
		FloorThresholds: DefaultFloorThresholds,
		FloorGlyphs:     DefaultFloorGlyphs,
	}
}

// Bucket returns the wall shade bucket for a distance. Higher buckets are
// nearer and brighter; distances at or beyond the max depth get bucket 0.
func (m *Mapper) Bucket(distance float64) int {
	b := int(math.Floor((m.MaxDepth - distance) * float64(m.Buckets) / m.MaxDepth))
	return max(0, min(m.Buckets-1, b))
}

// Split returns the last ceiling row and the last wall row of a column
// for a wall at the given distance.
func (m *Mapper) Split(screenHeight int, distance float64) (ceiling, floor int) {
	distance = max(distance, m.MinDistance)
	h := float64(screenHeight)
	ceiling = int(math.Round(h/2 - h/distance))
	return ceiling, screenHeight - ceiling
}

// Classify returns the band of row given a column split.
func (m *Mapper) Classify(row, ceiling, floor int) Band {
	switch {
	case row <= ceiling:
		return BandCeiling
	case row <= floor:
		return BandWall
	default:
		return BandFloor
	}
}

// FloorGlyph returns the floor glyph for a row. The gradient is 1 at the
// horizon and falls to 0 at the bottom of the screen.
func (m *Mapper) FloorGlyph(row, screenHeight int) rune {
	half := float64(screenHeight) / 2
	d := 1 - (float64(row)-half)/half

	for i, threshold := range m.FloorThresholds {
		if d < threshold {
			return m.FloorGlyphs[i]
		}
	}
	return m.FloorGlyphs[len(m.FloorGlyphs)-1]
}
