// Package raycast marches rays through a grid map to find the nearest wall.
package raycast

import (
	"cmp"
	"math"
	"slices"
)

// Default marching parameters.
const (
	DefaultStep          = 0.1  // Δ, in cell units
	DefaultMaxDepth      = 15.0 // D_max, in cell units
	DefaultEdgeThreshold = 0.01 // radians
)

// cornerEpsilon is the distance below which a corner counts as coincident with the ray origin.
const cornerEpsilon = 1e-9

// Map is the occupancy query a ray marches against.
type Map interface {
	IsOutOfBounds(x, y float64) bool
	IsWall(x, y float64) bool
}

// Ray is a half-line from an origin along a unit direction.
type Ray struct {
	OriginX, OriginY float64
	DirX, DirY       float64
}

// NewRay creates a ray from (x, y) along angle, using the same (sin, cos)
// convention as the player heading.
func NewRay(x, y, angle float64) Ray {
	return Ray{
		OriginX: x,
		OriginY: y,
		DirX:    math.Sin(angle),
		DirY:    math.Cos(angle),
	}
}

// At returns the point at distance d along the ray.
func (r Ray) At(d float64) (float64, float64) {
	return r.OriginX + r.DirX*d, r.OriginY + r.DirY*d
}

// Hit is the outcome of marching one ray.
type Hit struct {
	Distance float64 // Marched distance; the max depth on a miss
	Boundary bool    // The ray grazes a vertical edge of the hit cell
	Hit      bool    // A wall was found within range
}

// Marcher walks rays in fixed increments.
type Marcher struct {
	Step          float64
	MaxDepth      float64
	EdgeThreshold float64
}

// NewMarcher creates a marcher with the given step, max depth and edge threshold.
func NewMarcher(step, maxDepth, edgeThreshold float64) *Marcher {
	return &Marcher{
		Step:          step,
		MaxDepth:      maxDepth,
		EdgeThreshold: edgeThreshold,
	}
}

// March advances along the ray one step at a time until it enters a wall
// cell, leaves the map, or passes the max depth. Only wall hits report
// Hit; every miss reports the max depth as its distance.
func (m *Marcher) March(grid Map, ray Ray) Hit {
	steps := int(math.Round(m.MaxDepth / m.Step))

	for i := 1; i <= steps; i++ {
		d := float64(i) * m.Step
		x, y := ray.At(d)

		if grid.IsOutOfBounds(x, y) {
			break
		}
		if grid.IsWall(x, y) {
			return Hit{
				Distance: d,
				Boundary: m.isBoundary(ray, math.Round(x), math.Round(y)),
				Hit:      true,
			}
		}
	}

	return Hit{Distance: m.MaxDepth}
}

type corner struct {
	dist float64
	cos  float64 // cosine between the ray and the origin-to-corner vector
}

// isBoundary reports whether the ray passes within EdgeThreshold radians of
// one of the two corners of cell (cx, cy) nearest to the ray origin.
func (m *Marcher) isBoundary(ray Ray, cx, cy float64) bool {
	var corners [4]corner

	i := 0
	for _, ox := range [2]float64{-0.5, 0.5} {
		for _, oy := range [2]float64{-0.5, 0.5} {
			vx := cx + ox - ray.OriginX
			vy := cy + oy - ray.OriginY
			d := math.Hypot(vx, vy)
			if d < cornerEpsilon {
				return false
			}
			corners[i] = corner{dist: d, cos: (ray.DirX*vx + ray.DirY*vy) / d}
			i++
		}
	}

	slices.SortFunc(corners[:], func(a, b corner) int {
		return cmp.Compare(a.dist, b.dist)
	})

	return angle(corners[0].cos) < m.EdgeThreshold || angle(corners[1].cos) < m.EdgeThreshold
}

// angle returns arccos of c, clamping rounding error outside [-1, 1].
func angle(c float64) float64 {
	return math.Acos(max(-1, min(1, c)))
}
