// Package entity provides the player.
package entity

import "math"

// FullTurn is one full revolution in radians.
const FullTurn = 2 * math.Pi

// Player holds a continuous position in cell units and a heading in radians.
// The heading is always kept in [0, 2π).
type Player struct {
	x, y    float64
	heading float64
}

// NewPlayer creates a new player at the given pose.
func NewPlayer(x, y, heading float64) *Player {
	return &Player{
		x:       x,
		y:       y,
		heading: NormalizeAngle(heading),
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (float64, float64) {
	return p.x, p.y
}

// Heading returns the current heading in radians.
func (p *Player) Heading() float64 {
	return p.heading
}

// SetPosition moves the player to the given coordinates.
func (p *Player) SetPosition(x, y float64) {
	p.x, p.y = x, y
}

// SetHeading sets the heading, wrapping it into [0, 2π).
func (p *Player) SetHeading(heading float64) {
	p.heading = NormalizeAngle(heading)
}

// Turn rotates the heading by delta radians. Negative values turn left.
func (p *Player) Turn(delta float64) {
	p.SetHeading(p.heading + delta)
}

// Direction returns the unit vector the player is facing.
func (p *Player) Direction() (float64, float64) {
	return math.Sin(p.heading), math.Cos(p.heading)
}

// Stepped returns the position the player would reach by moving distance
// along its heading. Negative distances step backwards. The player is not moved.
func (p *Player) Stepped(distance float64) (float64, float64) {
	dx, dy := p.Direction()
	return p.x + distance*dx, p.y + distance*dy
}

// Symbol returns an arrow pointing along the heading as seen on a map drawn
// with y growing downwards.
func (p *Player) Symbol() rune {
	const d = math.Pi / 8
	a := p.heading

	switch {
	case a > FullTurn-d || a <= d:
		return '⇓'
	case a <= 3*d:
		return '⇘'
	case a <= 5*d:
		return '⇒'
	case a <= math.Pi-d:
		return '⇗'
	case a <= math.Pi+d:
		return '⇑'
	case a <= math.Pi+3*d:
		return '⇖'
	case a <= math.Pi+5*d:
		return '⇐'
	default:
		return '⇙'
	}
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}
