package game

import "github.com/samdwyer/raymarch/internal/entity"

// Outcome is the effect a command had on the player.
type Outcome int

const (
	// OutcomeNone means the command does not move the player.
	OutcomeNone Outcome = iota
	// OutcomeTurned means the heading changed.
	OutcomeTurned
	// OutcomeMoved means the position changed.
	OutcomeMoved
	// OutcomeBlocked means a step was discarded because it ended in a wall.
	OutcomeBlocked
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTurned:
		return "turned"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Blocker answers whether a point lies inside a wall.
type Blocker interface {
	IsWall(x, y float64) bool
}

// Movement applies movement commands to a player with collision rejection.
type Movement struct {
	grid     Blocker
	moveStep float64
	turnStep float64
}

// NewMovement creates a movement controller over grid.
func NewMovement(grid Blocker, moveStep, turnStep float64) *Movement {
	return &Movement{
		grid:     grid,
		moveStep: moveStep,
		turnStep: turnStep,
	}
}

// Apply executes cmd against the player. Turns always succeed. Steps are
// computed first and committed only if the new position is not a wall;
// otherwise the player keeps its old position.
func (m *Movement) Apply(p *entity.Player, cmd Command) Outcome {
	switch cmd {
	case CommandTurnLeft:
		p.Turn(-m.turnStep)
		return OutcomeTurned
	case CommandTurnRight:
		p.Turn(m.turnStep)
		return OutcomeTurned
	case CommandForward:
		return m.step(p, m.moveStep)
	case CommandBackward:
		return m.step(p, -m.moveStep)
	default:
		return OutcomeNone
	}
}

func (m *Movement) step(p *entity.Player, distance float64) Outcome {
	x, y := p.Stepped(distance)
	if m.grid.IsWall(x, y) {
		return OutcomeBlocked
	}
	p.SetPosition(x, y)
	return OutcomeMoved
}
