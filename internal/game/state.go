// Package game provides the frame loop, player movement and command handling.
package game

// State represents whether the frame loop keeps running.
type State int

const (
	// StateRunning renders frames and applies commands.
	StateRunning State = iota
	// StateQuit is entered once a quit command is read.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
