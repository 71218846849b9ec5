package gamedata

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StartDef is the initial player pose of a level.
type StartDef struct {
	X       float64 `json:"x"`       // Column in cell units
	Y       float64 `json:"y"`       // Row in cell units
	Heading float64 `json:"heading"` // Radians, 0 faces down the map
}

// LevelDef defines a level loaded from JSON.
type LevelDef struct {
	ID    string   `json:"id"`    // Unique identifier (e.g., "hall")
	Name  string   `json:"name"`  // Display name (e.g., "Great Hall")
	Tint  string   `json:"tint"`  // Hex color of the brightest wall shade
	Start StartDef `json:"start"` // Initial player pose
	Rows  []string `json:"rows"`  // Layout rows, '#' for walls
}

// Layout returns the rows joined into a newline-delimited layout string.
func (l *LevelDef) Layout() string {
	return strings.Join(l.Rows, "\n") + "\n"
}

// TintColor returns the tint as a tcell.Color.
func (l *LevelDef) TintColor() tcell.Color {
	color, err := ParseHexColor(l.Tint)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
