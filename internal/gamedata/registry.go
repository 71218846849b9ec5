package gamedata

import (
	"errors"
	"fmt"
)

// LevelRegistry holds loaded level definitions and provides lookup utilities.
type LevelRegistry struct {
	levels []LevelDef
	byID   map[string]*LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	registry := &LevelRegistry{
		levels: levels,
		byID:   make(map[string]*LevelDef, len(levels)),
	}
	for i := range levels {
		registry.byID[levels[i].ID] = &levels[i]
	}
	return registry
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the level definition with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	return r.byID[id]
}

// Lookup returns the level with the given ID, or the first level when id is empty.
func (r *LevelRegistry) Lookup(id string) (*LevelDef, error) {
	if id == "" {
		if level := r.Default(); level != nil {
			return level, nil
		}
		return nil, fmt.Errorf("level catalogue is empty")
	}
	level := r.GetByID(id)
	if level == nil {
		return nil, fmt.Errorf("unknown level %q", id)
	}
	return level, nil
}

// Default returns the first level in the catalogue.
func (r *LevelRegistry) Default() *LevelDef {
	if len(r.levels) == 0 {
		return nil
	}
	return &r.levels[0]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
