package game

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/samdwyer/raymarch/internal/raycast"
	"github.com/samdwyer/raymarch/internal/shade"
)

// Config holds game configuration options.
type Config struct {
	FOV           float64 // Field of view in radians
	MaxDepth      float64 // Maximum visible distance in cell units
	Step          float64 // Ray marching increment in cell units
	EdgeThreshold float64 // Max angle in radians between a ray and a corner to draw a boundary
	Shades        int     // Number of wall shade buckets
	MoveStep      float64 // Distance moved per step command
	TurnStep      float64 // Radians turned per turn command

	// NonBlocking makes the frame loop render continuously instead of
	// waiting for a key between frames.
	NonBlocking bool
	ShowMiniMap bool
	ShowFPS     bool

	// Seed for procedural level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FOV:           math.Pi / 3,
		MaxDepth:      raycast.DefaultMaxDepth,
		Step:          raycast.DefaultStep,
		EdgeThreshold: raycast.DefaultEdgeThreshold,
		Shades:        shade.DefaultBuckets,
		MoveStep:      0.1,
		TurnStep:      0.1,
		ShowMiniMap:   true,
		ShowFPS:       true,
	}
}

// ConfigFromEnv returns the default configuration overridden by any
// RAYMARCH_* environment variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	floats := []struct {
		key string
		dst *float64
	}{
		{"RAYMARCH_FOV", &cfg.FOV},
		{"RAYMARCH_MAX_DEPTH", &cfg.MaxDepth},
		{"RAYMARCH_STEP", &cfg.Step},
		{"RAYMARCH_EDGE_THRESHOLD", &cfg.EdgeThreshold},
		{"RAYMARCH_MOVE_STEP", &cfg.MoveStep},
		{"RAYMARCH_TURN_STEP", &cfg.TurnStep},
	}
	for _, f := range floats {
		if v, ok := os.LookupEnv(f.key); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"RAYMARCH_NONBLOCKING", &cfg.NonBlocking},
		{"RAYMARCH_MINIMAP", &cfg.ShowMiniMap},
		{"RAYMARCH_FPS", &cfg.ShowFPS},
	}
	for _, b := range bools {
		if v, ok := os.LookupEnv(b.key); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return cfg, fmt.Errorf("invalid %s: %w", b.key, err)
			}
			*b.dst = parsed
		}
	}

	if v, ok := os.LookupEnv("RAYMARCH_SHADES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYMARCH_SHADES: %w", err)
		}
		cfg.Shades = n
	}
	if v, ok := os.LookupEnv("RAYMARCH_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid RAYMARCH_SEED: %w", err)
		}
		cfg.Seed = n
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return fmt.Errorf("fov %v must be in (0, π)", c.FOV)
	case c.Step <= 0:
		return errors.New("step must be positive")
	case c.MaxDepth < c.Step:
		return fmt.Errorf("max depth %v must be at least one step (%v)", c.MaxDepth, c.Step)
	case c.EdgeThreshold < 0:
		return errors.New("edge threshold must not be negative")
	case c.Shades < shade.MinBuckets || c.Shades > shade.MaxBuckets:
		return fmt.Errorf("shades %d must be in [%d, %d]", c.Shades, shade.MinBuckets, shade.MaxBuckets)
	case c.MoveStep <= 0:
		return errors.New("move step must be positive")
	case c.TurnStep <= 0:
		return errors.New("turn step must be positive")
	}
	return nil
}
