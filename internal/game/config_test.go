package game

import (
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
	if cfg.Step != 0.1 || cfg.MaxDepth != 15 || cfg.EdgeThreshold != 0.01 || cfg.Shades != 16 {
		t.Errorf("DefaultConfig() = %+v, want step 0.1, depth 15, threshold 0.01, 16 shades", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero fov", func(c *Config) { c.FOV = 0 }},
		{"fov of pi", func(c *Config) { c.FOV = math.Pi }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"depth below step", func(c *Config) { c.MaxDepth = 0.05 }},
		{"negative threshold", func(c *Config) { c.EdgeThreshold = -1 }},
		{"too few shades", func(c *Config) { c.Shades = 3 }},
		{"too many shades", func(c *Config) { c.Shades = 17 }},
		{"zero move step", func(c *Config) { c.MoveStep = 0 }},
		{"zero turn step", func(c *Config) { c.TurnStep = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("RAYMARCH_FOV", "1.2")
	t.Setenv("RAYMARCH_SHADES", "8")
	t.Setenv("RAYMARCH_NONBLOCKING", "true")
	t.Setenv("RAYMARCH_MINIMAP", "false")
	t.Setenv("RAYMARCH_SEED", "42")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}

	if cfg.FOV != 1.2 {
		t.Errorf("FOV = %v, want 1.2", cfg.FOV)
	}
	if cfg.Shades != 8 {
		t.Errorf("Shades = %d, want 8", cfg.Shades)
	}
	if !cfg.NonBlocking {
		t.Error("NonBlocking = false, want true")
	}
	if cfg.ShowMiniMap {
		t.Error("ShowMiniMap = true, want false")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.MaxDepth != 15 {
		t.Errorf("MaxDepth = %v, want the default 15", cfg.MaxDepth)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("RAYMARCH_STEP", "fast")

	if _, err := ConfigFromEnv(); err == nil {
		t.Error("ConfigFromEnv() with RAYMARCH_STEP=fast should fail")
	}
}
