package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultFlappyConfigValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("DefaultFlappyConfig() should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		field  string
	}{
		{"zero width", func(c *FlappyConfig) { c.Playfield.Width = 0 }, "playfield.width"},
		{"inverted playfield", func(c *FlappyConfig) { c.Playfield.Bottom = -1 }, "playfield.bottom"},
		{"upward gravity", func(c *FlappyConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"downward jump", func(c *FlappyConfig) { c.Physics.JumpVelocity = 0.5 }, "physics.jump_velocity"},
		{"zero radius", func(c *FlappyConfig) { c.Entity.Radius = 0 }, "entity.radius"},
		{"start on boundary", func(c *FlappyConfig) { c.Entity.StartY = 18 }, "start_y"},
		{"gap too tall", func(c *FlappyConfig) { c.Obstacles.GapHeight = 600 }, "gap_height"},
		{"no speed", func(c *FlappyConfig) { c.Obstacles.Speed = 0 }, "obstacles.speed"},
		{"no interval", func(c *FlappyConfig) { c.Obstacles.IntervalMs = 0 }, "interval_ms"},
		{"gap range inverted", func(c *FlappyConfig) { c.Obstacles.MinGapY = 500 }, "min_gap_y"},
		{"gap range outside", func(c *FlappyConfig) { c.Obstacles.MaxGapY = 700 }, "outside the playfield"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.002\nobstacles:\n  interval_ms: 1500\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.002 {
		t.Errorf("gravity = %v, expected 0.002", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.IntervalMs != 1500 {
		t.Errorf("interval_ms = %v, expected 1500", cfg.Obstacles.IntervalMs)
	}
	// Keys absent from the file keep their defaults
	if cfg.Entity.Radius != DefaultFlappyConfig().Entity.Radius {
		t.Errorf("radius = %v, expected default", cfg.Entity.Radius)
	}
}

func TestLoadFlappyErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("physics:\n  gravitee: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(unknown); err == nil {
		t.Error("unknown keys should be rejected")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("entity:\n  radius: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFlappy(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid values should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadFlappySearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	// Nothing on disk: embedded default
	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	// User config takes over
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "flappy.yaml"), []byte("entity:\n  radius: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Entity.Radius != 12 {
		t.Errorf("radius = %v, expected 12 from user config", cfg.Entity.Radius)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parseFlappy("marshalled", data)
	if err != nil {
		t.Fatalf("parseFlappy() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("round trip = %+v, expected %+v", cfg, DefaultFlappyConfig())
	}
}
