package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration.
// It matches defaults/flappy.yaml and is used when that file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:  400,
			Top:    0,
			Bottom: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      0.0015,
			JumpVelocity: -0.45,
		},
		Entity: FlappyEntity{
			StartX: 100,
			StartY: 300,
			Radius: 18,
		},
		Obstacles: FlappyObstacles{
			Width:      60,
			GapHeight:  160,
			Speed:      0.15,
			IntervalMs: 1800,
			MinGapY:    150,
			MaxGapY:    450,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
