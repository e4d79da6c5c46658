// Package config provides YAML-based configuration loading for the
// flappy simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Entity    FlappyEntity    `yaml:"entity"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyPlayfield defines the extent of the playfield in pixels.
type FlappyPlayfield struct {
	Width  float64 `yaml:"width"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// FlappyPhysics defines physics parameters. Units are px and ms.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// FlappyEntity defines the controlled entity.
type FlappyEntity struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Radius float64 `yaml:"radius"`
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width      float64 `yaml:"width"`
	GapHeight  float64 `yaml:"gap_height"`
	Speed      float64 `yaml:"speed"`
	IntervalMs float64 `yaml:"interval_ms"`
	MinGapY    float64 `yaml:"min_gap_y"`
	MaxGapY    float64 `yaml:"max_gap_y"`
}

// Height returns the vertical extent of the playfield.
func (p FlappyPlayfield) Height() float64 {
	return p.Bottom - p.Top
}

// Validate checks the configuration for values the simulation cannot use.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %v", c.Playfield.Width)
	check(c.Playfield.Bottom > c.Playfield.Top, "playfield.bottom (%v) must be below playfield.top (%v)", c.Playfield.Bottom, c.Playfield.Top)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative (upward), got %v", c.Physics.JumpVelocity)
	check(c.Entity.Radius > 0, "entity.radius must be positive, got %v", c.Entity.Radius)
	check(c.Entity.StartX >= 0 && c.Entity.StartX <= c.Playfield.Width, "entity.start_x must be within the playfield, got %v", c.Entity.StartX)
	check(c.Entity.StartY-c.Entity.Radius > c.Playfield.Top && c.Entity.StartY+c.Entity.Radius < c.Playfield.Bottom,
		"entity at start_y %v with radius %v touches the playfield boundary", c.Entity.StartY, c.Entity.Radius)
	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapHeight > 0 && c.Obstacles.GapHeight < c.Playfield.Height(),
		"obstacles.gap_height must be positive and smaller than the playfield, got %v", c.Obstacles.GapHeight)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.IntervalMs > 0, "obstacles.interval_ms must be positive, got %v", c.Obstacles.IntervalMs)
	check(c.Obstacles.MinGapY <= c.Obstacles.MaxGapY, "obstacles.min_gap_y (%v) exceeds max_gap_y (%v)", c.Obstacles.MinGapY, c.Obstacles.MaxGapY)
	check(c.Obstacles.MinGapY >= c.Playfield.Top && c.Obstacles.MaxGapY <= c.Playfield.Bottom,
		"obstacle gap range [%v, %v] is outside the playfield", c.Obstacles.MinGapY, c.Obstacles.MaxGapY)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
