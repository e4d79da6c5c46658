// Package flappy implements a Flappy Bird-style game.
//
// The simulation is a set of pure transformations over immutable RunState
// snapshots: physics, obstacle lifecycle, scoring and collision, sequenced by
// Sim.Tick. Game adapts the simulation to the platform's fixed-tick driver.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Params holds the simulation constants. Distances are playfield pixels with
// y growing downward, times are milliseconds.
type Params struct {
	Physics Physics

	PlayfieldWidth float64
	TopBoundary    float64
	BottomBoundary float64

	EntityX      float64 // fixed horizontal position of the entity
	EntityStartY float64
	EntityRadius float64

	ObstacleWidth      float64
	ObstacleGapHeight  float64
	ObstacleSpeed      float64 // px per ms, leftward
	ObstacleIntervalMs float64
	MinGapY, MaxGapY   float64
}

// ParamsFromConfig converts a loaded configuration into simulation params.
// The config is expected to have passed Validate.
func ParamsFromConfig(cfg config.FlappyConfig) Params {
	return Params{
		Physics: Physics{
			Gravity:      cfg.Physics.Gravity,
			JumpVelocity: cfg.Physics.JumpVelocity,
		},
		PlayfieldWidth:     cfg.Playfield.Width,
		TopBoundary:        cfg.Playfield.Top,
		BottomBoundary:     cfg.Playfield.Bottom,
		EntityX:            cfg.Entity.StartX,
		EntityStartY:       cfg.Entity.StartY,
		EntityRadius:       cfg.Entity.Radius,
		ObstacleWidth:      cfg.Obstacles.Width,
		ObstacleGapHeight:  cfg.Obstacles.GapHeight,
		ObstacleSpeed:      cfg.Obstacles.Speed,
		ObstacleIntervalMs: cfg.Obstacles.IntervalMs,
		MinGapY:            cfg.Obstacles.MinGapY,
		MaxGapY:            cfg.Obstacles.MaxGapY,
	}
}

// DefaultParams returns params built from the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultFlappyConfig())
}

// entitySpanX is the horizontal extent of the entity's collision circle.
func (p Params) entitySpanX() core.Span {
	return core.SpanAround(p.EntityX, p.EntityRadius)
}

// PlayfieldHeight returns the vertical extent of the playfield.
func (p Params) PlayfieldHeight() float64 {
	return p.BottomBoundary - p.TopBoundary
}
