package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the simulation to the platform's fixed-rate driver.
// Each Step feeds one tick of TickMillis to Sim.Tick on a virtual clock,
// and every tick that reaches the simulation is journaled.
type Game struct {
	params    Params
	hasParams bool
	sim       *Sim
	state     RunState
	runtime   core.RuntimeConfig
	clockMs   float64
	paused    bool
	journal   core.Journal
	configErr error
}

// New creates a Flappy game that loads its configuration on the first Reset.
// If loading fails the game plays with DefaultFlappyConfig and ConfigError
// reports why.
func New() *Game {
	return &Game{}
}

// NewWithParams creates a Flappy game with fixed simulation params.
func NewWithParams(p Params) *Game {
	return &Game{params: p, hasParams: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a new run seeded with runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.hasParams {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		g.configErr = err
		g.params = ParamsFromConfig(cfg)
		g.hasParams = true
	}

	g.runtime = runtime
	g.sim = NewSim(g.params, runtime.Seed)
	g.state = g.sim.Restart()
	g.clockMs = 0
	g.paused = false
	g.journal = core.Journal{Seed: runtime.Seed}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	if g.state.Status == StatusGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.state.Status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickMillis()
	g.clockMs += dt
	jump := in.Has(core.ActionJump)

	// Idle ticks before the first jump do not touch the simulation.
	if g.state.Status == StatusReady && !jump {
		return core.StepResult{State: g.State()}
	}

	g.journal.Record(dt, jump, g.clockMs)
	g.state = g.sim.Tick(g.state, dt, jump, g.clockMs)

	return core.StepResult{State: g.State()}
}

// ConfigError returns the error that made Reset fall back to the default
// config, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// RunState returns the current simulation snapshot.
func (g *Game) RunState() RunState {
	return g.state
}

// Params returns the simulation constants in use.
func (g *Game) Params() Params {
	return g.params
}

// Journal returns a copy of the current run's journal.
func (g *Game) Journal() core.Journal {
	return g.journal.Clone()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Started:  g.state.Status != StatusReady,
		GameOver: g.state.Status == StatusGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
