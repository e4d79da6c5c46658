package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Replay re-runs a recorded journal from a fresh simulation and returns the
// final state. The same params, seed and inputs always give the same result.
func Replay(params Params, j core.Journal) RunState {
	sim := NewSim(params, j.Seed)
	state := sim.Initial()
	for _, in := range j.Inputs {
		state = sim.Tick(state, in.DeltaMs, in.Jump, in.NowMs)
	}
	return state
}
