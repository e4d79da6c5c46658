package core

// TickInput is what the driver fed the simulation on one tick.
type TickInput struct {
	DeltaMs float64
	Jump    bool
	NowMs   float64
}

// Journal records a run: the RNG seed it started from and every tick input.
// Replaying the inputs against a simulation seeded with Seed reproduces the run.
type Journal struct {
	Seed   int64
	Inputs []TickInput
}

// Record appends one tick input.
func (j *Journal) Record(deltaMs float64, jump bool, nowMs float64) {
	j.Inputs = append(j.Inputs, TickInput{DeltaMs: deltaMs, Jump: jump, NowMs: nowMs})
}

// Clone returns a copy that shares no memory with j.
func (j Journal) Clone() Journal {
	inputs := make([]TickInput, len(j.Inputs))
	copy(inputs, j.Inputs)
	return Journal{Seed: j.Seed, Inputs: inputs}
}
