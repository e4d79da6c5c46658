package flappy

// Status is the phase of a run.
type Status int

const (
	StatusReady    Status = iota // waiting for the first jump
	StatusPlaying                // simulation running
	StatusGameOver               // terminal, frozen
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// RunState is an immutable snapshot of one run. Tick never modifies the
// state it is given, including the backing array of Obstacles.
type RunState struct {
	Status         Status
	Entity         Entity
	Obstacles      []Obstacle
	Score          int
	LastObstacleMs float64 // time of the last obstacle spawn
}

// Equal reports whether two states hold the same values.
// A nil and an empty obstacle list are equal.
func (s RunState) Equal(other RunState) bool {
	if s.Status != other.Status || s.Entity != other.Entity ||
		s.Score != other.Score || s.LastObstacleMs != other.LastObstacleMs ||
		len(s.Obstacles) != len(other.Obstacles) {
		return false
	}
	for i := range s.Obstacles {
		if s.Obstacles[i] != other.Obstacles[i] {
			return false
		}
	}
	return true
}

// Sim sequences physics, obstacles, scoring and collision tick by tick.
// A Sim is not safe for concurrent use: ticks must be serialized by the driver.
type Sim struct {
	params  Params
	spawner *Spawner
}

// NewSim creates a simulation whose obstacle gaps are drawn from seed.
func NewSim(params Params, seed int64) *Sim {
	return &Sim{
		params:  params,
		spawner: NewSpawner(seed, params),
	}
}

// Params returns the constants the simulation runs with.
func (s *Sim) Params() Params {
	return s.params
}

// Initial returns the state a run starts in.
func (s *Sim) Initial() RunState {
	return RunState{
		Status:    StatusReady,
		Entity:    Entity{Y: s.params.EntityStartY},
		Obstacles: []Obstacle{},
	}
}

// Restart discards any state and returns a fresh ready state.
func (s *Sim) Restart() RunState {
	return s.Initial()
}

// Tick advances state by deltaMs at time nowMs.
//
// gameOver is frozen and returned as is. ready waits for the first jump, which
// starts the run without integrating motion. playing runs motion, obstacles,
// scoring and collision in that order; a collision ends the run with the
// values computed on this tick.
func (s *Sim) Tick(state RunState, deltaMs float64, jump bool, nowMs float64) RunState {
	switch state.Status {
	case StatusGameOver:
		return state
	case StatusReady:
		if !jump {
			return state
		}
		state.Status = StatusPlaying
		state.Entity = s.params.Physics.ApplyImpulse(state.Entity)
		state.LastObstacleMs = nowMs
		return state
	}

	next := state
	next.Entity = s.params.Physics.Step(state.Entity, deltaMs, jump)

	obstacles := Advance(state.Obstacles, deltaMs, s.params.ObstacleSpeed)
	obstacles = Prune(obstacles, s.params.ObstacleWidth)
	if spawnDue(nowMs, state.LastObstacleMs, s.params.ObstacleIntervalMs) {
		obstacles = append(obstacles, s.spawner.Generate(nowMs))
		next.LastObstacleMs = nowMs
	}
	next.Score, next.Obstacles = UpdateScore(s.params, obstacles, state.Score)

	if AnyCollision(s.params, next.Entity, next.Obstacles) {
		next.Status = StatusGameOver
	}
	return next
}
