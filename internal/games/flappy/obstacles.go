package flappy

import (
	"fmt"
	"math/rand"
)

// Obstacle is a vertical barrier with a gap the entity must fly through.
type Obstacle struct {
	ID     string
	X      float64 // left edge, decreases over time
	GapY   float64 // vertical center of the gap
	Passed bool    // set once the entity has cleared the trailing edge
}

// Spawner creates obstacles at the right edge of the playfield.
// Its RNG is seeded so a run can be reproduced from its seed and inputs.
type Spawner struct {
	rng    *rand.Rand
	params Params
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, params Params) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		params: params,
	}
}

// Generate creates a new obstacle just beyond the right edge of the playfield.
// The gap center is uniform in [MinGapY, MaxGapY].
func (s *Spawner) Generate(nowMs float64) Obstacle {
	gapY := s.params.MinGapY + s.rng.Float64()*(s.params.MaxGapY-s.params.MinGapY)
	return Obstacle{
		ID:     fmt.Sprintf("%d-%08x", int64(nowMs), s.rng.Uint32()),
		X:      s.params.PlayfieldWidth,
		GapY:   gapY,
		Passed: false,
	}
}

// Advance moves every obstacle left by speed*dt. Order is preserved and the
// input slice is not modified.
func Advance(obstacles []Obstacle, dt, speed float64) []Obstacle {
	out := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		o.X -= speed * dt
		out[i] = o
	}
	return out
}

// Prune drops obstacles that have scrolled fully past the left edge.
// An obstacle is kept only while X > -width.
func Prune(obstacles []Obstacle, width float64) []Obstacle {
	out := make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o.X > -width {
			out = append(out, o)
		}
	}
	return out
}

// spawnDue reports whether the obstacle interval has elapsed since the last spawn.
func spawnDue(nowMs, lastMs, intervalMs float64) bool {
	return nowMs-lastMs >= intervalMs
}
