package flappy

// UpdateScore marks every obstacle whose trailing edge the entity has fully
// cleared (EntityX > X+width) as passed, adding one point per newly passed
// obstacle. Already passed obstacles never score again.
func UpdateScore(p Params, obstacles []Obstacle, score int) (int, []Obstacle) {
	out := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		if !o.Passed && p.EntityX > o.X+p.ObstacleWidth {
			o.Passed = true
			score++
		}
		out[i] = o
	}
	return score, out
}
