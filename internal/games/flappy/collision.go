package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// The entity is a circle of radius EntityRadius at (EntityX, Y). An obstacle
// is solid over [X, X+ObstacleWidth] except for its gap. All comparisons are
// inclusive: touching the gap edge is safe, touching the playfield edge is not.

// HitsObstacle reports whether the entity collides with the obstacle.
func HitsObstacle(p Params, e Entity, o Obstacle) bool {
	obstacleX := core.Span{Min: o.X, Max: o.X + p.ObstacleWidth}
	if !p.entitySpanX().Overlaps(obstacleX) {
		return false
	}
	gap := core.SpanAround(o.GapY, p.ObstacleGapHeight/2)
	return !gap.Contains(core.SpanAround(e.Y, p.EntityRadius))
}

// HitsBoundary reports whether the entity touches or crosses the top or
// bottom of the playfield.
func HitsBoundary(p Params, e Entity) bool {
	return e.Y-p.EntityRadius <= p.TopBoundary || e.Y+p.EntityRadius >= p.BottomBoundary
}

// AnyCollision reports whether the entity hits the boundary or any obstacle.
func AnyCollision(p Params, e Entity, obstacles []Obstacle) bool {
	if HitsBoundary(p, e) {
		return true
	}
	for _, o := range obstacles {
		if HitsObstacle(p, e, o) {
			return true
		}
	}
	return false
}
