// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on the character grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed interval [Min, Max] on one axis of the playfield.
// Both ends are part of the span.
type Span struct {
	Min, Max float64
}

// SpanAround returns the span of half-width r centered at c.
func SpanAround(c, r float64) Span {
	return Span{Min: c - r, Max: c + r}
}

// Overlaps reports whether the two spans share at least one point.
// Touching ends count as overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Max >= other.Min && s.Min <= other.Max
}

// Contains reports whether other lies entirely inside s, ends included.
func (s Span) Contains(other Span) bool {
	return other.Min >= s.Min && other.Max <= s.Max
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Scale maps v from a range of length from onto a range of length to,
// truncating toward zero. A zero-length source maps everything to 0.
func Scale(v, from float64, to int) int {
	if from == 0 {
		return 0
	}
	return int(v * float64(to) / from)
}
