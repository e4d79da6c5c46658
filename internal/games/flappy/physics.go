package flappy

// Entity is the player-controlled body. Y grows downward from the top of the
// playfield and VY is positive when falling. The horizontal position is fixed
// (Params.EntityX) and never part of the state.
type Entity struct {
	Y  float64
	VY float64
}

// Physics holds the constants of the vertical motion model.
type Physics struct {
	Gravity      float64 // downward acceleration per ms
	JumpVelocity float64 // velocity set by a jump, negative = up
}

// ApplyImpulse sets the entity's velocity to the jump velocity.
func (p Physics) ApplyImpulse(e Entity) Entity {
	e.VY = p.JumpVelocity
	return e
}

// ApplyGravity accelerates the entity downward for dt milliseconds.
// dt is not validated; callers supply non-negative elapsed time.
func (p Physics) ApplyGravity(e Entity, dt float64) Entity {
	e.VY += p.Gravity * dt
	return e
}

// Integrate moves the entity by its velocity over dt milliseconds.
func Integrate(e Entity, dt float64) Entity {
	e.Y += e.VY * dt
	return e
}

// Step runs one playing tick of motion: optional jump, then gravity, then
// position. A jump on the same tick still receives that tick's gravity.
func (p Physics) Step(e Entity, dt float64, jump bool) Entity {
	if jump {
		e = p.ApplyImpulse(e)
	}
	e = p.ApplyGravity(e, dt)
	return Integrate(e, dt)
}
