package flappy

import "testing"

// testParams uses binary-exact constants so float results can be compared
// with ==.
func testParams() Params {
	return Params{
		Physics: Physics{
			Gravity:      0.0625,
			JumpVelocity: -4,
		},
		PlayfieldWidth:     400,
		TopBoundary:        0,
		BottomBoundary:     600,
		EntityX:            100,
		EntityStartY:       300,
		EntityRadius:       18,
		ObstacleWidth:      60,
		ObstacleGapHeight:  160,
		ObstacleSpeed:      0.25,
		ObstacleIntervalMs: 1500,
		MinGapY:            150,
		MaxGapY:            450,
	}
}

var sampleEntities = []Entity{
	{Y: 300, VY: 0},
	{Y: 20, VY: -3.5},
	{Y: 580, VY: 12},
	{Y: -40, VY: 0.25},
}

func TestApplyImpulse(t *testing.T) {
	p := testParams().Physics
	for _, e := range sampleEntities {
		got := p.ApplyImpulse(e)
		if got.VY != p.JumpVelocity {
			t.Errorf("ApplyImpulse(%+v).VY = %f, expected %f", e, got.VY, p.JumpVelocity)
		}
		if got.Y != e.Y {
			t.Errorf("ApplyImpulse(%+v) moved Y to %f", e, got.Y)
		}
	}
}

func TestApplyGravity(t *testing.T) {
	p := testParams().Physics
	for _, e := range sampleEntities {
		for _, dt := range []float64{0, 1, 16, 32, 1000} {
			got := p.ApplyGravity(e, dt)
			if got.VY != e.VY+p.Gravity*dt {
				t.Errorf("ApplyGravity(%+v, %f).VY = %f, expected %f", e, dt, got.VY, e.VY+p.Gravity*dt)
			}
			if got.Y != e.Y {
				t.Errorf("ApplyGravity(%+v, %f) moved Y to %f", e, dt, got.Y)
			}
		}
	}
}

func TestIntegrate(t *testing.T) {
	for _, e := range sampleEntities {
		for _, dt := range []float64{0, 1, 16, 32} {
			got := Integrate(e, dt)
			if got.Y != e.Y+e.VY*dt {
				t.Errorf("Integrate(%+v, %f).Y = %f, expected %f", e, dt, got.Y, e.Y+e.VY*dt)
			}
			if got.VY != e.VY {
				t.Errorf("Integrate(%+v, %f) changed VY to %f", e, dt, got.VY)
			}
		}
	}
}

func TestPhysicsLinearInDelta(t *testing.T) {
	p := testParams().Physics
	e := Entity{Y: 300, VY: -2}

	for _, dt := range []float64{1, 8, 16, 50} {
		dv1 := p.ApplyGravity(e, dt).VY - e.VY
		dv2 := p.ApplyGravity(e, 2*dt).VY - e.VY
		if dv2 != 2*dv1 {
			t.Errorf("gravity change for 2*%f = %f, expected %f", dt, dv2, 2*dv1)
		}

		dy1 := Integrate(e, dt).Y - e.Y
		dy2 := Integrate(e, 2*dt).Y - e.Y
		if dy2 != 2*dy1 {
			t.Errorf("position change for 2*%f = %f, expected %f", dt, dy2, 2*dy1)
		}
	}
}

func TestStepOrder(t *testing.T) {
	p := testParams().Physics
	e := Entity{Y: 300, VY: 5}

	// Jump overrides velocity, then gravity for the tick is still added
	got := p.Step(e, 16, true)
	wantVY := p.JumpVelocity + p.Gravity*16
	if got.VY != wantVY {
		t.Errorf("Step with jump VY = %f, expected %f", got.VY, wantVY)
	}
	if got.Y != 300+wantVY*16 {
		t.Errorf("Step with jump Y = %f, expected %f", got.Y, 300+wantVY*16)
	}

	got = p.Step(e, 16, false)
	if got.VY != 6 || got.Y != 300+6*16 {
		t.Errorf("Step without jump = %+v, expected {Y:396 VY:6}", got)
	}
}
