package flappy

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	p := testParams()
	s := NewSpawner(42, p)

	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		now := float64(i * 1500)
		o := s.Generate(now)

		if o.X != p.PlayfieldWidth {
			t.Fatalf("Generate().X = %f, expected %f", o.X, p.PlayfieldWidth)
		}
		if o.Passed {
			t.Fatal("Generate() should create an unpassed obstacle")
		}
		if o.GapY < p.MinGapY || o.GapY > p.MaxGapY {
			t.Fatalf("Generate().GapY = %f outside [%f, %f]", o.GapY, p.MinGapY, p.MaxGapY)
		}
		if ids[o.ID] {
			t.Fatalf("Generate() reused ID %q", o.ID)
		}
		ids[o.ID] = true
	}
}

func TestGenerateSameTimeUniqueIDs(t *testing.T) {
	s := NewSpawner(1, testParams())
	a := s.Generate(3000)
	b := s.Generate(3000)

	if a.ID == b.ID {
		t.Errorf("obstacles generated at the same time share ID %q", a.ID)
	}
	if !strings.HasPrefix(a.ID, "3000-") {
		t.Errorf("ID %q should start with the generation time", a.ID)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := testParams()
	s1 := NewSpawner(99, p)
	s2 := NewSpawner(99, p)

	for i := 0; i < 20; i++ {
		now := float64(i) * 1500
		if a, b := s1.Generate(now), s2.Generate(now); a != b {
			t.Fatalf("spawners with the same seed diverged at %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestGenerateFixedGapRange(t *testing.T) {
	p := testParams()
	p.MinGapY, p.MaxGapY = 320, 320

	o := NewSpawner(5, p).Generate(0)
	if o.GapY != 320 {
		t.Errorf("GapY = %f, expected 320 for a degenerate range", o.GapY)
	}
}

func TestAdvance(t *testing.T) {
	in := []Obstacle{
		{ID: "a", X: 400, GapY: 200},
		{ID: "b", X: 150, GapY: 300, Passed: false},
		{ID: "c", X: 20, GapY: 400, Passed: true},
	}

	out := Advance(in, 16, 0.25)
	if len(out) != len(in) {
		t.Fatalf("Advance() returned %d obstacles, expected %d", len(out), len(in))
	}
	for i := range in {
		want := in[i]
		want.X -= 4
		if out[i] != want {
			t.Errorf("Advance()[%d] = %+v, expected %+v", i, out[i], want)
		}
	}

	// Input untouched
	if in[0].X != 400 {
		t.Errorf("Advance() modified its input: %+v", in[0])
	}
}

func TestPrune(t *testing.T) {
	in := []Obstacle{
		{ID: "gone", X: -61},
		{ID: "exactly-out", X: -60},
		{ID: "sliver", X: -59.5},
		{ID: "visible", X: 100},
	}

	out := Prune(in, 60)

	var ids []string
	for _, o := range out {
		ids = append(ids, o.ID)
	}
	if strings.Join(ids, ",") != "sliver,visible" {
		t.Errorf("Prune() kept %v, expected [sliver visible]", ids)
	}
	if len(in) != 4 {
		t.Error("Prune() modified its input")
	}
}

func TestSpawnDue(t *testing.T) {
	tests := []struct {
		now, last float64
		want      bool
	}{
		{1000, 0, false},
		{1500, 0, true},
		{1499.9, 0, false},
		{9000, 0, true},
	}
	for _, tc := range tests {
		if got := spawnDue(tc.now, tc.last, 1500); got != tc.want {
			t.Errorf("spawnDue(%f, %f) = %v, expected %v", tc.now, tc.last, got, tc.want)
		}
	}
}
