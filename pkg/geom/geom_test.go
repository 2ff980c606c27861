package geom

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Point
		want float64
	}{
		{Pt(0, 0), Pt(3, 4), 5},
		{Pt(-1, 7), Pt(2, 7), 3},
		{Pt(2, 3), Pt(2, 3), 0},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); !approxEqual(got, c.want) {
			t.Errorf("Distance(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestStepTowardsAdvancesAlongDirection(t *testing.T) {
	next, arrived := StepTowards(Pt(0, 0), Pt(10, 0), 2.5)
	if arrived {
		t.Fatal("expected not to arrive")
	}
	if !approxEqual(next.X, 2.5) || !approxEqual(next.Y, 0) {
		t.Fatalf("unexpected position %v", next)
	}

	next, _ = StepTowards(Pt(0, 0), Pt(3, 4), 1)
	if !approxEqual(next.X, 0.6) || !approxEqual(next.Y, 0.8) {
		t.Fatalf("unexpected diagonal step %v", next)
	}
}

func TestStepTowardsSnapsWhenCloserThanStep(t *testing.T) {
	next, arrived := StepTowards(Pt(0, 0), Pt(1, 0), 1.5)
	if !arrived {
		t.Fatal("expected to arrive")
	}
	if next != Pt(1, 0) {
		t.Fatalf("expected snap to target, got %v", next)
	}
}

func TestStepTowardsExactDistanceDoesNotSnap(t *testing.T) {
	// Snapping requires the distance to be strictly below the step.
	next, arrived := StepTowards(Pt(0, 0), Pt(2, 0), 2)
	if arrived {
		t.Fatal("distance equal to step must not count as arrival")
	}
	if !approxEqual(next.X, 2) {
		t.Fatalf("expected to land on target coordinates, got %v", next)
	}
}
