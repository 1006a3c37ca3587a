package game

import "testing"

func TestSteerFromCursorNormalizesAndClamps(t *testing.T) {
	cases := []struct {
		x    float64
		winW int
		want float64
	}{
		{400, 800, 0.5},
		{0, 800, 0},
		{800, 800, 1},
		{-120, 800, 0}, // drag continued off the left edge
		{950, 800, 1},  // drag continued off the right edge
		{200, 800, 0.25},
		{100, 0, 0.5}, // window reports no size yet
	}
	for _, c := range cases {
		if got := steerFromCursor(c.x, c.winW); got != c.want {
			t.Fatalf("steerFromCursor(%v, %d) = %v, want %v", c.x, c.winW, got, c.want)
		}
	}
}

func TestSteeringDefaultsToNeutral(t *testing.T) {
	s := NewSteering()
	if s.Value() != 0.5 {
		t.Fatalf("initial steering = %v, want 0.5", s.Value())
	}
}
