package game

import "testing"

func TestLoopTicksAdvanceRide(t *testing.T) {
	r := NewRide()
	l := NewFrameLoop(r)
	for i := 0; i < 5; i++ {
		if !l.Tick(0.5) {
			t.Fatalf("tick %d refused before stop", i)
		}
	}
	if l.Ticks() != 5 {
		t.Fatalf("ticks = %d, want 5", l.Ticks())
	}
	if r.Progress == 0 {
		t.Fatalf("ride did not advance")
	}
}

func TestStopPreventsFurtherTicks(t *testing.T) {
	r := NewRide()
	l := NewFrameLoop(r)
	l.Tick(0.5)
	progress := r.Progress

	l.Stop()
	if l.Tick(0.5) {
		t.Fatalf("tick ran after stop")
	}
	if r.Progress != progress {
		t.Fatalf("ride advanced after stop: %v -> %v", progress, r.Progress)
	}
	if l.Ticks() != 1 {
		t.Fatalf("ticks after stop = %d, want 1", l.Ticks())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	l := NewFrameLoop(NewRide())
	l.Stop()
	l.Stop()
	if !l.Stopped() {
		t.Fatalf("loop not stopped after double stop")
	}
	if l.Tick(0.5) {
		t.Fatalf("tick ran after double stop")
	}
}
