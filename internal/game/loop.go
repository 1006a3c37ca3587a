package game

// FrameLoop gates the per-frame ride step behind a stop flag. The host calls
// Tick once per displayed frame; the flag is checked before the step runs, so
// after Stop returns no further step can start. Stop is idempotent.
type FrameLoop struct {
	ride    *Ride
	stopped bool
	ticks   uint64
}

func NewFrameLoop(r *Ride) *FrameLoop {
	return &FrameLoop{ride: r}
}

// Tick runs one simulation step. Returns false once the loop is stopped.
func (l *FrameLoop) Tick(steering float64) bool {
	if l.stopped {
		return false
	}
	l.ride.Step(steering)
	l.ticks++
	return true
}

// Stop prevents any further step. Calling it again is a no-op.
func (l *FrameLoop) Stop() {
	l.stopped = true
}

func (l *FrameLoop) Stopped() bool { return l.stopped }

// Ticks returns how many steps have run.
func (l *FrameLoop) Ticks() uint64 { return l.ticks }
