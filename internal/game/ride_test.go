package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatSample(pos, tangent mgl32.Vec3) SampleFunc {
	return func(t float64) TrackSample {
		return TrackSample{Pos: pos, Tangent: tangent}
	}
}

func TestFirstStepAdvancesProgressByInitialVelocity(t *testing.T) {
	r := NewRide()
	r.Step(0.5)
	if r.Progress != InitialVelocity {
		t.Fatalf("progress after first step = %v, want %v", r.Progress, InitialVelocity)
	}
}

func TestProgressStaysInRange(t *testing.T) {
	r := NewRide()
	for i := 0; i < 100000; i++ {
		r.Step(0.5)
		if r.Progress < 0 || r.Progress >= 1 {
			t.Fatalf("progress out of [0,1) at step %d: %v", i, r.Progress)
		}
	}
}

func TestVelocityStaysClamped(t *testing.T) {
	for _, start := range []float64{MinVelocity, InitialVelocity, MaxVelocity} {
		r := NewRide()
		r.Velocity = start
		for i := 0; i < 10000; i++ {
			r.Step(float64(i%3) / 2)
			if r.Velocity < MinVelocity || r.Velocity > MaxVelocity {
				t.Fatalf("start=%v: velocity out of bounds at step %d: %v", start, i, r.Velocity)
			}
		}
	}
}

func TestDownhillAcceleratesUphillBrakes(t *testing.T) {
	down := NewRideWith(flatSample(mgl32.Vec3{}, mgl32.Vec3{0, -0.7, 0.714}.Normalize()))
	v0 := down.Velocity
	down.Step(0.5)
	if down.Velocity <= v0 {
		t.Fatalf("downhill step did not accelerate: %v -> %v", v0, down.Velocity)
	}

	up := NewRideWith(flatSample(mgl32.Vec3{}, mgl32.Vec3{0, 0.7, 0.714}.Normalize()))
	v0 = up.Velocity
	up.Step(0.5)
	if up.Velocity >= v0 {
		t.Fatalf("uphill step did not brake: %v -> %v", v0, up.Velocity)
	}
}

func TestNeutralSteeringHasNoXOffset(t *testing.T) {
	r := NewRideWith(flatSample(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1}))
	r.Step(0.5)
	if r.Camera.Eye.X() != 1 {
		t.Fatalf("camera x with neutral steering = %v, want 1", r.Camera.Eye.X())
	}
	if r.Camera.Eye.Y() != 3 || r.Camera.Eye.Z() != 1.5 {
		t.Fatalf("camera eye = %v, want (1, 3, 1.5)", r.Camera.Eye)
	}
}

func TestFullSteeringOffsetsHalfSensitivity(t *testing.T) {
	r := NewRideWith(flatSample(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1}))
	r.Step(1.0)
	want := float32(1 + 0.5*SteerSensitivity)
	if r.Camera.Eye.X() != want {
		t.Fatalf("camera x with full steering = %v, want %v", r.Camera.Eye.X(), want)
	}
}

func TestSteeringInputIsClampedDefensively(t *testing.T) {
	r := NewRideWith(flatSample(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}))
	r.Step(7.5)
	want := float32(0.5 * SteerSensitivity)
	if r.Camera.Eye.X() != want {
		t.Fatalf("camera x with out-of-range steering = %v, want %v", r.Camera.Eye.X(), want)
	}
}

func TestLookTargetLeadsAlongTangent(t *testing.T) {
	r := NewRideWith(flatSample(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1}))
	r.Step(0.5)
	want := mgl32.Vec3{1, 2, 3 + LookAheadDistance}
	if r.Camera.Target != want {
		t.Fatalf("look target = %v, want %v", r.Camera.Target, want)
	}
}

func TestThousandFramesCameraStaysFinite(t *testing.T) {
	r := NewRide()
	for i := 0; i < 1000; i++ {
		r.Step(0.5)
		if !finiteVec(r.Camera.Eye) || !finiteVec(r.Camera.Target) {
			t.Fatalf("camera not finite at frame %d: %+v", i, r.Camera)
		}
	}
}

func TestZeroTangentDoesNotPoisonLaterFrames(t *testing.T) {
	// Real track everywhere except a dead zone with an exactly zero tangent.
	sample := func(tv float64) TrackSample {
		if tv >= 0.1 && tv < 0.11 {
			return TrackSample{Pos: TrackPoint(tv)}
		}
		return SampleTrack(tv)
	}
	r := NewRideWith(sample)
	cam := NewCamera()
	cam.SetViewport(800, 600)
	for i := 0; i < 5000; i++ {
		r.Step(0.5)
		if !finiteVec(r.Camera.Eye) || !finiteVec(r.Camera.Target) || !finiteVec(r.Cart.Pos) {
			t.Fatalf("transform not finite at frame %d", i)
		}
		q := r.Cart.Rot
		for _, f := range []float32{q.W, q.V.X(), q.V.Y(), q.V.Z()} {
			if math.IsNaN(float64(f)) {
				t.Fatalf("orientation NaN at frame %d: %+v", i, q)
			}
		}
		// Inside the dead zone the look direction is straight down; the
		// camera must hold the previous view rather than go NaN.
		cam.SetPose(r.Camera)
		vp := cam.ViewProj()
		for e, f := range vp {
			if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
				t.Fatalf("view-projection not finite at frame %d, element %d: %v", i, e, vp)
			}
		}
	}
}

func TestDegenerateTangentKeepsPreviousOrientation(t *testing.T) {
	calls := 0
	sample := func(tv float64) TrackSample {
		calls++
		if calls > 1 {
			return TrackSample{Pos: mgl32.Vec3{5, 5, 5}}
		}
		return TrackSample{Pos: mgl32.Vec3{}, Tangent: mgl32.Vec3{1, 0, 0}}
	}
	r := NewRideWith(sample)
	r.Step(0.5)
	want := r.Cart.Rot
	r.Step(0.5)
	if r.Cart.Rot != want {
		t.Fatalf("orientation changed on degenerate tangent: %+v vs %+v", r.Cart.Rot, want)
	}
	if r.Cart.Pos != (mgl32.Vec3{5, 5 + CartYOffset, 5}) {
		t.Fatalf("cart position not updated on degenerate tangent: %v", r.Cart.Pos)
	}
}

func TestOrientationForwardMatchesTangent(t *testing.T) {
	tan := mgl32.Vec3{0.6, 0, 0.8}
	r := NewRideWith(flatSample(mgl32.Vec3{}, tan))
	r.Step(0.5)
	forward := r.Cart.Rot.Rotate(mgl32.Vec3{0, 0, 1})
	if d := float64(forward.Dot(tan)); d < 0.9999 {
		t.Fatalf("rotated forward axis %v does not match tangent %v (dot=%f)", forward, tan, d)
	}
}
