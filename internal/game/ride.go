package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraPose is where the chase camera sits and what it looks at.
type CameraPose struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
}

// CartPose places the follower cart on the track.
type CartPose struct {
	Pos mgl32.Vec3
	Rot mgl32.Quat
}

// Ride is the simulation. Progress and Velocity are the only persistent
// state; the camera and cart poses are recomputed from them every step.
type Ride struct {
	Progress float64 // fractional position along the loop, [0,1)
	Velocity float64 // progress units per frame, [MinVelocity, MaxVelocity]

	Camera CameraPose
	Cart   CartPose

	sample SampleFunc

	// Last valid cart orientation, reused when the tangent degenerates so a
	// bad sample can't push NaNs into the transform.
	lastRot mgl32.Quat
}

func NewRide() *Ride {
	return &Ride{
		Velocity: InitialVelocity,
		sample:   SampleTrack,
		lastRot:  mgl32.QuatIdent(),
	}
}

// NewRideWith uses a custom sample function instead of the built-in track.
func NewRideWith(sample SampleFunc) *Ride {
	r := NewRide()
	r.sample = sample
	return r
}

// Step advances the ride by one frame: move along the loop, let the slope
// feed the velocity, then place the camera and cart. steering is the
// normalized horizontal pointer position; 0.5 is neutral.
func (r *Ride) Step(steering float64) {
	r.Progress = math.Mod(r.Progress+r.Velocity, 1)

	s := r.sample(r.Progress)
	tan := s.Tangent
	if !finiteVec(tan) {
		tan = mgl32.Vec3{}
	}

	// Downhill tangents speed the cart up, uphill ones brake it. Drag is
	// applied after the slope so the clamp sees the final value.
	slope := float64(-tan.Y())
	r.Velocity += slope * GravityFactor * FixedDeltaTime
	r.Velocity *= VelocityDamping
	r.Velocity = clampF(r.Velocity, MinVelocity, MaxVelocity)

	eye := s.Pos.Add(tan.Mul(-CameraTrailDistance)).Add(mgl32.Vec3{0, CameraHeight, 0})
	eye[0] += float32((clampF(steering, 0, 1) - 0.5) * SteerSensitivity)
	r.Camera = CameraPose{
		Eye:    eye,
		Target: s.Pos.Add(tan.Mul(LookAheadDistance)),
	}

	r.Cart.Pos = s.Pos.Add(mgl32.Vec3{0, CartYOffset, 0})
	if q, ok := lookAlong(tan); ok {
		r.lastRot = q
	}
	r.Cart.Rot = r.lastRot
}

// lookAlong builds a rotation whose forward (+Z) axis follows dir while
// staying roughly upright. Fails for near-zero or near-vertical directions.
func lookAlong(dir mgl32.Vec3) (mgl32.Quat, bool) {
	right, up, ok := trackBasis(dir)
	if !ok {
		return mgl32.Quat{}, false
	}
	m := mgl32.Mat3FromCols(right, up, dir.Normalize())
	return mgl32.Mat4ToQuat(m.Mat4()), true
}
