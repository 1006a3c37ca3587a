package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TrackSample is a (position, tangent) pair for one progress value.
// Tangent is unit length unless the curve degenerates, in which case it is
// the zero vector and callers must fall back (see Ride.Step).
type TrackSample struct {
	Pos     mgl32.Vec3
	Tangent mgl32.Vec3
}

// SampleFunc produces a track sample for a progress value in [0,1).
type SampleFunc func(t float64) TrackSample

// TrackPoint returns the track position for progress t.
// Each axis mixes two sine/cosine harmonics of t*2π with distinct integer
// frequencies, so the loop is closed but never a plain ellipse. Integer
// frequencies make the function exactly periodic with period 1.
func TrackPoint(t float64) mgl32.Vec3 {
	a := t * 2 * math.Pi
	x := TrackScale * (math.Cos(a) + 0.4*math.Cos(3*a))
	y := TrackBaseY + TrackHeight*(math.Sin(2*a)+0.35*math.Cos(5*a))
	z := TrackScale * (math.Sin(a) + 0.4*math.Sin(2*a))
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// SampleTrack returns position and unit tangent at t. The tangent is a
// central finite difference with both lookups clamped into [0,1]: TrackPoint
// is periodic, so clamping at the seam evaluates the same positions wrapping
// would, and the tangent stays continuous across the loop boundary.
func SampleTrack(t float64) TrackSample {
	p0 := TrackPoint(clampF(t-TangentDelta, 0, 1))
	p1 := TrackPoint(clampF(t+TangentDelta, 0, 1))
	d := p1.Sub(p0)
	if l := d.Len(); l > 1e-6 {
		d = d.Mul(1 / l)
	} else {
		d = mgl32.Vec3{}
	}
	return TrackSample{Pos: TrackPoint(t), Tangent: d}
}

// trackBasis derives right and up vectors for a tangent, keeping the frame
// roughly upright. Fails when the tangent is near zero or near vertical.
func trackBasis(tangent mgl32.Vec3) (right, up mgl32.Vec3, ok bool) {
	if !finiteVec(tangent) || tangent.Len() < 1e-5 {
		return right, up, false
	}
	forward := tangent.Normalize()
	right = worldUp.Cross(forward)
	if right.Len() < 1e-5 {
		return right, up, false
	}
	right = right.Normalize()
	up = forward.Cross(right).Normalize()
	return right, up, true
}
