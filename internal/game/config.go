package game

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)

// Camera projection.
const (
	CameraFovDeg = 65.0
	CameraNear   = 0.1
	CameraFar    = 400.0
)

// Track geometry (world units). Harmonic frequencies live in track.go;
// these scale the loop and place it above the ground plane.
const (
	TrackScale  = 14.0 // horizontal extent of the loop
	TrackHeight = 4.0  // hill amplitude
	TrackBaseY  = 7.0  // keeps the lowest dip above the ground

	// Finite-difference step for tangent estimation.
	TangentDelta = 1e-4
)

// Static track mesh resolution.
const (
	TrackSamples  = 720
	RailHalfGap   = 0.35
	CrosstieEvery = 4  // one crosstie per N samples
	SupportEvery  = 24 // one support pillar per N samples
	GroundExtent  = 40
	GroundStep    = 4
)

// Ride physics. Velocity is in track-progress units per frame; the
// integration uses a fixed nominal delta, so simulation speed is tied to
// display frame rate (vsync), not wall-clock time.
const (
	InitialVelocity = 0.00045
	MinVelocity     = 0.00015
	MaxVelocity     = 0.0022
	GravityFactor   = 0.009
	VelocityDamping = 0.995
	FixedDeltaTime  = 1.0 / 60.0
)

// Camera placement relative to the sampled track point.
const (
	CameraTrailDistance = 1.5 // behind the track point, along the reversed tangent
	CameraHeight        = 1.0
	LookAheadDistance   = 3.0
	SteerSensitivity    = 4.0 // x-offset per full-width drag
)

// Cart placement.
const (
	CartYOffset = 0.25
	CartScale   = 1.0
)
