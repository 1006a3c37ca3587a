package game

import "github.com/go-gl/mathgl/mgl32"

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera turns the ride's camera pose into view and projection matrices.
type Camera struct {
	view mgl32.Mat4
	proj mgl32.Mat4

	fbW, fbH int
}

func NewCamera() *Camera {
	return &Camera{
		view: mgl32.Ident4(),
		proj: mgl32.Ident4(),
	}
}

// SetViewport recomputes the projection when the framebuffer size changes.
// Zero or negative sizes no-op, so a minimized window or a resize racing
// setup can't produce a broken matrix.
func (c *Camera) SetViewport(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	if fbW == c.fbW && fbH == c.fbH {
		return
	}
	c.fbW, c.fbH = fbW, fbH
	aspect := float32(fbW) / float32(fbH)
	c.proj = mgl32.Perspective(mgl32.DegToRad(CameraFovDeg), aspect, CameraNear, CameraFar)
}

// SetPose rebuilds the view matrix. A degenerate eye-to-target direction
// keeps the previous view instead of producing NaNs: that covers a target on
// top of the eye and a look direction parallel to worldUp, where LookAtV's
// cross product collapses to a zero vector.
func (c *Camera) SetPose(p CameraPose) {
	if !finiteVec(p.Eye) || !finiteVec(p.Target) {
		return
	}
	dir := p.Target.Sub(p.Eye)
	if dir.Len() < 1e-5 {
		return
	}
	if dir.Normalize().Cross(worldUp).Len() < 1e-5 {
		return
	}
	c.view = mgl32.LookAtV(p.Eye, p.Target, worldUp)
}

// ViewProj returns the combined matrix handed to the shaders.
func (c *Camera) ViewProj() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}
