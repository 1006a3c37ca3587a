package game

import "github.com/go-gl/mathgl/mgl32"

// Static track geometry, built once at renderer init. Everything is a
// GL_LINES vertex list (3 floats per vertex, 6 per segment) so the whole
// structure renders in three draw calls: rails, crossties, scaffolding.

// buildRailVerts returns line segments tracing both rails.
func buildRailVerts() []float32 {
	verts := make([]float32, 0, TrackSamples*2*6)

	left, right := railPositions()
	for i := 0; i < TrackSamples; i++ {
		j := (i + 1) % TrackSamples
		verts = appendSegment(verts, left[i], left[j])
		verts = appendSegment(verts, right[i], right[j])
	}
	return verts
}

// buildTieVerts returns one crosstie between the rails every CrosstieEvery
// samples.
func buildTieVerts() []float32 {
	verts := make([]float32, 0, TrackSamples/CrosstieEvery*6)

	left, right := railPositions()
	for i := 0; i < TrackSamples; i += CrosstieEvery {
		verts = appendSegment(verts, left[i], right[i])
	}
	return verts
}

// buildScaffoldVerts returns support pillars dropping from the track to the
// ground plane, plus a ground grid for depth reference.
func buildScaffoldVerts() []float32 {
	verts := make([]float32, 0, 4096)

	for i := 0; i < TrackSamples; i += SupportEvery {
		p := TrackPoint(float64(i) / TrackSamples)
		verts = append(verts,
			p.X(), p.Y()-0.2, p.Z(),
			p.X(), 0, p.Z(),
		)
	}

	for i := -GroundExtent; i <= GroundExtent; i += GroundStep {
		f := float32(i)
		e := float32(GroundExtent)
		verts = append(verts,
			f, 0, -e,
			f, 0, e,
			-e, 0, f,
			e, 0, f,
		)
	}
	return verts
}

// railPositions samples the loop once and offsets each point sideways to
// both rails. Samples where the basis degenerates reuse the previous offset
// so the rails stay joined instead of pinching to the centerline.
func railPositions() (left, right []mgl32.Vec3) {
	left = make([]mgl32.Vec3, TrackSamples)
	right = make([]mgl32.Vec3, TrackSamples)

	offset := mgl32.Vec3{RailHalfGap, 0, 0}
	for i := 0; i < TrackSamples; i++ {
		s := SampleTrack(float64(i) / TrackSamples)
		if r, _, ok := trackBasis(s.Tangent); ok {
			offset = r.Mul(RailHalfGap)
		}
		left[i] = s.Pos.Sub(offset)
		right[i] = s.Pos.Add(offset)
	}
	return left, right
}

func appendSegment(verts []float32, a, b mgl32.Vec3) []float32 {
	return append(verts,
		a.X(), a.Y(), a.Z(),
		b.X(), b.Y(), b.Z(),
	)
}
