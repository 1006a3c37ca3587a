package game

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/cart.obj
var assetFS embed.FS

// Mesh is a flat triangle list, interleaved position (3) + normal (3).
type Mesh struct {
	Verts []float32
}

func (m *Mesh) VertexCount() int { return len(m.Verts) / 6 }

// MeshResult is the one-shot outcome of an asynchronous model load.
type MeshResult struct {
	Mesh *Mesh
	Err  error
}

// LoadCartMesh parses the embedded cart model off the main thread and
// delivers exactly one result on the returned channel. The frame loop polls
// it each frame and rides camera-only until the mesh arrives; on failure it
// simply never gets a cart. GL upload happens later, on the main thread.
func LoadCartMesh() <-chan MeshResult {
	ch := make(chan MeshResult, 1)
	go func() {
		data, err := assetFS.ReadFile("assets/cart.obj")
		if err != nil {
			ch <- MeshResult{Err: fmt.Errorf("read cart model: %w", err)}
			return
		}
		m, err := parseOBJ(data)
		if err != nil {
			ch <- MeshResult{Err: fmt.Errorf("parse cart model: %w", err)}
			return
		}
		ch <- MeshResult{Mesh: m}
	}()
	return ch
}

// parseOBJ reads a minimal Wavefront subset: v, vn and f records, with face
// corners as "v", "v/vt", "v//vn" or "v/vt/vn". Faces with more than three
// corners are fan-triangulated. Corners without a normal get the flat face
// normal. Texture coordinates and materials are ignored.
func parseOBJ(data []byte) (*Mesh, error) {
	var pos, norm []mgl32.Vec3
	mesh := &Mesh{}

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			pos = append(pos, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			norm = append(norm, v)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", line)
			}
			corners := fields[1:]
			for i := 1; i+1 < len(corners); i++ {
				if err := mesh.addTriangle(pos, norm, corners[0], corners[i], corners[i+1]); err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if mesh.VertexCount() == 0 {
		return nil, fmt.Errorf("model has no faces")
	}
	return mesh, nil
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func (m *Mesh) addTriangle(pos, norm []mgl32.Vec3, refs ...string) error {
	var p [3]mgl32.Vec3
	var n [3]mgl32.Vec3
	haveNorm := true

	for i, ref := range refs {
		parts := strings.Split(ref, "/")
		pi, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("corner %q: %w", ref, err)
		}
		if pi < 1 || pi > len(pos) {
			return fmt.Errorf("corner %q: vertex index out of range", ref)
		}
		p[i] = pos[pi-1]

		if len(parts) >= 3 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("corner %q: %w", ref, err)
			}
			if ni < 1 || ni > len(norm) {
				return fmt.Errorf("corner %q: normal index out of range", ref)
			}
			n[i] = norm[ni-1]
		} else {
			haveNorm = false
		}
	}

	if !haveNorm {
		flat := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		if l := flat.Len(); l > 1e-8 {
			flat = flat.Mul(1 / l)
		} else {
			flat = worldUp
		}
		n[0], n[1], n[2] = flat, flat, flat
	}

	for i := 0; i < 3; i++ {
		m.Verts = append(m.Verts,
			p[i].X(), p[i].Y(), p[i].Z(),
			n[i].X(), n[i].Y(), n[i].Z(),
		)
	}
	return nil
}
