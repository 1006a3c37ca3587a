package game

import (
	"math"
	"strings"
	"testing"
	"time"
)

const quadOBJ = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func TestParseOBJTriangulatesQuads(t *testing.T) {
	m, err := parseOBJ([]byte(quadOBJ))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.VertexCount() != 6 {
		t.Fatalf("vertex count = %d, want 6 (two triangles)", m.VertexCount())
	}
	// First vertex: position then normal.
	got := m.Verts[:6]
	want := []float32{0, 0, 0, 0, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("first vertex = %v, want %v", got, want)
		}
	}
}

func TestParseOBJComputesFlatNormals(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 0 1
f 1 2 3
`
	m, err := parseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Triangle lies in the ground plane wound toward -Y.
	nx, ny, nz := m.Verts[3], m.Verts[4], m.Verts[5]
	if math.Abs(float64(nx)) > 1e-6 || math.Abs(float64(ny)+1) > 1e-6 || math.Abs(float64(nz)) > 1e-6 {
		t.Fatalf("flat normal = (%v %v %v), want (0 -1 0)", nx, ny, nz)
	}
}

func TestParseOBJRejectsBadIndex(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
f 1 2 9
`
	if _, err := parseOBJ([]byte(src)); err == nil {
		t.Fatalf("expected error for out-of-range vertex index")
	} else if !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseOBJRejectsEmptyModel(t *testing.T) {
	if _, err := parseOBJ([]byte("v 0 0 0\n")); err == nil {
		t.Fatalf("expected error for model without faces")
	}
}

func TestLoadCartMeshDeliversOneResult(t *testing.T) {
	ch := LoadCartMesh()
	select {
	case res := <-ch:
		if res.Err != nil {
			t.Fatalf("embedded cart model failed to load: %v", res.Err)
		}
		if res.Mesh.VertexCount() < 12 {
			t.Fatalf("cart mesh suspiciously small: %d vertices", res.Mesh.VertexCount())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("cart model load never resolved")
	}

	// Exactly one result: the channel must not deliver a second one.
	select {
	case res, ok := <-ch:
		if ok {
			t.Fatalf("unexpected second result: %+v", res)
		}
	default:
	}
}
