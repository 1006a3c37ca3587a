package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene colors.
var (
	skyColor      = mgl32.Vec3{0.45, 0.65, 0.85}
	railColor     = mgl32.Vec3{0.85, 0.15, 0.12}
	tieColor      = mgl32.Vec3{0.35, 0.25, 0.18}
	scaffoldColor = mgl32.Vec3{0.55, 0.55, 0.58}
	cartColor     = mgl32.Vec3{0.90, 0.75, 0.10}
	lightDir      = mgl32.Vec3{-0.45, -0.80, -0.40}.Normalize()
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// lineBatch is one static GL_LINES buffer drawn with a single color.
type lineBatch struct {
	vao   uint32
	vbo   uint32
	count int32
	color mgl32.Vec3
}

type Renderer struct {
	// Line program (track + scaffolding).
	lineProg      uint32
	lineUViewProj int32
	lineUColor    int32
	lineUFogColor int32
	lineUFogFar   int32

	rails    lineBatch
	ties     lineBatch
	scaffold lineBatch

	// Mesh program (cart).
	meshProg      uint32
	meshUViewProj int32
	meshUModel    int32
	meshUColor    int32
	meshULightDir int32

	cartVAO   uint32
	cartVBO   uint32
	cartCount int32
}

func NewRenderer() (*Renderer, error) {
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		gl.DeleteProgram(lineProg)
		return nil, fmt.Errorf("mesh program: %w", err)
	}

	r := &Renderer{
		lineProg: lineProg,
		meshProg: meshProg,
	}

	gl.UseProgram(lineProg)
	r.lineUViewProj = gl.GetUniformLocation(lineProg, gl.Str("uViewProj\x00"))
	r.lineUColor = gl.GetUniformLocation(lineProg, gl.Str("uColor\x00"))
	r.lineUFogColor = gl.GetUniformLocation(lineProg, gl.Str("uFogColor\x00"))
	r.lineUFogFar = gl.GetUniformLocation(lineProg, gl.Str("uFogFar\x00"))
	gl.Uniform3f(r.lineUFogColor, skyColor.X(), skyColor.Y(), skyColor.Z())
	gl.Uniform1f(r.lineUFogFar, 120.0)

	gl.UseProgram(meshProg)
	r.meshUViewProj = gl.GetUniformLocation(meshProg, gl.Str("uViewProj\x00"))
	r.meshUModel = gl.GetUniformLocation(meshProg, gl.Str("uModel\x00"))
	r.meshUColor = gl.GetUniformLocation(meshProg, gl.Str("uColor\x00"))
	r.meshULightDir = gl.GetUniformLocation(meshProg, gl.Str("uLightDir\x00"))
	gl.Uniform3f(r.meshUColor, cartColor.X(), cartColor.Y(), cartColor.Z())
	gl.Uniform3f(r.meshULightDir, lightDir.X(), lightDir.Y(), lightDir.Z())

	r.rails = r.newLineBatch(buildRailVerts(), railColor)
	r.ties = r.newLineBatch(buildTieVerts(), tieColor)
	r.scaffold = r.newLineBatch(buildScaffoldVerts(), scaffoldColor)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) newLineBatch(verts []float32, color mgl32.Vec3) lineBatch {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	return lineBatch{vao: vao, vbo: vbo, count: int32(len(verts) / 3), color: color}
}

// Destroy releases every GL object once. Zero handles are skipped, so it is
// safe after a partial init and safe to call exactly once at teardown.
func (r *Renderer) Destroy() {
	for _, b := range []*lineBatch{&r.rails, &r.ties, &r.scaffold} {
		if b.vbo != 0 {
			gl.DeleteBuffers(1, &b.vbo)
			b.vbo = 0
		}
		if b.vao != 0 {
			gl.DeleteVertexArrays(1, &b.vao)
			b.vao = 0
		}
	}
	if r.cartVBO != 0 {
		gl.DeleteBuffers(1, &r.cartVBO)
		r.cartVBO = 0
	}
	if r.cartVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cartVAO)
		r.cartVAO = 0
	}
	for _, id := range []uint32{r.lineProg, r.meshProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	r.lineProg = 0
	r.meshProg = 0
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTrack renders rails, crossties and scaffolding with the line program.
func (r *Renderer) DrawTrack(viewProj mgl32.Mat4) {
	gl.UseProgram(r.lineProg)
	gl.UniformMatrix4fv(r.lineUViewProj, 1, false, &viewProj[0])

	for _, b := range []lineBatch{r.scaffold, r.ties, r.rails} {
		gl.Uniform3f(r.lineUColor, b.color.X(), b.color.Y(), b.color.Z())
		gl.BindVertexArray(b.vao)
		gl.DrawArrays(gl.LINES, 0, b.count)
	}
}

// SetCartMesh uploads the asynchronously loaded cart model. Must run on the
// main thread (GL context). Replacing an existing mesh frees the old buffers.
func (r *Renderer) SetCartMesh(m *Mesh) {
	if r.cartVBO != 0 {
		gl.DeleteBuffers(1, &r.cartVBO)
	}
	if r.cartVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cartVAO)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Verts)*4, gl.Ptr(&m.Verts[0]), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	r.cartVAO = vao
	r.cartVBO = vbo
	r.cartCount = int32(m.VertexCount())
}

// HasCart reports whether the cart mesh has been uploaded yet.
func (r *Renderer) HasCart() bool { return r.cartVAO != 0 }

// DrawCart renders the cart, or no-ops while the mesh is still loading.
func (r *Renderer) DrawCart(viewProj, model mgl32.Mat4) {
	if r.cartVAO == 0 {
		return
	}
	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.meshUViewProj, 1, false, &viewProj[0])
	gl.UniformMatrix4fv(r.meshUModel, 1, false, &model[0])
	gl.BindVertexArray(r.cartVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.cartCount)
}
