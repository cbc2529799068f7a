// Package renderer draws a decoded STL mesh with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/stlview/internal/engine/shader"
	"github.com/Faultbox/stlview/internal/engine/theme"
	"github.com/Faultbox/stlview/internal/logger"
	"github.com/Faultbox/stlview/pkg/math"
	"github.com/Faultbox/stlview/pkg/stl"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// View carries the per-frame camera matrices.
type View struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4

	ShowBounds bool // Outline the model bounding box
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	meshProgram uint32
	uModel      int32
	uView       int32
	uProjection int32
	uKey        int32
	uFill       int32
	uBase       int32

	bgProgram uint32
	bgVAO     uint32
	uCorners  int32

	lineProgram     uint32
	uLineModel      int32
	uLineView       int32
	uLineProjection int32
	uLineColor      int32

	mesh *gpuMesh
}

// gpuMesh is a model uploaded to the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32

	boxVAO, boxVBO uint32 // zero when the bounds are empty
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	// Theme colours are linear; let the driver encode them for display.
	gl.Enable(gl.FRAMEBUFFER_SRGB)

	if err := r.createMeshProgram(); err != nil {
		return nil, fmt.Errorf("failed to create mesh program: %w", err)
	}
	if err := r.createBackground(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create background: %w", err)
	}
	if err := r.createLineProgram(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create line program: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	r.releaseMesh()
	if r.bgVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bgVAO)
	}
	if r.bgProgram != 0 {
		gl.DeleteProgram(r.bgProgram)
	}
	if r.meshProgram != 0 {
		gl.DeleteProgram(r.meshProgram)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload replaces the current mesh with m.
func (r *Renderer) Upload(m *stl.ModelData) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	r.releaseMesh()

	if len(m.Indices) == 0 {
		logger.Warn("model has no triangles", zap.String("name", m.Name))
		return nil
	}

	positions := Positions(m.Vertices)
	g := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if box := BoundsWireframe(m.Bounds); box != nil {
		g.boxVAO, g.boxVBO = uploadLines(box)
	}

	r.mesh = g
	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Uint32("vao", g.vao),
	)
	return nil
}

// Draw renders one frame: the gradient background, then the mesh.
func (r *Renderer) Draw(v View, p theme.Palette) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.drawBackground(p)

	if r.mesh == nil {
		return
	}

	gl.UseProgram(r.meshProgram)
	gl.UniformMatrix4fv(r.uModel, 1, false, v.Model.Ptr())
	gl.UniformMatrix4fv(r.uView, 1, false, v.View.Ptr())
	gl.UniformMatrix4fv(r.uProjection, 1, false, v.Projection.Ptr())
	setColor(r.uKey, p.Key)
	setColor(r.uFill, p.Fill)
	setColor(r.uBase, p.Base)

	gl.BindVertexArray(r.mesh.vao)
	gl.DrawElements(gl.TRIANGLES, r.mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if v.ShowBounds && r.mesh.boxVAO != 0 {
		gl.UseProgram(r.lineProgram)
		gl.UniformMatrix4fv(r.uLineModel, 1, false, v.Model.Ptr())
		gl.UniformMatrix4fv(r.uLineView, 1, false, v.View.Ptr())
		gl.UniformMatrix4fv(r.uLineProjection, 1, false, v.Projection.Ptr())
		setColor(r.uLineColor, p.Key)

		gl.BindVertexArray(r.mesh.boxVAO)
		gl.DrawArrays(gl.LINES, 0, boundsVertexCount)
		gl.BindVertexArray(0)
	}
}

// uploadLines creates a VAO holding x, y, z line endpoints.
func uploadLines(data []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func (r *Renderer) drawBackground(p theme.Palette) {
	var corners [16]float32
	for i, c := range p.Background {
		a := c.Array()
		copy(corners[i*4:], a[:])
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.bgProgram)
	gl.Uniform4fv(r.uCorners, 4, &corners[0])
	gl.BindVertexArray(r.bgVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) createMeshProgram() error {
	program, err := shader.CompileProgram(shader.MeshVertex, shader.MeshFragment)
	if err != nil {
		return err
	}
	r.meshProgram = program
	r.uModel = shader.MustGetUniform(program, "uModel")
	r.uView = shader.MustGetUniform(program, "uView")
	r.uProjection = shader.MustGetUniform(program, "uProjection")
	r.uKey = shader.MustGetUniform(program, "uKey")
	r.uFill = shader.MustGetUniform(program, "uFill")
	r.uBase = shader.MustGetUniform(program, "uBase")

	logger.Debug("shader program created", zap.String("program", "mesh"), zap.Uint32("id", program))
	return nil
}

func (r *Renderer) createBackground() error {
	program, err := shader.CompileProgram(shader.BackgroundVertex, shader.BackgroundFragment)
	if err != nil {
		return err
	}
	r.bgProgram = program
	r.uCorners = shader.MustGetUniform(program, "uCorners")

	// Core profile needs a bound VAO even for attribute-less draws.
	gl.GenVertexArrays(1, &r.bgVAO)

	logger.Debug("shader program created", zap.String("program", "background"), zap.Uint32("id", program))
	return nil
}

func (r *Renderer) createLineProgram() error {
	program, err := shader.CompileProgram(shader.LineVertex, shader.LineFragment)
	if err != nil {
		return err
	}
	r.lineProgram = program
	r.uLineModel = shader.MustGetUniform(program, "uModel")
	r.uLineView = shader.MustGetUniform(program, "uView")
	r.uLineProjection = shader.MustGetUniform(program, "uProjection")
	r.uLineColor = shader.MustGetUniform(program, "uColor")
	return nil
}

func (r *Renderer) releaseMesh() {
	if r.mesh == nil {
		return
	}
	gl.DeleteVertexArrays(1, &r.mesh.vao)
	gl.DeleteBuffers(1, &r.mesh.vbo)
	gl.DeleteBuffers(1, &r.mesh.ebo)
	if r.mesh.boxVAO != 0 {
		gl.DeleteVertexArrays(1, &r.mesh.boxVAO)
		gl.DeleteBuffers(1, &r.mesh.boxVBO)
	}
	r.mesh = nil
}

func setColor(loc int32, c theme.Color) {
	gl.Uniform4f(loc, c.R, c.G, c.B, c.A)
}

// Positions flattens vertices into the interleaved x, y, z layout of the
// vertex buffer.
func Positions(vs []stl.Vertex) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}
