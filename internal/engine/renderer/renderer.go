// Package renderer draws the demo's meshes and axis gizmos with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gimbal/internal/engine/lighting"
	"github.com/Faultbox/gimbal/internal/engine/mesh"
	"github.com/Faultbox/gimbal/internal/engine/shader"
	"github.com/Faultbox/gimbal/internal/engine/shader/shaders"
	"github.com/Faultbox/gimbal/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	LineWidth  float32 // gizmo line width; core profiles may clamp it to 1
}

// Info describes the GL implementation.
type Info struct {
	Version  string
	Vendor   string
	Renderer string
	GLSL     string
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	lights  *lighting.LightSet

	meshVAO, meshVBO uint32
	meshCount        int32
	meshFit          math.Mat4

	axisVAO, axisVBO uint32
}

const floatSize = int32(unsafe.Sizeof(float32(0)))

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config:  cfg,
		log:     log,
		lights:  lighting.NewLightSet(),
		meshFit: math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := r.Info()
	log.Info("OpenGL initialized",
		zap.String("version", info.Version),
		zap.String("vendor", info.Vendor),
		zap.String("renderer", info.Renderer),
		zap.String("glsl", info.GLSL),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.SCISSOR_TEST)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = shader.NewProgram(shaders.ObjectVertexShader, shaders.ObjectFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create object shader: %w", err)
	}
	log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.createAxis()
	return r, nil
}

// Info queries the GL version strings.
func (r *Renderer) Info() Info {
	return Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.deleteMesh()
	if r.axisVAO != 0 {
		gl.DeleteVertexArrays(1, &r.axisVAO)
		gl.DeleteBuffers(1, &r.axisVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize records the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the framebuffer size last passed to Resize.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// SetLights selects the lights used by SubmitDraw.
func (r *Renderer) SetLights(l *lighting.LightSet) {
	r.lights = l
}

// UploadMesh replaces the drawn mesh. fit is applied before every
// submitted transform, so it can center and scale the model.
func (r *Renderer) UploadMesh(m *mesh.Mesh, fit math.Mat4) {
	r.deleteMesh()

	data := m.Interleaved()
	gl.GenVertexArrays(1, &r.meshVAO)
	gl.GenBuffers(1, &r.meshVBO)
	gl.BindVertexArray(r.meshVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(floatSize), gl.Ptr(data), gl.STATIC_DRAW)

	stride := 6 * floatSize
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	r.meshCount = int32(len(m.Vertices))
	r.meshFit = fit
	r.log.Info("mesh uploaded",
		zap.Int("triangles", m.TriangleCount()),
		zap.Float32("radius", m.Radius()),
	)
}

// HasMesh reports whether a mesh is uploaded.
func (r *Renderer) HasMesh() bool {
	return r.meshCount > 0
}

func (r *Renderer) deleteMesh() {
	if r.meshVAO != 0 {
		gl.DeleteVertexArrays(1, &r.meshVAO)
		gl.DeleteBuffers(1, &r.meshVBO)
		r.meshVAO, r.meshVBO, r.meshCount = 0, 0, 0
	}
}

// createAxis builds a unit line along +X; the gizmo draws it three times.
func (r *Renderer) createAxis() {
	line := []float32{
		0, 0, 0, 0, 1, 0,
		1, 0, 0, 0, 1, 0,
	}
	gl.GenVertexArrays(1, &r.axisVAO)
	gl.GenBuffers(1, &r.axisVBO)
	gl.BindVertexArray(r.axisVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.axisVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(line)*int(floatSize), gl.Ptr(line), gl.STATIC_DRAW)

	stride := 6 * floatSize
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)
}

// Begin clears the whole framebuffer.
func (r *Renderer) Begin() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Scissor(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport restricts drawing to v.
func (r *Renderer) SetViewport(v Viewport) {
	gl.Viewport(v.X, v.Y, v.W, v.H)
	gl.Scissor(v.X, v.Y, v.W, v.H)
}

// End unbinds per-frame state.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) setMatrices(world, view, proj math.Mat4) {
	r.program.SetMat4("WorldMatrix", world)
	r.program.SetMat4("ViewMatrix", view)
	r.program.SetMat4("ModelViewProjectionMatrix", proj.Mul(view).Mul(world))
}

func (r *Renderer) setLightUniforms(count int32) {
	r.program.SetInt("LightCount", count)
	if count == 0 {
		return
	}
	r.program.SetVec4Array("LightPosition", r.lights.Positions())
	r.program.SetVec4Array("LightAmbient", r.lights.Ambients())
	r.program.SetVec4Array("LightDiffuse", r.lights.Diffuses())
	r.program.SetVec4Array("LightSpecular", r.lights.Speculars())
	r.program.SetVec3Array("SpotDirection", r.lights.SpotDirections())
	r.program.SetFloatArray("SpotExponent", r.lights.SpotExponents())
	r.program.SetFloatArray("SpotCosCutoff", r.lights.SpotCosCutoffs())
}

// SubmitDraw draws the mesh with the given world transform, camera
// matrices and diffuse color in the current viewport.
func (r *Renderer) SubmitDraw(transform, view, proj math.Mat4, color [4]float32) {
	if r.meshCount == 0 {
		return
	}
	r.program.Use()
	r.setMatrices(transform.Mul(r.meshFit), view, proj)
	r.program.SetVec4("Color", color)
	r.setLightUniforms(r.lights.ActiveCount())

	gl.BindVertexArray(r.meshVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.meshCount)
}

// axisColors are X, Y and Z.
var axisColors = [3][4]float32{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
}

// DrawAxes draws unlit X, Y and Z lines of the given length from the origin.
func (r *Renderer) DrawAxes(length float32, view, proj math.Mat4) {
	r.program.Use()
	r.setLightUniforms(0)
	if r.config.LineWidth > 0 {
		gl.LineWidth(r.config.LineWidth)
	}

	scale := math.Scale(length, length, length)
	turns := [3]math.Mat4{
		math.Identity(),
		math.RotateZ(math.Radians(90)),
		math.RotateY(math.Radians(-90)),
	}

	gl.BindVertexArray(r.axisVAO)
	for i, turn := range turns {
		r.setMatrices(scale.Mul(turn), view, proj)
		r.program.SetVec4("Color", axisColors[i])
		gl.DrawArrays(gl.LINES, 0, 2)
	}
	gl.LineWidth(1)
}

// ReadPixels reads the whole framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
