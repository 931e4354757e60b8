// Package mesh loads the displayed model and prepares it for GPU upload.
package mesh

import (
	"fmt"
	gomath "math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/gimbal/pkg/math"
)

// Vertex is one corner of a triangle.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh is an unindexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Bounds   Bounds
}

// Load reads a mesh file, choosing the parser by extension.
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		m, err := LoadOBJ(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	case ".gltf", ".glb":
		return OpenGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Center returns the middle of the bounding box.
func (m *Mesh) Center() [3]float32 {
	return [3]float32{
		(m.Bounds.Min[0] + m.Bounds.Max[0]) / 2,
		(m.Bounds.Min[1] + m.Bounds.Max[1]) / 2,
		(m.Bounds.Min[2] + m.Bounds.Max[2]) / 2,
	}
}

// Radius returns the largest distance from Center to a vertex.
func (m *Mesh) Radius() float32 {
	c := m.Center()
	var r2 float32
	for _, v := range m.Vertices {
		dx := v.Position[0] - c[0]
		dy := v.Position[1] - c[1]
		dz := v.Position[2] - c[2]
		if d := dx*dx + dy*dy + dz*dz; d > r2 {
			r2 = d
		}
	}
	return float32(gomath.Sqrt(float64(r2)))
}

// FitTransform returns a matrix that centers the mesh on the origin and
// scales it to the given radius. An empty or degenerate mesh only gets
// centered.
func (m *Mesh) FitTransform(radius float32) math.Mat4 {
	c := m.Center()
	center := math.Translate(-c[0], -c[1], -c[2])
	r := m.Radius()
	if r < 1e-6 {
		return center
	}
	s := radius / r
	return math.Scale(s, s, s).Mul(center)
}

// Interleaved returns positions and normals packed as
// [px, py, pz, nx, ny, nz, ...] for a single vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
	}
	return out
}

func newBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

func computeBounds(vs []Vertex) Bounds {
	if len(vs) == 0 {
		return Bounds{}
	}
	b := newBounds()
	for _, v := range vs {
		updateBounds(&b, v.Position)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// faceNormal returns the unit normal of triangle abc with counter-clockwise
// winding.
func faceNormal(a, b, c [3]float32) [3]float32 {
	ab := math.Vec3{X: b[0] - a[0], Y: b[1] - a[1], Z: b[2] - a[2]}
	ac := math.Vec3{X: c[0] - a[0], Y: c[1] - a[1], Z: c[2] - a[2]}
	n := ab.Cross(ac)
	if n.Length() < 1e-12 {
		return [3]float32{0, 1, 0}
	}
	return n.Normalize().Array()
}
