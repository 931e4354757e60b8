package mesh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF decodes a glTF or GLB stream. Buffers must be embedded (GLB
// binary chunk or data URIs); use OpenGLTF for files with external buffers.
func LoadGLTF(r io.Reader) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}
	return meshFromDocument(doc)
}

// LoadGLTFData is LoadGLTF over an in-memory file.
func LoadGLTFData(data []byte) (*Mesh, error) {
	return LoadGLTF(bytes.NewReader(data))
}

// OpenGLTF reads a glTF file from disk, resolving external buffers relative
// to it.
func OpenGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}
	return meshFromDocument(doc)
}

// meshFromDocument flattens the triangle primitives of the first mesh.
func meshFromDocument(doc *gltf.Document) (*Mesh, error) {
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("gltf document has no meshes")
	}

	var verts []Vertex
	for pi, p := range doc.Meshes[0].Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := p.Attributes[gltf.POSITION]
		if !ok {
			return nil, fmt.Errorf("primitive %d has no POSITION attribute", pi)
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("primitive %d positions: %w", pi, err)
		}

		var normals [][3]float32
		if nIdx, ok := p.Attributes[gltf.NORMAL]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("primitive %d normals: %w", pi, err)
			}
			if len(normals) != len(positions) {
				return nil, fmt.Errorf("primitive %d has %d normals for %d positions", pi, len(normals), len(positions))
			}
		}

		var indices []uint32
		if p.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("primitive %d indices: %w", pi, err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		if len(indices)%3 != 0 {
			return nil, fmt.Errorf("primitive %d has %d indices, not a multiple of 3", pi, len(indices))
		}

		for t := 0; t+2 < len(indices); t += 3 {
			tri := [3]uint32{indices[t], indices[t+1], indices[t+2]}
			for _, idx := range tri {
				if int(idx) >= len(positions) {
					return nil, fmt.Errorf("primitive %d index %d out of range (have %d)", pi, idx, len(positions))
				}
			}
			var face [3]float32
			if normals == nil {
				face = faceNormal(positions[tri[0]], positions[tri[1]], positions[tri[2]])
			}
			for _, idx := range tri {
				v := Vertex{Position: positions[idx], Normal: face}
				if normals != nil {
					v.Normal = normals[idx]
				}
				verts = append(verts, v)
			}
		}
	}

	if len(verts) == 0 {
		return nil, fmt.Errorf("gltf mesh has no triangles")
	}
	return &Mesh{Vertices: verts, Bounds: computeBounds(verts)}, nil
}
