package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// corner indexes one face corner; -1 marks an absent texture or normal.
type corner struct {
	v, vt, vn int
}

// LoadOBJ parses Wavefront OBJ geometry. Polygons are fan-triangulated and
// corners without a normal get their triangle's face normal. Materials,
// groups and texture coordinates are ignored beyond index validation.
func LoadOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		texCount  int
		verts     []Vertex
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: texture coordinate needs at least 1 value", lineNo)
			}
			texCount++
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", lineNo, len(fields)-1)
			}
			corners := make([]corner, len(fields)-1)
			for i, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), texCount, len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners[i] = c
			}
			for i := 1; i+1 < len(corners); i++ {
				verts = appendTriangle(verts, positions, normals, corners[0], corners[i], corners[i+1])
			}
		default:
			// o, g, s, usemtl, mtllib and friends carry no geometry
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(verts) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return &Mesh{Vertices: verts, Bounds: computeBounds(verts)}, nil
}

func appendTriangle(dst []Vertex, positions, normals [][3]float32, a, b, c corner) []Vertex {
	tri := [3]corner{a, b, c}
	var face [3]float32
	needFace := false
	for _, k := range tri {
		if k.vn < 0 {
			needFace = true
		}
	}
	if needFace {
		face = faceNormal(positions[a.v], positions[b.v], positions[c.v])
	}

	for _, k := range tri {
		v := Vertex{Position: positions[k.v], Normal: face}
		if k.vn >= 0 {
			v.Normal = normals[k.vn]
		}
		dst = append(dst, v)
	}
	return dst
}

func parseVec3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("need 3 values, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn" into zero-based
// indices. Negative indices count back from the most recent element.
func parseCorner(tok string, nv, nt, nn int) (corner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("malformed face corner %q", tok)
	}

	c := corner{vt: -1, vn: -1}
	var err error
	if c.v, err = resolveIndex(parts[0], nv); err != nil {
		return corner{}, fmt.Errorf("corner %q vertex: %w", tok, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], nt); err != nil {
			return corner{}, fmt.Errorf("corner %q texture: %w", tok, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], nn); err != nil {
			return corner{}, fmt.Errorf("corner %q normal: %w", tok, err)
		}
	}
	return c, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}
