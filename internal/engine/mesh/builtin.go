package mesh

// Glider returns a small aircraft-like model built from boxes: a fuselage
// along Z with the nose at -Z, wings along X and a tail fin along +Y. Each
// axis looks different, so pitch, yaw and roll are all visible.
func Glider() *Mesh {
	var verts []Vertex
	verts = appendBox(verts, [3]float32{-0.6, -0.6, -5}, [3]float32{0.6, 0.6, 4})  // fuselage
	verts = appendBox(verts, [3]float32{-0.3, -0.3, -6}, [3]float32{0.3, 0.3, -5}) // nose
	verts = appendBox(verts, [3]float32{-6, -0.1, -1.5}, [3]float32{6, 0.1, 0.5})  // wings
	verts = appendBox(verts, [3]float32{-2, -0.1, 3}, [3]float32{2, 0.1, 4})       // tailplane
	verts = appendBox(verts, [3]float32{-0.1, 0.6, 2.8}, [3]float32{0.1, 2.6, 4})  // fin
	return &Mesh{Vertices: verts, Bounds: computeBounds(verts)}
}

// appendBox adds an axis-aligned box with outward normals and
// counter-clockwise winding.
func appendBox(dst []Vertex, lo, hi [3]float32) []Vertex {
	corner := func(x, y, z int) [3]float32 {
		pick := func(axis, bit int) float32 {
			if bit == 0 {
				return lo[axis]
			}
			return hi[axis]
		}
		return [3]float32{pick(0, x), pick(1, y), pick(2, z)}
	}

	faces := []struct {
		n       [3]float32
		a, b, c [3]int // three corners in CCW order; the fourth is a+c-b
	}{
		{[3]float32{1, 0, 0}, [3]int{1, 0, 1}, [3]int{1, 0, 0}, [3]int{1, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]int{0, 0, 0}, [3]int{0, 0, 1}, [3]int{0, 1, 1}},
		{[3]float32{0, 1, 0}, [3]int{0, 1, 1}, [3]int{1, 1, 1}, [3]int{1, 1, 0}},
		{[3]float32{0, -1, 0}, [3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{1, 0, 1}},
		{[3]float32{0, 0, 1}, [3]int{0, 0, 1}, [3]int{1, 0, 1}, [3]int{1, 1, 1}},
		{[3]float32{0, 0, -1}, [3]int{1, 0, 0}, [3]int{0, 0, 0}, [3]int{0, 1, 0}},
	}

	for _, f := range faces {
		d := [3]int{f.a[0] + f.c[0] - f.b[0], f.a[1] + f.c[1] - f.b[1], f.a[2] + f.c[2] - f.b[2]}
		pa := corner(f.a[0], f.a[1], f.a[2])
		pb := corner(f.b[0], f.b[1], f.b[2])
		pc := corner(f.c[0], f.c[1], f.c[2])
		pd := corner(d[0], d[1], d[2])
		dst = append(dst,
			Vertex{pa, f.n}, Vertex{pb, f.n}, Vertex{pc, f.n},
			Vertex{pa, f.n}, Vertex{pc, f.n}, Vertex{pd, f.n},
		)
	}
	return dst
}
