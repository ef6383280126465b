package mesh

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
)

// CreateCube adds an axis-aligned cube of the given edge length centred on the origin
func (m *Mesh) CreateCube(size float64) Geometry {
	h := size / 2
	corner := func(x, y, z float64) *Vert {
		return m.AddVert(geometry.NewVector3(x*h, y*h, z*h))
	}
	// index bits: x=4, y=2, z=1
	v := []*Vert{
		corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, -1), corner(-1, 1, 1),
		corner(1, -1, -1), corner(1, -1, 1), corner(1, 1, -1), corner(1, 1, 1),
	}
	loops := [6][4]int{
		{0, 1, 3, 2}, // -X
		{2, 3, 7, 6}, // +Y
		{4, 6, 7, 5}, // +X
		{0, 4, 5, 1}, // -Y
		{0, 2, 6, 4}, // -Z
		{1, 5, 7, 3}, // +Z
	}
	g := Geometry{Verts: v}
	for _, l := range loops {
		g.Faces = append(g.Faces, m.AddFace([]*Vert{v[l[0]], v[l[1]], v[l[2]], v[l[3]]}, material.Hull))
	}
	return g
}

// CreateCone adds a cone along the local Z axis of transform. radius1 sits at
// -depth/2 and radius2 at +depth/2; a zero radius collapses that end to an apex.
func (m *Mesh) CreateCone(segments int, radius1, radius2, depth float64, transform geometry.Matrix4, capEnds bool) Geometry {
	var g Geometry
	if segments < 3 || (radius1 == 0 && radius2 == 0) {
		return g
	}

	ring := func(r, z float64) []*Vert {
		if r == 0 {
			v := m.AddVert(transform.TransformPoint(geometry.NewVector3(0, 0, z)))
			g.Verts = append(g.Verts, v)
			return []*Vert{v}
		}
		vs := make([]*Vert, segments)
		for k := range vs {
			a := 2 * math.Pi * float64(k) / float64(segments)
			vs[k] = m.AddVert(transform.TransformPoint(geometry.NewVector3(r*math.Cos(a), r*math.Sin(a), z)))
		}
		g.Verts = append(g.Verts, vs...)
		return vs
	}
	at := func(r []*Vert, k int) *Vert {
		return r[k%len(r)]
	}

	bottom := ring(radius1, -depth/2)
	top := ring(radius2, depth/2)

	for k := 0; k < segments; k++ {
		loop := dedupeLoop([]*Vert{at(bottom, k), at(bottom, k+1), at(top, k+1), at(top, k)})
		if len(loop) >= 3 {
			g.Faces = append(g.Faces, m.AddFace(loop, material.Hull))
		}
	}

	if capEnds {
		if len(bottom) > 1 {
			loop := make([]*Vert, len(bottom))
			for i, v := range bottom {
				loop[len(bottom)-1-i] = v
			}
			g.Faces = append(g.Faces, m.AddFace(loop, material.Hull))
		}
		if len(top) > 1 {
			g.Faces = append(g.Faces, m.AddFace(top, material.Hull))
		}
	}
	return g
}

var icosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosahedronPoints() []geometry.Vector3 {
	t := (1 + math.Sqrt(5)) / 2
	raw := []geometry.Vector3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	for i := range raw {
		raw[i] = raw[i].Normalize()
	}
	return raw
}

// CreateIcosphere adds an icosahedron refined subdivisions times, projected
// onto a sphere of the given radius and placed by transform
func (m *Mesh) CreateIcosphere(subdivisions int, radius float64, transform geometry.Matrix4) Geometry {
	points := icosahedronPoints()
	tris := icosahedronFaces[:]

	for range max(subdivisions, 0) {
		midpoints := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{min(a, b), max(a, b)}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			points = append(points, points[a].Add(points[b]).Normalize())
			midpoints[key] = len(points) - 1
			return len(points) - 1
		}
		next := make([][3]int, 0, len(tris)*4)
		for _, t := range tris {
			ab := midpoint(t[0], t[1])
			bc := midpoint(t[1], t[2])
			ca := midpoint(t[2], t[0])
			next = append(next,
				[3]int{t[0], ab, ca},
				[3]int{t[1], bc, ab},
				[3]int{t[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		tris = next
	}

	g := Geometry{Verts: make([]*Vert, len(points))}
	for i, p := range points {
		g.Verts[i] = m.AddVert(transform.TransformPoint(p.Mul(radius)))
	}
	for _, t := range tris {
		g.Faces = append(g.Faces, m.AddFace([]*Vert{g.Verts[t[0]], g.Verts[t[1]], g.Verts[t[2]]}, material.Hull))
	}
	return g
}

// dedupeLoop drops consecutive repeats of the same vertex, including across the wrap
func dedupeLoop(loop []*Vert) []*Vert {
	out := make([]*Vert, 0, len(loop))
	for _, v := range loop {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
