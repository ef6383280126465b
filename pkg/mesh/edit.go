package mesh

import (
	"github.com/philipparndt/shipgen/pkg/geometry"
)

// Extrusion is the result of extruding a single face
type Extrusion struct {
	Face  *Face
	Walls []*Face
}

// ExtrudeFace extrudes a face on its own: the loop is duplicated into a new
// face, each edge gets a quad wall and the original face is removed. The new
// face starts in place; move it with Translate. Invalid faces yield a zero Extrusion.
func (m *Mesh) ExtrudeFace(f *Face) Extrusion {
	if !f.IsValid() {
		return Extrusion{}
	}
	n := len(f.Verts)
	top := make([]*Vert, n)
	for i, v := range f.Verts {
		top[i] = m.AddVert(v.Co)
	}

	walls := make([]*Face, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		walls = append(walls, m.AddFace([]*Vert{f.Verts[i], f.Verts[j], top[j], top[i]}, f.Material))
	}
	extruded := m.AddFace(top, f.Material)
	m.RemoveFace(f)
	return Extrusion{Face: extruded, Walls: walls}
}

// Translate moves the vertices by offset
func Translate(verts []*Vert, offset geometry.Vector3) {
	for _, v := range verts {
		v.Co = v.Co.Add(offset)
	}
}

// Scale scales the vertices component-wise in the coordinate space given by
// space, which maps world positions into that space
func Scale(verts []*Vert, factor geometry.Vector3, space geometry.Matrix4) {
	back := space.Inverse()
	for _, v := range verts {
		local := space.TransformPoint(v.Co).Scale(factor)
		v.Co = back.TransformPoint(local)
	}
}

// Rotate applies the linear part of rotation to the vertices around center
func Rotate(verts []*Vert, center geometry.Vector3, rotation geometry.Matrix4) {
	for _, v := range verts {
		v.Co = rotation.TransformDirection(v.Co.Sub(center)).Add(center)
	}
}

// SubdivideFace splits a quad into a (cuts+1)x(cuts+1) grid of quads and
// removes it. Interior vertices are displaced along the normal by up to
// fractal times the mean edge size. Faces that are not valid quads are left
// alone and yield nil.
func (m *Mesh) SubdivideFace(f *Face, cuts int, fractal float64) []*Face {
	if !f.IsValid() || len(f.Verts) != 4 || cuts < 1 {
		return nil
	}
	n := cuts + 1
	c := f.Positions()
	normal := f.Normal()
	w, h := f.Size()
	amplitude := fractal * (w + h) / 2

	grid := make([][]*Vert, n+1)
	for j := 0; j <= n; j++ {
		grid[j] = make([]*Vert, n+1)
		for i := 0; i <= n; i++ {
			switch {
			case i == 0 && j == 0:
				grid[j][i] = f.Verts[0]
			case i == n && j == 0:
				grid[j][i] = f.Verts[1]
			case i == n && j == n:
				grid[j][i] = f.Verts[2]
			case i == 0 && j == n:
				grid[j][i] = f.Verts[3]
			default:
				u, t := float64(i)/float64(n), float64(j)/float64(n)
				p := c[0].Lerp(c[1], u).Lerp(c[3].Lerp(c[2], u), t)
				if i > 0 && i < n && j > 0 && j < n && amplitude > 0 {
					p = p.Add(normal.Mul((m.jitter.Float64()*2 - 1) * amplitude))
				}
				grid[j][i] = m.AddVert(p)
			}
		}
	}

	faces := make([]*Face, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			faces = append(faces, m.AddFace([]*Vert{grid[j][i], grid[j][i+1], grid[j+1][i+1], grid[j+1][i]}, f.Material))
		}
	}
	m.RemoveFace(f)
	return faces
}

// Centroid returns the area-weighted surface centroid of the mesh
func (m *Mesh) Centroid() geometry.Vector3 {
	var weighted geometry.Vector3
	total := 0.0
	for _, f := range m.faces {
		if !f.IsValid() {
			continue
		}
		for i := 1; i+1 < len(f.Verts); i++ {
			t := geometry.NewTriangle(geometry.Vector3{}, f.Verts[0].Co, f.Verts[i].Co, f.Verts[i+1].Co)
			a := t.Area()
			weighted = weighted.Add(t.Center().Mul(a))
			total += a
		}
	}
	if total > 0 {
		return weighted.Mul(1 / total)
	}

	var sum geometry.Vector3
	verts := m.Verts()
	if len(verts) == 0 {
		return sum
	}
	for _, v := range verts {
		sum = sum.Add(v.Co)
	}
	return sum.Mul(1 / float64(len(verts)))
}

// Recenter moves the mesh so its centroid sits at the origin and returns the
// offset that was removed
func (m *Mesh) Recenter() geometry.Vector3 {
	c := m.Centroid()
	Translate(m.Verts(), c.Negate())
	return c
}

// Triangulate fan-triangulates every live face. Each triangle carries the
// face normal and the material tag in its attribute word.
func (m *Mesh) Triangulate() []geometry.Triangle {
	tris := make([]geometry.Triangle, 0, len(m.faces)*2)
	for _, f := range m.Faces() {
		if !f.IsValid() {
			continue
		}
		normal := f.Normal()
		for i := 1; i+1 < len(f.Verts); i++ {
			t := geometry.NewTriangle(normal, f.Verts[0].Co, f.Verts[i].Co, f.Verts[i+1].Co)
			t.Attribute = uint16(f.Material)
			tris = append(tris, t)
		}
	}
	return tris
}
