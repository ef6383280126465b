package mesh

import (
	"github.com/philipparndt/shipgen/pkg/geometry"
)

// Symmetrize mirrors the negative half of the mesh onto the positive half
// across the plane through the origin perpendicular to axis. Faces crossing
// the plane are clipped, vertices within MergeDistance of the plane are
// welded onto it and shared by both halves. Faces lying in the plane are
// kept once.
func (m *Mesh) Symmetrize(axis geometry.Axis) {
	side := func(v *Vert) int {
		c := v.Co.Component(axis)
		switch {
		case c > MergeDistance:
			return 1
		case c < -MergeDistance:
			return -1
		}
		return 0
	}

	cuts := make(map[[2]int]*Vert)
	for _, f := range m.Faces() {
		neg, pos := false, false
		for _, v := range f.Verts {
			switch side(v) {
			case -1:
				neg = true
			case 1:
				pos = true
			}
		}
		switch {
		case !pos:
			continue
		case !neg:
			m.RemoveFace(f)
			continue
		}

		clipped := m.clipLoop(f.Verts, axis, side, cuts)
		if len(clipped) < 3 {
			m.RemoveFace(f)
			continue
		}
		f.Verts = clipped
	}

	for _, v := range m.Verts() {
		switch side(v) {
		case 1:
			m.removeVert(v)
		case 0:
			v.Co = v.Co.WithComponent(axis, 0)
		}
	}

	mirrored := make(map[*Vert]*Vert)
	mirror := func(v *Vert) *Vert {
		if side(v) == 0 {
			return v
		}
		if mv, ok := mirrored[v]; ok {
			return mv
		}
		mv := m.AddVert(v.Co.WithComponent(axis, -v.Co.Component(axis)))
		mirrored[v] = mv
		return mv
	}

	for _, f := range m.Faces() {
		onPlane := true
		for _, v := range f.Verts {
			if side(v) != 0 {
				onPlane = false
				break
			}
		}
		if onPlane {
			continue
		}
		// reversed winding, starting at the same corner so fans stay mirrored
		n := len(f.Verts)
		loop := make([]*Vert, n)
		for i, v := range f.Verts {
			loop[(n-i)%n] = mirror(v)
		}
		m.AddFace(loop, f.Material)
	}
}

// clipLoop keeps the part of loop on the negative side of the plane,
// inserting plane vertices shared between neighbouring faces through cuts
func (m *Mesh) clipLoop(loop []*Vert, axis geometry.Axis, side func(*Vert) int, cuts map[[2]int]*Vert) []*Vert {
	out := make([]*Vert, 0, len(loop)+2)
	n := len(loop)
	for i := 0; i < n; i++ {
		cur, next := loop[i], loop[(i+1)%n]
		cs, ns := side(cur), side(next)
		if cs <= 0 {
			out = append(out, cur)
		}
		if cs*ns < 0 {
			out = append(out, m.planeCut(cur, next, axis, cuts))
		}
	}
	return dedupeLoop(out)
}

func (m *Mesh) planeCut(a, b *Vert, axis geometry.Axis, cuts map[[2]int]*Vert) *Vert {
	key := [2]int{min(a.id, b.id), max(a.id, b.id)}
	if v, ok := cuts[key]; ok {
		return v
	}
	ca, cb := a.Co.Component(axis), b.Co.Component(axis)
	p := a.Co.Lerp(b.Co, ca/(ca-cb)).WithComponent(axis, 0)
	v := m.AddVert(p)
	cuts[key] = v
	return v
}
