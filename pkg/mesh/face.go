package mesh

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/geometry"
)

// Positions returns the coordinates of the face loop
func (f *Face) Positions() []geometry.Vector3 {
	points := make([]geometry.Vector3, len(f.Verts))
	for i, v := range f.Verts {
		points[i] = v.Co
	}
	return points
}

// newell returns the un-normalised Newell normal, twice the area vector
func (f *Face) newell() geometry.Vector3 {
	var n geometry.Vector3
	for i, v := range f.Verts {
		cur := v.Co
		next := f.Verts[(i+1)%len(f.Verts)].Co
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

// Normal returns the unit face normal, zero for degenerate faces
func (f *Face) Normal() geometry.Vector3 {
	if len(f.Verts) < 3 {
		return geometry.Vector3{}
	}
	return f.newell().Normalize()
}

// Area returns the area of the (planar) face
func (f *Face) Area() float64 {
	if len(f.Verts) < 3 {
		return 0
	}
	return f.newell().Length() / 2
}

// CenterBounds returns the centre of the bounding box of the face loop
func (f *Face) CenterBounds() geometry.Vector3 {
	return geometry.BoundsOf(f.Positions()...).Center()
}

// CenterMean returns the average of the face loop positions
func (f *Face) CenterMean() geometry.Vector3 {
	var sum geometry.Vector3
	if len(f.Verts) == 0 {
		return sum
	}
	for _, v := range f.Verts {
		sum = sum.Add(v.Co)
	}
	return sum.Mul(1 / float64(len(f.Verts)))
}

// Size returns |v0-v1| and |v2-v1|, or -1, -1 when the face is invalid
// or has fewer than four vertices
func (f *Face) Size() (width, height float64) {
	if !f.IsValid() || len(f.Verts) < 4 {
		return -1, -1
	}
	width = f.Verts[0].Co.Distance(f.Verts[1].Co)
	height = f.Verts[2].Co.Distance(f.Verts[1].Co)
	return width, height
}

// AspectRatio compares the first two edges of the loop. The result is
// always at least 1; invalid faces report 1.
func (f *Face) AspectRatio() float64 {
	if !f.IsValid() {
		return 1
	}
	e0 := f.Verts[0].Co.Distance(f.Verts[1].Co)
	e1 := f.Verts[1].Co.Distance(f.Verts[2].Co)
	if e1 == 0 {
		if e0 == 0 {
			return 1
		}
		return math.Inf(1)
	}
	ratio := math.Max(0.01, e0/e1)
	if ratio < 1 {
		ratio = 1 / ratio
	}
	return ratio
}

// Matrix returns the orientation frame of the face anchored at its bounds centre
func (f *Face) Matrix() geometry.Matrix4 {
	return f.MatrixAt(f.CenterBounds())
}

// MatrixAt returns the orientation frame of the face anchored at pos.
// Local X follows the first edge, local Z points into the face (-normal).
func (f *Face) MatrixAt(pos geometry.Vector3) geometry.Matrix4 {
	if len(f.Verts) < 3 {
		return geometry.Translation(pos)
	}
	x := f.Verts[1].Co.Sub(f.Verts[0].Co).Normalize()
	z := f.Normal().Negate()
	y := z.Cross(x)
	return geometry.FromBasis(x, y, z, pos)
}
