package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func faceWithNormal(t *testing.T, m *Mesh, normal geometry.Vector3) *Face {
	t.Helper()
	for _, f := range m.Faces() {
		if f.Normal().Dot(normal) > 0.99 {
			return f
		}
	}
	t.Fatalf("no face with normal %v", normal)
	return nil
}

func TestCreateCube(t *testing.T) {
	m := New()
	g := m.CreateCube(1)

	assert.Len(t, g.Verts, 8)
	assert.Len(t, g.Faces, 6)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())

	for _, f := range m.Faces() {
		assert.Greater(t, f.Normal().Dot(f.CenterBounds()), 0.0, "cube faces must point outward")
		assert.InDelta(t, 1.0, f.Area(), 1e-9)
		assert.Equal(t, material.Hull, f.Material)
	}
	assert.InDelta(t, 1.0, m.Bounds().Size().X, 1e-12)
}

func TestFaceSizeAndAspectRatio(t *testing.T) {
	m := New()
	quad := m.AddFace([]*Vert{
		m.AddVert(geometry.NewVector3(0, 0, 0)),
		m.AddVert(geometry.NewVector3(2, 0, 0)),
		m.AddVert(geometry.NewVector3(2, 1, 0)),
		m.AddVert(geometry.NewVector3(0, 1, 0)),
	}, material.Hull)

	w, h := quad.Size()
	assert.InDelta(t, 2.0, w, 1e-12)
	assert.InDelta(t, 1.0, h, 1e-12)
	assert.InDelta(t, 2.0, quad.AspectRatio(), 1e-12)

	tri := m.AddFace([]*Vert{
		m.AddVert(geometry.NewVector3(0, 0, 0)),
		m.AddVert(geometry.NewVector3(1, 0, 0)),
		m.AddVert(geometry.NewVector3(0, 4, 0)),
	}, material.Hull)
	w, h = tri.Size()
	assert.Equal(t, -1.0, w)
	assert.Equal(t, -1.0, h)
	assert.GreaterOrEqual(t, tri.AspectRatio(), 1.0)

	m.RemoveFace(quad)
	assert.False(t, quad.IsValid())
	assert.Equal(t, 1.0, quad.AspectRatio())
	w, _ = quad.Size()
	assert.Equal(t, -1.0, w)
}

func TestFaceMatrix(t *testing.T) {
	m := New()
	m.CreateCube(2)
	top := faceWithNormal(t, m, geometry.NewVector3(0, 0, 1))

	frame := top.Matrix()
	assert.InDelta(t, 0, frame.Origin().Distance(geometry.NewVector3(0, 0, 1)), 1e-12)

	z := frame.TransformDirection(geometry.NewVector3(0, 0, 1))
	assert.InDelta(t, 0, z.Distance(top.Normal().Negate()), 1e-12)

	x := frame.TransformDirection(geometry.NewVector3(1, 0, 0))
	y := frame.TransformDirection(geometry.NewVector3(0, 1, 0))
	assert.InDelta(t, 0, x.Dot(y), 1e-12)
	assert.InDelta(t, 1, y.Length(), 1e-12)
	assert.InDelta(t, 0, x.Cross(y).Distance(z), 1e-12)
}

func TestExtrudeFace(t *testing.T) {
	m := New()
	m.CreateCube(1)
	front := faceWithNormal(t, m, geometry.NewVector3(1, 0, 0))
	front.Material = material.HullDark

	ex := m.ExtrudeFace(front)
	require.NotNil(t, ex.Face)
	assert.Len(t, ex.Walls, 4)
	assert.False(t, front.IsValid())
	assert.Equal(t, 10, m.FaceCount())
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, material.HullDark, ex.Face.Material)

	Translate(ex.Face.Verts, ex.Face.Normal().Mul(0.5))
	assert.InDelta(t, 1.0, ex.Face.CenterBounds().X, 1e-12)
	for _, wall := range ex.Walls {
		assert.InDelta(t, 0, wall.Normal().X, 1e-12)
		assert.InDelta(t, 0.5, wall.Area(), 1e-12)
	}

	empty := m.ExtrudeFace(front)
	assert.Nil(t, empty.Face)
}

func TestScaleInFaceSpace(t *testing.T) {
	m := New()
	m.CreateCube(1)
	top := faceWithNormal(t, m, geometry.NewVector3(0, 0, 1))
	center := top.CenterBounds()

	Scale(top.Verts, geometry.NewVector3(2, 2, 2), top.Matrix().Inverse())

	assert.InDelta(t, 4.0, top.Area(), 1e-9)
	assert.InDelta(t, 0, top.CenterBounds().Distance(center), 1e-12)
	assert.InDelta(t, 0.5, top.Verts[0].Co.Z, 1e-12, "scaling along the normal keeps a planar face in place")
}

func TestRotate(t *testing.T) {
	m := New()
	v := m.AddVert(geometry.NewVector3(2, 0, 0))

	Rotate([]*Vert{v}, geometry.NewVector3(1, 0, 0), geometry.RotationZ(math.Pi/2))
	assert.InDelta(t, 0, v.Co.Distance(geometry.NewVector3(1, 1, 0)), 1e-12)
}

func TestCreateCone(t *testing.T) {
	m := New()
	g := m.CreateCone(8, 1, 0.5, 2, geometry.Identity(), true)
	assert.Len(t, g.Verts, 16)
	assert.Len(t, g.Faces, 10)
	for _, f := range g.Faces {
		assert.Greater(t, f.Normal().Dot(f.CenterMean()), 0.0, "cone faces must point outward")
	}

	spire := m.CreateCone(5, 0, 0.2, 1, geometry.Translation(geometry.NewVector3(0, 0, 3)), false)
	assert.Len(t, spire.Verts, 6)
	assert.Len(t, spire.Faces, 5)
	for _, f := range spire.Faces {
		assert.Len(t, f.Verts, 3)
	}

	ring := m.CreateCone(32, 1.25, 2.25, 0, geometry.Identity(), false)
	assert.Len(t, ring.Faces, 32)
	for _, f := range ring.Faces {
		assert.InDelta(t, -1, f.Normal().Z, 1e-9)
	}

	none := m.CreateCone(2, 1, 1, 1, geometry.Identity(), true)
	assert.Empty(t, none.Faces)
}

func TestCreateIcosphere(t *testing.T) {
	m := New()
	center := geometry.NewVector3(1, 2, 3)
	g := m.CreateIcosphere(3, 0.5, geometry.Translation(center))

	assert.Len(t, g.Verts, 642)
	assert.Len(t, g.Faces, 1280)
	for _, v := range g.Verts {
		assert.InDelta(t, 0.5, v.Co.Distance(center), 1e-9)
	}
	for _, f := range g.Faces {
		assert.Greater(t, f.Normal().Dot(f.CenterMean().Sub(center)), 0.0)
	}
}

func TestSubdivideFace(t *testing.T) {
	m := New()
	m.CreateCube(1)
	back := faceWithNormal(t, m, geometry.NewVector3(-1, 0, 0))

	faces := m.SubdivideFace(back, 2, 0.02)
	require.Len(t, faces, 9)
	assert.False(t, back.IsValid())
	assert.Equal(t, 5+9, m.FaceCount())

	total := 0.0
	for _, f := range faces {
		assert.Less(t, f.Normal().X, -0.95)
		total += f.Area()
	}
	assert.InDelta(t, 1.0, total, 0.05)

	assert.Nil(t, m.SubdivideFace(back, 2, 0))
	tri := m.AddFace([]*Vert{m.AddVert(geometry.Vector3{}), m.AddVert(geometry.NewVector3(1, 0, 0)), m.AddVert(geometry.NewVector3(0, 1, 0))}, material.Hull)
	assert.Nil(t, m.SubdivideFace(tri, 2, 0))
}

func TestSymmetrizeCube(t *testing.T) {
	m := New()
	m.CreateCube(1)

	m.Symmetrize(geometry.AxisX)
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 10, m.FaceCount())

	b := m.Bounds()
	assert.InDelta(t, -b.Min.X, b.Max.X, 1e-12)

	m.Symmetrize(geometry.AxisX)
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 10, m.FaceCount())
}

func TestSymmetrizeKeepsNegativeHalf(t *testing.T) {
	m := New()
	m.CreateCube(1)
	Translate(m.Verts(), geometry.NewVector3(0, 0.3, 0))

	m.Symmetrize(geometry.AxisY)
	b := m.Bounds()
	assert.InDelta(t, -0.2, b.Min.Y, 1e-12)
	assert.InDelta(t, 0.2, b.Max.Y, 1e-12)
}

func TestRecenter(t *testing.T) {
	m := New()
	m.CreateCube(1)
	Translate(m.Verts(), geometry.NewVector3(3, -1, 2))

	offset := m.Recenter()
	assert.InDelta(t, 0, offset.Distance(geometry.NewVector3(3, -1, 2)), 1e-9)
	assert.InDelta(t, 0, m.Centroid().Length(), 1e-9)
}

func TestTriangulate(t *testing.T) {
	m := New()
	m.CreateCube(1)
	m.Faces()[0].Material = material.GlowDisc

	tris := m.Triangulate()
	require.Len(t, tris, 12)
	assert.Equal(t, uint16(material.GlowDisc), tris[0].Attribute)
	assert.Equal(t, uint16(material.GlowDisc), tris[1].Attribute)
	assert.Equal(t, uint16(material.Hull), tris[2].Attribute)
	for _, tri := range tris {
		assert.InDelta(t, 1, tri.CalculateNormal().Dot(tri.Normal), 1e-9)
	}
}

func TestSymmetrizeIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := New()
		m.CreateCube(rapid.Float64Range(0.5, 2).Draw(t, "size"))
		Translate(m.Verts(), geometry.NewVector3(rapid.Float64Range(-0.4, 0.4).Draw(t, "offset"), 0, 0))

		extrusions := rapid.IntRange(0, 4).Draw(t, "extrusions")
		for i := 0; i < extrusions; i++ {
			faces := m.Faces()
			f := faces[rapid.IntRange(0, len(faces)-1).Draw(t, "face")]
			ex := m.ExtrudeFace(f)
			Translate(ex.Face.Verts, ex.Face.Normal().Mul(rapid.Float64Range(0.1, 1).Draw(t, "length")))
		}

		m.Symmetrize(geometry.AxisX)
		verts, faces := m.VertexCount(), m.FaceCount()
		m.Symmetrize(geometry.AxisX)

		if m.VertexCount() != verts || m.FaceCount() != faces {
			t.Fatalf("second symmetrize changed counts: %d/%d -> %d/%d", verts, faces, m.VertexCount(), m.FaceCount())
		}
	})
}
