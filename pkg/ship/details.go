package ship

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

const detailFractal = 0.02

// placeDetails runs every placer over its bucket in a fixed order
func (p *pipeline) placeDetails(m *mesh.Mesh, b *Buckets) {
	placers := []struct {
		bucket Bucket
		place  func(*mesh.Mesh, *mesh.Face)
		done   int
	}{
		{EngineBucket, p.addExhaust, 42},
		{GridBucket, p.addGrid, 47},
		{AntennaBucket, p.addAntennas, 52},
		{WeaponBucket, p.addWeapons, 57},
		{SphereBucket, p.addSphere, 62},
		{DiscBucket, p.addDisc, 67},
		{CylinderBucket, p.addCylinders, -1},
	}
	for _, placer := range placers {
		for _, f := range b[placer.bucket] {
			placer.place(m, f)
		}
		if placer.done > 0 {
			p.report(placer.done)
		}
	}
}

// gridPoints lays out an h x v grid inside a quad by bilinear interpolation
// of its corners, excluding the border
func gridPoints(f *mesh.Face, h, v int) []geometry.Vector3 {
	c := f.Positions()
	points := make([]geometry.Vector3, 0, h*v)
	for i := 0; i < h; i++ {
		u := float64(i+1) / float64(h+1)
		top := c[0].Lerp(c[1], u)
		bottom := c[3].Lerp(c[2], u)
		for j := 0; j < v; j++ {
			points = append(points, top.Lerp(bottom, float64(j+1)/float64(v+1)))
		}
	}
	return points
}

func isQuadLike(f *mesh.Face) bool {
	return f.IsValid() && len(f.Verts) >= 4
}

func tagFaces(faces []*mesh.Face, tag material.Tag) {
	for _, f := range faces {
		f.Material = tag
	}
}

// addExhaust turns a rear face into a grid of engine nozzles
func (p *pipeline) addExhaust(m *mesh.Mesh, f *mesh.Face) {
	if !f.IsValid() {
		return
	}
	cuts := p.rng.IntInclusive(1, int(4-f.AspectRatio()))
	faces := m.SubdivideFace(f, cuts, detailFractal)

	length := p.rng.Uniform(0.1, 0.2)
	outer := 1 / p.rng.Uniform(1.3, 1.6)
	inner := 1 / p.rng.Uniform(1.05, 1.1)

	for _, sub := range faces {
		if !isRearFace(sub) {
			continue
		}
		sub.Material = material.HullDark
		nozzle := extrude(m, sub, length).Face
		scaleFace(nozzle, outer, outer, outer)

		burn := extrude(m, nozzle, -length*0.9)
		if burn.Face == nil {
			continue
		}
		burn.Face.Material = material.ExhaustBurn
		scaleFace(burn.Face, inner, inner, inner)
	}
}

// addGrid subdivides a face into raised panels, some of them lit
func (p *pipeline) addGrid(m *mesh.Mesh, f *mesh.Face) {
	if !f.IsValid() {
		return
	}
	cuts := p.rng.IntInclusive(2, 4)
	faces := m.SubdivideFace(f, cuts, detailFractal)
	length := p.rng.Uniform(0.025, 0.15)

	for _, sub := range faces {
		tag := material.Hull
		if p.rng.Float64() > 0.5 {
			tag = material.HullLights
		}
		panel := extrude(m, sub, length)
		if panel.Face == nil {
			continue
		}
		if math.Abs(panel.Face.Normal().Z) < 0.707 {
			panel.Face.Material = tag
		}
		for _, wall := range panel.Walls {
			if math.Abs(wall.Normal().Z) < 0.707 {
				wall.Material = tag
			}
		}
		scaleFace(panel.Face, 0.8, 0.8, 0.8)
	}
}

// addCylinders places a grid of capped cylinders lying on the face
func (p *pipeline) addCylinders(m *mesh.Mesh, f *mesh.Face) {
	if !isQuadLike(f) {
		return
	}
	h := p.rng.IntInclusive(1, 3)
	v := p.rng.IntInclusive(1, 3)
	segments := p.rng.IntInclusive(6, 12)

	width, height := f.Size()
	depth := 1.3 * math.Min(width/float64(h+2), height/float64(v+2))
	radius := depth * 0.5
	lying := geometry.RotationX(math.Pi / 2)

	for _, pos := range gridPoints(f, h, v) {
		m.CreateCone(segments, radius, radius, depth, f.MatrixAt(pos).Mul(lying), true)
	}
}

// addSphere sinks an icosphere into the face
func (p *pipeline) addSphere(m *mesh.Mesh, f *mesh.Face) {
	if !isQuadLike(f) {
		return
	}
	width, height := f.Size()
	size := p.rng.Uniform(0.4, 1) * math.Min(width, height)
	pos := f.CenterBounds().Sub(f.Normal().Mul(p.rng.Uniform(0, size*0.5)))

	sphere := m.CreateIcosphere(3, size, f.MatrixAt(pos))
	tagFaces(sphere.Faces, material.Hull)
}

// addAntennas scatters thin spires with wider bases over the face
func (p *pipeline) addAntennas(m *mesh.Mesh, f *mesh.Face) {
	if !isQuadLike(f) {
		return
	}
	h := p.rng.IntInclusive(4, 10)
	v := p.rng.IntInclusive(4, 10)
	normal := f.Normal()

	for _, pos := range gridPoints(f, h, v) {
		if p.rng.Float64() <= 0.9 {
			continue
		}
		faceSize := math.Sqrt(f.Area())
		depth := p.rng.Uniform(0.1, 1.5) * faceSize
		shortDepth := depth * p.rng.Uniform(0.02, 0.15)
		base := p.rng.Uniform(0.005, 0.05)

		tag := material.HullDark
		if p.rng.Float64() > 0.5 {
			tag = material.Hull
		}
		segments := int(p.rng.Uniform(3, 6))

		spire := m.CreateCone(segments, 0, base, depth, f.MatrixAt(pos.Add(normal.Mul(depth*0.5))), false)
		tagFaces(spire.Faces, tag)

		r1 := base * p.rng.Uniform(1, 1.5)
		r2 := base * p.rng.Uniform(1.5, 2)
		foot := m.CreateCone(segments, r1, r2, shortDepth, f.MatrixAt(pos.Add(normal.Mul(shortDepth*0.45))), true)
		tagFaces(foot.Faces, tag)
	}
}

// addDisc places a tapered landing pad with a glowing rim
func (p *pipeline) addDisc(m *mesh.Mesh, f *mesh.Face) {
	if !isQuadLike(f) {
		return
	}
	width, height := f.Size()
	depth := 0.125 * math.Min(width, height)
	center := f.CenterBounds()
	normal := f.Normal()

	m.CreateCone(32, depth*3, depth*4, depth, f.MatrixAt(center.Add(normal.Mul(depth*0.5))), true)
	rim := m.CreateCone(32, depth*1.25, depth*2.25, 0, f.MatrixAt(center.Add(normal.Mul(depth*1.05))), false)
	tagFaces(rim.Faces, material.GlowDisc)
}
