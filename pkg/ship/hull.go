package ship

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"go.uber.org/zap"
)

const (
	// ribsPerSegment is the number of narrow-wide cycles in a ribbed segment
	ribsPerSegment = 3
	// maxCrossSegments caps the segment loop on Y and Z faces
	maxCrossSegments = 6
	hullTiltDegrees  = 5.0
)

// extrude extrudes f and pushes the new face along its normal by distance
func extrude(m *mesh.Mesh, f *mesh.Face, distance float64) mesh.Extrusion {
	ex := m.ExtrudeFace(f)
	if ex.Face != nil {
		mesh.Translate(ex.Face.Verts, ex.Face.Normal().Mul(distance))
	}
	return ex
}

// scaleFace scales the face loop in its own orientation frame
func scaleFace(f *mesh.Face, sx, sy, sz float64) {
	if !f.IsValid() {
		return
	}
	mesh.Scale(f.Verts, geometry.NewVector3(sx, sy, sz), f.Matrix().Inverse())
}

func segmentCount(rng *Rand, r Range) int {
	if r.Empty() {
		return 0
	}
	return rng.IntRange(r.Min, r.Max)
}

// buildHull creates the randomly scaled cube and grows it segment by segment
// along every face whose normal is dominated by an enabled axis
func (p *pipeline) buildHull(m *mesh.Mesh) {
	cube := m.CreateCube(1)
	cubeScale := geometry.NewVector3(
		p.rng.Uniform(0.75, 2),
		p.rng.Uniform(0.75, 2),
		p.rng.Uniform(0.75, 2),
	)
	mesh.Scale(cube.Verts, cubeScale, geometry.Identity())
	p.report(5)

	for _, f := range m.Faces() {
		n := f.Normal()
		isX := p.cfg.Axes.X && math.Abs(n.X) > 0.5
		isY := p.cfg.Axes.Y && math.Abs(n.Y) > 0.5
		isZ := p.cfg.Axes.Z && math.Abs(n.Z) > 0.5
		if !isX && !isY && !isZ {
			continue
		}

		length := p.rng.Uniform(0.3, 1)
		count := segmentCount(p.rng, p.cfg.HullSegments)
		p.stats.HullSegments = append(p.stats.HullSegments, count)

		crossAxis := isY || isZ
		face := f
		for i := 0; i < count; i++ {
			if crossAxis && i >= maxCrossSegments {
				break
			}
			last := i == count-1 || (crossAxis && i == maxCrossSegments-1)

			if p.rng.Float64() > 0.1 {
				face = p.hullSegment(m, face, length, cubeScale, last)
			} else {
				ribScale := p.rng.Uniform(0.75, 0.95)
				face = ribbedExtrude(m, face, length, ribsPerSegment, ribScale)
			}
		}
	}

	p.log.Debug("hull built",
		zap.Int("faces", m.FaceCount()),
		zap.Int("verts", m.VertexCount()),
		zap.Ints("segments", p.stats.HullSegments))
	p.report(25)
}

// hullSegment performs one plain extrusion step with random perturbations
func (p *pipeline) hullSegment(m *mesh.Mesh, face *mesh.Face, length float64, cubeScale geometry.Vector3, last bool) *mesh.Face {
	face = extrude(m, face, length).Face
	if p.rng.Float64() > 0.75 {
		face = extrude(m, face, length*0.25).Face
	}

	if p.rng.Float64() > 0.5 {
		sy := p.rng.Uniform(1.2, 1.5)
		sz := p.rng.Uniform(1.2, 1.5)
		if last || p.rng.Float64() > 0.5 {
			sy, sz = 1/sy, 1/sz
		}
		scaleFace(face, 1, sy, sz)
	}

	if p.rng.Float64() > 0.5 {
		offset := geometry.NewVector3(0, 0, p.rng.Uniform(0.1, 0.4)*cubeScale.Z*length)
		offset = offset.Mul(p.rng.Sign())
		if face.IsValid() {
			mesh.Translate(face.Verts, offset)
		}
	}

	if p.cfg.Axes.X && p.rng.Float64() > 0.5 {
		angle := hullTiltDegrees * p.rng.Sign()
		if face.IsValid() {
			mesh.Rotate(face.Verts, geometry.Vector3{}, geometry.RotationY(angle*math.Pi/180))
		}
	}
	return face
}

// ribbedExtrude extrudes face by length in ribs narrow-wide cycles
func ribbedExtrude(m *mesh.Mesh, face *mesh.Face, length float64, ribs int, ribScale float64) *mesh.Face {
	per := length / float64(ribs)
	for range ribs {
		face = extrude(m, face, per*0.25).Face
		face = extrude(m, face, 0).Face
		scaleFace(face, ribScale, ribScale, ribScale)
		face = extrude(m, face, per*0.5).Face
		face = extrude(m, face, 0).Face
		scaleFace(face, 1/ribScale, 1/ribScale, 1/ribScale)
		face = extrude(m, face, per*0.25).Face
	}
	return face
}

// addAsymmetry grows independent protrusions from a random subset of
// reasonably square faces
func (p *pipeline) addAsymmetry(m *mesh.Mesh) {
	for _, f := range m.Faces() {
		aspect := f.AspectRatio()
		if aspect > 4 {
			continue
		}
		if p.rng.Float64() <= 0.85 {
			continue
		}

		length := p.rng.Uniform(0.1, 0.4)
		count := segmentCount(p.rng, p.cfg.Asymmetry.Segments)
		p.stats.Protrusions = append(p.stats.Protrusions, Protrusion{Aspect: aspect, Segments: count})

		face := f
		for range count {
			face = extrude(m, face, length).Face
			if p.rng.Float64() > 0.25 {
				s := 1 / p.rng.Uniform(1.1, 1.5)
				scaleFace(face, s, s, s)
			}
		}
	}

	p.log.Debug("asymmetry added",
		zap.Int("faces", m.FaceCount()),
		zap.Int("verts", m.VertexCount()),
		zap.Int("protrusions", len(p.stats.Protrusions)))
}
