package ship

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

const (
	turretSegments = 16
	barrelSegments = 8
)

func degrees(d float64) float64 {
	return d * math.Pi / 180
}

// addWeapons places a small grid of turrets, each with a random yaw and
// barrel elevation
func (p *pipeline) addWeapons(m *mesh.Mesh, f *mesh.Face) {
	if !isQuadLike(f) {
		return
	}
	h := p.rng.IntInclusive(1, 2)
	v := p.rng.IntInclusive(1, 2)

	width, height := f.Size()
	size := 0.5 * math.Min(width/float64(h+2), height/float64(v+2))
	depth := size * 0.2
	normal := f.Normal()

	for _, pos := range gridPoints(f, h, v) {
		yaw := geometry.RotationZ(degrees(p.rng.Uniform(0, 90)))
		base := f.MatrixAt(pos.Add(normal.Mul(depth * 0.5))).Mul(yaw)
		buildTurret(m, base, size, depth, degrees(p.rng.Uniform(0, 45)))
	}
}

// buildTurret adds the foundation, two guards, the housing and two barrels
func buildTurret(m *mesh.Mesh, base geometry.Matrix4, size, depth, elevation float64) {
	m.CreateCone(turretSegments, size*0.9, size, depth, base, true)

	sideways := base.Mul(geometry.RotationY(math.Pi / 2))
	m.CreateCone(turretSegments, size*0.6, size*0.5, depth*2,
		sideways.Mul(geometry.Translation(geometry.NewVector3(0, 0, size*0.6))), true)
	m.CreateCone(turretSegments, size*0.5, size*0.6, depth*2,
		sideways.Mul(geometry.Translation(geometry.NewVector3(0, 0, -size*0.6))), true)

	housing := base.
		Mul(geometry.RotationX(elevation)).
		Mul(geometry.Translation(geometry.NewVector3(0, -size*0.4, 0)))
	m.CreateCone(barrelSegments, size*0.4, size*0.4, depth*5, housing, true)

	for _, side := range []float64{1, -1} {
		barrel := housing.Mul(geometry.Translation(geometry.NewVector3(side*size*0.2, 0, -size)))
		m.CreateCone(barrelSegments, size*0.1, size*0.1, depth*6, barrel, true)
	}
}
