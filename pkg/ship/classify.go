package ship

import (
	"math"

	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"go.uber.org/zap"
)

// Bucket names a category of surface detail
type Bucket int

const (
	EngineBucket Bucket = iota
	GridBucket
	AntennaBucket
	WeaponBucket
	SphereBucket
	DiscBucket
	CylinderBucket
	bucketCount
)

var bucketNames = [bucketCount]string{"engine", "grid", "antenna", "weapon", "sphere", "disc", "cylinder"}

func (b Bucket) String() string {
	if b < 0 || b >= bucketCount {
		return "unknown"
	}
	return bucketNames[b]
}

// Buckets holds the faces routed to each detail category
type Buckets [bucketCount][]*mesh.Face

// Sizes returns the number of faces per bucket
func (b *Buckets) Sizes() map[Bucket]int {
	sizes := make(map[Bucket]int, bucketCount)
	for k, faces := range b {
		sizes[Bucket(k)] = len(faces)
	}
	return sizes
}

const (
	maxDetailAspect = 3.0
	rearThreshold   = -0.95
	facingThreshold = 0.9
)

func isRearFace(f *mesh.Face) bool {
	return f.Normal().X < rearThreshold
}

// classify routes every reasonably square face to at most one detail bucket,
// tagging some faces with hull_lights directly. One draw is taken per
// routed face.
func (p *pipeline) classify(m *mesh.Mesh) *Buckets {
	var b Buckets
	for _, f := range m.Faces() {
		if f.AspectRatio() > maxDetailAspect {
			continue
		}

		val := p.rng.Float64()
		n := f.Normal()
		outward := n.Dot(f.CenterBounds()) > 0

		switch {
		case n.X < rearThreshold:
			switch {
			case len(b[EngineBucket]) == 0 || val > 0.75:
				b[EngineBucket] = append(b[EngineBucket], f)
			case val > 0.5:
				b[CylinderBucket] = append(b[CylinderBucket], f)
			case val > 0.25:
				b[GridBucket] = append(b[GridBucket], f)
			default:
				f.Material = material.HullLights
			}

		case n.X > facingThreshold:
			switch {
			case outward && val > 0.7:
				b[AntennaBucket] = append(b[AntennaBucket], f)
				f.Material = material.HullLights
			case val > 0.4:
				b[GridBucket] = append(b[GridBucket], f)
			default:
				f.Material = material.HullLights
			}

		case n.Z > facingThreshold:
			switch {
			case outward && val > 0.7:
				b[AntennaBucket] = append(b[AntennaBucket], f)
			case val > 0.6:
				b[GridBucket] = append(b[GridBucket], f)
			case val > 0.3:
				b[CylinderBucket] = append(b[CylinderBucket], f)
			}

		case n.Z < -facingThreshold:
			switch {
			case val > 0.75:
				b[DiscBucket] = append(b[DiscBucket], f)
			case val > 0.5:
				b[GridBucket] = append(b[GridBucket], f)
			case val > 0.25:
				b[WeaponBucket] = append(b[WeaponBucket], f)
			}

		case math.Abs(n.Y) > facingThreshold:
			switch {
			case len(b[WeaponBucket]) == 0 || val > 0.75:
				b[WeaponBucket] = append(b[WeaponBucket], f)
			case val > 0.6:
				b[GridBucket] = append(b[GridBucket], f)
			case val > 0.4:
				b[SphereBucket] = append(b[SphereBucket], f)
			default:
				f.Material = material.HullLights
			}
		}
	}

	p.log.Debug("faces classified",
		zap.Int("engine", len(b[EngineBucket])),
		zap.Int("grid", len(b[GridBucket])),
		zap.Int("antenna", len(b[AntennaBucket])),
		zap.Int("weapon", len(b[WeaponBucket])),
		zap.Int("sphere", len(b[SphereBucket])),
		zap.Int("disc", len(b[DiscBucket])),
		zap.Int("cylinder", len(b[CylinderBucket])))
	return &b
}
