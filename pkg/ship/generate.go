// Package ship generates procedural spaceship meshes from a seed and a
// parameter set.
//
// Generation is a fixed sequence of stages over one mesh: hull, asymmetry,
// face classification, detail placement, symmetry and finalisation. Every
// random decision is drawn from a single stream derived from the seed, so the
// same seed and configuration always produce the same mesh and material tags.
package ship

import (
	"fmt"
	"time"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"go.uber.org/zap"
)

// ProgressFunc receives completion percentages during generation. It is
// called synchronously and should return quickly.
type ProgressFunc func(percent int)

// Bevel describes the edge bevel a host should apply on top of the mesh
type Bevel struct {
	WidthPercent float64
	Segments     int
	Profile      float64
	OffsetType   string
	LimitMethod  string
}

// Protrusion records one asymmetry chain
type Protrusion struct {
	// Aspect is the aspect ratio of the face the chain grew from
	Aspect   float64
	Segments int
}

// Stats records the decisions taken during a generation
type Stats struct {
	HullSegments []int
	Protrusions  []Protrusion
	Buckets      map[Bucket]int
	Mirrored     []geometry.Axis
	Elapsed      time.Duration
}

// Result is a finished ship
type Result struct {
	Mesh      *mesh.Mesh
	Materials []material.Material
	Bevel     *Bevel
	Seed      Seed
	Stats     Stats
}

// Option customises a generation
type Option func(*options)

type options struct {
	logger   *zap.Logger
	progress ProgressFunc
	textures *material.Library
}

// WithLogger logs stage summaries at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress reports completion percentages to fn
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithTextures attaches texture assets from lib to the materials
func WithTextures(lib *material.Library) Option {
	return func(o *options) {
		o.textures = lib
	}
}

type pipeline struct {
	cfg      Config
	rng      *Rand
	log      *zap.Logger
	progress ProgressFunc
	stats    Stats
}

func (p *pipeline) report(percent int) {
	if p.progress != nil {
		p.progress(percent)
	}
}

// Generate builds a ship. The only error is a texture asset that cannot be
// loaded; every other condition resolves to a well defined outcome.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	cfg = cfg.Normalized()
	p := &pipeline{
		cfg:      cfg,
		rng:      cfg.Seed.NewRand(),
		log:      o.logger,
		progress: o.progress,
	}
	p.log.Debug("generating ship",
		zap.String("seed", cfg.Seed.Describe()),
		zap.Bool("x_segments", cfg.Axes.X),
		zap.Bool("y_segments", cfg.Axes.Y),
		zap.Bool("z_segments", cfg.Axes.Z),
		zap.Int("hull_min", cfg.HullSegments.Min),
		zap.Int("hull_max", cfg.HullSegments.Max),
		zap.Bool("asymmetry", cfg.Asymmetry.Enabled),
		zap.Int("asymmetry_min", cfg.Asymmetry.Segments.Min),
		zap.Int("asymmetry_max", cfg.Asymmetry.Segments.Max),
		zap.Bool("face_detail", cfg.FaceDetail),
		zap.Bool("horizontal_symmetry", cfg.Symmetry.Horizontal),
		zap.Bool("vertical_symmetry", cfg.Symmetry.Vertical),
		zap.Bool("bevel", cfg.Bevel),
		zap.Bool("assign_materials", cfg.AssignMaterials))

	m := mesh.New()
	p.buildHull(m)

	if cfg.Asymmetry.Enabled {
		p.addAsymmetry(m)
	}
	p.report(35)

	if cfg.FaceDetail {
		buckets := p.classify(m)
		p.stats.Buckets = buckets.Sizes()
		p.report(40)
		p.placeDetails(m, buckets)
	}
	p.report(70)

	p.applySymmetry(m)

	result, err := p.finalize(m, o.textures)
	if err != nil {
		return nil, fmt.Errorf("finalize ship: %w", err)
	}
	result.Stats.Elapsed = time.Since(start)

	p.log.Info("ship generated",
		zap.String("seed", cfg.Seed.Describe()),
		zap.Int("faces", m.FaceCount()),
		zap.Int("verts", m.VertexCount()),
		zap.Duration("elapsed", result.Stats.Elapsed))
	return result, nil
}

// applySymmetry mirrors across X=0 and then Y=0, each on a coin flip when enabled
func (p *pipeline) applySymmetry(m *mesh.Mesh) {
	if p.cfg.Symmetry.Horizontal && p.rng.Float64() > 0.5 {
		m.Symmetrize(geometry.AxisX)
		p.stats.Mirrored = append(p.stats.Mirrored, geometry.AxisX)
	}
	p.report(75)

	if p.cfg.Symmetry.Vertical && p.rng.Float64() > 0.5 {
		m.Symmetrize(geometry.AxisY)
		p.stats.Mirrored = append(p.stats.Mirrored, geometry.AxisY)
	}
	p.report(80)
}

// finalize recentres the mesh, requests the bevel and builds the material slots
func (p *pipeline) finalize(m *mesh.Mesh, textures *material.Library) (*Result, error) {
	offset := m.Recenter()
	p.log.Debug("mesh recentred", zap.Float64("dx", offset.X), zap.Float64("dy", offset.Y), zap.Float64("dz", offset.Z))

	var bevel *Bevel
	if p.cfg.Bevel {
		bevel = &Bevel{
			WidthPercent: p.rng.Uniform(5, 20),
			Segments:     2,
			Profile:      0.25,
			OffsetType:   "PERCENT",
			LimitMethod:  "NONE",
		}
	}
	p.report(90)

	materials, err := material.Build(p.rng, textures, p.cfg.AssignMaterials)
	if err != nil {
		return nil, err
	}
	p.report(100)

	return &Result{
		Mesh:      m,
		Materials: materials,
		Bevel:     bevel,
		Seed:      p.cfg.Seed,
		Stats:     p.stats,
	}, nil
}
