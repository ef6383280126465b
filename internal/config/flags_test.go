package config

import (
	"testing"

	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOverrides(t *testing.T, args ...string) *Overrides {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return o
}

func TestOverridesOnlyApplyChangedFlags(t *testing.T) {
	cfg := Default()
	cfg.Generation.FaceDetail = false
	cfg.Generation.HullSegments = ship.Range{Min: 1, Max: 2}

	o := parseOverrides(t, "--hull-max", "9")
	require.NoError(t, o.Apply(cfg))

	assert.False(t, cfg.Generation.FaceDetail)
	assert.Equal(t, ship.Range{Min: 1, Max: 9}, cfg.Generation.HullSegments)
}

func TestOverridesSeeds(t *testing.T) {
	cfg := Default()
	require.NoError(t, parseOverrides(t, "--seed", "alpha").Apply(cfg))
	assert.Equal(t, ship.StringSeed("alpha"), cfg.Generation.Seed)

	cfg = Default()
	require.NoError(t, parseOverrides(t, "--seed-int", "42").Apply(cfg))
	assert.Equal(t, ship.IntSeed(42), cfg.Generation.Seed)
}

func TestOverridesToggles(t *testing.T) {
	cfg := Default()
	o := parseOverrides(t,
		"--axis-y", "--axis-x=false",
		"--vertical-symmetry", "--horizontal-symmetry=false",
		"--bevel=false", "--materials=false", "--asymmetry=false",
		"--asym-min", "2", "--asym-max", "3")
	require.NoError(t, o.Apply(cfg))

	gen := cfg.Generation
	assert.Equal(t, ship.Axes{Y: true}, gen.Axes)
	assert.Equal(t, ship.Symmetry{Vertical: true}, gen.Symmetry)
	assert.False(t, gen.Bevel)
	assert.False(t, gen.AssignMaterials)
	assert.False(t, gen.Asymmetry.Enabled)
	assert.Equal(t, ship.Range{Min: 2, Max: 3}, gen.Asymmetry.Segments)
}

func TestOverridesOutputInfersFormat(t *testing.T) {
	cfg := Default()
	require.NoError(t, parseOverrides(t, "-o", "out/ship.stl").Apply(cfg))
	assert.Equal(t, "out/ship.stl", cfg.Output.Path)
	assert.Equal(t, FormatSTL, cfg.Output.Format)

	cfg = Default()
	require.NoError(t, parseOverrides(t, "-o", "ship.stl", "--format", FormatSTLASCII).Apply(cfg))
	assert.Equal(t, FormatSTLASCII, cfg.Output.Format)
}

func TestOverridesRejectUnknownFormat(t *testing.T) {
	cfg := Default()
	err := parseOverrides(t, "--format", "ply").Apply(cfg)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOverridesLoggingAndAssets(t *testing.T) {
	cfg := Default()
	o := parseOverrides(t, "--log-level", "debug", "--log-file", "ship.log", "--textures", "assets", "--preview", "p.png")
	require.NoError(t, o.Apply(cfg))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ship.log", cfg.Logging.LogFile)
	assert.Equal(t, "assets", cfg.Textures.Directory)
	assert.Equal(t, "p.png", cfg.Output.Preview)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
		ok     bool
	}{
		{"ship.obj", FormatOBJ, true},
		{"SHIP.STL", FormatSTL, true},
		{"a/b/ship.scad", FormatSCAD, true},
		{"ship.ply", "", false},
		{"ship", "", false},
	}
	for _, tt := range tests {
		format, ok := FormatFromPath(tt.path)
		assert.Equal(t, tt.format, format, tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
	}
}
