package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ship.DefaultConfig(), cfg.Generation)
	assert.Equal(t, "ship.obj", cfg.Output.Path)
	assert.Equal(t, FormatOBJ, cfg.Output.Format)
	assert.Empty(t, cfg.Textures.Directory)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "shipgen.yaml")
	yamlContent := `
generation:
  seed: 42
  axes:
    x: true
    y: true
  hull_segments:
    min: 2
    max: nine
  face_detail: false
  symmetry:
    vertical: true
output:
  path: out/ship.stl
  format: stl
textures:
  directory: assets
logging:
  level: debug
  log_file: shipgen.log
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, ship.IntSeed(42), cfg.Generation.Seed)
	assert.Equal(t, ship.Axes{X: true, Y: true}, cfg.Generation.Axes)
	assert.Equal(t, ship.Range{Min: 2, Max: 6}, cfg.Generation.HullSegments)
	assert.False(t, cfg.Generation.FaceDetail)
	assert.True(t, cfg.Generation.Asymmetry.Enabled)
	assert.Equal(t, ship.Symmetry{Horizontal: true, Vertical: true}, cfg.Generation.Symmetry)
	assert.Equal(t, "out/ship.stl", cfg.Output.Path)
	assert.Equal(t, FormatSTL, cfg.Output.Format)
	assert.Equal(t, 800, cfg.Output.PreviewWidth)
	assert.Equal(t, "assets", cfg.Textures.Directory)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "shipgen.log", cfg.Logging.LogFile)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "shipgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  format: fbx\n"), 0644))

	_, err := Load(configPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("generation:\n  axes: [\n"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	assert.Empty(t, findConfigFile())

	require.NoError(t, os.WriteFile(FileName, []byte("output:\n  format: scad\n"), 0644))
	assert.NotEmpty(t, findConfigFile())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatSCAD, cfg.Output.Format)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.True(t, filepath.IsAbs(dir), dir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shipgen.yaml")

	cfg := Default()
	cfg.Generation.Seed = ship.StringSeed("falcon")
	cfg.Generation.Axes.Z = true
	cfg.Output.Format = FormatSTLASCII
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveToConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Default().Save())
	_, err := os.Stat(filepath.Join(ConfigDir(), FileName))
	assert.NoError(t, err)
}
