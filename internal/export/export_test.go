package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/philipparndt/shipgen/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShip(t *testing.T) *ship.Result {
	t.Helper()
	cfg := ship.DefaultConfig()
	cfg.Seed = ship.StringSeed("export")
	r, err := ship.Generate(cfg)
	require.NoError(t, err)
	return r
}

func TestWriteFormats(t *testing.T) {
	r := testShip(t)
	dir := t.TempDir()

	for _, format := range config.Formats {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "out", "ship."+format)
			require.NoError(t, Write(path, format, r))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestWriteSTLKeepsTriangles(t *testing.T) {
	r := testShip(t)
	path := filepath.Join(t.TempDir(), "ship.stl")
	require.NoError(t, Write(path, config.FormatSTL, r))

	model, err := stl.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, len(r.Mesh.Triangulate()), model.TriangleCount())
	assert.True(t, strings.HasPrefix(model.Name, "ship export"))
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	r := testShip(t)
	err := Write(filepath.Join(t.TempDir(), "ship.ply"), "ply", r)
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestWriteWithoutShip(t *testing.T) {
	assert.Error(t, Write(filepath.Join(t.TempDir(), "ship.obj"), config.FormatOBJ, nil))
}

func TestOutputWritesPreview(t *testing.T) {
	r := testShip(t)
	dir := t.TempDir()
	out := config.Default().Output
	out.Path = filepath.Join(dir, "ship.obj")
	out.Preview = filepath.Join(dir, "ship.png")
	out.PreviewWidth = 64
	out.PreviewHeight = 48

	require.NoError(t, Output(out, r))
	assert.FileExists(t, out.Path)
	assert.FileExists(t, filepath.Join(dir, "ship.mtl"))
	assert.FileExists(t, out.Preview)
}

func TestPreviewRejectsBadSize(t *testing.T) {
	r := testShip(t)
	assert.Error(t, Preview(filepath.Join(t.TempDir(), "p.png"), 0, 10, r))
}
