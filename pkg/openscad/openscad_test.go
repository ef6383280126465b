package openscad

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePolyhedron(t *testing.T) {
	m := mesh.New()
	cube := m.CreateCube(1)
	cube.Faces[0].Material = material.HullDark

	var buf bytes.Buffer
	require.NoError(t, WritePolyhedron(&buf, m, material.Placeholders()))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, "polyhedron("))
	assert.Contains(t, out, "// hull\n")
	assert.Contains(t, out, "// hull_dark\n")
	assert.Contains(t, out, "color([0.8000, 0.8000, 0.8000])")

	// the single hull_dark quad uses its own four points, written reversed
	assert.Contains(t, out, "faces = [[3, 2, 1, 0]]")
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-does-not-exist"

	err := r.Render(context.Background(), "ship.scad", filepath.Join(t.TempDir(), "ship.stl"))
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestSave(t *testing.T) {
	m := mesh.New()
	m.CreateCube(1)
	path := filepath.Join(t.TempDir(), "ship.scad")
	require.NoError(t, Save(path, m, nil))
}
