package stl

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeModel(t *testing.T) *Model {
	t.Helper()
	m := mesh.New()
	cube := m.CreateCube(2)
	cube.Faces[0].Material = material.HullLights
	cube.Faces[1].Material = material.GlowDisc
	return FromMesh("cube", m)
}

func TestFromMesh(t *testing.T) {
	model := cubeModel(t)

	assert.Equal(t, 12, model.TriangleCount())
	assert.InDelta(t, 24.0, model.SurfaceArea(), 1e-9)

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(-1, -1, -1), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), bbox.Max)

	counts := model.MaterialCounts()
	assert.Equal(t, 8, counts[material.Hull])
	assert.Equal(t, 2, counts[material.HullLights])
	assert.Equal(t, 2, counts[material.GlowDisc])
}

func TestBinaryKeepsAttributes(t *testing.T) {
	model := cubeModel(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, model))
	assert.Equal(t, 84+12*50, buf.Len())

	parsed, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "cube", parsed.Name)
	require.Equal(t, model.TriangleCount(), parsed.TriangleCount())
	assert.Equal(t, model.MaterialCounts(), parsed.MaterialCounts())
	for i, tri := range parsed.Triangles {
		assert.InDelta(t, model.Triangles[i].V1.X, tri.V1.X, 1e-6)
		assert.InDelta(t, model.Triangles[i].V3.Z, tri.V3.Z, 1e-6)
	}
}

func TestBinaryNamedSolid(t *testing.T) {
	model := cubeModel(t)
	model.Name = "solid ship"

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, model))

	parsed, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, parsed.TriangleCount())
}

func TestASCII(t *testing.T) {
	model := cubeModel(t)

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, model))
	assert.Contains(t, buf.String(), "solid cube\n")
	assert.Contains(t, buf.String(), "endsolid cube\n")

	parsed, err := ParseReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "cube", parsed.Name)
	assert.Equal(t, 12, parsed.TriangleCount())
	assert.InDelta(t, model.SurfaceArea(), parsed.SurfaceArea(), 1e-9)
}

func TestSaveAndParse(t *testing.T) {
	model := cubeModel(t)
	dir := t.TempDir()

	for _, format := range []Format{Binary, ASCII} {
		path := filepath.Join(dir, "ship.stl")
		require.NoError(t, Save(path, model, format))

		parsed, err := Parse(path)
		require.NoError(t, err)
		assert.Equal(t, 12, parsed.TriangleCount())
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestParseTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, cubeModel(t)))
	data := buf.Bytes()[:200]

	_, err := ParseReader(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
