package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(text, prefix string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestWrite(t *testing.T) {
	m := mesh.New()
	cube := m.CreateCube(1)
	cube.Faces[2].Material = material.ExhaustBurn

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "ship.mtl"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "mtllib ship.mtl\n"))
	assert.Equal(t, 8, count(out, "v "))
	assert.Equal(t, 6, count(out, "f "))
	assert.Equal(t, 2, count(out, "usemtl "))
	assert.Contains(t, out, "usemtl hull\n")
	assert.Contains(t, out, "usemtl exhaust_burn\n")
	assert.Less(t, strings.Index(out, "usemtl hull\n"), strings.Index(out, "usemtl exhaust_burn\n"))
}

func TestWriteMTL(t *testing.T) {
	materials := []material.Material{
		{Tag: material.Hull, Specular: 0.1, NormalMap: &material.Texture{Path: "/assets/hull_normal.png"}},
		{Tag: material.GlowDisc, Emissive: true},
	}
	materials[1].Color.R = 255

	var buf bytes.Buffer
	require.NoError(t, WriteMTL(&buf, materials))
	out := buf.String()

	assert.Equal(t, 2, count(out, "newmtl "))
	assert.Contains(t, out, "map_Bump /assets/hull_normal.png\n")
	assert.Contains(t, out, "Ke 1.0000 0.0000 0.0000\n")
	assert.Contains(t, out, "Ks 0.1000 0.1000 0.1000\n")
}

func TestSave(t *testing.T) {
	m := mesh.New()
	m.CreateCube(1)
	path := filepath.Join(t.TempDir(), "ship.obj")

	require.NoError(t, Save(path, m, material.Placeholders()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mtllib ship.mtl")

	mtl, err := os.ReadFile(filepath.Join(filepath.Dir(path), "ship.mtl"))
	require.NoError(t, err)
	assert.Equal(t, material.SlotCount, count(string(mtl), "newmtl "))
}
