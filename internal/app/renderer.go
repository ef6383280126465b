package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// Light direction for baked lighting
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// bakedColor shades the slot colour of a triangle. Emissive slots stay at
// full brightness.
func bakedColor(tri geometry.Triangle, materials []material.Material) [4]uint8 {
	tag := material.Tag(tri.Attribute)
	base := material.ColorOf(materials, tag)

	lightIntensity := 1.0
	if int(tag) >= len(materials) || !materials[tag].Emissive {
		// Min 30% ambient, max 100% diffuse
		lightIntensity = math.Max(0.3, -tri.Normal.Dot(lightDir))
	}
	return [4]uint8{
		uint8(float64(base.R) * lightIntensity),
		uint8(float64(base.G) * lightIntensity),
		uint8(float64(base.B) * lightIntensity),
		255,
	}
}

// shipToRaylibMesh converts triangulated ship faces to a Raylib mesh with baked lighting
func shipToRaylibMesh(triangles []geometry.Triangle, materials []material.Material) rl.Mesh {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	// Allocate arrays
	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	uv := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

	idx := 0
	for _, triangle := range triangles {
		col := bakedColor(triangle, materials)
		normal := triangle.Normal

		for k, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = uv[k][0]
			texcoords[idx*2+1] = uv[k][1]
			copy(colors[idx*4:idx*4+4], col[:])
			idx++
		}
	}

	// Assign mesh data
	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
		m.Normals = &normals[0]
		m.Texcoords = &texcoords[0]
		m.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&m, false)

	return m
}

// faceEdges lists every polygon edge of the mesh once
func faceEdges(m *mesh.Mesh) [][2]geometry.Vector3 {
	seen := make(map[[2]int]bool)
	var edges [][2]geometry.Vector3

	for _, f := range m.Faces() {
		if !f.IsValid() {
			continue
		}
		for i, a := range f.Verts {
			b := f.Verts[(i+1)%len(f.Verts)]
			key := [2]int{a.ID(), b.ID()}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, [2]geometry.Vector3{a.Co, b.Co})
		}
	}
	return edges
}
