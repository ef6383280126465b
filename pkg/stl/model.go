package stl

import (
	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromMesh triangulates a generated mesh. Each triangle keeps the material
// slot of its face in the attribute word.
func FromMesh(name string, m *mesh.Mesh) *Model {
	return &Model{
		Name:      name,
		Triangles: m.Triangulate(),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// MaterialCounts returns the number of triangles per material slot read
// from the attribute words. Attributes outside the slot range are skipped.
func (m *Model) MaterialCounts() map[material.Tag]int {
	counts := make(map[material.Tag]int)
	for _, triangle := range m.Triangles {
		if triangle.Attribute < material.SlotCount {
			counts[material.Tag(triangle.Attribute)]++
		}
	}
	return counts
}
