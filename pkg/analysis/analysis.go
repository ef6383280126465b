package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
	"github.com/philipparndt/shipgen/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	Volume         float64
	SurfaceArea    float64
	TriangleCount  int
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	MaterialCounts map[material.Tag]int
	AllEdges       []EdgeInfo
}

// MeshSummary describes a generated mesh before triangulation
type MeshSummary struct {
	Faces          int
	Vertices       int
	Triangles      int
	Quads          int
	Ngons          int
	MaterialCounts map[material.Tag]int
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	SurfaceArea    float64
	Centroid       geometry.Vector3
}

// AnalyzeMesh summarises the polygons of a generated mesh
func AnalyzeMesh(m *mesh.Mesh) *MeshSummary {
	summary := &MeshSummary{
		Vertices:       m.VertexCount(),
		MaterialCounts: m.MaterialCounts(),
		BoundingBox:    m.Bounds(),
		Centroid:       m.Centroid(),
	}
	summary.Dimensions = summary.BoundingBox.Size()

	for _, f := range m.Faces() {
		if !f.IsValid() {
			continue
		}
		summary.Faces++
		summary.SurfaceArea += f.Area()
		switch len(f.Verts) {
		case 3:
			summary.Triangles++
		case 4:
			summary.Quads++
		default:
			summary.Ngons++
		}
	}

	return summary
}

// AnalyzeModel performs comprehensive analysis on an STL model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:    model.BoundingBox(),
		SurfaceArea:    model.SurfaceArea(),
		TriangleCount:  model.TriangleCount(),
		MaterialCounts: model.MaterialCounts(),
		AllEdges:       make([]EdgeInfo, 0),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	// Collect all edges
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range model.Triangles {
		edges := []struct {
			start, end geometry.Vector3
		}{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)

			edgeInfo := EdgeInfo{
				Start:      edge.start,
				End:        edge.end,
				Length:     length,
				TriangleID: i,
			}
			result.AllEdges = append(result.AllEdges, edgeInfo)

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount == 0 {
		minLength = 0
	}
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
