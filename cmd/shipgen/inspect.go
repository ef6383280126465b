package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/philipparndt/shipgen/pkg/analysis"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	inspectEdges     int
	inspectLongest   bool
	inspectMinLength float64
	inspectMaxLength float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Inspect an exported STL file",
	Long: `Show dimensions, edge statistics and the material slot of every triangle
of an STL file written by shipgen. Binary exports keep the slot in each
triangle's attribute word.`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectEdges, "edges", "n", 0, "Number of edges to list")
	inspectCmd.Flags().BoolVarP(&inspectLongest, "longest", "l", false, "List the longest edges instead of the shortest")
	inspectCmd.Flags().Float64Var(&inspectMinLength, "min", 0.0, "Minimum edge length filter")
	inspectCmd.Flags().Float64Var(&inspectMaxLength, "max", 0.0, "Maximum edge length filter")
}

func runInspect(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeModel(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Println("Dimensions:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Size: %.6f x %.6f x %.6f\n\n", result.Dimensions.X, result.Dimensions.Y, result.Dimensions.Z)

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, "units"))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, "units"))
	fmt.Printf("  Average: %s\n\n", analysis.FormatMeasurement(result.AvgEdgeLength, "units"))

	if len(result.MaterialCounts) > 0 {
		tags := make([]material.Tag, 0, len(result.MaterialCounts))
		for tag := range result.MaterialCounts {
			tags = append(tags, tag)
		}
		slices.Sort(tags)

		fmt.Println("Material Slots:")
		for _, tag := range tags {
			fmt.Printf("  %-14s %d triangles\n", tag, result.MaterialCounts[tag])
		}
		fmt.Println()
	}

	printEdges(result)
}

func printEdges(result *analysis.MeasurementResult) {
	if inspectEdges <= 0 && inspectMaxLength <= 0 {
		return
	}
	count := inspectEdges
	if count <= 0 {
		count = 10
	}

	var edges []analysis.EdgeInfo
	var title string
	switch {
	case inspectMaxLength > 0:
		edges = analysis.FindEdgesByLength(result, inspectMinLength, inspectMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", inspectMinLength, inspectMaxLength, len(edges))
		if len(edges) > count {
			edges = edges[:count]
		}
	case inspectLongest:
		edges = analysis.FindLongestEdges(result, count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	default:
		edges = analysis.FindShortestEdges(result, count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	}

	fmt.Println(title)
	fmt.Println("====================")
	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	fmt.Printf("%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	for i, edge := range edges {
		fmt.Printf("%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
