package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/analysis"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/spf13/cobra"
)

var (
	infoConfig    string
	infoOverrides *config.Overrides
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Generate a spaceship and print its statistics",
	Long:  "Generate a ship without writing it and show mesh statistics, the decisions taken and the material palette.",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoConfig, "config", "c", "", "Config file (default: ./shipgen.yaml)")
	infoOverrides = config.BindFlags(infoCmd.Flags())
}

func runInfo(cmd *cobra.Command, args []string) {
	cfg := loadConfig(infoConfig, infoOverrides)
	defer logger.Sync()

	result, err := generateShip(cfg, material.NewLibrary(cfg.Textures.Directory))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating ship: %v\n", err)
		os.Exit(1)
	}

	summary := analysis.AnalyzeMesh(result.Mesh)

	fmt.Println("Ship Information")
	fmt.Println("================")
	fmt.Printf("Seed: %s\n", result.Seed.Describe())
	fmt.Printf("Generated in: %s\n\n", result.Stats.Elapsed)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Faces: %d (%d triangles, %d quads, %d n-gons)\n", summary.Faces, summary.Triangles, summary.Quads, summary.Ngons)
	fmt.Printf("  Vertices: %d\n", summary.Vertices)
	fmt.Printf("  Surface Area: %.6f square units\n\n", summary.SurfaceArea)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(summary.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(summary.BoundingBox.Max))
	fmt.Printf("  Centroid: %s\n", analysis.FormatVector(summary.Centroid))
	fmt.Printf("  Dimensions: %.4f x %.4f x %.4f\n\n", summary.Dimensions.X, summary.Dimensions.Y, summary.Dimensions.Z)

	printDecisions(result)
	printMaterials(result, summary)
}

func printDecisions(result *ship.Result) {
	stats := result.Stats
	fmt.Println("Generation:")
	fmt.Printf("  Hull segments: %v\n", stats.HullSegments)
	for i, p := range stats.Protrusions {
		fmt.Printf("  Protrusion %d: %d segments (aspect %.2f)\n", i+1, p.Segments, p.Aspect)
	}
	if len(stats.Buckets) > 0 {
		buckets := make([]ship.Bucket, 0, len(stats.Buckets))
		for b := range stats.Buckets {
			buckets = append(buckets, b)
		}
		slices.Sort(buckets)
		for _, b := range buckets {
			fmt.Printf("  %s faces: %d\n", b, stats.Buckets[b])
		}
	}
	if len(stats.Mirrored) > 0 {
		fmt.Printf("  Mirrored across: %v\n", stats.Mirrored)
	}
	if bevel := result.Bevel; bevel != nil {
		fmt.Printf("  Bevel: %.2f%%, %d segments, profile %.2f\n", bevel.WidthPercent, bevel.Segments, bevel.Profile)
	}
	fmt.Println()
}

func printMaterials(result *ship.Result, summary *analysis.MeshSummary) {
	fmt.Println("Materials:")
	for _, m := range result.Materials {
		c := m.Color
		fmt.Printf("  %-14s #%02x%02x%02x  %5d faces", m.Tag, c.R, c.G, c.B, summary.MaterialCounts[m.Tag])
		if m.Emissive {
			fmt.Print("  emissive")
		}
		if m.Placeholder {
			fmt.Print("  placeholder")
		}
		fmt.Println()
	}
}
