package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/export"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/openscad"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateConfig    string
	generateRender    string
	generateQuiet     bool
	generateOverrides *config.Overrides
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a spaceship and write it to disk",
	Long: `Generate a spaceship from the config file and command line flags.
With --render the OpenSCAD export is additionally rendered to STL or PNG by the
openscad binary.`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "", "Config file (default: ./shipgen.yaml)")
	generateCmd.Flags().StringVar(&generateRender, "render", "", "Render the ship with OpenSCAD to this file (.stl, .png)")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Do not print progress")
	generateOverrides = config.BindFlags(generateCmd.Flags())
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := loadConfig(generateConfig, generateOverrides)
	defer logger.Sync()

	var opts []ship.Option
	if !generateQuiet {
		opts = append(opts, ship.WithProgress(func(percent int) {
			fmt.Fprintf(os.Stderr, "\rGenerating... %3d%%", percent)
		}))
	}

	result, err := generateShip(cfg, material.NewLibrary(cfg.Textures.Directory), opts...)
	if !generateQuiet {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating ship: %v\n", err)
		os.Exit(1)
	}

	if err := export.Output(cfg.Output, result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ship: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%s, %d faces)\n", cfg.Output.Path, cfg.Output.Format, result.Mesh.FaceCount())
	if cfg.Output.Preview != "" {
		fmt.Printf("Wrote %s\n", cfg.Output.Preview)
	}

	if generateRender != "" {
		if err := renderWithOpenSCAD(cmd.Context(), result, generateRender); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering ship: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %s\n", generateRender)
	}
}

// renderWithOpenSCAD writes a temporary .scad file and renders it to output
func renderWithOpenSCAD(ctx context.Context, result *ship.Result, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	tmp, err := os.MkdirTemp("", "shipgen-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	base := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	scadFile := filepath.Join(tmp, base+".scad")
	if err := export.Write(scadFile, config.FormatSCAD, result); err != nil {
		return err
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	logger.Info("rendering with openscad", zap.String("output", absOutput))
	return openscad.NewRenderer(tmp).Render(ctx, scadFile, absOutput)
}
