// Package export writes generated ships in the configured output formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/pkg/obj"
	"github.com/philipparndt/shipgen/pkg/openscad"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/philipparndt/shipgen/pkg/stl"
	"github.com/philipparndt/shipgen/pkg/viewer"
)

// Write saves the ship to path in the given format
func Write(path, format string, r *ship.Result) error {
	if r == nil || r.Mesh == nil {
		return fmt.Errorf("no ship to export")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch format {
	case config.FormatOBJ:
		return obj.Save(path, r.Mesh, r.Materials)
	case config.FormatSTL:
		return stl.Save(path, stl.FromMesh(modelName(r), r.Mesh), stl.Binary)
	case config.FormatSTLASCII:
		return stl.Save(path, stl.FromMesh(modelName(r), r.Mesh), stl.ASCII)
	case config.FormatSCAD:
		return openscad.Save(path, r.Mesh, r.Materials)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnsupportedFormat, format)
	}
}

// Preview renders a flat shaded PNG of the ship
func Preview(path string, width, height int, r *ship.Result) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", width, height)
	}
	p := viewer.NewPreview(r.Mesh, width, height)
	return p.SavePNG(path, r.Mesh, r.Materials)
}

// Output writes the ship and, when configured, its preview image
func Output(out config.OutputConfig, r *ship.Result) error {
	if err := Write(out.Path, out.Format, r); err != nil {
		return err
	}
	if out.Preview != "" {
		if err := Preview(out.Preview, out.PreviewWidth, out.PreviewHeight, r); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	return nil
}

func modelName(r *ship.Result) string {
	if seed := r.Seed.String(); seed != "" {
		return "ship " + seed
	}
	return "ship"
}
