// Package config handles shipgen configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/shipgen/pkg/ship"
)

// ErrUnsupportedFormat is returned for an unknown output format
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Output formats
const (
	FormatOBJ      = "obj"
	FormatSTL      = "stl"
	FormatSTLASCII = "stl-ascii"
	FormatSCAD     = "scad"
)

// Formats lists every supported output format
var Formats = []string{FormatOBJ, FormatSTL, FormatSTLASCII, FormatSCAD}

// Config holds all shipgen settings.
type Config struct {
	Generation ship.Config    `yaml:"generation"`
	Output     OutputConfig   `yaml:"output"`
	Textures   TexturesConfig `yaml:"textures"`
	Viewer     ViewerConfig   `yaml:"viewer"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path          string `yaml:"path"`
	Format        string `yaml:"format"`
	Preview       string `yaml:"preview"` // PNG preview path, empty to skip
	PreviewWidth  int    `yaml:"preview_width"`
	PreviewHeight int    `yaml:"preview_height"`
}

// TexturesConfig holds the texture asset directory.
type TexturesConfig struct {
	Directory string `yaml:"directory"` // empty disables textures
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	FPSLimit  int  `yaml:"fps_limit"`
	Wireframe bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. It doubles as the
// reset-to-defaults action of the user interfaces.
func Default() *Config {
	return &Config{
		Generation: ship.DefaultConfig(),
		Output: OutputConfig{
			Path:          "ship.obj",
			Format:        FormatOBJ,
			PreviewWidth:  800,
			PreviewHeight: 600,
		},
		Viewer: ViewerConfig{
			Width:    1280,
			Height:   800,
			FPSLimit: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that cannot be coerced
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedFormat, c.Output.Format, Formats)
	}
	return nil
}
