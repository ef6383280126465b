package config

import (
	"path/filepath"
	"strings"

	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/spf13/pflag"
)

// Overrides holds command line values that take priority over the config file.
// Only flags the user actually set are applied.
type Overrides struct {
	fs *pflag.FlagSet

	seed            string
	seedInt         int64
	axisX           bool
	axisY           bool
	axisZ           bool
	hullMin         int
	hullMax         int
	asymmetry       bool
	asymMin         int
	asymMax         int
	faceDetail      bool
	horizontal      bool
	vertical        bool
	bevel           bool
	assignMaterials bool
	textures        string
	output          string
	format          string
	preview         string
	logLevel        string
	logFile         string
}

// BindFlags registers the generation flags on fs
func BindFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{fs: fs}
	def := Default()
	gen := def.Generation

	fs.StringVar(&o.seed, "seed", "", "Text seed (overrides config)")
	fs.Int64Var(&o.seedInt, "seed-int", 0, "Integer seed (overrides config)")

	fs.BoolVar(&o.axisX, "axis-x", gen.Axes.X, "Segment the hull along X")
	fs.BoolVar(&o.axisY, "axis-y", gen.Axes.Y, "Segment the hull along Y")
	fs.BoolVar(&o.axisZ, "axis-z", gen.Axes.Z, "Segment the hull along Z")
	fs.IntVar(&o.hullMin, "hull-min", gen.HullSegments.Min, "Minimum hull segments per direction")
	fs.IntVar(&o.hullMax, "hull-max", gen.HullSegments.Max, "Maximum hull segments per direction (exclusive)")

	fs.BoolVar(&o.asymmetry, "asymmetry", gen.Asymmetry.Enabled, "Grow asymmetric protrusions")
	fs.IntVar(&o.asymMin, "asym-min", gen.Asymmetry.Segments.Min, "Minimum protrusion segments")
	fs.IntVar(&o.asymMax, "asym-max", gen.Asymmetry.Segments.Max, "Maximum protrusion segments (exclusive)")

	fs.BoolVar(&o.faceDetail, "face-detail", gen.FaceDetail, "Add surface details")
	fs.BoolVar(&o.horizontal, "horizontal-symmetry", gen.Symmetry.Horizontal, "Mirror across the X-Z plane")
	fs.BoolVar(&o.vertical, "vertical-symmetry", gen.Symmetry.Vertical, "Mirror across the X-Y plane")
	fs.BoolVar(&o.bevel, "bevel", gen.Bevel, "Request an edge bevel")
	fs.BoolVar(&o.assignMaterials, "materials", gen.AssignMaterials, "Assign the generated material palette")

	fs.StringVar(&o.textures, "textures", def.Textures.Directory, "Texture asset directory")
	fs.StringVarP(&o.output, "output", "o", def.Output.Path, "Output file")
	fs.StringVar(&o.format, "format", def.Output.Format, "Output format: "+strings.Join(Formats, ", "))
	fs.StringVar(&o.preview, "preview", def.Output.Preview, "Write a PNG preview to this path")
	fs.StringVar(&o.logLevel, "log-level", def.Logging.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFile, "log-file", def.Logging.LogFile, "Also write JSON logs to this file")

	return o
}

// Apply copies every flag the user set onto cfg and validates the result
func (o *Overrides) Apply(cfg *Config) error {
	changed := o.fs.Changed
	gen := &cfg.Generation

	if changed("seed") {
		gen.Seed = ship.StringSeed(o.seed)
	}
	if changed("seed-int") {
		gen.Seed = ship.IntSeed(o.seedInt)
	}

	setBool(changed("axis-x"), &gen.Axes.X, o.axisX)
	setBool(changed("axis-y"), &gen.Axes.Y, o.axisY)
	setBool(changed("axis-z"), &gen.Axes.Z, o.axisZ)
	setInt(changed("hull-min"), &gen.HullSegments.Min, o.hullMin)
	setInt(changed("hull-max"), &gen.HullSegments.Max, o.hullMax)
	setBool(changed("asymmetry"), &gen.Asymmetry.Enabled, o.asymmetry)
	setInt(changed("asym-min"), &gen.Asymmetry.Segments.Min, o.asymMin)
	setInt(changed("asym-max"), &gen.Asymmetry.Segments.Max, o.asymMax)
	setBool(changed("face-detail"), &gen.FaceDetail, o.faceDetail)
	setBool(changed("horizontal-symmetry"), &gen.Symmetry.Horizontal, o.horizontal)
	setBool(changed("vertical-symmetry"), &gen.Symmetry.Vertical, o.vertical)
	setBool(changed("bevel"), &gen.Bevel, o.bevel)
	setBool(changed("materials"), &gen.AssignMaterials, o.assignMaterials)

	if changed("textures") {
		cfg.Textures.Directory = o.textures
	}
	if changed("output") {
		cfg.Output.Path = o.output
		if format, ok := FormatFromPath(o.output); ok && !changed("format") {
			cfg.Output.Format = format
		}
	}
	if changed("format") {
		cfg.Output.Format = o.format
	}
	if changed("preview") {
		cfg.Output.Preview = o.preview
	}
	if changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if changed("log-file") {
		cfg.Logging.LogFile = o.logFile
	}

	return cfg.Validate()
}

// FormatFromPath guesses the output format from a file extension
func FormatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return FormatOBJ, true
	case ".stl":
		return FormatSTL, true
	case ".scad":
		return FormatSCAD, true
	}
	return "", false
}

func setBool(changed bool, dst *bool, v bool) {
	if changed {
		*dst = v
	}
}

func setInt(changed bool, dst *int, v int) {
	if changed {
		*dst = v
	}
}
