package ship

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is a half-open integer range [Min, Max)
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Empty reports whether the range holds no value
func (r Range) Empty() bool {
	return r.Max <= r.Min
}

// Contains reports whether n lies in [Min, Max)
func (r Range) Contains(n int) bool {
	return n >= r.Min && n < r.Max
}

// UnmarshalYAML reads min and max, keeping the current value of any bound
// that is missing or not an integer
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		var n int
		if value.Kind != yaml.ScalarNode || value.Tag != "!!int" || value.Decode(&n) != nil {
			continue
		}
		switch key {
		case "min":
			r.Min = n
		case "max":
			r.Max = n
		}
	}
	return nil
}

// Axes selects which principal axes receive hull segmentation
type Axes struct {
	X bool `yaml:"x"`
	Y bool `yaml:"y"`
	Z bool `yaml:"z"`
}

// Asymmetry controls the independent protrusions added after the hull
type Asymmetry struct {
	Enabled  bool  `yaml:"enabled"`
	Segments Range `yaml:"segments"`
}

// Symmetry controls the optional mirror planes
type Symmetry struct {
	Horizontal bool `yaml:"horizontal"`
	Vertical   bool `yaml:"vertical"`
}

// Config is the parameter set of one generation
type Config struct {
	Seed            Seed      `yaml:"seed"`
	Axes            Axes      `yaml:"axes"`
	HullSegments    Range     `yaml:"hull_segments"`
	Asymmetry       Asymmetry `yaml:"asymmetry"`
	FaceDetail      bool      `yaml:"face_detail"`
	Symmetry        Symmetry  `yaml:"symmetry"`
	Bevel           bool      `yaml:"bevel"`
	AssignMaterials bool      `yaml:"assign_materials"`
}

// UnmarshalYAML decodes the config and turns a null or empty seed into a
// random one
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type plain Config
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "seed" && node.Content[i+1].ShortTag() == "!!null" {
			c.Seed = RandomSeed()
		}
	}
	return nil
}

// Default segment bounds
var (
	DefaultHullSegments      = Range{Min: 3, Max: 6}
	DefaultAsymmetrySegments = Range{Min: 1, Max: 5}
)

// DefaultConfig returns the stock parameters
func DefaultConfig() Config {
	return Config{
		Seed:         RandomSeed(),
		Axes:         Axes{X: true},
		HullSegments: DefaultHullSegments,
		Asymmetry: Asymmetry{
			Enabled:  true,
			Segments: DefaultAsymmetrySegments,
		},
		FaceDetail:      true,
		Symmetry:        Symmetry{Horizontal: true},
		Bevel:           true,
		AssignMaterials: true,
	}
}

// Normalized clamps negative bounds to zero and reorders swapped bounds
func (c Config) Normalized() Config {
	c.HullSegments = c.HullSegments.normalized()
	c.Asymmetry.Segments = c.Asymmetry.Segments.normalized()
	return c
}

func (r Range) normalized() Range {
	r.Min = max(r.Min, 0)
	r.Max = max(r.Max, 0)
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// ParseCount parses a user supplied bound, returning fallback when the
// text is not an integer
func ParseCount(text string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fallback
	}
	return n
}
