package material

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Source supplies uniform draws in [0, 1)
type Source interface {
	Float64() float64
}

// Material describes one slot of a ship's material list
type Material struct {
	Name  string
	Tag   Tag
	Color color.NRGBA
	// Specular intensity in [0, 1]
	Specular float64
	// Emissive materials glow with their own colour
	Emissive bool
	// Placeholder marks a blank slot used when materials are not assigned
	Placeholder bool

	NormalMap *Texture
	Diffuse   *Texture
	Emission  *Texture
}

var placeholderColor = color.NRGBA{R: 204, G: 204, B: 204, A: 255}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// hls converts hue, lightness and saturation in [0, 1] to a colour
func hls(h, l, s float64) colorful.Color {
	return colorful.Hsl(h*360, s, l).Clamped()
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Build creates the five material slots in tag order. The palette is always
// drawn from src so the draw sequence does not depend on assign; when assign
// is false the returned slots are blank placeholders. Textures are attached
// when lib is enabled; a texture that cannot be loaded aborts the build.
func Build(src Source, lib *Library, assign bool) ([]Material, error) {
	hull := hls(src.Float64(), uniform(src, 0.05, 0.5), uniform(src, 0, 0.25))

	var normal, diffuse, emission *Texture
	if lib.Enabled() {
		var err error
		if normal, err = lib.Load(HullNormalTexture, true); err != nil {
			return nil, fmt.Errorf("hull normal map: %w", err)
		}
		if diffuse, err = lib.Load(LightsDiffuseTexture, true); err != nil {
			return nil, fmt.Errorf("hull lights diffuse: %w", err)
		}
		if emission, err = lib.Load(LightsEmissionTexture, false); err != nil {
			return nil, fmt.Errorf("hull lights emission: %w", err)
		}
	}

	dark := colorful.Color{R: hull.R * 0.3, G: hull.G * 0.3, B: hull.B * 0.3}
	glow := hls(src.Float64(), uniform(src, 0.5, 1), 1)

	if !assign {
		return Placeholders(), nil
	}

	return []Material{
		{Name: Hull.String(), Tag: Hull, Color: toNRGBA(hull), Specular: 0.1, NormalMap: normal},
		{Name: HullLights.String(), Tag: HullLights, Color: toNRGBA(hull), Specular: 0.1, NormalMap: normal, Diffuse: diffuse, Emission: emission},
		{Name: HullDark.String(), Tag: HullDark, Color: toNRGBA(dark), Specular: 0.1, NormalMap: normal},
		{Name: ExhaustBurn.String(), Tag: ExhaustBurn, Color: toNRGBA(glow), Emissive: true},
		{Name: GlowDisc.String(), Tag: GlowDisc, Color: toNRGBA(glow), Emissive: true},
	}, nil
}

// Placeholders returns five blank slots named "Material"
func Placeholders() []Material {
	slots := make([]Material, 0, SlotCount)
	for _, tag := range Tags() {
		slots = append(slots, Material{
			Name:        "Material",
			Tag:         tag,
			Color:       placeholderColor,
			Specular:    0.5,
			Placeholder: true,
		})
	}
	return slots
}

// ColorOf returns the colour of the slot for tag, falling back to the
// placeholder grey when the list has no such slot
func ColorOf(materials []Material, tag Tag) color.NRGBA {
	if int(tag) < len(materials) {
		return materials[tag].Color
	}
	return placeholderColor
}
