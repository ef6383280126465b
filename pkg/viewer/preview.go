package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// Background is the clear colour of rendered previews
var Background = color.RGBA{R: 24, G: 26, B: 32, A: 255}

// WireColor is the colour of polygon outlines
var WireColor = color.RGBA{R: 110, G: 120, B: 140, A: 255}

// Preview rasterises ships with flat shading and a depth buffer
type Preview struct {
	Width, Height int
	Camera        *Camera
	// Light is the direction light travels from, in world space
	Light geometry.Vector3
	// Wireframe overlays the polygon outlines
	Wireframe bool
}

// NewPreview creates a preview framing the mesh from a three-quarter view
func NewPreview(m *mesh.Mesh, width, height int) *Preview {
	cam := NewCamera(m.Bounds())
	cam.Rotate(0.45, 0.8)
	return &Preview{
		Width:  width,
		Height: height,
		Camera: cam,
		Light:  geometry.NewVector3(0.4, 0.7, 1).Normalize(),
	}
}

// Render draws the mesh using the colours of the material slots. Emissive
// slots are drawn unlit.
func (p *Preview) Render(m *mesh.Mesh, materials []material.Material) *image.RGBA {
	r := newRaster(p.Width, p.Height, Background)

	for _, tri := range m.Triangulate() {
		r.fill(p.project(tri.V1), p.project(tri.V2), p.project(tri.V3), p.shade(tri, materials))
	}

	if p.Wireframe {
		for _, f := range m.Faces() {
			loop := f.Positions()
			for i, a := range loop {
				r.line(p.project(a), p.project(loop[(i+1)%len(loop)]), WireColor)
			}
		}
	}
	return r.img
}

func (p *Preview) project(v geometry.Vector3) screenPoint {
	x, y, z := p.Camera.Project(v, float64(p.Width), float64(p.Height))
	return screenPoint{x: x, y: y, z: z}
}

func (p *Preview) shade(tri geometry.Triangle, materials []material.Material) color.RGBA {
	tag := material.Tag(tri.Attribute)
	base := material.ColorOf(materials, tag)

	intensity := 1.0
	emissive := int(tag) < len(materials) && materials[tag].Emissive
	if !emissive {
		intensity = 0.25 + 0.75*math.Abs(tri.Normal.Dot(p.Light))
	}

	scale := func(c uint8) uint8 {
		return uint8(math.Min(255, float64(c)*intensity))
	}
	return color.RGBA{R: scale(base.R), G: scale(base.G), B: scale(base.B), A: 255}
}

// SavePNG renders the mesh and writes the image to filename
func (p *Preview) SavePNG(filename string, m *mesh.Mesh, materials []material.Material) error {
	img := p.Render(m, materials)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return file.Close()
}
