// Package openscad exports generated meshes as OpenSCAD polyhedra and
// drives the openscad binary to render them.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// WritePolyhedron writes one coloured polyhedron per material slot in use.
// OpenSCAD expects faces wound clockwise seen from outside, so loops are
// written reversed.
func WritePolyhedron(w io.Writer, m *mesh.Mesh, materials []material.Material) error {
	bw := bufio.NewWriter(w)

	groups := make(map[material.Tag][]*mesh.Face)
	for _, f := range m.Faces() {
		if f.IsValid() {
			groups[f.Material] = append(groups[f.Material], f)
		}
	}

	fmt.Fprintln(bw, "// generated ship")
	for _, tag := range material.Tags() {
		faces := groups[tag]
		if len(faces) == 0 {
			continue
		}

		c := material.ColorOf(materials, tag)
		fmt.Fprintf(bw, "\n// %s\n", tag)
		fmt.Fprintf(bw, "color([%.4f, %.4f, %.4f]) polyhedron(\n", float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)

		index := make(map[*mesh.Vert]int)
		var points []*mesh.Vert
		for _, f := range faces {
			for _, v := range f.Verts {
				if _, ok := index[v]; !ok {
					index[v] = len(points)
					points = append(points, v)
				}
			}
		}

		fmt.Fprint(bw, "  points = [")
		for i, v := range points {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "[%g, %g, %g]", v.Co.X, v.Co.Y, v.Co.Z)
		}
		fmt.Fprintln(bw, "],")

		fmt.Fprint(bw, "  faces = [")
		for i, f := range faces {
			if i > 0 {
				bw.WriteString(", ")
			}
			bw.WriteByte('[')
			for k := len(f.Verts) - 1; k >= 0; k-- {
				if k < len(f.Verts)-1 {
					bw.WriteString(", ")
				}
				fmt.Fprintf(bw, "%d", index[f.Verts[k]])
			}
			bw.WriteByte(']')
		}
		fmt.Fprintln(bw, "]")
		fmt.Fprintln(bw, ");")
	}

	return bw.Flush()
}

// Save writes the polyhedra to filename
func Save(filename string, m *mesh.Mesh, materials []material.Material) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WritePolyhedron(file, m, materials); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
