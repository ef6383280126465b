// Package obj exports generated meshes as Wavefront OBJ with a companion
// MTL material library.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// MaterialName returns the MTL name used for a slot
func MaterialName(tag material.Tag) string {
	return tag.String()
}

// Write writes the mesh as OBJ polygons. Faces are grouped by material slot
// with one usemtl statement per group; mtllib is referenced when non-empty.
func Write(w io.Writer, m *mesh.Mesh, mtllib string) error {
	bw := bufio.NewWriter(w)

	if mtllib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtllib)
	}
	fmt.Fprintln(bw, "o ship")

	index := make(map[*mesh.Vert]int)
	for i, v := range m.Verts() {
		index[v] = i + 1
		fmt.Fprintf(bw, "v %g %g %g\n", v.Co.X, v.Co.Y, v.Co.Z)
	}

	groups := make(map[material.Tag][]*mesh.Face)
	for _, f := range m.Faces() {
		if f.IsValid() {
			groups[f.Material] = append(groups[f.Material], f)
		}
	}

	for _, tag := range material.Tags() {
		faces := groups[tag]
		if len(faces) == 0 {
			continue
		}
		fmt.Fprintf(bw, "usemtl %s\n", MaterialName(tag))
		for _, f := range faces {
			bw.WriteString("f")
			for _, v := range f.Verts {
				fmt.Fprintf(bw, " %d", index[v])
			}
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// WriteMTL writes the material library. Texture maps are referenced by
// their file path.
func WriteMTL(w io.Writer, materials []material.Material) error {
	bw := bufio.NewWriter(w)

	for _, mat := range materials {
		r, g, b := float64(mat.Color.R)/255, float64(mat.Color.G)/255, float64(mat.Color.B)/255
		fmt.Fprintf(bw, "newmtl %s\n", MaterialName(mat.Tag))
		fmt.Fprintf(bw, "Kd %.4f %.4f %.4f\n", r, g, b)
		fmt.Fprintf(bw, "Ks %.4f %.4f %.4f\n", mat.Specular, mat.Specular, mat.Specular)
		if mat.Emissive {
			fmt.Fprintf(bw, "Ke %.4f %.4f %.4f\n", r, g, b)
			fmt.Fprintln(bw, "illum 1")
		} else {
			fmt.Fprintln(bw, "illum 2")
		}
		if mat.NormalMap != nil {
			fmt.Fprintf(bw, "map_Bump %s\n", mat.NormalMap.Path)
		}
		if mat.Diffuse != nil {
			fmt.Fprintf(bw, "map_Kd %s\n", mat.Diffuse.Path)
		}
		if mat.Emission != nil {
			fmt.Fprintf(bw, "map_Ke %s\n", mat.Emission.Path)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Save writes filename and a sibling .mtl file holding the materials
func Save(filename string, m *mesh.Mesh, materials []material.Material) error {
	mtlPath := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".mtl"

	if err := writeFile(mtlPath, func(w io.Writer) error { return WriteMTL(w, materials) }); err != nil {
		return err
	}
	return writeFile(filename, func(w io.Writer) error { return Write(w, m, filepath.Base(mtlPath)) })
}

func writeFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
