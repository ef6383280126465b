package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Format selects the STL encoding
type Format int

const (
	Binary Format = iota
	ASCII
)

// WriteBinary writes the model in binary STL. The name is stored in the
// 80 byte header and each triangle's attribute word is preserved.
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, 80)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if uint64(len(m.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles: %d", len(m.Triangles))
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	record := make([]byte, 50)
	for i, t := range m.Triangles {
		values := [12]float64{
			t.Normal.X, t.Normal.Y, t.Normal.Z,
			t.V1.X, t.V1.Y, t.V1.Z,
			t.V2.X, t.V2.Y, t.V2.Z,
			t.V3.X, t.V3.Y, t.V3.Z,
		}
		for k, v := range values {
			binary.LittleEndian.PutUint32(record[k*4:], math.Float32bits(float32(v)))
		}
		binary.LittleEndian.PutUint16(record[48:], t.Attribute)
		if _, err := bw.Write(record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteASCII writes the model in ASCII STL. Attribute words are not
// representable and are dropped.
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.ReplaceAll(m.Name, "\n", " ")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range [3]struct{ X, Y, Z float64 }{
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
			{t.V3.X, t.V3.Y, t.V3.Z},
		} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// Save writes the model to filename in the given format
func Save(filename string, m *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if format == ASCII {
		err = WriteASCII(file, m)
	} else {
		err = WriteBinary(file, m)
	}
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
