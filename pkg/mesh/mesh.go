// Package mesh is a small polygon-mesh kernel: ordered vertex and face
// storage plus the editing primitives the ship generator builds on.
package mesh

import (
	"math/rand/v2"

	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
)

// MergeDistance is the tolerance used when welding vertices onto a mirror plane
const MergeDistance = 1e-4

// Vert is a mesh vertex
type Vert struct {
	Co      geometry.Vector3
	id      int
	removed bool
}

// ID returns the vertex id, unique within its mesh and never reused
func (v *Vert) ID() int {
	return v.id
}

// Face is an ordered vertex loop, counter-clockwise seen from outside
type Face struct {
	Verts    []*Vert
	Material material.Tag
	removed  bool
}

// IsValid reports whether the face is still part of its mesh and has at least three vertices
func (f *Face) IsValid() bool {
	return f != nil && !f.removed && len(f.Verts) >= 3
}

// Geometry is the set of elements created by a primitive
type Geometry struct {
	Verts []*Vert
	Faces []*Face
}

// Mesh stores vertices and faces in insertion order
type Mesh struct {
	verts     []*Vert
	faces     []*Face
	deadVerts int
	deadFaces int
	nextID    int
	jitter    *rand.Rand
}

// New creates an empty mesh
func New() *Mesh {
	return &Mesh{
		verts:  make([]*Vert, 0, 64),
		faces:  make([]*Face, 0, 64),
		jitter: rand.New(rand.NewPCG(0, 0)),
	}
}

// AddVert appends a vertex at the given position
func (m *Mesh) AddVert(co geometry.Vector3) *Vert {
	v := &Vert{Co: co, id: m.nextID}
	m.nextID++
	m.verts = append(m.verts, v)
	return v
}

// AddFace appends a face over the given loop
func (m *Mesh) AddFace(loop []*Vert, tag material.Tag) *Face {
	f := &Face{Verts: append([]*Vert(nil), loop...), Material: tag}
	m.faces = append(m.faces, f)
	return f
}

// RemoveFace detaches a face from the mesh. Its vertices are kept.
func (m *Mesh) RemoveFace(f *Face) {
	if f == nil || f.removed {
		return
	}
	f.removed = true
	m.deadFaces++
}

func (m *Mesh) removeVert(v *Vert) {
	if v.removed {
		return
	}
	v.removed = true
	m.deadVerts++
}

// Faces returns a snapshot of the live faces in insertion order
func (m *Mesh) Faces() []*Face {
	if m.deadFaces > 0 {
		live := m.faces[:0]
		for _, f := range m.faces {
			if !f.removed {
				live = append(live, f)
			}
		}
		clear(m.faces[len(live):])
		m.faces = live
		m.deadFaces = 0
	}
	return append([]*Face(nil), m.faces...)
}

// Verts returns a snapshot of the live vertices in insertion order
func (m *Mesh) Verts() []*Vert {
	if m.deadVerts > 0 {
		live := m.verts[:0]
		for _, v := range m.verts {
			if !v.removed {
				live = append(live, v)
			}
		}
		clear(m.verts[len(live):])
		m.verts = live
		m.deadVerts = 0
	}
	return append([]*Vert(nil), m.verts...)
}

// FaceCount returns the number of live faces
func (m *Mesh) FaceCount() int {
	return len(m.faces) - m.deadFaces
}

// VertexCount returns the number of live vertices
func (m *Mesh) VertexCount() int {
	return len(m.verts) - m.deadVerts
}

// Bounds returns the bounding box of all live vertices
func (m *Mesh) Bounds() geometry.BoundingBox {
	b := geometry.NewBoundingBox()
	for _, v := range m.verts {
		if !v.removed {
			b.Extend(v.Co)
		}
	}
	return b
}

// MaterialCounts returns the number of live faces per material tag
func (m *Mesh) MaterialCounts() map[material.Tag]int {
	counts := make(map[material.Tag]int, material.SlotCount)
	for _, f := range m.faces {
		if !f.removed {
			counts[f.Material]++
		}
	}
	return counts
}
