// Package mesh holds the indexed face description produced by geometry
// generators and assembles it into flat, renderer-ready buffers.
package mesh

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Part identifies the role a face plays in the generated solid.
type Part uint8

const (
	PartRiser Part = iota
	PartTread
	PartSide
	PartBottom
	PartBack
)

var partNames = [...]string{"riser", "tread", "side", "bottom", "back"}

func (p Part) String() string {
	if int(p) < len(partNames) {
		return partNames[p]
	}
	return "unknown"
}

// Face is a planar polygon of 3 or 4 vertex ids. Indices are ordered
// counter-clockwise as seen from outside the solid; UVs are face-local and
// follow the same order.
type Face struct {
	Indices []int
	UVs     []vec2.T
	Part    Part
}

// Geometry is an indexed face description. It is produced by a Builder and
// must not be modified afterwards.
type Geometry struct {
	Vertices []vec3.T
	Faces    []Face
}

// Builder accumulates vertices and faces for one generation run.
type Builder struct {
	vertices []vec3.T
	faces    []Face
}

// NewBuilder returns a builder with capacity hints for vertices and faces.
func NewBuilder(vertexHint, faceHint int) *Builder {
	return &Builder{
		vertices: make([]vec3.T, 0, vertexHint),
		faces:    make([]Face, 0, faceHint),
	}
}

// AddVertex appends p and returns its vertex id.
func (b *Builder) AddVertex(p vec3.T) int {
	b.vertices = append(b.vertices, p)
	return len(b.vertices) - 1
}

// Vertex returns the position of an already emitted vertex.
func (b *Builder) Vertex(id int) vec3.T {
	return b.vertices[id]
}

// AddFace appends a face. The slices are owned by the builder afterwards.
func (b *Builder) AddFace(part Part, indices []int, uvs []vec2.T) {
	b.faces = append(b.faces, Face{Indices: indices, UVs: uvs, Part: part})
}

// FlipWinding reverses the vertex order of every face emitted so far,
// keeping each face's first vertex in place.
func (b *Builder) FlipWinding() {
	for i := range b.faces {
		f := &b.faces[i]
		reverseTail(f.Indices)
		reverseTail(f.UVs)
	}
}

func reverseTail[T any](s []T) {
	for i, j := 1, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Build freezes the accumulated data. The builder must not be used again.
func (b *Builder) Build() *Geometry {
	g := &Geometry{Vertices: b.vertices, Faces: b.faces}
	b.vertices, b.faces = nil, nil
	return g
}

// CountParts returns the number of faces tagged with each part.
func (g *Geometry) CountParts() map[Part]int {
	counts := make(map[Part]int)
	for _, f := range g.Faces {
		counts[f.Part]++
	}
	return counts
}
