package mesh

import "fmt"

// Group is a contiguous range of the index buffer whose faces share a part.
type Group struct {
	Part       Part
	StartIndex int32
	IndexCount int32
}

// Bounds holds the axis-aligned bounding box of a buffer.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Vertex is one interleaved corner, laid out for direct GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Buffer is the flattened mesh handed to a renderer. Positions, Normals and
// UVs have one entry per emitted corner; Indices lists triangles over corners.
type Buffer struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
	Groups    []Group
	Bounds    Bounds
}

// CornerCount returns the number of emitted corners.
func (b *Buffer) CornerCount() int {
	return len(b.Positions)
}

// TriangleCount returns the number of triangles in the index list.
func (b *Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// Triangle returns the corner ids of triangle i.
func (b *Buffer) Triangle(i int) [3]uint32 {
	return [3]uint32{b.Indices[3*i], b.Indices[3*i+1], b.Indices[3*i+2]}
}

// Interleaved returns the corners as interleaved vertices.
func (b *Buffer) Interleaved() []Vertex {
	out := make([]Vertex, len(b.Positions))
	for i := range out {
		out[i] = Vertex{Position: b.Positions[i], Normal: b.Normals[i], TexCoord: b.UVs[i]}
	}
	return out
}

// Validate checks that the buffer arrays agree in length and that every
// index references an emitted corner.
func (b *Buffer) Validate() error {
	n := len(b.Positions)
	if len(b.Normals) != n || len(b.UVs) != n {
		return fmt.Errorf("%w: %d positions, %d normals, %d uvs",
			ErrBufferLayout, n, len(b.Normals), len(b.UVs))
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrBufferLayout, len(b.Indices))
	}
	for i, idx := range b.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d references corner %d of %d", ErrBufferLayout, i, idx, n)
		}
	}
	return nil
}
