package export

import (
	"fmt"
	"io"

	"github.com/udhos/gwob"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

// Interleaved corner layout: position (3), texture (2), normal (3) floats.
const (
	objStrideFloats  = 8
	objOffsetTexture = 3
	objOffsetNormal  = 5
)

// ToObj converts buf into a gwob object. Every corner becomes its own
// v/vt/vn triple, so face-local UVs and flat normals survive. Indices are
// reordered counter-clockwise and each group becomes an OBJ group named
// after its part.
func ToObj(buf *mesh.Buffer) *gwob.Obj {
	o := &gwob.Obj{
		Coord:                make([]float32, 0, objStrideFloats*buf.CornerCount()),
		Indices:              make([]int, 0, len(buf.Indices)),
		TextCoordFound:       true,
		NormCoordFound:       true,
		BigIndexFound:        buf.CornerCount() > 65535,
		StrideSize:           4 * objStrideFloats,
		StrideOffsetPosition: 0,
		StrideOffsetTexture:  4 * objOffsetTexture,
		StrideOffsetNormal:   4 * objOffsetNormal,
	}

	for _, v := range buf.Interleaved() {
		o.Coord = append(o.Coord, v.Position[:]...)
		o.Coord = append(o.Coord, v.TexCoord[:]...)
		o.Coord = append(o.Coord, v.Normal[:]...)
	}
	for t := 0; t < buf.TriangleCount(); t++ {
		tri := buf.Triangle(t)
		o.Indices = append(o.Indices, int(tri[0]), int(tri[2]), int(tri[1]))
	}

	groups := buf.Groups
	if len(groups) == 0 && len(buf.Indices) > 0 {
		groups = []mesh.Group{{Part: mesh.PartSide, IndexCount: int32(len(buf.Indices))}}
	}
	for _, g := range groups {
		o.Groups = append(o.Groups, &gwob.Group{
			Name:       g.Part.String(),
			IndexBegin: int(g.StartIndex),
			IndexCount: int(g.IndexCount),
		})
	}
	return o
}

// WriteOBJ writes buf as a Wavefront OBJ object.
func WriteOBJ(w io.Writer, buf *mesh.Buffer, name string) error {
	if _, err := fmt.Fprintf(w, "# stairgen: %d corners, %d triangles\no %s\n",
		buf.CornerCount(), buf.TriangleCount(), name); err != nil {
		return err
	}
	return ToObj(buf).ToWriter(w)
}
