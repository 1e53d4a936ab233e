package export

import (
	"io"

	"github.com/hschendel/stl"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

const stlHeaderSize = 80

// ToSolid converts buf into an STL solid. Triangles are written
// counter-clockwise with the face normal of their first corner.
func ToSolid(buf *mesh.Buffer, name string) *stl.Solid {
	header := make([]byte, stlHeaderSize)
	copy(header, "stairgen "+name)

	solid := &stl.Solid{
		Name:         name,
		BinaryHeader: header,
		Triangles:    make([]stl.Triangle, buf.TriangleCount()),
	}
	for t := range solid.Triangles {
		tri := buf.Triangle(t)
		solid.Triangles[t] = stl.Triangle{
			Normal: stl.Vec3(buf.Normals[tri[0]]),
			Vertices: [3]stl.Vec3{
				stl.Vec3(buf.Positions[tri[0]]),
				stl.Vec3(buf.Positions[tri[2]]),
				stl.Vec3(buf.Positions[tri[1]]),
			},
		}
	}
	return solid
}

// WriteSTL writes buf as binary STL, or ASCII STL when ascii is set.
func WriteSTL(w io.Writer, buf *mesh.Buffer, name string, ascii bool) error {
	solid := ToSolid(buf, name)
	solid.IsAscii = ascii
	return solid.WriteAll(w)
}
