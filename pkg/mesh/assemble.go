package mesh

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Assemble expands an indexed face description into a Buffer.
// Each face contributes one corner per vertex carrying the face's flat
// normal. Triangles are emitted as (c0, c2, c1) and, for quads, (c0, c3, c2).
// Faces must survive the conversion to float32: coordinates that overflow
// and faces that collapse to zero area are errors.
func Assemble(g *Geometry) (*Buffer, error) {
	corners := 0
	tris := 0
	for i, face := range g.Faces {
		if err := checkFace(g, i, face); err != nil {
			return nil, err
		}
		corners += len(face.Indices)
		tris += len(face.Indices) - 2
	}

	buf := &Buffer{
		Positions: make([][3]float32, 0, corners),
		Normals:   make([][3]float32, 0, corners),
		UVs:       make([][2]float32, 0, corners),
		Indices:   make([]uint32, 0, 3*tris),
		Bounds: Bounds{
			Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
			Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
		},
	}

	for i, face := range g.Faces {
		var corner [4][3]float32
		for j, id := range face.Indices {
			corner[j] = toFloat32(g.Vertices[id])
			if !finite32(corner[j]) {
				return nil, fmt.Errorf("%w: face %d vertex %d is %v", ErrCoordinate, i, id, g.Vertices[id])
			}
		}

		p0 := g.Vertices[face.Indices[0]]
		p1 := g.Vertices[face.Indices[1]]
		p2 := g.Vertices[face.Indices[2]]
		e1 := vec3.Sub(&p1, &p0)
		e2 := vec3.Sub(&p2, &p0)
		n := vec3.Cross(&e1, &e2)
		length := n.Length()
		if length == 0 {
			return nil, fmt.Errorf("%w: face %d", ErrDegenerateFace, i)
		}
		if collapsed32(corner[0], corner[1], corner[2]) {
			return nil, fmt.Errorf("%w: face %d collapses in float32", ErrDegenerateFace, i)
		}
		n.Scale(1 / length)
		normal := toFloat32(n)

		base := uint32(len(buf.Positions))
		for j := range face.Indices {
			pos := corner[j]
			updateBounds(&buf.Bounds, pos)
			buf.Positions = append(buf.Positions, pos)
			buf.Normals = append(buf.Normals, normal)
			buf.UVs = append(buf.UVs, [2]float32{float32(face.UVs[j][0]), float32(face.UVs[j][1])})
		}

		start := int32(len(buf.Indices))
		buf.Indices = append(buf.Indices, base, base+2, base+1)
		if len(face.Indices) == 4 {
			buf.Indices = append(buf.Indices, base, base+3, base+2)
		}
		buf.addToGroup(face.Part, start, int32(len(buf.Indices))-start)
	}

	if len(buf.Positions) == 0 {
		buf.Bounds = Bounds{}
	}
	return buf, nil
}

func checkFace(g *Geometry, i int, face Face) error {
	if n := len(face.Indices); n != 3 && n != 4 {
		return fmt.Errorf("%w: face %d has %d", ErrFaceArity, i, n)
	}
	if len(face.UVs) != len(face.Indices) {
		return fmt.Errorf("%w: face %d has %d vertices and %d uvs",
			ErrUVCount, i, len(face.Indices), len(face.UVs))
	}
	for _, id := range face.Indices {
		if id < 0 || id >= len(g.Vertices) {
			return fmt.Errorf("%w: face %d references %d, have %d vertices",
				ErrVertexRange, i, id, len(g.Vertices))
		}
	}
	return nil
}

// addToGroup extends the last group when the part matches, otherwise starts
// a new one.
func (b *Buffer) addToGroup(part Part, start, count int32) {
	if n := len(b.Groups); n > 0 && b.Groups[n-1].Part == part {
		b.Groups[n-1].IndexCount += count
		return
	}
	b.Groups = append(b.Groups, Group{Part: part, StartIndex: start, IndexCount: count})
}

func toFloat32(v vec3.T) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func finite32(p [3]float32) bool {
	for _, c := range p {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}

// collapsed32 reports whether the rounded triangle p0 p1 p2 has no area.
func collapsed32(p0, p1, p2 [3]float32) bool {
	var e1, e2 [3]float64
	for k := 0; k < 3; k++ {
		e1[k] = float64(p1[k]) - float64(p0[k])
		e2[k] = float64(p2[k]) - float64(p0[k])
	}
	return e1[1]*e2[2]-e1[2]*e2[1] == 0 &&
		e1[2]*e2[0]-e1[0]*e2[2] == 0 &&
		e1[0]*e2[1]-e1[1]*e2[0] == 0
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
