// Package stairs generates straight and curved staircase meshes from a
// handful of numeric parameters.
//
// Generators validate all inputs before emitting geometry and return errors
// wrapping ErrInvalidParameter or ErrDegenerateGeometry. Results are fresh
// per call; nothing is shared between calls, so generators are safe for
// concurrent use.
package stairs

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

// Stairs is a generated staircase before assembly.
type Stairs struct {
	Geometry *mesh.Geometry
	Layout   Layout
	// Axis is a point on the vertical rotation axis of a curved run.
	// Zero for straight runs.
	Axis vec3.T
}

// Assemble converts the geometry into a renderer-ready buffer.
func (s *Stairs) Assemble() (*mesh.Buffer, error) {
	return mesh.Assemble(s.Geometry)
}
