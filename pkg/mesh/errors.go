package mesh

import "errors"

// Errors returned by Assemble and Buffer.Validate.
var (
	ErrFaceArity      = errors.New("mesh: face must have 3 or 4 vertices")
	ErrVertexRange    = errors.New("mesh: vertex id out of range")
	ErrUVCount        = errors.New("mesh: face UV count does not match vertex count")
	ErrDegenerateFace = errors.New("mesh: face has zero area")
	ErrCoordinate     = errors.New("mesh: vertex coordinate out of float32 range")
	ErrBufferLayout   = errors.New("mesh: inconsistent buffer layout")
)
