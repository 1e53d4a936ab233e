package stairs

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

// StraightParams describes a linear staircase rising along +Y and running
// along +Z, centered on X = 0.
type StraightParams struct {
	Width  float64
	Height float64
	Depth  float64
	Steps  StepSizing
	// Sides adds side walls, a bottom and a back face, closing the solid.
	Sides bool
}

// DefaultStraight returns a 1 x 2 x 2 run of six steps with sides.
func DefaultStraight() StraightParams {
	return StraightParams{
		Width:  1,
		Height: 2,
		Depth:  2,
		Steps:  NumSteps(6),
		Sides:  true,
	}
}

// Validate checks the parameters and resolves the step layout.
func (p StraightParams) Validate() (Layout, error) {
	if err := requirePositive("width", p.Width); err != nil {
		return Layout{}, err
	}
	if err := requirePositive("height", p.Height); err != nil {
		return Layout{}, err
	}
	if err := requirePositive("depth", p.Depth); err != nil {
		return Layout{}, err
	}
	if p.Steps == nil {
		return Layout{}, fmt.Errorf("%w: step sizing is required", ErrInvalidParameter)
	}
	l, err := p.Steps.resolve(p.Height)
	if err != nil {
		return Layout{}, err
	}
	l.StepDepth = p.Depth / float64(l.NumSteps)
	if err := requireUsable("step depth", l.StepDepth); err != nil {
		return Layout{}, err
	}
	if err := requireUsable("half width", p.Width/2); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// straightStep holds the vertex ids of one step: the edge at the base of
// its riser and the edge at the top, both at the riser's depth.
type straightStep struct {
	baseLeft, baseRight int
	topLeft, topRight   int
}

// Straight generates the indexed geometry of a straight staircase.
func Straight(p StraightParams) (*Stairs, error) {
	l, err := p.Validate()
	if err != nil {
		return nil, err
	}

	n := l.NumSteps
	h, d := l.StepHeight, l.StepDepth
	hw := p.Width / 2

	vertexHint, faceHint := 4*n+2, 2*n
	if p.Sides {
		vertexHint, faceHint = 4*n+4, 6*n+2
	}
	b := mesh.NewBuilder(vertexHint, faceHint)

	steps := make([]straightStep, n)
	var v float64
	for i := 0; i < n; i++ {
		y0 := float64(i) * h
		y1 := float64(i+1) * h
		z := float64(i) * d
		s := straightStep{
			baseLeft:  b.AddVertex(vec3.T{-hw, y0, z}),
			baseRight: b.AddVertex(vec3.T{hw, y0, z}),
			topLeft:   b.AddVertex(vec3.T{-hw, y1, z}),
			topRight:  b.AddVertex(vec3.T{hw, y1, z}),
		}
		steps[i] = s

		if i > 0 {
			prev := steps[i-1]
			addTread(b, s.baseLeft, s.baseRight, prev.topRight, prev.topLeft, hw, v, d)
			v += d
		}

		b.AddFace(mesh.PartRiser,
			[]int{s.baseLeft, s.topLeft, s.topRight, s.baseRight},
			[]vec2.T{{-hw, v}, {-hw, v + h}, {hw, v + h}, {hw, v}})
		v += h
	}

	// Landing edge closing the last step's tread.
	last := steps[n-1]
	landingLeft := b.AddVertex(vec3.T{-hw, l.Height, p.Depth})
	landingRight := b.AddVertex(vec3.T{hw, l.Height, p.Depth})
	addTread(b, landingLeft, landingRight, last.topRight, last.topLeft, hw, v, d)

	if p.Sides {
		groundLeft := b.AddVertex(vec3.T{-hw, 0, p.Depth})
		groundRight := b.AddVertex(vec3.T{hw, 0, p.Depth})

		b.AddFace(mesh.PartBack,
			[]int{landingLeft, groundLeft, groundRight, landingRight},
			[]vec2.T{{-hw, l.Height}, {-hw, 0}, {hw, 0}, {hw, l.Height}})

		first := steps[0]
		b.AddFace(mesh.PartBottom,
			[]int{first.baseLeft, first.baseRight, groundRight, groundLeft},
			[]vec2.T{{-hw, 0}, {hw, 0}, {hw, p.Depth}, {-hw, p.Depth}})

		for i, s := range steps {
			nextLeft, nextRight := landingLeft, landingRight
			if i+1 < n {
				nextLeft, nextRight = steps[i+1].baseLeft, steps[i+1].baseRight
			}
			// Sawtooth above the stair's diagonal.
			addWorldXZFace(b, s.baseLeft, nextLeft, s.topLeft)
			addWorldXZFace(b, s.baseRight, s.topRight, nextRight)
			// Fan below the diagonal, anchored at the ground-back corner.
			addWorldXZFace(b, s.baseLeft, groundLeft, nextLeft)
			addWorldXZFace(b, s.baseRight, nextRight, groundRight)
		}
	}

	return &Stairs{
		Geometry: b.Build(),
		Layout:   l,
	}, nil
}

// addTread emits the horizontal quad between a step's front edge (front*)
// and the previous riser's top edge (back*). The strip coordinate v runs
// from the back edge to the front edge.
func addTread(b *mesh.Builder, frontLeft, frontRight, backRight, backLeft int, hw, v, d float64) {
	b.AddFace(mesh.PartTread,
		[]int{frontLeft, frontRight, backRight, backLeft},
		[]vec2.T{{-hw, v + d}, {hw, v + d}, {hw, v}, {-hw, v}})
}

// addWorldXZFace emits a side triangle whose UVs are the world X and Z of
// each corner.
func addWorldXZFace(b *mesh.Builder, ids ...int) {
	uvs := make([]vec2.T, len(ids))
	for i, id := range ids {
		p := b.Vertex(id)
		uvs[i] = vec2.T{p[0], p[2]}
	}
	b.AddFace(mesh.PartSide, ids, uvs)
}

// GenerateStraight builds a straight staircase and assembles its buffer.
func GenerateStraight(p StraightParams) (*mesh.Buffer, error) {
	s, err := Straight(p)
	if err != nil {
		return nil, err
	}
	return s.Assemble()
}
