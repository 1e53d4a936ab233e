package stairs

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/Faultbox/stairgen/pkg/mesh"
)

// CurvedParams describes a helical staircase winding around a vertical axis.
type CurvedParams struct {
	Height    float64
	StepWidth float64
	Steps     StepSizing
	// Curvature is the total sweep in degrees.
	Curvature float64
	// InnerRadius is the distance from the axis to the inner tread edge.
	InnerRadius float64
	// CCW sweeps counter-clockwise seen from above, mirroring X.
	CCW   bool
	Sides bool
}

// DefaultCurved returns a six step, 60 degree run with inner radius 3.
func DefaultCurved() CurvedParams {
	return CurvedParams{
		Height:      2,
		StepWidth:   1,
		Steps:       NumSteps(6),
		Curvature:   60,
		InnerRadius: 3,
		Sides:       true,
	}
}

// Validate checks the parameters and resolves the step layout.
func (p CurvedParams) Validate() (Layout, error) {
	if err := requirePositive("height", p.Height); err != nil {
		return Layout{}, err
	}
	if err := requirePositive("step width", p.StepWidth); err != nil {
		return Layout{}, err
	}
	if err := requirePositive("inner radius", p.InnerRadius); err != nil {
		return Layout{}, err
	}
	if !isFinite(p.Curvature) || p.Curvature < 0 {
		return Layout{}, fmt.Errorf("%w: curvature must be a non-negative finite angle, got %v",
			ErrInvalidParameter, p.Curvature)
	}
	if p.Steps == nil {
		return Layout{}, fmt.Errorf("%w: step sizing is required", ErrInvalidParameter)
	}
	l, err := p.Steps.resolve(p.Height)
	if err != nil {
		return Layout{}, err
	}
	n := float64(l.NumSteps)
	l.DeltaAngle = p.Curvature * math.Pi / 180 / n
	if err := requireUsable("step angle", l.DeltaAngle); err != nil {
		return Layout{}, err
	}
	// Wider steps fold the tread back over itself.
	if l.DeltaAngle >= math.Pi {
		return Layout{}, fmt.Errorf("%w: each step must sweep less than 180 degrees, got %v",
			ErrDegenerateGeometry, l.DeltaAngle*180/math.Pi)
	}
	// The far side of the sweep sits one axis offset plus the outer radius
	// from the origin.
	if reach := 2*p.InnerRadius + 1.5*p.StepWidth; !fitsFloat32(reach) {
		return Layout{}, fmt.Errorf("%w: inner radius and step width reach %v, out of float32 range",
			ErrInvalidParameter, reach)
	}
	// Running-line arc of one step, divided by the step count once more.
	l.StepDepth = l.DeltaAngle * (p.InnerRadius + p.StepWidth/2) / n
	if err := requireUsable("step depth", l.StepDepth); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// radialPair is an inner/outer vertex pair on one radial line.
type radialPair struct {
	inner, outer int
}

// curvedStep holds a step's riser edges at its start angle: base at the
// step's own height, top at the next step's height.
type curvedStep struct {
	base, top radialPair
}

// sweep places points around the rotation axis.
type sweep struct {
	delta       float64
	inner       float64
	outer       float64
	axisX, dirX float64
}

func (s sweep) point(i int, radius, y float64) vec3.T {
	a := float64(i) * s.delta
	return vec3.T{s.dirX*math.Cos(a)*radius + s.axisX, y, math.Sin(a) * radius}
}

func (s sweep) pair(b *mesh.Builder, i int, y float64) radialPair {
	return radialPair{
		inner: b.AddVertex(s.point(i, s.inner, y)),
		outer: b.AddVertex(s.point(i, s.outer, y)),
	}
}

// Curved generates the indexed geometry of a helical staircase.
func Curved(p CurvedParams) (*Stairs, error) {
	l, err := p.Validate()
	if err != nil {
		return nil, err
	}

	n := l.NumSteps
	h, d := l.StepHeight, l.StepDepth
	w := p.StepWidth

	sw := sweep{
		delta: l.DeltaAngle,
		inner: p.InnerRadius,
		outer: p.InnerRadius + w,
		axisX: p.InnerRadius + w/2,
		dirX:  -1,
	}
	if p.CCW {
		sw.axisX, sw.dirX = -sw.axisX, 1
	}

	vertexHint, faceHint := 4*n+2, 2*n
	if p.Sides {
		vertexHint, faceHint = 6*n+2, 7*n+1
	}
	b := mesh.NewBuilder(vertexHint, faceHint)

	steps := make([]curvedStep, n)
	for i := range steps {
		steps[i].base = sw.pair(b, i, float64(i)*h)
		steps[i].top = sw.pair(b, i, float64(i+1)*h)
	}
	end := sw.pair(b, n, float64(n)*h)

	next := func(i int) radialPair {
		if i+1 < n {
			return steps[i+1].base
		}
		return end
	}

	var v float64
	for i, s := range steps {
		b.AddFace(mesh.PartRiser,
			[]int{s.base.inner, s.base.outer, s.top.outer, s.top.inner},
			[]vec2.T{{0, v}, {w, v}, {w, v + h}, {0, v + h}})
		v += h

		nx := next(i)
		b.AddFace(mesh.PartTread,
			[]int{s.top.inner, s.top.outer, nx.outer, nx.inner},
			[]vec2.T{{0, v}, {w, v}, {w, v + d}, {0, v + d}})
		v += d
	}

	if p.Sides {
		// ground[i] sits under sweep position i; position 0 reuses the
		// first riser's base, which is already at ground level.
		ground := make([]radialPair, n+1)
		ground[0] = steps[0].base
		for i := 1; i <= n; i++ {
			ground[i] = sw.pair(b, i, 0)
		}

		// Side UVs: u is the running position along the sweep, v the height.
		sideUV := func(ids []int, us []float64) {
			uvs := make([]vec2.T, len(ids))
			for k, id := range ids {
				uvs[k] = vec2.T{us[k], b.Vertex(id)[1]}
			}
			b.AddFace(mesh.PartSide, ids, uvs)
		}

		for i, s := range steps {
			u0, u1 := float64(i)*d, float64(i+1)*d
			nx := next(i)
			sideUV([]int{s.base.inner, s.top.inner, nx.inner}, []float64{u0, u0, u1})
			sideUV([]int{s.base.outer, nx.outer, s.top.outer}, []float64{u0, u1, u0})
		}

		for i, s := range steps {
			u0, u1 := float64(i)*d, float64(i+1)*d
			nx, g0, g1 := next(i), ground[i], ground[i+1]
			if i == 0 {
				sideUV([]int{s.base.inner, nx.inner, g1.inner}, []float64{u0, u1, u1})
				sideUV([]int{s.base.outer, g1.outer, nx.outer}, []float64{u0, u1, u1})
				continue
			}
			sideUV([]int{g0.inner, s.base.inner, nx.inner, g1.inner}, []float64{u0, u0, u1, u1})
			sideUV([]int{g0.outer, g1.outer, nx.outer, s.base.outer}, []float64{u0, u1, u1, u0})
		}

		for i := 0; i < n; i++ {
			g0, g1 := ground[i], ground[i+1]
			u0, u1 := float64(i)*d, float64(i+1)*d
			b.AddFace(mesh.PartBottom,
				[]int{g0.inner, g1.inner, g1.outer, g0.outer},
				[]vec2.T{{0, u0}, {0, u1}, {w, u1}, {w, u0}})
		}

		gn := ground[n]
		b.AddFace(mesh.PartBack,
			[]int{end.inner, end.outer, gn.outer, gn.inner},
			[]vec2.T{{0, l.Height}, {w, l.Height}, {w, 0}, {0, 0}})
	}

	// Mirroring X turns the solid inside out; restore outward winding.
	if p.CCW {
		b.FlipWinding()
	}

	return &Stairs{
		Geometry: b.Build(),
		Layout:   l,
		Axis:     vec3.T{sw.axisX, 0, 0},
	}, nil
}

// GenerateCurved builds a curved staircase and assembles its buffer.
func GenerateCurved(p CurvedParams) (*mesh.Buffer, error) {
	s, err := Curved(p)
	if err != nil {
		return nil, err
	}
	return s.Assemble()
}
