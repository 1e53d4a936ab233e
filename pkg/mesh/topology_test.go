package mesh

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

func tetrahedron(flipOne bool) *Geometry {
	b := NewBuilder(4, 4)
	a := b.AddVertex(vec3.T{0, 0, 0})
	x := b.AddVertex(vec3.T{1, 0, 0})
	y := b.AddVertex(vec3.T{0, 1, 0})
	z := b.AddVertex(vec3.T{0, 0, 1})
	uv := func() []vec2.T { return make([]vec2.T, 3) }
	b.AddFace(PartBottom, []int{a, y, x}, uv())
	b.AddFace(PartSide, []int{a, x, z}, uv())
	b.AddFace(PartSide, []int{a, z, y}, uv())
	if flipOne {
		b.AddFace(PartSide, []int{x, z, y}, uv())
	} else {
		b.AddFace(PartSide, []int{x, y, z}, uv())
	}
	return b.Build()
}

func TestAnalyzeClosedSolid(t *testing.T) {
	buf, err := Assemble(tetrahedron(false))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	topo := Analyze(buf)
	if topo.Edges != 6 {
		t.Errorf("expected 6 edges, got %d", topo.Edges)
	}
	if !topo.Watertight() {
		t.Errorf("expected watertight, got %+v", topo)
	}
	if !topo.Oriented() {
		t.Errorf("expected consistent orientation, got %+v", topo)
	}

	if v := SignedVolume(buf); math.Abs(v-1.0/6) > 1e-6 {
		t.Errorf("SignedVolume = %v, want 1/6", v)
	}
}

func TestAnalyzeFlippedFace(t *testing.T) {
	buf, err := Assemble(tetrahedron(true))
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	topo := Analyze(buf)
	if !topo.Watertight() {
		t.Errorf("flipping a face keeps the mesh closed, got %+v", topo)
	}
	if topo.Oriented() {
		t.Errorf("expected orientation mismatch, got %+v", topo)
	}
	if topo.Unpaired != 3 {
		t.Errorf("expected 3 unpaired edges, got %d", topo.Unpaired)
	}
}

func TestAnalyzeOpenQuad(t *testing.T) {
	buf, err := Assemble(unitQuad())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	topo := Analyze(buf)
	// 4 rim edges plus the shared diagonal.
	if topo.Edges != 5 {
		t.Errorf("expected 5 edges, got %d", topo.Edges)
	}
	if topo.Boundary != 4 {
		t.Errorf("expected 4 boundary edges, got %d", topo.Boundary)
	}
	if topo.Watertight() {
		t.Error("a single quad must not be watertight")
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	topo := Analyze(&Buffer{})
	if topo.Watertight() {
		t.Error("an empty buffer must not be watertight")
	}
}
