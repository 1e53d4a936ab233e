package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Faultbox/stairgen/internal/export"
	"github.com/Faultbox/stairgen/pkg/mesh"
	"github.com/Faultbox/stairgen/pkg/stairs"
)

func buildReport(t *testing.T, sides bool) report {
	t.Helper()
	p := stairs.DefaultCurved()
	p.Steps = stairs.NumSteps(4)
	p.Sides = sides
	s, err := stairs.Curved(p)
	if err != nil {
		t.Fatalf("Curved failed: %v", err)
	}
	buf, err := s.Assemble()
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return report{
		Kind:     "curved",
		Path:     "stairs.stl",
		Format:   export.FormatSTL,
		Layout:   s.Layout,
		Parts:    s.Geometry.CountParts(),
		Buffer:   buf,
		Topology: mesh.Analyze(buf),
		Closed:   sides,
	}
}

func TestPrintReport(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		sides    bool
		expected []string
		excluded []string
	}{
		{
			name:     "closed",
			sides:    true,
			expected: []string{"curved stairs", "steps      4", "side", "bottom", "back", "✓ watertight", "Wrote stairs.stl", "(stl)"},
			excluded: []string{"not watertight", "open surface"},
		},
		{
			name:     "open",
			sides:    false,
			expected: []string{"riser", "tread", "open surface"},
			excluded: []string{"side ", "watertight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printReport(&out, buildReport(t, tt.sides))
			got := out.String()

			for _, exp := range tt.expected {
				if !strings.Contains(got, exp) {
					t.Errorf("expected %q in report:\n%s", exp, got)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(got, exc) {
					t.Errorf("unexpected %q in report:\n%s", exc, got)
				}
			}
		})
	}
}

func TestPrintReportBrokenMesh(t *testing.T) {
	color.NoColor = true

	r := buildReport(t, true)
	r.Topology.Boundary = 2

	var out bytes.Buffer
	printReport(&out, r)
	if !strings.Contains(out.String(), "✗ not watertight - 2 boundary") {
		t.Errorf("expected failure line, got:\n%s", out.String())
	}
}
