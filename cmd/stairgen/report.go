package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Faultbox/stairgen/internal/export"
	"github.com/Faultbox/stairgen/pkg/mesh"
	"github.com/Faultbox/stairgen/pkg/stairs"
)

// report is the summary printed after a successful run.
type report struct {
	Kind     string
	Path     string
	Format   export.Format
	Layout   stairs.Layout
	Parts    map[mesh.Part]int
	Buffer   *mesh.Buffer
	Topology mesh.Topology
	// Closed is set when side faces were requested, so the mesh should be a solid.
	Closed bool
}

var reportParts = []mesh.Part{mesh.PartRiser, mesh.PartTread, mesh.PartSide, mesh.PartBottom, mesh.PartBack}

func printReport(w io.Writer, r report) {
	header := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	fmt.Fprintln(w)
	header.Fprintf(w, "━━━ %s stairs ━━━\n", r.Kind)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  steps      %d", r.Layout.NumSteps)
	dim.Fprintf(w, " (rise %.4g, run %.4g)\n", r.Layout.StepHeight, r.Layout.StepDepth)
	for _, part := range reportParts {
		if n := r.Parts[part]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d faces\n", part, n)
		}
	}
	fmt.Fprintf(w, "  corners    %d\n", r.Buffer.CornerCount())
	fmt.Fprintf(w, "  triangles  %d\n", r.Buffer.TriangleCount())

	size := r.Buffer.Bounds.Size()
	fmt.Fprintf(w, "  bounds     %.4g x %.4g x %.4g\n", size[0], size[1], size[2])

	switch {
	case !r.Closed:
		dim.Fprintln(w, "  ○ open surface, topology not checked")
	case r.Topology.Oriented():
		color.New(color.FgGreen).Fprintf(w, "  ✓ watertight")
		dim.Fprintf(w, " - volume %.4g\n", mesh.SignedVolume(r.Buffer))
	default:
		color.New(color.FgRed).Fprintf(w, "  ✗ not watertight")
		dim.Fprintf(w, " - %d boundary, %d non-manifold, %d unpaired edges\n",
			r.Topology.Boundary, r.Topology.NonManifold, r.Topology.Unpaired)
	}

	fmt.Fprintln(w)
	color.New(color.FgGreen, color.Bold).Fprintf(w, "━━━ Wrote %s ", r.Path)
	dim.Fprintf(w, "(%s)", r.Format)
	color.New(color.FgGreen, color.Bold).Fprintln(w, " ━━━")
	fmt.Fprintln(w)
}
