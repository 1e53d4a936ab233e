package mesh

// Topology summarizes how the triangles of a buffer share edges. Edges are
// keyed by their two end positions, so corners duplicated per face still
// connect.
type Topology struct {
	Edges       int
	Boundary    int // edges used by a single triangle
	NonManifold int // edges used by more than two triangles
	// Unpaired counts edges whose two triangles traverse them in the same
	// direction, meaning the surface is not consistently oriented.
	Unpaired int
}

// Watertight reports whether every edge borders exactly two triangles.
func (t Topology) Watertight() bool {
	return t.Edges > 0 && t.Boundary == 0 && t.NonManifold == 0
}

// Oriented reports whether the mesh is watertight and every edge is walked
// once in each direction.
func (t Topology) Oriented() bool {
	return t.Watertight() && t.Unpaired == 0
}

type edgeKey struct {
	a, b [3]float32
}

type edgeUse struct {
	forward, backward int
}

// Analyze computes the edge adjacency of b's triangles.
func Analyze(b *Buffer) Topology {
	uses := make(map[edgeKey]*edgeUse)
	for t := 0; t < b.TriangleCount(); t++ {
		tri := b.Triangle(t)
		for k := 0; k < 3; k++ {
			p := b.Positions[tri[k]]
			q := b.Positions[tri[(k+1)%3]]
			key, forward := makeEdgeKey(p, q)
			u := uses[key]
			if u == nil {
				u = &edgeUse{}
				uses[key] = u
			}
			if forward {
				u.forward++
			} else {
				u.backward++
			}
		}
	}

	topo := Topology{Edges: len(uses)}
	for _, u := range uses {
		switch total := u.forward + u.backward; {
		case total == 1:
			topo.Boundary++
		case total > 2:
			topo.NonManifold++
		case u.forward != u.backward:
			topo.Unpaired++
		}
	}
	return topo
}

func makeEdgeKey(p, q [3]float32) (edgeKey, bool) {
	if lessPos(p, q) {
		return edgeKey{p, q}, true
	}
	return edgeKey{q, p}, false
}

func lessPos(p, q [3]float32) bool {
	for k := 0; k < 3; k++ {
		if p[k] != q[k] {
			return p[k] < q[k]
		}
	}
	return false
}

// SignedVolume returns the volume enclosed by a closed buffer. Triangles are
// emitted clockwise as seen from outside, so a correctly oriented solid has a
// positive result.
func SignedVolume(b *Buffer) float64 {
	var sum float64
	for t := 0; t < b.TriangleCount(); t++ {
		tri := b.Triangle(t)
		p0, p1, p2 := b.Positions[tri[0]], b.Positions[tri[1]], b.Positions[tri[2]]
		// p0 . (p2 x p1) undoes the clockwise index order.
		cx := float64(p2[1])*float64(p1[2]) - float64(p2[2])*float64(p1[1])
		cy := float64(p2[2])*float64(p1[0]) - float64(p2[0])*float64(p1[2])
		cz := float64(p2[0])*float64(p1[1]) - float64(p2[1])*float64(p1[0])
		sum += float64(p0[0])*cx + float64(p0[1])*cy + float64(p0[2])*cz
	}
	return sum / 6
}
