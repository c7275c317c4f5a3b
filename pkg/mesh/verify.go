package mesh

import (
	"fmt"
	"slices"
)

// VerifyMesh checks structural well-formedness: every half-edge agrees with
// its triangle slot, every pairing and edge grouping is mutual, every corner
// references its triangle and every vertex's outgoing list matches the
// half-edges that start there. It never modifies the mesh.
func (m *Mesh) VerifyMesh() Report {
	var r Report
	r = append(r, m.verifyTriangles()...)
	r = append(r, m.verifyPairings()...)
	r = append(r, m.verifyEdges()...)
	r = append(r, m.verifyVertices()...)
	return r
}

func (m *Mesh) verifyTriangles() Report {
	var r Report
	for i := range m.triangles {
		tri := &m.triangles[i]
		for k, id := range tri.halfedges {
			h := &m.halfedges[id]
			from, to, opposite := tri.vertices[k], tri.vertices[(k+1)%3], tri.vertices[(k+2)%3]
			if h.triangle != tri.id || h.local != k || h.origin != from || h.dest != to || h.opposite != opposite {
				r = append(r, Diagnostic{
					Kind:     BrokenHalfedge,
					Triangle: tri.id,
					Halfedge: id,
					Vertices: [2]VertexID{h.origin, h.dest},
					Message:  fmt.Sprintf("half-edge in slot %d does not run %d->%d", k, from, to),
				})
			}
		}
		for _, v := range tri.vertices {
			if !m.LegalAttachment(v, tri.id) {
				r = append(r, Diagnostic{
					Kind:     IllegalAttachment,
					Triangle: tri.id,
					Halfedge: NoHalfedge,
					Vertices: [2]VertexID{v, v},
					Message:  "vertex does not reference its triangle",
				})
			}
		}
	}
	return r
}

func (m *Mesh) verifyPairings() Report {
	var r Report
	for i := range m.halfedges {
		h := &m.halfedges[i]
		if h.pair == NoHalfedge {
			continue
		}
		p := &m.halfedges[h.pair]
		var problem string
		switch {
		case p.pair != h.id:
			problem = fmt.Sprintf("paired with %d which is paired with %d", p.id, p.pair)
		case p.triangle == h.triangle:
			problem = "paired within its own triangle"
		case p.edge != h.edge:
			problem = fmt.Sprintf("pair belongs to edge %d, not %d", p.edge, h.edge)
		default:
			continue
		}
		r = append(r, Diagnostic{
			Kind:     BrokenPairing,
			Triangle: h.triangle,
			Halfedge: h.id,
			Vertices: [2]VertexID{h.origin, h.dest},
			Message:  problem,
		})
	}
	return r
}

func (m *Mesh) verifyEdges() Report {
	var r Report
	for i := range m.edges {
		e := &m.edges[i]
		a := e.halfedges[0]
		b := e.halfedges[1]
		ok := m.halfedges[a].edge == e.id
		if b == NoHalfedge {
			ok = ok && m.halfedges[a].pair == NoHalfedge
		} else {
			ok = ok && m.halfedges[b].edge == e.id && m.halfedges[a].pair == b
		}
		if !ok {
			r = append(r, Diagnostic{
				Kind:     BrokenPairing,
				Triangle: m.halfedges[a].triangle,
				Halfedge: a,
				Vertices: [2]VertexID{m.halfedges[a].origin, m.halfedges[a].dest},
				Message:  fmt.Sprintf("edge %d grouping disagrees with its half-edges", e.id),
			})
		}
	}
	return r
}

func (m *Mesh) verifyVertices() Report {
	var r Report
	listed := 0
	for i := range m.vertices {
		v := &m.vertices[i]
		var owners []TriangleID
		for _, id := range v.halfedges {
			h := &m.halfedges[id]
			if h.origin != v.id {
				r = append(r, Diagnostic{
					Kind:     BrokenHalfedge,
					Triangle: h.triangle,
					Halfedge: id,
					Vertices: [2]VertexID{h.origin, h.dest},
					Message:  fmt.Sprintf("listed as outgoing on vertex %d", v.id),
				})
			}
			if !slices.Contains(owners, h.triangle) {
				owners = append(owners, h.triangle)
			}
		}
		listed += len(v.halfedges)

		tris := slices.Clone(v.triangles)
		slices.Sort(tris)
		slices.Sort(owners)
		if !slices.Equal(tris, owners) {
			r = append(r, Diagnostic{
				Kind:     IllegalAttachment,
				Triangle: NoTriangle,
				Halfedge: NoHalfedge,
				Vertices: [2]VertexID{v.id, v.id},
				Message:  fmt.Sprintf("vertex %d lists triangles %v but owns half-edges on %v", v.id, tris, owners),
			})
		}
	}
	if listed != len(m.halfedges) {
		r = append(r, Diagnostic{
			Kind:     BrokenHalfedge,
			Triangle: NoTriangle,
			Halfedge: NoHalfedge,
			Message:  fmt.Sprintf("%d outgoing references for %d half-edges", listed, len(m.halfedges)),
		})
	}
	return r
}

// TestChiralConsistency checks that adjacent triangles wind the same way:
// the two half-edges of every full edge must run in opposite directions and
// no vertex may carry two half-edges to the same destination.
func (m *Mesh) TestChiralConsistency() Report {
	var r Report
	for i := range m.edges {
		e := &m.edges[i]
		if !e.IsFull() {
			continue
		}
		a := &m.halfedges[e.halfedges[0]]
		b := &m.halfedges[e.halfedges[1]]
		if a.origin != b.dest || a.dest != b.origin {
			r = append(r, Diagnostic{
				Kind:     ChiralInconsistency,
				Triangle: a.triangle,
				Halfedge: a.id,
				Vertices: [2]VertexID{a.origin, a.dest},
				Message:  fmt.Sprintf("full edge %d runs the same way on triangles %d and %d", e.id, a.triangle, b.triangle),
			})
		}
	}
	for i := range m.vertices {
		v := &m.vertices[i]
		var seen []VertexID
		var reported []VertexID
		for _, id := range v.halfedges {
			h := &m.halfedges[id]
			if !slices.Contains(seen, h.dest) {
				seen = append(seen, h.dest)
				continue
			}
			if slices.Contains(reported, h.dest) {
				continue
			}
			reported = append(reported, h.dest)
			r = append(r, Diagnostic{
				Kind:     ChiralInconsistency,
				Triangle: h.triangle,
				Halfedge: id,
				Vertices: [2]VertexID{h.origin, h.dest},
				Message:  "several half-edges run the same way over this vertex pair",
			})
		}
	}
	return r
}

// ContiguousRegions splits the vertices into connected components of the
// vertex adjacency graph. Regions are ordered by their lowest vertex id and
// list their vertices in ascending order. Vertices used by no triangle form
// regions of their own.
func (m *Mesh) ContiguousRegions() [][]VertexID {
	seen := make([]bool, len(m.vertices))
	var regions [][]VertexID
	for start := range m.vertices {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []VertexID{VertexID(start)}
		var region []VertexID
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			region = append(region, v)
			for _, n := range m.vertices[v].vertices {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		slices.Sort(region)
		regions = append(regions, region)
	}
	return regions
}

// TestContiguous reports one Disconnected record for every region beyond
// the first.
func (m *Mesh) TestContiguous() Report {
	regions := m.ContiguousRegions()
	var r Report
	for i := 1; i < len(regions); i++ {
		r = append(r, Diagnostic{
			Kind:     Disconnected,
			Triangle: NoTriangle,
			Halfedge: NoHalfedge,
			Vertices: [2]VertexID{regions[i][0], regions[i][0]},
			Message:  fmt.Sprintf("region %d of %d holds %d vertices", i+1, len(regions), len(regions[i])),
		})
	}
	return r
}
