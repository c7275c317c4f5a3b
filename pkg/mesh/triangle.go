package mesh

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

type TriangleID int

const NoTriangle TriangleID = -1

// Triangle holds three corners and the three half-edges between them.
// halfedges[k] always runs from vertices[k] to vertices[(k+1)%3].
type Triangle struct {
	id        TriangleID
	vertices  [3]VertexID
	halfedges [3]HalfedgeID
}

func (t *Triangle) ID() TriangleID           { return t.id }
func (t *Triangle) Vertices() [3]VertexID    { return t.vertices }
func (t *Triangle) Halfedges() [3]HalfedgeID { return t.halfedges }

// AdjacentTriangles returns the distinct triangles paired with t across its
// edges, in e0, e1, e2 order.
func (m *Mesh) AdjacentTriangles(t TriangleID) []TriangleID {
	out := make([]TriangleID, 0, 3)
	for _, h := range m.triangles[t].halfedges {
		n := m.PairedTriangle(h)
		if n == NoTriangle || n == t {
			continue
		}
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

func (m *Mesh) newHalfedge(t TriangleID, k int, from, to, opposite VertexID) HalfedgeID {
	id := HalfedgeID(len(m.halfedges))
	m.halfedges = append(m.halfedges, Halfedge{
		id:       id,
		local:    k,
		triangle: t,
		origin:   from,
		dest:     to,
		opposite: opposite,
		pair:     NoHalfedge,
		edge:     NoEdge,
	})
	m.vertices[from].addTriangle(t)
	m.vertices[from].addVertex(to)
	m.vertices[to].addVertex(from)
	m.vertices[from].addHalfedge(id)
	m.triangles[t].halfedges[k] = id
	return id
}

// addTriangle wires the triangle (a, b, c) into the mesh. A half-edge that
// runs the same way as an existing unpaired one is a winding conflict: it is
// paired provisionally and the triangle's region is flipped so the pair
// runs in opposite directions. A vertex pair already carrying half-edges in
// both directions is over-determined and left unpaired.
func (m *Mesh) addTriangle(a, b, c VertexID) {
	id := TriangleID(len(m.triangles))
	corners := [3]VertexID{a, b, c}
	m.triangles = append(m.triangles, Triangle{id: id, vertices: corners})

	var bad [3]bool
	for k := range 3 {
		from, to, opposite := corners[k], corners[(k+1)%3], corners[(k+2)%3]
		same := m.halfedgesToVertex(from, to)
		reverse := m.halfedgesToVertex(to, from)
		h := m.newHalfedge(id, k, from, to, opposite)

		partner := NoHalfedge
		if len(same) == 0 {
			partner = m.unpaired(reverse)
		} else if len(reverse) == 0 {
			partner = m.unpaired(same)
			bad[k] = partner != NoHalfedge
		}

		if partner == NoHalfedge {
			m.newEdge(h)
			if len(same) > 0 {
				m.report(Diagnostic{
					Kind:     OverDetermined,
					Triangle: id,
					Halfedge: h,
					Vertices: [2]VertexID{from, to},
					Message:  "vertex pair is over-determined, half-edge left unpaired",
				})
			}
			continue
		}
		m.setPair(h, partner)
		m.joinEdge(h, partner)
	}

	if bad[0] || bad[1] || bad[2] {
		m.resolveChirality(id, bad)
	}

	for _, v := range m.triangles[id].vertices {
		if !m.LegalAttachment(v, id) {
			m.report(Diagnostic{
				Kind:     IllegalAttachment,
				Triangle: id,
				Halfedge: NoHalfedge,
				Vertices: [2]VertexID{v, v},
				Message:  "vertex does not reference its triangle",
			})
		}
	}
}

// resolveChirality detaches the conflicting pairings of t, flips t and
// everything reachable from it through the remaining pairings, then
// re-attaches the detached pairs. After the flip the detached half-edges
// run opposite to their partners.
func (m *Mesh) resolveChirality(t TriangleID, bad [3]bool) {
	orig := m.triangles[t].halfedges
	detached := [3]HalfedgeID{NoHalfedge, NoHalfedge, NoHalfedge}

	for k := range 3 {
		if !bad[k] {
			continue
		}
		p := m.halfedges[orig[k]].pair
		detached[k] = p
		m.halfedges[orig[k]].pair = NoHalfedge
		m.halfedges[p].pair = NoHalfedge
	}

	flipped := m.FlipContiguousRegion(t)

	for k := range 3 {
		if !bad[k] {
			continue
		}
		m.setPair(orig[k], detached[k])
		h := &m.halfedges[orig[k]]
		m.report(Diagnostic{
			Kind:     ChiralityRepaired,
			Triangle: t,
			Halfedge: orig[k],
			Vertices: [2]VertexID{h.origin, h.dest},
			Message:  fmt.Sprintf("winding conflict with triangle %d repaired by flip", m.halfedges[detached[k]].triangle),
		})
	}

	m.log.Debug("[mesh-repair] region flipped",
		zap.Int("triangle", int(t)),
		zap.Int("flipped", len(flipped)),
	)
}

// FlipContiguousRegion reverses the winding of t and of every triangle
// reachable from it through paired half-edges. Each triangle is flipped
// exactly once. It returns the flipped triangles in visiting order.
func (m *Mesh) FlipContiguousRegion(t TriangleID) []TriangleID {
	visited := make([]bool, len(m.triangles))
	visited[t] = true
	stack := []TriangleID{t}

	var flipped []TriangleID
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m.flipTriangle(cur)
		flipped = append(flipped, cur)

		for _, n := range m.AdjacentTriangles(cur) {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return flipped
}

// flipTriangle reverses the three half-edges of t, swaps its first two
// corners and its last two half-edges, and renumbers the swapped
// half-edges so that e_k still runs from v_k to v_(k+1).
func (m *Mesh) flipTriangle(t TriangleID) {
	tri := &m.triangles[t]
	for _, h := range tri.halfedges {
		m.flipHalfedge(h)
	}
	tri.vertices[0], tri.vertices[1] = tri.vertices[1], tri.vertices[0]
	tri.halfedges[1], tri.halfedges[2] = tri.halfedges[2], tri.halfedges[1]
	m.halfedges[tri.halfedges[1]].local = 1
	m.halfedges[tri.halfedges[2]].local = 2
}
