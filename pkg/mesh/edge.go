package mesh

type EdgeID int

// NoEdge marks a half-edge not yet grouped into an edge.
const NoEdge EdgeID = -1

// Edge groups either a single boundary half-edge or the two half-edges of
// a full edge. Edges are derived during construction and never mutated by
// callers.
type Edge struct {
	id        EdgeID
	halfedges [2]HalfedgeID
}

func (e *Edge) ID() EdgeID               { return e.id }
func (e *Edge) Halfedges() [2]HalfedgeID { return e.halfedges }
func (e *Edge) IsFull() bool             { return e.halfedges[1] != NoHalfedge }

// EdgeEndpoints returns the vertices joined by e, taken from its first
// half-edge.
func (m *Mesh) EdgeEndpoints(e EdgeID) (VertexID, VertexID) {
	h := &m.halfedges[m.edges[e].halfedges[0]]
	return h.origin, h.dest
}

func (m *Mesh) newEdge(h HalfedgeID) EdgeID {
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, Edge{id: id, halfedges: [2]HalfedgeID{h, NoHalfedge}})
	m.halfedges[h].edge = id
	return id
}

// joinEdge adds h as the second half-edge of the edge owning other.
func (m *Mesh) joinEdge(h, other HalfedgeID) {
	e := m.halfedges[other].edge
	m.edges[e].halfedges[1] = h
	m.halfedges[h].edge = e
}
