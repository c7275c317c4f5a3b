package mesh

type HalfedgeID int

const NoHalfedge HalfedgeID = -1

// Halfedge is a directed edge owned by exactly one triangle. Its local id
// is the slot k it occupies in the triangle, so that it runs from v_k to
// v_(k+1 mod 3).
type Halfedge struct {
	id       HalfedgeID
	local    int
	triangle TriangleID
	origin   VertexID
	dest     VertexID
	opposite VertexID
	pair     HalfedgeID
	edge     EdgeID
}

func (h *Halfedge) ID() HalfedgeID         { return h.id }
func (h *Halfedge) Local() int             { return h.local }
func (h *Halfedge) Triangle() TriangleID   { return h.triangle }
func (h *Halfedge) Origin() VertexID       { return h.origin }
func (h *Halfedge) Destination() VertexID  { return h.dest }
func (h *Halfedge) Opposite() VertexID     { return h.opposite }
func (h *Halfedge) Pair() HalfedgeID       { return h.pair }
func (h *Halfedge) Edge() EdgeID           { return h.edge }
func (h *Halfedge) PartOfFulledge() bool   { return h.pair != NoHalfedge }
func (h *Halfedge) Endpoints() [2]VertexID { return [2]VertexID{h.origin, h.dest} }

// PairedTriangle returns the triangle across h, or NoTriangle on a boundary.
func (m *Mesh) PairedTriangle(h HalfedgeID) TriangleID {
	p := m.halfedges[h].pair
	if p == NoHalfedge {
		return NoTriangle
	}
	return m.halfedges[p].triangle
}

// PairedHalfedge returns the half-edge paired with h, or NoHalfedge.
func (m *Mesh) PairedHalfedge(h HalfedgeID) HalfedgeID {
	return m.halfedges[h].pair
}

// flipHalfedge reverses h and moves it to its new origin's outgoing list.
// The local id is renumbered by the owning triangle.
func (m *Mesh) flipHalfedge(id HalfedgeID) {
	h := &m.halfedges[id]
	m.vertices[h.origin].removeHalfedge(id)
	h.origin, h.dest = h.dest, h.origin
	m.vertices[h.origin].addHalfedge(id)
}

func (m *Mesh) setPair(a, b HalfedgeID) {
	if a != NoHalfedge {
		m.halfedges[a].pair = b
	}
	if b != NoHalfedge {
		m.halfedges[b].pair = a
	}
}

// unpaired returns the first half-edge in hs without a partner.
func (m *Mesh) unpaired(hs []HalfedgeID) HalfedgeID {
	for _, h := range hs {
		if m.halfedges[h].pair == NoHalfedge {
			return h
		}
	}
	return NoHalfedge
}
