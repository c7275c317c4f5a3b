package mesh

import "slices"

type VertexID int

// Vertex is a mesh node. It references the triangles it is a corner of,
// the vertices it shares an edge with and the half-edges leaving it.
type Vertex struct {
	id        VertexID
	triangles []TriangleID
	vertices  []VertexID
	halfedges []HalfedgeID
}

func (v *Vertex) ID() VertexID { return v.id }

// Triangles returns the incident triangles in the order they were attached.
func (v *Vertex) Triangles() []TriangleID { return slices.Clone(v.triangles) }

// Vertices returns the adjacent vertices in the order they were discovered.
func (v *Vertex) Vertices() []VertexID { return slices.Clone(v.vertices) }

// Halfedges returns the outgoing half-edges.
func (v *Vertex) Halfedges() []HalfedgeID { return slices.Clone(v.halfedges) }

// Degree is the number of adjacent vertices.
func (v *Vertex) Degree() int { return len(v.vertices) }

func (v *Vertex) addTriangle(t TriangleID) {
	if !slices.Contains(v.triangles, t) {
		v.triangles = append(v.triangles, t)
	}
}

func (v *Vertex) addVertex(o VertexID) {
	if !slices.Contains(v.vertices, o) {
		v.vertices = append(v.vertices, o)
	}
}

func (v *Vertex) addHalfedge(h HalfedgeID) {
	v.halfedges = append(v.halfedges, h)
}

func (v *Vertex) removeHalfedge(h HalfedgeID) {
	if i := slices.Index(v.halfedges, h); i >= 0 {
		v.halfedges = slices.Delete(v.halfedges, i, i+1)
	}
}

func (v *Vertex) hasTriangle(t TriangleID) bool {
	return slices.Contains(v.triangles, t)
}

// HalfedgeToVertex returns the first half-edge running from a to b, or
// NoHalfedge.
func (m *Mesh) HalfedgeToVertex(a, b VertexID) HalfedgeID {
	for _, h := range m.vertices[a].halfedges {
		if m.halfedges[h].dest == b {
			return h
		}
	}
	return NoHalfedge
}

// halfedgesToVertex collects every half-edge running from a to b.
func (m *Mesh) halfedgesToVertex(a, b VertexID) []HalfedgeID {
	var out []HalfedgeID
	for _, h := range m.vertices[a].halfedges {
		if m.halfedges[h].dest == b {
			out = append(out, h)
		}
	}
	return out
}

// HalfedgeOnTriangle returns the half-edge leaving v that belongs to t, or
// NoHalfedge when v is not a corner of t.
func (m *Mesh) HalfedgeOnTriangle(v VertexID, t TriangleID) HalfedgeID {
	for _, h := range m.vertices[v].halfedges {
		if m.halfedges[h].triangle == t {
			return h
		}
	}
	return NoHalfedge
}

// LegalAttachment reports whether v lists t among its incident triangles.
func (m *Mesh) LegalAttachment(v VertexID, t TriangleID) bool {
	return m.vertices[v].hasTriangle(t)
}
