// Package mesh builds a half-edge triangle mesh from a flat index buffer,
// repairs inconsistent triangle windings while it is built, and assembles
// the reductions and Laplacian operators used by the numeric layer.
//
// Every entity is stored in an arena owned by the Mesh and addressed by a
// dense zero-based id, which is also its offset into caller-owned arrays:
// a per-triangle vector field of stride 3 holds triangle t at [3*t, 3*t+3).
package mesh

import (
	"fmt"

	"go.uber.org/zap"
)

// Mesh owns all vertices, triangles, half-edges and edges. Connectivity is
// fixed once New returns.
type Mesh struct {
	vertices  []Vertex
	triangles []Triangle
	halfedges []Halfedge
	edges     []Edge

	// caller-owned xyz coordinates, nil when the mesh is purely topological
	points []float64

	diagnostics Report
	log         *zap.Logger
}

// New builds a mesh over nVertices vertices from indices, which holds three
// vertex ids per triangle. Triangles are wired in input order and winding
// conflicts are repaired as they appear. Topology defects do not fail
// construction: they are recorded and available from Diagnostics. Only
// malformed input returns an error wrapping ErrInvalidTopology.
func New(indices []uint32, nVertices int, opts ...Option) (*Mesh, error) {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateInput(indices, nVertices, cfg.points); err != nil {
		return nil, err
	}

	nTriangles := len(indices) / 3
	m := &Mesh{
		vertices:  make([]Vertex, nVertices),
		triangles: make([]Triangle, 0, nTriangles),
		halfedges: make([]Halfedge, 0, 3*nTriangles),
		edges:     make([]Edge, 0, 3*nTriangles),
		points:    cfg.points,
		log:       cfg.log,
	}
	for i := range m.vertices {
		m.vertices[i].id = VertexID(i)
	}

	m.log.Debug("[mesh-build] start",
		zap.Int("vertices", nVertices),
		zap.Int("triangles", nTriangles),
	)

	for t := range nTriangles {
		m.addTriangle(
			VertexID(indices[3*t]),
			VertexID(indices[3*t+1]),
			VertexID(indices[3*t+2]),
		)
	}

	m.log.Debug("[mesh-build] done",
		zap.Int("edges", m.NEdges()),
		zap.Int("fulledges", m.NFulledges()),
		zap.Int("repairs", m.diagnostics.Count(ChiralityRepaired)),
		zap.Int("defects", len(m.diagnostics.Defects())),
	)

	return m, nil
}

func validateInput(indices []uint32, nVertices int, points []float64) error {
	if nVertices < 0 {
		return fmt.Errorf("%w: negative vertex count %d", ErrInvalidTopology, nVertices)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: index buffer length %d is not a multiple of 3", ErrInvalidTopology, len(indices))
	}
	if points != nil && len(points) != 3*nVertices {
		return fmt.Errorf("%w: %d coordinates given for %d vertices", ErrInvalidTopology, len(points), nVertices)
	}
	for t := 0; t < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		for _, v := range [3]uint32{a, b, c} {
			if int64(v) >= int64(nVertices) {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrInvalidTopology, t/3, v, nVertices)
			}
		}
		if a == b || b == c || c == a {
			return fmt.Errorf("%w: triangle %d (%d, %d, %d) repeats a vertex", ErrInvalidTopology, t/3, a, b, c)
		}
	}
	return nil
}

func (m *Mesh) report(d Diagnostic) {
	m.diagnostics = append(m.diagnostics, d)
	if d.Kind.Defect() {
		m.log.Warn("[mesh-build] "+d.Kind.String(), d.fields()...)
		return
	}
	m.log.Info("[mesh-build] "+d.Kind.String(), d.fields()...)
}

func (m *Mesh) NVertices() int  { return len(m.vertices) }
func (m *Mesh) NTriangles() int { return len(m.triangles) }
func (m *Mesh) NEdges() int     { return len(m.edges) }
func (m *Mesh) NHalfedges() int { return len(m.halfedges) }

// NFulledges counts edges made of two paired half-edges.
func (m *Mesh) NFulledges() int {
	n := 0
	for i := range m.edges {
		if m.edges[i].IsFull() {
			n++
		}
	}
	return n
}

// NBoundaryEdges counts edges made of a single unpaired half-edge.
func (m *Mesh) NBoundaryEdges() int {
	return m.NEdges() - m.NFulledges()
}

// Vertex returns the vertex with the given id. Like slice indexing it
// panics on an out-of-range id.
func (m *Mesh) Vertex(id VertexID) *Vertex       { return &m.vertices[id] }
func (m *Mesh) Triangle(id TriangleID) *Triangle { return &m.triangles[id] }
func (m *Mesh) Halfedge(id HalfedgeID) *Halfedge { return &m.halfedges[id] }
func (m *Mesh) Edge(id EdgeID) *Edge             { return &m.edges[id] }

// Points returns the coordinates the mesh was built with, or nil.
func (m *Mesh) Points() []float64 { return m.points }

// Indices returns the triangle index buffer after orientation repair. The
// triangle order matches the input; per-corner arrays follow this corner
// order.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, 3*len(m.triangles))
	for i := range m.triangles {
		for _, v := range m.triangles[i].vertices {
			out = append(out, uint32(v))
		}
	}
	return out
}

// Diagnostics returns the records gathered while the mesh was built.
func (m *Mesh) Diagnostics() Report {
	out := make(Report, len(m.diagnostics))
	copy(out, m.diagnostics)
	return out
}
