package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// WeightType selects the edge weights of Laplacian.
type WeightType int

const (
	// Combinatorial weighs every edge 1.
	Combinatorial WeightType = iota
	// Distance weighs an edge by the inverse of its length.
	Distance
)

func (w WeightType) String() string {
	switch w {
	case Combinatorial:
		return "combinatorial"
	case Distance:
		return "distance"
	default:
		return fmt.Sprintf("weight(%d)", int(w))
	}
}

// Triplets is a sparse matrix in coordinate form: entry k is V[k] at row
// I[k], column J[k]. Repeated coordinates add up. N is the matrix order.
type Triplets struct {
	N int
	I []int
	J []int
	V []float64
}

// NewTriplets allocates room for size entries of an n by n matrix.
func NewTriplets(n, size int) *Triplets {
	return &Triplets{
		N: n,
		I: make([]int, size),
		J: make([]int, size),
		V: make([]float64, size),
	}
}

func (t *Triplets) Len() int { return len(t.V) }

func (t *Triplets) set(k, i, j int, v float64) {
	t.I[k] = i
	t.J[k] = j
	t.V[k] = v
}

// RowSums sums the entries of every row.
func (t *Triplets) RowSums() []float64 {
	sums := make([]float64, t.N)
	for k, v := range t.V {
		sums[t.I[k]] += v
	}
	return sums
}

// Dense assembles the triplets into a dense matrix. It returns nil for an
// empty matrix.
func (t *Triplets) Dense() *mat.Dense {
	if t.N == 0 {
		return nil
	}
	d := mat.NewDense(t.N, t.N, nil)
	for k, v := range t.V {
		d.Set(t.I[k], t.J[k], d.At(t.I[k], t.J[k])+v)
	}
	return d
}

// LaplacianLen is the number of triplets a Laplacian of this mesh holds:
// two per edge plus one diagonal entry per vertex. On a mesh without
// boundary it equals 2*NFulledges() + NVertices().
func (m *Mesh) LaplacianLen() int {
	return 2*m.NEdges() + m.NVertices()
}

// NewLaplacianTriplets allocates triplets sized for this mesh.
func (m *Mesh) NewLaplacianTriplets() *Triplets {
	return NewTriplets(m.NVertices(), m.LaplacianLen())
}

func (m *Mesh) checkTriplets(out *Triplets) error {
	want := m.LaplacianLen()
	for _, c := range []struct {
		name string
		n    int
	}{{"row indices", len(out.I)}, {"column indices", len(out.J)}, {"values", len(out.V)}} {
		if err := checkLen("triplet "+c.name, c.n, want); err != nil {
			return err
		}
	}
	out.N = m.NVertices()
	return nil
}

// Laplacian writes the graph Laplacian into out. Every edge (a, b) gives
// the entries (a, b, w) and (b, a, w); the diagonal holds the negated row
// sums so every row sums to zero. Off-diagonal entries come in edge order,
// followed by the diagonal in vertex order.
//
// Boundary edges get entries too, so out must hold LaplacianLen() triplets,
// which is more than 2*NFulledges()+NVertices() on a mesh with boundary.
func (m *Mesh) Laplacian(weight WeightType, out *Triplets) error {
	if err := m.checkTriplets(out); err != nil {
		return err
	}

	var w func(a, b VertexID) (float64, error)
	switch weight {
	case Combinatorial:
		w = func(_, _ VertexID) (float64, error) { return 1, nil }
	case Distance:
		if err := m.requirePoints(); err != nil {
			return err
		}
		w = func(a, b VertexID) (float64, error) {
			d := r3.Norm(r3.Sub(m.point(a), m.point(b)))
			if d == 0 {
				return 0, fmt.Errorf("%w: vertices %d and %d coincide", ErrDegenerateEdge, a, b)
			}
			return 1 / d, nil
		}
	default:
		return fmt.Errorf("mesh: unknown weight type %v", weight)
	}

	weights := make([]float64, len(m.edges))
	for i := range m.edges {
		a, b := m.EdgeEndpoints(EdgeID(i))
		v, err := w(a, b)
		if err != nil {
			return err
		}
		weights[i] = v
	}
	m.fillLaplacian(weights, out)
	return nil
}

// CotangentLaplacian writes the cotangent Laplacian into out. cotans holds
// the cotangent of every triangle corner, cotans[3*t+k] belonging to corner
// v_k of triangle t in the repaired winding. The weight of a full edge is
// the mean of the cotangents opposite its two half-edges; a boundary edge
// takes its single opposite cotangent.
func (m *Mesh) CotangentLaplacian(cotans []float64, out *Triplets) error {
	if err := checkLen("cotangents", len(cotans), 3*m.NTriangles()); err != nil {
		return err
	}
	if err := m.checkTriplets(out); err != nil {
		return err
	}

	opposite := func(id HalfedgeID) float64 {
		h := &m.halfedges[id]
		return cotans[3*int(h.triangle)+(h.local+2)%3]
	}

	weights := make([]float64, len(m.edges))
	for i := range m.edges {
		e := &m.edges[i]
		if e.IsFull() {
			weights[i] = (opposite(e.halfedges[0]) + opposite(e.halfedges[1])) / 2
		} else {
			weights[i] = opposite(e.halfedges[0])
		}
	}
	m.fillLaplacian(weights, out)
	return nil
}

func (m *Mesh) fillLaplacian(weights []float64, out *Triplets) {
	diagonal := make([]float64, len(m.vertices))
	k := 0
	for i, w := range weights {
		a, b := m.EdgeEndpoints(EdgeID(i))
		out.set(k, int(a), int(b), w)
		out.set(k+1, int(b), int(a), w)
		k += 2
		diagonal[a] += w
		diagonal[b] += w
	}
	for v, sum := range diagonal {
		out.set(k, v, v, -sum)
		k++
	}
}
