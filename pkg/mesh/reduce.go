package mesh

import "fmt"

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrSizeMismatch, name, got, want)
	}
	return nil
}

// ReduceTriScalarToVertices adds triScalar[t] to vertexScalar at each of the
// three corners of triangle t. vertexScalar is accumulated into, so callers
// zero it first.
func (m *Mesh) ReduceTriScalarToVertices(triScalar, vertexScalar []float64) error {
	if err := checkLen("triangle scalar", len(triScalar), m.NTriangles()); err != nil {
		return err
	}
	if err := checkLen("vertex scalar", len(vertexScalar), m.NVertices()); err != nil {
		return err
	}
	for i := range m.triangles {
		s := triScalar[i]
		for _, v := range m.triangles[i].vertices {
			vertexScalar[v] += s
		}
	}
	return nil
}

// ReduceTriScalarPerVertexToVertices adds triScalarPerVertex[3*t+k] to
// vertexScalar at corner v_k of triangle t. Corners follow the repaired
// winding returned by Indices.
func (m *Mesh) ReduceTriScalarPerVertexToVertices(triScalarPerVertex, vertexScalar []float64) error {
	if err := checkLen("triangle scalar per vertex", len(triScalarPerVertex), 3*m.NTriangles()); err != nil {
		return err
	}
	if err := checkLen("vertex scalar", len(vertexScalar), m.NVertices()); err != nil {
		return err
	}
	for i := range m.triangles {
		for k, v := range m.triangles[i].vertices {
			vertexScalar[v] += triScalarPerVertex[3*i+k]
		}
	}
	return nil
}
