package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

func (m *Mesh) requirePoints() error {
	if m.points == nil {
		return ErrNoPoints
	}
	return nil
}

func (m *Mesh) point(v VertexID) r3.Vec {
	p := m.points[3*int(v) : 3*int(v)+3]
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// corners returns the positions of the corners of t in winding order.
func (m *Mesh) corners(t int) [3]r3.Vec {
	vs := m.triangles[t].vertices
	return [3]r3.Vec{m.point(vs[0]), m.point(vs[1]), m.point(vs[2])}
}

// CornerCotangents returns the cotangent of the angle at every triangle
// corner, three per triangle in the repaired winding. The result feeds
// CotangentLaplacian.
func (m *Mesh) CornerCotangents() ([]float64, error) {
	if err := m.requirePoints(); err != nil {
		return nil, err
	}
	out := make([]float64, 3*len(m.triangles))
	for t := range m.triangles {
		p := m.corners(t)
		for k := range 3 {
			u := r3.Sub(p[(k+1)%3], p[k])
			w := r3.Sub(p[(k+2)%3], p[k])
			sin := r3.Norm(r3.Cross(u, w))
			if sin == 0 {
				return nil, fmt.Errorf("%w: triangle %d", ErrDegenerateTriangle, t)
			}
			out[3*t+k] = r3.Dot(u, w) / sin
		}
	}
	return out, nil
}

// TriangleAreas returns the area of every triangle.
func (m *Mesh) TriangleAreas() ([]float64, error) {
	if err := m.requirePoints(); err != nil {
		return nil, err
	}
	out := make([]float64, len(m.triangles))
	for t := range m.triangles {
		p := m.corners(t)
		out[t] = r3.Norm(r3.Cross(r3.Sub(p[1], p[0]), r3.Sub(p[2], p[0]))) / 2
	}
	return out, nil
}

// VertexAreas gives every vertex a third of the area of each incident
// triangle.
func (m *Mesh) VertexAreas() ([]float64, error) {
	areas, err := m.TriangleAreas()
	if err != nil {
		return nil, err
	}
	for i := range areas {
		areas[i] /= 3
	}
	out := make([]float64, len(m.vertices))
	if err := m.ReduceTriScalarToVertices(areas, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TriangleNormals returns a unit normal per triangle, three values each,
// following the repaired winding.
func (m *Mesh) TriangleNormals() ([]float64, error) {
	if err := m.requirePoints(); err != nil {
		return nil, err
	}
	out := make([]float64, 3*len(m.triangles))
	for t := range m.triangles {
		p := m.corners(t)
		n := r3.Cross(r3.Sub(p[1], p[0]), r3.Sub(p[2], p[0]))
		if r3.Norm(n) == 0 {
			return nil, fmt.Errorf("%w: triangle %d", ErrDegenerateTriangle, t)
		}
		n = r3.Unit(n)
		out[3*t], out[3*t+1], out[3*t+2] = n.X, n.Y, n.Z
	}
	return out, nil
}
