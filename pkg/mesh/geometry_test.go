package mesh

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-trimesh/pkg/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceTriScalarToVertices(t *testing.T) {
	indices, _ := meshgen.Grid(1, 1)
	m := build(t, indices, 4)

	out := make([]float64, 4)
	require.NoError(t, m.ReduceTriScalarToVertices([]float64{1, 1}, out))
	assert.Equal(t, []float64{2, 1, 1, 2}, out)

	// accumulates into the destination
	require.NoError(t, m.ReduceTriScalarToVertices([]float64{1, 0}, out))
	assert.Equal(t, []float64{3, 2, 1, 3}, out)
}

func TestReduceCountsIncidentTriangles(t *testing.T) {
	indices, _ := meshgen.Grid(4, 3)
	m := build(t, meshgen.Scramble(indices, 0.3, rand.New(rand.NewSource(5))), 20)

	ones := make([]float64, m.NTriangles())
	for i := range ones {
		ones[i] = 1
	}
	out := make([]float64, m.NVertices())
	require.NoError(t, m.ReduceTriScalarToVertices(ones, out))
	for v, n := range out {
		assert.Equal(t, float64(len(m.Vertex(VertexID(v)).Triangles())), n, "vertex %d", v)
	}
}

func TestReduceTriScalarPerVertexToVertices(t *testing.T) {
	m := build(t, []uint32{0, 1, 2, 2, 3, 1}, 4)
	require.Equal(t, []uint32{0, 1, 2, 3, 2, 1}, m.Indices())

	// corner values follow the repaired corner order
	per := []float64{1, 2, 3, 10, 20, 30}
	out := make([]float64, 4)
	require.NoError(t, m.ReduceTriScalarPerVertexToVertices(per, out))
	assert.Equal(t, []float64{1, 32, 23, 10}, out)
}

func TestReduceSizeMismatch(t *testing.T) {
	m := build(t, []uint32{0, 1, 2}, 3)
	tests := []struct {
		name string
		err  error
	}{
		{"short triangle scalar", m.ReduceTriScalarToVertices(nil, make([]float64, 3))},
		{"short vertex scalar", m.ReduceTriScalarToVertices([]float64{1}, make([]float64, 2))},
		{"short corners", m.ReduceTriScalarPerVertexToVertices([]float64{1, 2}, make([]float64, 3))},
		{"long vertex scalar", m.ReduceTriScalarPerVertexToVertices([]float64{1, 2, 3}, make([]float64, 4))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, ErrSizeMismatch), "got %v", tc.err)
		})
	}
}

func TestAreas(t *testing.T) {
	indices, points := meshgen.Grid(1, 1)
	m := build(t, indices, 4, WithPoints(points))

	areas, err := m.TriangleAreas()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, areas, 1e-12)

	vertex, err := m.VertexAreas()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 6, 1.0 / 6, 1.0 / 3}, vertex, 1e-12)
}

func TestNormalsFollowRepairedWinding(t *testing.T) {
	points := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0}
	m := build(t, []uint32{0, 1, 2, 2, 3, 1}, 4, WithPoints(points))

	normals, err := m.TriangleNormals()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 1, 0, 0, 1}, normals, 1e-12)
}

func TestCornerCotangents(t *testing.T) {
	points := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	m := build(t, []uint32{0, 1, 2}, 3, WithPoints(points))

	cotans, err := m.CornerCotangents()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 1}, cotans, 1e-12)
}

func TestGeometryNeedsPoints(t *testing.T) {
	m := build(t, []uint32{0, 1, 2}, 3)

	_, err := m.TriangleAreas()
	assert.ErrorIs(t, err, ErrNoPoints)
	_, err = m.VertexAreas()
	assert.ErrorIs(t, err, ErrNoPoints)
	_, err = m.TriangleNormals()
	assert.ErrorIs(t, err, ErrNoPoints)
	_, err = m.CornerCotangents()
	assert.ErrorIs(t, err, ErrNoPoints)
	assert.Nil(t, m.Points())
}

func TestDegenerateTriangle(t *testing.T) {
	points := []float64{0, 0, 0, 1, 0, 0, 2, 0, 0}
	m := build(t, []uint32{0, 1, 2}, 3, WithPoints(points))

	_, err := m.CornerCotangents()
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
	_, err = m.TriangleNormals()
	assert.ErrorIs(t, err, ErrDegenerateTriangle)

	areas, err := m.TriangleAreas()
	require.NoError(t, err)
	assert.Zero(t, areas[0])
}
