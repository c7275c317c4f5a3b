package mesh

import (
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-trimesh/pkg/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestScrambledGridIsRepaired(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		indices, points := meshgen.Grid(5, 7)
		scrambled := meshgen.Scramble(indices, 0.4, rand.New(rand.NewSource(seed)))

		m := build(t, scrambled, len(points)/3, WithPoints(points))
		requireSound(t, m)
		assert.Empty(t, m.Diagnostics().Defects(), "seed %d", seed)
		assert.Empty(t, m.TestContiguous(), "seed %d", seed)

		normals, err := m.TriangleNormals()
		require.NoError(t, err)
		for i := 2; i < len(normals); i += 3 {
			assert.InDelta(t, normals[2], normals[i], 1e-12, "seed %d triangle %d", seed, i/3)
		}
	}
}

func TestEdgeCountRelations(t *testing.T) {
	cases := [][]uint32{
		{0, 1, 2},
		{0, 1, 2, 2, 3, 1},
		{0, 1, 2, 1, 0, 3, 0, 1, 4},
		{0, 1, 2, 0, 3, 2, 0, 1, 3, 1, 2, 3},
	}
	grid, _ := meshgen.Grid(4, 4)
	cases = append(cases, meshgen.Scramble(grid, 0.5, rand.New(rand.NewSource(9))))

	for _, indices := range cases {
		n := 0
		for _, v := range indices {
			n = max(n, int(v)+1)
		}
		m := build(t, indices, n)
		assert.LessOrEqual(t, m.NFulledges(), m.NEdges())
		assert.Equal(t, m.NHalfedges(), 2*m.NFulledges()+m.NBoundaryEdges())
		assert.Equal(t, 3*m.NTriangles(), m.NHalfedges())
	}
}

func TestGridCounts(t *testing.T) {
	indices, _ := meshgen.Grid(2, 2)
	m := build(t, indices, 9)
	assert.Equal(t, 8, m.NTriangles())
	assert.Equal(t, 16, m.NEdges())
	assert.Equal(t, 8, m.NFulledges())
	assert.Equal(t, 8, m.NBoundaryEdges())
}

func TestContiguousRegions(t *testing.T) {
	m := build(t, []uint32{3, 4, 5, 0, 1, 2}, 7)
	regions := m.ContiguousRegions()
	assert.Equal(t, [][]VertexID{{0, 1, 2}, {3, 4, 5}, {6}}, regions)

	r := m.TestContiguous()
	require.Len(t, r, 2)
	assert.Equal(t, Disconnected, r[0].Kind)
	assert.Equal(t, [2]VertexID{3, 3}, r[0].Vertices)
	assert.Equal(t, [2]VertexID{6, 6}, r[1].Vertices)
}

func TestVerifyDetectsCorruption(t *testing.T) {
	t.Run("slot", func(t *testing.T) {
		m := build(t, []uint32{0, 1, 2}, 3)
		m.halfedges[1].local = 2
		r := m.VerifyMesh()
		require.NotEmpty(t, r)
		assert.Equal(t, BrokenHalfedge, r[0].Kind)
	})

	t.Run("pairing", func(t *testing.T) {
		m := build(t, []uint32{0, 1, 2, 2, 1, 3}, 4)
		h := m.HalfedgeToVertex(1, 2)
		m.halfedges[m.halfedges[h].pair].pair = NoHalfedge
		r := m.VerifyMesh()
		require.NotEmpty(t, r)
		assert.Equal(t, 0, r.Count(BrokenHalfedge))
		assert.Positive(t, r.Count(BrokenPairing))
	})

	t.Run("attachment", func(t *testing.T) {
		m := build(t, []uint32{0, 1, 2}, 3)
		m.vertices[2].triangles = nil
		r := m.VerifyMesh()
		assert.Positive(t, r.Count(IllegalAttachment))
		assert.False(t, m.LegalAttachment(2, 0))
	})

	t.Run("outgoing", func(t *testing.T) {
		m := build(t, []uint32{0, 1, 2}, 3)
		m.vertices[0].halfedges = append(m.vertices[0].halfedges, 1)
		r := m.VerifyMesh()
		assert.Positive(t, r.Count(BrokenHalfedge))
	})
}

func TestChiralConsistencyDetectsSameDirection(t *testing.T) {
	m := build(t, []uint32{0, 1, 2, 2, 1, 3}, 4)
	h := m.HalfedgeToVertex(2, 1)
	m.flipHalfedge(h)

	r := m.TestChiralConsistency()
	assert.Equal(t, 2, r.Count(ChiralInconsistency))
}

func TestReportErr(t *testing.T) {
	r := Report{
		{Kind: ChiralityRepaired, Triangle: 1, Halfedge: 3, Message: "fixed"},
		{Kind: OverDetermined, Triangle: 2, Halfedge: 6, Vertices: [2]VertexID{0, 1}, Message: "left"},
		{Kind: Disconnected, Triangle: NoTriangle, Halfedge: NoHalfedge, Message: "apart"},
	}
	err := r.Err()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "over-determined: left (triangle 2, vertices 0-1)", errs[0].Error())
	assert.Equal(t, "disconnected: apart", errs[1].Error())
	assert.Equal(t, 1, r.Count(ChiralityRepaired))
	assert.NoError(t, Report{}.Err())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "chirality-repaired", ChiralityRepaired.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
	assert.False(t, ChiralityRepaired.Defect())
	assert.True(t, BrokenPairing.Defect())
}

func TestEveryHalfedgeHasAnEdge(t *testing.T) {
	m := build(t, []uint32{0, 1, 2, 1, 0, 3, 0, 1, 4}, 5)
	for h := range m.NHalfedges() {
		e := m.Halfedge(HalfedgeID(h)).Edge()
		require.NotEqual(t, NoEdge, e, "half-edge %d", h)
		assert.Contains(t, m.Edge(e).Halfedges(), HalfedgeID(h))
	}
}
