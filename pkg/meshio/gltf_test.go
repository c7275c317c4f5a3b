package meshio

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadDocument() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2, 1, 3, 2})
	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}
	return doc
}

func TestLoadGLTFInvalidPath(t *testing.T) {
	_, err := LoadGLTF("/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestLoadGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	require.NoError(t, gltf.SaveBinary(quadDocument(), path))

	b, err := LoadGLTF(path)
	require.NoError(t, err)
	assert.Equal(t, 4, b.NVertices())
	assert.Equal(t, 2, b.NTriangles())
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, b.Indices)
	assert.Equal(t, []float64{1, 1, 0}, b.Points[9:12])
}

func TestFromDocumentOffsetsPrimitives(t *testing.T) {
	doc := quadDocument()
	prim := *doc.Meshes[0].Primitives[0]
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: "copy", Primitives: []*gltf.Primitive{&prim}})

	b, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 8, b.NVertices())
	assert.Equal(t, []uint32{4, 5, 6, 5, 7, 6}, b.Indices[6:])
}

func TestFromDocumentSequential(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	doc.Meshes = []*gltf.Mesh{{
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{gltf.POSITION: pos},
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}

	b, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, b.Indices)
}

func TestFromDocumentSkipsLines(t *testing.T) {
	doc := quadDocument()
	doc.Meshes[0].Primitives[0].Mode = gltf.PrimitiveLines

	b, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Zero(t, b.NTriangles())
}
