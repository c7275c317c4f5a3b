// Package meshio reads triangle meshes from disk into the flat index and
// coordinate buffers expected by package mesh.
package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Buffers holds a triangle mesh as flat arrays: three vertex ids per
// triangle and three coordinates per vertex.
type Buffers struct {
	Indices []uint32
	Points  []float64
}

func (b *Buffers) NVertices() int  { return len(b.Points) / 3 }
func (b *Buffers) NTriangles() int { return len(b.Indices) / 3 }

// LoadGLTF reads a .gltf or .glb file. The triangle primitives of every mesh
// are concatenated, each primitive's indices offset by the vertices read
// before it. Primitives without indices are taken as sequential triangles,
// and non-triangle primitives are skipped. Node transforms are ignored.
func LoadGLTF(path string) (*Buffers, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument extracts buffers from an already decoded document.
func FromDocument(doc *gltf.Document) (*Buffers, error) {
	b := &Buffers{}
	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if err := b.appendPrimitive(doc, prim); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}
	return b, nil
}

func (b *Buffers) appendPrimitive(doc *gltf.Document, prim *gltf.Primitive) error {
	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
		return nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions)-len(positions)%3)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%d indices do not form triangles", len(indices))
	}

	base := uint32(b.NVertices())
	for _, p := range positions {
		b.Points = append(b.Points, float64(p[0]), float64(p[1]), float64(p[2]))
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d out of range for %d positions", idx, len(positions))
		}
		b.Indices = append(b.Indices, base+idx)
	}
	return nil
}
