// Package meshgen produces synthetic triangle meshes as flat index and
// coordinate buffers.
package meshgen

import (
	"math/rand"
)

// Grid returns a planar grid of rows by cols unit cells in the z=0 plane,
// two counter-clockwise triangles per cell. Vertex r*(cols+1)+c sits at
// (c, r, 0).
func Grid(rows, cols int) (indices []uint32, points []float64) {
	if rows <= 0 || cols <= 0 {
		return nil, nil
	}
	stride := cols + 1
	points = make([]float64, 0, 3*(rows+1)*stride)
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			points = append(points, float64(c), float64(r), 0)
		}
	}

	indices = make([]uint32, 0, 6*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint32(r*stride + c)
			b := a + 1
			d := a + uint32(stride)
			e := d + 1
			indices = append(indices, a, b, e, a, e, d)
		}
	}
	return indices, points
}

// Scramble returns a copy of indices in which the given fraction of the
// triangles, picked by rng, have their winding reversed.
func Scramble(indices []uint32, fraction float64, rng *rand.Rand) []uint32 {
	out := make([]uint32, len(indices))
	copy(out, indices)

	n := len(indices) / 3
	flips := int(fraction * float64(n))
	if flips > n {
		flips = n
	}
	for _, t := range rng.Perm(n)[:max(flips, 0)] {
		out[3*t+1], out[3*t+2] = out[3*t+2], out[3*t+1]
	}
	return out
}
