package meshgen

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// weldTolerance is the grid marching-cubes vertices are snapped to before
// they are merged.
const weldTolerance = 1e-6

type weldKey [3]int64

func keyOf(v v3.Vec) weldKey {
	return weldKey{
		int64(math.Round(v.X / weldTolerance)),
		int64(math.Round(v.Y / weldTolerance)),
		int64(math.Round(v.Z / weldTolerance)),
	}
}

// SDF polygonizes s with uniform marching cubes over cells cells along the
// longest bounding box axis. Marching cubes emits an unindexed triangle
// soup; coincident corners are welded into shared vertices and triangles
// that collapse under welding are dropped.
func SDF(s sdf.SDF3, cells int) (indices []uint32, points []float64, err error) {
	if cells <= 0 {
		return nil, nil, fmt.Errorf("meshgen: cells must be positive, got %d", cells)
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	ids := make(map[weldKey]uint32)
	vertexID := func(v v3.Vec) uint32 {
		k := keyOf(v)
		if id, ok := ids[k]; ok {
			return id
		}
		id := uint32(len(points) / 3)
		ids[k] = id
		points = append(points, v.X, v.Y, v.Z)
		return id
	}

	indices = make([]uint32, 0, 3*len(triangles))
	for _, tri := range triangles {
		a, b, c := vertexID(tri[0]), vertexID(tri[1]), vertexID(tri[2])
		if a == b || b == c || c == a {
			continue
		}
		indices = append(indices, a, b, c)
	}
	return indices, points, nil
}

// Sphere polygonizes a sphere of the given radius centred on the origin.
func Sphere(radius float64, cells int) (indices []uint32, points []float64, err error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, nil, fmt.Errorf("meshgen: sphere: %w", err)
	}
	return SDF(s, cells)
}
