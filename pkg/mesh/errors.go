package mesh

import "errors"

var (
	// ErrInvalidTopology reports an index buffer or vertex count that cannot
	// describe a triangle mesh.
	ErrInvalidTopology = errors.New("mesh: invalid topology")
	// ErrSizeMismatch reports a caller array whose length does not match the
	// mesh entity counts.
	ErrSizeMismatch = errors.New("mesh: array size mismatch")
	// ErrNoPoints is returned by operations that need vertex coordinates on a
	// mesh built without WithPoints.
	ErrNoPoints = errors.New("mesh: no vertex coordinates")
	// ErrDegenerateEdge reports an edge whose endpoints coincide.
	ErrDegenerateEdge = errors.New("mesh: degenerate edge")
	// ErrDegenerateTriangle reports a triangle with zero area.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")
)
