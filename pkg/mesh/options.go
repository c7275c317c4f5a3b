package mesh

import "go.uber.org/zap"

type config struct {
	log    *zap.Logger
	points []float64
}

// Option configures mesh construction.
type Option func(*config)

// WithLogger sets the logger that receives build and repair records.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

// WithPoints attaches xyz coordinates, three per vertex. The slice is kept,
// not copied. Points are needed by the distance Laplacian and the geometry
// helpers.
func WithPoints(points []float64) Option {
	return func(c *config) {
		c.points = points
	}
}
