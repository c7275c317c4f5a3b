package mesh

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Kind classifies a diagnostic record.
type Kind int

const (
	// OverDetermined marks a half-edge whose vertex pair already carries
	// half-edges in both directions. It is left unpaired.
	OverDetermined Kind = iota + 1
	// ChiralityRepaired marks a winding conflict fixed by a region flip.
	ChiralityRepaired
	// IllegalAttachment marks a triangle corner that does not list the
	// triangle among its incident triangles.
	IllegalAttachment
	// BrokenHalfedge marks a half-edge that disagrees with its triangle slot.
	BrokenHalfedge
	// BrokenPairing marks a pairing or edge grouping that is not mutual.
	BrokenPairing
	// ChiralInconsistency marks neighbours that wind the same way across a
	// shared vertex pair.
	ChiralInconsistency
	// Disconnected marks a vertex region not reachable from vertex 0.
	Disconnected
)

var kindNames = map[Kind]string{
	OverDetermined:      "over-determined",
	ChiralityRepaired:   "chirality-repaired",
	IllegalAttachment:   "illegal-attachment",
	BrokenHalfedge:      "broken-halfedge",
	BrokenPairing:       "broken-pairing",
	ChiralInconsistency: "chiral-inconsistency",
	Disconnected:        "disconnected",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Defect reports whether the kind describes a problem rather than a repair.
func (k Kind) Defect() bool {
	return k != ChiralityRepaired
}

// Diagnostic is one finding of construction or verification. Fields that do
// not apply hold NoTriangle or NoHalfedge.
type Diagnostic struct {
	Kind     Kind
	Triangle TriangleID
	Halfedge HalfedgeID
	Vertices [2]VertexID
	Message  string
}

func (d Diagnostic) Error() string {
	ctx := ""
	if d.Triangle != NoTriangle {
		ctx = fmt.Sprintf(" (triangle %d, vertices %d-%d)", d.Triangle, d.Vertices[0], d.Vertices[1])
	}
	return fmt.Sprintf("%s: %s%s", d.Kind, d.Message, ctx)
}

func (d Diagnostic) fields() []zap.Field {
	return []zap.Field{
		zap.Int("triangle", int(d.Triangle)),
		zap.Int("halfedge", int(d.Halfedge)),
		zap.Ints("vertices", []int{int(d.Vertices[0]), int(d.Vertices[1])}),
		zap.String("detail", d.Message),
	}
}

// Report is an ordered list of diagnostics.
type Report []Diagnostic

// Count returns the number of records of the given kind.
func (r Report) Count(k Kind) int {
	n := 0
	for _, d := range r {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Defects drops the records that describe successful repairs.
func (r Report) Defects() Report {
	var out Report
	for _, d := range r {
		if d.Kind.Defect() {
			out = append(out, d)
		}
	}
	return out
}

// Err combines every defect into a single error, or returns nil.
func (r Report) Err() error {
	var err error
	for _, d := range r.Defects() {
		err = multierr.Append(err, d)
	}
	return err
}

// Log writes every record to l, defects at warn level.
func (r Report) Log(l *zap.Logger) {
	for _, d := range r {
		if d.Kind.Defect() {
			l.Warn(d.Kind.String(), d.fields()...)
		} else {
			l.Info(d.Kind.String(), d.fields()...)
		}
	}
}
