package picking

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/nurbsview/internal/curve"
	"github.com/Faultbox/nurbsview/pkg/math"
)

// DefaultThreshold is the pick distance used by the interactive modes.
const DefaultThreshold = 0.5

// Candidate is a curve placed in the scene. Candidates are borrowed: the
// resolver neither copies nor mutates the curve.
type Candidate struct {
	ID        curve.ID
	Curve     curve.Curve
	Placement math.Transform
}

// Match is the result of a successful pick.
type Match struct {
	// Index of the winning candidate in the input slice.
	Index     int
	Candidate Candidate
	// World is the candidate's curve transformed into world space.
	World    curve.Curve
	Distance float32
}

// WorkingPlane returns the candidate's local XZ plane in world space.
func (c Candidate) WorkingPlane() (origin, normal math.Vec3) {
	origin = c.Placement.TransformPoint(math.Vec3{})
	normal = c.Placement.Rotation.Rotate(math.Up)
	return origin, normal
}

// FindClosestCurve returns the candidate whose world-space curve passes
// nearest to where the ray crosses that candidate's working plane.
//
// Candidates whose plane the ray misses are skipped. Ties keep the earliest
// candidate. NaN distances never win. The best match is returned only when
// its distance is strictly below threshold.
func FindClosestCurve(ray Ray, candidates []Candidate, threshold float32) (Match, bool) {
	best := Match{Index: -1}
	bestDist := float32(gomath.Inf(1))

	for i, c := range candidates {
		world := c.Curve.Transformed(c.Placement.Matrix())

		origin, normal := c.WorkingPlane()
		t, ok := ray.IntersectPlane(origin, normal)
		if !ok {
			continue
		}

		hit := ray.PointAt(t)
		d := world.ClosestPoint(hit).Distance(hit)
		if gomath.IsNaN(float64(d)) {
			continue
		}
		if best.Index < 0 || d < bestDist {
			best = Match{Index: i, Candidate: c, World: world, Distance: d}
			bestDist = d
		}
	}

	if best.Index < 0 || !(best.Distance < threshold) {
		return Match{}, false
	}
	return best, true
}

// Resolver runs FindClosestCurve with a fixed threshold and logs the outcome.
// It holds no per-call state and may be shared between goroutines.
type Resolver struct {
	threshold float32
	log       *zap.Logger
}

// NewResolver creates a resolver. A nil logger disables logging.
func NewResolver(threshold float32, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{threshold: threshold, log: log}
}

// Threshold returns the configured pick distance.
func (r *Resolver) Threshold() float32 {
	return r.threshold
}

// Resolve picks the closest curve along ray.
func (r *Resolver) Resolve(ray Ray, candidates []Candidate) (Match, bool) {
	m, ok := FindClosestCurve(ray, candidates, r.threshold)
	if !ok {
		r.log.Debug("no curve picked",
			zap.Int("candidates", len(candidates)),
			zap.Float32("threshold", r.threshold),
		)
		return m, false
	}
	r.log.Debug("curve picked",
		zap.Stringer("id", m.Candidate.ID),
		zap.Int("index", m.Index),
		zap.Float32("distance", m.Distance),
	)
	return m, true
}
