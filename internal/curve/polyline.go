package curve

import (
	gomath "math"

	"github.com/Faultbox/nurbsview/pkg/math"
)

// Polyline is a piecewise-linear curve through its points.
type Polyline struct {
	Points []math.Vec3
}

// NewPolyline copies points into a new polyline.
func NewPolyline(points ...math.Vec3) *Polyline {
	return &Polyline{Points: append([]math.Vec3(nil), points...)}
}

// ClosestPoint projects p onto every segment and keeps the nearest result.
// An empty polyline has no closest point and returns NaN components.
func (pl *Polyline) ClosestPoint(p math.Vec3) math.Vec3 {
	switch len(pl.Points) {
	case 0:
		nan := float32(gomath.NaN())
		return math.Vec3{X: nan, Y: nan, Z: nan}
	case 1:
		return pl.Points[0]
	}

	best := pl.Points[0]
	bestDist := float32(gomath.Inf(1))
	for i := 0; i+1 < len(pl.Points); i++ {
		c := closestOnSegment(pl.Points[i], pl.Points[i+1], p)
		if d := c.Distance(p); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Tessellate returns the vertices; a polyline is already exact at any tolerance.
func (pl *Polyline) Tessellate(float32) []math.Vec3 {
	return append([]math.Vec3(nil), pl.Points...)
}

// Transformed returns a new polyline with every vertex mapped through m.
func (pl *Polyline) Transformed(m math.Mat4) Curve {
	out := make([]math.Vec3, len(pl.Points))
	for i, p := range pl.Points {
		out[i] = m.TransformVec3(p)
	}
	return &Polyline{Points: out}
}

func closestOnSegment(a, b, p math.Vec3) math.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.Add(ab.Scale(t))
}
