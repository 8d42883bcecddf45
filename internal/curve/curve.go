// Package curve defines the contract the picking and scene layers expect from
// curve objects, plus a polyline implementation.
package curve

import (
	"fmt"

	"github.com/Faultbox/nurbsview/pkg/math"
)

// Curve is a parametric curve evaluated by an external geometry library.
type Curve interface {
	// ClosestPoint returns the point on the curve nearest to p.
	ClosestPoint(p math.Vec3) math.Vec3

	// Tessellate samples the curve into an ordered polyline.
	Tessellate(tolerance float32) []math.Vec3

	// Transformed returns a copy of the curve with m applied to its geometry.
	Transformed(m math.Mat4) Curve
}

// ID is an opaque handle used to find a curve again in the scene each frame.
type ID uint64

func (id ID) String() string {
	return fmt.Sprintf("curve-%d", uint64(id))
}

// Profile pairs a curve with its handle.
type Profile struct {
	ID    ID
	Curve Curve
}

// Centroid returns the average of points, or the origin when empty.
func Centroid(points []math.Vec3) math.Vec3 {
	if len(points) == 0 {
		return math.Vec3{}
	}
	var sum math.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	n := float32(len(points))
	return math.Vec3{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}
