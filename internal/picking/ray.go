// Package picking resolves which curve in the scene a pick ray points at.
package picking

import (
	gomath "math"

	"github.com/Faultbox/nurbsview/pkg/math"
)

// epsilon is the float32 machine epsilon. Plane hits closer than this, or
// rays this close to parallel, are rejected.
const epsilon = float32(1.1920929e-07)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// PickRay returns a ray from the world origin along direction.
// The origin is a fixed constant of the coordinate system, not a camera position.
func PickRay(direction math.Vec3) Ray {
	return Ray{Direction: direction.Normalize()}
}

// PointAt returns Origin + t*Direction.
func (r Ray) PointAt(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane intersects the ray with the plane through origin with the
// given normal. It returns the ray distance to the hit, and false when the
// ray is parallel to the plane or the plane lies behind the ray.
func (r Ray) IntersectPlane(origin, normal math.Vec3) (float32, bool) {
	denom := normal.Dot(r.Direction)
	if float32(gomath.Abs(float64(denom))) <= epsilon {
		return 0, false // Ray parallel to plane
	}

	t := origin.Sub(r.Origin).Dot(normal) / denom
	if t <= epsilon {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}
