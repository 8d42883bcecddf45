package meshbuf

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/nurbsview/pkg/tessellation"
)

// embedFunc maps a source vector into 3D by dropping components beyond the
// source dimension.
type embedFunc func(r3.Vec) r3.Vec

var embedders = [...]embedFunc{
	tessellation.Dim1: func(v r3.Vec) r3.Vec { return r3.Vec{X: v.X} },
	tessellation.Dim2: func(v r3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y} },
	tessellation.Dim3: func(v r3.Vec) r3.Vec { return v },
}

// embedderFor returns the embedding for d. It panics on unsupported dimensions.
func embedderFor(d tessellation.Dim) embedFunc {
	if !d.Valid() {
		panic(fmt.Sprintf("meshbuf: unsupported dimension %d", d))
	}
	return embedders[d]
}

// toF32 narrows an embedded vector. NaN and Inf pass through unchanged.
func toF32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Project embeds a source vector of dimension d into 3D single precision.
func Project(d tessellation.Dim, v r3.Vec) [3]float32 {
	return toF32(embedderFor(d)(v))
}
