// Package tessellation holds sampled surface data produced by an external NURBS
// tessellator: points, normals, UV coordinates and faces.
package tessellation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tessellation")

// Dim is the embedding dimension of the sampled points.
type Dim uint8

const (
	Dim1 Dim = 1
	Dim2 Dim = 2
	Dim3 Dim = 3
)

// Valid reports whether d is a supported dimension.
func (d Dim) Valid() bool {
	return d >= Dim1 && d <= Dim3
}

func (d Dim) String() string {
	return fmt.Sprintf("%dD", uint8(d))
}

// Tessellation is a sampled surface. Points and normals are stored as r3
// vectors; components at or beyond Dim are ignored by consumers.
//
// Invariant: len(Points) == len(Normals) == len(UVs), and every face index
// is a valid index into Points.
type Tessellation struct {
	Dim     Dim
	Points  []r3.Vec
	Normals []r3.Vec
	UVs     []r2.Vec
	Faces   [][]int
}

// Validate returns the first invariant violation, wrapped in ErrInvalid.
func (t *Tessellation) Validate() error {
	if !t.Dim.Valid() {
		return fmt.Errorf("%w: unsupported dimension %d", ErrInvalid, t.Dim)
	}
	n := len(t.Points)
	if len(t.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d points", ErrInvalid, len(t.Normals), n)
	}
	if len(t.UVs) != n {
		return fmt.Errorf("%w: %d uvs for %d points", ErrInvalid, len(t.UVs), n)
	}
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d points exceed 32-bit indices", ErrInvalid, n)
	}
	for i, f := range t.Faces {
		if len(f) != 3 && len(f) != 4 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalid, i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references point %d of %d", ErrInvalid, i, idx, n)
			}
		}
	}
	return nil
}

// IndexCount returns the number of triangle-list indices the faces expand to.
func (t *Tessellation) IndexCount() int {
	count := 0
	for _, f := range t.Faces {
		if len(f) == 4 {
			count += 6
		} else {
			count += 3
		}
	}
	return count
}
