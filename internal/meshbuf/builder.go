package meshbuf

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Faultbox/nurbsview/pkg/math"
	"github.com/Faultbox/nurbsview/pkg/tessellation"
)

// BuildTriangleList converts a tessellation into triangle-list buffers.
// Triangles emit (a, b, c); quads [a, b, c, d] emit (a, b, c) and (a, c, d).
//
// A tessellation that breaks its invariants is a caller bug and panics.
func BuildTriangleList(t *tessellation.Tessellation) *Buffers {
	mustValidate(t)
	embed := embedderFor(t.Dim)

	n := len(t.Points)
	b := &Buffers{
		Positions: make([][3]float32, n),
		Normals:   make([][3]float32, n),
		UVs:       make([][2]float32, n),
		Indices:   make([]uint32, 0, t.IndexCount()),
	}

	for i := range t.Points {
		b.Positions[i] = toF32(embed(t.Points[i]))
		b.Normals[i] = toF32(embed(t.Normals[i]))
		b.UVs[i] = [2]float32{float32(t.UVs[i].X), float32(t.UVs[i].Y)}
	}

	for _, f := range t.Faces {
		switch len(f) {
		case 3:
			b.Indices = append(b.Indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
		case 4:
			b.Indices = append(b.Indices,
				uint32(f[0]), uint32(f[1]), uint32(f[2]),
				uint32(f[0]), uint32(f[2]), uint32(f[3]),
			)
		}
	}

	return b
}

// BuildNormalLineList returns a line list with one segment per point, from
// the point to the point offset along its normal.
func BuildNormalLineList(t *tessellation.Tessellation, opts NormalLineOptions) [][3]float32 {
	mustValidate(t)
	embed := embedderFor(t.Dim)

	lines := make([][3]float32, 0, 2*len(t.Points))
	for i, p := range t.Points {
		n := embed(t.Normals[i])
		if opts.Length != nil {
			n = r3.Scale(*opts.Length, r3.Unit(n))
		}
		p = embed(p)
		lines = append(lines, toF32(p), toF32(r3.Add(p, n)))
	}
	return lines
}

// BuildLineStrip converts a sampled curve into a line-strip position buffer.
func BuildLineStrip(points []math.Vec3) [][3]float32 {
	strip := make([][3]float32, len(points))
	for i, p := range points {
		strip[i] = p.Array()
	}
	return strip
}

// TriangleCount returns the number of triangles in the index buffer.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

func mustValidate(t *tessellation.Tessellation) {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("meshbuf: %v", err))
	}
}
