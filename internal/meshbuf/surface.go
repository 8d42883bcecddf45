package meshbuf

import "github.com/Faultbox/nurbsview/pkg/tessellation"

// SurfaceMesh wraps a tessellation and builds render buffers from it on demand.
// It keeps no derived state; every call rebuilds from the tessellation.
type SurfaceMesh struct {
	tess *tessellation.Tessellation
}

// NewSurfaceMesh creates a mesh generator for t.
func NewSurfaceMesh(t *tessellation.Tessellation) *SurfaceMesh {
	return &SurfaceMesh{tess: t}
}

// Tessellation returns the wrapped tessellation.
func (m *SurfaceMesh) Tessellation() *tessellation.Tessellation {
	return m.tess
}

// TriangleList builds the surface triangle list.
func (m *SurfaceMesh) TriangleList() *Buffers {
	return BuildTriangleList(m.tess)
}

// NormalLineList builds the normal visualization line list.
func (m *SurfaceMesh) NormalLineList(opts NormalLineOptions) [][3]float32 {
	return BuildNormalLineList(m.tess, opts)
}
