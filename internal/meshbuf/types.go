// Package meshbuf converts surface tessellations into flat vertex and index
// buffers ready for upload to a rasterizer.
package meshbuf

// Buffers holds a triangle-list mesh ready for GPU upload.
// Positions, Normals and UVs are parallel arrays, one entry per tessellation point.
type Buffers struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// NormalLineOptions controls normal visualization.
type NormalLineOptions struct {
	// Length rescales every normal to this length when set.
	// When nil, the tessellator's normals are used as-is.
	Length *float64
}

// WithLength returns options that rescale normals to l.
func WithLength(l float64) NormalLineOptions {
	return NormalLineOptions{Length: &l}
}
