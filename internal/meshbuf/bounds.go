package meshbuf

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// BoundsLineVertexCount is the number of vertices in a bounds wireframe (12 edges × 2).
const BoundsLineVertexCount = 24

// Bounds returns the axis-aligned bounds of the positions.
// An empty buffer yields a zero box.
func (b *Buffers) Bounds() Bounds {
	if len(b.Positions) == 0 {
		return Bounds{}
	}
	bounds := Bounds{Min: b.Positions[0], Max: b.Positions[0]}
	for _, p := range b.Positions[1:] {
		updateBounds(&bounds, p)
	}
	return bounds
}

// LineList returns the box edges as a line list for debug display.
func (b Bounds) LineList() [][3]float32 {
	minX, minY, minZ := b.Min[0], b.Min[1], b.Min[2]
	maxX, maxY, maxZ := b.Max[0], b.Max[1], b.Max[2]
	return [][3]float32{
		// Bottom face
		{minX, minY, minZ}, {maxX, minY, minZ},
		{maxX, minY, minZ}, {maxX, minY, maxZ},
		{maxX, minY, maxZ}, {minX, minY, maxZ},
		{minX, minY, maxZ}, {minX, minY, minZ},
		// Top face
		{minX, maxY, minZ}, {maxX, maxY, minZ},
		{maxX, maxY, minZ}, {maxX, maxY, maxZ},
		{maxX, maxY, maxZ}, {minX, maxY, maxZ},
		{minX, maxY, maxZ}, {minX, maxY, minZ},
		// Vertical edges
		{minX, minY, minZ}, {minX, maxY, minZ},
		{maxX, minY, minZ}, {maxX, maxY, minZ},
		{maxX, minY, maxZ}, {maxX, maxY, maxZ},
		{minX, minY, maxZ}, {minX, maxY, maxZ},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
