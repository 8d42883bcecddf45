package tessellation

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML form. Each point and normal carries exactly
// dim components.
type document struct {
	Dim     int          `yaml:"dim"`
	Points  [][]float64  `yaml:"points"`
	Normals [][]float64  `yaml:"normals"`
	UVs     [][2]float64 `yaml:"uvs"`
	Faces   [][]int      `yaml:"faces"`
}

// Load reads and validates a tessellation from a YAML file.
func Load(path string) (*Tessellation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading tessellation from %s: %w", path, err)
	}
	return t, nil
}

// Decode reads and validates a tessellation from YAML.
func Decode(r io.Reader) (*Tessellation, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	// Range-check before narrowing to Dim so that 257 cannot wrap to Dim1.
	if doc.Dim < int(Dim1) || doc.Dim > int(Dim3) {
		return nil, fmt.Errorf("%w: unsupported dimension %d", ErrInvalid, doc.Dim)
	}
	t := &Tessellation{
		Dim:   Dim(doc.Dim),
		Faces: doc.Faces,
	}

	var err error
	if t.Points, err = toVecs("point", doc.Points, doc.Dim); err != nil {
		return nil, err
	}
	if t.Normals, err = toVecs("normal", doc.Normals, doc.Dim); err != nil {
		return nil, err
	}
	t.UVs = make([]r2.Vec, len(doc.UVs))
	for i, uv := range doc.UVs {
		t.UVs[i] = r2.Vec{X: uv[0], Y: uv[1]}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func toVecs(kind string, coords [][]float64, dim int) ([]r3.Vec, error) {
	out := make([]r3.Vec, len(coords))
	for i, c := range coords {
		if len(c) != dim {
			return nil, fmt.Errorf("%w: %s %d has %d components, want %d", ErrInvalid, kind, i, len(c), dim)
		}
		var v [3]float64
		copy(v[:], c)
		out[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	return out, nil
}

// Save writes t as YAML, emitting Dim components per point and normal.
func Save(w io.Writer, t *Tessellation) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dim := int(t.Dim)
	doc := document{
		Dim:     dim,
		Points:  fromVecs(t.Points, dim),
		Normals: fromVecs(t.Normals, dim),
		UVs:     make([][2]float64, len(t.UVs)),
		Faces:   t.Faces,
	}
	for i, uv := range t.UVs {
		doc.UVs[i] = [2]float64{uv.X, uv.Y}
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

func fromVecs(vs []r3.Vec, dim int) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v.X, v.Y, v.Z}[:dim]
	}
	return out
}
