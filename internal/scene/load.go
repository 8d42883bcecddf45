package scene

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/nurbsview/internal/curve"
	"github.com/Faultbox/nurbsview/pkg/math"
)

// sceneFile is the YAML layout of a saved scene.
type sceneFile struct {
	Curves []curveFile `yaml:"curves"`
}

type curveFile struct {
	Points      [][3]float32  `yaml:"points"`
	Translation [3]float32    `yaml:"translation"`
	Rotation    *rotationFile `yaml:"rotation,omitempty"`
	Scale       *[3]float32   `yaml:"scale,omitempty"`
}

// rotationFile is an axis-angle rotation; Angle is in radians.
type rotationFile struct {
	Axis  [3]float32 `yaml:"axis"`
	Angle float32    `yaml:"angle"`
}

// Load reads polyline curves and their placements from a YAML file.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading scene from %s: %w", path, err)
	}
	return r, nil
}

// Decode reads a scene from YAML.
func Decode(rd io.Reader) (*Registry, error) {
	var sf sceneFile
	if err := yaml.NewDecoder(rd).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	reg := NewRegistry()
	for i, cf := range sf.Curves {
		if len(cf.Points) < 2 {
			return nil, fmt.Errorf("curve %d: need at least 2 points, got %d", i, len(cf.Points))
		}
		placement, err := cf.placement()
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}

		points := make([]math.Vec3, len(cf.Points))
		for j, p := range cf.Points {
			points[j] = vec(p)
		}
		reg.Add(&curve.Polyline{Points: points}, placement)
	}
	return reg, nil
}

func (cf curveFile) placement() (math.Transform, error) {
	t := math.TransformFromTranslation(vec(cf.Translation))
	if cf.Scale != nil {
		t.Scale = vec(*cf.Scale)
	}
	if cf.Rotation != nil {
		axis := vec(cf.Rotation.Axis)
		if axis.Length() == 0 {
			return t, fmt.Errorf("rotation axis is zero")
		}
		t.Rotation = math.QuatFromAxisAngle(axis.Normalize(), cf.Rotation.Angle)
	}
	return t, nil
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
