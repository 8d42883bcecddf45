package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/nurbsview/internal/config"
	"github.com/Faultbox/nurbsview/internal/scene"
	"github.com/Faultbox/nurbsview/pkg/math"
)

// Two unit segments on the plane y = -2: curve-1 straddles the origin's
// shadow and curve-2 sits three units along +X.
const twoCurveScene = `
curves:
  - points: [[-1, 0, 0], [1, 0, 0]]
    translation: [0, -2, 0]
  - points: [[-1, 0, 0], [1, 0, 0]]
    translation: [3, -2, 0]
`

const quadTess = `
dim: 2
points: [[0, 0], [1, 0], [1, 1], [0, 1]]
normals: [[0, 1], [0, 1], [0, 1], [0, 1]]
uvs: [[0, 0], [1, 0], [1, 1], [0, 1]]
faces: [[0, 1, 2, 3]]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParseVec3(t *testing.T) {
	got, err := parseVec3("0, -1 ,0.5")
	if err != nil {
		t.Fatalf("parseVec3: %v", err)
	}
	if got != (math.Vec3{Y: -1, Z: 0.5}) {
		t.Errorf("parseVec3 = %v", got)
	}

	for _, bad := range []string{"", "1,2", "a,b,c", "0,0,0"} {
		if _, err := parseVec3(bad); err == nil {
			t.Errorf("parseVec3(%q) should fail", bad)
		}
	}

	if v, err := parseOffset("0,0,0"); err != nil || v != (math.Vec3{}) {
		t.Errorf("parseOffset(0,0,0) = %v, %v; zero offsets are allowed", v, err)
	}
}

func TestReorder(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("dir", "", "")
	fs.Bool("wireframe", false, "")

	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"scene.yaml", "-dir", "0,-1,0"}, []string{"-dir", "0,-1,0", "scene.yaml"}},
		{[]string{"-length=0.2", "tess.yaml"}, []string{"-length=0.2", "tess.yaml"}},
		{[]string{"tess.yaml"}, []string{"tess.yaml"}},
		{[]string{"-wireframe", "tess.yaml"}, []string{"-wireframe", "tess.yaml"}},
		{[]string{"-wireframe", "tess.yaml", "-dir", "1,0,0"}, []string{"-wireframe", "-dir", "1,0,0", "tess.yaml"}},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, reorder(fs, tt.in)); d != "" {
			t.Errorf("reorder(%v) mismatch (-want +got):\n%s", tt.in, d)
		}
	}
}

func TestMeshWireframe(t *testing.T) {
	path := writeFile(t, "quad.yaml", quadTess)

	var out bytes.Buffer
	if err := cmdMesh(&out, config.Default(), []string{"-wireframe", path}); err != nil {
		t.Fatalf("cmdMesh: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Triangles: 2",
		"Bounds:    min=[0 0 0] max=[1 1 0]",
		"Wireframe: 12 edges",
		"  [0 0 0] -> [1 0 0]",
		"  [0 1 0] -> [0 1 0]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("mesh output missing %q:\n%s", want, got)
		}
	}

	out.Reset()
	if err := cmdMesh(&out, config.Default(), []string{path}); err != nil {
		t.Fatalf("cmdMesh: %v", err)
	}
	if strings.Contains(out.String(), "Wireframe") {
		t.Errorf("wireframe printed without -wireframe:\n%s", out.String())
	}
}

func TestPickAndMove(t *testing.T) {
	path := writeFile(t, "scene.yaml", twoCurveScene)

	var out bytes.Buffer
	err := cmdPick(&out, config.Default(), []string{path, "-dir", "3,-2,0", "-move", "0,0,1"})
	if err != nil {
		t.Fatalf("cmdPick: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Picked:    curve-2 (index 1)",
		"Distance:  0.000000",
		"Moved:     curve-2",
		"centroid now {3 -2 1}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("pick output missing %q:\n%s", want, got)
		}
	}
}

func TestPickMiss(t *testing.T) {
	path := writeFile(t, "scene.yaml", twoCurveScene)

	var out bytes.Buffer
	if err := cmdPick(&out, config.Default(), []string{path, "-dir", "0,1,0"}); err != nil {
		t.Fatalf("cmdPick: %v", err)
	}
	if !strings.HasPrefix(out.String(), "No curve within 0.500") {
		t.Errorf("expected a miss, got:\n%s", out.String())
	}
}

func TestLoftSequence(t *testing.T) {
	path := writeFile(t, "scene.yaml", twoCurveScene)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "two profiles",
			args: []string{"-dir", "0,-1,0", "-dir", "3,-2,0"},
			want: []string{"Loft targets: 2", "  curve-1", "  curve-2", "Selected:     curve-2"},
		},
		{
			name: "picked curve not offered twice",
			args: []string{"-dir", "0,-1,0", "-dir", "0,-1,0"},
			want: []string{"No curve along", "Loft targets: 1", "Selected:     curve-1"},
		},
		{
			name: "dropped curve cannot be picked",
			args: []string{"-drop", "1", "-dir", "0,-1,0", "-dir", "3,-2,0"},
			want: []string{"No curve along", "Loft targets: 1", "  curve-2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := cmdLoft(&out, config.Default(), append([]string{path}, tt.args...)); err != nil {
				t.Fatalf("cmdLoft: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("loft output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestLoftErrors(t *testing.T) {
	path := writeFile(t, "scene.yaml", twoCurveScene)

	var out bytes.Buffer
	if err := cmdLoft(&out, config.Default(), []string{path}); !errors.Is(err, errUsage) {
		t.Errorf("loft without -dir: got %v, want errUsage", err)
	}
	err := cmdLoft(&out, config.Default(), []string{path, "-drop", "9", "-dir", "0,-1,0"})
	if !errors.Is(err, scene.ErrUnknownCurve) {
		t.Errorf("dropping unknown curve: got %v, want ErrUnknownCurve", err)
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	cfg := config.Default()
	cfg.Picking.Threshold = 0.25
	cfg.Logging.Level = "debug"

	var out bytes.Buffer
	if err := cmdInitConfig(&out, cfg, []string{path}); err != nil {
		t.Fatalf("cmdInitConfig: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("expected written path in output, got %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	for _, want := range []string{"threshold: 0.25", "level: debug"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("written config missing %q:\n%s", want, data)
		}
	}

	bad := config.Default()
	bad.Picking.CurveTolerance = 0
	if err := cmdInitConfig(&out, bad, []string{path + ".bad"}); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}
