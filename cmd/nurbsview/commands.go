package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/nurbsview/internal/config"
	"github.com/Faultbox/nurbsview/internal/curve"
	"github.com/Faultbox/nurbsview/internal/logger"
	"github.com/Faultbox/nurbsview/internal/meshbuf"
	"github.com/Faultbox/nurbsview/internal/picking"
	"github.com/Faultbox/nurbsview/internal/scene"
	"github.com/Faultbox/nurbsview/pkg/math"
	"github.com/Faultbox/nurbsview/pkg/tessellation"
)

var errUsage = errors.New("invalid usage")

func cmdMesh(out io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("mesh", flag.ContinueOnError)
	wireframe := fs.Bool("wireframe", false, "Print the bounds wireframe edges")
	if err := fs.Parse(reorder(fs, args)); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: nurbsview mesh <tess.yaml> [-wireframe]", errUsage)
	}
	path := fs.Arg(0)

	tess, err := tessellation.Load(path)
	if err != nil {
		return err
	}

	mesh := meshbuf.NewSurfaceMesh(tess)
	buf := mesh.TriangleList()
	bounds := buf.Bounds()

	logger.Named(logger.Mesh).Info("built surface mesh",
		zap.String("file", path),
		zap.Stringer("dim", tess.Dim),
		zap.Int("vertices", len(buf.Positions)),
		zap.Int("triangles", buf.TriangleCount()),
		logger.Vec3("min", bounds.Min),
		logger.Vec3("max", bounds.Max),
	)

	fmt.Fprintf(out, "File:      %s\n", path)
	fmt.Fprintf(out, "Dimension: %s\n", tess.Dim)
	fmt.Fprintf(out, "Vertices:  %d\n", len(buf.Positions))
	fmt.Fprintf(out, "Indices:   %d\n", len(buf.Indices))
	fmt.Fprintf(out, "Triangles: %d\n", buf.TriangleCount())
	fmt.Fprintf(out, "Bounds:    min=%v max=%v\n", bounds.Min, bounds.Max)

	if *wireframe {
		edges := bounds.LineList()
		fmt.Fprintf(out, "Wireframe: %d edges\n", len(edges)/2)
		for i := 0; i+1 < len(edges); i += 2 {
			fmt.Fprintf(out, "  %v -> %v\n", edges[i], edges[i+1])
		}
	}

	if cfg.Mesh.ShowNormals {
		lines := mesh.NormalLineList(meshbuf.NormalLineOptions{Length: cfg.Mesh.NormalLength})
		fmt.Fprintf(out, "Normals:   %d line vertices\n", len(lines))
	}
	return nil
}

func cmdNormals(out io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("normals", flag.ContinueOnError)
	length := fs.Float64("length", 0, "Rescale normals to this length (0 = keep tessellator normals)")
	if err := fs.Parse(reorder(fs, args)); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: nurbsview normals <tess.yaml> [-length L]", errUsage)
	}

	tess, err := tessellation.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := meshbuf.NormalLineOptions{Length: cfg.Mesh.NormalLength}
	if *length > 0 {
		opts = meshbuf.WithLength(*length)
	}
	lines := meshbuf.BuildNormalLineList(tess, opts)

	fmt.Fprintf(out, "Normal lines: %d (%d vertices)\n", len(lines)/2, len(lines))
	for i := 0; i+1 < len(lines); i += 2 {
		fmt.Fprintf(out, "  %v -> %v\n", lines[i], lines[i+1])
	}
	return nil
}

func cmdPick(out io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	dir := fs.String("dir", "0,-1,0", "Ray direction from the world origin")
	move := fs.String("move", "", "Translate the picked curve by x,y,z")
	if err := fs.Parse(reorder(fs, args)); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: nurbsview pick <scene.yaml> -dir x,y,z [-move x,y,z]", errUsage)
	}

	direction, err := parseVec3(*dir)
	if err != nil {
		return err
	}
	var offset math.Vec3
	if *move != "" {
		if offset, err = parseOffset(*move); err != nil {
			return err
		}
	}

	reg, err := loadScene(fs.Arg(0))
	if err != nil {
		return err
	}

	res := picking.NewResolver(cfg.Picking.Threshold, logger.Named(logger.Picking))
	entry, m, ok := reg.Pick(res, picking.PickRay(direction))
	if !ok {
		reg.ClearSelection()
		fmt.Fprintf(out, "No curve within %.3f of ray %v\n", res.Threshold(), direction)
		return nil
	}
	id := entry.Profile.ID
	if err := reg.Select(id); err != nil {
		return err
	}

	strip := meshbuf.BuildLineStrip(m.World.Tessellate(cfg.Picking.CurveTolerance))
	fmt.Fprintf(out, "Picked:    %s (index %d)\n", id, m.Index)
	fmt.Fprintf(out, "Distance:  %.6f\n", m.Distance)
	fmt.Fprintf(out, "Highlight: %d line-strip vertices\n", len(strip))

	if *move != "" {
		placement := math.TransformFromTranslation(offset).Mul(entry.Placement)
		if err := reg.SetPlacement(id, placement); err != nil {
			return err
		}
		fmt.Fprintf(out, "Moved:     %s by %v, centroid now %v\n",
			id, offset, curve.Centroid(entry.World().Tessellate(0)))
	}
	return nil
}

// cmdLoft picks curves in ray order into a loft sequence. A curve already in
// the sequence is not offered again, so repeating a direction moves on to
// the next curve behind it.
func cmdLoft(out io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("loft", flag.ContinueOnError)
	var dirs []math.Vec3
	fs.Func("dir", "Ray direction x,y,z; repeat once per profile", func(s string) error {
		v, err := parseVec3(s)
		if err == nil {
			dirs = append(dirs, v)
		}
		return err
	})
	var dropped []curve.ID
	fs.Func("drop", "Remove curve N from the scene before picking; repeatable", func(s string) error {
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "curve-"), 10, 64)
		if err == nil {
			dropped = append(dropped, curve.ID(n))
		}
		return err
	})
	if err := fs.Parse(reorder(fs, args)); err != nil {
		return err
	}
	if fs.NArg() < 1 || len(dirs) == 0 {
		return fmt.Errorf("%w: nurbsview loft <scene.yaml> -dir x,y,z [-dir x,y,z ...] [-drop N]", errUsage)
	}

	reg, err := loadScene(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, id := range dropped {
		if !reg.Remove(id) {
			return fmt.Errorf("%w: %s", scene.ErrUnknownCurve, id)
		}
	}

	res := picking.NewResolver(cfg.Picking.Threshold, logger.Named(logger.Picking))
	reg.ClearLoftTargets()
	for _, d := range dirs {
		entry, _, ok := reg.Pick(res, picking.PickRay(d), reg.LoftTargets()...)
		if !ok {
			fmt.Fprintf(out, "No curve along %v\n", d)
			continue
		}
		if err := reg.AddLoftTarget(entry.Profile.ID); err != nil {
			return err
		}
		if err := reg.Select(entry.Profile.ID); err != nil {
			return err
		}
	}

	targets := reg.LoftTargets()
	fmt.Fprintf(out, "Loft targets: %d\n", len(targets))
	for i, world := range reg.WorldCurves(targets) {
		strip := meshbuf.BuildLineStrip(world.Tessellate(cfg.Picking.CurveTolerance))
		fmt.Fprintf(out, "  %-10s %3d line-strip vertices\n", targets[i], len(strip))
	}
	if sel := reg.Selected(); len(sel) > 0 {
		fmt.Fprintf(out, "Selected:     %s\n", sel[0])
	}
	return nil
}

func cmdInfo(out io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: nurbsview info <scene.yaml>", errUsage)
	}

	reg, err := loadScene(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scene:  %s\n", args[0])
	fmt.Fprintf(out, "Curves: %d\n", reg.Len())
	for _, c := range reg.Candidates() {
		world := c.Curve.Transformed(c.Placement.Matrix())
		pts := world.Tessellate(0)
		fmt.Fprintf(out, "  %-10s %3d points  centroid=%v\n", c.ID, len(pts), curve.Centroid(pts))
	}
	return nil
}

// cmdInitConfig writes the effective configuration (defaults, file and
// global flags merged) so it can be edited and reused.
func cmdInitConfig(out io.Writer, cfg *config.Config, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func loadScene(path string) (*scene.Registry, error) {
	reg, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Named(logger.Scene).Debug("scene loaded",
		zap.String("file", path),
		zap.Int("curves", reg.Len()),
	)
	return reg, nil
}

// reorder moves flags ahead of positional arguments so that
// "pick scene.yaml -dir 0,-1,0" parses like "pick -dir 0,-1,0 scene.yaml".
// Boolean flags of fs never consume the following argument.
func reorder(fs *flag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") && len(a) > 1 {
			flags = append(flags, a)
			if !strings.Contains(a, "=") && !isBoolFlag(fs, a) && i+1 < len(args) {
				flags = append(flags, args[i+1])
				i++
			}
			continue
		}
		positional = append(positional, a)
	}
	return append(flags, positional...)
}

func isBoolFlag(fs *flag.FlagSet, arg string) bool {
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// parseVec3 parses a non-zero direction "x,y,z".
func parseVec3(s string) (math.Vec3, error) {
	v, err := parseOffset(s)
	if err != nil {
		return math.Vec3{}, err
	}
	if v.Length() == 0 {
		return math.Vec3{}, fmt.Errorf("vector %q: direction is zero", s)
	}
	return v, nil
}

// parseOffset parses "x,y,z".
func parseOffset(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}
