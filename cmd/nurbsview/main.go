// nurbsview builds render buffers from NURBS surface tessellations and
// resolves curve picks against saved scenes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/nurbsview/internal/config"
	"github.com/Faultbox/nurbsview/internal/logger"
)

func main() {
	// Global flags come before the command: nurbsview -debug pick scene.yaml
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command, rest := args[0], args[1:]
	log := logger.Named(logger.CLI)
	log.Debug("running command", zap.String("command", command), zap.Strings("args", rest))

	out := os.Stdout
	switch command {
	case "mesh":
		err = cmdMesh(out, cfg, rest)
	case "normals":
		err = cmdNormals(out, cfg, rest)
	case "pick":
		err = cmdPick(out, cfg, rest)
	case "loft":
		err = cmdLoft(out, cfg, rest)
	case "info":
		err = cmdInfo(out, rest)
	case "init-config":
		err = cmdInitConfig(out, cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nurbsview - NURBS tessellation buffers and curve picking

Usage:
  nurbsview [global flags] <command> [options]

Commands:
  mesh <tess.yaml> [-wireframe]         Build triangle buffers and print a summary
  normals <tess.yaml> [-length L]       Build the normal line list
  pick <scene.yaml> -dir x,y,z          Pick the curve closest to a ray from the origin
       [-move x,y,z]                    and optionally translate it
  loft <scene.yaml> -dir x,y,z ...      Pick profiles in order into a loft sequence
       [-drop N]                        after removing curve N from the scene
  info <scene.yaml>                     List curves in a scene
  init-config [PATH]                    Write the effective config (default: user config dir)

Global flags:
  -config PATH        Config file (default: ./config.yaml or user config dir)
  -debug              Enable debug logging
  -threshold D        Pick distance threshold
  -normal-length L    Rescale visualized normals
  -log-file PATH      Write logs to a rotating file

Examples:
  nurbsview mesh surface.yaml
  nurbsview normals surface.yaml -length 0.1
  nurbsview -threshold 0.25 pick scene.yaml -dir 0,-1,0.2
  nurbsview loft scene.yaml -dir 0,-1,0 -dir 0.5,-1,0
  nurbsview -threshold 0.25 init-config ./config.yaml`)
}
