package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagThreshold    = flag.Float64("threshold", 0, "Curve pick distance threshold")
	flagNormalLength = flag.Float64("normal-length", 0, "Rescale visualized normals to this length")
	flagLogFile      = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagThreshold > 0 {
		cfg.Picking.Threshold = float32(*flagThreshold)
	}
	if *flagNormalLength > 0 {
		l := *flagNormalLength
		cfg.Mesh.NormalLength = &l
		cfg.Mesh.ShowNormals = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
