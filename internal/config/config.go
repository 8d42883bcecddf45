// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Picking PickingConfig `yaml:"picking"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// PickingConfig holds curve picking settings.
type PickingConfig struct {
	Threshold      float32 `yaml:"threshold"`       // Max ray-to-curve distance for a pick
	CurveTolerance float32 `yaml:"curve_tolerance"` // Tessellation tolerance for highlighted curves
}

// MeshConfig holds surface mesh building settings.
type MeshConfig struct {
	// NormalLength rescales visualized normals; unset keeps tessellator normals.
	NormalLength *float64 `yaml:"normal_length,omitempty"`
	ShowNormals  bool     `yaml:"show_normals"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Picking: PickingConfig{
			Threshold:      0.5,
			CurveTolerance: 1e-4,
		},
		Mesh: MeshConfig{
			ShowNormals: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
