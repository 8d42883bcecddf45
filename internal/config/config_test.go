package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Picking.Threshold != 0.5 {
		t.Errorf("expected threshold 0.5, got %f", cfg.Picking.Threshold)
	}
	if cfg.Picking.CurveTolerance != 1e-4 {
		t.Errorf("expected curve tolerance 1e-4, got %g", cfg.Picking.CurveTolerance)
	}
	if cfg.Mesh.NormalLength != nil {
		t.Errorf("expected unset normal length, got %v", *cfg.Mesh.NormalLength)
	}
	if cfg.Mesh.ShowNormals {
		t.Error("expected show_normals to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
picking:
  threshold: 0.25
  curve_tolerance: 0.001

mesh:
  normal_length: 0.1
  show_normals: true

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Picking.Threshold != 0.25 {
		t.Errorf("expected threshold 0.25, got %f", cfg.Picking.Threshold)
	}
	if cfg.Picking.CurveTolerance != 0.001 {
		t.Errorf("expected curve tolerance 0.001, got %g", cfg.Picking.CurveTolerance)
	}
	if cfg.Mesh.NormalLength == nil || *cfg.Mesh.NormalLength != 0.1 {
		t.Errorf("expected normal length 0.1, got %v", cfg.Mesh.NormalLength)
	}
	if !cfg.Mesh.ShowNormals {
		t.Error("expected show_normals to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
picking:
  threshold: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero threshold", func(c *Config) { c.Picking.Threshold = 0 }, "picking.threshold"},
		{"zero tolerance", func(c *Config) { c.Picking.CurveTolerance = 0 }, "picking.curve_tolerance"},
		{"negative normal length", func(c *Config) { c.Mesh.NormalLength = &negative }, "mesh.normal_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("picking:\n  threshold: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "threshold flag",
			setup: func() { *flagThreshold = 0.75 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Picking.Threshold != 0.75 {
					t.Errorf("expected threshold 0.75, got %f", cfg.Picking.Threshold)
				}
			},
			teardown: func() { *flagThreshold = 0 },
		},
		{
			name:  "normal length flag",
			setup: func() { *flagNormalLength = 0.2 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Mesh.NormalLength == nil || *cfg.Mesh.NormalLength != 0.2 {
					t.Errorf("expected normal length 0.2, got %v", cfg.Mesh.NormalLength)
				}
				if !cfg.Mesh.ShowNormals {
					t.Error("expected show_normals to be enabled with normal-length flag")
				}
			},
			teardown: func() { *flagNormalLength = 0 },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
picking:
  threshold: 0.3
  curve_tolerance: 0.01
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagThreshold = 0.9
	defer func() {
		*flagConfig = ""
		*flagThreshold = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Threshold should be from flag, not file
	if cfg.Picking.Threshold != float32(0.9) {
		t.Errorf("expected threshold 0.9 from flag, got %f", cfg.Picking.Threshold)
	}

	// Tolerance should be from file since no flag override
	if cfg.Picking.CurveTolerance != 0.01 {
		t.Errorf("expected tolerance 0.01 from file, got %g", cfg.Picking.CurveTolerance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("picking:\n  threshold: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative threshold")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Picking.Threshold = 0.125

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), fileHeader) {
		t.Errorf("saved config missing header:\n%s", data)
	}
	if strings.Contains(string(data), "normal_length") {
		t.Errorf("unset normal_length should be omitted:\n%s", data)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Picking.Threshold != 0.125 {
		t.Errorf("expected saved threshold 0.125, got %f", loaded.Picking.Threshold)
	}
	if loaded.Mesh.NormalLength != nil {
		t.Errorf("expected normal length to stay unset, got %v", *loaded.Mesh.NormalLength)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Picking.Threshold = 0

	if err := cfg.SaveTo(path); err == nil {
		t.Fatal("expected SaveTo to reject a zero threshold")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("invalid config should not be written, stat err = %v", err)
	}
}

func TestSaveUsesDefaultPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", tmpDir)

	length := 0.25
	cfg := Default()
	cfg.Mesh.NormalLength = &length
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, DefaultPath()); err != nil {
		t.Fatalf("loading %s: %v", DefaultPath(), err)
	}
	if loaded.Mesh.NormalLength == nil || *loaded.Mesh.NormalLength != 0.25 {
		t.Errorf("expected normal length 0.25, got %v", loaded.Mesh.NormalLength)
	}
}
