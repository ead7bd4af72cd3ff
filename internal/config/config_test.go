package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.World.Radius != 50.0 {
		t.Errorf("expected radius 50, got %f", cfg.World.Radius)
	}
	if cfg.World.SubdivisionLevel != 4 {
		t.Errorf("expected subdivision level 4, got %d", cfg.World.SubdivisionLevel)
	}
	if cfg.World.GravityStrength != 9.8 {
		t.Errorf("expected gravity 9.8, got %f", cfg.World.GravityStrength)
	}

	if cfg.Vegetation.GrassSeed != 42 {
		t.Errorf("expected grass seed 42, got %d", cfg.Vegetation.GrassSeed)
	}
	if cfg.Vegetation.TreeSeed != 123 {
		t.Errorf("expected tree seed 123, got %d", cfg.Vegetation.TreeSeed)
	}
	if cfg.Vegetation.TreeCount != 200 {
		t.Errorf("expected tree count 200, got %d", cfg.Vegetation.TreeCount)
	}

	if cfg.Player.MoveSpeed != 5.0 {
		t.Errorf("expected move speed 5, got %f", cfg.Player.MoveSpeed)
	}
	if cfg.Player.RunMultiplier != 2.0 {
		t.Errorf("expected run multiplier 2, got %f", cfg.Player.RunMultiplier)
	}

	if cfg.Camera.ArmLength != 8.0 {
		t.Errorf("expected arm length 8, got %f", cfg.Camera.ArmLength)
	}

	if cfg.Viewer.Enabled {
		t.Error("expected viewer disabled by default")
	}
	if cfg.Viewer.Listen != "127.0.0.1:8080" {
		t.Errorf("expected listen 127.0.0.1:8080, got %s", cfg.Viewer.Listen)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
world:
  radius: 100.0
  subdivision_level: 5
  gravity_strength: 3.7

vegetation:
  grass_density: 0.25
  grass_seed: 7
  tree_count: 50
  tree_seed: 9

road:
  start_angle: 0.5
  end_angle: 2.0
  width: 4.0

player:
  move_speed: 8.0
  run_multiplier: 3.0

viewer:
  enabled: true
  listen: "0.0.0.0:9000"

logging:
  level: "debug"
  log_file: "orbis.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.World.Radius != 100.0 {
		t.Errorf("expected radius 100, got %f", cfg.World.Radius)
	}
	if cfg.World.SubdivisionLevel != 5 {
		t.Errorf("expected subdivision level 5, got %d", cfg.World.SubdivisionLevel)
	}
	if cfg.World.GravityStrength != 3.7 {
		t.Errorf("expected gravity 3.7, got %f", cfg.World.GravityStrength)
	}

	if cfg.Vegetation.GrassDensity != 0.25 {
		t.Errorf("expected grass density 0.25, got %f", cfg.Vegetation.GrassDensity)
	}
	if cfg.Vegetation.GrassSeed != 7 {
		t.Errorf("expected grass seed 7, got %d", cfg.Vegetation.GrassSeed)
	}

	if cfg.Road.Width != 4.0 {
		t.Errorf("expected road width 4, got %f", cfg.Road.Width)
	}

	if cfg.Player.MoveSpeed != 8.0 {
		t.Errorf("expected move speed 8, got %f", cfg.Player.MoveSpeed)
	}

	// Unset fields keep their defaults
	if cfg.Player.Height != 1.0 {
		t.Errorf("expected default height 1, got %f", cfg.Player.Height)
	}
	if cfg.Vegetation.DensityMapWidth != 256 {
		t.Errorf("expected default density map width 256, got %d", cfg.Vegetation.DensityMapWidth)
	}

	if !cfg.Viewer.Enabled {
		t.Error("expected viewer enabled")
	}
	if cfg.Viewer.Listen != "0.0.0.0:9000" {
		t.Errorf("expected listen 0.0.0.0:9000, got %s", cfg.Viewer.Listen)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "orbis.log" {
		t.Errorf("expected log file 'orbis.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
world:
  radius: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
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

func TestApplyFlags(t *testing.T) {
	*flagDebug = true
	*flagRadius = 75
	*flagSubdivision = 2
	*flagListen = "127.0.0.1:7777"
	defer func() {
		*flagDebug = false
		*flagRadius = 0
		*flagSubdivision = -1
		*flagListen = ""
	}()

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.World.Radius != 75 {
		t.Errorf("expected radius 75, got %f", cfg.World.Radius)
	}
	if cfg.World.SubdivisionLevel != 2 {
		t.Errorf("expected subdivision level 2, got %d", cfg.World.SubdivisionLevel)
	}
	if !cfg.Viewer.Enabled {
		t.Error("expected -listen to enable the viewer")
	}
	if cfg.Viewer.Listen != "127.0.0.1:7777" {
		t.Errorf("expected listen 127.0.0.1:7777, got %s", cfg.Viewer.Listen)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.World.Radius = 64

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.World.Radius != 64 {
		t.Errorf("expected saved radius 64, got %f", loaded.World.Radius)
	}
}
