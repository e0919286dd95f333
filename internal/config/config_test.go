package config

import (
	"path/filepath"
	"testing"
)

func TestDefault_EnvOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/var/lib/ims")

	cfg := Default()
	if cfg.DataDir != "/var/lib/ims" {
		t.Errorf("DataDir = %q, want /var/lib/ims", cfg.DataDir)
	}
	if cfg.DBPath() != filepath.Join("/var/lib/ims", "ims.db") {
		t.Errorf("DBPath() = %q", cfg.DBPath())
	}
}

func TestDefault_FallsBackToHome(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	cfg := Default()
	if cfg.DataDir == "" {
		t.Fatal("DataDir should never be empty")
	}
	if filepath.Base(cfg.DataDir) != ".ims-mcp" {
		t.Errorf("DataDir = %q, want a .ims-mcp directory", cfg.DataDir)
	}
}
