package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/promptai/ims-mcp/internal/config"
)

func TestNew_CreatesServerAndDatabase(t *testing.T) {
	dir := t.TempDir()

	s, cleanup, err := New(config.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer cleanup()

	if s == nil {
		t.Fatal("New() returned nil server")
	}
	if _, err := os.Stat(filepath.Join(dir, "ims.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestNew_CleanupIsSafe(t *testing.T) {
	// Cleanup must be callable even when init fails (unwritable data dir).
	_, cleanup, err := New(config.Config{DataDir: filepath.Join(string(os.PathSeparator), "dev", "null", "nope")})
	if err == nil {
		t.Skip("data dir unexpectedly writable")
	}
	cleanup()
}
