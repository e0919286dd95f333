// Package config resolves runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"
)

// EnvDataDir overrides where the database lives.
const EnvDataDir = "IMS_DATA_DIR"

// Config holds server configuration.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	DataDir string
}

// Default returns the configuration from the environment, falling back to
// ~/.ims-mcp for the data directory.
func Default() Config {
	dir := os.Getenv(EnvDataDir)
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".ims-mcp")
	}
	return Config{DataDir: dir}
}

// DBPath is the full path of the SQLite database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "ims.db")
}
