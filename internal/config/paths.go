package config

import (
	"os"
	"path/filepath"
)

// CatalogPath resolves the catalog database location. An explicit override
// wins, then the configured path, then the XDG default.
func (cfg *Config) CatalogPath(override string) string {
	if override != "" {
		return override
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return defaultCatalogPath()
}

// EnsureCatalogDir ensures the directory for a catalog file exists.
func EnsureCatalogDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
