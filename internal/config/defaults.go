package config

import (
	"path/filepath"

	"github.com/stormlightlabs/doctrail/internal/xdg"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		IncludeScopes:  []string{"."},
		TextExtensions: []string{".md", ".mdx", ".markdown", ".txt", ".ts", ".tsx", ".js", ".h"},
		PatternSearch: PatternSearchConfig{
			ContextLines: 30, MaxHitsPerFile: 20, MaxFiles: 200,
		},
		Search:   SearchConfig{DefaultLimit: 25},
		Database: DatabaseConfig{Path: defaultCatalogPath()},
	}
}

func defaultCatalogPath() string {
	dataDir, err := xdg.DataDir()
	if err != nil {
		return "catalog.db"
	}
	return filepath.Join(dataDir, "catalog.db")
}
