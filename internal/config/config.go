package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"github.com/stormlightlabs/doctrail/internal/xdg"
)

// Config represents the application configuration.
type Config struct {
	DocsRoot       string   `toml:"docs_root"`       // Root of the documentation tree
	IncludeScopes  []string `toml:"include_scopes"`  // Relative paths scanned under the root
	ExcludeScopes  []string `toml:"exclude_scopes"`  // Relative path prefixes skipped everywhere
	TextExtensions []string `toml:"text_extensions"` // Lowercase extensions with leading dot
	IgnoreGlobs    []string `toml:"ignore_globs"`    // Glob patterns matched against relative paths

	PatternSearch PatternSearchConfig `toml:"pattern_search"`
	Search        SearchConfig        `toml:"search"`
	Database      DatabaseConfig      `toml:"database"`

	ignoreMatchers []glob.Glob
}

// PatternSearchConfig bounds the external ripgrep invocations.
type PatternSearchConfig struct {
	ContextLines   int `toml:"context_lines"`     // Context lines requested per hit
	MaxHitsPerFile int `toml:"max_hits_per_file"` // Per-file hit ceiling
	MaxFiles       int `toml:"max_files"`         // Ceiling on newly discovered files
}

// SearchConfig holds query-related settings.
type SearchConfig struct {
	DefaultLimit int `toml:"default_limit"` // Default number of candidates returned
}

// DatabaseConfig holds catalog database settings.
type DatabaseConfig struct {
	Path string `toml:"path"` // Catalog path, empty means the XDG default
}

// Load reads the configuration from the XDG config path or uses defaults.
func Load() (*Config, error) {
	configPath, err := FilePath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from an explicit path. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the XDG config path.
func (cfg *Config) Save() error {
	configPath, err := FilePath()
	if err != nil {
		return err
	}
	return cfg.SaveTo(configPath)
}

// SaveTo writes the configuration to an explicit path.
func (cfg *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// FilePath returns the config file location, honoring DOCTRAIL_CONFIG.
func FilePath() (string, error) {
	if path := os.Getenv("DOCTRAIL_CONFIG"); path != "" {
		return path, nil
	}

	configDir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// ExcludedRel reports whether a root-relative path falls under any exclude
// scope prefix.
func (cfg *Config) ExcludedRel(rel string) bool {
	for _, ex := range cfg.ExcludeScopes {
		if rel == ex || strings.HasPrefix(rel, ex+"/") {
			return true
		}
	}
	return false
}

// ExtAllowed reports whether the path carries an allowed text extension.
func (cfg *Config) ExtAllowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range cfg.TextExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IgnoredRel reports whether a root-relative path matches any ignore glob.
// Malformed patterns are skipped.
func (cfg *Config) IgnoredRel(rel string) bool {
	if cfg.ignoreMatchers == nil {
		cfg.ignoreMatchers = make([]glob.Glob, 0, len(cfg.IgnoreGlobs))
		for _, pattern := range cfg.IgnoreGlobs {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				continue
			}
			cfg.ignoreMatchers = append(cfg.ignoreMatchers, g)
		}
	}
	for _, g := range cfg.ignoreMatchers {
		if g.Match(rel) {
			return true
		}
	}
	return false
}
