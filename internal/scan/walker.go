package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stormlightlabs/doctrail/internal/config"
)

// EnumerateFiles yields absolute paths of files that exist under an include
// scope, are not under any exclude scope or ignore glob, and carry an
// allowed extension. Scopes that do not exist are silently skipped.
func EnumerateFiles(cfg *config.Config) ([]string, error) {
	if cfg.DocsRoot == "" {
		return nil, errors.New("docs_root is not configured")
	}
	root, err := filepath.Abs(cfg.DocsRoot)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, scope := range cfg.IncludeScopes {
		scopeDir := filepath.Join(root, scope)
		if _, err := os.Stat(scopeDir); err != nil {
			continue
		}

		err := filepath.WalkDir(scopeDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if cfg.ExcludedRel(rel) || cfg.IgnoredRel(rel) {
				return nil
			}
			if !cfg.ExtAllowed(path) {
				return nil
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
