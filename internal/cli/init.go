package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/config"
)

var initDocsRoot string

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config and create the catalog",
		Long: `Write a starter configuration file and create an empty catalog
database.

The config lands in the XDG config directory unless DOCTRAIL_CONFIG points
elsewhere. Pass --docs-root to pre-fill the tree to index.`,
		Example: `  doctrail init
  doctrail init --docs-root ~/notes`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initDocsRoot, "docs-root", "r", "", "Documentation tree to index")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	fresh := config.DefaultConfig()
	if initDocsRoot != "" {
		abs, err := filepath.Abs(initDocsRoot)
		if err != nil {
			return err
		}
		fresh.DocsRoot = abs
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := fresh.SaveTo(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	cfg = fresh
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	if !quiet {
		p.PrintSuccess(fmt.Sprintf("Wrote config %s", p.FormatPath(path)))
		p.PrintSuccess(fmt.Sprintf("Created catalog %s", p.FormatPath(cfg.CatalogPath(dbPath))))
	}
	return nil
}
