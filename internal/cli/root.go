// Package cli wires the doctrail commands: init, scan, query, info, open,
// mcp, and tui.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/config"
)

var (
	cfg     *config.Config
	dbPath  string
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "doctrail",
	Short: "A docs indexer and retrieval tool for question answering",
	Long: `Doctrail scans a documentation tree into a SQLite catalog of sections,
symbols, and image assets, then answers free-form questions against it by
combining catalog lookups with live pattern search.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. A config
// that exists but cannot be read or parsed aborts here; a missing config
// falls back to defaults inside config.Load.
func Execute(ctx context.Context) error {
	if err := loadConfig(); err != nil {
		return err
	}
	rootCmd.AddCommand(
		newInitCommand(),
		newScanCommand(),
		newQueryCommand(),
		newInfoCommand(),
		newOpenCommand(),
		newMCPCommand(),
		newTuiCommand(),
	)
	return fang.Execute(ctx, rootCmd)
}

func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "database", "d", "", "Catalog path (default: $XDG_DATA_HOME/doctrail/catalog.db)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// openStore opens the configured catalog, creating its directory first.
func openStore(ctx context.Context) (*catalog.Store, error) {
	path := cfg.CatalogPath(dbPath)
	if err := config.EnsureCatalogDir(path); err != nil {
		return nil, err
	}

	store, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("init catalog: %w", err)
	}
	return store, nil
}
