package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/scan"
)

func newScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Index the docs tree into the catalog",
		Long: `Walk the configured docs tree and index changed files.

Files whose modification time and content hash both match the catalog are
skipped. The fulltext index is rebuilt once at the end of the run.`,
		Example: `  doctrail scan
  doctrail scan -d /tmp/catalog.db`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	logger := log.Default()
	if quiet {
		logger = log.New(io.Discard)
	}

	scanner := scan.New(store, cfg, logger)
	summary, err := scanner.Run(cmd.Context())
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Files", "Updated", "Skipped", "Sections", "Symbols", "Assets", "Time"})
	t.AppendRow(table.Row{
		summary.FilesTotal,
		summary.FilesUpdated,
		summary.FilesSkipped,
		summary.Sections,
		summary.Symbols,
		summary.Assets,
		fmt.Sprintf("%dms", summary.TimeMS),
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
