package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/config"
)

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show catalog statistics and configuration",
		Long: `Display the active configuration paths and row counts for the
catalog tables.`,
		Example: `  doctrail info`,
		Args:    cobra.NoArgs,
		RunE:    runInfo,
	}
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.Count(cmd.Context())
	if err != nil {
		return err
	}

	configPath, err := config.FilePath()
	if err != nil {
		configPath = "(unresolved)"
	}

	p.PrintHeader("doctrail")
	p.PrintListItem("Config", p.FormatPath(configPath))
	p.PrintListItem("Catalog", p.FormatPath(cfg.CatalogPath(dbPath)))
	p.PrintListItem("Docs root", p.FormatPath(cfg.DocsRoot))
	p.PrintListItem("Include scopes", strings.Join(cfg.IncludeScopes, ", "))
	if len(cfg.ExcludeScopes) > 0 {
		p.PrintListItem("Exclude scopes", strings.Join(cfg.ExcludeScopes, ", "))
	}
	p.PrintListItem("Files", fmt.Sprintf("%d", counts.Files))
	p.PrintListItem("Sections", fmt.Sprintf("%d", counts.Sections))
	p.PrintListItem("Symbols", fmt.Sprintf("%d", counts.Symbols))
	p.PrintListItem("Assets", fmt.Sprintf("%d", counts.Assets))
	return nil
}
