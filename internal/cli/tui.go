package cli

import (
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/query"
	"github.com/stormlightlabs/doctrail/internal/ripgrep"
	"github.com/stormlightlabs/doctrail/internal/tui"
)

func newTuiCommand() *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal user interface",
		Long:  `Launch the interactive question-and-evidence browser.`,
		RunE:  runTui,
	}
	return tuiCmd
}

func runTui(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	engine := query.New(store, cfg, ripgrep.NewTool(), nil)
	return tui.Run(engine)
}
