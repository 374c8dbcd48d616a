package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/doctrail/internal/query"
	"github.com/stormlightlabs/doctrail/internal/ripgrep"
	"github.com/stormlightlabs/doctrail/internal/shared"
)

var (
	queryTopK       int
	queryWithAssets bool
	queryFormat     string
	queryRender     bool
)

func newQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <question>",
		Short: "Ask the docs catalog a question",
		Long: `Search the catalog and the raw docs tree for a free-form question.

Candidates come from the symbol catalog and from live pattern search,
merged per section. Evidence carries the full text of each matched
section.`,
		Example: `  doctrail query "how do I place an order"
  doctrail query -k 10 --with-assets "payment flow diagram"
  doctrail query -f table "OrderService"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().IntVarP(&queryTopK, "topk", "k", 0, "Maximum number of candidates (default from config)")
	cmd.Flags().BoolVar(&queryWithAssets, "with-assets", false, "Include images owned by evidence sections")
	cmd.Flags().StringVarP(&queryFormat, "format", "f", "json", "Output format (json, table)")
	cmd.Flags().BoolVar(&queryRender, "render", false, "Render evidence as markdown in the terminal")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	engine := query.New(store, cfg, ripgrep.NewTool(), nil)
	result, err := engine.Run(cmd.Context(), strings.Join(args, " "), query.Options{
		TopK:       queryTopK,
		WithAssets: queryWithAssets,
	})
	if err != nil {
		return err
	}

	if queryRender {
		return renderEvidence(cmd, result)
	}

	switch queryFormat {
	case "table":
		return outputQueryTable(cmd, result)
	default:
		return outputQueryJSON(cmd, result)
	}
}

func outputQueryJSON(cmd *cobra.Command, result *query.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

func outputQueryTable(cmd *cobra.Command, result *query.Result) error {
	if len(result.Candidates) == 0 {
		if !quiet {
			p.PrintError("No candidates found")
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Name", "Kind", "Section", "Summary", "Path", "Score", "Source"})

	for _, c := range result.Candidates {
		summary := shared.TruncateText(shared.FirstLine(c.Summary), 60)
		t.AppendRow(table.Row{c.Name, shared.Capitalize(c.Kind), sectionLabel(c.Section), summary, c.Path, c.ScoreHint, c.Source})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	if !quiet {
		p.PrintListItem("Evidence sections", fmt.Sprintf("%d", result.Stats.MergedSections))
		p.PrintListItem("Elapsed", fmt.Sprintf("%dms", result.Meta.TimeMS))
	}
	return nil
}

func sectionLabel(s query.SectionTitle) string {
	parts := make([]string, 0, 3)
	for _, h := range []string{s.H1, s.H2, s.H3} {
		if h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, " › ")
}

func renderEvidence(cmd *cobra.Command, result *query.Result) error {
	if len(result.Evidence) == 0 {
		if !quiet {
			p.PrintError("No evidence found")
		}
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}

	for _, ev := range result.Evidence {
		p.PrintListItem("Source", fmt.Sprintf("%s:%d-%d", p.FormatPath(ev.Path), ev.StartLine, ev.EndLine))
		out, err := renderer.Render(ev.Text)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), ev.Text)
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}
