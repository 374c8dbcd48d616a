package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

func newOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <asset-path>",
		Short: "Open an image asset with the system viewer",
		Long: `Open an asset path from query output with the platform's default
viewer.

Relative paths resolve against the docs root. Paths that escape the docs
root are rejected.`,
		Example: `  doctrail open images/arch.png
  doctrail open /home/me/docs/images/arch.png`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}
	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	target, err := resolveAssetPath(args[0])
	if err != nil {
		return err
	}
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("asset not found: %s", target)
	}

	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	if _, err := exec.LookPath(opener); err != nil {
		return fmt.Errorf("no system opener available (%s)", opener)
	}

	if !quiet {
		p.PrintListItem("Opening", p.FormatPath(target))
	}
	return exec.CommandContext(cmd.Context(), opener, target).Start()
}

// resolveAssetPath anchors relative paths under the docs root and rejects
// anything that resolves outside of it.
func resolveAssetPath(arg string) (string, error) {
	root, err := filepath.Abs(cfg.DocsRoot)
	if err != nil {
		return "", err
	}

	target := arg
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("asset escapes docs root: %s", arg)
	}
	return target, nil
}
