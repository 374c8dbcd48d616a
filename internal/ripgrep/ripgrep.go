// Package ripgrep wraps the external line-oriented pattern search tool as
// an injected collaborator. The core depends only on the Searcher
// interface; a missing binary is reported as ErrUnavailable so callers can
// degrade to an empty source instead of failing.
package ripgrep

import (
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnavailable signals that the search binary is not installed.
var ErrUnavailable = errors.New("ripgrep: rg not found in PATH")

// Hit is one matched line in path:line:text form.
type Hit struct {
	Path string
	Line int
	Text string
}

// Options bounds a single invocation.
type Options struct {
	ContextLines   int
	MaxHitsPerFile int
}

// Searcher runs one blocking pattern search over a directory.
type Searcher interface {
	Search(ctx context.Context, pattern, dir string, opts Options) ([]Hit, error)
}

// Tool shells out to rg.
type Tool struct {
	binary string
}

func NewTool() *Tool {
	return &Tool{binary: "rg"}
}

// Search invokes rg once. No timeout is imposed; callers needing bounded
// latency must cancel the context themselves.
func (t *Tool) Search(ctx context.Context, pattern, dir string, opts Options) ([]Hit, error) {
	if _, err := exec.LookPath(t.binary); err != nil {
		return nil, ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, t.binary,
		"-n", "--no-heading",
		"-m", strconv.Itoa(opts.MaxHitsPerFile),
		"-C", strconv.Itoa(opts.ContextLines),
		pattern, dir,
	)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// exit 1 means no matches; anything else degrades to empty
			// for this scope
			if exitErr.ExitCode() == 1 {
				return nil, nil
			}
			return nil, nil
		}
		return nil, err
	}

	return ParseOutput(string(out)), nil
}

var hitLineRe = regexp.MustCompile(`^(.*?):(\d+):(.*)$`)

// ParseOutput parses rg's --no-heading output, ignoring blank lines and the
// "--" context-separator lines. Context lines use dash separators and fall
// through the match.
func ParseOutput(out string) []Hit {
	var hits []Hit
	for _, line := range strings.Split(out, "\n") {
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		m := hitLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lineNo, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		hits = append(hits, Hit{Path: m[1], Line: lineNo, Text: m[3]})
	}
	return hits
}
