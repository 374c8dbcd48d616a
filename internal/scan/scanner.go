// Package scan walks the docs tree, detects changed files by mtime and
// content hash, and replaces their catalog rows. The fulltext shadow index
// is rebuilt once per run, after all files have been processed.
package scan

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/config"
	"github.com/stormlightlabs/doctrail/internal/docparse"
)

// Summary reports what a single run did.
type Summary struct {
	FilesTotal   int   `json:"files_total"`
	FilesUpdated int   `json:"files_updated"`
	FilesSkipped int   `json:"files_skipped"`
	Sections     int   `json:"sections"`
	Symbols      int   `json:"symbols"`
	Assets       int   `json:"assets"`
	TimeMS       int64 `json:"time_ms"`
}

// Scanner indexes a configured docs tree into a catalog store.
type Scanner struct {
	store  *catalog.Store
	cfg    *config.Config
	logger *log.Logger
}

func New(store *catalog.Store, cfg *config.Config, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{store: store, cfg: cfg, logger: logger}
}

// Run scans every enumerated file, skipping those whose recorded mtime and
// hash both match. Read failures abort the run; a crash between a document
// replace and its file upsert leaves a stale file row, so the next run
// simply reprocesses that path.
func (s *Scanner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	root, err := filepath.Abs(s.cfg.DocsRoot)
	if err != nil {
		return nil, err
	}

	files, err := EnumerateFiles(s.cfg)
	if err != nil {
		return nil, err
	}

	summary := &Summary{FilesTotal: len(files)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		updated, stats, err := s.scanFile(ctx, root, path)
		if err != nil {
			return nil, err
		}
		if !updated {
			summary.FilesSkipped++
			continue
		}

		summary.FilesUpdated++
		summary.Sections += stats.Sections
		summary.Symbols += stats.Symbols
		summary.Assets += stats.Assets
		s.logger.Info("indexed", "path", path, "sections", stats.Sections, "symbols", stats.Symbols)
	}

	s.store.RebuildFulltext(ctx)

	summary.TimeMS = time.Since(start).Milliseconds()
	s.logger.Info("scan complete",
		"total", summary.FilesTotal,
		"updated", summary.FilesUpdated,
		"skipped", summary.FilesSkipped,
		"elapsed", time.Since(start))
	return summary, nil
}

func (s *Scanner) scanFile(ctx context.Context, root, path string) (bool, catalog.ReplaceStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, catalog.ReplaceStats{}, err
	}
	mtime := info.ModTime().UnixNano()

	hash, err := hashFile(path)
	if err != nil {
		return false, catalog.ReplaceStats{}, err
	}

	prevMtime, prevHash, ok, err := s.store.FileRecord(ctx, path)
	if err != nil {
		return false, catalog.ReplaceStats{}, err
	}
	if ok && prevMtime == mtime && prevHash == hash {
		return false, catalog.ReplaceStats{}, nil
	}

	doc, err := s.parseFile(root, path)
	if err != nil {
		return false, catalog.ReplaceStats{}, err
	}

	stats, err := s.store.ReplaceDocument(ctx, doc)
	if err != nil {
		return false, catalog.ReplaceStats{}, err
	}
	if _, err := s.store.UpsertFile(ctx, path, mtime, hash); err != nil {
		return false, catalog.ReplaceStats{}, err
	}
	return true, stats, nil
}

func (s *Scanner) parseFile(root, path string) (catalog.Document, error) {
	lines, err := docparse.ReadLines(path)
	if err != nil {
		return catalog.Document{}, err
	}

	parsed := docparse.ParseSections(path, lines)
	if len(parsed) == 0 {
		parsed = []docparse.Section{docparse.WholeFileSection(path, lines)}
	}

	sections := make([]catalog.Section, 0, len(parsed))
	for _, sec := range parsed {
		sections = append(sections, catalog.Section{
			Path:      sec.Path,
			H1:        sec.H1,
			H2:        sec.H2,
			H3:        sec.H3,
			StartLine: sec.StartLine,
			EndLine:   sec.EndLine,
			Summary:   docparse.ExtractSummary(lines, sec.StartLine, sec.EndLine),
		})
	}

	symbols := make([]catalog.Symbol, 0)
	for _, sym := range docparse.ExtractSymbols(lines) {
		symbols = append(symbols, catalog.Symbol{Name: sym.Name, Kind: sym.Kind, Line: sym.Line})
	}

	assets := make([]catalog.Asset, 0)
	for _, a := range docparse.ExtractAssets(lines) {
		assets = append(assets, catalog.Asset{Alt: a.Alt, RelPath: a.RelPath, Line: a.Line})
	}

	return catalog.Document{
		Path:     path,
		Tags:     fileTags(root, path, lines),
		Sections: sections,
		Symbols:  symbols,
		Assets:   assets,
	}, nil
}

// fileTags derives coarse topic tags from the first three segments of the
// root-relative path, filename included, extended by any tags declared in
// front matter.
func fileTags(root, path string, lines []string) string {
	var tags []string
	if rel, err := filepath.Rel(root, path); err == nil {
		parts := strings.Split(filepath.ToSlash(rel), "/")
		n := len(parts)
		if n > 3 {
			n = 3
		}
		tags = append(tags, parts[:n]...)
	}

	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		seen[t] = struct{}{}
	}
	for _, t := range docparse.ParseFrontMatter(lines).Tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return strings.Join(tags, ",")
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
