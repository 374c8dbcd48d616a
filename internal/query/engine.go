// Package query turns a free-form question into ranked candidates with
// section-scoped evidence. Two sources feed the ranking: the symbol catalog
// (preferred, score hint 50) and raw pattern hits from ripgrep (score hint
// 30). Candidates merge on (path, section, name) with catalog hits winning
// ties because they are inserted first.
package query

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stormlightlabs/doctrail/internal/catalog"
	"github.com/stormlightlabs/doctrail/internal/config"
	"github.com/stormlightlabs/doctrail/internal/docparse"
	"github.com/stormlightlabs/doctrail/internal/ripgrep"
	"github.com/stormlightlabs/doctrail/internal/shared"
)

// Options bounds a single query.
type Options struct {
	TopK       int
	WithAssets bool
}

// SectionTitle is the heading chain a candidate falls under. Empty strings
// mark absent levels.
type SectionTitle struct {
	H1 string `json:"h1,omitempty"`
	H2 string `json:"h2,omitempty"`
	H3 string `json:"h3,omitempty"`
}

// Candidate is one ranked answer location.
type Candidate struct {
	Name      string            `json:"name"`
	Kind      string            `json:"kind"`
	Path      string            `json:"path"`
	Section   SectionTitle      `json:"section"`
	SectionID catalog.SectionID `json:"section_id,omitempty"`
	Summary   string            `json:"summary"`
	ScoreHint int               `json:"score_hint"`
	Source    string            `json:"source"`
}

// Evidence is the full text of a section that produced a candidate.
type Evidence struct {
	Path      string            `json:"path"`
	StartLine int               `json:"start_line"`
	EndLine   int               `json:"end_line"`
	Text      string            `json:"text"`
	SectionID catalog.SectionID `json:"section_id"`
}

// AssetRef points at an image owned by an evidence section.
type AssetRef struct {
	AbsPath string `json:"abs_path"`
	RelPath string `json:"rel_path"`
	Alt     string `json:"alt"`
}

// Meta echoes the query and the scan scope it ran against.
type Meta struct {
	Query         string   `json:"query"`
	Keywords      []string `json:"keywords"`
	DocsRoot      string   `json:"docs_root"`
	IncludeScopes []string `json:"include_scopes"`
	ExcludeScopes []string `json:"exclude_scopes"`
	TimeMS        int64    `json:"time_ms"`
}

// Stats counts what each stage contributed.
type Stats struct {
	RGHits          int `json:"rg_hits"`
	CatalogHits     int `json:"catalog_hits"`
	MergedSections  int `json:"merged_sections"`
	FinalCandidates int `json:"final_candidates"`
}

// Result is the complete answer bundle, shaped for JSON output.
type Result struct {
	Meta       Meta        `json:"meta"`
	Candidates []Candidate `json:"candidates"`
	Evidence   []Evidence  `json:"evidence"`
	Assets     []AssetRef  `json:"assets"`
	Stats      Stats       `json:"stats"`
}

// Engine answers questions against a populated catalog.
type Engine struct {
	store    *catalog.Store
	cfg      *config.Config
	searcher ripgrep.Searcher
	logger   *log.Logger
}

func New(store *catalog.Store, cfg *config.Config, searcher ripgrep.Searcher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{store: store, cfg: cfg, searcher: searcher, logger: logger}
}

// Run executes one query. A missing ripgrep binary or a failed file read
// degrades that source rather than failing the query.
func (e *Engine) Run(ctx context.Context, q string, opts Options) (*Result, error) {
	start := time.Now()

	if opts.TopK <= 0 {
		opts.TopK = e.cfg.Search.DefaultLimit
	}

	root, err := filepath.Abs(e.cfg.DocsRoot)
	if err != nil {
		return nil, err
	}

	keywords := Tokenize(q)
	result := &Result{
		Meta: Meta{
			Query:         q,
			Keywords:      keywords,
			DocsRoot:      root,
			IncludeScopes: e.cfg.IncludeScopes,
			ExcludeScopes: e.cfg.ExcludeScopes,
		},
		Candidates: []Candidate{},
		Evidence:   []Evidence{},
		Assets:     []AssetRef{},
	}

	catalogHits := e.store.QueryFulltext(ctx, keywords, opts.TopK)
	source := "catalog"
	if len(catalogHits) == 0 && len(keywords) > 0 {
		catalogHits, err = e.store.QuerySubstring(ctx, keywords, opts.TopK)
		if err != nil {
			return nil, err
		}
		source = "catalog_like"
	}

	rgHits := e.patternHits(ctx, root, keywords)

	sectionCache := make(map[string][]catalog.Section)
	lineCache := make(map[string][]string)

	var candidates []Candidate
	var evidence []Evidence
	var assets []AssetRef

	appendSection := func(ctx context.Context, path string, sec *catalog.Section) {
		if sec == nil {
			return
		}
		text, ok := e.sectionText(lineCache, path, sec)
		if ok {
			evidence = append(evidence, Evidence{
				Path:      path,
				StartLine: sec.StartLine,
				EndLine:   sec.EndLine,
				Text:      text,
				SectionID: sec.ID,
			})
		}
		if opts.WithAssets {
			rows, err := e.store.AssetsForSection(ctx, sec.ID)
			if err != nil {
				return
			}
			for _, row := range rows {
				assets = append(assets, AssetRef{AbsPath: row.AbsPath, RelPath: row.RelPath, Alt: row.Alt})
			}
		}
	}

	for _, hit := range catalogHits {
		sections := e.sectionsFor(ctx, sectionCache, hit.Path)
		sec := sectionByID(sections, hit.SectionID)
		if sec == nil {
			sec = sectionForLine(sections, hit.Line)
		}

		candidates = append(candidates, Candidate{
			Name:      hit.Name,
			Kind:      hit.Kind,
			Path:      hit.Path,
			Section:   titleOf(sec),
			SectionID: idOf(sec),
			Summary:   hit.Summary,
			ScoreHint: 50,
			Source:    source,
		})
		appendSection(ctx, hit.Path, sec)
	}

	for _, hit := range rgHits {
		sections := e.sectionsFor(ctx, sectionCache, hit.Path)
		sec := sectionForLine(sections, hit.Line)

		candidates = append(candidates, Candidate{
			Name:      shared.Clip(strings.TrimSpace(hit.Text), 80),
			Kind:      "snippet",
			Path:      hit.Path,
			Section:   titleOf(sec),
			SectionID: idOf(sec),
			ScoreHint: 30,
			Source:    "rg",
		})
		appendSection(ctx, hit.Path, sec)
	}

	merged := mergeCandidates(candidates)
	result.Evidence = dedupeEvidence(evidence)
	result.Assets = dedupeAssets(assets)

	final := len(merged)
	if final > opts.TopK {
		final = opts.TopK
		merged = merged[:opts.TopK]
	}
	result.Candidates = merged

	result.Stats = Stats{
		RGHits:          len(rgHits),
		CatalogHits:     len(catalogHits),
		MergedSections:  len(result.Evidence),
		FinalCandidates: final,
	}
	result.Meta.TimeMS = time.Since(start).Milliseconds()
	return result, nil
}

// patternHits fans the keyword pattern out over every include scope and
// filters results back through the scan scope rules. The number of distinct
// files is capped; an uninstalled binary empties the source.
func (e *Engine) patternHits(ctx context.Context, root string, keywords []string) []ripgrep.Hit {
	if len(keywords) == 0 || e.searcher == nil {
		return nil
	}

	quoted := make([]string, 0, 10)
	for _, kw := range keywords {
		if len(quoted) == 10 {
			break
		}
		quoted = append(quoted, regexp.QuoteMeta(kw))
	}
	pattern := strings.Join(quoted, "|")

	opts := ripgrep.Options{
		ContextLines:   e.cfg.PatternSearch.ContextLines,
		MaxHitsPerFile: e.cfg.PatternSearch.MaxHitsPerFile,
	}
	maxFiles := e.cfg.PatternSearch.MaxFiles

	var hits []ripgrep.Hit
	filesSeen := make(map[string]struct{})
	for _, scope := range e.cfg.IncludeScopes {
		raw, err := e.searcher.Search(ctx, pattern, filepath.Join(root, scope), opts)
		if err != nil {
			if errors.Is(err, ripgrep.ErrUnavailable) {
				e.logger.Warn("rg not installed, pattern source disabled")
				return nil
			}
			e.logger.Warn("pattern search failed", "scope", scope, "err", err)
			continue
		}

		for _, hit := range raw {
			rel, err := filepath.Rel(root, hit.Path)
			if err != nil || strings.HasPrefix(rel, "..") {
				continue
			}
			rel = filepath.ToSlash(rel)
			if e.cfg.ExcludedRel(rel) || e.cfg.IgnoredRel(rel) {
				continue
			}
			if !e.cfg.ExtAllowed(hit.Path) {
				continue
			}
			if _, ok := filesSeen[hit.Path]; !ok {
				filesSeen[hit.Path] = struct{}{}
				if len(filesSeen) > maxFiles {
					break
				}
			}
			hits = append(hits, hit)
		}
	}
	return hits
}

func (e *Engine) sectionsFor(ctx context.Context, cache map[string][]catalog.Section, path string) []catalog.Section {
	if secs, ok := cache[path]; ok {
		return secs
	}
	secs, err := e.store.SectionsForPath(ctx, path)
	if err != nil {
		e.logger.Warn("section lookup failed", "path", path, "err", err)
		secs = nil
	}
	cache[path] = secs
	return secs
}

func (e *Engine) sectionText(cache map[string][]string, path string, sec *catalog.Section) (string, bool) {
	lines, ok := cache[path]
	if !ok {
		var err error
		lines, err = docparse.ReadLines(path)
		if err != nil {
			e.logger.Warn("evidence read failed", "path", path, "err", err)
			lines = nil
		}
		cache[path] = lines
	}
	if lines == nil {
		return "", false
	}
	return docparse.SectionText(lines, sec.StartLine, sec.EndLine), true
}

func sectionByID(sections []catalog.Section, id catalog.SectionID) *catalog.Section {
	if id == 0 {
		return nil
	}
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
	}
	return nil
}

func sectionForLine(sections []catalog.Section, line int) *catalog.Section {
	for i := range sections {
		if sections[i].StartLine <= line && line <= sections[i].EndLine {
			return &sections[i]
		}
	}
	return nil
}

func titleOf(sec *catalog.Section) SectionTitle {
	if sec == nil {
		return SectionTitle{}
	}
	return SectionTitle{H1: sec.H1, H2: sec.H2, H3: sec.H3}
}

func idOf(sec *catalog.Section) catalog.SectionID {
	if sec == nil {
		return 0
	}
	return sec.ID
}

type candidateKey struct {
	path      string
	sectionID catalog.SectionID
	name      string
}

// mergeCandidates collapses duplicates on (path, section, name), keeping the
// first occurrence. Catalog candidates precede pattern candidates in the
// input, so the higher-scored form wins.
func mergeCandidates(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	seen := make(map[candidateKey]struct{}, len(candidates))
	for _, c := range candidates {
		key := candidateKey{c.Path, c.SectionID, c.Name}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func dedupeEvidence(evidence []Evidence) []Evidence {
	type key struct {
		path string
		id   catalog.SectionID
	}
	out := make([]Evidence, 0, len(evidence))
	seen := make(map[key]struct{}, len(evidence))
	for _, ev := range evidence {
		k := key{ev.Path, ev.SectionID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, ev)
	}
	return out
}

func dedupeAssets(assets []AssetRef) []AssetRef {
	type key struct {
		abs string
		rel string
	}
	out := make([]AssetRef, 0, len(assets))
	seen := make(map[key]struct{}, len(assets))
	for _, a := range assets {
		k := key{a.AbsPath, a.RelPath}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}
