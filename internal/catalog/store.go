// Package catalog persists the structured index derived from the document
// tree: one row per seen file for change detection, plus the section,
// symbol, and asset rows produced by each reindex, shadowed by an FTS5
// index over symbol text fields.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SectionID is a typed handle for section rows. Zero means "no section";
// symbol and asset references to sections are weak lookups, never
// ownership.
type SectionID int64

// Section is a stored line range with its inherited heading titles. Summary
// is carried transiently during replacement (it is persisted on symbols,
// not on the section row).
type Section struct {
	ID        SectionID
	Path      string
	H1        string
	H2        string
	H3        string
	StartLine int
	EndLine   int
	Summary   string
}

// Symbol is a named construct slated for insertion.
type Symbol struct {
	Name string
	Kind string
	Line int
}

// Asset is an embedded asset reference slated for insertion. RelPath is the
// raw target as written; remote targets are dropped at insert time.
type Asset struct {
	Alt     string
	RelPath string
	Line    int
}

// Document bundles everything ReplaceDocument inserts for one path.
type Document struct {
	Path     string
	Tags     string
	Sections []Section
	Symbols  []Symbol
	Assets   []Asset
}

// ReplaceStats counts the rows actually inserted by ReplaceDocument.
type ReplaceStats struct {
	Sections int
	Symbols  int
	Assets   int
}

// SymbolHit is one catalog search result.
type SymbolHit struct {
	ID        int64
	Name      string
	Kind      string
	Path      string
	SectionID SectionID
	Line      int
	Summary   string
	Tags      string
}

// AssetRow is a stored asset as returned to queries.
type AssetRow struct {
	AbsPath string
	RelPath string
	Alt     string
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("catalog path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Init applies the schema. The FTS5 shadow table is attempted separately
// and its absence is tolerated.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	_, _ = s.db.ExecContext(ctx, FulltextSchema)
	return nil
}

func (s *Store) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// FileRecord returns the stored change-detection record for a path.
func (s *Store) FileRecord(ctx context.Context, path string) (mtime int64, sha1 string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT mtime, sha1 FROM files WHERE path = ?`, path,
	).Scan(&mtime, &sha1)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, err
	}
	return mtime, sha1, true, nil
}

// UpsertFile records the file's current mtime and hash. It returns true,
// without writing, iff an existing record matches both fields exactly.
func (s *Store) UpsertFile(ctx context.Context, path string, mtime int64, sha1 string) (unchanged bool, err error) {
	prevMTime, prevSHA1, ok, err := s.FileRecord(ctx, path)
	if err != nil {
		return false, err
	}
	if ok && prevMTime == mtime && prevSHA1 == sha1 {
		return true, nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO files(path, mtime, sha1) VALUES (?, ?, ?)`,
		path, mtime, sha1,
	)
	return false, err
}

// ReplaceDocument deletes all section, symbol, and asset rows for the
// document's path and inserts the new sets within one transaction, so the
// store ends up either fully updated or with the prior rows intact.
// Symbols are deduplicated by (name, kind, line); remote asset targets are
// excluded.
func (s *Store) ReplaceDocument(ctx context.Context, doc Document) (ReplaceStats, error) {
	var stats ReplaceStats

	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE path = ?`, doc.Path); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM symbols WHERE path = ?`, doc.Path); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE owner_path = ?`, doc.Path); err != nil {
			return err
		}

		inserted := make([]Section, 0, len(doc.Sections))
		for _, sec := range doc.Sections {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO sections(path, h1, h2, h3, start_line, end_line) VALUES (?, ?, ?, ?, ?, ?)`,
				doc.Path, nullable(sec.H1), nullable(sec.H2), nullable(sec.H3), sec.StartLine, sec.EndLine,
			)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			sec.ID = SectionID(id)
			inserted = append(inserted, sec)
		}
		stats.Sections = len(inserted)

		type symbolKey struct {
			name string
			kind string
			line int
		}
		seen := make(map[symbolKey]struct{}, len(doc.Symbols))
		for _, sym := range doc.Symbols {
			key := symbolKey{sym.Name, sym.Kind, sym.Line}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			sectionID, summary := sectionForLine(inserted, sym.Line)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO symbols(name, kind, path, section_id, line, tags, summary) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				sym.Name, sym.Kind, doc.Path, nullableID(sectionID), sym.Line, doc.Tags, summary,
			); err != nil {
				return err
			}
			stats.Symbols++
		}

		ownerDir := filepath.Dir(doc.Path)
		for _, asset := range doc.Assets {
			if strings.HasPrefix(asset.RelPath, "http://") || strings.HasPrefix(asset.RelPath, "https://") {
				continue
			}
			absPath := filepath.Clean(filepath.Join(ownerDir, asset.RelPath))
			sectionID, _ := sectionForLine(inserted, asset.Line)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO assets(abs_path, owner_path, section_id, alt, rel_path, line) VALUES (?, ?, ?, ?, ?, ?)`,
				absPath, doc.Path, nullableID(sectionID), asset.Alt, asset.RelPath, asset.Line,
			); err != nil {
				return err
			}
			stats.Assets++
		}

		return nil
	})
	if err != nil {
		return ReplaceStats{}, err
	}
	return stats, nil
}

// sectionForLine picks the innermost inserted section containing the line:
// the one starting latest, widest range breaking ties.
func sectionForLine(sections []Section, line int) (SectionID, string) {
	var best *Section
	for i := range sections {
		sec := &sections[i]
		if line < sec.StartLine || line > sec.EndLine {
			continue
		}
		if best == nil || sec.StartLine > best.StartLine ||
			(sec.StartLine == best.StartLine && sec.EndLine > best.EndLine) {
			best = sec
		}
	}
	if best == nil {
		return 0, ""
	}
	return best.ID, best.Summary
}

// RebuildFulltext clears and regenerates the shadow index from the current
// symbol rows. Missing FTS5 support is a silent no-op.
func (s *Store) RebuildFulltext(ctx context.Context) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM symbols_fts`); err != nil {
		return
	}
	_, _ = s.db.ExecContext(ctx,
		`INSERT INTO symbols_fts(rowid, name, summary, tags) SELECT id, name, summary, tags FROM symbols`)
}

// QueryFulltext OR-combines up to the first 10 keywords against the shadow
// index. Any FTS failure yields an empty result, never an error.
func (s *Store) QueryFulltext(ctx context.Context, keywords []string, limit int) []SymbolHit {
	if len(keywords) == 0 {
		return nil
	}
	match := strings.Join(capKeywords(keywords), " OR ")

	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.kind, s.path, s.section_id, s.line, s.summary, s.tags
		 FROM symbols_fts f
		 JOIN symbols s ON s.id = f.rowid
		 WHERE symbols_fts MATCH ?
		 LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	hits, err := scanSymbolHits(rows)
	if err != nil {
		return nil
	}
	return hits
}

// QuerySubstring is the fallback when full-text search is unavailable or
// empty: OR of LIKE matches across name, summary, and tags.
func (s *Store) QuerySubstring(ctx context.Context, keywords []string, limit int) ([]SymbolHit, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	var clauses []string
	var args []any
	for _, kw := range capKeywords(keywords) {
		clauses = append(clauses, "name LIKE ? OR summary LIKE ? OR tags LIKE ?")
		pattern := "%" + kw + "%"
		args = append(args, pattern, pattern, pattern)
	}
	args = append(args, limit)

	query := `SELECT id, name, kind, path, section_id, line, summary, tags FROM symbols WHERE ` +
		strings.Join(clauses, " OR ") + ` LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSymbolHits(rows)
}

func scanSymbolHits(rows *sql.Rows) ([]SymbolHit, error) {
	var hits []SymbolHit
	for rows.Next() {
		var hit SymbolHit
		var sectionID sql.NullInt64
		if err := rows.Scan(&hit.ID, &hit.Name, &hit.Kind, &hit.Path, &sectionID, &hit.Line, &hit.Summary, &hit.Tags); err != nil {
			return nil, err
		}
		if sectionID.Valid {
			hit.SectionID = SectionID(sectionID.Int64)
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// SectionsForPath returns the stored sections for a path ordered by start
// line.
func (s *Store) SectionsForPath(ctx context.Context, path string) ([]Section, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, h1, h2, h3, start_line, end_line FROM sections WHERE path = ? ORDER BY start_line`,
		path,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []Section
	for rows.Next() {
		var sec Section
		var h1, h2, h3 sql.NullString
		if err := rows.Scan(&sec.ID, &h1, &h2, &h3, &sec.StartLine, &sec.EndLine); err != nil {
			return nil, err
		}
		sec.Path = path
		sec.H1, sec.H2, sec.H3 = h1.String, h2.String, h3.String
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// AssetsForSection returns the assets attributed to a section.
func (s *Store) AssetsForSection(ctx context.Context, id SectionID) ([]AssetRow, error) {
	if id == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT abs_path, rel_path, alt FROM assets WHERE section_id = ?`, int64(id),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []AssetRow
	for rows.Next() {
		var a AssetRow
		if err := rows.Scan(&a.AbsPath, &a.RelPath, &a.Alt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Counts reports row totals for the info surfaces.
type Counts struct {
	Files    int
	Sections int
	Symbols  int
	Assets   int
}

func (s *Store) Count(ctx context.Context) (Counts, error) {
	var c Counts
	for _, q := range []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM files`, &c.Files},
		{`SELECT COUNT(*) FROM sections`, &c.Sections},
		{`SELECT COUNT(*) FROM symbols`, &c.Symbols},
		{`SELECT COUNT(*) FROM assets`, &c.Assets},
	} {
		if err := s.db.QueryRowContext(ctx, q.query).Scan(q.dest); err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

func capKeywords(keywords []string) []string {
	if len(keywords) > 10 {
		return keywords[:10]
	}
	return keywords
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableID(id SectionID) any {
	if id == 0 {
		return nil
	}
	return int64(id)
}
