package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func testDocument(path string) Document {
	return Document{
		Path: path,
		Tags: "guides,api",
		Sections: []Section{
			{Path: path, H1: "Intro", StartLine: 1, EndLine: 10, Summary: "intro text"},
			{Path: path, H1: "Intro", H2: "Usage", StartLine: 5, EndLine: 10, Summary: "usage text"},
		},
		Symbols: []Symbol{
			{Name: "OrderService", Kind: "class", Line: 6},
			{Name: "OrderService", Kind: "class", Line: 6}, // duplicate
			{Name: "render", Kind: "function", Line: 2},
		},
		Assets: []Asset{
			{Alt: "diagram", RelPath: "images/arch.png", Line: 7},
			{Alt: "remote", RelPath: "https://example.com/x.png", Line: 8},
		},
	}
}

func TestReplaceDocument(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	stats, err := store.ReplaceDocument(ctx, testDocument("/docs/guide.md"))
	if err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}

	if stats.Sections != 2 {
		t.Errorf("sections = %d, want 2", stats.Sections)
	}
	if stats.Symbols != 2 {
		t.Errorf("symbols = %d, want 2 (duplicate collapsed)", stats.Symbols)
	}
	if stats.Assets != 1 {
		t.Errorf("assets = %d, want 1 (remote excluded)", stats.Assets)
	}
}

func TestReplaceDocumentSectionAttribution(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/guide.md")); err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}

	sections, err := store.SectionsForPath(ctx, "/docs/guide.md")
	if err != nil {
		t.Fatalf("SectionsForPath failed: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].StartLine != 1 || sections[1].StartLine != 5 {
		t.Errorf("sections not ordered by start line: %+v", sections)
	}

	// line 6 falls in both sections; the innermost (later start) wins
	inner := sections[1]
	hits, err := store.QuerySubstring(ctx, []string{"OrderService"}, 10)
	if err != nil {
		t.Fatalf("QuerySubstring failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].SectionID != inner.ID {
		t.Errorf("symbol section = %d, want inner section %d", hits[0].SectionID, inner.ID)
	}
	if hits[0].Summary != "usage text" {
		t.Errorf("symbol summary = %q, want %q", hits[0].Summary, "usage text")
	}

	assets, err := store.AssetsForSection(ctx, inner.ID)
	if err != nil {
		t.Fatalf("AssetsForSection failed: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	if assets[0].AbsPath != "/docs/images/arch.png" {
		t.Errorf("asset abs path = %q, want /docs/images/arch.png", assets[0].AbsPath)
	}
}

func TestReplaceDocumentIsolation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/a.md")); err != nil {
		t.Fatalf("ReplaceDocument a failed: %v", err)
	}
	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/b.md")); err != nil {
		t.Fatalf("ReplaceDocument b failed: %v", err)
	}

	// replacing a with a smaller document leaves b untouched
	if _, err := store.ReplaceDocument(ctx, Document{
		Path:     "/docs/a.md",
		Sections: []Section{{Path: "/docs/a.md", StartLine: 1, EndLine: 2}},
	}); err != nil {
		t.Fatalf("ReplaceDocument a (second) failed: %v", err)
	}

	aSections, err := store.SectionsForPath(ctx, "/docs/a.md")
	if err != nil {
		t.Fatalf("SectionsForPath a failed: %v", err)
	}
	if len(aSections) != 1 {
		t.Errorf("a sections = %d, want 1", len(aSections))
	}

	bSections, err := store.SectionsForPath(ctx, "/docs/b.md")
	if err != nil {
		t.Fatalf("SectionsForPath b failed: %v", err)
	}
	if len(bSections) != 2 {
		t.Errorf("b sections = %d, want 2", len(bSections))
	}
}

func TestUpsertFile(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	unchanged, err := store.UpsertFile(ctx, "/docs/a.md", 100, "abc")
	if err != nil {
		t.Fatalf("UpsertFile failed: %v", err)
	}
	if unchanged {
		t.Error("first upsert reported unchanged")
	}

	unchanged, err = store.UpsertFile(ctx, "/docs/a.md", 100, "abc")
	if err != nil {
		t.Fatalf("UpsertFile failed: %v", err)
	}
	if !unchanged {
		t.Error("matching upsert not reported unchanged")
	}

	unchanged, err = store.UpsertFile(ctx, "/docs/a.md", 200, "abc")
	if err != nil {
		t.Fatalf("UpsertFile failed: %v", err)
	}
	if unchanged {
		t.Error("mtime change reported unchanged")
	}

	mtime, sha1, ok, err := store.FileRecord(ctx, "/docs/a.md")
	if err != nil || !ok {
		t.Fatalf("FileRecord failed: ok=%v err=%v", ok, err)
	}
	if mtime != 200 || sha1 != "abc" {
		t.Errorf("FileRecord = (%d, %q), want (200, abc)", mtime, sha1)
	}
}

func TestFulltextRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/guide.md")); err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}
	store.RebuildFulltext(ctx)

	hits := store.QueryFulltext(ctx, []string{"OrderService"}, 10)
	if len(hits) != 1 {
		t.Fatalf("QueryFulltext hits = %d, want 1", len(hits))
	}
	if hits[0].Name != "OrderService" || hits[0].Kind != "class" {
		t.Errorf("hit = %+v", hits[0])
	}

	// rebuild after replacing mirrors the new symbol set exactly
	if _, err := store.ReplaceDocument(ctx, Document{
		Path:     "/docs/guide.md",
		Sections: []Section{{Path: "/docs/guide.md", StartLine: 1, EndLine: 2}},
		Symbols:  []Symbol{{Name: "parseConfig", Kind: "call", Line: 1}},
	}); err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}
	store.RebuildFulltext(ctx)

	if hits := store.QueryFulltext(ctx, []string{"OrderService"}, 10); len(hits) != 0 {
		t.Errorf("stale symbol still in shadow index: %v", hits)
	}
	if hits := store.QueryFulltext(ctx, []string{"parseConfig"}, 10); len(hits) != 1 {
		t.Errorf("new symbol missing from shadow index")
	}
}

func TestQuerySubstringTags(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/guide.md")); err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}

	hits, err := store.QuerySubstring(ctx, []string{"guides"}, 10)
	if err != nil {
		t.Fatalf("QuerySubstring failed: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("tag match hits = %d, want 2", len(hits))
	}
}

func TestCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ReplaceDocument(ctx, testDocument("/docs/guide.md")); err != nil {
		t.Fatalf("ReplaceDocument failed: %v", err)
	}
	if _, err := store.UpsertFile(ctx, "/docs/guide.md", 1, "x"); err != nil {
		t.Fatalf("UpsertFile failed: %v", err)
	}

	counts, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	want := Counts{Files: 1, Sections: 2, Symbols: 2, Assets: 1}
	if counts != want {
		t.Errorf("Count = %+v, want %+v", counts, want)
	}
}
