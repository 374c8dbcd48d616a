package catalog

const Schema = `
CREATE TABLE IF NOT EXISTS files (
	path TEXT PRIMARY KEY,
	mtime INTEGER NOT NULL,
	sha1 TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	path TEXT NOT NULL,
	h1 TEXT,
	h2 TEXT,
	h3 TEXT,
	start_line INTEGER NOT NULL,
	end_line INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS symbols (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	kind TEXT NOT NULL,
	path TEXT NOT NULL,
	section_id INTEGER,
	line INTEGER NOT NULL,
	tags TEXT NOT NULL DEFAULT '',
	summary TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS assets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	abs_path TEXT NOT NULL,
	owner_path TEXT NOT NULL,
	section_id INTEGER,
	alt TEXT NOT NULL DEFAULT '',
	rel_path TEXT NOT NULL,
	line INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sections_path ON sections(path);
CREATE INDEX IF NOT EXISTS idx_symbols_path ON symbols(path);
CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
CREATE INDEX IF NOT EXISTS idx_assets_owner ON assets(owner_path);
CREATE INDEX IF NOT EXISTS idx_assets_section ON assets(section_id);
`

// FulltextSchema is applied separately so a SQLite build without FTS5 still
// yields a working catalog; search then degrades to substring matching.
const FulltextSchema = `
CREATE VIRTUAL TABLE IF NOT EXISTS symbols_fts
USING fts5(name, summary, tags, content='symbols', content_rowid='id');
`
