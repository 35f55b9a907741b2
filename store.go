package portfolio

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/hsdev/portfolio/content"
)

// Store wraps a SQLite database of posts and projects.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets readers proceed during an import; busy_timeout makes writers
	// wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS records (
    slug TEXT PRIMARY KEY,
    kind TEXT NOT NULL DEFAULT 'post',
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT ',',
    excerpt TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    generated_excerpt TEXT NOT NULL DEFAULT '',
    html TEXT NOT NULL DEFAULT '',
    programming TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS records_kind_date ON records (kind, date DESC);
`)
	return err
}

const recordColumns = `slug, kind, title, date, tags, excerpt, description, generated_excerpt, html, programming`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (content.Record, error) {
	var r content.Record
	var kind, tags string
	if err := row.Scan(&r.Slug, &kind, &r.Title, &r.Date, &tags, &r.Excerpt, &r.Description, &r.GeneratedExcerpt, &r.HTML, &r.Programming); err != nil {
		return content.Record{}, err
	}
	r.Kind = content.ParseKind(kind)
	r.Tags = ParseTags(tags)
	return r, nil
}

// ListRecords returns every record ordered by date descending, then slug.
func (s *Store) ListRecords() ([]content.Record, error) {
	rows, err := s.db.Query(`SELECT ` + recordColumns + ` FROM records ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []content.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// ListTags returns a sorted, deduplicated slice of all post tags.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM records WHERE kind = ?`, string(content.KindPost))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range ParseTags(tags) {
			set[strings.ToLower(t)] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// GetRecord returns a single record by slug, or sql.ErrNoRows.
func (s *Store) GetRecord(slug string) (content.Record, error) {
	return scanRecord(s.db.QueryRow(`SELECT `+recordColumns+` FROM records WHERE slug = ?`, slug))
}

// SaveRecord upserts a record. Tags are normalized to lowercase.
func (s *Store) SaveRecord(r content.Record) error {
	return saveRecord(s.db, r)
}

// ReplaceAll swaps the whole record set in one transaction.
func (s *Store) ReplaceAll(recs []content.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	for _, r := range recs {
		if err := saveRecord(tx, r); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func saveRecord(db execer, r content.Record) error {
	normalized := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			normalized = append(normalized, t)
		}
	}
	tagString := "," + strings.Join(normalized, ",") + ","
	kind := r.Kind
	if kind == "" {
		kind = content.KindPost
	}
	_, err := db.Exec(`INSERT OR REPLACE INTO records (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Slug, string(kind), r.Title, r.Date, tagString, r.Excerpt, r.Description, r.GeneratedExcerpt, r.HTML, r.Programming)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
