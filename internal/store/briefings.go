package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "전체"

type Briefing struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	URL       string    `json:"url"`
	PDFURL    string    `json:"pdfUrl,omitempty"`
	Content   string    `json:"content,omitempty"`
	Analysis  string    `json:"aiAnalysis,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	CrawledAt time.Time `json:"crawledAt"`
}

func (d *DB) Migrate(ctx context.Context) error {
	db := d.conn()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS briefings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  source TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL UNIQUE,
  pdf_url TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  ai_analysis TEXT,
  created_at TEXT NOT NULL,
  crawled_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS recruitments (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  year INTEGER NOT NULL,
  position TEXT NOT NULL,
  department TEXT NOT NULL,
  requirements TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '',
  hired_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	// ---- Schema v1: indexes ----

	if _, err := tx.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_briefings_crawled_at
ON briefings(crawled_at DESC);
`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
CREATE INDEX IF NOT EXISTS idx_recruitments_year
ON recruitments(year DESC);
`); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveBriefing upserts by the unique url. A re-crawl of a known URL keeps the
// row id and created_at and refreshes everything else including crawled_at.
func (d *DB) SaveBriefing(ctx context.Context, b Briefing) error {
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.CrawledAt.IsZero() {
		b.CrawledAt = now
	}

	_, err := d.conn().ExecContext(ctx, `
INSERT INTO briefings(title, source, category, url, pdf_url, content, ai_analysis, created_at, crawled_at)
VALUES(?,?,?,?,?,?,?,?,?)
ON CONFLICT(url) DO UPDATE SET
  title = excluded.title,
  source = excluded.source,
  category = excluded.category,
  pdf_url = excluded.pdf_url,
  content = excluded.content,
  crawled_at = excluded.crawled_at;`,
		b.Title,
		b.Source,
		b.Category,
		b.URL,
		b.PDFURL,
		b.Content,
		nullable(b.Analysis),
		b.CreatedAt.Format(time.RFC3339),
		b.CrawledAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save briefing: %w", err)
	}
	return nil
}

// ListBriefings returns briefings newest-crawled-first. CategoryAll disables
// the category filter.
func (d *DB) ListBriefings(ctx context.Context, category string, limit int) ([]Briefing, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
SELECT id, title, source, category, url, pdf_url, content, ai_analysis, created_at, crawled_at
FROM briefings
ORDER BY crawled_at DESC
LIMIT ?;`
	args := []any{limit}

	if category != "" && category != CategoryAll {
		query = `
SELECT id, title, source, category, url, pdf_url, content, ai_analysis, created_at, crawled_at
FROM briefings
WHERE category = ?
ORDER BY crawled_at DESC
LIMIT ?;`
		args = []any{category, limit}
	}

	rows, err := d.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Briefing
	for rows.Next() {
		var b Briefing
		var analysis sql.NullString
		var createdStr, crawledStr string
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Source,
			&b.Category,
			&b.URL,
			&b.PDFURL,
			&b.Content,
			&analysis,
			&createdStr,
			&crawledStr,
		); err != nil {
			return nil, err
		}
		b.Analysis = analysis.String
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		b.CrawledAt, _ = time.Parse(time.RFC3339, crawledStr)
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetBriefing looks one row up by id. sql.ErrNoRows when absent.
func (d *DB) GetBriefing(ctx context.Context, id int64) (Briefing, error) {
	var b Briefing
	var analysis sql.NullString
	var createdStr, crawledStr string
	err := d.conn().QueryRowContext(ctx, `
SELECT id, title, source, category, url, pdf_url, content, ai_analysis, created_at, crawled_at
FROM briefings
WHERE id = ?;`, id).Scan(
		&b.ID,
		&b.Title,
		&b.Source,
		&b.Category,
		&b.URL,
		&b.PDFURL,
		&b.Content,
		&analysis,
		&createdStr,
		&crawledStr,
	)
	if err != nil {
		return Briefing{}, err
	}
	b.Analysis = analysis.String
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	b.CrawledAt, _ = time.Parse(time.RFC3339, crawledStr)
	return b, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
