// Package store persists the records index and per-article fetch
// outcomes in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"congrec/internal/model"
)

// Store wraps the pipeline database. records_ix is append-only and
// bulk-loaded once per collector run; article_files records where each
// fetched article landed (or the failure sentinel).
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS records_ix (
	volume int,
	issue int,
	issue_date text,
	section text,
	article_title text,
	article_url text
);
CREATE TABLE IF NOT EXISTS article_files (
	volume int,
	issue int,
	section text,
	article_title text,
	article_url text,
	fpath text
);`

// Open connects to (or creates) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// AppendLocators bulk-loads collector rows in a single transaction,
// preserving their order.
func (s *Store) AppendLocators(ctx context.Context, rows []model.ArticleLocator) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records_ix (volume, issue, issue_date, section, article_title, article_url)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.Volume, row.Issue, row.IssueDate, string(row.Section), row.Title, row.TextURL,
		); err != nil {
			return fmt.Errorf("insert locator %q: %w", row.Title, err)
		}
	}
	return tx.Commit()
}

// Locators returns all index rows in insertion order.
func (s *Store) Locators(ctx context.Context) ([]model.ArticleLocator, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT volume, issue, issue_date, section, article_title, article_url
		 FROM records_ix ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query records_ix: %w", err)
	}
	defer rows.Close()

	var out []model.ArticleLocator
	for rows.Next() {
		var loc model.ArticleLocator
		var section string
		if err := rows.Scan(&loc.Volume, &loc.Issue, &loc.IssueDate, &section, &loc.Title, &loc.TextURL); err != nil {
			return nil, fmt.Errorf("scan locator: %w", err)
		}
		loc.Section = model.Section(section)
		out = append(out, loc)
	}
	return out, rows.Err()
}

// ArticleFile is one fetch outcome: the locator plus where the cleaned
// text was written, or the failure sentinel.
type ArticleFile struct {
	Locator model.ArticleLocator
	Path    string
}

// RecordArticleFile appends one fetch outcome.
func (s *Store) RecordArticleFile(ctx context.Context, loc model.ArticleLocator, fpath string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO article_files (volume, issue, section, article_title, article_url, fpath)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		loc.Volume, loc.Issue, string(loc.Section), loc.Title, loc.TextURL, fpath)
	if err != nil {
		return fmt.Errorf("insert article file %q: %w", loc.Title, err)
	}
	return nil
}

// ArticleFiles returns all fetch outcomes in insertion order.
func (s *Store) ArticleFiles(ctx context.Context) ([]ArticleFile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT volume, issue, section, article_title, article_url, fpath
		 FROM article_files ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query article_files: %w", err)
	}
	defer rows.Close()

	var out []ArticleFile
	for rows.Next() {
		var af ArticleFile
		var section string
		if err := rows.Scan(&af.Locator.Volume, &af.Locator.Issue, &section,
			&af.Locator.Title, &af.Locator.TextURL, &af.Path); err != nil {
			return nil, fmt.Errorf("scan article file: %w", err)
		}
		af.Locator.Section = model.Section(section)
		out = append(out, af)
	}
	return out, rows.Err()
}
