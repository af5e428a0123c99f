// Package store keeps extracted records in a SQLite database, one row per
// (author, surah, ayah). It is an optional sink alongside the JSON and CSV
// files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brogergvhs/tafsird/internal/tafsir"
)

type DB struct {
	db   *sql.DB
	path string
}

func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &DB{db: db, path: path}
	if err := s.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

func (s *DB) Close() error {
	return s.db.Close()
}

func (s *DB) Path() string {
	return s.path
}

func (s *DB) createTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS tafsir (
		author TEXT NOT NULL,
		author_name TEXT NOT NULL,
		surah_number INTEGER NOT NULL,
		surah_name_arabic TEXT NOT NULL,
		surah_name_english TEXT NOT NULL,
		ayah_number INTEGER NOT NULL,
		tafsir_text TEXT NOT NULL,
		url TEXT NOT NULL,
		extraction_timestamp TEXT NOT NULL,
		PRIMARY KEY (author, surah_number, ayah_number)
	);

	CREATE INDEX IF NOT EXISTS idx_tafsir_surah ON tafsir(surah_number, ayah_number);
	`)
	return err
}

func (s *DB) Name() string { return "sqlite" }

// Write replaces every row of (author, surah) with records in one
// transaction.
func (s *DB) Write(ctx context.Context, author string, surah int, records []tafsir.Record) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tafsir WHERE author = ? AND surah_number = ?`, author, surah); err != nil {
		return "", fmt.Errorf("clear %s/%d: %w", author, surah, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO tafsir (
		author, author_name, surah_number, surah_name_arabic, surah_name_english,
		ayah_number, tafsir_text, url, extraction_timestamp
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			author, r.AuthorName, surah, r.SurahNameArabic, r.SurahNameEnglish,
			r.AyahNumber, r.Text, r.URL, r.ExtractedAt,
		); err != nil {
			return "", fmt.Errorf("insert %s %d:%d: %w", author, surah, r.AyahNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return fmt.Sprintf("%s#%s/%d", s.path, author, surah), nil
}

// Records reads back (author, surah) in ayah order.
func (s *DB) Records(ctx context.Context, author string, surah int) ([]tafsir.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT surah_number, surah_name_arabic, surah_name_english, ayah_number,
		author, author_name, tafsir_text, url, extraction_timestamp
	FROM tafsir
	WHERE author = ? AND surah_number = ?
	ORDER BY ayah_number`, author, surah)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []tafsir.Record
	for rows.Next() {
		var r tafsir.Record
		if err := rows.Scan(
			&r.SurahNumber, &r.SurahNameArabic, &r.SurahNameEnglish, &r.AyahNumber,
			&r.Author, &r.AuthorName, &r.Text, &r.URL, &r.ExtractedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Count returns how many ayahs are stored per author.
func (s *DB) Count(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT author, COUNT(*) FROM tafsir GROUP BY author`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := map[string]int{}
	for rows.Next() {
		var author string
		var n int
		if err := rows.Scan(&author, &n); err != nil {
			return nil, err
		}
		out[author] = n
	}

	return out, rows.Err()
}
