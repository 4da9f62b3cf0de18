// Package store persists named drawings in a SQLite library file.
// Each drawing is stored as one row holding its encoded .draft
// document. The sqlite3 driver is registered by the importing
// binary.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draftfile"
)

// ErrNotFound reports a drawing name with no stored row.
var ErrNotFound = errors.New("drawing not found")

const schema = `
CREATE TABLE IF NOT EXISTS drawings (
    name        TEXT PRIMARY KEY,
    document    TEXT NOT NULL,
    shape_count INTEGER NOT NULL,
    updated_at  TEXT NOT NULL
);
`

// Store is a library of named drawings backed by SQLite.
type Store struct {
	db     *sql.DB
	parser *draftfile.Parser
}

// Open opens (or creates) the library at dbPath and ensures the
// schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	parser, err := draftfile.NewParser()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, parser: parser}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the shapes under name, replacing any existing drawing
// with that name.
func (s *Store) Save(ctx context.Context, name string, shapes []draft.Shape) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("drawing name must not be empty")
	}
	doc, err := draftfile.EncodeString(shapes)
	if err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO drawings (name, document, shape_count, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET
            document = excluded.document,
            shape_count = excluded.shape_count,
            updated_at = excluded.updated_at
    `, name, doc, len(shapes), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save drawing: %w", err)
	}
	return nil
}

// Load returns the shapes stored under name.
func (s *Store) Load(ctx context.Context, name string) ([]draft.Shape, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT document FROM drawings WHERE name = ?
    `, name)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, err
	}

	file, err := s.parser.ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("stored drawing %q: %w", name, err)
	}
	return file.Decode()
}

// Entry describes one stored drawing.
type Entry struct {
	Name       string
	ShapeCount int
	UpdatedAt  time.Time
}

// List returns the stored drawings ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT name, shape_count, updated_at FROM drawings ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated string
		if err := rows.Scan(&e.Name, &e.ShapeCount, &updated); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, updated); err == nil {
			e.UpdatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the drawing stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drawings WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}
