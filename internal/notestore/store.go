// Package notestore provides the SQLite-backed record store for notes.
package notestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// AUTOINCREMENT keeps the id sequence monotonic: once a note is deleted its
// id is never handed out again.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notes_created_at ON notes(created_at);
`

// Note is the canonical note record. Timestamps stay in SQLite's native text
// representation ("YYYY-MM-DD HH:MM:SS", UTC) and are never parsed or
// timezone-normalized; every front end serializes them verbatim.
type Note struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DB wraps a sql.DB with note store operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and idempotently applies the
// schema. Safe to call against an existing database file.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("notestore: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notestore: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notestore: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Insert appends a new note with created_at = updated_at = CURRENT_TIMESTAMP
// and returns the assigned id.
func (db *DB) Insert(ctx context.Context, title, content string) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (title, content, created_at, updated_at)
		VALUES (:title, :content, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, sql.Named("title", title), sql.Named("content", content))
	if err != nil {
		return 0, fmt.Errorf("notestore: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("notestore: insert id: %w", err)
	}
	return id, nil
}

// Get returns the note for id, or nil when no such row exists. A missing id
// is not an error.
func (db *DB) Get(ctx context.Context, id int64) (*Note, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		WHERE id = :id
	`, sql.Named("id", id))

	var n Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("notestore: get: %w", err)
	}
	return &n, nil
}

// List returns all notes matching f, most recently created first. The id
// tiebreaker keeps the order deterministic within CURRENT_TIMESTAMP's
// one-second resolution.
func (db *DB) List(ctx context.Context, f Filter) ([]Note, error) {
	where, args := f.Compile().Where()
	query := `SELECT id, title, content, created_at, updated_at FROM notes ` +
		where + ` ORDER BY created_at DESC, id DESC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("notestore: list: %w", err)
	}
	defer rows.Close()

	out := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("notestore: scan: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Update sets title, content and updated_at for the row matching id and
// reports whether a row was affected. created_at is never touched.
func (db *DB) Update(ctx context.Context, id int64, title, content string) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `
		UPDATE notes
		SET title = :title, content = :content, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id
	`, sql.Named("title", title), sql.Named("content", content), sql.Named("id", id))
	if err != nil {
		return false, fmt.Errorf("notestore: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("notestore: update affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes the row matching id and reports whether a row was affected.
func (db *DB) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = :id`, sql.Named("id", id))
	if err != nil {
		return false, fmt.Errorf("notestore: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("notestore: delete affected: %w", err)
	}
	return n > 0, nil
}
