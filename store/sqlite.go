package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pflow-xyz/go-sudoku/movelog"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists sessions in a SQLite database. Use ":memory:"
// as the path for an ephemeral database.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS solves (
	id         TEXT PRIMARY KEY,
	puzzle     TEXT NOT NULL,
	status     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	solve_id TEXT NOT NULL REFERENCES solves(id),
	seq      INTEGER NOT NULL,
	cell     INTEGER NOT NULL,
	kind     INTEGER NOT NULL,
	digit    INTEGER NOT NULL,
	PRIMARY KEY (solve_id, seq)
);
`

// NewSQLiteStore opens (creating if needed) a SQLite-backed store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection: ":memory:" databases are per-connection, and the
	// driver serializes writers anyway
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save persists a record and its moves in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO solves (id, puzzle, status, created_at) VALUES (?, ?, ?, ?)`,
		id, rec.Puzzle, rec.Status, createdAt.UnixNano()); err != nil {
		return "", fmt.Errorf("insert solve: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO moves (solve_id, seq, cell, kind, digit) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare moves: %w", err)
	}
	defer stmt.Close()
	for seq, e := range rec.Moves {
		if _, err := stmt.ExecContext(ctx, id, seq, e.Cell, int(e.Kind), e.Digit); err != nil {
			return "", fmt.Errorf("insert move %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Load retrieves a session and its moves in original order.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Record, error) {
	rec := &Record{ID: id}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT puzzle, status, created_at FROM solves WHERE id = ?`, id).
		Scan(&rec.Puzzle, &rec.Status, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query solve: %w", err)
	}
	rec.CreatedAt = time.Unix(0, createdAt)

	rows, err := s.db.QueryContext(ctx,
		`SELECT cell, kind, digit FROM moves WHERE solve_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cell, kind, digit int
		if err := rows.Scan(&cell, &kind, &digit); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		rec.Moves = append(rec.Moves, movelog.Entry{Cell: cell, Kind: movelog.Kind(kind), Digit: digit})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return rec, nil
}

// List returns session metadata, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Meta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.puzzle, s.status, s.created_at, COUNT(m.seq)
		FROM solves s LEFT JOIN moves m ON m.solve_id = s.id
		GROUP BY s.id ORDER BY s.created_at DESC, s.id`)
	if err != nil {
		return nil, fmt.Errorf("query solves: %w", err)
	}
	defer rows.Close()

	var out []Meta
	for rows.Next() {
		var m Meta
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Puzzle, &m.Status, &createdAt, &m.MoveCount); err != nil {
			return nil, fmt.Errorf("scan solve: %w", err)
		}
		m.CreatedAt = time.Unix(0, createdAt)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solves: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
