// Package store persists solve sessions: the puzzle, the terminal
// status, and the full move log. Two backends share one interface, an
// in-memory store for tests and tooling and a SQLite store for
// durable history.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pflow-xyz/go-sudoku/movelog"
)

// ErrNotFound is returned when a session ID does not exist.
var ErrNotFound = errors.New("store: session not found")

// Record is a persisted solve session.
type Record struct {
	ID        string
	Puzzle    string // the 81-digit givens line
	Status    string // terminal status name
	CreatedAt time.Time
	Moves     []movelog.Entry
}

// Meta is a lightweight listing entry.
type Meta struct {
	ID        string
	Puzzle    string
	Status    string
	MoveCount int
	CreatedAt time.Time
}

// Store persists and retrieves solve sessions.
type Store interface {
	// Save persists a record, assigning a fresh ID when rec.ID is
	// empty, and returns the ID.
	Save(ctx context.Context, rec *Record) (string, error)

	// Load retrieves a session with its full move log.
	Load(ctx context.Context, id string) (*Record, error)

	// List returns session metadata, newest first.
	List(ctx context.Context) ([]Meta, error)

	// Close releases backend resources.
	Close() error
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Save persists a record in memory.
func (s *MemoryStore) Save(ctx context.Context, rec *Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *rec
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.Moves = append([]movelog.Entry(nil), rec.Moves...)
	s.records[stored.ID] = &stored
	return stored.ID, nil
}

// Load retrieves a record by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	out.Moves = append([]movelog.Entry(nil), rec.Moves...)
	return &out, nil
}

// List returns session metadata, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Meta, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, Meta{
			ID:        rec.ID,
			Puzzle:    rec.Puzzle,
			Status:    rec.Status,
			MoveCount: len(rec.Moves),
			CreatedAt: rec.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure both backends implement Store.
var _ Store = (*MemoryStore)(nil)
