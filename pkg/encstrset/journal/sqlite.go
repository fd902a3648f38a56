package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/randalmurphal/encstrset/pkg/encstrset/observability"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteJournal writes entries to SQLite.
// It is suitable for single-process use.
type SQLiteJournal struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteJournal opens (creating if needed) a journal database.
// The path should be a file path (e.g., "./encstrset.db") or ":memory:" for testing.
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS calls (
			store_id TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			op TEXT NOT NULL,
			handle INTEGER NOT NULL,
			dst INTEGER NOT NULL,
			has_value INTEGER NOT NULL,
			has_key INTEGER NOT NULL,
			cipher_len INTEGER NOT NULL,
			cipher_hex TEXT NOT NULL,
			outcome TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			PRIMARY KEY (store_id, sequence)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// Append implements Journal.
func (s *SQLiteJournal) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	// Sequence is max + 1 for this store
	_, err := s.db.Exec(`
		INSERT INTO calls (store_id, sequence, op, handle, dst, has_value, has_key, cipher_len, cipher_hex, outcome, timestamp)
		VALUES (
			?,
			COALESCE((SELECT MAX(sequence) FROM calls WHERE store_id = ?), 0) + 1,
			?, ?, ?, ?, ?, ?, ?, ?, ?
		)
	`, e.StoreID, e.StoreID, string(e.Op), int64(e.Handle), int64(e.Dst),
		e.HasValue, e.HasKey, e.CipherLen, e.CipherHex, string(e.Outcome),
		e.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// List implements Journal.
func (s *SQLiteJournal) List(storeID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`
		SELECT sequence, op, handle, dst, has_value, has_key, cipher_len, cipher_hex, outcome, timestamp
		FROM calls
		WHERE store_id = ?
		ORDER BY sequence
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e               Entry
			op, outcome, ts string
			handle, dst     int64
		)
		if err := rows.Scan(&e.Sequence, &op, &handle, &dst, &e.HasValue, &e.HasKey, &e.CipherLen, &e.CipherHex, &outcome, &ts); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.StoreID = storeID
		e.Op = observability.Op(op)
		e.Handle = uint64(handle)
		e.Dst = uint64(dst)
		e.Outcome = observability.Outcome(outcome)
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Count implements Journal.
func (s *SQLiteJournal) Count(storeID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrClosed
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM calls WHERE store_id = ?`, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// DeleteStore implements Journal.
func (s *SQLiteJournal) DeleteStore(storeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if _, err := s.db.Exec(`DELETE FROM calls WHERE store_id = ?`, storeID); err != nil {
		return fmt.Errorf("delete store entries: %w", err)
	}
	return nil
}

// Close implements Journal.
func (s *SQLiteJournal) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
