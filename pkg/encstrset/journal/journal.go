// Package journal records a diagnostic trail of set operations.
//
// A journal never holds plaintext. Entries record whether each optional
// argument was present and the cipher length. The hex form of the cipher is
// kept only when a non-empty key took part, since without one the cipher is
// the value itself. A journal exists for after-the-fact inspection; the sets
// are never restored from it.
package journal

import (
	"errors"
	"time"

	"github.com/randalmurphal/encstrset/pkg/encstrset/observability"
)

// Journal appends call entries and reads them back.
// Implementations must be safe for concurrent use.
type Journal interface {
	// Append stores an entry and assigns its Sequence.
	Append(e Entry) error

	// List returns all entries of a store, ordered by sequence.
	// Returns empty slice (not error) if the store has no entries.
	List(storeID string) ([]Entry, error)

	// Count returns the number of entries of a store.
	Count(storeID string) (int, error)

	// DeleteStore removes all entries of a store.
	// Returns nil if the store has no entries.
	DeleteStore(storeID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Entry is one journaled call.
type Entry struct {
	StoreID  string
	Sequence int
	Op       observability.Op
	Handle   uint64
	Dst      uint64
	// HasValue and HasKey record argument presence, never content.
	HasValue  bool
	HasKey    bool
	CipherLen int
	// CipherHex is empty for unkeyed calls.
	CipherHex string
	Outcome   observability.Outcome
	Timestamp time.Time
}

// FromCall builds the entry for a finished call.
func FromCall(call observability.Call) Entry {
	e := Entry{
		StoreID:   call.StoreID,
		Op:        call.Op,
		Handle:    uint64(call.Handle),
		Outcome:   call.Outcome,
		Timestamp: call.Start.UTC(),
	}
	if call.Op == observability.OpCopy {
		e.Dst = uint64(call.Dst)
	}
	if call.HasValueArgs() {
		e.HasValue = call.Value != nil
		e.HasKey = call.Key != nil
		e.CipherLen = len(call.Encoded)
		if call.Key != nil && *call.Key != "" {
			e.CipherHex = observability.HexDump(call.Encoded)
		}
	}
	return e
}

// ErrClosed indicates the journal has been closed.
var ErrClosed = errors.New("journal closed")
