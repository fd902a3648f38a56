// Package observability provides the diagnostic channel for encstrset:
// structured call tracing, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib), with hex dumps of ciphers
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Every feature consumes a finished Call record. Nothing here can change the
// result of the operation that produced it. All features are opt-in and have
// no-op implementations when disabled.
package observability

import (
	"time"

	"github.com/randalmurphal/encstrset/pkg/encstrset/registry"
)

// Op names a set operation.
type Op string

// Operations reported on the diagnostic channel.
const (
	OpNew    Op = "new"
	OpDelete Op = "delete"
	OpSize   Op = "size"
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpTest   Op = "test"
	OpClear  Op = "clear"
	OpCopy   Op = "copy"
)

// Outcome describes how a call ended.
type Outcome string

// Call outcomes.
const (
	OutcomeCreated        Outcome = "created"
	OutcomeDeleted        Outcome = "deleted"
	OutcomeCounted        Outcome = "counted"
	OutcomeInserted       Outcome = "inserted"
	OutcomeAlreadyPresent Outcome = "already present"
	OutcomeRemoved        Outcome = "removed"
	OutcomePresent        Outcome = "present"
	OutcomeNotPresent     Outcome = "not present"
	OutcomeCleared        Outcome = "cleared"
	OutcomeCopied         Outcome = "copied"
	OutcomeNoSuchSet      Outcome = "does not exist"
	OutcomeInvalidValue   Outcome = "invalid value"
)

// CopiedCipher is one element visited by a copy.
type CopiedCipher struct {
	Cipher   []byte
	Inserted bool // false when the destination already held it
}

// Call is the immutable record of one finished operation.
type Call struct {
	StoreID string
	Op      Op
	Handle  registry.Handle
	// Dst is the destination handle of a copy.
	Dst registry.Handle

	// Value and Key are the caller's arguments; nil means absent.
	Value *string
	Key   *string
	// Encoded is the cipher the operation looked up or stored.
	Encoded []byte

	Outcome Outcome
	// Size is the element count reported by a size call.
	Size int
	// Elements lists what a copy visited, in visiting order.
	Elements []CopiedCipher

	Start    time.Time
	Duration time.Duration
}

// HasValueArgs reports whether the op takes value and key arguments.
func (c Call) HasValueArgs() bool {
	switch c.Op {
	case OpInsert, OpRemove, OpTest:
		return true
	}
	return false
}

// Copied returns how many elements a copy inserted and how many it skipped.
func (c Call) Copied() (inserted, skipped int) {
	for _, e := range c.Elements {
		if e.Inserted {
			inserted++
		} else {
			skipped++
		}
	}
	return inserted, skipped
}
