package encstrset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/encstrset/pkg/encstrset/encode"
	"github.com/randalmurphal/encstrset/pkg/encstrset/journal"
	"github.com/randalmurphal/encstrset/pkg/encstrset/observability"
	"github.com/randalmurphal/encstrset/pkg/encstrset/registry"
)

// Handle identifies one set of a Store.
type Handle = registry.Handle

// String returns a pointer to s, for passing present values and keys.
func String(s string) *string {
	return &s
}

// Store owns a table of sets addressed by handles.
type Store struct {
	// mu makes each operation one atomic step over the table and the set it
	// touches. sets also locks internally; under mu that lock never contends.
	mu   sync.Mutex
	sets *registry.Registry[*collection]

	id          string
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	journal     journal.Journal
	ownsJournal bool
	// detailed is set when some observer wants per-element copy records.
	detailed bool
}

// New creates a Store with no sets.
func New(opts ...Option) *Store {
	var cfg storeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.storeID == "" {
		cfg.storeID = uuid.New().String()
	}

	s := &Store{
		sets:        registry.New[*collection](),
		id:          cfg.storeID,
		logger:      observability.EnrichLogger(cfg.logger, cfg.storeID),
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
		journal:     cfg.journal,
		ownsJournal: cfg.ownsJournal,
		detailed:    cfg.logger != nil || cfg.metricsEnabled || cfg.tracingEnabled,
	}
	if cfg.metricsEnabled {
		s.metrics = observability.NewMetricsRecorder()
	}
	if cfg.tracingEnabled {
		s.spans = observability.NewSpanManager()
	}
	return s
}

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// Default returns the process-wide Store, creating it on first use.
// It has no observers attached.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = New()
	})
	return defaultStore
}

// ID returns the identifier attached to this Store's diagnostics.
func (s *Store) ID() string {
	return s.id
}

// Close releases a journal the Store opened itself. The sets stay usable.
func (s *Store) Close() error {
	if s.journal == nil || !s.ownsJournal {
		return nil
	}
	return s.journal.Close()
}

// Create allocates an empty set and returns its handle.
func (s *Store) Create() Handle {
	start := time.Now()

	s.mu.Lock()
	h := s.sets.Create(newCollection())
	s.mu.Unlock()

	s.observe(observability.Call{Op: observability.OpNew, Handle: h, Outcome: observability.OutcomeCreated}, start)
	return h
}

// Destroy removes the set. Unknown handles are ignored.
func (s *Store) Destroy(h Handle) {
	start := time.Now()

	s.mu.Lock()
	deleted := s.sets.Delete(h)
	s.mu.Unlock()

	call := observability.Call{Op: observability.OpDelete, Handle: h, Outcome: observability.OutcomeDeleted}
	if !deleted {
		call.Outcome = observability.OutcomeNoSuchSet
	}
	s.observe(call, start)
}

// Size returns the number of elements in the set, or 0 for an unknown handle.
func (s *Store) Size(h Handle) int {
	start := time.Now()

	s.mu.Lock()
	set, ok := s.sets.Get(h)
	n := 0
	if ok {
		n = set.len()
	}
	s.mu.Unlock()

	call := observability.Call{Op: observability.OpSize, Handle: h, Size: n, Outcome: observability.OutcomeCounted}
	if !ok {
		call.Outcome = observability.OutcomeNoSuchSet
	}
	s.observe(call, start)
	return n
}

// Exists reports whether h names a live set.
func (s *Store) Exists(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets.Has(h)
}

// Handles returns the live handles in ascending order.
func (s *Store) Handles() []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets.Handles()
}

// Stats summarises a Store at one instant.
type Stats struct {
	Sets       int    // live sets
	Elements   int    // elements across every live set
	NextHandle Handle // handle the next Create returns
}

// Stats reports how many sets are live, how many elements they hold and
// which handle Create issues next.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Sets: s.sets.Len(), NextHandle: s.sets.Next()}
	for _, set := range s.sets.All() {
		st.Elements += set.len()
	}
	return st
}

// Insert adds the encoding of value under key to the set.
// It returns true only if that cipher was not already present.
func (s *Store) Insert(h Handle, value, key *string) bool {
	return s.apply(observability.OpInsert, h, value, key, (*collection).add,
		observability.OutcomeInserted, observability.OutcomeAlreadyPresent)
}

// Remove deletes the encoding of value under key from the set.
// It returns true only if that cipher was present.
func (s *Store) Remove(h Handle, value, key *string) bool {
	return s.apply(observability.OpRemove, h, value, key, (*collection).remove,
		observability.OutcomeRemoved, observability.OutcomeNotPresent)
}

// Test reports whether the encoding of value under key is in the set.
func (s *Store) Test(h Handle, value, key *string) bool {
	return s.apply(observability.OpTest, h, value, key, (*collection).has,
		observability.OutcomePresent, observability.OutcomeNotPresent)
}

// Clear empties the set. Unknown handles are ignored.
func (s *Store) Clear(h Handle) {
	start := time.Now()

	s.mu.Lock()
	set, ok := s.sets.Get(h)
	if ok {
		set.clear()
	}
	s.mu.Unlock()

	call := observability.Call{Op: observability.OpClear, Handle: h, Outcome: observability.OutcomeCleared}
	if !ok {
		call.Outcome = observability.OutcomeNoSuchSet
	}
	s.observe(call, start)
}

// Copy inserts every element of src into dst. Elements dst already holds are
// left as they are. Nothing happens unless both handles are live.
//
// The copy is a snapshot: later changes to src do not reach dst.
func (s *Store) Copy(src, dst Handle) {
	start := time.Now()
	call := observability.Call{Op: observability.OpCopy, Handle: src, Dst: dst, Outcome: observability.OutcomeNoSuchSet}

	var visit func(string, bool)
	if s.detailed {
		visit = func(cipher string, inserted bool) {
			call.Elements = append(call.Elements, observability.CopiedCipher{Cipher: []byte(cipher), Inserted: inserted})
		}
	}

	s.mu.Lock()
	from, okSrc := s.sets.Get(src)
	to, okDst := s.sets.Get(dst)
	if okSrc && okDst {
		to.merge(from, visit)
		call.Outcome = observability.OutcomeCopied
	}
	s.mu.Unlock()

	s.observe(call, start)
}

// apply validates the value, encodes it, and runs fn against the set named
// by h. A missing value or unknown handle yields false without calling fn.
func (s *Store) apply(
	op observability.Op,
	h Handle,
	value, key *string,
	fn func(*collection, string) bool,
	yes, no observability.Outcome,
) bool {
	start := time.Now()
	call := observability.Call{Op: op, Handle: h, Value: value, Key: key}

	encoded, ok := encode.Encode(value, key)
	if !ok {
		call.Outcome = observability.OutcomeInvalidValue
		s.observe(call, start)
		return false
	}
	call.Encoded = encoded

	s.mu.Lock()
	set, found := s.sets.Get(h)
	result := found && fn(set, string(encoded))
	s.mu.Unlock()

	switch {
	case !found:
		call.Outcome = observability.OutcomeNoSuchSet
	case result:
		call.Outcome = yes
	default:
		call.Outcome = no
	}
	s.observe(call, start)
	return result
}

// observe hands a finished call to every configured observer.
func (s *Store) observe(call observability.Call, start time.Time) {
	call.StoreID = s.id
	call.Start = start
	call.Duration = time.Since(start)

	observability.LogCall(s.logger, call)

	ctx := context.Background()
	s.metrics.RecordCall(ctx, call)
	s.spans.RecordCallSpan(ctx, call)

	if s.journal != nil {
		if err := s.journal.Append(journal.FromCall(call)); err != nil {
			observability.LogJournalError(s.logger, call.Op, err)
		}
	}
}
