package encstrset

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/randalmurphal/encstrset/pkg/encstrset/config"
	"github.com/randalmurphal/encstrset/pkg/encstrset/journal"
)

// storeConfig holds the observers a Store reports to.
type storeConfig struct {
	storeID        string
	logger         *slog.Logger
	metricsEnabled bool
	tracingEnabled bool
	journal        journal.Journal
	ownsJournal    bool
}

// Option configures a Store.
type Option func(*storeConfig)

// WithLogger enables per-call DEBUG records on logger.
// Default: nil (no logging)
//
// Records carry op, store_id, handle, the arguments (NULL when absent),
// the cipher as hex and the outcome.
func WithLogger(logger *slog.Logger) Option {
	return func(c *storeConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics.
// Default: false
//
// When enabled, records:
//   - encstrset.op.calls (counter by op and outcome)
//   - encstrset.op.latency_ms (histogram)
//   - encstrset.copy.elements (counter of copied and skipped ciphers)
//
// Metrics use the global OTel meter provider.
func WithMetrics(enabled bool) Option {
	return func(c *storeConfig) {
		c.metricsEnabled = enabled
	}
}

// WithTracing enables one OpenTelemetry span per call.
// Default: false
//
// Spans use the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(c *storeConfig) {
		c.tracingEnabled = enabled
	}
}

// WithJournal appends an entry to j for every call.
// The caller keeps ownership; Store.Close does not close j.
func WithJournal(j journal.Journal) Option {
	return func(c *storeConfig) {
		c.journal = j
		c.ownsJournal = false
	}
}

// withOwnedJournal is WithJournal for journals the Store opened itself.
func withOwnedJournal(j journal.Journal) Option {
	return func(c *storeConfig) {
		c.journal = j
		c.ownsJournal = true
	}
}

// WithStoreID sets the identifier attached to every diagnostic.
// Default: a random UUID
func WithStoreID(id string) Option {
	return func(c *storeConfig) {
		if id != "" {
			c.storeID = id
		}
	}
}

// OptionsFromSettings translates loaded settings into options. Logs go to w.
// A configured journal path is opened here and closed by Store.Close.
func OptionsFromSettings(s config.Settings, w io.Writer) ([]Option, error) {
	opts := []Option{
		WithLogger(s.NewLogger(w)),
		WithMetrics(s.Metrics),
		WithTracing(s.Tracing),
	}
	if s.JournalPath != "" {
		j, err := journal.NewSQLiteJournal(s.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		opts = append(opts, withOwnedJournal(j))
	}
	return opts, nil
}

// NewFromConfig creates a Store configured by cfg, logging to w.
// Unknown keys and mistyped values in cfg are errors.
func NewFromConfig(cfg config.Config, w io.Writer) (*Store, error) {
	settings, err := cfg.ParseSettings()
	if err != nil {
		return nil, fmt.Errorf("store settings: %w", err)
	}
	return newFromSettings(settings, w)
}

// NewFromFile creates a Store from a YAML or JSON settings file.
func NewFromFile(path string, w io.Writer) (*Store, error) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	return newFromSettings(settings, w)
}

func newFromSettings(settings config.Settings, w io.Writer) (*Store, error) {
	opts, err := OptionsFromSettings(settings, w)
	if err != nil {
		return nil, err
	}
	return New(opts...), nil
}
