package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by Settings.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Errors reported by ParseSettings. Match them with errors.Is.
var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting")
)

// Settings are the recognised store settings.
type Settings struct {
	Debug       bool
	LogFormat   string
	Metrics     bool
	Tracing     bool
	JournalPath string
}

type settingKind int

const (
	boolSetting settingKind = iota
	stringSetting
)

var settingKinds = map[string]settingKind{
	"debug":      boolSetting,
	"log_format": stringSetting,
	"metrics":    boolSetting,
	"tracing":    boolSetting,
	"journal":    stringSetting,
}

// Settings extracts the recognised keys, applying defaults.
// An unknown log_format falls back to text; other keys are ignored.
func (c Config) Settings() Settings {
	format := strings.ToLower(c.String("log_format", LogFormatText))
	if format != LogFormatJSON {
		format = LogFormatText
	}
	return Settings{
		Debug:       c.Bool("debug", false),
		LogFormat:   format,
		Metrics:     c.Bool("metrics", false),
		Tracing:     c.Bool("tracing", false),
		JournalPath: c.String("journal", ""),
	}
}

// ParseSettings is the strict form of Settings. Unknown keys, values of the
// wrong type and log formats other than text or json are reported together,
// in key order.
func (c Config) ParseSettings() (Settings, error) {
	var errs []error
	for _, key := range c.Keys() {
		kind, ok := settingKinds[key]
		if !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownKey, key))
			continue
		}
		if err := checkSetting(key, c.data[key], kind); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	return c.Settings(), nil
}

func checkSetting(key string, v any, kind settingKind) error {
	switch kind {
	case boolSetting:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%w %q: want bool, got %T", ErrInvalidValue, key, v)
		}
	case stringSetting:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w %q: want string, got %T", ErrInvalidValue, key, v)
		}
		if key == "log_format" {
			switch strings.ToLower(s) {
			case LogFormatText, LogFormatJSON:
			default:
				return fmt.Errorf("%w %q: %q is neither %s nor %s", ErrInvalidValue, key, s, LogFormatText, LogFormatJSON)
			}
		}
	}
	return nil
}

// NewLogger returns a DEBUG-level logger writing to w in the configured
// format, or nil when Debug is off.
func (s Settings) NewLogger(w io.Writer) *slog.Logger {
	if !s.Debug || w == nil {
		return nil
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if s.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
