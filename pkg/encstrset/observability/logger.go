package observability

import (
	"context"
	"log/slog"
	"strconv"
)

// EnrichLogger adds store context to a logger.
// Returns a new logger with the store_id field.
func EnrichLogger(logger *slog.Logger, storeID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("store_id", storeID))
}

// Quote renders an optional argument for logs. Absent renders as NULL so it
// never reads like an empty string.
func Quote(s *string) string {
	if s == nil {
		return "NULL"
	}
	return strconv.Quote(*s)
}

const hexDigits = "0123456789abcdef"

// HexDump renders bytes as lowercase hex pairs separated by single spaces,
// e.g. "0a ff 10".
func HexDump(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*3-1)
	for i, c := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return string(out)
}

// LogCall logs a finished call at DEBUG level. A copy follows its record
// with one record per visited element.
func LogCall(logger *slog.Logger, call Call) {
	if logger == nil {
		return
	}
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := []slog.Attr{
		slog.String("handle", call.Handle.String()),
	}
	switch {
	case call.HasValueArgs():
		attrs = append(attrs,
			slog.String("value", Quote(call.Value)),
			slog.String("key", Quote(call.Key)),
		)
		if call.Value != nil {
			attrs = append(attrs, slog.String("cipher", HexDump(call.Encoded)))
		}
	case call.Op == OpSize && call.Outcome == OutcomeCounted:
		attrs = append(attrs, slog.Int("size", call.Size))
	case call.Op == OpCopy:
		inserted, skipped := call.Copied()
		attrs = append(attrs,
			slog.String("dst", call.Dst.String()),
			slog.Int("copied", inserted),
			slog.Int("skipped", skipped),
		)
	}
	attrs = append(attrs, slog.String("outcome", string(call.Outcome)))

	logger.LogAttrs(ctx, slog.LevelDebug, string(call.Op), attrs...)

	for _, e := range call.Elements {
		outcome := "copied"
		if !e.Inserted {
			outcome = "already present in destination"
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "copy element",
			slog.String("handle", call.Handle.String()),
			slog.String("dst", call.Dst.String()),
			slog.String("cipher", HexDump(e.Cipher)),
			slog.String("outcome", outcome),
		)
	}
}

// LogJournalError logs a journal write failure (non-fatal).
func LogJournalError(logger *slog.Logger, op Op, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal append failed",
		slog.String("op", string(op)),
		slog.String("error", err.Error()),
	)
}
