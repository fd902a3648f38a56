/*
Package config loads the diagnostic settings of an encstrset store.

# Overview

Config holds a decoded YAML or JSON document. Its accessors return a default
for missing or mistyped keys. Settings extracts the recognised keys the same
lenient way; ParseSettings rejects anything else:

	debug: true          # per-call DEBUG tracing
	log_format: json     # "text" (default) or "json"
	metrics: true        # OpenTelemetry metrics
	tracing: true        # OpenTelemetry spans
	journal: calls.db    # SQLite journal path, ":memory:" allowed, empty disables

# File Loading

	settings, err := config.LoadSettings("encstrset.yaml")
	if err != nil {
	    log.Fatal(err) // unknown key, wrong type, or bad log_format
	}
	logger := settings.NewLogger(os.Stderr) // nil unless debug is set

Failures wrap ErrUnknownKey or ErrInvalidValue, so callers can tell a typo
from a bad value with errors.Is.

Settings never change what a set operation returns; they only choose which
observers see the calls.
*/
package config
