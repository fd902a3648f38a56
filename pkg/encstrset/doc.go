/*
Package encstrset keeps named sets of obfuscated strings behind opaque handles.

# Overview

A Store owns any number of sets. Create returns a handle for a new, empty set;
every other operation addresses a set by that handle. Values are never stored
as given: each one is first run through a byte-wise exclusive-or with a
caller-supplied key (see package encode), and the set holds the result.
Membership is decided on those encoded bytes, so the same value under two
different keys is two different elements.

# Basic Usage

	s := encstrset.New()
	h := s.Create()

	s.Insert(h, encstrset.String("abc"), nil)                   // true
	s.Insert(h, encstrset.String("abc"), nil)                   // false, already present
	s.Insert(h, encstrset.String("abc"), encstrset.String("k")) // true, different cipher
	s.Size(h)                                                   // 2

	dst := s.Create()
	s.Copy(h, dst)
	s.Size(dst) // 2

	s.Destroy(h)
	s.Test(h, encstrset.String("abc"), nil) // false, handle is gone

# Absent Arguments

Values and keys are *string. A nil value is invalid: Insert, Remove and Test
return false without touching the set. A pointer to "" is a valid, empty
value. A nil or empty key leaves the value unencoded.

# Handles

Handles come from a counter that only moves forward, so a destroyed handle is
never handed out again and keeps resolving to "unknown". Unknown handles are
not errors: mutations do nothing, queries answer false, and Size answers 0.
Size cannot tell an unknown handle from an empty set; use Exists for that.

# Diagnostics

Options attach observers that see every finished call:

	s := encstrset.New(
	    encstrset.WithLogger(logger),  // DEBUG record per call, ciphers as hex
	    encstrset.WithMetrics(true),   // OpenTelemetry counters and latency
	    encstrset.WithTracing(true),   // one span per call
	    encstrset.WithJournal(j),      // append-only trail, see package journal
	)

Observers run after the result is decided and never change it.

# Thread Safety

A Store is safe for concurrent use. One mutex guards every set, so each call
is atomic with respect to the others; interleaving between callers is
otherwise unspecified.
*/
package encstrset
