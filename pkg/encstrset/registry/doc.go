// Package registry provides a thread-safe table of values addressed by
// handles that the table itself issues.
//
// Handles come from a strictly increasing counter. A handle is never handed
// out twice, even after the value it named has been deleted, so a stale
// handle resolves to "unknown" instead of silently addressing a newer value.
//
// # Basic Usage
//
//	r := registry.New[string]()
//	h := r.Create("first")  // h == 0
//	r.Create("second")      // 1
//
//	v, ok := r.Get(h)
//	if ok {
//	    fmt.Println(v) // Output: first
//	}
//
//	r.Delete(h)
//	r.Has(h)             // false
//	r.Create("third")    // 2, never 0 again
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Each method is atomic on
// its own; a check-then-act sequence such as Get followed by Delete is not,
// so callers that need one serialise it under their own lock.
//
// All walks a copy of the table in handle order, so the loop body may call
// Create or Delete:
//
//	for h, v := range r.All() {
//	    if v == "" {
//	        r.Delete(h) // the loop still sees the old table
//	    }
//	}
//
// Values are stored as given. When V is a pointer or map, the registry only
// guards the table; synchronising access to the pointed-to data is the
// caller's job.
package registry
