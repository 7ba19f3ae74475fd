// Package versiontag provides a cheap change-detection primitive: an
// opaque, totally-ordered version tag backed by a process-wide
// monotonic counter.
//
// A Tag is a snapshot of the counter at the moment it was issued.
// Downstream code that derives a value from several upstream values
// can remember the combined tag of its inputs and skip recomputation
// whenever that tag has not moved.
//
// # Basic Usage
//
//	import versiontag "github.com/danylaporte/version-tag"
//
//	// Each upstream value carries a tag.
//	cfg := versiontag.New()
//	data := versiontag.New()
//
//	// The derived value remembers the combined tag of its inputs.
//	seen := versiontag.Combine(cfg, data)
//
//	// When an input changes, invalidate its tag.
//	data.Invalidate()
//
//	// Recompute only if the combined tag moved.
//	if actual := versiontag.Combine(cfg, data); !actual.Equal(seen) {
//		// ... heavy recomputation ...
//		seen = actual
//	}
//
// Combine selects the maximum ordinal among its inputs, so the most
// recently changed dependency dominates. Invalidating any input draws
// a never-before-issued ordinal, which makes the combined tag strictly
// greater than every tag the process has seen so far.
//
// # Tags Across Process Restarts
//
// Ordinals restart from 1 on every process start, so a raw Tag must
// never be persisted and compared across restarts. The sharedtag
// package salts a tag with a random per-process instance identifier
// and provides a transport-safe encoding for exactly that use case.
//
// # Concurrency
//
// All operations are safe for concurrent use. Tag issuance is a single
// atomic increment; no two callers ever observe the same ordinal.
package versiontag
