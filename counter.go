package versiontag

import "sync/atomic"

// Counter issues globally unique, monotonically increasing ordinals.
// The zero value is ready to use; its first issued ordinal is 1, so
// ordinal 0 stays reserved for the zero sentinel tag.
//
// The package-level constructors share one process-wide counter. Code
// that needs an isolated ordinal space (tests, mostly) can construct
// its own Counter and mint tags through it.
type Counter struct {
	next atomic.Uint64
}

// NewCounter creates an independent counter. Equivalent to new(Counter).
func NewCounter() *Counter {
	return &Counter{}
}

// Issue atomically draws the next ordinal. No two callers ever receive
// the same value, and every issued ordinal is strictly greater than
// all ordinals issued before it. Overflow of the 64-bit width is not
// defended against.
func (c *Counter) Issue() uint64 {
	return c.next.Add(1)
}

// Current returns the most recently issued ordinal, or 0 if the
// counter has never issued one.
func (c *Counter) Current() uint64 {
	return c.next.Load()
}

// Tag issues a fresh tag from this counter.
func (c *Counter) Tag() Tag {
	return Tag{ordinal: c.Issue()}
}

// global backs the package-level constructors for the process lifetime.
var global Counter
