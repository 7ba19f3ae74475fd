package versiontag

import "strconv"

// Tag is an immutable snapshot of the counter: an opaque marker that
// answers "has anything changed since this was taken?" by comparison
// alone. Tags are plain values; copy them freely. The zero value of
// the type is the zero sentinel (ordinal 0), conventionally meaning
// "never computed".
type Tag struct {
	ordinal uint64
}

// New issues a fresh tag from the process-wide counter. The result is
// strictly greater than every tag issued before this call returns,
// across all goroutines, and than Zero.
func New() Tag {
	return global.Tag()
}

// Zero returns the sentinel tag with ordinal 0. It is lower than every
// tag the counter will ever issue, so Zero().Before(New()) always
// holds.
func Zero() Tag {
	return Tag{}
}

// Invalidate re-draws a fresh ordinal into t, as if replacing it with
// a brand-new tag. After the call t compares strictly greater than its
// previous value and than any tag issued before the call.
func (t *Tag) Invalidate() {
	t.ordinal = global.Issue()
}

// InvalidateWith is Invalidate against an isolated counter.
func (t *Tag) InvalidateWith(c *Counter) {
	t.ordinal = c.Issue()
}

// Compare returns -1 if t was issued before other, 0 if equal, 1 if
// after. The order is total and consistent with issuance order.
func (t Tag) Compare(other Tag) int {
	switch {
	case t.ordinal < other.ordinal:
		return -1
	case t.ordinal > other.ordinal:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly older than other.
func (t Tag) Before(other Tag) bool { return t.ordinal < other.ordinal }

// After reports whether t is strictly newer than other.
func (t Tag) After(other Tag) bool { return t.ordinal > other.ordinal }

// Equal reports whether both tags carry the same ordinal.
func (t Tag) Equal(other Tag) bool { return t.ordinal == other.ordinal }

// IsZero reports whether t is the zero sentinel.
func (t Tag) IsZero() bool { return t.ordinal == 0 }

// Uint64 exposes the underlying ordinal for interoperability.
func (t Tag) Uint64() uint64 { return t.ordinal }

// String returns the decimal ordinal.
func (t Tag) String() string {
	return strconv.FormatUint(t.ordinal, 10)
}

// FromUint64 reconstructs a tag from a raw ordinal previously obtained
// via Uint64. It never draws from the counter; callers are responsible
// for only feeding it ordinals minted in this process lifetime.
func FromUint64(ordinal uint64) Tag {
	return Tag{ordinal: ordinal}
}
