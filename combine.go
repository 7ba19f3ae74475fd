package versiontag

// Combine reduces any number of tags to one representative tag: the
// one with the maximum ordinal. A derived computation is as stale as
// its most recently changed dependency, so the newest input dominates.
//
// Combine() with no arguments returns Zero. Combine is idempotent on
// singletons, commutative, and monotone: invalidating any input
// strictly increases the combined result, because the re-drawn ordinal
// is greater than every previously issued one and therefore than the
// prior maximum.
func Combine(tags ...Tag) Tag {
	var max Tag
	for _, t := range tags {
		if t.ordinal > max.ordinal {
			max = t
		}
	}
	return max
}
