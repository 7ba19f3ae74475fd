package versiontag_test

import (
	"fmt"

	versiontag "github.com/danylaporte/version-tag"
)

// Example_memoization demonstrates the canonical use case: skipping a
// heavy recomputation while no dependency has changed.
func Example_memoization() {
	// An isolated counter keeps the ordinals in this example
	// deterministic; applications normally use the package-level
	// constructors and the process-wide counter.
	c := versiontag.NewCounter()

	// Two upstream values, each carrying a tag.
	x := c.Tag()
	y := c.Tag()

	// The derived value remembers the combined tag of its inputs.
	seen := versiontag.Zero()
	recomputations := 0

	update := func() {
		actual := versiontag.Combine(x, y)
		if !actual.Equal(seen) {
			recomputations++ // the heavy computation would run here
			seen = actual
		}
	}

	update()
	update() // nothing changed, no recomputation

	x.InvalidateWith(c) // upstream change

	update()
	update()

	fmt.Printf("recomputations: %d\n", recomputations)
	fmt.Printf("effective version: %s\n", seen)

	// Output:
	// recomputations: 2
	// effective version: 3
}

// Example_combine shows that the most recently changed input dominates.
func Example_combine() {
	c := versiontag.NewCounter()

	t1 := c.Tag()
	t2 := c.Tag()

	combined := versiontag.Combine(t1, t2)
	fmt.Println(combined.Equal(t2))

	t1.InvalidateWith(c)

	combined = versiontag.Combine(t1, t2)
	fmt.Println(combined.Equal(t1))

	// Output:
	// true
	// true
}
