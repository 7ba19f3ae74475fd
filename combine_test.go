package versiontag

import "testing"

func TestCombineEmpty(t *testing.T) {
	if got := Combine(); !got.Equal(Zero()) {
		t.Errorf("Combine() = %v, want Zero()", got)
	}
}

func TestCombineSingleton(t *testing.T) {
	tag := New()
	if got := Combine(tag); !got.Equal(tag) {
		t.Errorf("Combine(t) = %v, want %v", got, tag)
	}
}

func TestCombineCommutative(t *testing.T) {
	a, b := New(), New()

	ab := Combine(a, b)
	ba := Combine(b, a)

	if !ab.Equal(ba) {
		t.Errorf("Combine(a, b) = %v but Combine(b, a) = %v", ab, ba)
	}
}

func TestCombinePicksNewest(t *testing.T) {
	c := NewCounter()
	t1 := c.Tag() // ordinal 1
	t2 := c.Tag() // ordinal 2

	combined := Combine(t1, t2)
	if !combined.Equal(t2) {
		t.Fatalf("Combine(t1, t2) = %v, want t2 (%v)", combined, t2)
	}
	if combined.Uint64() != 2 {
		t.Fatalf("combined ordinal = %d, want 2", combined.Uint64())
	}
}

// TestCombineMonotone verifies that invalidating any input strictly
// increases the combined result and the newest input dominates.
func TestCombineMonotone(t *testing.T) {
	c := NewCounter()
	t1 := c.Tag()
	t2 := c.Tag()

	c1 := Combine(t1, t2)

	t1.InvalidateWith(c) // t1 becomes ordinal 3

	c2 := Combine(t1, t2)

	if c2.Equal(c1) {
		t.Fatal("combined tag did not change after invalidating an input")
	}
	if !c2.After(c1) {
		t.Fatalf("combined tag went backwards: %v -> %v", c1, c2)
	}
	if !c2.Equal(t1) {
		t.Fatalf("combined tag = %v, want the invalidated input %v", c2, t1)
	}
	if c2.Uint64() != 3 {
		t.Fatalf("combined ordinal = %d, want 3", c2.Uint64())
	}
}

func TestCombineIgnoresZeroInputs(t *testing.T) {
	tag := New()

	if got := Combine(Zero(), tag, Zero()); !got.Equal(tag) {
		t.Errorf("Combine with zero inputs = %v, want %v", got, tag)
	}
	if got := Combine(Zero(), Zero()); !got.Equal(Zero()) {
		t.Errorf("Combine of only zeros = %v, want Zero()", got)
	}
}
