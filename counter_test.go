package versiontag

import "testing"

func TestCounterStartsAtOne(t *testing.T) {
	c := NewCounter()

	if c.Current() != 0 {
		t.Fatalf("fresh counter Current() = %d, want 0", c.Current())
	}
	if got := c.Issue(); got != 1 {
		t.Fatalf("first Issue() = %d, want 1", got)
	}
	if got := c.Issue(); got != 2 {
		t.Fatalf("second Issue() = %d, want 2", got)
	}
	if c.Current() != 2 {
		t.Fatalf("Current() = %d, want 2", c.Current())
	}
}

func TestCountersAreIsolated(t *testing.T) {
	a, b := NewCounter(), NewCounter()

	a.Issue()
	a.Issue()

	if got := b.Issue(); got != 1 {
		t.Errorf("second counter first Issue() = %d, want 1", got)
	}
	if a.Current() != 2 {
		t.Errorf("first counter Current() = %d, want 2", a.Current())
	}
}

func TestZeroValueCounterUsable(t *testing.T) {
	var c Counter
	if got := c.Issue(); got != 1 {
		t.Errorf("zero-value counter first Issue() = %d, want 1", got)
	}
}
