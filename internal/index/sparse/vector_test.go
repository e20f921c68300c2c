package sparse

import (
	"reflect"
	"testing"
)

func TestSetGet(t *testing.T) {
	v := New()
	v.Set(5, 3)
	v.Set(100, 7)

	if got := v.Get(5); got != 3 {
		t.Errorf("Get(5) = %d, want 3", got)
	}
	if got := v.Get(100); got != 7 {
		t.Errorf("Get(100) = %d, want 7", got)
	}
	if got := v.Get(42); got != 0 {
		t.Errorf("Get(42) = %d, want 0 for absent index", got)
	}
}

func TestSetZeroRemoves(t *testing.T) {
	v := New()
	v.Set(9, 4)
	v.Set(9, 0)

	if got := v.Get(9); got != 0 {
		t.Errorf("Get(9) = %d after Set(9, 0), want 0", got)
	}
	if got := v.Len(); got != 0 {
		t.Errorf("Len() = %d after removing only entry, want 0", got)
	}
	// Removing an index that was never set must not panic.
	v.Set(1000, 0)
	if got := v.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestIncrement(t *testing.T) {
	v := New()
	v.Increment(3)
	v.Increment(3)
	v.Increment(8)

	if got := v.Get(3); got != 2 {
		t.Errorf("Get(3) = %d, want 2", got)
	}
	if got := v.Get(8); got != 1 {
		t.Errorf("Get(8) = %d, want 1", got)
	}
	if got := v.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestItemsOrdered(t *testing.T) {
	v := New()
	for _, idx := range []int{500, 2, 9999, 47} {
		v.Set(idx, idx*10)
	}
	want := []Entry{{2, 20}, {47, 470}, {500, 5000}, {9999, 99990}}
	if got := v.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}
}

func TestLenCountsNonZeroOnly(t *testing.T) {
	v := New()
	v.Set(1, 5)
	v.Set(2, 5)
	v.Set(1, 0)
	v.Increment(3)

	if got := v.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (indices 2 and 3)", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := New()
	v.Set(7, 1)

	c := v.Clone()
	c.Set(7, 99)
	c.Set(8, 2)

	if got := v.Get(7); got != 1 {
		t.Errorf("original Get(7) = %d after mutating clone, want 1", got)
	}
	if got := v.Len(); got != 1 {
		t.Errorf("original Len() = %d after mutating clone, want 1", got)
	}
	if got := c.Get(7); got != 99 {
		t.Errorf("clone Get(7) = %d, want 99", got)
	}
}
