package search

import (
	"reflect"
	"testing"
)

func TestCacheGetPut(t *testing.T) {
	c := NewCache(4)
	if _, ok := c.Get("abc"); ok {
		t.Fatalf("empty cache should miss")
	}

	c.Put("abc", []int{1, 2})
	ids, ok := c.Get("abc")
	if !ok || !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("expected cached [1 2], got %v (ok=%v)", ids, ok)
	}

	// Absent substrings are cached as hits with no ids.
	c.Put("zzz", nil)
	ids, ok = c.Get("zzz")
	if !ok || ids != nil {
		t.Errorf("expected cached miss entry, got %v (ok=%v)", ids, ok)
	}

	// Keys sharing a prefix stay distinct.
	c.Put("ab", []int{7})
	if ids, _ := c.Get("abc"); !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Errorf("prefix key overwrote longer key: %v", ids)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []int{0})
	c.Put("b", []int{1})
	c.Get("a") // b is now the oldest
	c.Put("c", []int{2})

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Errorf("expected 'b' to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Errorf("expected 'a' to survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Errorf("expected 'c' to be present")
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(2)
	c.Put("a", []int{0})
	c.Put("b", []int{1})
	c.Put("a", []int{5})

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	if ids, _ := c.Get("a"); !reflect.DeepEqual(ids, []int{5}) {
		t.Errorf("expected overwritten value, got %v", ids)
	}
	if _, ok := c.Get("b"); !ok {
		t.Errorf("overwrite should not evict other entries")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache(0)
	c.Put("a", []int{1})
	if c.Len() != 0 {
		t.Errorf("zero sized cache should stay empty")
	}
}
