package text

import "testing"

func TestCacheGetOrCreate(t *testing.T) {
	c := NewCache[string, int](0)
	calls := 0
	create := func() int { calls++; return 42 }

	if got := c.GetOrCreate("k", create); got != 42 {
		t.Errorf("GetOrCreate = %d, want 42", got)
	}
	if got := c.GetOrCreate("k", create); got != 42 {
		t.Errorf("GetOrCreate (cached) = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheGetMiss(t *testing.T) {
	c := NewCache[string, int](0)
	if v, ok := c.Get("absent"); ok || v != 0 {
		t.Errorf("Get(absent) = (%d, %v), want (0, false)", v, ok)
	}
}

func TestCacheSoftLimitEvictsOldest(t *testing.T) {
	c := NewCache[int, int](2)
	c.GetOrCreate(1, func() int { return 1 })
	c.GetOrCreate(2, func() int { return 2 })
	// Touch 1 so 2 becomes the eviction candidate.
	c.Get(1)
	c.GetOrCreate(3, func() int { return 3 })

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get(2); ok {
		t.Error("entry 2 survived eviction, want it evicted as least recently used")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("entry 1 evicted, want it retained")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache[string, int](0)
	c.GetOrCreate("a", func() int { return 1 })
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}
