package testid

import "testing"

func TestInsertAssignsSequentialIDs(t *testing.T) {
	m := New()
	id0 := m.Insert(1000, "continuity_test")
	id1 := m.Insert(1001, "leakage_test")
	if id0 != 0 || id1 != 1 {
		t.Fatalf("want ids 0,1, got %d,%d", id0, id1)
	}
}

func TestLookupMissing(t *testing.T) {
	m := New()
	if _, ok := m.Lookup(1, "x"); ok {
		t.Fatal("want missing pair to report ok=false")
	}
}

func TestLookupFindsInsertedPair(t *testing.T) {
	m := New()
	m.Insert(5, "vdd_test")
	id, ok := m.Lookup(5, "vdd_test")
	if !ok || id != 0 {
		t.Fatalf("want (0, true), got (%d, %v)", id, ok)
	}
}

func TestInsertNeverDedups(t *testing.T) {
	m := New()
	m.Insert(1, "a")
	m.Insert(1, "a")
	if m.Len() != 2 {
		t.Fatalf("want 2 entries (no implicit dedup), got %d", m.Len())
	}
}

func TestGetOrInsert(t *testing.T) {
	m := New()
	id1 := m.GetOrInsert(1, "a")
	id2 := m.GetOrInsert(1, "a")
	if id1 != id2 {
		t.Fatalf("want same id on repeat GetOrInsert, got %d and %d", id1, id2)
	}
	if m.Len() != 1 {
		t.Fatalf("want 1 entry, got %d", m.Len())
	}
}

func TestCacheDoesNotChangeSemantics(t *testing.T) {
	m := New()
	m.EnableCache(2)
	id := m.Insert(7, "p")
	got, ok := m.Lookup(7, "p")
	if !ok || got != id {
		t.Fatalf("want (%d, true), got (%d, %v)", id, got, ok)
	}
	// Second lookup should hit the front cache, same result.
	got2, ok2 := m.Lookup(7, "p")
	if !ok2 || got2 != id {
		t.Fatalf("want (%d, true) on cached lookup, got (%d, %v)", id, got2, ok2)
	}
}
