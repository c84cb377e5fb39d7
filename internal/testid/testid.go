// Package testid implements the test-identity map: an append-only
// (TEST_NUM, TEST_NAME) -> id table, grounded on
// deps/cystdf/testidmap_src/testidmap.c. A test's id is simply the index it
// was inserted at; lookup is a linear scan, since the reference population
// ("hundreds to low thousands" of distinct tests per lot) makes the scan
// cheaper in practice than maintaining a second index structure.
package testid

import "github.com/stdf-go/stdfcore/internal/cache"

// initCapacity matches testidmap.c's INIT_SIZE. Go's append grows the
// backing array on its own schedule past this point rather than the
// reference's explicit capacity+capacity/2 (x1.5) realloc step; the
// user-visible behavior (ids are stable insertion indexes) is identical
// either way.
const initCapacity = 256

type item struct {
	testNum  uint32
	testName string
}

// Map is the append-only test-identity table.
//
// A Map is not safe for concurrent use; callers driving it from the single
// consumer goroutine of a parse pipeline need no locking, matching the
// reference implementation's single-threaded contract.
type Map struct {
	items []item
	front *cache.LRU // nil unless EnableCache was called
}

// New returns an empty Map with the default initial capacity.
func New() *Map {
	return &Map{items: make([]item, 0, initCapacity)}
}

// EnableCache turns on an optional bounded LRU front cache of size
// capacity, accelerating repeat lookups of hot (TEST_NUM, TEST_NAME) pairs
// without changing Lookup's or Insert's semantics or returned ids. Disabled
// by default; most STDF lots have few enough distinct tests that the
// linear scan alone is fast.
func (m *Map) EnableCache(capacity int) {
	m.front = cache.New(capacity)
}

type cacheKey struct {
	testNum  uint32
	testName string
}

// Lookup returns the id previously assigned to (testNum, testName), or
// (0, false) if it has never been inserted.
func (m *Map) Lookup(testNum uint32, testName string) (int, bool) {
	if m.front != nil {
		if v, ok := m.front.Get(cacheKey{testNum, testName}); ok {
			return int(v), true
		}
	}
	for i, it := range m.items {
		if it.testNum == testNum && it.testName == testName {
			if m.front != nil {
				m.front.Put(cacheKey{testNum, testName}, uint32(i))
			}
			return i, true
		}
	}
	return 0, false
}

// Insert appends (testNum, testName) and returns its new id, the index it
// was inserted at. Callers that want get-or-create semantics should call
// Lookup first; Insert always appends, even for a pair already present,
// matching the reference's insertTestItem which performs no dedup check.
func (m *Map) Insert(testNum uint32, testName string) int {
	m.items = append(m.items, item{testNum: testNum, testName: testName})
	id := len(m.items) - 1
	if m.front != nil {
		m.front.Put(cacheKey{testNum, testName}, uint32(id))
	}
	return id
}

// GetOrInsert returns the existing id for (testNum, testName), inserting a
// new entry if it is not yet present.
func (m *Map) GetOrInsert(testNum uint32, testName string) int {
	if id, ok := m.Lookup(testNum, testName); ok {
		return id
	}
	return m.Insert(testNum, testName)
}

// Len returns the number of entries inserted. A pair inserted twice through
// Insert counts twice; GetOrInsert adds only pairs not yet present.
func (m *Map) Len() int { return len(m.items) }
