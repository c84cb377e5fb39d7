// Package idmap implements an open-addressed, linear-probed uint32->uint32
// hash map, bit-for-bit grounded on deps/cystdf/hashmap_src/hashmap.c: a
// Robert Jenkins 32-bit integer mix followed by Knuth's multiplicative
// hash, linear probing on collision, and doubling-rehash on saturation.
//
// This is not a generic map: its whole reason for existing is to translate
// a raw numeric key (e.g. a PMR_INDX or GRP_INDX) into another uint32
// faster, and with fewer allocations, than Go's builtin map[uint32]uint32
// under the specific access pattern STDF decoding produces — mostly-miss
// lookups during the header/link-resolution phase, followed by sustained
// hits once a file's pin maps are fully populated.
package idmap

// initialSize is the starting table_size (hashmap.c's INITIAL_SIZE).
const initialSize = 512

type element struct {
	key   uint32
	inUse bool
	data  uint32
}

// Map is a fixed-growth-factor open-addressed hash map.
type Map struct {
	table []element
	size  int // number of occupied slots
}

// New returns an empty Map with the default initial capacity.
func New() *Map {
	return &Map{table: make([]element, initialSize)}
}

// hashInt applies the Jenkins mix then the Knuth multiplicative hash,
// reduced modulo the current table size.
func hashInt(key uint32, tableSize int) uint32 {
	key += key << 12
	key ^= key >> 22
	key += key << 4
	key ^= key >> 9
	key += key << 10
	key ^= key >> 2
	key += key << 7
	key ^= key >> 12

	key = (key >> 3) * 2654435761
	return key % uint32(tableSize)
}

// findSlot returns the slot index for key: either its existing slot, or
// the first free slot on its probe sequence. ok is false if the table is
// completely full (every slot occupied by a different key).
func (m *Map) findSlot(key uint32) (idx int, ok bool) {
	if m.size == len(m.table) {
		return 0, false
	}
	curr := int(hashInt(key, len(m.table)))
	for i := 0; i < len(m.table); i++ {
		e := &m.table[curr]
		if !e.inUse {
			return curr, true
		}
		if e.inUse && e.key == key {
			return curr, true
		}
		curr = (curr + 1) % len(m.table)
	}
	return 0, false
}

// rehash doubles the table and reinserts every occupied element.
func (m *Map) rehash() {
	old := m.table
	m.table = make([]element, len(old)*2)
	m.size = 0
	for _, e := range old {
		if e.inUse {
			m.Put(e.key, e.data)
		}
	}
}

// Put inserts or updates key's value.
func (m *Map) Put(key, value uint32) {
	idx, ok := m.findSlot(key)
	if !ok {
		m.rehash()
		idx, ok = m.findSlot(key)
		if !ok {
			// Unreachable: rehash always doubles into a table with free
			// slots relative to m.size.
			panic("idmap: rehash failed to produce a free slot")
		}
	}
	wasInUse := m.table[idx].inUse
	m.table[idx] = element{key: key, inUse: true, data: value}
	if !wasInUse {
		m.size++
	}
}

// Get returns key's value and whether key is present.
func (m *Map) Get(key uint32) (uint32, bool) {
	curr := int(hashInt(key, len(m.table)))
	for i := 0; i < len(m.table); i++ {
		e := m.table[curr]
		if e.inUse && e.key == key {
			return e.data, true
		}
		curr = (curr + 1) % len(m.table)
	}
	return 0, false
}

// Contains reports whether key is present.
func (m *Map) Contains(key uint32) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key, if present.
func (m *Map) Remove(key uint32) {
	curr := int(hashInt(key, len(m.table)))
	for i := 0; i < len(m.table); i++ {
		e := &m.table[curr]
		if e.inUse && e.key == key {
			*e = element{}
			m.size--
			return
		}
		curr = (curr + 1) % len(m.table)
	}
}

// Len returns the number of entries currently stored.
func (m *Map) Len() int { return m.size }

// Each calls fn for every (key, value) pair. Iteration order is the table's
// internal slot order, not insertion order.
func (m *Map) Each(fn func(key, value uint32)) {
	for _, e := range m.table {
		if e.inUse {
			fn(e.key, e.data)
		}
	}
}
