package bench

import (
	"math/bits"
	"sync"
)

const DefaultHashEntries = 1 << 20

// HashTable caches subtree results by position key and remaining depth. It is safe for
// concurrent use by the parallel perft workers.
type HashTable struct {
	mu       sync.Mutex
	table    []entry
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type entry struct {
	key    uint64
	depth  uint8
	result Result
}

// NewHashTable allocates a table of at least size entries, rounded up to a power of two.
func NewHashTable(size uint64) *HashTable {
	if size < 2 {
		size = 2
	}
	size = 1 << bits.Len64(size-1)
	return &HashTable{
		table:    make([]entry, size),
		maskHash: size - 1,
	}
}

// Set stores r unless the slot holds a deeper subtree.
func (t *HashTable) Set(key uint64, depth int, r Result) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	e := &t.table[key&t.maskHash]
	if e.depth > uint8(depth) {
		return
	}
	t.writes++
	*e = entry{
		key:    key,
		depth:  uint8(depth),
		result: r,
	}
}

func (t *HashTable) Get(key uint64, depth int) (Result, bool) {
	if t == nil {
		return Result{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.table[key&t.maskHash]
	if e.depth == 0 || e.depth != uint8(depth) || e.key != key {
		t.misses++
		return Result{}, false
	}
	t.hits++
	return e.result, true
}

func (t *HashTable) ResetStats() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hits = 0
	t.misses = 0
	t.writes = 0
}

// Stats returns the hit, miss and write counters.
func (t *HashTable) Stats() (int, int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hits, t.misses, t.writes
}
