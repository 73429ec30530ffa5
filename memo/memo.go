// Package memo provides a memoizing wrapper around the edit distance.
//
// Edit distance is quadratic in sequence length, and bulk matching scores the
// same pairs over and over. EditMemo caches results keyed by the unordered
// input pair, so Distance(a, b) and Distance(b, a) share one entry.
//
// By default the cache grows without bound for the lifetime of the memo:
// every distinct input pair stays resident. Long-running processes that score
// unbounded input sets should set a cap with WithMaxEntries, which turns the
// memo into an LRU.
package memo

import (
	"container/list"
	"sync"

	"github.com/hupe1980/matchgo/seqdist"
)

// pairKey is the canonical form of an unordered string pair: A <= B.
type pairKey struct {
	A, B string
}

func canonical(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// EditMemo caches edit distances keyed by the unordered input pair.
// Safe for concurrent use.
type EditMemo struct {
	mu         sync.Mutex
	entries    map[pairKey]*list.Element
	lru        *list.List // front = most recent
	maxEntries int        // 0 = unbounded
}

type memoEntry struct {
	key  pairKey
	dist int
}

// Option configures an EditMemo.
type Option func(*EditMemo)

// WithMaxEntries caps the memo at n entries, evicting the least recently
// used pair once the cap is exceeded. n <= 0 leaves the memo unbounded.
func WithMaxEntries(n int) Option {
	return func(m *EditMemo) {
		m.maxEntries = n
	}
}

// New creates an empty EditMemo.
func New(optFns ...Option) *EditMemo {
	m := &EditMemo{
		entries: make(map[pairKey]*list.Element),
		lru:     list.New(),
	}
	for _, fn := range optFns {
		fn(m)
	}
	return m
}

// Distance returns the edit distance between a and b, computing and caching
// it on first sight of the pair in either order.
func (m *EditMemo) Distance(a, b string) int {
	key := canonical(a, b)

	m.mu.Lock()
	if el, ok := m.entries[key]; ok {
		m.lru.MoveToFront(el)
		dist := el.Value.(*memoEntry).dist
		m.mu.Unlock()
		return dist
	}
	m.mu.Unlock()

	// Compute outside the lock so concurrent misses on different pairs do
	// not serialize. A racing computation of the same pair is wasted work,
	// not a correctness problem.
	dist := seqdist.EditDistance(a, b)

	m.mu.Lock()
	m.store(key, dist)
	m.mu.Unlock()
	return dist
}

// Ratio returns the normalized edit similarity between a and b, using the
// cached distance.
func (m *EditMemo) Ratio(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-m.Distance(a, b)) / float64(maxLen)
}

// Len returns the number of cached pairs.
func (m *EditMemo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

// store inserts or refreshes an entry. Caller holds m.mu.
func (m *EditMemo) store(key pairKey, dist int) {
	if el, ok := m.entries[key]; ok {
		m.lru.MoveToFront(el)
		el.Value.(*memoEntry).dist = dist
		return
	}
	m.entries[key] = m.lru.PushFront(&memoEntry{key: key, dist: dist})
	if m.maxEntries > 0 && m.lru.Len() > m.maxEntries {
		oldest := m.lru.Back()
		m.lru.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoEntry).key)
	}
}
