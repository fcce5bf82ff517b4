package ratelimit

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used by Memoize when the requested size is not positive.
const DefaultCacheSize = 256

// Memo caches the results of a pure function in a bounded LRU keyed by an
// explicit key extractor. On a hit the function is not invoked, so only
// deterministic, side-effect free functions should be memoized.
type Memo[A any, K comparable, R any] struct {
	mu     sync.Mutex
	fn     func(A) R
	key    func(A) K
	cache  *lru.Cache[K, R]
	hits   uint64
	misses uint64
}

// NewMemo creates a memo holding at most size results.
func NewMemo[A any, K comparable, R any](fn func(A) R, key func(A) K, size int) (*Memo[A, K, R], error) {
	if fn == nil || key == nil {
		return nil, fmt.Errorf("ratelimit: memo needs a function and a key extractor")
	}
	cache, err := lru.New[K, R](size)
	if err != nil {
		return nil, fmt.Errorf("ratelimit: cannot create memo cache: %w", err)
	}
	return &Memo[A, K, R]{fn: fn, key: key, cache: cache}, nil
}

// Call returns the cached result for a's key, computing and storing it on
// a miss. The lock is held while computing so concurrent callers with the
// same key invoke fn once.
func (m *Memo[A, K, R]) Call(a A) R {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := m.key(a)
	if v, ok := m.cache.Get(k); ok {
		m.hits++
		return v
	}

	m.misses++
	v := m.fn(a)
	m.cache.Add(k, v)
	return v
}

// Len returns the number of cached results.
func (m *Memo[A, K, R]) Len() int {
	return m.cache.Len()
}

// Purge drops every cached result.
func (m *Memo[A, K, R]) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Purge()
}

// Stats returns hit and miss counts.
func (m *Memo[A, K, R]) Stats() (hits, misses uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits, m.misses
}

// Memoize wraps fn so its argument is its own cache key.
func Memoize[K comparable, R any](fn func(K) R, size int) func(K) R {
	if size <= 0 {
		size = DefaultCacheSize
	}
	m, err := NewMemo(fn, func(k K) K { return k }, size)
	if err != nil {
		// Only reachable with a nil fn.
		panic(err)
	}
	return m.Call
}
