// pkg/memcache/store.go
package mem

import (
	"sync"
	"time"
)

type Store[K comparable, V any] interface {
	Set(key K, value V, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key K) (V, bool)

	Delete(key K)
	Len() int
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type TTLStore[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]entry[V]
	now  func() time.Time
}

func NewTTLStore[K comparable, V any]() *TTLStore[K, V] {
	return &TTLStore[K, V]{
		data: make(map[K]entry[V]),
		now:  time.Now,
	}
}

// ttl <= 0 keeps the entry until it is deleted.
func (s *TTLStore[K, V]) Set(key K, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exp time.Time
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.data[key] = entry[V]{value: value, expiresAt: exp}
}

func (s *TTLStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if s.expired(e) {
		s.Delete(key)
		return zero, false
	}
	return e.value, true
}

func (s *TTLStore[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

func (s *TTLStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep drops expired entries and reports how many were removed.
func (s *TTLStore[K, V]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, e := range s.data {
		if s.expired(e) {
			delete(s.data, k)
			n++
		}
	}
	return n
}

func (s *TTLStore[K, V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}
