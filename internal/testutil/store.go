// Package testutil provides in-memory repository implementations for
// service tests. Stores preserve insertion order like their file-backed
// counterparts and can be told to fail their next persist to exercise
// I/O error propagation.
package testutil

import (
	"strings"
	"sync"
)

// InMemoryStore implements a generic ordered in-memory collection
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items []T

	// SaveErr, when set, is returned by every mutation in place of
	// persisting, mimicking a failed disk write
	SaveErr error
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{}
}

func (s *InMemoryStore[T]) snapshot(copyFn func(T) T) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.items))
	for i, item := range s.items {
		result[i] = copyFn(item)
	}
	return result
}

func keyEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
