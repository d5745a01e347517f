package testutil

import (
	"context"

	"github.com/avbilling/avbilling/internal/domain/product"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]
}

func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{InMemoryStore: NewInMemoryStore[*product.Product]()}
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (s *InMemoryProductStore) List(ctx context.Context) ([]*product.Product, error) {
	return s.snapshot(copyProduct), nil
}

func (s *InMemoryProductStore) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if keyEqual(p.ProductCode, code) {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (s *InMemoryProductStore) FindByName(ctx context.Context, name string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if keyEqual(p.ProductName, name) {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (s *InMemoryProductStore) Upsert(ctx context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	for i, existing := range s.items {
		if keyEqual(existing.ProductCode, p.ProductCode) {
			s.items[i] = copyProduct(p)
			return nil
		}
	}
	s.items = append(s.items, copyProduct(p))
	return nil
}

func (s *InMemoryProductStore) Delete(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return false, s.SaveErr
	}
	kept := s.items[:0]
	deleted := false
	for _, p := range s.items {
		if keyEqual(p.ProductCode, code) {
			deleted = true
			continue
		}
		kept = append(kept, p)
	}
	s.items = kept
	return deleted, nil
}
