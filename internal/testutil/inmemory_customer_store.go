package testutil

import (
	"context"

	"github.com/avbilling/avbilling/internal/domain/customer"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{InMemoryStore: NewInMemoryStore[*customer.Customer]()}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (s *InMemoryCustomerStore) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.snapshot(copyCustomer), nil
}

func (s *InMemoryCustomerStore) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if keyEqual(c.CustomerID, id) {
			return copyCustomer(c), nil
		}
	}
	return nil, nil
}

func (s *InMemoryCustomerStore) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if keyEqual(c.Name, name) {
			return copyCustomer(c), nil
		}
	}
	return nil, nil
}

func (s *InMemoryCustomerStore) Upsert(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	for i, existing := range s.items {
		if keyEqual(existing.CustomerID, c.CustomerID) {
			s.items[i] = copyCustomer(c)
			return nil
		}
	}
	s.items = append(s.items, copyCustomer(c))
	return nil
}

func (s *InMemoryCustomerStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return false, s.SaveErr
	}
	kept := s.items[:0]
	deleted := false
	for _, c := range s.items {
		if keyEqual(c.CustomerID, id) {
			deleted = true
			continue
		}
		kept = append(kept, c)
	}
	s.items = kept
	return deleted, nil
}

func (s *InMemoryCustomerStore) ReplaceAll(ctx context.Context, customers []*customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	replacement := make([]*customer.Customer, len(customers))
	for i, c := range customers {
		replacement[i] = copyCustomer(c)
	}
	s.items = replacement
	return nil
}
