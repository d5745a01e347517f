package filestore

import (
	"context"
	"sync"

	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/storage"
)

type customerDocument struct {
	Customers []*customer.Customer `json:"customers"`
}

type customerRepository struct {
	path string
	log  *logger.Logger

	mu  sync.RWMutex
	doc customerDocument
}

// NewCustomerRepository loads the customer registry document at path,
// defaulting to an empty registry when the file is missing or corrupt
func NewCustomerRepository(path string, log *logger.Logger) (customer.Repository, error) {
	doc, err := storage.Load[customerDocument](path)
	if err != nil {
		return nil, err
	}
	return &customerRepository{path: path, log: log, doc: doc}, nil
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*customer.Customer, len(r.doc.Customers))
	for i, c := range r.doc.Customers {
		result[i] = copyCustomer(c)
	}
	return result, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.doc.Customers {
		if keyEqual(c.CustomerID, id) {
			return copyCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.doc.Customers {
		if keyEqual(c.Name, name) {
			return copyCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyCustomer(c)
	for i, existing := range r.doc.Customers {
		if keyEqual(existing.CustomerID, c.CustomerID) {
			r.doc.Customers[i] = stored
			if err := storage.Save(r.path, r.doc); err != nil {
				// The replacement must not survive a failed persist
				r.doc.Customers[i] = existing
				return err
			}
			return nil
		}
	}
	r.doc.Customers = append(r.doc.Customers, stored)
	if err := storage.Save(r.path, r.doc); err != nil {
		r.doc.Customers = r.doc.Customers[:len(r.doc.Customers)-1]
		return err
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*customer.Customer, 0, len(r.doc.Customers))
	for _, c := range r.doc.Customers {
		if !keyEqual(c.CustomerID, id) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(r.doc.Customers) {
		return false, nil
	}
	previous := r.doc.Customers
	r.doc.Customers = kept
	if err := storage.Save(r.path, r.doc); err != nil {
		// Keep the record in memory so a retry can persist the deletion
		r.doc.Customers = previous
		return false, err
	}
	return true, nil
}

func (r *customerRepository) ReplaceAll(ctx context.Context, customers []*customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]*customer.Customer, len(customers))
	for i, c := range customers {
		replacement[i] = copyCustomer(c)
	}
	previous := r.doc.Customers
	r.doc.Customers = replacement
	if err := storage.Save(r.path, r.doc); err != nil {
		r.doc.Customers = previous
		return err
	}
	return nil
}
