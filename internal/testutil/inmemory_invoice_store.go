package testutil

import (
	"context"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository for one fiscal year
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
	fy types.FiscalYear
}

func NewInMemoryInvoiceStore(fy types.FiscalYear) *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
		fy:            fy,
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	cp := *inv
	cp.Items = make([]invoice.LineItem, len(inv.Items))
	copy(cp.Items, inv.Items)
	return &cp
}

func (s *InMemoryInvoiceStore) FiscalYear() types.FiscalYear {
	return s.fy
}

func (s *InMemoryInvoiceStore) List(ctx context.Context) ([]*invoice.Invoice, error) {
	return s.snapshot(copyInvoice), nil
}

func (s *InMemoryInvoiceStore) GetByNumber(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.items {
		if inv.InvoiceNo == invoiceNo {
			return copyInvoice(inv), nil
		}
	}
	return nil, nil
}

func (s *InMemoryInvoiceStore) Append(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.items = append(s.items, copyInvoice(inv))
	return nil
}

func (s *InMemoryInvoiceStore) UpdateStatus(ctx context.Context, invoiceNo string, status types.InvoiceStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return false, s.SaveErr
	}
	for _, inv := range s.items {
		if inv.InvoiceNo == invoiceNo {
			inv.Status = status
			return true, nil
		}
	}
	return false, nil
}
