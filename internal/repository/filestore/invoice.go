package filestore

import (
	"context"
	"sync"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/storage"
	"github.com/avbilling/avbilling/internal/types"
)

type ledgerDocument struct {
	Invoices []*invoice.Invoice `json:"invoices"`
}

type invoiceRepository struct {
	path string
	fy   types.FiscalYear
	log  *logger.Logger

	mu  sync.RWMutex
	doc ledgerDocument
}

// NewInvoiceRepository loads the ledger document for one fiscal year,
// defaulting to an empty ledger when the file is missing or corrupt
func NewInvoiceRepository(path string, fy types.FiscalYear, log *logger.Logger) (invoice.Repository, error) {
	doc, err := storage.Load[ledgerDocument](path)
	if err != nil {
		return nil, err
	}
	return &invoiceRepository{path: path, fy: fy, log: log, doc: doc}, nil
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

func (r *invoiceRepository) FiscalYear() types.FiscalYear {
	return r.fy
}

func (r *invoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*invoice.Invoice, len(r.doc.Invoices))
	for i, inv := range r.doc.Invoices {
		result[i] = copyInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inv := range r.doc.Invoices {
		if inv.InvoiceNo == invoiceNo {
			return copyInvoice(inv), nil
		}
	}
	return nil, nil
}

func (r *invoiceRepository) Append(ctx context.Context, inv *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Invoices = append(r.doc.Invoices, copyInvoice(inv))
	if err := storage.Save(r.path, r.doc); err != nil {
		// The append must not survive a failed persist
		r.doc.Invoices = r.doc.Invoices[:len(r.doc.Invoices)-1]
		return err
	}
	return nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, invoiceNo string, status types.InvoiceStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.doc.Invoices {
		if inv.InvoiceNo == invoiceNo {
			previous := inv.Status
			inv.Status = status
			if err := storage.Save(r.path, r.doc); err != nil {
				inv.Status = previous
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
