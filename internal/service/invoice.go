package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/types"
)

// InvoiceService owns the fiscal-year ledger: document numbering, invoice
// creation and status transitions
type InvoiceService interface {
	List(ctx context.Context) ([]*invoice.Invoice, error)
	Get(ctx context.Context, invoiceNo string) (*invoice.Invoice, error)
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*invoice.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceNo string, status types.InvoiceStatus) (bool, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
	NextGatePassNumber(ctx context.Context, date time.Time) (string, error)
}

// CreateInvoiceRequest is an invoice draft. InvoiceNo, GatePassNo, Date
// and Status are assigned server-side when absent; any derived amounts on
// the items are recomputed before the record is persisted.
type CreateInvoiceRequest struct {
	InvoiceNo    string
	GatePassNo   string
	Date         string
	CustomerID   string
	CustomerName string
	Items        []invoice.LineItem
	Template     string
	Status       types.InvoiceStatus
}

type invoiceService struct {
	ServiceParams

	// mu serializes number generation, collection mutation and
	// persistence: two concurrent creates must never share a number or
	// lose an append.
	mu sync.Mutex
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

func (s *invoiceService) List(ctx context.Context) ([]*invoice.Invoice, error) {
	return s.InvoiceRepo.List(ctx)
}

func (s *invoiceService) Get(ctx context.Context, invoiceNo string) (*invoice.Invoice, error) {
	return s.InvoiceRepo.GetByNumber(ctx, invoiceNo)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*invoice.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := &invoice.Invoice{
		InvoiceNo:    strings.TrimSpace(req.InvoiceNo),
		GatePassNo:   strings.TrimSpace(req.GatePassNo),
		Date:         strings.TrimSpace(req.Date),
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Items:        append([]invoice.LineItem(nil), req.Items...),
		Template:     req.Template,
		Status:       req.Status,
	}

	if inv.Date == "" {
		inv.Date = time.Now().Format(types.DateLayout)
	}
	if inv.InvoiceNo == "" {
		number, err := s.nextInvoiceNumberLocked(ctx)
		if err != nil {
			return nil, err
		}
		inv.InvoiceNo = number
	}
	if inv.GatePassNo == "" {
		// Gate passes are sequenced by the invoice's own date, so a
		// backfilled invoice joins that day's sequence.
		gatePass, err := s.nextGatePassNumberLocked(ctx, gatePassDateKey(inv.Date))
		if err != nil {
			return nil, err
		}
		inv.GatePassNo = gatePass
	}

	inv.StampTotals()

	if inv.Status == "" {
		inv.Status = types.InvoiceStatusFinal
	}
	if err := inv.Status.Validate(); err != nil {
		return nil, err
	}
	if err := inv.Validate(); err != nil {
		// Rejection is a normal outcome; nothing has been mutated
		return nil, err
	}

	if err := s.InvoiceRepo.Append(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice created",
		"invoice_no", inv.InvoiceNo,
		"gate_pass_no", inv.GatePassNo,
		"customer_id", inv.CustomerID,
		"grand_total", inv.GrandTotal)
	return inv, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceNo string, status types.InvoiceStatus) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.InvoiceRepo.UpdateStatus(ctx, invoiceNo, status)
	if err != nil {
		return false, err
	}
	if updated {
		s.Logger.Infow("invoice status updated", "invoice_no", invoiceNo, "status", status)
	}
	return updated, nil
}

func (s *invoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextInvoiceNumberLocked(ctx)
}

func (s *invoiceService) NextGatePassNumber(ctx context.Context, date time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextGatePassNumberLocked(ctx, date.Format(types.GatePassDateLayout))
}

// nextInvoiceNumberLocked scans the persisted ledger for the highest
// sequence under the current fiscal year's prefix. An O(n) scan per
// invoice is acceptable at this scale and keeps numbering correct even
// when the ledger file was edited externally.
func (s *invoiceService) nextInvoiceNumberLocked(ctx context.Context) (string, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return "", err
	}

	prefix := s.InvoiceRepo.FiscalYear().InvoicePrefix()
	max := 0
	for _, inv := range invoices {
		if seq, ok := invoice.InvoiceSequence(inv.InvoiceNo, prefix); ok && seq > max {
			max = seq
		}
	}
	return invoice.FormatInvoiceNumber(prefix, max+1), nil
}

// nextGatePassNumberLocked derives the per-day sequence from persisted
// gate pass numbers instead of a volatile counter, so a restart cannot
// reset the day's sequence.
func (s *invoiceService) nextGatePassNumberLocked(ctx context.Context, dateKey string) (string, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return "", err
	}

	max := 0
	for _, inv := range invoices {
		if seq, ok := invoice.GatePassSequence(inv.GatePassNo, dateKey); ok && seq > max {
			max = seq
		}
	}
	return invoice.FormatGatePassNumber(dateKey, max+1), nil
}

// gatePassDateKey compacts a stored date ("2006-01-02") into the key
// embedded in gate pass numbers ("20060102")
func gatePassDateKey(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
