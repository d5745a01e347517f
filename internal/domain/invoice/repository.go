package invoice

import (
	"context"

	"github.com/avbilling/avbilling/internal/types"
)

// Repository defines the interface for one fiscal year's ledger.
// The ledger is append-mostly: invoices are added and their status is
// mutated in place, but they are never deleted or renumbered.
type Repository interface {
	// FiscalYear reports which fiscal year this ledger holds
	FiscalYear() types.FiscalYear
	List(ctx context.Context) ([]*Invoice, error)
	// GetByNumber returns (nil, nil) when no invoice matches
	GetByNumber(ctx context.Context, invoiceNo string) (*Invoice, error)
	Append(ctx context.Context, inv *Invoice) error
	// UpdateStatus reports a miss as (false, nil)
	UpdateStatus(ctx context.Context, invoiceNo string, status types.InvoiceStatus) (bool, error)
}
