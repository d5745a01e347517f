package customer

import (
	"strings"

	"github.com/shopspring/decimal"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

// Customer is a master-data record in the customer registry.
// TotalPurchases and TotalAmount are rollups recomputed from the invoice
// ledger by the stats service; they are never hand-edited.
type Customer struct {
	CustomerID     string          `json:"customer_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	GSTNo          string          `json:"gst_no"`
	TotalPurchases int             `json:"total_purchases"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.CustomerID) == "" {
		return ierr.NewError("customer id is required").
			WithHint("Customer ID must not be empty").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(c.Name) == "" {
		return ierr.NewError("customer name is required").
			WithHint("Customer name must not be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
