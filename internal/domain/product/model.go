package product

import (
	"strings"

	"github.com/shopspring/decimal"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

// Product is a master-data record in the product registry. Invoices copy
// rate and tax values at billing time, so editing a product never alters
// historical invoices.
type Product struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Rate1Kg     decimal.Decimal `json:"rate_1kg"`
	RateHalfKg  decimal.Decimal `json:"rate_half_kg"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	Stock       decimal.Decimal `json:"stock"`
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.ProductCode) == "" {
		return ierr.NewError("product code is required").
			WithHint("Product code must not be empty").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(p.ProductName) == "" {
		return ierr.NewError("product name is required").
			WithHint("Product name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.GSTRate.IsNegative() {
		return ierr.NewError("gst rate must be non negative").
			WithHint("GST rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if p.Stock.IsNegative() {
		return ierr.NewError("stock must be non negative").
			WithHint("Stock cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
