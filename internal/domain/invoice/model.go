package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/money"
	"github.com/avbilling/avbilling/internal/types"
)

// LineItem is one product entry on an invoice. Quantity, rate, discount
// and GST percent are caller input; the remaining amounts are derived and
// stamped at save time, never trusted from the caller.
type LineItem struct {
	ProductCode string          `json:"product_code,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	DiscountPct decimal.Decimal `json:"discount"`
	GSTPct      decimal.Decimal `json:"gst"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Taxable        decimal.Decimal `json:"taxable"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

// Invoice is one ledger document entry. Totals are always recomputed from
// the items at save time, so the stored figures are internally consistent
// with the stored items.
type Invoice struct {
	InvoiceNo     string              `json:"invoice_no"`
	GatePassNo    string              `json:"gate_pass_no"`
	Date          string              `json:"date"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	Items         []LineItem          `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	DiscountTotal decimal.Decimal     `json:"discount_total"`
	GSTTotal      decimal.Decimal     `json:"gst_total"`
	GrandTotal    decimal.Decimal     `json:"grand_total"`
	Status        types.InvoiceStatus `json:"status"`
	Template      string              `json:"template,omitempty"`
}

// Validate checks the fully-assembled record before it enters the ledger
func (i *Invoice) Validate() error {
	if strings.TrimSpace(i.InvoiceNo) == "" {
		return ierr.NewError("invoice number is required").
			WithHint("Invoice number must not be empty").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(i.Date) == "" {
		return ierr.NewError("invoice date is required").
			WithHint("Invoice date must not be empty").
			Mark(ierr.ErrValidation)
	}
	if len(i.Items) == 0 {
		return ierr.NewError("invoice has no line items").
			WithHint("An invoice needs at least one line item").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// StampTotals recomputes every derived amount from the line item inputs,
// overwriting whatever the caller submitted.
func (i *Invoice) StampTotals() {
	lines := make([]money.LineAmounts, len(i.Items))
	for idx := range i.Items {
		item := &i.Items[idx]
		la := money.ComputeLine(item.Quantity, item.Rate, item.DiscountPct, item.GSTPct)
		item.Subtotal = la.Subtotal
		item.DiscountAmount = la.Discount
		item.Taxable = la.Taxable
		item.GSTAmount = la.Tax
		item.LineTotal = la.Total
		lines[idx] = la
	}
	totals := money.SumLines(lines)
	i.Subtotal = totals.Subtotal
	i.DiscountTotal = totals.Discount
	i.GSTTotal = totals.Tax
	i.GrandTotal = totals.Total
}
