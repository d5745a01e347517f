// Package money implements the fixed-point billing arithmetic for line
// items and invoice totals. All arithmetic runs on exact decimals; binary
// floating point is never used for monetary values.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineAmounts holds the derived monetary figures of a single line item,
// each already rounded to 2 decimal places.
type LineAmounts struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Totals holds the invoice-level figures, the element-wise sum of
// per-line amounts.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineInput is the caller-supplied side of a line item.
type LineInput struct {
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
}

// Round rounds a monetary value to 2 decimal places, half-up. Decimal's
// Round is half-away-from-zero, which is exactly half-up for the
// non-negative amounts this domain produces; half-up is the only
// tax-compliant rounding for currency here, not banker's rounding.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeLine derives the monetary figures of one line item.
// Negative inputs are not rejected here; validation is the ledger's
// responsibility. The taxable base is clamped at zero so a discount
// above 100% can never produce a negative tax.
func ComputeLine(quantity, rate, discountPct, taxPct decimal.Decimal) LineAmounts {
	subtotal := quantity.Mul(rate)
	discount := subtotal.Mul(discountPct).Div(hundred)
	taxable := subtotal.Sub(discount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := taxable.Mul(taxPct).Div(hundred)
	total := taxable.Add(tax)

	return LineAmounts{
		Subtotal: Round(subtotal),
		Discount: Round(discount),
		Taxable:  Round(taxable),
		Tax:      Round(tax),
		Total:    Round(total),
	}
}

// SumLines adds already-rounded per-line amounts into invoice totals.
// Summing pre-rounded values, rather than rounding the sum, keeps the
// invoice totals consistent with the per-line figures a user sees.
func SumLines(lines []LineAmounts) Totals {
	totals := Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, la := range lines {
		totals.Subtotal = totals.Subtotal.Add(la.Subtotal)
		totals.Discount = totals.Discount.Add(la.Discount)
		totals.Tax = totals.Tax.Add(la.Tax)
		totals.Total = totals.Total.Add(la.Total)
	}
	totals.Subtotal = Round(totals.Subtotal)
	totals.Discount = Round(totals.Discount)
	totals.Tax = Round(totals.Tax)
	totals.Total = Round(totals.Total)
	return totals
}

// ComputeInvoiceTotals derives invoice totals from raw line inputs
func ComputeInvoiceTotals(items []LineInput) Totals {
	lines := make([]LineAmounts, len(items))
	for i, item := range items {
		lines[i] = ComputeLine(item.Quantity, item.Rate, item.DiscountPct, item.TaxPct)
	}
	return SumLines(lines)
}
