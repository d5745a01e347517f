package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceValidate(t *testing.T) {
	valid := func() *Invoice {
		return &Invoice{
			InvoiceNo: "FY_2024-2025/INV/0001",
			Date:      "2024-05-10",
			Items:     []LineItem{{ProductName: "Chand Besan", Quantity: dec("1"), Rate: dec("90")}},
		}
	}

	testCases := []struct {
		name   string
		mutate func(*Invoice)
		valid  bool
	}{
		{name: "complete_invoice", mutate: func(*Invoice) {}, valid: true},
		{name: "missing_number", mutate: func(i *Invoice) { i.InvoiceNo = "  " }, valid: false},
		{name: "missing_date", mutate: func(i *Invoice) { i.Date = "" }, valid: false},
		{name: "no_items", mutate: func(i *Invoice) { i.Items = nil }, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := valid()
			tc.mutate(inv)
			err := inv.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			}
		})
	}
}

func TestStampTotalsOverwritesSubmittedAmounts(t *testing.T) {
	inv := &Invoice{
		Items: []LineItem{
			{
				ProductName: "Chand Besan",
				Quantity:    dec("2"),
				Rate:        dec("100"),
				DiscountPct: dec("5"),
				GSTPct:      dec("5"),
				// Caller-submitted derived figures must be discarded
				Subtotal:  dec("999"),
				LineTotal: dec("999"),
			},
		},
		GrandTotal: dec("999"),
	}

	inv.StampTotals()

	item := inv.Items[0]
	assert.Equal(t, "200.00", item.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", item.DiscountAmount.StringFixed(2))
	assert.Equal(t, "190.00", item.Taxable.StringFixed(2))
	assert.Equal(t, "9.50", item.GSTAmount.StringFixed(2))
	assert.Equal(t, "199.50", item.LineTotal.StringFixed(2))

	assert.Equal(t, "200.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", inv.DiscountTotal.StringFixed(2))
	assert.Equal(t, "9.50", inv.GSTTotal.StringFixed(2))
	assert.Equal(t, "199.50", inv.GrandTotal.StringFixed(2))
}

func TestStampTotalsSumsAcrossItems(t *testing.T) {
	inv := &Invoice{
		Items: []LineItem{
			{ProductName: "Besan 1kg", Quantity: dec("1"), Rate: dec("90"), GSTPct: dec("5")},
			{ProductName: "Besan 500g", Quantity: dec("2"), Rate: dec("50"), GSTPct: dec("5")},
		},
	}

	inv.StampTotals()

	assert.Equal(t, "190.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", inv.DiscountTotal.StringFixed(2))
	assert.Equal(t, "9.50", inv.GSTTotal.StringFixed(2))
	assert.Equal(t, "199.50", inv.GrandTotal.StringFixed(2))
}
