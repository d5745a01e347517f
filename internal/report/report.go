// Package report derives presentation-layer summaries and export files
// from the invoice ledger. Reports are read-only consumers of the core;
// they never write back into the ledger or registries.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/money"
	"github.com/avbilling/avbilling/internal/types"
)

// MonthlyStat aggregates one calendar month of the ledger
type MonthlyStat struct {
	Invoices int
	Revenue  decimal.Decimal
}

// ProductSales aggregates the ledger per product name
type ProductSales struct {
	Quantity decimal.Decimal
	GST      decimal.Decimal
	Revenue  decimal.Decimal
}

// MonthlySummary groups invoices by "YYYY-MM" month key. Invoices whose
// date fails to parse land under the empty key rather than being dropped.
func MonthlySummary(invoices []*invoice.Invoice) map[string]MonthlyStat {
	result := make(map[string]MonthlyStat)
	for _, inv := range invoices {
		stat := result[monthKey(inv.Date)]
		stat.Invoices++
		stat.Revenue = money.Round(stat.Revenue.Add(inv.GrandTotal))
		result[monthKey(inv.Date)] = stat
	}
	return result
}

// SalesPerProduct sums quantity, GST and revenue per product across all
// line items. Items without a name fall back to the product code.
func SalesPerProduct(invoices []*invoice.Invoice) map[string]ProductSales {
	result := make(map[string]ProductSales)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			name := item.ProductName
			if name == "" {
				name = item.ProductCode
			}
			sales := result[name]
			sales.Quantity = sales.Quantity.Add(item.Quantity)
			sales.GST = money.Round(sales.GST.Add(item.GSTAmount))
			sales.Revenue = money.Round(sales.Revenue.Add(item.LineTotal))
			result[name] = sales
		}
	}
	return result
}

func monthKey(date string) string {
	t, err := time.Parse(types.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}
