package types

import (
	"fmt"
	"time"
)

// FiscalYear is a 12-month accounting period beginning April 1.
// A fiscal year starting April of year Y is labeled FY_Y-(Y+1); dates in
// January through March belong to the fiscal year that started the
// previous April.
type FiscalYear struct {
	StartYear int
}

// FiscalYearOf returns the fiscal year containing the given date
func FiscalYearOf(t time.Time) FiscalYear {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return FiscalYear{StartYear: year}
}

// CurrentFiscalYear returns the fiscal year containing today
func CurrentFiscalYear() FiscalYear {
	return FiscalYearOf(time.Now())
}

// Label returns the FY_Y-(Y+1) form used in invoice numbers and file names
func (fy FiscalYear) Label() string {
	return fmt.Sprintf("FY_%d-%d", fy.StartYear, fy.StartYear+1)
}

// InvoicePrefix returns the prefix shared by all invoice numbers of this
// fiscal year, e.g. "FY_2024-2025/INV/"
func (fy FiscalYear) InvoicePrefix() string {
	return fy.Label() + "/INV/"
}

// FileName returns the ledger document name for this fiscal year
func (fy FiscalYear) FileName() string {
	return fy.Label() + ".json"
}
