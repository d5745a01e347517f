package types

import (
	"github.com/samber/lo"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusFinal is the default state of a saved invoice
	InvoiceStatusFinal InvoiceStatus = "final"
	// InvoiceStatusCancelled marks an invoice that was voided after issue.
	// Cancelled invoices stay in the ledger; they are never deleted or renumbered.
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusFinal,
		InvoiceStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHintf("Invoice status must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Date layouts used across ledger documents and document numbers
const (
	// DateLayout is the calendar date format stored on invoices
	DateLayout = "2006-01-02"
	// GatePassDateLayout is the compact date key embedded in gate pass numbers
	GatePassDateLayout = "20060102"
)
