package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

// Document number parsing and formatting. Sequences are always derived by
// max-scanning persisted numbers rather than keeping a running counter, so
// numbering survives restarts and externally edited ledger files.
// Malformed numbers are skipped, not fatal.

// FormatInvoiceNumber builds "<prefix>NNNN" with a 4-digit sequence
func FormatInvoiceNumber(prefix string, seq int) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

// InvoiceSequence extracts the numeric suffix of an invoice number with
// the given fiscal-year prefix, e.g. "FY_2024-2025/INV/0003" -> 3.
func InvoiceSequence(invoiceNo, prefix string) (int, bool) {
	if !strings.HasPrefix(invoiceNo, prefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(invoiceNo, prefix))
	if err != nil {
		return 0, false
	}
	return seq, true
}

// FormatGatePassNumber builds "GP-<YYYYMMDD>-NNN" with a 3-digit sequence
func FormatGatePassNumber(dateKey string, seq int) string {
	return fmt.Sprintf("GP-%s-%03d", dateKey, seq)
}

// GatePassSequence extracts the sequence of a gate pass number issued for
// the given compact date key, e.g. "GP-20240401-002" -> 2.
func GatePassSequence(gatePassNo, dateKey string) (int, bool) {
	prefix := "GP-" + dateKey + "-"
	if !strings.HasPrefix(gatePassNo, prefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(gatePassNo, prefix))
	if err != nil {
		return 0, false
	}
	return seq, true
}
