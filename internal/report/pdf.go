package report

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/domain/settings"
	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/logger"
)

// PDFRenderer renders single invoices as printable PDF documents.
// The invoice's template tag picks the layout variant; the core treats
// the tag as opaque and unknown values fall back to the simple layout.
type PDFRenderer struct {
	log *logger.Logger
}

func NewPDFRenderer(log *logger.Logger) *PDFRenderer {
	return &PDFRenderer{log: log}
}

// RenderInvoice writes the invoice as an A4 PDF at path. Company details
// come from the settings document.
func (r *PDFRenderer) RenderInvoice(inv *invoice.Invoice, st *settings.Settings, path string) error {
	template := strings.ToLower(inv.Template)
	compact := template == "compact"

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(186, 10, titleFor(template), "", 1, "C", false, 0, "")

	if st != nil && st.Company.Name != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(186, 6, st.Company.Name, "", 1, "C", false, 0, "")
		if st.Company.Address != "" {
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(186, 5, st.Company.Address, "", 1, "C", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(186, 6, fmt.Sprintf("Invoice No: %s", inv.InvoiceNo), "", 1, "L", false, 0, "")
	pdf.CellFormat(186, 6, fmt.Sprintf("Gate Pass: %s", inv.GatePassNo), "", 1, "L", false, 0, "")
	pdf.CellFormat(186, 6, fmt.Sprintf("Date: %s", inv.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(186, 6, fmt.Sprintf("Customer: %s", inv.CustomerName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	if compact {
		pdf.CellFormat(126, 7, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Total", "1", 1, "R", true, 0, "")
	} else {
		pdf.CellFormat(76, 7, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 7, "Rate", "1", 0, "R", true, 0, "")
		pdf.CellFormat(25, 7, "GST%", "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 7, "Total", "1", 1, "R", true, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	for _, item := range inv.Items {
		name := item.ProductName
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		if compact {
			pdf.CellFormat(126, 6, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, item.Quantity.String(), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, item.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
		} else {
			pdf.CellFormat(76, 6, name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, item.Quantity.String(), "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, item.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, item.GSTPct.String(), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, item.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(186, 6, fmt.Sprintf("Subtotal: %s", inv.Subtotal.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.CellFormat(186, 6, fmt.Sprintf("Discount: %s", inv.DiscountTotal.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.CellFormat(186, 6, fmt.Sprintf("GST: %s", inv.GSTTotal.StringFixed(2)), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(186, 8, fmt.Sprintf("Grand Total: %s", inv.GrandTotal.StringFixed(2)), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to write PDF %s", path).
			Mark(ierr.ErrIO)
	}
	r.log.Infow("invoice pdf written", "invoice_no", inv.InvoiceNo, "path", path)
	return nil
}

func titleFor(template string) string {
	switch template {
	case "detailed":
		return "Invoice - Detailed"
	case "compact":
		return "Invoice (Compact)"
	default:
		return "AVBilling Invoice"
	}
}
