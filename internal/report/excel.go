package report

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/logger"
)

// ExcelExporter writes ledger exports as xlsx workbooks
type ExcelExporter struct {
	log *logger.Logger
}

func NewExcelExporter(log *logger.Logger) *ExcelExporter {
	return &ExcelExporter{log: log}
}

// ExportInvoices writes one row per invoice with its stamped totals
func (e *ExcelExporter) ExportInvoices(invoices []*invoice.Invoice, path string) error {
	headers := []string{"Date", "Invoice No", "Customer", "Subtotal", "Discount", "GST", "Total"}
	rows := make([][]interface{}, len(invoices))
	for i, inv := range invoices {
		rows[i] = []interface{}{
			inv.Date,
			inv.InvoiceNo,
			inv.CustomerName,
			inv.Subtotal.InexactFloat64(),
			inv.DiscountTotal.InexactFloat64(),
			inv.GSTTotal.InexactFloat64(),
			inv.GrandTotal.InexactFloat64(),
		}
	}
	if err := e.writeSheet("Invoices", headers, rows, path); err != nil {
		return err
	}
	e.log.Infow("invoice export written", "path", path, "rows", len(rows))
	return nil
}

// ExportSales writes per-product sales aggregates
func (e *ExcelExporter) ExportSales(invoices []*invoice.Invoice, path string) error {
	sales := SalesPerProduct(invoices)

	names := make([]string, 0, len(sales))
	for name := range sales {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := []string{"Product", "Quantity", "GST", "Revenue"}
	rows := make([][]interface{}, len(names))
	for i, name := range names {
		s := sales[name]
		rows[i] = []interface{}{
			name,
			s.Quantity.InexactFloat64(),
			s.GST.InexactFloat64(),
			s.Revenue.InexactFloat64(),
		}
	}
	if err := e.writeSheet("Sales", headers, rows, path); err != nil {
		return err
	}
	e.log.Infow("sales export written", "path", path, "rows", len(rows))
	return nil
}

func (e *ExcelExporter) writeSheet(sheet string, headers []string, rows [][]interface{}, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return ierr.WithError(err).Mark(ierr.ErrSystem)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return ierr.WithError(err).Mark(ierr.ErrSystem)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrSystem)
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return ierr.WithError(err).Mark(ierr.ErrSystem)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return ierr.WithError(err).Mark(ierr.ErrSystem)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to write workbook %s", path).
			Mark(ierr.ErrIO)
	}
	return nil
}
