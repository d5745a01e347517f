package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/logger"
)

func TestExportInvoicesWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.xlsx")
	exporter := NewExcelExporter(logger.NewNop())

	require.NoError(t, exporter.ExportInvoices(ledgerFixture(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Invoices", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	firstNo, err := f.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "FY_2024-2025/INV/0001", firstNo)

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestExportSalesWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	exporter := NewExcelExporter(logger.NewNop())

	require.NoError(t, exporter.ExportSales(ledgerFixture(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Product rows are written in sorted order
	first, err := f.GetCellValue("Sales", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Chand Besan", first)

	second, err := f.GetCellValue("Sales", "A3")
	require.NoError(t, err)
	assert.Equal(t, "PROD002", second)
}

func TestRenderInvoicePDF(t *testing.T) {
	testCases := []struct {
		name     string
		template string
	}{
		{name: "simple", template: ""},
		{name: "detailed", template: "detailed"},
		{name: "compact", template: "compact"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "invoice.pdf")
			renderer := NewPDFRenderer(logger.NewNop())

			inv := ledgerFixture()[0]
			inv.Template = tc.template
			require.NoError(t, renderer.RenderInvoice(inv, settings.Default(), path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, "%PDF", string(data[:4]))
		})
	}
}
