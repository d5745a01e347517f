package config

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/domain/settings"
	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/storage"
	"github.com/avbilling/avbilling/internal/types"
)

// EnsureInitialSetup guarantees the data directories and documents exist
// before any repository touches them. Existing non-empty documents are
// left untouched; a brand new installation gets the sample master data.
func EnsureInitialSetup(paths Paths) error {
	for _, dir := range []string{paths.DataDir, paths.InvoicesDir(), paths.BackupsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to create directory %s", dir).
				Mark(ierr.ErrIO)
		}
	}

	if err := seedIfAbsent(paths.Settings(), settings.Default()); err != nil {
		return err
	}
	if err := seedIfAbsent(paths.Customers(), sampleCustomers()); err != nil {
		return err
	}
	if err := seedIfAbsent(paths.Products(), sampleProducts()); err != nil {
		return err
	}

	fy := types.CurrentFiscalYear()
	return seedIfAbsent(paths.Ledger(fy), emptyLedger())
}

func seedIfAbsent(path string, doc any) error {
	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	return storage.Save(path, doc)
}

func sampleCustomers() map[string][]*customer.Customer {
	return map[string][]*customer.Customer{
		"customers": {
			{
				CustomerID: "CUST001",
				Name:       "Amit Traders",
				Phone:      "9876543210",
				Address:    "Lucknow, UP",
				GSTNo:      "GSTN1234567890",
			},
		},
	}
}

func sampleProducts() map[string][]*product.Product {
	return map[string][]*product.Product{
		"products": {
			{
				ProductCode: "PROD001",
				ProductName: "Chand Besan",
				Rate1Kg:     decimal.NewFromInt(90),
				RateHalfKg:  decimal.NewFromInt(50),
				GSTRate:     decimal.NewFromInt(5),
				Stock:       decimal.NewFromInt(1000),
			},
		},
	}
}

func emptyLedger() map[string][]*invoice.Invoice {
	return map[string][]*invoice.Invoice{
		"invoices": {},
	}
}
