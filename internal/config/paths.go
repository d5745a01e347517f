package config

import (
	"path/filepath"

	"github.com/avbilling/avbilling/internal/types"
)

// Paths resolves the filesystem locations of every persisted document.
// Exactly one process is assumed to own these files at a time.
type Paths struct {
	DataDir string
}

func NewPaths(cfg *Configuration) Paths {
	return Paths{DataDir: cfg.DataDir}
}

// Customers returns the customer registry document path
func (p Paths) Customers() string {
	return filepath.Join(p.DataDir, "customers.json")
}

// Products returns the product registry document path
func (p Paths) Products() string {
	return filepath.Join(p.DataDir, "products.json")
}

// InvoicesDir returns the directory holding one ledger document per fiscal year
func (p Paths) InvoicesDir() string {
	return filepath.Join(p.DataDir, "invoices")
}

// Ledger returns the ledger document path for the given fiscal year
func (p Paths) Ledger(fy types.FiscalYear) string {
	return filepath.Join(p.InvoicesDir(), fy.FileName())
}

// Settings returns the settings document path
func (p Paths) Settings() string {
	return filepath.Join(p.DataDir, "settings.json")
}

// BackupsDir returns the directory where backup archives are written
func (p Paths) BackupsDir() string {
	return filepath.Join(p.DataDir, "backups")
}
