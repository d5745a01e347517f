package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/avbilling/avbilling/internal/backup"
	"github.com/avbilling/avbilling/internal/config"
	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/report"
	"github.com/avbilling/avbilling/internal/repository/filestore"
	"github.com/avbilling/avbilling/internal/service"
	"github.com/avbilling/avbilling/internal/types"
)

type jobFlags struct {
	recomputeStats bool
	exportInvoices string
	exportSales    string
	pdfInvoice     string
	pdfOut         string
	createBackup   bool
}

func main() {
	var jobs jobFlags
	flag.BoolVar(&jobs.recomputeStats, "recompute-stats", false, "recompute customer purchase rollups from the ledger")
	flag.StringVar(&jobs.exportInvoices, "export-invoices", "", "write the fiscal year's invoices to the given xlsx path")
	flag.StringVar(&jobs.exportSales, "export-sales", "", "write per-product sales to the given xlsx path")
	flag.StringVar(&jobs.pdfInvoice, "pdf-invoice", "", "invoice number to render as PDF")
	flag.StringVar(&jobs.pdfOut, "pdf-out", "invoice.pdf", "output path for -pdf-invoice")
	flag.BoolVar(&jobs.createBackup, "backup", false, "archive the data directory")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			newDataLayout,
			newLogger,
			newCustomerRepository,
			newProductRepository,
			newInvoiceRepository,
			newSettingsRepository,
			newServiceParams,
			service.NewCustomerService,
			service.NewProductService,
			service.NewInvoiceService,
			service.NewStatsService,
			report.NewExcelExporter,
			report.NewPDFRenderer,
			newBackupManager,
		),
		fx.Supply(jobs),
		fx.Invoke(run),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = app.Stop(ctx)
}

// newDataLayout resolves the document paths and guarantees the data
// directory is usable before any repository loads from it
func newDataLayout(cfg *config.Configuration) (config.Paths, error) {
	paths := config.NewPaths(cfg)
	if err := config.EnsureInitialSetup(paths); err != nil {
		return config.Paths{}, err
	}
	return paths, nil
}

func newLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func newCustomerRepository(paths config.Paths, log *logger.Logger) (customer.Repository, error) {
	return filestore.NewCustomerRepository(paths.Customers(), log)
}

func newProductRepository(paths config.Paths, log *logger.Logger) (product.Repository, error) {
	return filestore.NewProductRepository(paths.Products(), log)
}

// The active ledger is the one matching the current date at process start
func newInvoiceRepository(paths config.Paths, log *logger.Logger) (invoice.Repository, error) {
	fy := types.CurrentFiscalYear()
	return filestore.NewInvoiceRepository(paths.Ledger(fy), fy, log)
}

func newSettingsRepository(paths config.Paths, log *logger.Logger) settings.Repository {
	return filestore.NewSettingsRepository(paths.Settings(), log)
}

func newServiceParams(
	log *logger.Logger,
	customers customer.Repository,
	products product.Repository,
	invoices invoice.Repository,
	settingsRepo settings.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		CustomerRepo: customers,
		ProductRepo:  products,
		InvoiceRepo:  invoices,
		SettingsRepo: settingsRepo,
	}
}

func newBackupManager(paths config.Paths, log *logger.Logger) *backup.Manager {
	return backup.NewManager(paths.DataDir, paths.BackupsDir(), log)
}

type runParams struct {
	fx.In

	Jobs     jobFlags
	Logger   *logger.Logger
	Invoices service.InvoiceService
	Stats    service.StatsService
	Ledger   invoice.Repository
	Settings settings.Repository
	Excel    *report.ExcelExporter
	PDF      *report.PDFRenderer
	Backup   *backup.Manager
}

func run(p runParams) error {
	ctx := context.Background()
	p.Logger.Infow("avbilling core ready", "fiscal_year", p.Ledger.FiscalYear().Label())

	if p.Jobs.recomputeStats {
		if err := p.Stats.RecomputeCustomerTotals(ctx); err != nil {
			return err
		}
	}

	if p.Jobs.exportInvoices != "" || p.Jobs.exportSales != "" {
		invoices, err := p.Invoices.List(ctx)
		if err != nil {
			return err
		}
		if p.Jobs.exportInvoices != "" {
			if err := p.Excel.ExportInvoices(invoices, p.Jobs.exportInvoices); err != nil {
				return err
			}
		}
		if p.Jobs.exportSales != "" {
			if err := p.Excel.ExportSales(invoices, p.Jobs.exportSales); err != nil {
				return err
			}
		}
	}

	if p.Jobs.pdfInvoice != "" {
		inv, err := p.Invoices.Get(ctx, p.Jobs.pdfInvoice)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("invoice %q not found in %s", p.Jobs.pdfInvoice, p.Ledger.FiscalYear().Label())
		}
		st, err := p.Settings.Get(ctx)
		if err != nil {
			return err
		}
		if err := p.PDF.RenderInvoice(inv, st, p.Jobs.pdfOut); err != nil {
			return err
		}
	}

	if p.Jobs.createBackup {
		if _, err := p.Backup.Create(); err != nil {
			return err
		}
	}
	return nil
}
