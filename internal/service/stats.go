package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/money"
)

// StatsService recomputes customer rollups from the invoice ledger
type StatsService interface {
	RecomputeCustomerTotals(ctx context.Context) error
}

type statsService struct {
	ServiceParams
}

func NewStatsService(params ServiceParams) StatsService {
	return &statsService{ServiceParams: params}
}

// RecomputeCustomerTotals groups ledger invoices by customer id and stamps
// purchase count and cumulative spend onto every registry customer.
// Customers without invoices get explicit zeros. The registry is persisted
// exactly once.
func (s *statsService) RecomputeCustomerTotals(ctx context.Context) error {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return err
	}
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return err
	}

	grouped := lo.GroupBy(
		lo.Filter(invoices, func(inv *invoice.Invoice, _ int) bool {
			return inv.CustomerID != ""
		}),
		func(inv *invoice.Invoice) string { return inv.CustomerID },
	)

	for _, c := range customers {
		group := grouped[c.CustomerID]
		total := decimal.Zero
		for _, inv := range group {
			total = total.Add(inv.GrandTotal)
		}
		c.TotalPurchases = len(group)
		c.TotalAmount = money.Round(total)
	}

	if err := s.CustomerRepo.ReplaceAll(ctx, customers); err != nil {
		return err
	}
	s.Logger.Infow("customer totals recomputed",
		"customers", len(customers),
		"invoices", len(invoices))
	return nil
}
