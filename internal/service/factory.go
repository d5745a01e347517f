package service

import (
	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/domain/invoice"
	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/logger"
)

// ServiceParams bundles the dependencies shared by all services
type ServiceParams struct {
	Logger *logger.Logger

	CustomerRepo customer.Repository
	ProductRepo  product.Repository
	InvoiceRepo  invoice.Repository
	SettingsRepo settings.Repository
}
