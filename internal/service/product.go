package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/validator"
)

// ProductService exposes the product registry operations
type ProductService interface {
	List(ctx context.Context) ([]*product.Product, error)
	FindByCode(ctx context.Context, code string) (*product.Product, error)
	FindByName(ctx context.Context, name string) (*product.Product, error)
	AddOrUpdate(ctx context.Context, req UpsertProductRequest) (*product.Product, error)
	Delete(ctx context.Context, code string) (bool, error)
}

// UpsertProductRequest carries caller input for AddOrUpdate. Optional
// fields left nil preserve whatever is already stored.
type UpsertProductRequest struct {
	ProductCode string `validate:"required"`
	ProductName string `validate:"required"`
	Rate1Kg     *decimal.Decimal
	RateHalfKg  *decimal.Decimal
	GSTRate     *decimal.Decimal
	Stock       *decimal.Decimal
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) List(ctx context.Context) ([]*product.Product, error) {
	return s.ProductRepo.List(ctx)
}

func (s *productService) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	return s.ProductRepo.FindByCode(ctx, code)
}

func (s *productService) FindByName(ctx context.Context, name string) (*product.Product, error) {
	return s.ProductRepo.FindByName(ctx, name)
}

func (s *productService) AddOrUpdate(ctx context.Context, req UpsertProductRequest) (*product.Product, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.ProductRepo.FindByCode(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}

	prod := req.overlay(existing)
	if err := prod.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Upsert(ctx, prod); err != nil {
		return nil, err
	}
	s.Logger.Infow("product saved", "product_code", prod.ProductCode, "updated", existing != nil)
	return prod, nil
}

func (s *productService) Delete(ctx context.Context, code string) (bool, error) {
	deleted, err := s.ProductRepo.Delete(ctx, code)
	if err != nil {
		return false, err
	}
	if deleted {
		s.Logger.Infow("product deleted", "product_code", code)
	}
	return deleted, nil
}

func (req UpsertProductRequest) overlay(existing *product.Product) *product.Product {
	prod := &product.Product{}
	if existing != nil {
		*prod = *existing
	}
	prod.ProductCode = strings.TrimSpace(req.ProductCode)
	prod.ProductName = strings.TrimSpace(req.ProductName)
	if req.Rate1Kg != nil {
		prod.Rate1Kg = *req.Rate1Kg
	}
	if req.RateHalfKg != nil {
		prod.RateHalfKg = *req.RateHalfKg
	}
	if req.GSTRate != nil {
		prod.GSTRate = *req.GSTRate
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	return prod
}
