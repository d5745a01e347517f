package service

import (
	"context"
	"strings"

	"github.com/avbilling/avbilling/internal/domain/customer"
	"github.com/avbilling/avbilling/internal/validator"
)

// CustomerService exposes the customer registry operations
type CustomerService interface {
	List(ctx context.Context) ([]*customer.Customer, error)
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
	FindByName(ctx context.Context, name string) (*customer.Customer, error)
	AddOrUpdate(ctx context.Context, req UpsertCustomerRequest) (*customer.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UpsertCustomerRequest carries caller input for AddOrUpdate. Optional
// fields left nil preserve whatever is already stored; the purchase
// rollups are never writable through this request.
type UpsertCustomerRequest struct {
	CustomerID string  `validate:"required"`
	Name       string  `validate:"required"`
	Phone      *string `validate:"omitempty"`
	Address    *string `validate:"omitempty"`
	GSTNo      *string `validate:"omitempty"`
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.CustomerRepo.List(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	return s.CustomerRepo.FindByID(ctx, id)
}

func (s *customerService) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	return s.CustomerRepo.FindByName(ctx, name)
}

func (s *customerService) AddOrUpdate(ctx context.Context, req UpsertCustomerRequest) (*customer.Customer, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.CustomerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	cust := req.overlay(existing)
	if err := cust.Validate(); err != nil {
		return nil, err
	}

	if err := s.CustomerRepo.Upsert(ctx, cust); err != nil {
		return nil, err
	}
	s.Logger.Infow("customer saved", "customer_id", cust.CustomerID, "updated", existing != nil)
	return cust, nil
}

func (s *customerService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.CustomerRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.Logger.Infow("customer deleted", "customer_id", id)
	}
	return deleted, nil
}

// overlay builds a fresh record from the stored one plus the fields the
// request actually carries. Stored records are treated as immutable
// values; an update never mutates shared state in place.
func (req UpsertCustomerRequest) overlay(existing *customer.Customer) *customer.Customer {
	cust := &customer.Customer{}
	if existing != nil {
		*cust = *existing
	}
	cust.CustomerID = strings.TrimSpace(req.CustomerID)
	cust.Name = strings.TrimSpace(req.Name)
	if req.Phone != nil {
		cust.Phone = *req.Phone
	}
	if req.Address != nil {
		cust.Address = *req.Address
	}
	if req.GSTNo != nil {
		cust.GSTNo = *req.GSTNo
	}
	return cust
}
