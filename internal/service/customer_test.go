package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/testutil"
	"github.com/avbilling/avbilling/internal/types"
)

type CustomerServiceSuite struct {
	suite.Suite
	ctx          context.Context
	customerRepo *testutil.InMemoryCustomerStore
	service      CustomerService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.customerRepo = testutil.NewInMemoryCustomerStore()

	s.service = NewCustomerService(ServiceParams{
		Logger:       logger.NewNop(),
		CustomerRepo: s.customerRepo,
		InvoiceRepo:  testutil.NewInMemoryInvoiceStore(types.FiscalYear{StartYear: 2024}),
	})
}

func strPtr(v string) *string { return &v }

func (s *CustomerServiceSuite) TestAddOrUpdate() {
	testCases := []struct {
		name          string
		request       UpsertCustomerRequest
		expectedError bool
	}{
		{
			name: "valid_customer",
			request: UpsertCustomerRequest{
				CustomerID: "CUST001",
				Name:       "Amit Traders",
				Phone:      strPtr("9876543210"),
			},
		},
		{
			name:          "missing_id",
			request:       UpsertCustomerRequest{Name: "Amit Traders"},
			expectedError: true,
		},
		{
			name:          "missing_name",
			request:       UpsertCustomerRequest{CustomerID: "CUST001"},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.service.AddOrUpdate(s.ctx, tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				s.Nil(got)
			} else {
				s.NoError(err)
				s.NotNil(got)
				s.Equal(tc.request.CustomerID, got.CustomerID)
			}
		})
	}
}

func (s *CustomerServiceSuite) TestAddOrUpdateMergesOntoStoredRecord() {
	_, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders",
		Phone:      strPtr("9876543210"),
		Address:    strPtr("Lucknow, UP"),
	})
	s.NoError(err)

	// Omitted optional fields must keep their stored values
	got, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders Pvt Ltd",
		GSTNo:      strPtr("GSTN1234567890"),
	})
	s.NoError(err)
	s.Equal("Amit Traders Pvt Ltd", got.Name)
	s.Equal("9876543210", got.Phone)
	s.Equal("Lucknow, UP", got.Address)
	s.Equal("GSTN1234567890", got.GSTNo)

	customers, err := s.service.List(s.ctx)
	s.NoError(err)
	s.Len(customers, 1)
}

func (s *CustomerServiceSuite) TestAddOrUpdateNeverTouchesRollups() {
	_, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders",
	})
	s.NoError(err)

	stored, err := s.customerRepo.FindByID(s.ctx, "CUST001")
	s.NoError(err)
	stored.TotalPurchases = 7
	s.NoError(s.customerRepo.Upsert(s.ctx, stored))

	got, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders",
		Phone:      strPtr("1112223334"),
	})
	s.NoError(err)
	s.Equal(7, got.TotalPurchases)
}

func (s *CustomerServiceSuite) TestFindMissIsNotAnError() {
	got, err := s.service.FindByID(s.ctx, "CUST404")
	s.NoError(err)
	s.Nil(got)

	got, err = s.service.FindByName(s.ctx, "Nobody")
	s.NoError(err)
	s.Nil(got)
}

func (s *CustomerServiceSuite) TestDelete() {
	_, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders",
	})
	s.NoError(err)

	deleted, err := s.service.Delete(s.ctx, "CUST001")
	s.NoError(err)
	s.True(deleted)

	deleted, err = s.service.Delete(s.ctx, "CUST001")
	s.NoError(err)
	s.False(deleted)
}

func (s *CustomerServiceSuite) TestAddOrUpdatePropagatesPersistFailure() {
	s.customerRepo.SaveErr = ierr.NewError("disk full").Mark(ierr.ErrIO)

	got, err := s.service.AddOrUpdate(s.ctx, UpsertCustomerRequest{
		CustomerID: "CUST001",
		Name:       "Amit Traders",
	})
	s.Error(err)
	s.True(ierr.IsIO(err))
	s.Nil(got)
}
