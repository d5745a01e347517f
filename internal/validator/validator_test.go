package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

type sampleRequest struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{ID: "CUST001", Name: "Amit Traders"}))

	err := ValidateRequest(sampleRequest{Name: "Amit Traders"})
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestGetReturnsSharedInstance(t *testing.T) {
	assert.Same(t, Get(), Get())
}
