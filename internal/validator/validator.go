package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags,
// returning a validation error with per-field details on failure
func ValidateRequest(req interface{}) error {
	if err := Get().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
