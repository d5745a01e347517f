package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYearOf(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{name: "april_first_starts_new_year", date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), expected: 2024},
		{name: "march_belongs_to_previous_year", date: time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), expected: 2024},
		{name: "january_belongs_to_previous_year", date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), expected: 2024},
		{name: "december_belongs_to_current_year", date: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), expected: 2024},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FiscalYearOf(tc.date).StartYear)
		})
	}
}

func TestFiscalYearLabels(t *testing.T) {
	fy := FiscalYear{StartYear: 2024}

	assert.Equal(t, "FY_2024-2025", fy.Label())
	assert.Equal(t, "FY_2024-2025/INV/", fy.InvoicePrefix())
	assert.Equal(t, "FY_2024-2025.json", fy.FileName())
}

func TestInvoiceStatusValidate(t *testing.T) {
	assert.NoError(t, InvoiceStatusFinal.Validate())
	assert.NoError(t, InvoiceStatusCancelled.Validate())
	assert.Error(t, InvoiceStatus("draft").Validate())
	assert.Error(t, InvoiceStatus("").Validate())
}

func TestLogLevelValidate(t *testing.T) {
	assert.True(t, LogLevelDebug.Validate())
	assert.True(t, LogLevelError.Validate())
	assert.False(t, LogLevel("trace").Validate())
}
