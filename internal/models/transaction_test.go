package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Plain integer", "500", "500", false},
		{"Two decimals", "500.00", "500", false},
		{"Indian grouping", "1,00,000.50", "100000.5", false},
		{"Western grouping", "1,200.00", "1200", false},
		{"Negative", "-250.75", "-250.75", false},
		{"Rupee symbol", "₹1,500", "1500", false},
		{"INR marker", "INR 900.00", "900", false},
		{"Rs prefix", "Rs. 42", "42", false},
		{"Accounting parens", "(300.00)", "-300", false},
		{"Apostrophe separator", "1'234.50", "1234.5", false},
		{"Surrounding whitespace", "  75.25  ", "75.25", false},
		{"Empty", "", "", true},
		{"Only sign", "-", "", true},
		{"Not a number", "abc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}

func TestDirectionHelpers(t *testing.T) {
	debit := ParsedTransaction{Direction: DirectionDebit}
	credit := ParsedTransaction{Direction: DirectionCredit}

	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}

func TestDateTime(t *testing.T) {
	tx := ParsedTransaction{Date: "2024-07-15"}
	dt, err := tx.DateTime()
	assert.NoError(t, err)
	assert.Equal(t, 2024, dt.Year())
	assert.Equal(t, 15, dt.Day())

	bad := ParsedTransaction{Date: "15/07/2024"}
	_, err = bad.DateTime()
	assert.Error(t, err)
}

func TestDedupKey(t *testing.T) {
	a := ParsedTransaction{
		Date:        "2024-07-15",
		Description: "ATM WDL",
		Amount:      decimal.NewFromInt(500),
	}
	b := ParsedTransaction{
		Date:        "2024-07-15",
		Description: "atm wdl",
		Amount:      decimal.RequireFromString("500.00"),
	}
	c := ParsedTransaction{
		Date:        "2024-07-16",
		Description: "ATM WDL",
		Amount:      decimal.NewFromInt(500),
	}

	// Case and decimal precision do not distinguish transactions
	assert.Equal(t, a.DedupKey(), b.DedupKey())
	assert.NotEqual(t, a.DedupKey(), c.DedupKey())
}
