// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether money moved into or out of the account.
// It is carried separately from the amount: Amount is always a non-negative
// magnitude and the sign lives here.
type Direction string

// Document is the raw input handed to the import pipeline. It only lives for
// the duration of one import call.
type Document struct {
	Name      string
	MediaType string // MediaTypeCSV or MediaTypePDF
	Size      int64
	Content   []byte
}

// ParsedTransaction is the durable output unit of the import pipeline.
type ParsedTransaction struct {
	ID           string          `csv:"Id"`
	Date         string          `csv:"Date"` // ISO YYYY-MM-DD, always a valid calendar date
	Description  string          `csv:"Description"`
	Amount       decimal.Decimal `csv:"Amount"` // magnitude, never negative
	Direction    Direction       `csv:"Direction"`
	Category     string          `csv:"Category"`
	Balance      decimal.Decimal `csv:"Balance"` // running balance when recoverable
	HasBalance   bool            `csv:"-"`
	Confidence   float64         `csv:"Confidence"`
	IsReconciled bool            `csv:"Reconciled"`
}

// IsDebit returns true if the transaction moved money out of the account.
func (t *ParsedTransaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction moved money into the account.
func (t *ParsedTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// DateTime parses the canonical ISO date. The normalizer guarantees the field
// holds a valid date, so errors only occur on hand-built values.
func (t *ParsedTransaction) DateTime() (time.Time, error) {
	return time.Parse("2006-01-02", t.Date)
}

// DedupKey identifies a transaction for duplicate elimination within a batch.
func (t *ParsedTransaction) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", t.Date, strings.ToLower(t.Description), t.Amount.StringFixed(2))
}

// ParseAmount converts a raw amount string to a decimal, tolerating the
// thousands separators, currency markers and stray whitespace seen in
// statement exports. The sign is preserved; magnitude/direction resolution is
// the normalizer's job.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)

	// Currency markers commonly present in exported statements
	for _, marker := range []string{"INR", "Rs.", "Rs", "₹", "$", "€", "£", "USD", "EUR"} {
		amount = strings.ReplaceAll(amount, marker, "")
	}

	// Thousands separators, including apostrophes and non-breaking spaces
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, " ", "")

	// Accounting notation for negatives
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		amount = "-" + strings.Trim(amount, "()")
	}

	if amount == "" || amount == "-" {
		return decimal.Zero, fmt.Errorf("empty amount %q", amountStr)
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable amount %q: %w", amountStr, err)
	}
	return dec, nil
}
