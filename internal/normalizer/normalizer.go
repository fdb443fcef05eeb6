// Package normalizer turns candidate transactions into validated
// ParsedTransactions: canonical dates, non-negative amounts with an explicit
// direction, and cleaned descriptions.
package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
	"finsight/statement-import/internal/recognizer"
)

// MaxDescriptionLength caps transaction descriptions, ellipsis included.
const MaxDescriptionLength = 100

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalizer validates and standardizes candidates.
type Normalizer struct {
	logger logging.Logger
}

// New creates a Normalizer.
func New(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Normalizer{logger: logger}
}

// Normalize converts one candidate into a ParsedTransaction or rejects it.
// The returned transaction has no ID or category yet; the orchestrator
// assigns both.
func (n *Normalizer) Normalize(c recognizer.Candidate) (models.ParsedTransaction, error) {
	date, err := NormalizeDate(c.RawDate)
	if err != nil {
		return models.ParsedTransaction{}, &importerror.ParseError{
			Stage: "normalize", Field: "date", Value: c.RawDate, Err: err,
		}
	}

	amount, err := models.ParseAmount(c.RawAmount)
	if err != nil {
		return models.ParsedTransaction{}, &importerror.ParseError{
			Stage: "normalize", Field: "amount", Value: c.RawAmount, Err: err,
		}
	}
	if amount.IsZero() {
		return models.ParsedTransaction{}, &importerror.ParseError{
			Stage: "normalize", Field: "amount", Value: c.RawAmount, Err: fmt.Errorf("zero amount"),
		}
	}

	// The sign seeds direction only when no explicit cue exists; the stored
	// amount is always the magnitude.
	direction := c.Hint
	if amount.IsNegative() {
		direction = models.DirectionDebit
	}
	if direction == "" {
		direction = models.DirectionCredit
	}

	tx := models.ParsedTransaction{
		Date:        date,
		Description: CleanDescription(c.RawDescription),
		Amount:      amount.Abs(),
		Direction:   direction,
		Confidence:  c.Confidence,
	}

	if c.RawBalance != "" {
		if balance, err := models.ParseAmount(c.RawBalance); err == nil {
			tx.Balance = balance
			tx.HasBalance = true
		}
	}

	return tx, nil
}

// CleanDescription collapses whitespace and truncates to MaxDescriptionLength
// with an ellipsis marker when the text was cut.
func CleanDescription(desc string) string {
	desc = strings.TrimSpace(whitespaceRun.ReplaceAllString(desc, " "))
	runes := []rune(desc)
	if len(runes) <= MaxDescriptionLength {
		return desc
	}
	return string(runes[:MaxDescriptionLength-3]) + "..."
}
