// Package recognizer applies an ordered set of parsing strategies to extracted
// statement text and produces candidate transactions. Exactly one strategy's
// output is used per import: strategies run in fixed priority order and the
// first one yielding at least one candidate wins.
package recognizer

import (
	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/models"
)

// Candidate is an unvalidated transaction guess produced by one parsing
// strategy. It is strategy-scoped and transient: the normalizer either turns
// it into a ParsedTransaction or rejects it.
type Candidate struct {
	RawDate        string
	RawAmount      string
	RawBalance     string
	RawDescription string
	Line           int // 1-based line in the extracted text, 0 when unknown
	Confidence     float64
	Hint           models.Direction // direction cue from column or text, "" when absent
}

// Strategy is one parsing algorithm. Implementations must be pure functions of
// their inputs so that a re-run over the same text yields the same candidates.
type Strategy interface {
	// Name identifies the strategy for logging and confidence reporting.
	Name() string

	// Recognize scans the trimmed, non-empty lines of a statement and returns
	// candidate transactions plus row-level warnings.
	Recognize(lines []string, profile *bankprofile.Profile) ([]Candidate, []models.ImportError)
}

// AmountSelection picks which of the amount-pattern matches on a line is the
// transaction amount, returning its index. The default, SelectLastAmount,
// encodes the heuristic that running-balance columns precede the transaction
// amount in many exported layouts. Its correctness is format-dependent, which
// is why it is a policy rather than a hardcoded rule.
type AmountSelection func(amounts []string) int

// SelectLastAmount returns the index of the last amount occurrence on a line.
func SelectLastAmount(amounts []string) int {
	return len(amounts) - 1
}

// SelectFirstAmount returns the index of the first amount occurrence. Useful
// for layouts that put the transaction amount before the running balance.
func SelectFirstAmount(amounts []string) int {
	return 0
}
