package recognizer

import (
	"strings"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// Engine runs the parsing strategies in fixed priority order. The first
// strategy producing at least one candidate wins; later strategies are not run
// and results are never merged across strategies.
type Engine struct {
	strategies []Strategy
	logger     logging.Logger
}

// NewEngine creates an Engine with the default strategy order: tabular, then
// line-grouped, then regex-sweep.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Engine{
		strategies: []Strategy{
			NewTabularStrategy(logger),
			NewLineGroupStrategy(logger),
			NewRegexSweepStrategy(logger),
		},
		logger: logger,
	}
}

// NewEngineWithStrategies creates an Engine with an explicit strategy order,
// used by tests and by callers overriding a strategy policy.
func NewEngineWithStrategies(logger logging.Logger, strategies ...Strategy) *Engine {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Engine{strategies: strategies, logger: logger}
}

// Recognize splits extracted text into trimmed non-empty lines and runs the
// strategies over them. It returns the winning strategy's surviving
// candidates, the strategy name, and accumulated warnings. An empty surviving
// set is reported as a single batch-level warning, never an error: absence of
// transactions is not fatal to the batch.
func (e *Engine) Recognize(text string, profile *bankprofile.Profile) ([]Candidate, string, []models.ImportError) {
	lines := SplitLines(text)

	for _, strategy := range e.strategies {
		candidates, warnings := strategy.Recognize(lines, profile)
		if len(candidates) == 0 {
			continue
		}

		survivors := filterCandidates(candidates)
		e.logger.Debug("Strategy produced candidates",
			logging.Field{Key: logging.FieldStrategy, Value: strategy.Name()},
			logging.Field{Key: logging.FieldCount, Value: len(survivors)})

		if len(survivors) == 0 {
			warnings = append(warnings, noTransactionsWarning())
		}
		return survivors, strategy.Name(), warnings
	}

	return nil, "", []models.ImportError{noTransactionsWarning()}
}

// SplitLines turns extracted text into the trimmed, non-empty lines the
// strategies operate on.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// filterCandidates drops candidates with a missing date or a zero amount.
// These are filtered negatives, not errors.
func filterCandidates(candidates []Candidate) []Candidate {
	survivors := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RawDate == "" || c.RawAmount == "" || isZeroAmount(c.RawAmount) {
			continue
		}
		survivors = append(survivors, c)
	}
	return survivors
}

func noTransactionsWarning() models.ImportError {
	return models.ImportError{
		Message:    "no valid transactions could be extracted",
		Severity:   models.SeverityWarning,
		Suggestion: "check that the statement lists transactions as one row or block per entry",
	}
}
