package recognizer

import (
	"strings"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// The sweep makes no structural assumptions at all, hence the lowest confidence.
const regexSweepConfidence = 0.6

// RegexSweepStrategy is the last resort: it scans every line independently for
// a date and amount co-occurrence. Descriptions are reduced to alphanumeric
// tokens since nothing is known about the surrounding layout.
type RegexSweepStrategy struct {
	logger logging.Logger
}

// NewRegexSweepStrategy creates a RegexSweepStrategy.
func NewRegexSweepStrategy(logger logging.Logger) *RegexSweepStrategy {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RegexSweepStrategy{logger: logger}
}

// Name identifies the strategy.
func (s *RegexSweepStrategy) Name() string {
	return "regex-sweep"
}

// Recognize implements Strategy.
func (s *RegexSweepStrategy) Recognize(lines []string, profile *bankprofile.Profile) ([]Candidate, []models.ImportError) {
	var candidates []Candidate

	for i, line := range lines {
		dateMatch := profile.DatePattern.FindString(line)
		if dateMatch == "" {
			continue
		}

		stripped := strings.Replace(line, dateMatch, " ", 1)
		amounts := profile.AmountPattern.FindAllString(stripped, -1)
		if len(amounts) == 0 {
			continue
		}
		rawAmount := amounts[len(amounts)-1]

		tokens := profile.DescriptionPattern.FindAllString(stripAmounts(stripped, profile.AmountPattern), -1)
		desc := strings.Join(tokens, " ")

		hint := models.Direction("")
		if strings.HasPrefix(rawAmount, "-") {
			hint = models.DirectionDebit
		}

		candidates = append(candidates, Candidate{
			RawDate:        dateMatch,
			RawAmount:      rawAmount,
			RawDescription: desc,
			Line:           i + 1,
			Confidence:     regexSweepConfidence,
			Hint:           hint,
		})
	}
	return candidates, nil
}
