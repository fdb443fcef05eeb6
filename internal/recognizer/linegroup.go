package recognizer

import (
	"strings"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// Line-grouped candidates carry a lower confidence than tabular ones: without
// row structure the direction comes from the amount sign alone.
const lineGroupConfidence = 0.7

const lineGroupWindow = 3

// LineGroupStrategy handles statements whose transactions span several
// physical lines, as PDF extraction often produces. It slides a three-line
// window over the text and emits one candidate per window whose concatenation
// carries both a date and an amount.
type LineGroupStrategy struct {
	logger logging.Logger
}

// NewLineGroupStrategy creates a LineGroupStrategy.
func NewLineGroupStrategy(logger logging.Logger) *LineGroupStrategy {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &LineGroupStrategy{logger: logger}
}

// Name identifies the strategy.
func (s *LineGroupStrategy) Name() string {
	return "line-grouped"
}

// Recognize implements Strategy.
func (s *LineGroupStrategy) Recognize(lines []string, profile *bankprofile.Profile) ([]Candidate, []models.ImportError) {
	var candidates []Candidate

	i := 0
	for i < len(lines) {
		end := i + lineGroupWindow
		if end > len(lines) {
			end = len(lines)
		}
		window := strings.Join(lines[i:end], " ")

		dateLoc := profile.DatePattern.FindStringIndex(window)
		if dateLoc == nil {
			i++
			continue
		}

		region := window[dateLoc[1]:]
		amounts := profile.AmountPattern.FindAllString(region, -1)
		if len(amounts) == 0 {
			i++
			continue
		}
		rawAmount := amounts[len(amounts)-1]

		desc := collapseWhitespace(stripAmounts(region, profile.AmountPattern))

		// Sign only: no textual cue checking in this fallback
		hint := models.Direction("")
		if strings.HasPrefix(rawAmount, "-") {
			hint = models.DirectionDebit
		}

		candidates = append(candidates, Candidate{
			RawDate:        window[dateLoc[0]:dateLoc[1]],
			RawAmount:      rawAmount,
			RawDescription: desc,
			Line:           i + 1,
			Confidence:     lineGroupConfidence,
			Hint:           hint,
		})

		// The window consumed these lines; start the next group after them
		i = end
	}
	return candidates, nil
}
