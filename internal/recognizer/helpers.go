package recognizer

import (
	"regexp"
	"strings"

	"finsight/statement-import/internal/models"
)

// Lines shorter than this are treated as layout noise and skipped.
const minLineLength = 10

var (
	debitCuePattern  = regexp.MustCompile(`(?i)\b(dr|debit|withdrawal)\b`)
	creditCuePattern = regexp.MustCompile(`(?i)\b(cr|credit|deposit)\b`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// inferTextHint reads a direction cue from the line text. Debit cues are
// checked first; no cue yields the empty hint and the normalizer's default.
func inferTextHint(line string) models.Direction {
	if debitCuePattern.MatchString(line) {
		return models.DirectionDebit
	}
	if creditCuePattern.MatchString(line) {
		return models.DirectionCredit
	}
	return ""
}

// stripAmounts removes every amount-pattern substring from s.
func stripAmounts(s string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllString(s, " ")
}

// collapseWhitespace squeezes whitespace runs and trims surrounding separator
// punctuation left behind by token stripping.
func collapseWhitespace(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.Trim(s, " |,;:-")
}

// clampSelection keeps an amount-selection index inside the match list.
func clampSelection(sel, n int) int {
	if sel < 0 {
		return 0
	}
	if sel >= n {
		return n - 1
	}
	return sel
}

// isZeroAmount reports whether a raw amount string denotes zero. Candidates
// with zero amounts are filtered negatives, not errors.
func isZeroAmount(raw string) bool {
	dec, err := models.ParseAmount(raw)
	if err != nil {
		return false
	}
	return dec.IsZero()
}
