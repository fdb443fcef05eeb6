package recognizer

import (
	"strings"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

const tabularConfidence = 0.8

// TabularStrategy parses statements laid out as one transaction per row. It
// prefers a header line matching the profile's header vocabularies; with a
// delimited header it maps columns by name, otherwise it falls back to
// positional pattern extraction starting at the first line that carries both a
// date and an amount.
type TabularStrategy struct {
	// SelectAmount picks the transaction amount among a line's matches in
	// positional mode. Defaults to SelectLastAmount.
	SelectAmount AmountSelection

	logger logging.Logger
}

// NewTabularStrategy creates a TabularStrategy with the default amount policy.
func NewTabularStrategy(logger logging.Logger) *TabularStrategy {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &TabularStrategy{
		SelectAmount: SelectLastAmount,
		logger:       logger,
	}
}

// Name identifies the strategy.
func (s *TabularStrategy) Name() string {
	return "tabular"
}

// Recognize implements Strategy.
func (s *TabularStrategy) Recognize(lines []string, profile *bankprofile.Profile) ([]Candidate, []models.ImportError) {
	headerIdx, layout := findHeader(lines, profile)

	if layout != nil {
		return s.parseColumns(lines, headerIdx, layout, profile)
	}

	start := headerIdx + 1
	if headerIdx < 0 {
		// No recognizable header: the first line carrying both a date and an
		// amount marks the start of the data region.
		start = firstDataLine(lines, profile)
		if start < 0 {
			return nil, nil
		}
	}
	return s.parsePositional(lines, start, profile)
}

// columnLayout maps header column names to field indices. Absent columns are -1.
type columnLayout struct {
	delimiter string
	width     int
	date      int
	desc      int
	debit     int
	credit    int
	amount    int
	balance   int
	kind      int // Dr/Cr indicator column
}

// findHeader scans for a line containing every word of one of the profile's
// header vocabularies. It returns the header index and, when the header is
// delimiter-separated, a column layout; (-1, nil) when no header exists.
func findHeader(lines []string, profile *bankprofile.Profile) (int, *columnLayout) {
	for i, line := range lines {
		lowered := strings.ToLower(line)
		for _, vocab := range profile.HeaderVocab {
			if containsAllWords(lowered, vocab) {
				return i, buildLayout(line)
			}
		}
	}
	return -1, nil
}

func containsAllWords(lowered string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(lowered, w) {
			return false
		}
	}
	return true
}

// buildLayout derives a column layout from a delimited header line. Returns
// nil for space-separated headers, which positional parsing handles better.
func buildLayout(header string) *columnLayout {
	var delimiter string
	for _, d := range []string{",", ";", "\t", "|"} {
		if strings.Count(header, d) >= 2 {
			delimiter = d
			break
		}
	}
	if delimiter == "" {
		return nil
	}

	fields := strings.Split(header, delimiter)
	layout := &columnLayout{
		delimiter: delimiter,
		width:     len(fields),
		date:      -1, desc: -1, debit: -1, credit: -1, amount: -1, balance: -1, kind: -1,
	}

	for i, f := range fields {
		name := strings.ToLower(strings.TrimSpace(f))
		switch {
		case layout.date < 0 && strings.Contains(name, "date"):
			layout.date = i
		case layout.desc < 0 && containsAnyWord(name, "narration", "description", "particulars", "details", "remarks"):
			layout.desc = i
		case layout.debit < 0 && containsAnyWord(name, "debit", "withdrawal"):
			layout.debit = i
		case layout.credit < 0 && containsAnyWord(name, "credit", "deposit"):
			layout.credit = i
		case layout.kind < 0 && (name == "dr/cr" || name == "type"):
			layout.kind = i
		case layout.balance < 0 && (strings.Contains(name, "balance") || name == "bal"):
			layout.balance = i
		case layout.amount < 0 && strings.Contains(name, "amount"):
			layout.amount = i
		}
	}

	if layout.date < 0 || (layout.amount < 0 && layout.debit < 0 && layout.credit < 0) {
		return nil
	}
	return layout
}

func containsAnyWord(name string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

// parseColumns reads each line after the header as one delimited row.
func (s *TabularStrategy) parseColumns(lines []string, headerIdx int, layout *columnLayout, profile *bankprofile.Profile) ([]Candidate, []models.ImportError) {
	var candidates []Candidate
	var warnings []models.ImportError

	for i := headerIdx + 1; i < len(lines); i++ {
		line := lines[i]
		row := i + 1

		if !strings.Contains(line, layout.delimiter) {
			// Footer or free text after the table, not a malformed row
			continue
		}

		fields := strings.Split(line, layout.delimiter)
		if len(fields) < layout.width {
			warnings = append(warnings, models.ImportError{
				Row:      row,
				Message:  "column count does not match the header",
				Severity: models.SeverityWarning,
			})
			continue
		}

		get := func(idx int) string {
			if idx >= 0 && idx < len(fields) {
				return strings.TrimSpace(fields[idx])
			}
			return ""
		}

		rawDate := get(layout.date)
		if rawDate == "" {
			continue
		}

		rawAmount, hint := pickColumnAmount(layout, get)
		if rawAmount == "" {
			continue
		}
		if hint == "" {
			hint = inferTextHint(line)
		}

		desc := collapseWhitespace(get(layout.desc))
		if desc == "" {
			continue
		}

		candidates = append(candidates, Candidate{
			RawDate:        rawDate,
			RawAmount:      rawAmount,
			RawBalance:     get(layout.balance),
			RawDescription: desc,
			Line:           row,
			Confidence:     tabularConfidence,
			Hint:           hint,
		})
	}
	return candidates, warnings
}

// pickColumnAmount resolves the amount and direction from the row's columns.
// Separate debit/credit columns carry the direction themselves; a single
// amount column may be qualified by a Dr/Cr indicator column.
func pickColumnAmount(layout *columnLayout, get func(int) string) (string, models.Direction) {
	if layout.debit >= 0 || layout.credit >= 0 {
		if d := get(layout.debit); d != "" {
			return d, models.DirectionDebit
		}
		if c := get(layout.credit); c != "" {
			return c, models.DirectionCredit
		}
		return "", ""
	}

	amount := get(layout.amount)
	if amount == "" {
		return "", ""
	}
	kind := strings.ToLower(get(layout.kind))
	switch {
	case strings.Contains(kind, "dr"):
		return amount, models.DirectionDebit
	case strings.Contains(kind, "cr"):
		return amount, models.DirectionCredit
	}
	return amount, ""
}

// firstDataLine finds the first line carrying both a date and an amount match.
func firstDataLine(lines []string, profile *bankprofile.Profile) int {
	for i, line := range lines {
		if profile.DatePattern.MatchString(line) && profile.AmountPattern.MatchString(line) {
			return i
		}
	}
	return -1
}

// parsePositional extracts one candidate per line by pattern position: the
// date match anchors the row, the configured policy picks the transaction
// amount among the matches after it, and the description is the span between
// the two with amount substrings stripped.
func (s *TabularStrategy) parsePositional(lines []string, start int, profile *bankprofile.Profile) ([]Candidate, []models.ImportError) {
	selectAmount := s.SelectAmount
	if selectAmount == nil {
		selectAmount = SelectLastAmount
	}

	var candidates []Candidate
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) < minLineLength {
			continue
		}

		dateLoc := profile.DatePattern.FindStringIndex(line)
		if dateLoc == nil {
			continue
		}
		rawDate := line[dateLoc[0]:dateLoc[1]]

		region := line[dateLoc[1]:]
		amountLocs := profile.AmountPattern.FindAllStringIndex(region, -1)
		if len(amountLocs) == 0 {
			continue
		}
		amounts := make([]string, len(amountLocs))
		for j, loc := range amountLocs {
			amounts[j] = region[loc[0]:loc[1]]
		}

		sel := clampSelection(selectAmount(amounts), len(amounts))
		rawAmount := amounts[sel]

		// The running balance, when present, is the amount occurrence next to
		// the selected one.
		var rawBalance string
		if len(amounts) > 1 {
			if sel > 0 {
				rawBalance = amounts[sel-1]
			} else {
				rawBalance = amounts[len(amounts)-1]
			}
		}

		descRegion := region[:amountLocs[sel][0]]
		if strings.TrimSpace(descRegion) == "" {
			descRegion = region
		}
		desc := collapseWhitespace(stripAmounts(descRegion, profile.AmountPattern))
		if desc == "" {
			continue
		}

		hint := models.Direction("")
		if strings.HasPrefix(rawAmount, "-") {
			hint = models.DirectionDebit
		} else {
			hint = inferTextHint(line)
		}

		candidates = append(candidates, Candidate{
			RawDate:        rawDate,
			RawAmount:      rawAmount,
			RawBalance:     rawBalance,
			RawDescription: desc,
			Line:           i + 1,
			Confidence:     tabularConfidence,
			Hint:           hint,
		})
	}
	return candidates, nil
}
