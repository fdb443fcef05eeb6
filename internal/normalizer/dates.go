package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical date layout emitted by the normalizer.
const ISODate = "2006-01-02"

// NormalizeDate standardizes a raw statement date to ISO form. Accepted inputs
// are DD/MM/YYYY, DD-MM-YYYY, their 2-digit-year variants (expanded to 20YY)
// and already-ISO YYYY-MM-DD. Anything not resolving to exactly three numeric
// components, or not naming a real calendar date, is rejected: a transaction
// is dropped rather than emitted with a guessed date.
func NormalizeDate(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", fmt.Errorf("empty date")
	}

	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return "", fmt.Errorf("date %q does not have three components", raw)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("date %q has non-numeric component %q", raw, p)
		}
		nums[i] = n
	}

	var day, month, year int
	switch {
	case len(parts[0]) == 4:
		// ISO ordering
		year, month, day = nums[0], nums[1], nums[2]
	case len(parts[2]) == 4:
		day, month, year = nums[0], nums[1], nums[2]
	case len(parts[2]) == 2:
		day, month, year = nums[0], nums[1], 2000+nums[2]
	default:
		return "", fmt.Errorf("date %q has an unrecognized year component", raw)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("date %q is out of range", raw)
	}

	// time.Date normalizes overflow (e.g. 31/04 becomes 01/05); a changed day
	// or month means the input was not a real calendar date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", fmt.Errorf("date %q is not a valid calendar date", raw)
	}

	return t.Format(ISODate), nil
}
