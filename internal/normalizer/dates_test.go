package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Slash DDMMYYYY", "15/07/2024", "2024-07-15", false},
		{"Dash DDMMYYYY", "15-07-2024", "2024-07-15", false},
		{"Dot DDMMYYYY", "15.07.2024", "2024-07-15", false},
		{"Two digit year", "15/07/24", "2024-07-15", false},
		{"Already ISO", "2024-07-15", "2024-07-15", false},
		{"Padded input", " 01/01/2024 ", "2024-01-01", false},
		{"Single digit day and month", "5/7/2024", "2024-07-05", false},
		{"Leap day", "29/02/2024", "2024-02-29", false},
		{"Non-leap February", "29/02/2023", "", true},
		{"Nonexistent day", "31/04/2024", "", true},
		{"Month out of range", "15/13/2024", "", true},
		{"Day out of range", "32/01/2024", "", true},
		{"Two components", "07/2024", "", true},
		{"Four components", "1/2/3/4", "", true},
		{"Non-numeric", "15/Jul/2024", "", true},
		{"Three digit year", "15/07/202", "", true},
		{"Empty", "", "", true},
		{"Free text", "yesterday", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
