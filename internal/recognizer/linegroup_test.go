package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

func TestLineGroupMultiLineTransactions(t *testing.T) {
	lines := []string{
		"15/07/2024",
		"UPI PAYMENT TO SWIGGY",
		"450.00",
		"16/07/2024",
		"NEFT FROM EMPLOYER",
		"50,000.00",
	}

	s := NewLineGroupStrategy(logging.NewMockLogger())
	candidates, warnings := s.Recognize(lines, bankprofile.Generic)

	require.Len(t, candidates, 2)
	assert.Empty(t, warnings)

	first := candidates[0]
	assert.Equal(t, "15/07/2024", first.RawDate)
	assert.Equal(t, "450.00", first.RawAmount)
	assert.Equal(t, "UPI PAYMENT TO SWIGGY", first.RawDescription)
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 0.7, first.Confidence)

	second := candidates[1]
	assert.Equal(t, "16/07/2024", second.RawDate)
	assert.Equal(t, "50,000.00", second.RawAmount)
	assert.Equal(t, 4, second.Line)
}

func TestLineGroupReRunIsDeterministic(t *testing.T) {
	lines := []string{
		"15/07/2024",
		"UPI PAYMENT TO SWIGGY",
		"450.00",
	}

	s := NewLineGroupStrategy(logging.NewMockLogger())
	first, _ := s.Recognize(lines, bankprofile.Generic)
	second, _ := s.Recognize(lines, bankprofile.Generic)

	assert.Equal(t, first, second)
}

func TestLineGroupSignHint(t *testing.T) {
	lines := []string{
		"15/07/2024",
		"CARD FEE",
		"-250.00",
	}

	s := NewLineGroupStrategy(logging.NewMockLogger())
	candidates, _ := s.Recognize(lines, bankprofile.Generic)

	require.Len(t, candidates, 1)
	assert.Equal(t, models.DirectionDebit, candidates[0].Hint)
}

func TestLineGroupSkipsDatelessBlocks(t *testing.T) {
	lines := []string{
		"Account summary",
		"Total credits 5",
		"Total debits 12",
	}

	s := NewLineGroupStrategy(logging.NewMockLogger())
	candidates, _ := s.Recognize(lines, bankprofile.Generic)

	assert.Empty(t, candidates)
}
