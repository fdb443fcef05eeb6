package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
	"finsight/statement-import/internal/recognizer"
)

func TestNormalizeBasicCandidate(t *testing.T) {
	n := New(logging.NewMockLogger())

	tx, err := n.Normalize(recognizer.Candidate{
		RawDate:        "15/07/2024",
		RawAmount:      "500.00",
		RawDescription: "ATM WDL MG ROAD",
		Hint:           models.DirectionDebit,
		Confidence:     0.8,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-07-15", tx.Date)
	assert.Equal(t, "ATM WDL MG ROAD", tx.Description)
	assert.Equal(t, "500", tx.Amount.String())
	assert.Equal(t, models.DirectionDebit, tx.Direction)
	assert.Equal(t, 0.8, tx.Confidence)
	assert.False(t, tx.HasBalance)
}

func TestNormalizeDirection(t *testing.T) {
	tests := []struct {
		name      string
		rawAmount string
		hint      models.Direction
		expected  models.Direction
	}{
		{"Negative amount forces debit", "-500.00", "", models.DirectionDebit},
		{"Negative amount overrides credit hint", "-500.00", models.DirectionCredit, models.DirectionDebit},
		{"Debit hint kept", "500.00", models.DirectionDebit, models.DirectionDebit},
		{"Credit hint kept", "500.00", models.DirectionCredit, models.DirectionCredit},
		{"No cue defaults to credit", "500.00", "", models.DirectionCredit},
	}

	n := New(logging.NewMockLogger())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := n.Normalize(recognizer.Candidate{
				RawDate:        "01/07/2024",
				RawAmount:      tc.rawAmount,
				RawDescription: "UPI PAYMENT",
				Hint:           tc.hint,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tx.Direction)
			assert.False(t, tx.Amount.IsNegative(), "amount must always be a magnitude")
		})
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		rawDate   string
		rawAmount string
		field     string
	}{
		{"Unparseable date", "yesterday", "100.00", "date"},
		{"Nonexistent date", "31/04/2024", "100.00", "date"},
		{"Unparseable amount", "01/07/2024", "abc", "amount"},
		{"Zero amount", "01/07/2024", "0.00", "amount"},
	}

	n := New(logging.NewMockLogger())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.Normalize(recognizer.Candidate{
				RawDate:        tc.rawDate,
				RawAmount:      tc.rawAmount,
				RawDescription: "X",
			})

			var parseErr *importerror.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.field, parseErr.Field)
		})
	}
}

func TestNormalizeBalance(t *testing.T) {
	n := New(logging.NewMockLogger())

	withBalance, err := n.Normalize(recognizer.Candidate{
		RawDate:        "15/07/2024",
		RawAmount:      "500.00",
		RawBalance:     "1,200.00",
		RawDescription: "ATM WDL",
	})
	require.NoError(t, err)
	assert.True(t, withBalance.HasBalance)
	assert.Equal(t, "1200", withBalance.Balance.String())

	// A malformed balance is dropped silently, not a rejection
	badBalance, err := n.Normalize(recognizer.Candidate{
		RawDate:        "15/07/2024",
		RawAmount:      "500.00",
		RawBalance:     "n/a",
		RawDescription: "ATM WDL",
	})
	require.NoError(t, err)
	assert.False(t, badBalance.HasBalance)
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "UPI PAYMENT TO MERCHANT",
		CleanDescription("  UPI   PAYMENT\tTO\nMERCHANT  "))

	long := strings.Repeat("A", 150)
	cleaned := CleanDescription(long)
	assert.Len(t, []rune(cleaned), MaxDescriptionLength)
	assert.True(t, strings.HasSuffix(cleaned, "..."))

	exact := strings.Repeat("B", MaxDescriptionLength)
	assert.Equal(t, exact, CleanDescription(exact))
}
