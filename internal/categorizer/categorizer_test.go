package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

func TestClassifyDefaultRules(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"Swiggy order", "UPI-SWIGGY ORDER 8123", models.CategoryFood},
		{"Zomato", "ZOMATO BANGALORE", models.CategoryFood},
		{"Uber ride", "UBER TRIP HELP.UBER.COM", models.CategoryTransport},
		{"Train booking", "IRCTC TICKET 442", models.CategoryTransport},
		{"Amazon", "AMAZON PAY INDIA", models.CategoryShopping},
		{"Electricity", "BESCOM ELECTRICITY BILL", models.CategoryUtilities},
		{"Netflix", "NETFLIX SUBSCRIPTION", models.CategoryEntertainment},
		{"ATM withdrawal", "ATM WDL MG ROAD", models.CategoryCash},
		{"NEFT transfer", "NEFT DR 0421 RENT", models.CategoryTransfer},
		{"EMI", "HOME LOAN EMI 0042", models.CategoryPayment},
		{"Pharmacy", "APOLLO PHARMACY", models.CategoryHealthcare},
		{"Course", "COURSERA SUBSCRIPTION", models.CategoryEducation},
		{"Groceries", "BIGBASKET DELIVERY", models.CategoryGroceries},
		{"Salary", "SALARY CREDIT JULY", models.CategoryIncome},
		{"Case insensitive", "swiggy bangalore", models.CategoryFood},
		{"No match", "MISC REF 9921", models.CategoryOther},
		{"Empty description", "", models.CategoryOther},
	}

	c := New(logging.NewMockLogger())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.description))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := New(logging.NewMockLogger())

	// Income rules sit before transfer rules, so a salary arriving by
	// transfer still counts as income.
	assert.Equal(t, models.CategoryIncome, c.Classify("SALARY TRANSFER NEFT"))

	// Cash rules sit before transfer rules.
	assert.Equal(t, models.CategoryCash, c.Classify("ATM WDL VIA TRANSFER"))
}

func TestClassifyCustomRules(t *testing.T) {
	rules := []Rule{
		{Category: "coffee", Keywords: []string{"espresso", "latte"}},
		{Category: models.CategoryFood, Keywords: []string{"swiggy"}},
	}
	c := NewWithRules(logging.NewMockLogger(), rules)

	assert.Equal(t, "coffee", c.Classify("DAILY LATTE BAR"))
	assert.Equal(t, models.CategoryFood, c.Classify("SWIGGY ORDER"))
	// Custom tables fully replace the defaults
	assert.Equal(t, models.CategoryOther, c.Classify("UBER TRIP"))
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `rules:
  - category: coffee
    keywords: [espresso, latte]
  - category: transport
    keywords: [uber]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := NewFromFile(path, logging.NewMockLogger())
	require.NoError(t, err)

	assert.Equal(t, "coffee", c.Classify("MORNING ESPRESSO"))
	assert.Equal(t, models.CategoryTransport, c.Classify("UBER TRIP"))
	assert.Equal(t, models.CategoryOther, c.Classify("SWIGGY ORDER"))
}

func TestNewFromFileErrors(t *testing.T) {
	logger := logging.NewMockLogger()

	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte(":\tnot yaml"), 0644))
	_, err = NewFromFile(badPath, logger)
	assert.Error(t, err)

	emptyPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte("rules: []"), 0644))
	_, err = NewFromFile(emptyPath, logger)
	assert.Error(t, err)
}
