package categorizer

import "finsight/statement-import/internal/models"

// Rule maps one category to the keywords that select it. Rules are checked in
// slice order and the first keyword hit wins, so the order encodes precedence:
// income sits first so that "SALARY TRANSFER" classifies as income, not
// transfer.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// RulesFile is the YAML shape of a category override file.
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultRules returns the built-in ordered keyword table.
func DefaultRules() []Rule {
	return []Rule{
		{Category: models.CategoryIncome, Keywords: []string{
			"salary", "stipend", "pension", "dividend", "bonus payout", "interest earned",
		}},
		{Category: models.CategoryFood, Keywords: []string{
			"swiggy", "zomato", "restaurant", "cafe", "dominos", "pizza", "mcdonald", "kfc", "eatery", "food",
		}},
		{Category: models.CategoryTransport, Keywords: []string{
			"uber", "ola cab", "rapido", "irctc", "metro card", "fastag", "petrol", "diesel", "fuel", "parking",
		}},
		{Category: models.CategoryShopping, Keywords: []string{
			"amazon", "flipkart", "myntra", "ajio", "snapdeal", "mall", "store",
		}},
		{Category: models.CategoryUtilities, Keywords: []string{
			"electricity", "water bill", "gas bill", "broadband", "airtel", "jio", "vodafone", "recharge", "dth",
		}},
		{Category: models.CategoryEntertainment, Keywords: []string{
			"netflix", "prime video", "hotstar", "spotify", "bookmyshow", "cinema", "movie", "game",
		}},
		{Category: models.CategoryCash, Keywords: []string{
			"atm", "cash wdl", "wdl", "cash withdrawal", "cash deposit",
		}},
		{Category: models.CategoryTransfer, Keywords: []string{
			"neft", "imps", "rtgs", "upi", "transfer", "fund trf",
		}},
		{Category: models.CategoryPayment, Keywords: []string{
			"emi", "bill pay", "billdesk", "insurance premium", "credit card payment", "payment",
		}},
		{Category: models.CategoryHealthcare, Keywords: []string{
			"hospital", "pharmacy", "apollo", "clinic", "medical", "medplus", "diagnostic",
		}},
		{Category: models.CategoryEducation, Keywords: []string{
			"school fee", "college", "university", "tuition", "udemy", "coursera", "exam fee",
		}},
		{Category: models.CategoryGroceries, Keywords: []string{
			"bigbasket", "blinkit", "grofers", "dmart", "grocery", "supermarket", "kirana",
		}},
	}
}
