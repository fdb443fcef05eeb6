package models

// Media types accepted by the import pipeline
const (
	MediaTypeCSV = "csv"
	MediaTypePDF = "pdf"
)

// Direction values
const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Transaction categories. The classifier only ever emits values from this set.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryShopping      = "shopping"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealthcare    = "healthcare"
	CategoryEducation     = "education"
	CategoryGroceries     = "groceries"
	CategoryIncome        = "income"
	CategoryTransfer      = "transfer"
	CategoryCash          = "cash"
	CategoryPayment       = "payment"
	CategoryOther         = "other"
)

// Error severities
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)
