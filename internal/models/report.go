package models

// ImportError is a recoverable problem recorded while importing a statement.
// Errors are accumulated, never thrown mid-pipeline: the import always
// completes and returns partial results plus this list.
type ImportError struct {
	Row        int    `json:"row,omitempty"` // 1-based input line, 0 when not tied to a row
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
	Severity   string `json:"severity"` // SeverityWarning or SeverityError
	Suggestion string `json:"suggestion,omitempty"`
}

// StatementPeriod is the date range covered by the imported transactions.
type StatementPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ImportReport aggregates the outcome of one import call. It is immutable
// after return and owned by the caller thereafter.
type ImportReport struct {
	ID               string              `json:"id"`
	BankName         string              `json:"bankName,omitempty"`
	Transactions     []ParsedTransaction `json:"transactions"`
	Errors           []ImportError       `json:"errors"`
	StatementPeriod  StatementPeriod     `json:"statementPeriod"`
	TransactionCount int                 `json:"transactionCount"`
}

// Warnings returns only the warning-severity entries of the error list.
func (r *ImportReport) Warnings() []ImportError {
	var out []ImportError
	for _, e := range r.Errors {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// HasErrors reports whether any error-severity entry was recorded.
func (r *ImportReport) HasErrors() bool {
	for _, e := range r.Errors {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
