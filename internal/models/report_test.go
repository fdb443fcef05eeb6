package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportWarnings(t *testing.T) {
	report := ImportReport{
		Errors: []ImportError{
			{Message: "bad date", Severity: SeverityWarning},
			{Message: "broken row", Severity: SeverityError},
			{Message: "odd balance", Severity: SeverityWarning},
		},
	}

	warnings := report.Warnings()
	assert.Len(t, warnings, 2)
	assert.Equal(t, "bad date", warnings[0].Message)
	assert.Equal(t, "odd balance", warnings[1].Message)
}

func TestReportHasErrors(t *testing.T) {
	onlyWarnings := ImportReport{
		Errors: []ImportError{{Message: "x", Severity: SeverityWarning}},
	}
	assert.False(t, onlyWarnings.HasErrors())

	withError := ImportReport{
		Errors: []ImportError{
			{Message: "x", Severity: SeverityWarning},
			{Message: "y", Severity: SeverityError},
		},
	}
	assert.True(t, withError.HasErrors())

	empty := ImportReport{}
	assert.False(t, empty.HasErrors())
	assert.Empty(t, empty.Warnings())
}
