// Package csvout writes the transactions of an ImportReport to the canonical
// CSV format consumed by downstream tools.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"finsight/statement-import/internal/logging"
	"finsight/statement-import/internal/models"
)

// Writer exports reports as CSV with a configurable delimiter.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a Writer. A zero delimiter selects comma.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// Write marshals the report's transactions to w.
func (wr *Writer) Write(report *models.ImportReport, w io.Writer) error {
	if report == nil {
		return fmt.Errorf("cannot write nil report to CSV")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = wr.delimiter

	transactions := report.Transactions
	if transactions == nil {
		transactions = []models.ParsedTransaction{}
	}

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile writes the report's transactions to a file, creating parent
// directories as needed. An empty report still produces a header-only file.
func (wr *Writer) WriteFile(report *models.ImportReport, path string) error {
	wr.logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(report.Transactions)})

	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			wr.logger.WithError(err).Warn("Failed to close CSV file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	return wr.Write(report, file)
}
