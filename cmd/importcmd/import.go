// Package importcmd implements the import subcommand: one statement file in,
// a canonical transaction CSV and a report summary out.
package importcmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"finsight/statement-import/cmd/root"
	"finsight/statement-import/internal/categorizer"
	"finsight/statement-import/internal/csvout"
	"finsight/statement-import/internal/extractor"
	"finsight/statement-import/internal/importer"
	"finsight/statement-import/internal/importerror"
	"finsight/statement-import/internal/models"
)

// Cmd is the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a bank statement file (CSV or PDF)",
	Long: `Import parses a bank statement, prints a summary of the recovered
transactions and warnings, and optionally writes them to a CSV file.`,
	Run: runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	report, err := RunImport(input)
	if err != nil {
		var noText *importerror.NoTextLayerError
		if errors.As(err, &noText) {
			root.Log.Fatalf("%v. Suggestion: %s", noText, noText.Suggestion())
		}
		root.Log.Fatalf("Import failed: %v", err)
	}

	printSummary(report)

	if output := root.SharedFlags.Output; output != "" {
		writer := csvout.NewWriter(root.Delimiter(), root.Logger)
		if err := writer.WriteFile(report, output); err != nil {
			root.Log.Fatalf("Failed to write CSV: %v", err)
		}
		root.Log.Infof("Wrote %d transactions to %s", report.TransactionCount, output)
	}
}

// RunImport imports a single statement file using the configured pipeline.
func RunImport(path string) (*models.ImportReport, error) {
	doc, err := importer.DocumentFromFile(path)
	if err != nil {
		return nil, err
	}

	opts := []importer.Option{}
	if root.Cfg != nil {
		if root.Cfg.Import.CategoriesFile != "" {
			classifier, err := categorizer.NewFromFile(root.Cfg.Import.CategoriesFile, root.Logger)
			if err != nil {
				return nil, err
			}
			opts = append(opts, importer.WithClassifier(classifier))
		}
		timeout := time.Duration(root.Cfg.Import.ExtractionTimeout) * time.Second
		opts = append(opts, importer.WithExtractor(extractor.NewWithReader(root.Logger, nil, timeout)))
	}

	imp := importer.New(root.Logger, opts...)
	return imp.Import(context.Background(), doc)
}

func printSummary(report *models.ImportReport) {
	root.Log.Infof("Imported %d transactions", report.TransactionCount)
	if report.BankName != "" {
		root.Log.Infof("Bank: %s", report.BankName)
	}
	if report.TransactionCount > 0 {
		root.Log.Infof("Statement period: %s to %s",
			report.StatementPeriod.StartDate, report.StatementPeriod.EndDate)
	}
	for _, e := range report.Errors {
		if e.Severity == models.SeverityError {
			root.Log.Errorf("row %d: %s", e.Row, e.Message)
		} else if e.Row > 0 {
			root.Log.Warnf("row %d: %s", e.Row, e.Message)
		} else {
			root.Log.Warn(e.Message)
		}
	}
}
