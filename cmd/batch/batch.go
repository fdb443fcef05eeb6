// Package batch implements the batch subcommand, importing every statement
// file in a directory.
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"finsight/statement-import/cmd/importcmd"
	"finsight/statement-import/cmd/root"
	"finsight/statement-import/internal/csvout"
	"finsight/statement-import/internal/logging"
)

// Cmd is the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Import all statement files in a directory",
	Long: `Batch walks the input directory, imports every CSV and PDF statement
it finds, and writes one transaction CSV per input file into the output
directory. Files that fail to import are logged and skipped.`,
	Run: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" {
		root.Log.Fatal("No input directory specified, use --input")
	}
	if outputDir == "" {
		outputDir = inputDir
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		root.Log.Fatalf("Failed to read directory %s: %v", inputDir, err)
	}

	processed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !isStatementFile(entry.Name()) {
			continue
		}

		inputPath := filepath.Join(inputDir, entry.Name())
		report, err := importcmd.RunImport(inputPath)
		if err != nil {
			root.Logger.WithError(err).Error("Import failed, skipping file",
				logging.Field{Key: logging.FieldFile, Value: inputPath})
			failed++
			continue
		}

		outputPath := filepath.Join(outputDir, outputName(entry.Name()))
		writer := csvout.NewWriter(root.Delimiter(), root.Logger)
		if err := writer.WriteFile(report, outputPath); err != nil {
			root.Logger.WithError(err).Error("Failed to write CSV",
				logging.Field{Key: logging.FieldFile, Value: outputPath})
			failed++
			continue
		}

		root.Log.Infof("%s: %d transactions -> %s",
			entry.Name(), report.TransactionCount, outputPath)
		processed++
	}

	root.Log.Infof("Batch complete: %d imported, %d failed", processed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func isStatementFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".pdf":
		return true
	}
	return false
}

func outputName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + "-transactions.csv"
}
