// Package categorize implements the categorize subcommand, a small utility to
// test category rules against transaction descriptions without importing a file.
package categorize

import (
	"fmt"

	"github.com/spf13/cobra"

	"finsight/statement-import/cmd/root"
	"finsight/statement-import/internal/categorizer"
)

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize [description]...",
	Short: "Classify transaction descriptions using the category rules",
	Long: `Categorize runs the keyword rules against one or more transaction
descriptions and prints the resulting category for each. Useful for tuning a
custom rules file before importing.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCategorize,
}

func runCategorize(cmd *cobra.Command, args []string) {
	classifier, err := buildClassifier()
	if err != nil {
		root.Log.Fatalf("Failed to load category rules: %v", err)
	}

	for _, description := range args {
		fmt.Printf("%s: %s\n", description, classifier.Classify(description))
	}
}

func buildClassifier() (*categorizer.Classifier, error) {
	if root.Cfg != nil && root.Cfg.Import.CategoriesFile != "" {
		return categorizer.NewFromFile(root.Cfg.Import.CategoriesFile, root.Logger)
	}
	return categorizer.New(root.Logger), nil
}
