// Package detect implements the detect subcommand, which reports which bank
// profile matches a statement file without running the full import.
package detect

import (
	"context"

	"github.com/spf13/cobra"

	"finsight/statement-import/cmd/root"
	"finsight/statement-import/internal/bankprofile"
	"finsight/statement-import/internal/extractor"
	"finsight/statement-import/internal/importer"
)

// Cmd is the detect command.
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the bank that issued a statement file",
	Run:   runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	doc, err := importer.DocumentFromFile(input)
	if err != nil {
		root.Log.Fatalf("Failed to read %s: %v", input, err)
	}

	text, err := extractor.New(root.Logger).Extract(context.Background(), doc)
	if err != nil {
		root.Log.Fatalf("Failed to extract text: %v", err)
	}

	profile := bankprofile.Detect(text)
	if profile == bankprofile.Generic {
		root.Log.Info("No known bank matched, generic profile would be used")
		return
	}
	root.Log.Infof("Detected bank: %s", profile.DisplayName)
}
