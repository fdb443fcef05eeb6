// statement-import converts bank statements of unknown format (CSV or PDF)
// into a structured, deduplicated transaction list.
package main

import (
	"os"

	"finsight/statement-import/cmd/batch"
	"finsight/statement-import/cmd/categorize"
	"finsight/statement-import/cmd/detect"
	"finsight/statement-import/cmd/importcmd"
	"finsight/statement-import/cmd/root"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
