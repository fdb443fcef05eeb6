// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finsight/statement-import/internal/config"
	"finsight/statement-import/internal/logging"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// Logger is the abstraction handed to the pipeline packages.
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cfg holds the resolved application configuration after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "statement-import",
		Short: "Recover structured transactions from bank-statement CSV and PDF files.",
		Long: `statement-import parses bank statements of unknown bank/format into a
structured, deduplicated list of transactions (date, description, amount,
direction, category) with a confidence and error report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			level, err := logrus.ParseLevel(cfg.Log.Level)
			if err != nil {
				level = logrus.InfoLevel
			}
			Log.SetLevel(level)
			if cfg.Log.Format == "json" {
				Log.SetFormatter(&logrus.JSONFormatter{})
			} else {
				Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			}
			Logger = logging.NewLogrusAdapterFromLogger(Log)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// Delimiter returns the configured CSV output delimiter.
func Delimiter() rune {
	if Cfg == nil || Cfg.CSV.Delimiter == "" {
		return ','
	}
	return []rune(Cfg.CSV.Delimiter)[0]
}
