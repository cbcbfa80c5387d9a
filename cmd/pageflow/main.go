package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/trkbt10/pageflow/internal/logger"
)

var version = "1.0.0"

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "pageflow",
	Short: "pageflow - page layout analysis from positioned text runs",
	Long: `pageflow groups the positioned text runs of a fixed-layout page into
lines, paragraphs, and ordered blocks, and can optionally coalesce blocks
whose content reads as one unit.

Runs are read as JSON; results are written as JSON to stdout.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logger.DefaultConfig()
		cfg.Level = logLevel
		cfg.Format = logFormat
		return logger.Setup(cfg)
	},
}

func main() {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
}
