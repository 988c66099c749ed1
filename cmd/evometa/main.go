// Package main implements the evometa command line interface. evometa
// extracts review-status metadata from evolution proposal records and
// renders it into the published JSON shape: each status object nested under
// its variant key, with the proposal-number index reflowed into fixed-width
// groups.
//
// All file reading and writing happens here; the internal packages consume
// and return in-memory data only.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"evometa/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Shared by all subcommands, set up in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "evometa",
	Short: "evometa - evolution proposal metadata renderer",
	Long: `evometa extracts review-status information from evolution proposal
records and re-serializes it into the published metadata shape.

The status of each proposal is rendered as a nested object keyed by its
lifecycle variant, and the flat proposal-number index is reflowed into
grouped lines. Decoding always works from the generic
{"state": ..., fields...} shape.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		zc := zap.NewProductionConfig()
		level, perr := zapcore.ParseLevel(cfg.Logging.Level)
		if perr != nil {
			level = zapcore.InfoLevel
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)

		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "evometa.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Add commands to root
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeOutput writes rendered text to the path, or stdout when path is "".
func writeOutput(path, text string) error {
	if path == "" {
		_, err := fmt.Print(text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
