// Package main: watch command. Re-renders the snapshot whenever its input
// file changes.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evometa/internal/watch"
)

var watchOutput string

// watchCmd re-renders on input changes
var watchCmd = &cobra.Command{
	Use:   "watch <snapshot.json>",
	Short: "Re-render the snapshot whenever the input changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output path (required)")
	watchCmd.MarkFlagRequired("output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	input := args[0]

	debounce, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("invalid watch.debounce %q: %w", cfg.Watch.Debounce, err)
	}

	rebuild := func(path string) error {
		text, err := renderFile(path)
		if err != nil {
			return err
		}
		if err := writeOutput(watchOutput, text); err != nil {
			return err
		}
		logger.Info("snapshot re-rendered", zap.String("output", watchOutput))
		return nil
	}

	// Render once up front so the output exists before the first change.
	if err := rebuild(input); err != nil {
		return err
	}

	w, err := watch.New(input, debounce, logger, rebuild)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	// Block until interrupted.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")
	return nil
}
