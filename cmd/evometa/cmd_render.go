// Package main: render command. Reads a snapshot in the generic status
// shape and writes the final, variant-keyed JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evometa/internal/proposal"
)

var renderOutput string

// renderCmd renders one snapshot file
var renderCmd = &cobra.Command{
	Use:   "render <snapshot.json>",
	Short: "Render a snapshot into the published JSON shape",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output path (default: stdout, or render.output from config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]

	out := renderOutput
	if out == "" {
		out = cfg.Render.Output
	}

	text, err := renderFile(input)
	if err != nil {
		return err
	}

	if err := writeOutput(out, text); err != nil {
		return err
	}

	logger.Info("snapshot rendered",
		zap.String("input", input),
		zap.String("output", out))
	return nil
}

// renderFile loads, decodes, and re-renders a single snapshot file.
func renderFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := proposal.DecodeSnapshot(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	text, err := proposal.Render(snap, proposal.RenderOptions{
		ArrayField: cfg.Render.ArrayField,
		GroupSize:  cfg.Render.GroupSize,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render snapshot %s: %w", path, err)
	}
	return text, nil
}
