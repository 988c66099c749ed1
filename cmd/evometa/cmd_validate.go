// Package main: validate command. Decodes proposal record files and reports
// the extracted state or the decode failure per record.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evometa/internal/proposal"
)

// validateCmd checks that records decode
var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Decode proposal records and report their status",
	Long: `Decode each proposal record and print its review state.

Records are decoded independently and in parallel. An unknown status value
is not a failure (it decodes to the error sentinel); a missing "state" key
or a missing variant field is, and fails only that record. The command
exits non-zero if any record failed to decode.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	payloads, err := collectRecordFiles(args)
	if err != nil {
		return err
	}
	if len(payloads) == 0 {
		return fmt.Errorf("no .json record files found in %s", strings.Join(args, ", "))
	}

	results, err := proposal.DecodeAll(cmd.Context(), payloads, cfg.Decode.Parallelism)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := 0
	for _, name := range names {
		r := results[name]
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("✗ %s: %v\n", name, r.Err)
		case r.Proposal.Status.IsError():
			// Recovered sentinel: the record decoded, but its status did not.
			fmt.Printf("! %s: %s (%s)\n", name, r.Proposal.Status.State, r.Proposal.Status.Reason)
		default:
			fmt.Printf("✓ %s: %s\n", name, r.Proposal.Status.State)
		}
	}
	fmt.Printf("Total: %d records, %d failed\n", len(results), failed)

	logger.Info("validation finished",
		zap.Int("records", len(results)),
		zap.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed to decode", failed, len(results))
	}
	return nil
}

// collectRecordFiles reads every named file, and every .json file directly
// inside named directories, into a payload map keyed by path.
func collectRecordFiles(args []string) (map[string][]byte, error) {
	payloads := make(map[string][]byte)

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", arg, err)
			}
			payloads[arg] = data
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot list %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			path := filepath.Join(arg, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("cannot read %s: %w", path, err)
			}
			payloads[path] = data
		}
	}

	return payloads, nil
}
