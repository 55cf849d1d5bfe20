package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumiseven/jsonrepair-go/internal/cache"
	"github.com/lumiseven/jsonrepair-go/internal/config"
)

// NewBatchCommand builds the "batch" subcommand: run a config-driven
// job over a set of inputs, writing repaired output alongside a
// durable cache log of every outcome.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "batch <config.yaml>",
		Short:         "Repair a batch of inputs described by a config file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runBatch(opts *RootOptions, configPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, errs, err := config.Load(configPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			formatter.Error(Issue{Code: "config_invalid", Message: e.Error()})
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("config is invalid: %d error(s)", len(errs)))
	}

	cachePath := cfg.CachePath
	if cachePath == "" {
		cachePath = filepath.Join(cfg.OutputDir, "jsonrepair-cache.db")
	}
	store, err := cache.Open(cachePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open cache", err)
	}
	defer store.Close()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "failed to create output dir", err)
	}

	matches, err := expandInputs(cfg.Inputs)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to expand inputs", err)
	}
	formatter.VerboseLog("expanded %d input pattern(s) to %d file(s)", len(cfg.Inputs), len(matches))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	failures := 0
	results := make([]batchResult, 0, len(matches))
	for _, inPath := range matches {
		res := processOne(ctx, store, cfg, inPath, formatter)
		results = append(results, res)
		if !res.OK {
			failures++
			if cfg.FailFast {
				break
			}
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.OK {
				fmt.Fprintf(formatter.Writer, "ok   %s -> %s\n", r.Input, r.Output)
			} else {
				fmt.Fprintf(formatter.Writer, "fail %s: %s\n", r.Input, r.Error)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d/%d succeeded\n", len(results)-failures, len(results))
	}

	if failures > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d input(s) failed to repair", failures, len(results)))
	}
	return nil
}

type batchResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

func processOne(ctx context.Context, store *cache.Store, cfg config.BatchConfig, inPath string, formatter *OutputFormatter) batchResult {
	formatter.VerboseLog("processing %s", inPath)

	raw, err := readInput(inPath)
	if err != nil {
		return batchResult{Input: inPath, Error: err.Error()}
	}

	rec, err := store.Put(ctx, raw)
	if err != nil {
		return batchResult{Input: inPath, Error: err.Error()}
	}
	if !rec.Ok {
		return batchResult{Input: inPath, Error: rec.ErrorMessage}
	}

	output := rec.Output
	if cfg.Indent != nil && *cfg.Indent >= 0 {
		if formatted, err := reindent(output, *cfg.Indent); err == nil {
			output = formatted
		}
	}

	outPath := filepath.Join(cfg.OutputDir, filepath.Base(inPath))
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return batchResult{Input: inPath, Error: err.Error()}
	}

	return batchResult{Input: inPath, Output: outPath, OK: true}
}

func expandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
