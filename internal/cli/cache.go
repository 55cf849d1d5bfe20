package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumiseven/jsonrepair-go/internal/cache"
)

// NewCacheCommand builds the "cache" subcommand group for inspecting
// and maintaining a batch run's repair log.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or maintain a repair cache database",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "jsonrepair-cache.db", "path to the cache database")

	cmd.AddCommand(newCacheListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCacheVerifyCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCacheClearCommand(rootOpts, &dbPath))

	return cmd
}

func newCacheListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List every logged repair call",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := formatterFor(rootOpts, cmd)

			store, err := cache.Open(*dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open cache", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to list cache", err)
			}

			if formatter.Format == "json" {
				return formatter.Success(records)
			}
			for _, r := range records {
				status := "ok"
				if !r.Ok {
					status = "error: " + r.ErrorMessage
				}
				fmt.Fprintf(formatter.Writer, "%s  seq=%d  %s  %s\n", r.ID, r.Seq, status, r.InputPreview)
			}
			return nil
		},
	}
}

func newCacheVerifyCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "verify",
		Short:         "Re-run every logged repair and report drift",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := formatterFor(rootOpts, cmd)

			store, err := cache.Open(*dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open cache", err)
			}
			defer store.Close()

			mismatches, err := cache.Verify(cmd.Context(), store)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to verify cache", err)
			}

			if formatter.Format == "json" {
				if err := formatter.Success(mismatches); err != nil {
					return err
				}
			} else if len(mismatches) == 0 {
				fmt.Fprintln(formatter.Writer, "no drift detected")
			} else {
				for _, m := range mismatches {
					fmt.Fprintf(formatter.Writer, "%s: now %v (%s)\n", m.Record.ID, m.NowOk, m.NowValue)
				}
			}

			if len(mismatches) > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d record(s) drifted", len(mismatches)))
			}
			return nil
		},
	}
}

func newCacheClearCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Delete every logged repair record",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := formatterFor(rootOpts, cmd)

			store, err := cache.Open(*dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open cache", err)
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return WrapExitError(ExitFailure, "failed to clear cache", err)
			}
			return formatter.Success("cache cleared")
		},
	}
}

func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
