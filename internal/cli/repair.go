package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumiseven/jsonrepair-go/internal/repair"
)

// NewRepairCommand builds the "repair" subcommand: read one input
// (a file, or stdin with "-" or no argument) and print the repaired
// JSON, or report why it couldn't be repaired.
func NewRepairCommand(rootOpts *RootOptions) *cobra.Command {
	var indent int

	cmd := &cobra.Command{
		Use:           "repair [file]",
		Short:         "Repair a single malformed JSON input",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRepair(rootOpts, path, indent, cmd)
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 0, "pretty-print with this many spaces (0 = compact)")

	return cmd
}

func runRepair(opts *RootOptions, path string, indent int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	input, err := readInput(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	formatter.VerboseLog("read %d bytes from %s", len(input), path)

	output, repairErr := repair.Repair(input)
	if repairErr != nil {
		issue := Issue{Message: repairErr.Error(), Input: path}
		if code, ok := repair.CodeOf(repairErr); ok {
			issue.Code = string(code)
		}
		if re, ok := repairErr.(*repair.Error); ok {
			issue.Position = re.Position
		}
		formatter.Error(issue)
		return NewExitError(ExitFailure, fmt.Sprintf("could not repair %s", path))
	}

	if indent >= 0 {
		formatted, err := reindent(output, indent)
		if err == nil {
			output = formatted
		}
	}

	return formatter.Success(output)
}
