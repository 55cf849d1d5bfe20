package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // repaired successfully / all inputs verified
	ExitFailure      = 1 // one or more inputs could not be repaired
	ExitCommandError = 2 // bad flags, missing files, config errors
)

// ExitError carries the process exit code alongside the error message,
// so a command can fail with a specific code without cobra swallowing
// the distinction between "your JSON is unrepairable" and "you typed
// the wrong flag".
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCodeOf extracts the intended process exit code from err, falling
// back to ExitFailure for any error that isn't an *ExitError.
func ExitCodeOf(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as either plain text or
// newline-delimited JSON, matching the --format flag on the root
// command.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool

	logger *slog.Logger
}

// Response is the JSON shape emitted in --format=json mode.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  *Issue `json:"error,omitempty"`
}

// Issue describes a single failed input in JSON output.
type Issue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Position int    `json:"position,omitempty"`
	Input    string `json:"input,omitempty"`
}

func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

func (f *OutputFormatter) Error(issue Issue) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: &issue})
	}
	if issue.Input != "" {
		fmt.Fprintf(f.Writer, "%s: [%s] %s\n", issue.Input, issue.Code, issue.Message)
	} else {
		fmt.Fprintf(f.Writer, "[%s] %s\n", issue.Code, issue.Message)
	}
	return nil
}

// VerboseLog emits a debug-level structured log record when --verbose
// is set, and is silent otherwise. Records go to stderr so they never
// interleave with --format=json output on stdout.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	f.log().Debug(fmt.Sprintf(format, args...))
}

func (f *OutputFormatter) log() *slog.Logger {
	if f.logger == nil {
		level := slog.LevelInfo
		if f.Verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(f.errWriter(), &slog.HandlerOptions{Level: level})
		f.logger = slog.New(handler)
	}
	return f.logger
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
