package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tair/storefront/internal/storefront"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the API refused or could not be reached
	ExitUsage        = 2 // bad flags or arguments
	ExitUnauthorized = 3 // no session or the session expired
)

// ExitError carries the process exit code of a failed command.
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// GetExitCode extracts the exit code from an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, storefront.ErrUnauthorized) {
		return ExitUnauthorized
	}
	return ExitFailure
}

// printer renders command results as text tables or JSON
type printer struct {
	format string
	out    io.Writer
}

// print writes v as indented JSON, or calls text with a tab-aligned writer
func (p *printer) print(v interface{}, text func(w io.Writer)) error {
	if p.format == "json" {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}
